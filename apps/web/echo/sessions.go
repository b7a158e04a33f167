package echoweb

import (
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/shareulbi/webcore/core"
	"github.com/shareulbi/webcore/core/admin"
	"github.com/shareulbi/webcore/core/content"
	"github.com/shareulbi/webcore/core/identity"
	"github.com/shareulbi/webcore/core/session"
	restsvc "github.com/shareulbi/webcore/services/rest"
)

const sessionCookie = "shareulbi_session"

const appSessionKey = "appSession"

// AppSession is one browser's client runtime: its own API client (and thus
// its own upstream session cookie), session store, admin badge store,
// services and toggler. It plays the part the SPA's global stores play in a
// single tab.
type AppSession struct {
	API      core.APIClient
	Store    *session.Store
	Admin    *admin.Store
	Identity *identity.Service
	Content  *content.Service
	AdminSvc *admin.Service
	Toggler  *content.Toggler

	// viewing is the post detail each route currently displays, keyed by
	// post id. The optimistic toggles mutate these projections directly.
	mu      sync.Mutex
	viewing map[string]*content.PostDetail
}

func newAppSession(conf *core.Config, logger core.Logger) (*AppSession, error) {
	api, err := restsvc.NewClient(conf)
	if err != nil {
		return nil, err
	}
	idnSvc := identity.NewService(api)
	adminSvc := admin.NewService(api)
	return &AppSession{
		API:      api,
		Store:    session.NewStore(idnSvc),
		Admin:    admin.NewStore(adminSvc),
		Identity: idnSvc,
		Content:  content.NewService(api),
		AdminSvc: adminSvc,
		Toggler:  content.NewToggler(api, logger),
		viewing:  make(map[string]*content.PostDetail),
	}, nil
}

// SetView replaces the displayed projection of a post with a fresh fetch.
func (as *AppSession) SetView(post content.PostDetail) {
	as.mu.Lock()
	defer as.mu.Unlock()
	cp := post
	as.viewing[post.ID] = &cp
}

// ViewReaction returns the reaction state of the displayed projection of a
// post, if any.
func (as *AppSession) ViewReaction(id string) (content.Reaction, bool) {
	as.mu.Lock()
	defer as.mu.Unlock()
	post, ok := as.viewing[id]
	if !ok {
		return content.Reaction{}, false
	}
	return post.Reaction, true
}

// FlipView applies an optimistic like/bookmark toggle to the displayed
// projection of a post. The mutation happens under the session lock so
// concurrent toggles from the same browser serialize; the upstream call the
// toggler fires still runs in the background. Returns the post's type so the
// caller can redirect back to its detail route.
func (as *AppSession) FlipView(id, action string) (content.PostType, bool) {
	as.mu.Lock()
	defer as.mu.Unlock()
	post, ok := as.viewing[id]
	if !ok {
		return "", false
	}
	if action == "like" {
		as.Toggler.ToggleLike(id, &post.Reaction)
	} else {
		as.Toggler.ToggleBookmark(id, &post.Reaction)
	}
	return post.Type, true
}

// sessionRegistry hands each browser its AppSession, keyed by a uuid cookie.
type sessionRegistry struct {
	conf   *core.Config
	logger core.Logger

	mu       sync.Mutex
	sessions map[string]*AppSession
}

func newSessionRegistry(conf *core.Config, logger core.Logger) *sessionRegistry {
	return &sessionRegistry{
		conf:     conf,
		logger:   logger,
		sessions: make(map[string]*AppSession),
	}
}

// attach is an echo middleware: it resolves (or creates) the caller's
// AppSession and bootstraps its session store on first sight, mirroring the
// one bootstrap the SPA runs on application load.
func (r *sessionRegistry) attach(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		var key string
		if cookie, err := ctx.Cookie(sessionCookie); err == nil {
			key = cookie.Value
		}

		r.mu.Lock()
		as, ok := r.sessions[key]
		r.mu.Unlock()

		if !ok {
			key = uuid.New().String()
			fresh, err := newAppSession(r.conf, r.logger)
			if err != nil {
				return err
			}

			r.mu.Lock()
			r.sessions[key] = fresh
			r.mu.Unlock()

			ctx.SetCookie(&http.Cookie{
				Name:     sessionCookie,
				Value:    key,
				Path:     "/",
				HttpOnly: true,
			})
			as = fresh
		}

		as.Store.Bootstrap(ctx.Request().Context())
		ctx.Set(appSessionKey, as)
		return next(ctx)
	}
}

func appSession(ctx echo.Context) *AppSession {
	return ctx.Get(appSessionKey).(*AppSession)
}
