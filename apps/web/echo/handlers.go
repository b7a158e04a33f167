package echoweb

import (
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	gomponents "maragu.dev/gomponents"

	"github.com/shareulbi/webcore/core"
	"github.com/shareulbi/webcore/core/admin"
	"github.com/shareulbi/webcore/core/content"
	"github.com/shareulbi/webcore/core/identity"
	"github.com/shareulbi/webcore/core/nav"
	"github.com/shareulbi/webcore/core/session"
	"github.com/shareulbi/webcore/ui"
)

func registerPages(app *echo.Echo) {
	app.GET("/", home)

	app.GET(session.RouteLogin, loginForm)
	app.POST(session.RouteLogin, login)
	app.POST("/logout", logout)
	app.GET(session.RouteRegister, registerForm)
	app.POST(session.RouteRegister, register)
	app.GET(session.RouteOnboarding, onboarding)

	app.GET(session.RouteDashboard, dashboard)
	app.GET("/e-learning", collection(content.TypeELearning))
	app.GET("/works", collection(content.TypeWorks))
	app.GET("/e-learning/:id", postDetail(content.TypeELearning))
	app.GET("/works/:id", postDetail(content.TypeWorks))
	app.POST("/posts/:id/like", toggle("like"))
	app.POST("/posts/:id/bookmark", toggle("bookmark"))

	app.GET("/profile", profile)
	app.POST("/e-learning/upload", upload(content.TypeELearning))
	app.POST("/works/upload", upload(content.TypeWorks))
	app.POST("/reports-feedbacks", submitReport)

	app.GET("/validation", validationQueue)
	app.POST("/validation/posts/:id/validate", validatePost)

	app.GET(session.RouteAdminHome, adminHome)
	app.GET("/admin/users", adminUsers)
	app.POST("/admin/users/:id/approve", adminApprove)
	app.POST("/admin/users/:id/reject", adminReject)
	app.GET("/admin/users/:id/edit", adminEditUser)
	app.POST("/admin/users/:id", adminUpdateUser)
	app.POST("/admin/users/:id/delete", adminDeleteUser)
	app.GET("/admin/contents", adminContents)
	app.POST("/admin/posts/:id/delete", adminDeletePost)
	app.GET("/admin/categories", adminCategories)
	app.POST("/admin/categories", adminCreateCategory)
	app.POST("/admin/categories/:id", adminUpdateCategory)
	app.POST("/admin/categories/:id/delete", adminDeleteCategory)
	app.GET("/admin/reports", adminReports)
	app.POST("/admin/reports/:id/status", adminReportStatus)
	app.POST("/admin/topics", adminCreateTopic)
	app.POST("/admin/topics/:id", adminRenameTopic)
	app.POST("/admin/topics/:id/delete", adminDeleteTopic)
	app.GET("/admin/activity-logs", adminActivityLogs)
}

func home(ctx echo.Context) error {
	return ctx.Redirect(http.StatusSeeOther, session.RouteDashboard)
}

// guard runs the auth gate for a protected view. It returns the signed-in
// identity when the view is authorized, and a non-nil handled error after
// issuing the redirect otherwise. The gate never redirects while the session
// store is still loading; server-side that window is closed by the time a
// handler runs, but the decision order is the store's, not ours.
func guard(ctx echo.Context, req session.Requirement) (identity.Identity, bool, error) {
	as := appSession(ctx)
	d := session.NewGate(as.Store, req).Check()
	switch d.State {
	case session.StateAuthorized:
		idn, _ := as.Store.Identity()
		return idn, true, nil
	case session.StatePending:
		return identity.Identity{}, false, ctx.NoContent(http.StatusAccepted)
	default:
		return identity.Identity{}, false, ctx.Redirect(http.StatusSeeOther, d.Redirect)
	}
}

func render(ctx echo.Context, status int, node gomponents.Node) error {
	ctx.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	ctx.Response().WriteHeader(status)
	return node.Render(ctx.Response())
}

func appPage(ctx echo.Context, title, activeID string, idn identity.Identity, body ...gomponents.Node) error {
	as := appSession(ctx)
	entries := nav.Visible(&idn, activeID, as.Admin.PendingCount())
	return render(ctx, http.StatusOK, ui.AppPage(title, idn, entries, body...))
}

func loginForm(ctx echo.Context) error {
	return render(ctx, http.StatusOK, ui.LoginPage(""))
}

// login authenticates and lands the user on the route their account state
// calls for: onboarding wait unless approved, admin home for admins, the
// dashboard for everyone else.
func login(ctx echo.Context) error {
	as := appSession(ctx)
	creds := identity.Credentials{
		Email:    ctx.FormValue("email"),
		Password: ctx.FormValue("password"),
	}

	idn, err := as.Store.Login(ctx.Request().Context(), creds)
	if err != nil {
		return render(ctx, http.StatusOK, ui.LoginPage(loginErrorMessage(err)))
	}

	if !idn.IsApproved() {
		return ctx.Redirect(http.StatusSeeOther, session.RouteOnboarding)
	}
	return ctx.Redirect(http.StatusSeeOther, session.HomeRoute(idn.Role.Name))
}

func loginErrorMessage(err error) string {
	switch origErr := errors.Cause(err).(type) {
	case *core.HTTPError:
		if origErr.Message != "" {
			return origErr.Message
		}
		return "Login gagal"
	case *core.NetworkError:
		return "Server tidak dapat dihubungi"
	case validator.ValidationErrors, *core.ValidationError:
		return "Email dan password wajib diisi"
	}
	return "Login gagal"
}

func registerForm(ctx echo.Context) error {
	as := appSession(ctx)
	deps, err := as.Identity.Departments(ctx.Request().Context())
	if err != nil {
		return err
	}
	return render(ctx, http.StatusOK, ui.RegisterPage(deps, ""))
}

// register creates an account and sends the new user to the onboarding wait
// screen; approval is the admin's move.
func register(ctx echo.Context) error {
	as := appSession(ctx)
	reg := identity.Registration{
		FullName:        ctx.FormValue("fullname"),
		Email:           ctx.FormValue("email"),
		Password:        ctx.FormValue("password"),
		ConfirmPassword: ctx.FormValue("confirm_password"),
		UserType:        identity.UserType(ctx.FormValue("user_type")),
		NPM:             ctx.FormValue("npm"),
		NIDN:            ctx.FormValue("nidn"),
		DepartmentID:    ctx.FormValue("department_id"),
		Occupation:      ctx.FormValue("occupation"),
	}

	if err := as.Identity.Register(ctx.Request().Context(), reg); err != nil {
		deps, _ := as.Identity.Departments(ctx.Request().Context()) // best effort for the re-render
		return render(ctx, http.StatusOK, ui.RegisterPage(deps, registerErrorMessage(err)))
	}
	return ctx.Redirect(http.StatusSeeOther, session.RouteOnboarding)
}

func registerErrorMessage(err error) string {
	switch origErr := errors.Cause(err).(type) {
	case *core.HTTPError:
		if origErr.Message != "" {
			return origErr.Message
		}
		return "Pendaftaran gagal"
	case *core.NetworkError:
		return "Server tidak dapat dihubungi"
	case validator.ValidationErrors, *core.ValidationError:
		return "Periksa kembali isian Anda"
	}
	return "Pendaftaran gagal"
}

func logout(ctx echo.Context) error {
	as := appSession(ctx)
	_ = as.Store.Logout(ctx.Request().Context()) // session is gone either way
	return ctx.Redirect(http.StatusSeeOther, session.RouteLogin)
}

func onboarding(ctx echo.Context) error {
	return render(ctx, http.StatusOK, ui.OnboardingPage())
}

func dashboard(ctx echo.Context) error {
	idn, ok, err := guard(ctx, session.Requirement{})
	if !ok {
		return err
	}
	as := appSession(ctx)
	posts, err := as.Content.Posts(ctx.Request().Context(), 20, 0)
	if err != nil {
		return err
	}
	return appPage(ctx, "Home", "dashboard", idn, ui.PostList(posts))
}

func collection(typ content.PostType) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		idn, ok, err := guard(ctx, session.Requirement{})
		if !ok {
			return err
		}
		as := appSession(ctx)
		posts, err := as.Content.Posts(ctx.Request().Context(), 20, 0)
		if err != nil {
			return err
		}
		filtered := posts[:0]
		for _, p := range posts {
			if p.Type == typ {
				filtered = append(filtered, p)
			}
		}
		title, active := "E-Learning", "e-learning"
		if typ == content.TypeWorks {
			title, active = "Works", "works"
		}
		return appPage(ctx, title, active, idn, ui.PostList(filtered))
	}
}

// postDetail serves a detail view, pinning the fetched projection as the
// session's displayed state so the optimistic toggles have something to flip.
func postDetail(typ content.PostType) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		_, ok, err := guard(ctx, session.Requirement{})
		if !ok {
			return err
		}
		as := appSession(ctx)
		post, err := as.Content.Post(ctx.Request().Context(), ctx.Param("id"))
		if err != nil {
			return err
		}
		if post.Type != typ {
			// a works id on the e-learning route (or vice versa) goes back
			// to its own collection
			return ctx.Redirect(http.StatusSeeOther, "/"+string(post.Type))
		}
		as.SetView(post)
		return render(ctx, http.StatusOK, ui.PostDetailPage(post))
	}
}

// toggle flips like/bookmark state optimistically: the displayed projection
// mutates before the upstream call resolves, and stays flipped even if that
// call later fails.
func toggle(action string) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		_, ok, err := guard(ctx, session.Requirement{})
		if !ok {
			return err
		}
		as := appSession(ctx)
		id := ctx.Param("id")
		typ, found := as.FlipView(id, action)
		if !found {
			return ctx.Redirect(http.StatusSeeOther, session.RouteDashboard)
		}
		return ctx.Redirect(http.StatusSeeOther, "/"+string(typ)+"/"+id)
	}
}

// profile shows the signed-in account with the publish and feedback dialogs.
func profile(ctx echo.Context) error {
	idn, ok, err := guard(ctx, session.Requirement{})
	if !ok {
		return err
	}
	as := appSession(ctx)
	cats, err := as.AdminSvc.Categories(ctx.Request().Context())
	if err != nil {
		return err
	}
	topics, err := as.Content.FeedbackTopics(ctx.Request().Context())
	if err != nil {
		return err
	}
	return appPage(ctx, "Profile", "profile", idn, ui.ProfilePage(idn, cats, topics))
}

// upload publishes a new post from the multipart form, streaming the file
// through the service untouched.
func upload(typ content.PostType) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		_, ok, err := guard(ctx, session.Requirement{})
		if !ok {
			return err
		}
		as := appSession(ctx)

		header, err := ctx.FormFile("file")
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "File wajib diunggah")
		}
		src, err := header.Open()
		if err != nil {
			return err
		}
		defer src.Close()

		up := content.Upload{
			Title:       ctx.FormValue("title"),
			Description: ctx.FormValue("description"),
			CategoryID:  ctx.FormValue("category_id"),
			Filename:    header.Filename,
			File:        src,
			Size:        header.Size,
		}
		if typ == content.TypeELearning {
			err = as.Content.UploadELearning(ctx.Request().Context(), up)
		} else {
			err = as.Content.UploadWork(ctx.Request().Context(), up)
		}
		if err != nil {
			return err
		}
		return ctx.Redirect(http.StatusSeeOther, "/"+string(typ))
	}
}

// submitReport files a report or general feedback from the profile dialog.
func submitReport(ctx echo.Context) error {
	_, ok, err := guard(ctx, session.Requirement{})
	if !ok {
		return err
	}
	as := appSession(ctx)

	var postID *string
	if v := ctx.FormValue("post_id"); v != "" {
		postID = &v
	}
	if err := as.Content.SubmitReport(ctx.Request().Context(), ctx.FormValue("topic_id"), ctx.FormValue("description"), postID); err != nil {
		return err
	}
	return ctx.Redirect(http.StatusSeeOther, "/profile")
}

func validationQueue(ctx echo.Context) error {
	idn, ok, err := guard(ctx, session.Requirement{Roles: []identity.Role{identity.RoleDosen}})
	if !ok {
		return err
	}
	as := appSession(ctx)
	posts, err := as.Content.ValidationQueue(ctx.Request().Context())
	if err != nil {
		return err
	}
	return appPage(ctx, "Validation", "validation", idn, ui.ValidationQueuePage(posts))
}

// validatePost records a moderation outcome. Not optimistic: a failure
// surfaces and the queue is only re-rendered from server truth.
func validatePost(ctx echo.Context) error {
	_, ok, err := guard(ctx, session.Requirement{Roles: []identity.Role{identity.RoleDosen}})
	if !ok {
		return err
	}
	as := appSession(ctx)
	action := content.ValidationAction(ctx.FormValue("status"))
	if err := as.Content.Validate(ctx.Request().Context(), ctx.Param("id"), action); err != nil {
		return err
	}
	return ctx.Redirect(http.StatusSeeOther, "/validation")
}

var adminOnly = session.Requirement{Roles: []identity.Role{identity.RoleAdmin}}

// adminHome is the admin-area entry: it refreshes the pending badge once, as
// entering the area is the one trigger the badge has.
func adminHome(ctx echo.Context) error {
	idn, ok, err := guard(ctx, adminOnly)
	if !ok {
		return err
	}
	as := appSession(ctx)
	as.Admin.Refresh(ctx.Request().Context())
	return appPage(ctx, "Admin", "", idn, ui.AdminHomePage(as.Admin.PendingCount()))
}

func adminUsers(ctx echo.Context) error {
	idn, ok, err := guard(ctx, adminOnly)
	if !ok {
		return err
	}
	as := appSession(ctx)
	pending, err := as.AdminSvc.PendingUsers(ctx.Request().Context())
	if err != nil {
		return err
	}
	accounts, err := as.AdminSvc.Users(ctx.Request().Context())
	if err != nil {
		return err
	}
	return appPage(ctx, "Kelola Users", "admin-users", idn, ui.UsersPage(pending, accounts))
}

func adminApprove(ctx echo.Context) error {
	return adminDecide(ctx, true)
}

func adminReject(ctx echo.Context) error {
	return adminDecide(ctx, false)
}

// adminDecide approves or rejects one account, then re-fetches the badge
// count; the counter is never adjusted locally.
func adminDecide(ctx echo.Context, approve bool) error {
	_, ok, err := guard(ctx, adminOnly)
	if !ok {
		return err
	}
	as := appSession(ctx)
	id := ctx.Param("id")

	if approve {
		err = as.AdminSvc.Approve(ctx.Request().Context(), id)
	} else {
		err = as.AdminSvc.Reject(ctx.Request().Context(), id)
	}
	if err != nil {
		return err
	}

	as.Admin.Refresh(ctx.Request().Context())
	return ctx.Redirect(http.StatusSeeOther, "/admin/users")
}

func adminEditUser(ctx echo.Context) error {
	idn, ok, err := guard(ctx, adminOnly)
	if !ok {
		return err
	}
	as := appSession(ctx)
	accounts, err := as.AdminSvc.Users(ctx.Request().Context())
	if err != nil {
		return err
	}
	id := ctx.Param("id")
	for _, u := range accounts {
		if u.ID == id {
			return appPage(ctx, "Edit Akun", "admin-users", idn, ui.EditUserPage(u))
		}
	}
	return echo.NewHTTPError(http.StatusNotFound, "Akun tidak ditemukan")
}

// adminUpdateUser submits the full-replace payload; a failed update leaves
// the account untouched and surfaces the error.
func adminUpdateUser(ctx echo.Context) error {
	_, ok, err := guard(ctx, adminOnly)
	if !ok {
		return err
	}
	as := appSession(ctx)
	upd := admin.AccountUpdate{
		FullName: ctx.FormValue("fullname"),
		Email:    ctx.FormValue("email"),
		UserType: identity.UserType(ctx.FormValue("user_type")),
		IsActive: ctx.FormValue("is_active") == "on",
	}
	if err := as.AdminSvc.UpdateUser(ctx.Request().Context(), ctx.Param("id"), upd); err != nil {
		return err
	}
	return ctx.Redirect(http.StatusSeeOther, "/admin/users")
}

func adminDeleteUser(ctx echo.Context) error {
	_, ok, err := guard(ctx, adminOnly)
	if !ok {
		return err
	}
	as := appSession(ctx)
	if err := as.AdminSvc.DeleteUser(ctx.Request().Context(), ctx.Param("id")); err != nil {
		return err
	}
	return ctx.Redirect(http.StatusSeeOther, "/admin/users")
}

func adminContents(ctx echo.Context) error {
	idn, ok, err := guard(ctx, adminOnly)
	if !ok {
		return err
	}
	as := appSession(ctx)
	posts, err := as.Content.Posts(ctx.Request().Context(), 50, 0)
	if err != nil {
		return err
	}
	return appPage(ctx, "Kelola Konten", "admin-contents", idn, ui.ContentsPage(posts))
}

func adminDeletePost(ctx echo.Context) error {
	_, ok, err := guard(ctx, adminOnly)
	if !ok {
		return err
	}
	as := appSession(ctx)
	if err := as.AdminSvc.DeletePost(ctx.Request().Context(), ctx.Param("id")); err != nil {
		return err
	}
	return ctx.Redirect(http.StatusSeeOther, "/admin/contents")
}

func adminCategories(ctx echo.Context) error {
	idn, ok, err := guard(ctx, adminOnly)
	if !ok {
		return err
	}
	as := appSession(ctx)
	cats, err := as.AdminSvc.Categories(ctx.Request().Context())
	if err != nil {
		return err
	}
	deps, err := as.AdminSvc.Departments(ctx.Request().Context())
	if err != nil {
		return err
	}
	return appPage(ctx, "Kategori & Jurusan", "admin-categories", idn, ui.CategoriesPage(cats, deps))
}

func adminCreateCategory(ctx echo.Context) error {
	_, ok, err := guard(ctx, adminOnly)
	if !ok {
		return err
	}
	as := appSession(ctx)
	upd := admin.CategoryUpdate{
		Name:              ctx.FormValue("name"),
		IsRelatedToCampus: ctx.FormValue("is_related_to_campus") == "on",
	}
	if err := as.AdminSvc.CreateCategory(ctx.Request().Context(), upd); err != nil {
		return err
	}
	return ctx.Redirect(http.StatusSeeOther, "/admin/categories")
}

func adminUpdateCategory(ctx echo.Context) error {
	_, ok, err := guard(ctx, adminOnly)
	if !ok {
		return err
	}
	as := appSession(ctx)
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Kategori tidak valid")
	}
	upd := admin.CategoryUpdate{
		Name:              ctx.FormValue("name"),
		IsRelatedToCampus: ctx.FormValue("is_related_to_campus") == "on",
	}
	if err := as.AdminSvc.UpdateCategory(ctx.Request().Context(), id, upd); err != nil {
		return err
	}
	return ctx.Redirect(http.StatusSeeOther, "/admin/categories")
}

func adminDeleteCategory(ctx echo.Context) error {
	_, ok, err := guard(ctx, adminOnly)
	if !ok {
		return err
	}
	as := appSession(ctx)
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Kategori tidak valid")
	}
	if err := as.AdminSvc.DeleteCategory(ctx.Request().Context(), id); err != nil {
		return err
	}
	return ctx.Redirect(http.StatusSeeOther, "/admin/categories")
}

func adminReports(ctx echo.Context) error {
	idn, ok, err := guard(ctx, adminOnly)
	if !ok {
		return err
	}
	as := appSession(ctx)
	reports, err := as.AdminSvc.Reports(ctx.Request().Context())
	if err != nil {
		return err
	}
	topics, err := as.AdminSvc.FeedbackTopics(ctx.Request().Context())
	if err != nil {
		return err
	}
	return appPage(ctx, "Reports & Feedback", "admin-reports", idn, ui.ReportsPage(reports, topics))
}

func adminReportStatus(ctx echo.Context) error {
	_, ok, err := guard(ctx, adminOnly)
	if !ok {
		return err
	}
	as := appSession(ctx)
	status := admin.ReportStatus(ctx.FormValue("status"))
	if err := as.AdminSvc.UpdateReportStatus(ctx.Request().Context(), ctx.Param("id"), status); err != nil {
		return err
	}
	return ctx.Redirect(http.StatusSeeOther, "/admin/reports")
}

func adminCreateTopic(ctx echo.Context) error {
	_, ok, err := guard(ctx, adminOnly)
	if !ok {
		return err
	}
	as := appSession(ctx)
	if err := as.AdminSvc.CreateFeedbackTopic(ctx.Request().Context(), ctx.FormValue("name")); err != nil {
		return err
	}
	return ctx.Redirect(http.StatusSeeOther, "/admin/reports")
}

func adminRenameTopic(ctx echo.Context) error {
	_, ok, err := guard(ctx, adminOnly)
	if !ok {
		return err
	}
	as := appSession(ctx)
	if err := as.AdminSvc.UpdateFeedbackTopic(ctx.Request().Context(), ctx.Param("id"), ctx.FormValue("name")); err != nil {
		return err
	}
	return ctx.Redirect(http.StatusSeeOther, "/admin/reports")
}

func adminDeleteTopic(ctx echo.Context) error {
	_, ok, err := guard(ctx, adminOnly)
	if !ok {
		return err
	}
	as := appSession(ctx)
	if err := as.AdminSvc.DeleteFeedbackTopic(ctx.Request().Context(), ctx.Param("id")); err != nil {
		return err
	}
	return ctx.Redirect(http.StatusSeeOther, "/admin/reports")
}

func adminActivityLogs(ctx echo.Context) error {
	idn, ok, err := guard(ctx, adminOnly)
	if !ok {
		return err
	}
	as := appSession(ctx)
	logs, err := as.AdminSvc.ActivityLogs(ctx.Request().Context())
	if err != nil {
		return err
	}
	return appPage(ctx, "Activity Logs", "admin-activity-logs", idn, ui.ActivityLogsPage(logs))
}
