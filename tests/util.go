package testutil

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/shareulbi/webcore/core/content"
	"github.com/shareulbi/webcore/core/identity"
)

// Account is a registered user on the fake upstream together with its
// plain-text password.
type Account struct {
	Identity identity.Identity
	Password string
}

// UploadRecord is one multipart publish the fake received.
type UploadRecord struct {
	Path        string
	Title       string
	Description string
	CategoryID  string
	Filename    string
	Size        int64
}

// FakeTopic is a feedback topic as the fake serves it.
type FakeTopic struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	IsActive bool   `json:"is_active"`
}

// FakeReport is a filed report as the fake serves it; status updates mutate
// it in place.
type FakeReport struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Status      string  `json:"status"`
	CreatedAt   string  `json:"created_at"`
	Reporter    string  `json:"reporter"`
	Topic       string  `json:"topic"`
	PostTitle   *string `json:"post_title"`
}

// FakeAPI is an in-process stand-in for the campus backend. It speaks the
// subset of the REST surface the client packages exercise in tests and
// tracks the calls it receives.
type FakeAPI struct {
	Server *httptest.Server

	mu       sync.Mutex
	accounts map[string]Account // keyed by email
	sessions map[string]string  // session token -> email
	posts    map[string]content.PostDetail

	departments []identity.Department
	categories  []content.Category
	topics      []FakeTopic
	reports     []FakeReport
	nextCatID   int

	PendingCount     int
	FailPendingCount bool
	FailToggles      bool

	LikeCalls     map[string]int
	BookmarkCalls map[string]int
	Approved      []string
	Rejected      []string

	registrations    []echo.Map
	uploads          []UploadRecord
	deletedPosts     []string
	deletedUsers     []string
	updatedUsers     map[string]echo.Map
	submittedReports []echo.Map
	validations      map[string]string
}

func NewFakeAPI() *FakeAPI {
	api := &FakeAPI{
		accounts:      make(map[string]Account),
		sessions:      make(map[string]string),
		posts:         make(map[string]content.PostDetail),
		LikeCalls:     make(map[string]int),
		BookmarkCalls: make(map[string]int),
		updatedUsers:  make(map[string]echo.Map),
		validations:   make(map[string]string),
		departments: []identity.Department{
			{ID: "1", Name: "Teknik Informatika"},
			{ID: "2", Name: "Sistem Informasi"},
		},
		categories: []content.Category{
			{ID: 1, Name: "Pemrograman", IsRelatedToCampus: true},
		},
		topics: []FakeTopic{
			{ID: "t0", Name: "Konten tidak pantas", IsActive: true},
		},
		nextCatID: 1,
	}

	e := echo.New()
	e.HideBanner = true
	e.POST("/login", api.login)
	e.POST("/logout", api.logout)
	e.GET("/me", api.me)
	e.POST("/register", api.register)
	e.GET("/departments", api.listDepartments)
	e.GET("/posts", api.listPosts)
	e.GET("/posts/:id", api.getPost)
	e.DELETE("/posts/:id", api.deletePost)
	e.POST("/posts/:id/like", api.toggle("like"))
	e.POST("/posts/:id/bookmark", api.toggle("bookmark"))
	e.POST("/e-learning", api.upload)
	e.POST("/works", api.upload)
	e.GET("/categories", api.listCategories)
	e.POST("/categories", api.createCategory)
	e.PUT("/categories/:id", api.updateCategory)
	e.DELETE("/categories/:id", api.deleteCategory)
	e.GET("/feedback-topics", api.listTopics)
	e.POST("/feedback-topics", api.createTopic)
	e.PUT("/feedback-topics/:id", api.renameTopic)
	e.DELETE("/feedback-topics/:id", api.deleteTopic)
	e.GET("/reports-feedbacks", api.listReports)
	e.POST("/reports-feedbacks", api.submitReport)
	e.PUT("/reports-feedbacks/:id/status", api.reportStatus)
	e.GET("/validation/posts", api.validationQueue)
	e.POST("/validation/posts/:id/validate", api.validatePost)
	e.GET("/users", api.listUsers)
	e.PUT("/users/:id", api.updateUser)
	e.DELETE("/users/:id", api.deleteUser)
	e.GET("/users/activity-logs", api.activityLogs)
	e.GET("/admin/users/pending/count", api.pendingCount)
	e.GET("/admin/users/pending", api.pendingUsers)
	e.PATCH("/admin/users/:id/approve", api.decide("approve"))
	e.PATCH("/admin/users/:id/reject", api.decide("reject"))

	api.Server = httptest.NewServer(e)
	return api
}

func (f *FakeAPI) URL() string { return f.Server.URL }

func (f *FakeAPI) Close() { f.Server.Close() }

// AddAccount registers an account the fake will authenticate.
func (f *FakeAPI) AddAccount(idn identity.Identity, password string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.accounts[idn.Email] = Account{Identity: idn, Password: password}
}

// AddPost seeds a post retrievable via /posts and /posts/{id}.
func (f *FakeAPI) AddPost(post content.PostDetail) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.posts[post.ID] = post
}

func (f *FakeAPI) login(ctx echo.Context) error {
	var creds struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := ctx.Bind(&creds); err != nil {
		return ctx.JSON(http.StatusBadRequest, echo.Map{"message": "malformed request"})
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	account, ok := f.accounts[creds.Email]
	if !ok || account.Password != creds.Password {
		return ctx.JSON(http.StatusUnauthorized, echo.Map{"message": "Email atau password salah"})
	}

	token := uuid.New().String()
	f.sessions[token] = creds.Email
	ctx.SetCookie(&http.Cookie{Name: "session", Value: token, Path: "/"})
	return ctx.JSON(http.StatusOK, echo.Map{"user": account.Identity})
}

func (f *FakeAPI) logout(ctx echo.Context) error {
	if cookie, err := ctx.Cookie("session"); err == nil {
		f.mu.Lock()
		delete(f.sessions, cookie.Value)
		f.mu.Unlock()
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (f *FakeAPI) authed(ctx echo.Context) (identity.Identity, bool) {
	cookie, err := ctx.Cookie("session")
	if err != nil {
		return identity.Identity{}, false
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	email, ok := f.sessions[cookie.Value]
	if !ok {
		return identity.Identity{}, false
	}
	return f.accounts[email].Identity, true
}

func (f *FakeAPI) me(ctx echo.Context) error {
	idn, ok := f.authed(ctx)
	if !ok {
		return ctx.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthenticated"})
	}
	return ctx.JSON(http.StatusOK, idn)
}

func (f *FakeAPI) listPosts(ctx echo.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	items := make([]content.PostItem, 0, len(f.posts))
	for _, post := range f.posts {
		items = append(items, content.PostItem{
			ID:         post.ID,
			Title:      post.Title,
			Type:       post.Type,
			Status:     post.Status,
			Categories: post.Categories,
			Reaction:   post.Reaction,
		})
	}
	return ctx.JSON(http.StatusOK, items)
}

func (f *FakeAPI) getPost(ctx echo.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	post, ok := f.posts[ctx.Param("id")]
	if !ok {
		return ctx.JSON(http.StatusNotFound, echo.Map{"message": "post not found"})
	}
	return ctx.JSON(http.StatusOK, post)
}

func (f *FakeAPI) toggle(action string) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		f.mu.Lock()
		defer f.mu.Unlock()
		id := ctx.Param("id")
		if action == "like" {
			f.LikeCalls[id]++
		} else {
			f.BookmarkCalls[id]++
		}
		if f.FailToggles {
			return ctx.JSON(http.StatusInternalServerError, echo.Map{"message": "toggle failed"})
		}
		return ctx.NoContent(http.StatusNoContent)
	}
}

func (f *FakeAPI) pendingCount(ctx echo.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.FailPendingCount {
		return ctx.JSON(http.StatusInternalServerError, echo.Map{"message": "boom"})
	}
	return ctx.JSON(http.StatusOK, echo.Map{"count": f.PendingCount})
}

func (f *FakeAPI) pendingUsers(ctx echo.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	pending := make([]echo.Map, 0)
	for _, account := range f.accounts {
		idn := account.Identity
		if idn.OnboardingStatus != identity.OnboardingPending {
			continue
		}
		pending = append(pending, echo.Map{
			"id":                idn.ID,
			"fullname":          idn.FullName,
			"email":             idn.Email,
			"role":              string(idn.Role.Name),
			"user_type":         string(idn.Role.Name),
			"onboarding_status": idn.OnboardingStatus,
		})
	}
	return ctx.JSON(http.StatusOK, pending)
}

func (f *FakeAPI) register(ctx echo.Context) error {
	var reg echo.Map
	if err := ctx.Bind(&reg); err != nil {
		return ctx.JSON(http.StatusBadRequest, echo.Map{"message": "malformed request"})
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.registrations = append(f.registrations, reg)
	return ctx.NoContent(http.StatusCreated)
}

func (f *FakeAPI) listDepartments(ctx echo.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return ctx.JSON(http.StatusOK, f.departments)
}

func (f *FakeAPI) deletePost(ctx echo.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	id := ctx.Param("id")
	delete(f.posts, id)
	f.deletedPosts = append(f.deletedPosts, id)
	return ctx.NoContent(http.StatusNoContent)
}

func (f *FakeAPI) upload(ctx echo.Context) error {
	header, err := ctx.FormFile("file")
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, echo.Map{"message": "file is required"})
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.uploads = append(f.uploads, UploadRecord{
		Path:        ctx.Path(),
		Title:       ctx.FormValue("title"),
		Description: ctx.FormValue("description"),
		CategoryID:  ctx.FormValue("category_id"),
		Filename:    header.Filename,
		Size:        header.Size,
	})
	return ctx.NoContent(http.StatusCreated)
}

func (f *FakeAPI) listCategories(ctx echo.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return ctx.JSON(http.StatusOK, f.categories)
}

func (f *FakeAPI) createCategory(ctx echo.Context) error {
	var upd struct {
		Name              string `json:"name"`
		IsRelatedToCampus bool   `json:"is_related_to_campus"`
	}
	if err := ctx.Bind(&upd); err != nil {
		return ctx.JSON(http.StatusBadRequest, echo.Map{"message": "malformed request"})
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextCatID++
	f.categories = append(f.categories, content.Category{
		ID:                f.nextCatID,
		Name:              upd.Name,
		IsRelatedToCampus: upd.IsRelatedToCampus,
	})
	return ctx.NoContent(http.StatusCreated)
}

func (f *FakeAPI) updateCategory(ctx echo.Context) error {
	var upd struct {
		Name              string `json:"name"`
		IsRelatedToCampus bool   `json:"is_related_to_campus"`
	}
	if err := ctx.Bind(&upd); err != nil {
		return ctx.JSON(http.StatusBadRequest, echo.Map{"message": "malformed request"})
	}
	id, _ := strconv.Atoi(ctx.Param("id"))
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.categories {
		if f.categories[i].ID == id {
			f.categories[i].Name = upd.Name
			f.categories[i].IsRelatedToCampus = upd.IsRelatedToCampus
			return ctx.NoContent(http.StatusNoContent)
		}
	}
	return ctx.JSON(http.StatusNotFound, echo.Map{"message": "category not found"})
}

func (f *FakeAPI) deleteCategory(ctx echo.Context) error {
	id, _ := strconv.Atoi(ctx.Param("id"))
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.categories {
		if f.categories[i].ID == id {
			f.categories = append(f.categories[:i], f.categories[i+1:]...)
			return ctx.NoContent(http.StatusNoContent)
		}
	}
	return ctx.JSON(http.StatusNotFound, echo.Map{"message": "category not found"})
}

func (f *FakeAPI) listTopics(ctx echo.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return ctx.JSON(http.StatusOK, f.topics)
}

func (f *FakeAPI) createTopic(ctx echo.Context) error {
	var body struct {
		Name string `json:"name"`
	}
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, echo.Map{"message": "malformed request"})
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.topics = append(f.topics, FakeTopic{ID: "t" + newID(), Name: body.Name, IsActive: true})
	return ctx.NoContent(http.StatusCreated)
}

func (f *FakeAPI) renameTopic(ctx echo.Context) error {
	var body struct {
		Name string `json:"name"`
	}
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, echo.Map{"message": "malformed request"})
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.topics {
		if f.topics[i].ID == ctx.Param("id") {
			f.topics[i].Name = body.Name
			return ctx.NoContent(http.StatusNoContent)
		}
	}
	return ctx.JSON(http.StatusNotFound, echo.Map{"message": "topic not found"})
}

func (f *FakeAPI) deleteTopic(ctx echo.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.topics {
		if f.topics[i].ID == ctx.Param("id") {
			f.topics = append(f.topics[:i], f.topics[i+1:]...)
			return ctx.NoContent(http.StatusNoContent)
		}
	}
	return ctx.JSON(http.StatusNotFound, echo.Map{"message": "topic not found"})
}

func (f *FakeAPI) listReports(ctx echo.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return ctx.JSON(http.StatusOK, f.reports)
}

func (f *FakeAPI) submitReport(ctx echo.Context) error {
	var body echo.Map
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, echo.Map{"message": "malformed request"})
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.submittedReports = append(f.submittedReports, body)
	return ctx.NoContent(http.StatusCreated)
}

func (f *FakeAPI) reportStatus(ctx echo.Context) error {
	var body struct {
		Status string `json:"status"`
	}
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, echo.Map{"message": "malformed request"})
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.reports {
		if f.reports[i].ID == ctx.Param("id") {
			f.reports[i].Status = body.Status
			return ctx.NoContent(http.StatusNoContent)
		}
	}
	return ctx.JSON(http.StatusNotFound, echo.Map{"message": "report not found"})
}

func (f *FakeAPI) validationQueue(ctx echo.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	queue := make([]echo.Map, 0)
	for _, post := range f.posts {
		if post.Status != "pending" {
			continue
		}
		queue = append(queue, echo.Map{
			"id":          post.ID,
			"title":       post.Title,
			"type":        post.Type,
			"author_name": post.Author.Name,
		})
	}
	return ctx.JSON(http.StatusOK, queue)
}

func (f *FakeAPI) validatePost(ctx echo.Context) error {
	var body struct {
		Status string `json:"status"`
	}
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, echo.Map{"message": "malformed request"})
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.validations[ctx.Param("id")] = body.Status
	return ctx.NoContent(http.StatusNoContent)
}

func (f *FakeAPI) listUsers(ctx echo.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	users := make([]echo.Map, 0, len(f.accounts))
	for _, account := range f.accounts {
		idn := account.Identity
		users = append(users, echo.Map{
			"id":                idn.ID,
			"fullname":          idn.FullName,
			"email":             idn.Email,
			"role":              string(idn.Role.Name),
			"user_type":         string(idn.Role.Name),
			"is_active":         true,
			"onboarding_status": idn.OnboardingStatus,
		})
	}
	return ctx.JSON(http.StatusOK, users)
}

func (f *FakeAPI) updateUser(ctx echo.Context) error {
	body := echo.Map{}
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, echo.Map{"message": "malformed request"})
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updatedUsers[ctx.Param("id")] = body
	return ctx.NoContent(http.StatusNoContent)
}

func (f *FakeAPI) deleteUser(ctx echo.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deletedUsers = append(f.deletedUsers, ctx.Param("id"))
	return ctx.NoContent(http.StatusNoContent)
}

func (f *FakeAPI) activityLogs(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, []echo.Map{
		{"id": 1, "fullname": "Admin ShareULBI", "action": "login", "created_at": "2026-01-05T08:00:00Z"},
		{"id": 2, "fullname": "Budi Santoso", "action": "upload", "description": "Pengantar Basis Data", "created_at": "2026-01-05T09:30:00Z"},
	})
}

func (f *FakeAPI) decide(action string) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		f.mu.Lock()
		defer f.mu.Unlock()
		id := ctx.Param("id")
		if action == "approve" {
			f.Approved = append(f.Approved, id)
		} else {
			f.Rejected = append(f.Rejected, id)
		}
		return ctx.NoContent(http.StatusNoContent)
	}
}

// ToggleCalls returns how many like requests the fake saw for a post.
func (f *FakeAPI) ToggleCalls(id string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.LikeCalls[id]
}

func (f *FakeAPI) SetPendingCount(n int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.PendingCount = n
}

func (f *FakeAPI) SetFailPendingCount(fail bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.FailPendingCount = fail
}

func (f *FakeAPI) SetFailToggles(fail bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.FailToggles = fail
}

func (f *FakeAPI) ApprovedIDs() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.Approved...)
}

func (f *FakeAPI) RejectedIDs() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.Rejected...)
}

// AddReport seeds a filed report the admin views can act on.
func (f *FakeAPI) AddReport(r FakeReport) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reports = append(f.reports, r)
}

func (f *FakeAPI) Registrations() []echo.Map {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]echo.Map(nil), f.registrations...)
}

func (f *FakeAPI) Uploads() []UploadRecord {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]UploadRecord(nil), f.uploads...)
}

func (f *FakeAPI) CategoryList() []content.Category {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]content.Category(nil), f.categories...)
}

func (f *FakeAPI) TopicList() []FakeTopic {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]FakeTopic(nil), f.topics...)
}

func (f *FakeAPI) ReportList() []FakeReport {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]FakeReport(nil), f.reports...)
}

func (f *FakeAPI) SubmittedReports() []echo.Map {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]echo.Map(nil), f.submittedReports...)
}

func (f *FakeAPI) DeletedPostIDs() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.deletedPosts...)
}

func (f *FakeAPI) DeletedUserIDs() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.deletedUsers...)
}

func (f *FakeAPI) UpdatedUser(id string) (echo.Map, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	upd, ok := f.updatedUsers[id]
	return upd, ok
}

func (f *FakeAPI) Validations() map[string]string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make(map[string]string, len(f.validations))
	for k, v := range f.validations {
		out[k] = v
	}
	return out
}

// --- fixtures ---

var nextID int

func newID() string {
	nextID++
	return strconv.Itoa(nextID)
}

func NewMahasiswa(status identity.OnboardingStatus) identity.Identity {
	return identity.Identity{
		ID:               newID(),
		FullName:         "Budi Santoso",
		Email:            "budi" + newID() + "@student.ulbi.ac.id",
		OnboardingStatus: status,
		Role:             identity.RoleRef{ID: 1, Name: identity.RoleMahasiswa},
		Department:       &identity.Department{ID: "1", Name: "Teknik Informatika"},
	}
}

func NewDosen(status identity.OnboardingStatus) identity.Identity {
	return identity.Identity{
		ID:               newID(),
		FullName:         "Dr. Sari Wulandari",
		Email:            "sari" + newID() + "@ulbi.ac.id",
		OnboardingStatus: status,
		Role:             identity.RoleRef{ID: 2, Name: identity.RoleDosen},
		Department:       &identity.Department{ID: "1", Name: "Teknik Informatika"},
	}
}

func NewAdmin() identity.Identity {
	return identity.Identity{
		ID:               newID(),
		FullName:         "Admin ShareULBI",
		Email:            "admin" + newID() + "@ulbi.ac.id",
		OnboardingStatus: identity.OnboardingApproved,
		Role:             identity.RoleRef{ID: 3, Name: identity.RoleAdmin},
	}
}

func NewPost(id string, typ content.PostType) content.PostDetail {
	return content.PostDetail{
		ID:     id,
		Title:  "Pengantar Basis Data",
		Type:   typ,
		Status: "validated",
		Author: content.Author{ID: "9", Name: "Dr. Sari Wulandari", Role: "dosen"},
		Categories: []content.Category{
			{ID: 1, Name: "Pemrograman"},
		},
		Reaction: content.Reaction{LikesCount: 5},
	}
}
