package admin

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shareulbi/webcore/core"
	"github.com/shareulbi/webcore/core/identity"
	restsvc "github.com/shareulbi/webcore/services/rest"
	testutil "github.com/shareulbi/webcore/tests"
)

func newServiceWithFake(t *testing.T) (*Service, *testutil.FakeAPI) {
	t.Helper()
	fake := testutil.NewFakeAPI()
	t.Cleanup(fake.Close)

	client, err := restsvc.NewClient(&core.Config{APIBaseURL: fake.URL()})
	if err != nil {
		t.Fatalf("NewClient() failed: %v", err)
	}
	return NewService(client), fake
}

func Test_Service_categoryCRUD(t *testing.T) {
	svc, _ := newServiceWithFake(t)
	ctx := context.Background()

	cats, err := svc.Categories(ctx)
	if err != nil {
		t.Fatalf("Categories() failed: %v", err)
	}
	if assert.Len(t, cats, 1) {
		assert.Equal(t, "Pemrograman", cats[0].Name)
	}

	err = svc.CreateCategory(ctx, CategoryUpdate{Name: "  Jaringan ", IsRelatedToCampus: true, DepartmentIDs: []int{1}})
	if err != nil {
		t.Fatalf("CreateCategory() failed: %v", err)
	}
	cats, _ = svc.Categories(ctx)
	if assert.Len(t, cats, 2) {
		assert.Equal(t, "Jaringan", cats[1].Name) // name is cleaned before it leaves
	}

	err = svc.UpdateCategory(ctx, cats[1].ID, CategoryUpdate{Name: "Jaringan Komputer"})
	if err != nil {
		t.Fatalf("UpdateCategory() failed: %v", err)
	}
	cats, _ = svc.Categories(ctx)
	assert.Equal(t, "Jaringan Komputer", cats[1].Name)

	if err := svc.DeleteCategory(ctx, cats[1].ID); err != nil {
		t.Fatalf("DeleteCategory() failed: %v", err)
	}
	cats, _ = svc.Categories(ctx)
	assert.Len(t, cats, 1)
}

func Test_Service_createCategoryRequiresName(t *testing.T) {
	svc, fake := newServiceWithFake(t)

	err := svc.CreateCategory(context.Background(), CategoryUpdate{Name: "   "})
	assert.Error(t, err)
	assert.Len(t, fake.CategoryList(), 1) // nothing reached the server
}

func Test_Service_reportStatusUpdate(t *testing.T) {
	svc, fake := newServiceWithFake(t)
	fake.AddReport(testutil.FakeReport{
		ID:          "r1",
		Description: "Video tidak sesuai kategori",
		Status:      "pending",
		Reporter:    "Budi Santoso",
		Topic:       "Konten tidak pantas",
	})
	ctx := context.Background()

	reports, err := svc.Reports(ctx)
	if err != nil {
		t.Fatalf("Reports() failed: %v", err)
	}
	if assert.Len(t, reports, 1) {
		assert.Equal(t, ReportPending, reports[0].Status)
	}

	if err := svc.UpdateReportStatus(ctx, "r1", ReportResolved); err != nil {
		t.Fatalf("UpdateReportStatus() failed: %v", err)
	}
	reports, _ = svc.Reports(ctx)
	assert.Equal(t, ReportResolved, reports[0].Status)
}

func Test_Service_feedbackTopicCRUD(t *testing.T) {
	svc, _ := newServiceWithFake(t)
	ctx := context.Background()

	if err := svc.CreateFeedbackTopic(ctx, "Saran fitur"); err != nil {
		t.Fatalf("CreateFeedbackTopic() failed: %v", err)
	}
	topics, err := svc.FeedbackTopics(ctx)
	if err != nil {
		t.Fatalf("FeedbackTopics() failed: %v", err)
	}
	if !assert.Len(t, topics, 2) {
		t.FailNow()
	}
	created := topics[1]
	assert.Equal(t, "Saran fitur", created.Name)

	if err := svc.UpdateFeedbackTopic(ctx, created.ID, "Saran & masukan"); err != nil {
		t.Fatalf("UpdateFeedbackTopic() failed: %v", err)
	}
	topics, _ = svc.FeedbackTopics(ctx)
	assert.Equal(t, "Saran & masukan", topics[1].Name)

	if err := svc.DeleteFeedbackTopic(ctx, created.ID); err != nil {
		t.Fatalf("DeleteFeedbackTopic() failed: %v", err)
	}
	topics, _ = svc.FeedbackTopics(ctx)
	assert.Len(t, topics, 1)
}

func Test_Service_userAdministration(t *testing.T) {
	svc, fake := newServiceWithFake(t)
	student := testutil.NewMahasiswa(identity.OnboardingApproved)
	fake.AddAccount(student, "rahasia123")
	ctx := context.Background()

	users, err := svc.Users(ctx)
	if err != nil {
		t.Fatalf("Users() failed: %v", err)
	}
	if assert.Len(t, users, 1) {
		assert.Equal(t, student.FullName, users[0].FullName)
	}

	upd := AccountUpdate{
		FullName: "Budi S. Wijaya",
		Email:    student.Email,
		UserType: identity.UserTypeMahasiswa,
		IsActive: true,
	}
	if err := svc.UpdateUser(ctx, student.ID, upd); err != nil {
		t.Fatalf("UpdateUser() failed: %v", err)
	}
	sent, ok := fake.UpdatedUser(student.ID)
	if assert.True(t, ok) {
		assert.Equal(t, "Budi S. Wijaya", sent["fullname"])
	}

	if err := svc.DeleteUser(ctx, student.ID); err != nil {
		t.Fatalf("DeleteUser() failed: %v", err)
	}
	assert.Equal(t, []string{student.ID}, fake.DeletedUserIDs())
}

func Test_Service_updateUserValidatesLocally(t *testing.T) {
	svc, fake := newServiceWithFake(t)

	upd := AccountUpdate{FullName: "Budi", Email: "bukan-email", UserType: identity.UserTypeMahasiswa}
	err := svc.UpdateUser(context.Background(), "1", upd)
	assert.Error(t, err)
	_, ok := fake.UpdatedUser("1")
	assert.False(t, ok)
}

func Test_Service_activityLogs(t *testing.T) {
	svc, _ := newServiceWithFake(t)

	logs, err := svc.ActivityLogs(context.Background())
	if err != nil {
		t.Fatalf("ActivityLogs() failed: %v", err)
	}
	if assert.Len(t, logs, 2) {
		assert.Equal(t, "login", logs[0].Action)
		if assert.NotNil(t, logs[1].Description) {
			assert.Equal(t, "Pengantar Basis Data", *logs[1].Description)
		}
	}
}

func Test_Service_departments(t *testing.T) {
	svc, _ := newServiceWithFake(t)

	deps, err := svc.Departments(context.Background())
	if err != nil {
		t.Fatalf("Departments() failed: %v", err)
	}
	if assert.Len(t, deps, 2) {
		assert.Equal(t, "Teknik Informatika", deps[0].Name)
	}
}
