package admin

import (
	"context"
	"fmt"

	"github.com/shareulbi/webcore/core"
	"github.com/shareulbi/webcore/core/content"
	"github.com/shareulbi/webcore/core/identity"
)

// Service wraps the administrative endpoints. Mutations here are never
// optimistic: callers touch their local state only after a call returns nil,
// and surface the error otherwise.
type Service struct {
	api core.APIClient
}

func NewService(api core.APIClient) *Service {
	return &Service{api: api}
}

type pendingCount struct {
	Count int `json:"count"`
}

// PendingCount returns the number of accounts awaiting approval.
func (svc *Service) PendingCount(ctx context.Context) (int, error) {
	var resp pendingCount
	if err := svc.api.Get(ctx, "/admin/users/pending/count", &resp); err != nil {
		return 0, err
	}
	return resp.Count, nil
}

func (svc *Service) Users(ctx context.Context) ([]AccountRow, error) {
	var users []AccountRow
	if err := svc.api.Get(ctx, "/users", &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (svc *Service) PendingUsers(ctx context.Context) ([]AccountRow, error) {
	var users []AccountRow
	if err := svc.api.Get(ctx, "/admin/users/pending", &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (svc *Service) Approve(ctx context.Context, id string) error {
	return svc.api.Patch(ctx, "/admin/users/"+id+"/approve", nil, nil)
}

func (svc *Service) Reject(ctx context.Context, id string) error {
	return svc.api.Patch(ctx, "/admin/users/"+id+"/reject", nil, nil)
}

func (svc *Service) UpdateUser(ctx context.Context, id string, upd AccountUpdate) error {
	if err := core.Validate.Struct(&upd); err != nil {
		return err
	}
	return svc.api.Put(ctx, "/users/"+id, upd, nil)
}

func (svc *Service) DeleteUser(ctx context.Context, id string) error {
	return svc.api.Delete(ctx, "/users/"+id, nil)
}

func (svc *Service) DeletePost(ctx context.Context, id string) error {
	return svc.api.Delete(ctx, "/posts/"+id, nil)
}

func (svc *Service) Categories(ctx context.Context) ([]content.Category, error) {
	var cats []content.Category
	if err := svc.api.Get(ctx, "/categories", &cats); err != nil {
		return nil, err
	}
	return cats, nil
}

func (svc *Service) CreateCategory(ctx context.Context, upd CategoryUpdate) error {
	if err := upd.validate(); err != nil {
		return err
	}
	return svc.api.Post(ctx, "/categories", upd, nil)
}

func (svc *Service) UpdateCategory(ctx context.Context, id int, upd CategoryUpdate) error {
	if err := upd.validate(); err != nil {
		return err
	}
	return svc.api.Put(ctx, fmt.Sprintf("/categories/%d", id), upd, nil)
}

func (svc *Service) DeleteCategory(ctx context.Context, id int) error {
	return svc.api.Delete(ctx, fmt.Sprintf("/categories/%d", id), nil)
}

func (upd *CategoryUpdate) validate() error {
	upd.Name = core.CleanString(upd.Name)
	if !upd.IsRelatedToCampus {
		upd.DepartmentIDs = []int{}
	}
	return core.Validate.Struct(upd)
}

func (svc *Service) Departments(ctx context.Context) ([]identity.Department, error) {
	var deps []identity.Department
	if err := svc.api.Get(ctx, "/departments", &deps); err != nil {
		return nil, err
	}
	return deps, nil
}

func (svc *Service) FeedbackTopics(ctx context.Context) ([]FeedbackTopic, error) {
	var topics []FeedbackTopic
	if err := svc.api.Get(ctx, "/feedback-topics", &topics); err != nil {
		return nil, err
	}
	return topics, nil
}

func (svc *Service) CreateFeedbackTopic(ctx context.Context, name string) error {
	return svc.api.Post(ctx, "/feedback-topics", map[string]string{"name": name}, nil)
}

func (svc *Service) UpdateFeedbackTopic(ctx context.Context, id, name string) error {
	return svc.api.Put(ctx, "/feedback-topics/"+id, map[string]string{"name": name}, nil)
}

func (svc *Service) DeleteFeedbackTopic(ctx context.Context, id string) error {
	return svc.api.Delete(ctx, "/feedback-topics/"+id, nil)
}

func (svc *Service) Reports(ctx context.Context) ([]Report, error) {
	var reports []Report
	if err := svc.api.Get(ctx, "/reports-feedbacks", &reports); err != nil {
		return nil, err
	}
	return reports, nil
}

func (svc *Service) UpdateReportStatus(ctx context.Context, id string, status ReportStatus) error {
	body := map[string]ReportStatus{"status": status}
	return svc.api.Put(ctx, "/reports-feedbacks/"+id+"/status", body, nil)
}

func (svc *Service) ActivityLogs(ctx context.Context) ([]ActivityLog, error) {
	var logs []ActivityLog
	if err := svc.api.Get(ctx, "/users/activity-logs", &logs); err != nil {
		return nil, err
	}
	return logs, nil
}
