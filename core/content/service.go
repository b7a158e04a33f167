package content

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/shareulbi/webcore/core"
)

// MaxUploadSize caps uploaded media at 50MB, same as the upload dialogs.
const MaxUploadSize = 50 << 20

var errFileTooLarge = errors.New("file exceeds the 50MB limit")

type (
	// Upload contains everything needed to publish a new e-learning video or
	// work document. The file travels as a multipart part, the rest as plain
	// form fields.
	Upload struct {
		Title       string `json:"title" validate:"required"`
		Description string `json:"description" validate:"required"`
		CategoryID  string `json:"category_id" validate:"required"`

		Filename string
		File     io.Reader
		Size     int64
	}

	Service struct {
		api core.APIClient
	}
)

func NewService(api core.APIClient) *Service {
	return &Service{api: api}
}

func (up *Upload) Validate() error {
	up.Title = core.CleanString(up.Title)
	up.Description = core.CleanString(up.Description)
	if err := core.Validate.Struct(up); err != nil {
		return err
	}
	if up.Size > MaxUploadSize {
		return core.NewValidationError(errFileTooLarge, core.FieldError{Field: "file", Error: errFileTooLarge.Error()})
	}
	return nil
}

func (svc *Service) Posts(ctx context.Context, limit, offset int) ([]PostItem, error) {
	var posts []PostItem
	path := fmt.Sprintf("/posts?limit=%d&offset=%d", limit, offset)
	if err := svc.api.Get(ctx, path, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (svc *Service) Post(ctx context.Context, id string) (PostDetail, error) {
	var post PostDetail
	if err := svc.api.Get(ctx, "/posts/"+id, &post); err != nil {
		return PostDetail{}, err
	}
	return post, nil
}

// UploadELearning publishes a new e-learning video. The progress option, when
// given, reports multipart body bytes as they are sent.
func (svc *Service) UploadELearning(ctx context.Context, up Upload, opts ...core.CallOption) error {
	return svc.upload(ctx, "/e-learning", up, opts...)
}

// UploadWork publishes a new work document.
func (svc *Service) UploadWork(ctx context.Context, up Upload, opts ...core.CallOption) error {
	return svc.upload(ctx, "/works", up, opts...)
}

func (svc *Service) upload(ctx context.Context, path string, up Upload, opts ...core.CallOption) error {
	if err := up.Validate(); err != nil {
		return err
	}
	form := &core.Form{
		Fields: map[string]string{
			"title":       up.Title,
			"description": up.Description,
			"category_id": up.CategoryID,
		},
		Files: []core.FormFile{
			{Field: "file", Filename: up.Filename, Content: up.File, Size: up.Size},
		},
	}
	return svc.api.Post(ctx, path, form, nil, opts...)
}

// ValidationQueue lists posts awaiting dosen moderation.
func (svc *Service) ValidationQueue(ctx context.Context) ([]ValidatablePost, error) {
	var posts []ValidatablePost
	if err := svc.api.Get(ctx, "/validation/posts", &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// Validate records a moderation outcome for one queued post. No optimistic
// mutation here: the caller removes the row from its list only after this
// returns nil.
func (svc *Service) Validate(ctx context.Context, id string, action ValidationAction) error {
	body := map[string]ValidationAction{"status": action}
	return svc.api.Post(ctx, "/validation/posts/"+id+"/validate", body, nil)
}

// FeedbackTopic is an active topic the report dialog can file under.
type FeedbackTopic struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	IsActive bool   `json:"is_active"`
}

func (svc *Service) FeedbackTopics(ctx context.Context) ([]FeedbackTopic, error) {
	var topics []FeedbackTopic
	if err := svc.api.Get(ctx, "/feedback-topics", &topics); err != nil {
		return nil, err
	}
	return topics, nil
}

// SubmitReport files a report or feedback. postID is nil for general
// feedback not tied to a post.
func (svc *Service) SubmitReport(ctx context.Context, topicID, description string, postID *string) error {
	body := map[string]interface{}{
		"topic_id":    topicID,
		"description": description,
		"post_id":     postID,
	}
	return svc.api.Post(ctx, "/reports-feedbacks", body, nil)
}

// LoadPost fetches a post in the background and hands it to apply, but only
// while gen is still the guard's current generation. A view that navigated
// away in the meantime never sees the stale result.
func (svc *Service) LoadPost(ctx context.Context, id string, gen Gen, apply func(PostDetail, error)) {
	go func() {
		post, err := svc.Post(ctx, id)
		if !gen.Current() {
			return
		}
		apply(post, err)
	}()
}
