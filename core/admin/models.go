package admin

import "github.com/shareulbi/webcore/core/identity"

// AccountRow is one row of the user-administration tables; a flattened view,
// not the session Identity.
type AccountRow struct {
	ID               string                    `json:"id"`
	FullName         string                    `json:"fullname"`
	Email            string                    `json:"email"`
	Role             string                    `json:"role"`
	Department       string                    `json:"department,omitempty"`
	UserType         identity.UserType         `json:"user_type"`
	IsActive         *bool                     `json:"is_active,omitempty"`
	OnboardingStatus identity.OnboardingStatus `json:"onboarding_status"`
}

// AccountUpdate is the full-replace payload for PUT /users/{id}. Pointer
// fields serialize as explicit nulls when unset, matching what the API
// expects from the edit dialog.
type AccountUpdate struct {
	FullName     string            `json:"fullname" validate:"required"`
	Email        string            `json:"email" validate:"required,email"`
	IsActive     bool              `json:"is_active"`
	AvatarURL    *string           `json:"avatar_url"`
	Bio          *string           `json:"bio"`
	PersonalLink *string           `json:"personal_link"`
	UserType     identity.UserType `json:"user_type" validate:"required,usertype"`
	DepartmentID *string           `json:"department_id"`
	NPM          *string           `json:"npm"`
	NIDN         *string           `json:"nidn"`
	Occupation   *string           `json:"occupation"`
	Password     string            `json:"password,omitempty"`
}

type ReportStatus string

const (
	ReportPending  ReportStatus = "pending"
	ReportReviewed ReportStatus = "reviewed"
	ReportResolved ReportStatus = "resolved"
	ReportRejected ReportStatus = "rejected"
)

type Report struct {
	ID          string       `json:"id"`
	Description string       `json:"description"`
	Status      ReportStatus `json:"status"`
	CreatedAt   string       `json:"created_at"`
	Reporter    string       `json:"reporter"`
	Topic       string       `json:"topic"`
	PostTitle   *string      `json:"post_title"`
}

type FeedbackTopic struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	IsActive bool   `json:"is_active"`
}

type ActivityLog struct {
	ID          int     `json:"id"`
	FullName    string  `json:"fullname"`
	Action      string  `json:"action"`
	Description *string `json:"description"`
	CreatedAt   string  `json:"created_at"`
}

// CategoryUpdate creates or replaces a category. DepartmentIDs only matter
// for campus-related categories and is emptied otherwise.
type CategoryUpdate struct {
	Name              string `json:"name" validate:"required"`
	IsRelatedToCampus bool   `json:"is_related_to_campus"`
	DepartmentIDs     []int  `json:"department_ids"`
}
