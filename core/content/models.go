package content

// PostType discriminates the two content collections.
type PostType string

const (
	TypeELearning PostType = "e-learning"
	TypeWorks     PostType = "works"
)

type Category struct {
	ID                int    `json:"id"`
	Name              string `json:"name"`
	IsRelatedToCampus bool   `json:"is_related_to_campus,omitempty"`
}

// Reaction is the slice of a post's state the optimistic toggles mutate: the
// liked flag, the like counter and the bookmarked flag. Each open view owns
// its own Reaction; two views of the same post may transiently disagree until
// both re-fetch.
type Reaction struct {
	IsLiked      bool `json:"is_liked"`
	LikesCount   int  `json:"likes_count"`
	IsBookmarked bool `json:"is_bookmarked"`
}

// PostItem is the list projection used by the dashboard and collection pages.
type PostItem struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Type        PostType   `json:"type"`
	Status      string     `json:"status"`
	CreatedAt   string     `json:"created_at,omitempty"`
	AuthorName  string     `json:"author_name"`
	AuthorRole  string     `json:"author_role,omitempty"`
	Categories  []Category `json:"categories,omitempty"`

	Reaction
}

type FileMeta struct {
	TotalPages int      `json:"total_pages,omitempty"`
	Pages      []string `json:"pages,omitempty"`
}

type PostFile struct {
	FileURL      string    `json:"file_url"`
	FileType     string    `json:"file_type"`
	Duration     *int      `json:"duration,omitempty"`
	ThumbnailURL *string   `json:"thumbnail_url,omitempty"`
	Meta         *FileMeta `json:"meta,omitempty"`
}

type Author struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Role       string `json:"role"`
	Department string `json:"department,omitempty"`
}

// PostDetail is the full projection shown on detail pages.
type PostDetail struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Type        PostType   `json:"type"`
	Status      string     `json:"status"`
	CreatedAt   string     `json:"created_at"`
	Author      Author     `json:"author"`
	Categories  []Category `json:"categories"`
	Files       []PostFile `json:"files"`

	CommentsCount int `json:"comments_count"`

	Reaction
}

// ValidatablePost is one row of the dosen moderation queue.
type ValidatablePost struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	Type       PostType `json:"type"`
	Category   string   `json:"category"`
	AuthorName string   `json:"author_name"`
	CreatedAt  string   `json:"created_at"`
}

// ValidationAction is the closed set of moderation outcomes.
type ValidationAction string

const (
	ActionValidated ValidationAction = "validated"
	ActionRejected  ValidationAction = "rejected"
)
