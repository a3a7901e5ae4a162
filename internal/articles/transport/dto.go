package transport

import "time"

// ArticleRequest carries the create/update payload. On create it arrives as
// multipart form fields; on update as JSON. Photo is either an external URL
// or, when a file was uploaded, the stored object key.
type ArticleRequest struct {
	Title string `json:"title" form:"title" validate:"required,min=5"`
	Text  string `json:"text" form:"text" validate:"required,min=10"`
	Photo string `json:"photo" form:"photo" validate:"omitempty"`
}

type ArticleResponse struct {
	ID        string    `json:"_id"`
	Title     string    `json:"title"`
	Text      string    `json:"text"`
	Photo     string    `json:"photo,omitempty"`
	CreatedBy string    `json:"createdBy"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Creator is the expanded createdBy reference on the detail endpoint.
type Creator struct {
	ID       string `json:"_id"`
	Username string `json:"username"`
}

// ArticleDetailResponse is ArticleResponse with the creator expanded.
type ArticleDetailResponse struct {
	ID        string    `json:"_id"`
	Title     string    `json:"title"`
	Text      string    `json:"text"`
	Photo     string    `json:"photo,omitempty"`
	CreatedBy Creator   `json:"createdBy"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ArticleListResponse is the paginated list envelope.
type ArticleListResponse struct {
	Success     bool              `json:"success"`
	Articles    []ArticleResponse `json:"articles"`
	TotalPages  int               `json:"totalPages"`
	CurrentPage int               `json:"currentPage"`
}
