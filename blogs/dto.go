package blogs

// NewBlogRequest is the creation payload. Title and url are required;
// likes defaults to 0 when omitted. The owner is never taken from the
// payload — it is always the authenticated caller.
type NewBlogRequest struct {
	Title  string `json:"title" example:"Go Concurrency Patterns"`
	Author string `json:"author,omitempty" example:"Rob Pike"`
	URL    string `json:"url" example:"https://go.dev/blog/pipelines"`
	Likes  *int   `json:"likes,omitempty" example:"0"`
}

// UpdateBlogRequest is the update payload. Every field is a pointer so the
// handler can merge only the fields the caller actually sent over the
// existing record.
type UpdateBlogRequest struct {
	Title  *string `json:"title,omitempty"`
	Author *string `json:"author,omitempty"`
	URL    *string `json:"url,omitempty"`
	Likes  *int    `json:"likes,omitempty"`
}
