// Package blogs implements the blog record store and the access control
// gate in front of its mutating operations. Every blog created through the
// API belongs to exactly one user; ownership is set at creation and never
// reassigned.
package blogs

// Owner is the public summary of a blog's owning user.
type Owner struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name,omitempty"`
}

// Blog is a single blog record. UserID is nil only for records inserted
// through internal paths such as test fixtures; the authenticated creation
// path always sets it.
type Blog struct {
	ID     int    `json:"id"`
	Title  string `json:"title"`
	Author string `json:"author,omitempty"`
	URL    string `json:"url"`
	Likes  int    `json:"likes"`
	UserID *int   `json:"-"`
	User   *Owner `json:"user,omitempty"`
}
