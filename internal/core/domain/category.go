package domain

// Category groups products for browsing. Title is unique in practice but not
// enforced; two categories may share a title.
type Category struct {
	ID    int    `json:"id" db:"id"`
	Title string `json:"title" db:"title"`
}
