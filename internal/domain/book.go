package domain

// Book represents a title in the catalog.
type Book struct {
	ID              int64   `json:"id"`
	Title           string  `json:"title"`
	AuthorID        int64   `json:"author_id"`
	AuthorName      string  `json:"author_name,omitempty"` // joined for list views, not persisted on books
	Genre           string  `json:"genre,omitempty"`
	Price           float64 `json:"price"`
	PublicationDate string  `json:"publication_date,omitempty"` // free-form, not validated
}
