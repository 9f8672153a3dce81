package domain

// Product is a sellable item. Every product belongs to exactly one category;
// reads join the category onto the record so clients get it in one round trip.
type Product struct {
	ID          int     `json:"id" db:"id"`
	Title       string  `json:"title" db:"title"`
	Description string  `json:"description,omitempty" db:"description"`
	Price       float64 `json:"price" db:"price"`
	CategoryID  int     `json:"category_id" db:"category_id"`

	Category *Category `json:"category,omitempty" db:"category"`
}
