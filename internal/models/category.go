// internal/models/category.go
package models

// Static three-level taxonomy used for navigation and free-text filter
// seeding. Read-only; products correlate to it informally by category id.
type MicroCategory struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type SubCategory struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	MicroCategories []MicroCategory `json:"micro_categories"`
}

type Category struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	NameUrdu      string        `json:"name_urdu,omitempty"`
	Icon          string        `json:"icon"`
	Subcategories []SubCategory `json:"subcategories"`
}
