package model

// FilterAll is the filter key that matches every restaurant.
const FilterAll = "all"

// Restaurant is a single entry in the lunch catalog.
type Restaurant struct {
	Name        string   `json:"name" yaml:"name"`
	Category    string   `json:"category" yaml:"category"`
	Location    string   `json:"location" yaml:"location"`
	Price       string   `json:"price" yaml:"price"`
	WaitTime    string   `json:"waitTime" yaml:"waitTime"`
	Image       string   `json:"image" yaml:"image"`
	Description string   `json:"description" yaml:"description"`
	Tags        []string `json:"tags" yaml:"tags"`
	Rating      float64  `json:"rating" yaml:"rating"`
	ID          int      `json:"id" yaml:"id"`
}

// Filter narrows the catalog to one category, or to everything when Key is FilterAll.
type Filter struct {
	Key   string `json:"key" yaml:"key"`
	Label string `json:"label" yaml:"label"`
	Icon  string `json:"icon" yaml:"icon"`
	Count int    `json:"count" yaml:"count"`
}

// IsAll reports whether the filter matches the whole catalog.
func (f Filter) IsAll() bool {
	return f.Key == FilterAll
}

// Matches reports whether r belongs to the filter.
func (f Filter) Matches(r Restaurant) bool {
	return f.IsAll() || r.Category == f.Key
}
