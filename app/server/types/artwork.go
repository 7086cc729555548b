package types

// ArtworkCreate carries a full artwork. Price is a pointer so that a missing
// field can be told apart from a legitimate zero.
type ArtworkCreate struct {
	Title       string  `json:"title"`
	Artist      string  `json:"artist"`
	Price       *int    `json:"price"`
	ImageURL    string  `json:"imageUrl"`
	Description *string `json:"description"`
	Year        *int    `json:"year"`
	Medium      *string `json:"medium"`
}

// ArtworkUpdate is a partial artwork: any subset of fields may be present,
// absent fields are left untouched.
type ArtworkUpdate struct {
	Title       *string `json:"title"`
	Artist      *string `json:"artist"`
	Price       *int    `json:"price"`
	ImageURL    *string `json:"imageUrl"`
	Description *string `json:"description"`
	Year        *int    `json:"year"`
	Medium      *string `json:"medium"`
}
