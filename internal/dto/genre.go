package dto

// UpdateGenresRequest replaces the genre set of an artist or venue.
type UpdateGenresRequest struct {
	Genres []string `json:"genres" validate:"dive,max=120"`
}

// UpdateGenresResponse lists the resulting set and what changed.
type UpdateGenresResponse struct {
	Genres  []string `json:"genres"`
	Added   []string `json:"added"`
	Removed []string `json:"removed"`
}
