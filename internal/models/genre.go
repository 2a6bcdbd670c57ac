package models

// Genre is a music genre tag shared by artists and venues.
type Genre struct {
	ID   string `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}

// GenreOwner identifies which link table a genre set belongs to.
type GenreOwner string

const (
	GenreOwnerArtist GenreOwner = "artist"
	GenreOwnerVenue  GenreOwner = "venue"
)
