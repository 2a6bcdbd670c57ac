package models

import "time"

// Artist is a performer that can be booked for shows.
type Artist struct {
	ID                 string    `db:"id" json:"id"`
	Name               string    `db:"name" json:"name"`
	City               *string   `db:"city" json:"city,omitempty"`
	State              *string   `db:"state" json:"state,omitempty"`
	Phone              *string   `db:"phone" json:"phone,omitempty"`
	Website            *string   `db:"website" json:"website,omitempty"`
	FacebookLink       *string   `db:"facebook_link" json:"facebook_link,omitempty"`
	ImageLink          *string   `db:"image_link" json:"image_link,omitempty"`
	SeekingVenue       bool      `db:"seeking_venue" json:"seeking_venue"`
	SeekingDescription *string   `db:"seeking_description" json:"seeking_description,omitempty"`
	Genres             []string  `db:"-" json:"genres"`
	CreatedAt          time.Time `db:"created_at" json:"created_at"`
	UpdatedAt          time.Time `db:"updated_at" json:"updated_at"`
}
