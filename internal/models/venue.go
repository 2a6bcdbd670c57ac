package models

import "time"

// Venue is a location that hosts shows.
type Venue struct {
	ID                 string    `db:"id" json:"id"`
	Name               string    `db:"name" json:"name"`
	Address            string    `db:"address" json:"address"`
	City               string    `db:"city" json:"city"`
	State              string    `db:"state" json:"state"`
	Phone              *string   `db:"phone" json:"phone,omitempty"`
	Website            *string   `db:"website" json:"website,omitempty"`
	FacebookLink       *string   `db:"facebook_link" json:"facebook_link,omitempty"`
	ImageLink          *string   `db:"image_link" json:"image_link,omitempty"`
	SeekingTalent      bool      `db:"seeking_talent" json:"seeking_talent"`
	SeekingDescription *string   `db:"seeking_description" json:"seeking_description,omitempty"`
	Genres             []string  `db:"-" json:"genres"`
	CreatedAt          time.Time `db:"created_at" json:"created_at"`
	UpdatedAt          time.Time `db:"updated_at" json:"updated_at"`
}
