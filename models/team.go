package models

type Team struct {
	ID     int    `json:"id" db:"id"`
	Name   string `json:"name" db:"name"`
	Seed   int    `json:"seed" db:"seed"`
	Region string `json:"region" db:"region"`

	LogoKey *string `json:"-" db:"logo_key"`
	LogoURL *string `json:"logo_url,omitempty" db:"-"`
}
