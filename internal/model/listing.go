package model

import (
	"time"
)

const (
	ListingTypeSale = "sale"
	ListingTypeRent = "rent"
)

type Listing struct {
	ID                  string    `db:"id" json:"id"`
	Title               string    `db:"title" json:"title"`
	ListingType         string    `db:"listing_type" json:"listing_type"`
	HousingType         string    `db:"housing_type" json:"housing_type"`
	Campus              string    `db:"campus" json:"campus"`
	Bedrooms            int       `db:"bedrooms" json:"bedrooms"`
	Bathrooms           float64   `db:"bathrooms" json:"bathrooms"`
	SquareFootage       int       `db:"square_footage" json:"square_footage"`
	Address             string    `db:"address" json:"address"`
	PostalCode          string    `db:"postal_code" json:"postal_code"`
	PropertyDescription string    `db:"property_description" json:"property_description"`
	ImageURL            string    `db:"image_url" json:"image_url"`
	Price               float64   `db:"price" json:"price"`
	AgentName           string    `db:"agent_name" json:"agent_name"`
	AgentEmail          string    `db:"agent_email" json:"agent_email"`
	AgentPhone          string    `db:"agent_phone" json:"agent_phone"`
	CreatedAt           time.Time `db:"created_at" json:"created_at"`
}
