package repository

import (
	"database/sql"
	"errors"

	"github.com/D1Massacre007/York-Realty/internal/model"
	"github.com/jmoiron/sqlx"
)

var ErrListingNotFound = errors.New("listing not found")

type ListingRepository interface {
	Create(listing *model.Listing) error
	All() ([]*model.Listing, error)
	ByID(id string) (*model.Listing, error)
}

type listingRepository struct {
	db *sqlx.DB
}

func NewListingRepository(db *sqlx.DB) ListingRepository {
	return &listingRepository{db: db}
}

func (r *listingRepository) Create(listing *model.Listing) error {
	query := `INSERT INTO listings
	          (id, title, listing_type, housing_type, campus, bedrooms, bathrooms, square_footage, address, postal_code, property_description, image_url, price, agent_name, agent_email, agent_phone, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`

	_, err := r.db.Exec(query,
		listing.ID,
		listing.Title,
		listing.ListingType,
		listing.HousingType,
		listing.Campus,
		listing.Bedrooms,
		listing.Bathrooms,
		listing.SquareFootage,
		listing.Address,
		listing.PostalCode,
		listing.PropertyDescription,
		listing.ImageURL,
		listing.Price,
		listing.AgentName,
		listing.AgentEmail,
		listing.AgentPhone,
		listing.CreatedAt,
	)

	return err
}

// All returns every listing, newest first.
func (r *listingRepository) All() ([]*model.Listing, error) {
	var listings []*model.Listing
	query := `SELECT * FROM listings ORDER BY created_at DESC`

	err := r.db.Select(&listings, query)
	if err != nil {
		return nil, err
	}

	return listings, nil
}

func (r *listingRepository) ByID(id string) (*model.Listing, error) {
	listing := &model.Listing{}
	query := `SELECT * FROM listings WHERE id = $1`

	err := r.db.Get(listing, query, id)
	if err == sql.ErrNoRows {
		return nil, ErrListingNotFound
	}

	return listing, err
}
