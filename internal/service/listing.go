package service

import (
	"errors"
	"fmt"
	"mime/multipart"
	"strconv"
	"strings"
	"time"

	"github.com/D1Massacre007/York-Realty/internal/filter"
	"github.com/D1Massacre007/York-Realty/internal/model"
	"github.com/D1Massacre007/York-Realty/internal/repository"
	"github.com/D1Massacre007/York-Realty/internal/validation"
	"github.com/google/uuid"
)

var (
	ErrInvalidUpload  = errors.New("no image file uploaded or invalid file type, expected a JPEG, JPG, PNG, or GIF image up to 5MB")
	ErrInvalidNumeric = errors.New("invalid numeric value for bedrooms, bathrooms, square footage, or price")
)

// MissingFieldsError reports every required submission field that was absent
// or blank, not just the first one.
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return "missing or empty required fields: " + strings.Join(e.Fields, ", ")
}

type ListingService struct {
	listingRepository repository.ListingRepository
	uploads           *UploadService
}

func NewListingService(listingRepository repository.ListingRepository, uploads *UploadService) *ListingService {
	return &ListingService{
		listingRepository: listingRepository,
		uploads:           uploads,
	}
}

// Submit runs the listing creation pipeline. Each step is a hard gate:
//
//  1. file type/size check (rejects before any byte is stored)
//  2. stage the file
//  3. required-field check
//  4. numeric coercion
//  5. insert with a server-assigned timestamp
//
// Every failure after step 2 deletes the staged file before returning, so a
// listing row only ever exists with its image durably in storage. An orphaned
// file without a row is tolerated; the reverse is not.
func (s *ListingService) Submit(fields map[string]string, file multipart.File, header *multipart.FileHeader) (*model.Listing, error) {
	err := validation.ValidateFile(header, validation.ImageConstraints)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidUpload, err)
	}

	staged, err := s.uploads.Stage(file, header)
	if err != nil {
		return nil, fmt.Errorf("failed to stage upload: %w", err)
	}

	missing := validation.MissingFields(fields, validation.ListingFields)
	if len(missing) > 0 {
		s.uploads.Unstage(staged)
		return nil, &MissingFieldsError{Fields: missing}
	}

	bedrooms, err := strconv.Atoi(strings.TrimSpace(fields["bedrooms"]))
	if err != nil {
		s.uploads.Unstage(staged)
		return nil, fmt.Errorf("%w: bedrooms %q", ErrInvalidNumeric, fields["bedrooms"])
	}
	squareFootage, err := strconv.Atoi(strings.TrimSpace(fields["square_footage"]))
	if err != nil {
		s.uploads.Unstage(staged)
		return nil, fmt.Errorf("%w: square_footage %q", ErrInvalidNumeric, fields["square_footage"])
	}
	bathrooms, err := strconv.ParseFloat(strings.TrimSpace(fields["bathrooms"]), 64)
	if err != nil {
		s.uploads.Unstage(staged)
		return nil, fmt.Errorf("%w: bathrooms %q", ErrInvalidNumeric, fields["bathrooms"])
	}
	price, err := strconv.ParseFloat(strings.TrimSpace(fields["price"]), 64)
	if err != nil {
		s.uploads.Unstage(staged)
		return nil, fmt.Errorf("%w: price %q", ErrInvalidNumeric, fields["price"])
	}

	listing := &model.Listing{
		ID:                  uuid.New().String(),
		Title:               strings.TrimSpace(fields["title"]),
		ListingType:         strings.TrimSpace(fields["listing_type"]),
		HousingType:         strings.TrimSpace(fields["housing_type"]),
		Campus:              strings.TrimSpace(fields["campus"]),
		Bedrooms:            bedrooms,
		Bathrooms:           bathrooms,
		SquareFootage:       squareFootage,
		Address:             strings.TrimSpace(fields["address"]),
		PostalCode:          strings.TrimSpace(fields["postal_code"]),
		PropertyDescription: strings.TrimSpace(fields["property_description"]),
		ImageURL:            s.uploads.URL(staged),
		Price:               price,
		AgentName:           strings.TrimSpace(fields["agent_name"]),
		AgentEmail:          strings.TrimSpace(fields["agent_email"]),
		AgentPhone:          strings.TrimSpace(fields["agent_phone"]),
		CreatedAt:           time.Now(),
	}

	err = s.listingRepository.Create(listing)
	if err != nil {
		s.uploads.Unstage(staged)
		return nil, fmt.Errorf("failed to persist listing: %w", err)
	}

	return listing, nil
}

// All returns listings newest first, optionally narrowed by filter params.
func (s *ListingService) All(p filter.Params) ([]*model.Listing, error) {
	listings, err := s.listingRepository.All()
	if err != nil {
		return nil, fmt.Errorf("failed to load listings: %w", err)
	}
	if p.IsZero() {
		return listings, nil
	}
	return filter.Apply(listings, p), nil
}

// Featured returns the three newest listings for the landing page.
func (s *ListingService) Featured() ([]*model.Listing, error) {
	listings, err := s.listingRepository.All()
	if err != nil {
		return nil, fmt.Errorf("failed to load listings: %w", err)
	}
	return filter.Featured(listings, 3), nil
}

func (s *ListingService) ByID(id string) (*model.Listing, error) {
	return s.listingRepository.ByID(id)
}
