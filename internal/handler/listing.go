package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/D1Massacre007/York-Realty/internal/filter"
	"github.com/D1Massacre007/York-Realty/internal/model"
	"github.com/D1Massacre007/York-Realty/internal/repository"
	"github.com/D1Massacre007/York-Realty/internal/service"
)

const (
	// maxMultipartMemory bounds the in-memory buffer for multipart parsing;
	// the 5 MiB image limit itself is enforced by the ingestion pipeline.
	maxMultipartMemory = 8 << 20

	// maxRequestBytes caps the whole request body: one image at the 5 MiB
	// limit plus the text fields, with headroom for multipart framing.
	// Anything larger is cut off before it can spill to the temp dir.
	maxRequestBytes = 6 << 20
)

type ListingHandler struct {
	listingService *service.ListingService
}

func NewListingHandler(listingService *service.ListingService) *ListingHandler {
	return &ListingHandler{
		listingService: listingService,
	}
}

// Create handles POST /listings: one image file plus the listing text fields
// as multipart form data.
func (h *ListingHandler) Create(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBytes)

	err := r.ParseMultipartForm(maxMultipartMemory)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			writeError(w, http.StatusRequestEntityTooLarge, service.ErrInvalidUpload.Error())
			return
		}
		writeError(w, http.StatusBadRequest, "failed to parse multipart form")
		return
	}

	file, header, err := r.FormFile("image_file")
	if err != nil {
		writeError(w, http.StatusBadRequest, service.ErrInvalidUpload.Error())
		return
	}
	defer func() {
		closeErr := file.Close()
		if closeErr != nil {
			slog.Error("failed to close uploaded file", "error", closeErr)
		}
	}()

	fields := make(map[string]string, len(r.MultipartForm.Value))
	for name, values := range r.MultipartForm.Value {
		if len(values) > 0 {
			fields[name] = values[0]
		}
	}

	listing, err := h.listingService.Submit(fields, file, header)
	if err != nil {
		var missingErr *service.MissingFieldsError
		switch {
		case errors.Is(err, service.ErrInvalidUpload),
			errors.Is(err, service.ErrInvalidNumeric),
			errors.As(err, &missingErr):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			slog.Error("failed to create listing", "error", err)
			writeJSON(w, http.StatusInternalServerError, errorResponse{
				Error:   "internal server error during listing creation",
				Details: "the listing could not be saved",
			})
		}
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"success":   true,
		"message":   "Listing created successfully",
		"listingId": listing.ID,
		"imageUrl":  listing.ImageURL,
	})
}

// List handles GET /listings, newest first. The filter query parameters use
// the same predicate semantics as the browser-side engine.
func (h *ListingHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	params := filter.Params{
		Text:        q.Get("q"),
		ListingType: q.Get("listing_type"),
		HousingType: q.Get("housing_type"),
		Campus:      q.Get("campus"),
		Beds:        q.Get("beds"),
		Baths:       q.Get("baths"),
	}

	listings, err := h.listingService.All(params)
	if err != nil {
		slog.Error("failed to fetch listings", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error when fetching listings")
		return
	}
	if listings == nil {
		listings = []*model.Listing{}
	}

	writeJSON(w, http.StatusOK, listings)
}

// Featured handles GET /listings/featured: the three newest listings.
func (h *ListingHandler) Featured(w http.ResponseWriter, r *http.Request) {
	listings, err := h.listingService.Featured()
	if err != nil {
		slog.Error("failed to fetch featured listings", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error when fetching listings")
		return
	}

	writeJSON(w, http.StatusOK, listings)
}

// Show handles GET /listings/{id}.
func (h *ListingHandler) Show(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	listing, err := h.listingService.ByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrListingNotFound) {
			writeError(w, http.StatusNotFound, "Listing not found")
			return
		}
		slog.Error("failed to fetch listing", "error", err, "listing_id", id)
		writeError(w, http.StatusInternalServerError, "internal server error when fetching listing")
		return
	}

	writeJSON(w, http.StatusOK, listing)
}
