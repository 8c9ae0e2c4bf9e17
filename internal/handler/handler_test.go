package handler_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"testing"
	"time"

	"github.com/D1Massacre007/York-Realty/internal/handler"
	"github.com/D1Massacre007/York-Realty/internal/model"
	"github.com/D1Massacre007/York-Realty/internal/repository"
	"github.com/D1Massacre007/York-Realty/internal/service"
	"github.com/D1Massacre007/York-Realty/internal/storage"
)

type memListingRepo struct {
	listings []*model.Listing
}

func (r *memListingRepo) Create(listing *model.Listing) error {
	r.listings = append(r.listings, listing)
	return nil
}

func (r *memListingRepo) All() ([]*model.Listing, error) {
	return r.listings, nil
}

func (r *memListingRepo) ByID(id string) (*model.Listing, error) {
	for _, l := range r.listings {
		if l.ID == id {
			return l, nil
		}
	}
	return nil, repository.ErrListingNotFound
}

type memUserRepo struct {
	users []*model.User
}

func (r *memUserRepo) Create(user *model.User) error {
	for _, u := range r.users {
		if u.Email == user.Email {
			return repository.ErrDuplicateEmail
		}
	}
	r.users = append(r.users, user)
	return nil
}

func (r *memUserRepo) ByID(id string) (*model.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (r *memUserRepo) ByEmail(email string) (*model.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

// newTestMux wires the API routes against in-memory repositories and disk
// storage in a temp dir, without the static front-end or middleware layers.
func newTestMux(t *testing.T) *http.ServeMux {
	t.Helper()

	store, err := storage.NewLocalStorage(t.TempDir(), "/uploads")
	if err != nil {
		t.Fatalf("failed to create storage: %v", err)
	}

	listingService := service.NewListingService(&memListingRepo{}, service.NewUploadService(store))
	authService := service.NewAuthService(&memUserRepo{}, "test-secret", time.Hour)

	listing := handler.NewListingHandler(listingService)
	auth := handler.NewAuthHandler(authService)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", handler.Healthz)
	mux.HandleFunc("POST /listings", listing.Create)
	mux.HandleFunc("GET /listings", listing.List)
	mux.HandleFunc("GET /listings/featured", listing.Featured)
	mux.HandleFunc("GET /listings/{id}", listing.Show)
	mux.HandleFunc("POST /register", auth.Register)
	mux.HandleFunc("POST /login", auth.Login)

	return mux
}

func listingFields() map[string]string {
	return map[string]string{
		"title":                "Bright 1BR near Keele",
		"listing_type":         "rent",
		"housing_type":         "apartment",
		"campus":               "keele",
		"bedrooms":             "1",
		"bathrooms":            "1",
		"square_footage":       "450",
		"address":              "99 Pond Rd",
		"postal_code":          "M3J 2S5",
		"property_description": "Steps from campus, utilities included",
		"price":                "900",
		"agent_name":           "Sam Agent",
		"agent_email":          "sam@example.com",
		"agent_phone":          "647-555-0134",
	}
}

// multipartListing builds a multipart body from the text fields plus one image
// part. The image content carries real JPEG magic bytes so content sniffing
// passes.
func multipartListing(t *testing.T, fields map[string]string, filename string, imageSize int) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for name, value := range fields {
		err := w.WriteField(name, value)
		if err != nil {
			t.Fatalf("failed to write field %q: %v", name, err)
		}
	}

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="image_file"; filename="`+filename+`"`)
	h.Set("Content-Type", "image/jpeg")
	part, err := w.CreatePart(h)
	if err != nil {
		t.Fatalf("failed to create image part: %v", err)
	}

	content := make([]byte, imageSize)
	copy(content, []byte{0xFF, 0xD8, 0xFF, 0xE0})
	_, err = part.Write(content)
	if err != nil {
		t.Fatalf("failed to write image content: %v", err)
	}

	err = w.Close()
	if err != nil {
		t.Fatalf("failed to close multipart writer: %v", err)
	}

	return &buf, w.FormDataContentType()
}
