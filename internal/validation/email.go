package validation

import (
	"errors"
	"fmt"
	"net/mail"
)

// maxEmailLength is the RFC 5321 ceiling for a complete address; the users
// table stores the address verbatim, so anything longer is rejected before it
// reaches the unique column.
const maxEmailLength = 254

// ValidateEmail checks the address a registrant signs up and logs in with.
// Parsing goes through net/mail (RFC 5322), the same grammar the agent
// contact addresses on listings are expected to follow.
func ValidateEmail(email string) error {
	if email == "" {
		return errors.New("email address is required")
	}
	if len(email) > maxEmailLength {
		return fmt.Errorf("email address is too long (max %d characters)", maxEmailLength)
	}

	_, err := mail.ParseAddress(email)
	if err != nil {
		return errors.New("invalid email address format")
	}

	return nil
}
