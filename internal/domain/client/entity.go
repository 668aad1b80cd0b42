// internal/domain/client/entity.go
package client

import (
	"strings"

	xerrors "fleet-rental-service/internal/pkg/errors"

	"github.com/google/uuid"
)

// Client is a person renting vehicles from the fleet. Immutable after
// construction; the id-number is the natural key supplied by the caller.
type Client struct {
	ID          string `json:"id" bson:"_id"`
	Name        string `json:"name" bson:"name"`
	Email       string `json:"email" bson:"email"`
	PhoneNumber string `json:"phoneNumber" bson:"phoneNumber"`
	IDNumber    string `json:"idNumber" bson:"idNumber"`
}

// NewClient validates all fields and assigns a fresh identity.
func NewClient(name, email, phoneNumber, idNumber string) (*Client, error) {
	if strings.TrimSpace(name) == "" {
		return nil, xerrors.Domainf("name cannot be empty")
	}
	if strings.TrimSpace(email) == "" {
		return nil, xerrors.Domainf("email cannot be empty")
	}
	if strings.TrimSpace(phoneNumber) == "" {
		return nil, xerrors.Domainf("phone number cannot be empty")
	}
	if strings.TrimSpace(idNumber) == "" {
		return nil, xerrors.Domainf("ID number cannot be empty")
	}

	return &Client{
		ID:          uuid.NewString(),
		Name:        name,
		Email:       email,
		PhoneNumber: phoneNumber,
		IDNumber:    idNumber,
	}, nil
}
