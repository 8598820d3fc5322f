package entity

import (
	"strings"

	"github.com/google/uuid"
)

// VehicleSummary is the read-only projection of a vehicle owned by the vehicle registry.
type VehicleSummary struct {
	ID                 uuid.UUID `json:"id"`
	RegistrationNumber string    `json:"registrationNumber"`
	Make               string    `json:"make"`
	Model              string    `json:"model"`
	Year               int       `json:"year"`
	Color              string    `json:"color"`
	VerificationStatus string    `json:"verificationStatus"`
	Mileage            int       `json:"mileage"`
	OwnerID            uuid.UUID `json:"ownerId"`
	OwnerNIC           string    `json:"ownerNIC"`
}

// UserSummary is the read-only projection of a user owned by the user directory.
type UserSummary struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Phone string    `json:"phone"`
	NIC   string    `json:"nicNumber"`
	Role  Role      `json:"role"`
}

// Actor is the authenticated user issuing an operation, resolved from the directory.
type Actor struct {
	ID    uuid.UUID
	Name  string
	Email string
	Phone string
	NIC   string
	Role  Role
}

// NewActor builds an Actor from the caller's directory record.
func NewActor(user *UserSummary) *Actor {
	return &Actor{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Phone: user.Phone,
		NIC:   NormalizeNIC(user.NIC),
		Role:  ParseRole(string(user.Role)),
	}
}

// IsAdmin reports whether the actor holds the administrative role.
func (a *Actor) IsAdmin() bool {
	return a != nil && a.Role.IsAdmin()
}

// NormalizeNIC trims and upper-cases a national identity card number.
// Old-format NICs end in a letter ("V"/"X") that users type in either case.
func NormalizeNIC(nic string) string {
	return strings.ToUpper(strings.TrimSpace(nic))
}
