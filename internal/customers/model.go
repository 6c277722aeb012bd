package customers

import (
	"time"
)

// Customer represents a dealership customer.
type Customer struct {
	ID           int64      `json:"id"`
	FullName     string     `json:"full_name"`
	TaxID        string     `json:"tax_id"`
	BirthDate    *time.Time `json:"birth_date,omitempty"`
	Street       string     `json:"street"`
	HouseNumber  string     `json:"house_number"`
	Complement   string     `json:"complement,omitempty"`
	Neighborhood string     `json:"neighborhood"`
	City         string     `json:"city"`
	State        string     `json:"state"`
	Phone        string     `json:"phone"`
	Email        string     `json:"email"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}
