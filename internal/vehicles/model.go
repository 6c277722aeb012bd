package vehicles

import (
	"time"
)

// Vehicle represents a car on the lot.
type Vehicle struct {
	ID              int64      `json:"id"`
	Brand           string     `json:"brand"`
	Model           string     `json:"model"`
	Color           string     `json:"color"`
	YearManufacture int        `json:"year_manufacture"`
	Imported        bool       `json:"imported"`
	Plates          string     `json:"plates"`
	SellingDate     *time.Time `json:"selling_date,omitempty"`
	SellingPrice    *float64   `json:"selling_price,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}
