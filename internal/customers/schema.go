package customers

import (
	"time"

	"github.com/autolote/autolote/internal/schema"
)

// States holds the 27 Brazilian federative unit codes.
var States = []string{
	"AC", "AL", "AP", "AM", "BA", "CE", "DF", "ES", "GO",
	"MA", "MT", "MS", "MG", "PA", "PB", "PR", "PE", "PI",
	"RJ", "RN", "RS", "RO", "RR", "SC", "SP", "SE", "TO",
}

// maskPlaceholder is the character masked form widgets leave on
// unfilled positions.
const maskPlaceholder = "_"

// newSchema builds the customer rule table, the single source of
// truth for customer validation on every write path.
func newSchema() *schema.Schema {
	return schema.New(
		schema.Field{Name: "full_name", Checks: []schema.Check{
			schema.String(5, 100),
			schema.Contains(" ", "must contain first and last name separated by a space"),
		}},
		schema.Field{Name: "tax_id", Checks: []schema.Check{
			schema.Masked(maskPlaceholder, 14),
			schema.CPF(),
		}},
		schema.Field{Name: "birth_date", Optional: true, Checks: []schema.Check{
			schema.Date(),
			schema.DateBetween(
				func(now time.Time) time.Time { return now.AddDate(-120, 0, 0) },
				func(now time.Time) time.Time { return now.AddDate(-18, 0, 0) },
				"is too far in the past",
				"customer must be at least 18 years old",
			),
		}},
		schema.Field{Name: "street", Checks: []schema.Check{schema.String(1, 40)}},
		schema.Field{Name: "house_number", Checks: []schema.Check{schema.String(1, 10)}},
		schema.Field{Name: "complement", Optional: true, Checks: []schema.Check{schema.String(0, 20)}},
		schema.Field{Name: "neighborhood", Checks: []schema.Check{schema.String(1, 25)}},
		schema.Field{Name: "city", Checks: []schema.Check{schema.String(1, 40)}},
		schema.Field{Name: "state", Checks: []schema.Check{schema.Enum(States...)}},
		schema.Field{Name: "phone", Checks: []schema.Check{schema.Masked(maskPlaceholder, 15)}},
		schema.Field{Name: "email", Checks: []schema.Check{schema.Email()}},
	)
}

// fromRecord maps a validated record onto the model. The rule table
// guarantees the dynamic types after a successful Validate.
func fromRecord(rec map[string]any) Customer {
	c := Customer{
		FullName:     rec["full_name"].(string),
		TaxID:        rec["tax_id"].(string),
		Street:       rec["street"].(string),
		HouseNumber:  rec["house_number"].(string),
		Neighborhood: rec["neighborhood"].(string),
		City:         rec["city"].(string),
		State:        rec["state"].(string),
		Phone:        rec["phone"].(string),
		Email:        rec["email"].(string),
	}
	if d, ok := rec["birth_date"].(time.Time); ok {
		c.BirthDate = &d
	}
	if comp, ok := rec["complement"].(string); ok {
		c.Complement = comp
	}
	return c
}
