package vehicles

import (
	"time"

	"github.com/autolote/autolote/internal/schema"
)

// Colors the shop registers vehicles under.
var Colors = []string{
	"AMARELO", "AZUL", "BRANCO", "CINZA", "DOURADO", "LARANJA", "MARROM",
	"PRATA", "PRETO", "ROSA", "ROXO", "VERDE", "VERMELHO",
}

// openingDate is the day the shop opened; no sale can predate it.
var openingDate = time.Date(2020, time.March, 20, 0, 0, 0, 0, time.UTC)

// newSchema builds the vehicle rule table. It is the single source of
// truth for vehicle validation on every write path.
func newSchema() *schema.Schema {
	return schema.New(
		schema.Field{Name: "brand", Checks: []schema.Check{schema.String(1, 25)}},
		schema.Field{Name: "model", Checks: []schema.Check{schema.String(1, 25)}},
		schema.Field{Name: "color", Checks: []schema.Check{schema.Enum(Colors...)}},
		schema.Field{Name: "year_manufacture", Checks: []schema.Check{
			schema.Number(),
			schema.Integer(),
			schema.MinInt(1960),
			schema.MaxIntFn(func(now time.Time) int { return now.Year() }),
		}},
		schema.Field{Name: "imported", Checks: []schema.Check{schema.Bool()}},
		schema.Field{Name: "plates", Checks: []schema.Check{schema.StringLen(8)}},
		schema.Field{Name: "selling_date", Optional: true, Checks: []schema.Check{
			schema.Date(),
			schema.DateBetween(
				func(time.Time) time.Time { return openingDate },
				func(now time.Time) time.Time { return now },
				"must not be before 2020-03-20",
				"must not be in the future",
			),
		}},
		schema.Field{Name: "selling_price", Optional: true, Checks: []schema.Check{
			schema.Number(),
			schema.MinNumber(5000),
			schema.MaxNumber(5000000),
		}},
	)
}

// fromRecord maps a validated record onto the model. The rule table
// guarantees the dynamic types, so the assertions cannot fail after a
// successful Validate.
func fromRecord(rec map[string]any) Vehicle {
	v := Vehicle{
		Brand:           rec["brand"].(string),
		Model:           rec["model"].(string),
		Color:           rec["color"].(string),
		YearManufacture: rec["year_manufacture"].(int),
		Imported:        rec["imported"].(bool),
		Plates:          rec["plates"].(string),
	}
	if d, ok := rec["selling_date"].(time.Time); ok {
		v.SellingDate = &d
	}
	if p, ok := rec["selling_price"].(float64); ok {
		v.SellingPrice = &p
	}
	return v
}
