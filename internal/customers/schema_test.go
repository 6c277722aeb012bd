package customers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/autolote/autolote/internal/schema"
)

var testNow = time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)

func validRaw() map[string]any {
	return map[string]any{
		"full_name":    "Maria da Silva",
		"tax_id":       "111.444.777-35",
		"birth_date":   "1986-05-02",
		"street":       "Rua das Flores",
		"house_number": "123",
		"complement":   "ap 42",
		"neighborhood": "Centro",
		"city":         "Campinas",
		"state":        "sp",
		"phone":        "(19) 99876-5432",
		"email":        "maria.silva@example.com",
	}
}

func firstMessage(t *testing.T, err error, field string) string {
	t.Helper()
	var vErr *schema.Error
	require.ErrorAs(t, err, &vErr)
	return schema.FieldMessages(vErr)[field]
}

func TestCustomerSchemaValidRecord(t *testing.T) {
	rec, err := newSchema().Validate(validRaw(), testNow)
	require.NoError(t, err)

	c := fromRecord(rec)
	require.Equal(t, "Maria da Silva", c.FullName)
	require.Equal(t, "SP", c.State)
	require.NotNil(t, c.BirthDate)
	require.Equal(t, "ap 42", c.Complement)
}

func TestCustomerSchemaOptionalFieldsOmitted(t *testing.T) {
	raw := validRaw()
	delete(raw, "birth_date")
	delete(raw, "complement")

	rec, err := newSchema().Validate(raw, testNow)
	require.NoError(t, err)

	c := fromRecord(rec)
	require.Nil(t, c.BirthDate)
	require.Empty(t, c.Complement)
}

func TestCustomerSchemaFullNameNeedsSurname(t *testing.T) {
	raw := validRaw()
	raw["full_name"] = "Madonna"

	_, err := newSchema().Validate(raw, testNow)
	require.Equal(t,
		"must contain first and last name separated by a space",
		firstMessage(t, err, "full_name"))
}

// The checksum message must stay distinct from the length message so
// callers can tell a mistyped CPF from an incomplete one.
func TestCustomerSchemaTaxIDMessages(t *testing.T) {
	raw := validRaw()
	raw["tax_id"] = "111.444.777-36" // bad check digit
	_, err := newSchema().Validate(raw, testNow)
	require.Equal(t, "is not a valid CPF", firstMessage(t, err, "tax_id"))

	raw["tax_id"] = "111.444.777-3" // too short
	_, err = newSchema().Validate(raw, testNow)
	require.Equal(t, "must have exactly 14 characters", firstMessage(t, err, "tax_id"))

	raw["tax_id"] = "111.444.777-__" // unfilled mask positions
	_, err = newSchema().Validate(raw, testNow)
	require.Equal(t, "must have exactly 14 characters", firstMessage(t, err, "tax_id"))
}

func TestCustomerSchemaAgeWindow(t *testing.T) {
	raw := validRaw()
	raw["birth_date"] = testNow.AddDate(-17, 0, 0).Format("2006-01-02")
	_, err := newSchema().Validate(raw, testNow)
	require.Equal(t, "customer must be at least 18 years old", firstMessage(t, err, "birth_date"))

	raw["birth_date"] = testNow.AddDate(-121, 0, 0).Format("2006-01-02")
	_, err = newSchema().Validate(raw, testNow)
	require.Equal(t, "is too far in the past", firstMessage(t, err, "birth_date"))

	// Exactly 18 years old today is acceptable.
	raw["birth_date"] = testNow.AddDate(-18, 0, 0).Format("2006-01-02")
	_, err = newSchema().Validate(raw, testNow)
	require.NoError(t, err)
}

func TestCustomerSchemaStateEnum(t *testing.T) {
	raw := validRaw()
	raw["state"] = "XX"

	_, err := newSchema().Validate(raw, testNow)
	require.Contains(t, firstMessage(t, err, "state"), "must be one of:")
}

func TestCustomerSchemaPhoneMask(t *testing.T) {
	raw := validRaw()
	raw["phone"] = "(19) 9987_-____"

	_, err := newSchema().Validate(raw, testNow)
	require.Equal(t, "must have exactly 15 characters", firstMessage(t, err, "phone"))
}

func TestCustomerSchemaEmail(t *testing.T) {
	raw := validRaw()
	raw["email"] = "maria-at-example"

	_, err := newSchema().Validate(raw, testNow)
	require.Equal(t, "must be a valid email address", firstMessage(t, err, "email"))
}

func TestCustomerSchemaCollectsAllInvalidFields(t *testing.T) {
	raw := validRaw()
	raw["full_name"] = "Ana"
	raw["tax_id"] = "123"
	raw["email"] = "nope"

	_, err := newSchema().Validate(raw, testNow)
	var vErr *schema.Error
	require.ErrorAs(t, err, &vErr)
	require.Len(t, vErr.Issues, 3)
}
