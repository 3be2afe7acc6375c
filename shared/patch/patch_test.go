package patch_test

import (
	"encoding/json"
	"rentdesk/shared/failure"
	"rentdesk/shared/model"
	"rentdesk/shared/patch"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var vehicleFields = patch.AllowList{
	"VehicleMake":  patch.String("vehicle_make", "max=50"),
	"VehicleYear":  patch.String("vehicle_year", "len=4,numeric"),
	"CustomerID":   patch.Int("customer_id"),
	"CompanyID":    patch.NullableInt("company_id"),
	"ReturnDate":   patch.Date("return_date"),
	"InsuranceExp": patch.NullableDate("insurance_exp_date"),
	"ReturnTime":   patch.Clock("return_time"),
	"Note":         patch.NullableString("note", ""),
}

func build(t *testing.T, body string) (map[string]any, error) {
	t.Helper()

	payload, err := patch.Decode(strings.NewReader(body))
	if err != nil {
		return nil, err
	}

	return vehicleFields.Build(payload)
}

func TestAllowList_Build(t *testing.T) {
	mod, err := build(t, `{"VehicleMake":"Ford","CustomerID":4,"CompanyID":null,"ReturnDate":"2024-05-02","ReturnTime":"09:30","Note":null}`)
	require.NoError(t, err)

	date, _ := model.ParseDate("2024-05-02")

	assert.Equal(t, map[string]any{
		"vehicle_make": "Ford",
		"customer_id":  int64(4),
		"company_id":   nil,
		"return_date":  date,
		"return_time":  model.Clock{Hour: 9, Minute: 30},
		"note":         nil,
	}, mod)
}

func TestAllowList_Build_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		message string
		details string
	}{
		{name: "empty object", body: `{}`, message: failure.EmptyUpdate.Message},
		{name: "empty body", body: ``, message: failure.EmptyUpdate.Message},
		{name: "unknown keys", body: `{"VehicleMake":"Ford","status_id":1,"Admin":true}`, message: patch.MessageUnknownFields, details: "Admin, status_id"},
		{name: "string expected", body: `{"VehicleMake":12}`, message: patch.MessageInvalidValue},
		{name: "rule violation", body: `{"VehicleYear":"99"}`, message: patch.MessageInvalidValue},
		{name: "bad date", body: `{"ReturnDate":"05/02/2024"}`, message: patch.MessageInvalidValue, details: "ReturnDate: " + model.ErrInvalidDate.Error()},
		{name: "bad time", body: `{"ReturnTime":"25:99"}`, message: patch.MessageInvalidValue},
		{name: "null on required column", body: `{"CustomerID":null}`, message: patch.MessageInvalidValue},
		{name: "non positive id", body: `{"CustomerID":0}`, message: patch.MessageInvalidValue},
		{name: "not an object", body: `[1,2]`, message: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mod, err := build(t, tt.body)

			require.Error(t, err)
			assert.Nil(t, mod)

			f, ok := failure.As(err)
			require.True(t, ok)
			assert.Equal(t, 400, f.Code)

			if tt.message != "" {
				assert.Equal(t, tt.message, f.Message)
			}

			if tt.details != "" {
				assert.Equal(t, tt.details, f.Details)
			}
		})
	}
}

func TestAllowList_Keys(t *testing.T) {
	keys := vehicleFields.Keys()

	assert.Len(t, keys, len(vehicleFields))
	assert.Equal(t, "CompanyID", keys[0])
}

func TestDecode_KeepsRawValues(t *testing.T) {
	payload, err := patch.Decode(strings.NewReader(`{"A":{"nested":true}}`))
	require.NoError(t, err)

	assert.JSONEq(t, `{"nested":true}`, string(payload["A"]))
	assert.IsType(t, json.RawMessage{}, payload["A"])
}
