package validator_test

import (
	"net/http"
	"rentdesk/shared/failure"
	"rentdesk/shared/validator"
	"strings"
	"testing"
)

type vehicleRequest struct {
	CustomerID   *int64  `json:"CustomerID"   validate:"required,gt=0"`
	VehicleMake  *string `json:"VehicleMake"  validate:"required,max=255"`
	VehicleYear  *string `json:"VehicleYear"  validate:"required,len=4,numeric"`
	LicensePlate *string `json:"LicensePlate" validate:"omitempty,max=20"`
}

func ptr[T any](v T) *T {
	return &v
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name        string
		data        vehicleRequest
		expectError bool
	}{
		{
			name: "valid struct",
			data: vehicleRequest{
				CustomerID:  ptr(int64(1)),
				VehicleMake: ptr("Ford"),
				VehicleYear: ptr("2019"),
			},
			expectError: false,
		},
		{
			name: "empty string still counts as present",
			data: vehicleRequest{
				CustomerID:  ptr(int64(1)),
				VehicleMake: ptr(""),
				VehicleYear: ptr("2019"),
			},
			expectError: false,
		},
		{
			name: "year too short",
			data: vehicleRequest{
				CustomerID:  ptr(int64(1)),
				VehicleMake: ptr("Ford"),
				VehicleYear: ptr("19"),
			},
			expectError: true,
		},
		{
			name: "year not numeric",
			data: vehicleRequest{
				CustomerID:  ptr(int64(1)),
				VehicleMake: ptr("Ford"),
				VehicleYear: ptr("20ab"),
			},
			expectError: true,
		},
		{
			name: "non positive customer",
			data: vehicleRequest{
				CustomerID:  ptr(int64(0)),
				VehicleMake: ptr("Ford"),
				VehicleYear: ptr("2019"),
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(&tt.data)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}

func TestValidateStruct_MissingFields(t *testing.T) {
	data := vehicleRequest{VehicleMake: ptr("Ford")}

	err := validator.ValidateStruct(&data)
	if err == nil {
		t.Fatal("expected validation error")
	}

	f, ok := failure.As(err)
	if !ok {
		t.Fatalf("expected *failure.Failure, got %T", err)
	}

	if f.Code != http.StatusBadRequest {
		t.Errorf("expected code %d, got %d", http.StatusBadRequest, f.Code)
	}

	if f.Message != validator.MessageMissingFields {
		t.Errorf("expected message %q, got %q", validator.MessageMissingFields, f.Message)
	}

	if f.Details != "CustomerID, VehicleYear" {
		t.Errorf("expected details 'CustomerID, VehicleYear', got %q", f.Details)
	}
}

func TestValidateVar(t *testing.T) {
	tests := []struct {
		name        string
		field       any
		tag         string
		expectError bool
	}{
		{name: "valid email", field: "agent@example.com", tag: "email", expectError: false},
		{name: "invalid email", field: "nope", tag: "email", expectError: true},
		{name: "oneof ok", field: "Active", tag: "oneof=Active Inactive", expectError: false},
		{name: "oneof fails", field: "Archived", tag: "oneof=Active Inactive", expectError: true},
		{name: "max length", field: strings.Repeat("x", 16), tag: "max=15", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateVar(tt.field, tt.tag)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		jsonBody    string
		expectError bool
	}{
		{
			name:        "valid json",
			jsonBody:    `{"CustomerID": 3, "VehicleMake": "Kia", "VehicleYear": "2021"}`,
			expectError: false,
		},
		{
			name:        "malformed json",
			jsonBody:    `{"CustomerID": 3,`,
			expectError: true,
		},
		{
			name:        "mistyped value",
			jsonBody:    `{"CustomerID": "three", "VehicleMake": "Kia", "VehicleYear": "2021"}`,
			expectError: true,
		},
		{
			name:        "missing fields",
			jsonBody:    `{}`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var data vehicleRequest
			err := validator.Validate(strings.NewReader(tt.jsonBody), &data)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}

			if err != nil && failure.GetCode(err) != http.StatusBadRequest {
				t.Errorf("expected bad request, got %d", failure.GetCode(err))
			}
		})
	}
}

func TestValidationMessages(t *testing.T) {
	tests := []struct {
		name string
		data vehicleRequest
		want string
	}{
		{
			name: "string length",
			data: vehicleRequest{CustomerID: ptr(int64(1)), VehicleMake: ptr("Ford"), VehicleYear: ptr("99")},
			want: "VehicleYear must be exactly 4 characters long",
		},
		{
			name: "digits only",
			data: vehicleRequest{CustomerID: ptr(int64(1)), VehicleMake: ptr("Ford"), VehicleYear: ptr("20x4")},
			want: "VehicleYear must contain digits only",
		},
		{
			name: "string too long",
			data: vehicleRequest{CustomerID: ptr(int64(1)), VehicleMake: ptr("Ford"), VehicleYear: ptr("2019"), LicensePlate: ptr(strings.Repeat("K", 21))},
			want: "LicensePlate must be at most 20 characters long",
		},
		{
			name: "non positive id",
			data: vehicleRequest{CustomerID: ptr(int64(0)), VehicleMake: ptr("Ford"), VehicleYear: ptr("2019")},
			want: "CustomerID must be a positive id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(&tt.data)
			if err == nil {
				t.Fatal("expected validation error")
			}

			if err.Error() != tt.want {
				t.Errorf("expected %q, got %q", tt.want, err.Error())
			}
		})
	}
}

func TestValidateVarMessage(t *testing.T) {
	err := validator.ValidateVar("nope", "email")
	if err == nil || err.Error() != "value must be a valid email address" {
		t.Errorf("unexpected error: %v", err)
	}
}
