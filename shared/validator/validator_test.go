package validator_test

import (
	"net/http"
	"strings"
	"testing"

	"tzatlas/shared/failure"
	"tzatlas/shared/validator"
)

type convertBody struct {
	Time   string `json:"time" validate:"required"`
	ToZone string `json:"to_zone" validate:"required"`
	Kind   string `json:"kind" validate:"omitempty,oneof=utc local unspecified"`
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{
			name: "valid body",
			body: `{"time":"2025-01-28T15:00:00Z","to_zone":"America/New_York"}`,
		},
		{
			name: "valid body with kind",
			body: `{"time":"2025-01-28T15:00:00Z","to_zone":"UTC","kind":"utc"}`,
		},
		{
			name:    "missing required field",
			body:    `{"time":"2025-01-28T15:00:00Z"}`,
			wantErr: true,
		},
		{
			name:    "invalid kind",
			body:    `{"time":"2025-01-28T15:00:00Z","to_zone":"UTC","kind":"sidereal"}`,
			wantErr: true,
		},
		{
			name:    "malformed json",
			body:    `{"time":`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var data convertBody

			err := validator.Validate(strings.NewReader(tt.body), &data)

			if tt.wantErr {
				if err == nil {
					t.Fatal("expected an error")
				}

				if failure.GetCode(err) != http.StatusBadRequest {
					t.Errorf("expected bad request code, got %d", failure.GetCode(err))
				}

				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestValidateVar(t *testing.T) {
	if err := validator.ValidateVar("US", "len=2"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	if err := validator.ValidateVar("USA", "len=2"); err == nil {
		t.Error("expected an error for a three-letter code")
	}
}
