package utils

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
)

func TestMapValidationErrors(t *testing.T) {
	v := validator.New()
	err := v.Struct(struct {
		Name string `validate:"required"`
		Days int    `validate:"min=1"`
	}{Days: 0})
	if err == nil {
		t.Fatalf("expected validation failure")
	}

	mapped := MapValidationErrors(err)
	if mapped["Name"] != "required" || mapped["Days"] != "min" {
		t.Fatalf("unexpected mapping %v", mapped)
	}
}

func TestMapValidationErrors_NonValidationError(t *testing.T) {
	mapped := MapValidationErrors(errors.New("unexpected EOF"))
	if mapped["body"] != "invalid" {
		t.Fatalf("non-validation errors map to a generic body error, got %v", mapped)
	}
}
