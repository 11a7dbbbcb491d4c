package utils

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// MapValidationErrors flattens binding failures into a field -> failed-tag
// map for the error response. Non-validation errors get a single generic key.
func MapValidationErrors(err error) map[string]string {
	out := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		out["body"] = "invalid"
		return out
	}
	for _, ve := range validationErrors {
		out[ve.Field()] = ve.Tag()
	}
	return out
}
