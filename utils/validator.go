package utils

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// BindingErrors flattens gin binding failures into per-field messages
// the dashboard can show next to inputs.
func BindingErrors(err error) map[string]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return map[string]string{"request": err.Error()}
	}
	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			out[fe.Field()] = "is required"
		case "min":
			out[fe.Field()] = "must be at least " + fe.Param()
		case "max":
			out[fe.Field()] = "must be at most " + fe.Param()
		default:
			out[fe.Field()] = "is invalid (" + fe.Tag() + ")"
		}
	}
	return out
}
