package serverutils

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateRequest runs struct-tag validation on a parsed request body.
// Returns validator.ValidationErrors so the error middleware can map them to
// a 400 with per-field details.
func ValidateRequest(req interface{}) error {
	return validate.Struct(req)
}
