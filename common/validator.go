package common

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Validate runs the struct-tag validation rules on v and returns the
// combined validation errors, or nil when every rule passes.
func Validate(v interface{}) error {
	return validate.Struct(v)
}
