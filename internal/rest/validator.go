package rest

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var subdomainPattern = regexp.MustCompile(`^[a-z0-9-]+$`)

// newValidator registers the "subdomain" tag: lowercase letters, digits
// and hyphens only.
func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("subdomain", func(fl validator.FieldLevel) bool {
		return subdomainPattern.MatchString(fl.Field().String())
	})
	return v
}
