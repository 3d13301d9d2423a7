package dto

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	// CPV codes are 8 digits with an optional check digit, e.g. "45000000" or "45000000-7".
	cpvPattern = regexp.MustCompile(`^\d{8}(-\d)?$`)
	// NUTS codes are a 2-letter country prefix plus up to 3 alphanumerics, e.g. "RO321".
	nutsPattern = regexp.MustCompile(`^[A-Z]{2}[A-Z0-9]{0,3}$`)
)

// RegisterValidators attaches the custom classification-code validators to
// gin's binding engine. Must run before the router handles requests.
func RegisterValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterValidation("cpvcode", func(fl validator.FieldLevel) bool {
		return cpvPattern.MatchString(fl.Field().String())
	})
	v.RegisterValidation("nutscode", func(fl validator.FieldLevel) bool {
		return nutsPattern.MatchString(fl.Field().String())
	})
}
