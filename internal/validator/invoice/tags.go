// Package invoice holds the GST field formats checked on invoice records and
// registers them as go-playground/validator tags.
package invoice

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"gstinvoice/internal/domain"
)

var (
	gstinPattern = regexp.MustCompile(`^\d{2}[A-Z]{5}\d{4}[A-Z][1-9A-Z]Z[0-9A-Z]$`)
	panPattern   = regexp.MustCompile(`^[A-Z]{5}\d{4}[A-Z]$`)
	ifscPattern  = regexp.MustCompile(`^[A-Z]{4}0[A-Z0-9]{6}$`)
	hsnPattern   = regexp.MustCompile(`^\d{4,8}$`)
)

// ValidGSTIN reports whether s is a well-formed 15 character GSTIN.
// Letters are compared case-insensitively.
func ValidGSTIN(s string) bool {
	return gstinPattern.MatchString(strings.ToUpper(strings.TrimSpace(s)))
}

// ValidPAN reports whether s is a well-formed PAN.
func ValidPAN(s string) bool {
	return panPattern.MatchString(strings.ToUpper(strings.TrimSpace(s)))
}

// ValidIFSC reports whether s is a well-formed IFSC code.
func ValidIFSC(s string) bool {
	return ifscPattern.MatchString(strings.ToUpper(strings.TrimSpace(s)))
}

// ValidHSNSAC reports whether s is a 4 to 8 digit HSN or SAC code.
func ValidHSNSAC(s string) bool {
	return hsnPattern.MatchString(strings.TrimSpace(s))
}

func stringRule(check func(string) bool) validator.Func {
	return func(fl validator.FieldLevel) bool {
		if fl.Field().Kind() != reflect.String {
			return false
		}
		return check(fl.Field().String())
	}
}

func gstRateRule(fl validator.FieldLevel) bool {
	switch fl.Field().Kind() {
	case reflect.Float32, reflect.Float64:
		return domain.IsValidGSTRate(fl.Field().Float())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return domain.IsValidGSTRate(float64(fl.Field().Int()))
	}
	return false
}

// Register adds the gstin, pan, ifsc, hsnsac and gstrate tags to v.
func Register(v *validator.Validate) error {
	rules := map[string]validator.Func{
		"gstin":   stringRule(ValidGSTIN),
		"pan":     stringRule(ValidPAN),
		"ifsc":    stringRule(ValidIFSC),
		"hsnsac":  stringRule(ValidHSNSAC),
		"gstrate": gstRateRule,
	}
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return err
		}
	}
	return nil
}

// New returns a validator that reads the same `binding` struct tags gin uses,
// for validating records outside an HTTP request.
func New() *validator.Validate {
	v := validator.New()
	v.SetTagName("binding")
	if err := Register(v); err != nil {
		panic(err)
	}
	return v
}
