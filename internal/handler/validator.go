package handler

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/CarbonScan_Go/internal/product"
)

// requestValidator reports fields under their JSON names and knows the
// custom "barcode" tag
var requestValidator = sync.OnceValue(func() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	if err := v.RegisterValidation("barcode", validBarcodeField); err != nil {
		panic(err)
	}
	return v
})

// tagMessages are the user-facing texts per failed tag. Tags with a
// parameter carry a %s for it.
var tagMessages = map[string]string{
	"required":    "This field is required",
	"email":       "Invalid email format",
	"barcode":     "Must be 8 to 14 digits",
	"uuid":        "Must be a valid UUID",
	"max":         "Must be at most %s characters",
	"min":         "Must be at least %s characters",
	"excludesall": "Contains invalid characters",
}

func validateRequest(req any) error {
	return requestValidator().Struct(req)
}

// FormatValidationError turns validator output into field -> message
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return map[string]string{"error": "Invalid request format"}
	}

	out := make(map[string]string, len(fieldErrs))
	for _, fe := range fieldErrs {
		msg, ok := tagMessages[fe.Tag()]
		if !ok {
			msg = "Invalid value"
		} else if strings.Contains(msg, "%s") {
			msg = fmt.Sprintf(msg, fe.Param())
		}
		out[fe.Field()] = msg
	}
	return out
}

// validBarcodeField accepts blanks so that "required" decides about them
func validBarcodeField(fl validator.FieldLevel) bool {
	raw := fl.Field().String()
	if strings.TrimSpace(raw) == "" {
		return true
	}
	return product.IsValidBarcode(product.NormalizeBarcode(raw))
}
