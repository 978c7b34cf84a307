package product

import (
	"fmt"
	"strings"

	"github.com/osse101/CarbonScan_Go/internal/domain"
)

// NormalizeBarcode strips surrounding whitespace and inner spaces or dashes
// that scanners and users sometimes add.
func NormalizeBarcode(raw string) string {
	return strings.Map(func(r rune) rune {
		if r == ' ' || r == '-' || r == '\t' {
			return -1
		}
		return r
	}, strings.TrimSpace(raw))
}

// IsValidBarcode reports whether s is 8 to 14 ASCII digits
func IsValidBarcode(s string) bool {
	if len(s) < MinBarcodeLength || len(s) > MaxBarcodeLength {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// ValidateBarcode normalizes raw and returns the canonical barcode, or
// ErrBarcodeMissing / ErrInvalidBarcode.
func ValidateBarcode(raw string) (string, error) {
	code := NormalizeBarcode(raw)
	if code == "" {
		return "", domain.ErrBarcodeMissing
	}
	if !IsValidBarcode(code) {
		return "", fmt.Errorf("%w: %q", domain.ErrInvalidBarcode, raw)
	}
	return code, nil
}
