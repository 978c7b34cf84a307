package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// User errors
	ErrMsgUserNotFound   = "user not found"
	ErrMsgDuplicateEmail = "email already registered"
	ErrMsgInvalidUserID  = "invalid user id"
	ErrMsgUserIDRequired = "user id is required"
	ErrMsgNameRequired   = "name is required"
	ErrMsgInvalidEmail   = "invalid email"

	// Scan errors
	ErrMsgBarcodeMissing = "barcode missing"
	ErrMsgInvalidBarcode = "invalid barcode"

	// Product errors
	ErrMsgProductNotFound     = "product not found"
	ErrMsgProductLookupFailed = "failed to fetch product info"

	// Database/System errors
	ErrMsgConnectionTimeout = "connection timeout"
	ErrMsgDatabaseError     = "database error"
	ErrMsgTxClosed          = "tx is closed"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// User errors
	ErrUserNotFound   = errors.New(ErrMsgUserNotFound)
	ErrDuplicateEmail = errors.New(ErrMsgDuplicateEmail)

	// Scan errors
	ErrBarcodeMissing = errors.New(ErrMsgBarcodeMissing)
	ErrInvalidBarcode = errors.New(ErrMsgInvalidBarcode)

	// Product errors
	ErrProductNotFound     = errors.New(ErrMsgProductNotFound)
	ErrProductLookupFailed = errors.New(ErrMsgProductLookupFailed)

	// Database/System errors
	ErrConnectionTimeout = errors.New(ErrMsgConnectionTimeout)
	ErrDatabaseError     = errors.New(ErrMsgDatabaseError)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
