package handler

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/CarbonScan_Go/internal/domain"
)

func TestMapServiceErrorToUserMessage(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		msg    string
	}{
		{"nil", nil, http.StatusInternalServerError, ErrMsgGenericServerError},
		{"barcode missing", domain.ErrBarcodeMissing, http.StatusBadRequest, ErrMsgBarcodeMissingError},
		{"invalid barcode", fmt.Errorf("%w: abc", domain.ErrInvalidBarcode), http.StatusBadRequest, ErrMsgInvalidBarcodeError},
		{"invalid input", fmt.Errorf("%w: name is required", domain.ErrInvalidInput), http.StatusBadRequest, ErrMsgInvalidRequestError},
		{"product not found", fmt.Errorf("%w: 123", domain.ErrProductNotFound), http.StatusNotFound, ErrMsgProductNotFoundError},
		{"lookup failed", fmt.Errorf("%w: %w", domain.ErrProductLookupFailed, context.DeadlineExceeded), http.StatusBadGateway, ErrMsgProductLookupFailedError},
		{"user not found", fmt.Errorf("get profile: %w", domain.ErrUserNotFound), http.StatusNotFound, ErrMsgUserNotFoundError},
		{"duplicate email", domain.ErrDuplicateEmail, http.StatusConflict, ErrMsgDuplicateEmailError},
		{"timeout", domain.ErrConnectionTimeout, http.StatusServiceUnavailable, ErrMsgUnavailableError},
		{"database", domain.ErrDatabaseError, http.StatusInternalServerError, ErrMsgGenericServerError},
		{"unknown", errors.New("disk on fire"), http.StatusInternalServerError, ErrMsgGenericServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, msg := mapServiceErrorToUserMessage(tt.err)
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.msg, msg)
		})
	}
}

func TestReleaseBuffer_DropsOversizedBuffers(t *testing.T) {
	buf := encodeBuffers.Get().(*bytes.Buffer)
	buf.Grow(maxPooledBuffer * 2)
	buf.WriteString("payload")

	releaseBuffer(buf)

	// Oversized buffers are left for the GC and keep their contents
	assert.Equal(t, "payload", buf.String())
}
