package handler

import (
	"net/http"

	"github.com/osse101/CarbonScan_Go/internal/domain"
	"github.com/osse101/CarbonScan_Go/internal/logger"
	"github.com/osse101/CarbonScan_Go/internal/scan"
)

// ScanRequest is the body of POST /scan
type ScanRequest struct {
	Barcode string `json:"barcode" validate:"required,max=32,barcode"`
	UserID  string `json:"user_id,omitempty" validate:"omitempty,uuid"`
}

// HandleScan estimates a product's footprint and, for a known user, applies rewards
// @Summary Scan a product
// @Description Resolve a barcode, estimate its carbon footprint and award points when user_id is given
// @Tags scan
// @Accept json
// @Produce json
// @Param request body ScanRequest true "Barcode and optional user"
// @Success 200 {object} domain.ScanResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /scan [post]
func HandleScan(svc scan.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ScanRequest
		if !decodeRequest(w, r, &req, OpProcessScan) {
			return
		}

		resp, err := svc.ProcessScan(r.Context(), domain.ScanRequest{
			Barcode: req.Barcode,
			UserID:  req.UserID,
		})
		if err != nil {
			respondServiceError(w, r, OpProcessScan, err)
			return
		}

		logger.FromContext(r.Context()).Debug("Scan processed",
			"barcode", resp.Barcode,
			"user_id", req.UserID,
			"persisted", resp.Persisted)

		respondJSON(w, http.StatusOK, resp)
	}
}
