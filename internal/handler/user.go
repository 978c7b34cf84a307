package handler

import (
	"net/http"

	"github.com/osse101/CarbonScan_Go/internal/domain"
	"github.com/osse101/CarbonScan_Go/internal/logger"
	"github.com/osse101/CarbonScan_Go/internal/user"
)

// RegisterUserRequest is the body of POST /user/register
type RegisterUserRequest struct {
	Name  string `json:"name" validate:"required,max=100,excludesall=\x00\n\r\t"`
	Email string `json:"email" validate:"required,email,max=254"`
}

// ScanHistoryResponse wraps a page of the scan log
type ScanHistoryResponse struct {
	UserID string        `json:"user_id"`
	Scans  []domain.Scan `json:"scans"`
}

// TransactionsResponse wraps a page of the reward transaction log
type TransactionsResponse struct {
	UserID       string                     `json:"user_id"`
	Transactions []domain.RewardTransaction `json:"transactions"`
}

// HandleRegisterUser creates a user with an empty reward state
// @Summary Register user
// @Tags user
// @Accept json
// @Produce json
// @Param request body RegisterUserRequest true "Name and email"
// @Success 201 {object} domain.User
// @Failure 400 {object} ValidationErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /user/register [post]
func HandleRegisterUser(svc user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterUserRequest
		if !decodeRequest(w, r, &req, OpRegisterUser) {
			return
		}

		u, err := svc.Register(r.Context(), req.Name, req.Email)
		if err != nil {
			respondServiceError(w, r, OpRegisterUser, err)
			return
		}

		logger.FromContext(r.Context()).Info("User registered successfully", "user_id", u.ID)
		respondJSON(w, http.StatusCreated, u)
	}
}

// HandleGetProfile returns the profile and rewards summary
// @Summary Get user profile
// @Tags user
// @Produce json
// @Param user_id query string true "User ID"
// @Success 200 {object} domain.UserProfile
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /user/profile [get]
func HandleGetProfile(svc user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := requiredQuery(w, r, "user_id")
		if !ok {
			return
		}

		profile, err := svc.GetProfile(r.Context(), userID)
		if err != nil {
			respondServiceError(w, r, OpGetProfile, err)
			return
		}
		respondJSON(w, http.StatusOK, profile)
	}
}

// HandleGetScanHistory returns the user's scans, newest first
// @Summary Get scan history
// @Tags user
// @Produce json
// @Param user_id query string true "User ID"
// @Param limit query int false "Maximum entries (default 50, max 500)"
// @Success 200 {object} ScanHistoryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /user/scans [get]
func HandleGetScanHistory(svc user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := requiredQuery(w, r, "user_id")
		if !ok {
			return
		}
		limit, ok := limitQuery(w, r)
		if !ok {
			return
		}

		scans, err := svc.GetScanHistory(r.Context(), userID, limit)
		if err != nil {
			respondServiceError(w, r, OpGetScanHistory, err)
			return
		}
		respondJSON(w, http.StatusOK, ScanHistoryResponse{UserID: userID, Scans: scans})
	}
}

// HandleGetTransactions returns the reward transaction audit log, newest first
// @Summary Get reward transactions
// @Tags user
// @Produce json
// @Param user_id query string true "User ID"
// @Param limit query int false "Maximum entries (default 50, max 500)"
// @Success 200 {object} TransactionsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /user/transactions [get]
func HandleGetTransactions(svc user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := requiredQuery(w, r, "user_id")
		if !ok {
			return
		}
		limit, ok := limitQuery(w, r)
		if !ok {
			return
		}

		txs, err := svc.GetTransactions(r.Context(), userID, limit)
		if err != nil {
			respondServiceError(w, r, OpGetTransactions, err)
			return
		}
		respondJSON(w, http.StatusOK, TransactionsResponse{UserID: userID, Transactions: txs})
	}
}
