package rewards

import (
	"log/slog"
	"time"

	"github.com/osse101/CarbonScan_Go/internal/domain"
)

// LedgerResult lists the points that matured during one confirmation pass
type LedgerResult struct {
	ConfirmedPoints       int
	ConfirmedTransactions []domain.RewardTransaction
}

// ConfirmMatured moves every matured unconfirmed transaction into the confirmed
// bucket and stamps its ConfirmedAt. TotalPointsEarned is never touched, and a
// second pass with nothing newly eligible is a no-op.
func ConfirmMatured(state *domain.UserRewardState, now time.Time, delay time.Duration) LedgerResult {
	var result LedgerResult

	for i := range state.RewardTransactions {
		tx := &state.RewardTransactions[i]
		if !tx.IsPending() || now.Before(tx.Date.Add(delay)) {
			continue
		}

		amount := tx.Points
		if amount > state.UnconfirmedPoints {
			slog.Error(LogMsgLedgerImbalance,
				"user_id", state.UserID,
				"transaction_id", tx.ID,
				"transaction_points", tx.Points,
				"unconfirmed_points", state.UnconfirmedPoints)
			amount = state.UnconfirmedPoints
		}

		confirmedAt := now
		tx.ConfirmedAt = &confirmedAt
		state.UnconfirmedPoints -= amount
		state.ConfirmedPoints += amount

		result.ConfirmedPoints += amount
		result.ConfirmedTransactions = append(result.ConfirmedTransactions, *tx)
	}

	state.RewardPoints = state.ConfirmedPoints + state.UnconfirmedPoints
	return result
}

// NextConfirmationAt returns when the oldest pending transaction matures, or nil
func NextConfirmationAt(state *domain.UserRewardState, delay time.Duration) *time.Time {
	var next *time.Time
	for _, tx := range state.RewardTransactions {
		if !tx.IsPending() {
			continue
		}
		at := tx.Date.Add(delay)
		if next == nil || at.Before(*next) {
			next = &at
		}
	}
	return next
}
