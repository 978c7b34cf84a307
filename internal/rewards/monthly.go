package rewards

import (
	"fmt"
	"time"

	"github.com/osse101/CarbonScan_Go/internal/domain"
)

// CheckMonthlyBonus returns the bonus owed for now's calendar month, or nil.
// The gate compares month-of-year only, so a claim from the same month of a
// previous year blocks the bonus.
func CheckMonthlyBonus(state *domain.UserRewardState, now time.Time, loc *time.Location) *domain.MonthlyBonus {
	if loc == nil {
		loc = time.UTC
	}
	current := now.In(loc)
	if state.LastMonthlyBonusCheck != nil && state.LastMonthlyBonusCheck.In(loc).Month() == current.Month() {
		return nil
	}
	return &domain.MonthlyBonus{
		Points: MonthlyBonusPoints,
		Reason: fmt.Sprintf(MsgMonthlyBonusFormat, current.Format("January 2006")),
	}
}
