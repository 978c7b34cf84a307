package metrics

import (
	"context"
	"errors"
	"strconv"

	"github.com/osse101/CarbonScan_Go/internal/domain"
	"github.com/osse101/CarbonScan_Go/internal/logger"
)

// RecordScan records the business metrics for one processed scan.
// newTransactions are the reward transactions the scan appended.
func RecordScan(ctx context.Context, resp *domain.ScanResponse, newTransactions []domain.RewardTransaction) {
	if resp == nil {
		return
	}
	tracked := resp.Rewards != nil && resp.Persisted
	ScansTotal.WithLabelValues(string(resp.Confidence), strconv.FormatBool(tracked)).Inc()
	if kg, err := strconv.ParseFloat(resp.CarbonEstimate, 64); err == nil {
		CarbonEstimateKg.Observe(kg)
	}

	if !tracked {
		return
	}
	for _, tx := range newTransactions {
		PointsAwardedTotal.WithLabelValues(string(tx.Type)).Add(float64(tx.Points))
	}
	for _, a := range resp.Rewards.NewAchievements {
		AchievementsUnlocked.WithLabelValues(a.ID).Inc()
	}
	if resp.Rewards.LeveledUp {
		LevelUpsTotal.Inc()
	}

	logger.FromContext(ctx).Debug(LogMsgScanMetricsRecorded,
		"confidence", resp.Confidence,
		"transactions", len(newTransactions))
}

// RecordLookup counts a product lookup by its outcome
func RecordLookup(err error) {
	switch {
	case err == nil:
		ProductLookupsTotal.WithLabelValues(LookupResultFound).Inc()
	case errors.Is(err, domain.ErrProductNotFound):
		ProductLookupsTotal.WithLabelValues(LookupResultNotFound).Inc()
	default:
		ProductLookupsTotal.WithLabelValues(LookupResultFailed).Inc()
	}
}

// RecordPersistenceFailure counts a reward state that could not be loaded, saved or committed
func RecordPersistenceFailure(stage string) {
	PersistenceFailures.WithLabelValues(stage).Inc()
}

// RecordJobRun counts one scheduled job execution
func RecordJobRun(job string, err error) {
	outcome := JobOutcomeSuccess
	if err != nil {
		outcome = JobOutcomeError
	}
	SchedulerJobRuns.WithLabelValues(job, outcome).Inc()
}
