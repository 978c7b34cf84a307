package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Scan metric names
const (
	MetricNameScansTotal           = "carbonscan_scans_total"
	MetricNameCarbonEstimateKg     = "carbonscan_carbon_estimate_kg"
	MetricNamePointsAwardedTotal   = "carbonscan_points_awarded_total"
	MetricNameAchievementsUnlocked = "carbonscan_achievements_unlocked_total"
	MetricNameLevelUpsTotal        = "carbonscan_level_ups_total"
	MetricNamePersistenceFailures  = "carbonscan_persistence_failures_total"
	MetricNameProductLookupsTotal  = "carbonscan_product_lookups_total"
	MetricNameSchedulerJobRuns     = "carbonscan_scheduler_job_runs_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Scan metric help text
const (
	HelpTextScansTotal           = "Total number of scans processed by estimate confidence and whether they were tracked"
	HelpTextCarbonEstimateKg     = "Distribution of per-scan carbon estimates in kg CO2e"
	HelpTextPointsAwardedTotal   = "Total reward points credited by transaction type"
	HelpTextAchievementsUnlocked = "Total number of achievements unlocked"
	HelpTextLevelUpsTotal        = "Total number of scans that raised a user's level"
	HelpTextPersistenceFailures  = "Total number of scans whose reward state could not be loaded or saved"
	HelpTextProductLookupsTotal  = "Total number of product lookups by result"
	HelpTextSchedulerJobRuns     = "Total number of scheduled job runs by job and outcome"
)

// ============================================================================
// Metric Label Names
// ============================================================================

const (
	LabelMethod      = "method"
	LabelPath        = "path"
	LabelStatus      = "status"
	LabelType        = "type"
	LabelConfidence  = "confidence"
	LabelTracked     = "tracked"
	LabelAchievement = "achievement"
	LabelStage       = "stage"
	LabelResult      = "result"
	LabelJob         = "job"
)

// Product lookup results
const (
	LookupResultFound    = "found"
	LookupResultNotFound = "not_found"
	LookupResultFailed   = "failed"
)

// Persistence stages
const (
	StageLoad   = "load"
	StageSave   = "save"
	StageCommit = "commit"
)

// PathUnmatched labels HTTP requests that matched no route
const PathUnmatched = "unmatched"

// Scheduler job outcomes
const (
	JobOutcomeSuccess = "success"
	JobOutcomeError   = "error"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// CarbonEstimateBuckets spans the emission reference table, from produce to red meat
var CarbonEstimateBuckets = []float64{0.1, 0.25, 0.5, 1, 2, 3, 5, 7.5, 10, 15}

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgScanMetricsRecorded = "Scan metrics recorded"
)
