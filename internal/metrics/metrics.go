package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Scan Metrics
var (
	ScansTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameScansTotal,
			Help: HelpTextScansTotal,
		},
		[]string{LabelConfidence, LabelTracked},
	)

	CarbonEstimateKg = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameCarbonEstimateKg,
			Help:    HelpTextCarbonEstimateKg,
			Buckets: CarbonEstimateBuckets,
		},
	)

	PointsAwardedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePointsAwardedTotal,
			Help: HelpTextPointsAwardedTotal,
		},
		[]string{LabelType},
	)

	AchievementsUnlocked = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameAchievementsUnlocked,
			Help: HelpTextAchievementsUnlocked,
		},
		[]string{LabelAchievement},
	)

	LevelUpsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameLevelUpsTotal,
			Help: HelpTextLevelUpsTotal,
		},
	)

	PersistenceFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePersistenceFailures,
			Help: HelpTextPersistenceFailures,
		},
		[]string{LabelStage},
	)
)

// Product Metrics
var (
	ProductLookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameProductLookupsTotal,
			Help: HelpTextProductLookupsTotal,
		},
		[]string{LabelResult},
	)
)

// Scheduler Metrics
var (
	SchedulerJobRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSchedulerJobRuns,
			Help: HelpTextSchedulerJobRuns,
		},
		[]string{LabelJob, LabelResult},
	)
)
