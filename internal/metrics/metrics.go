package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/osse101/scrapworld/internal/domain"
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

// Business Metrics
var (
	BoostersOpened = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameBoostersOpened,
			Help: HelpTextBoostersOpened,
		},
		[]string{LabelTier},
	)

	RewardXPGranted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRewardXPGranted,
			Help: HelpTextRewardXPGranted,
		},
		[]string{LabelSource},
	)

	RewardScrapGranted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRewardScrap,
			Help: HelpTextRewardScrap,
		},
		[]string{LabelSource},
	)

	RewardItemsGranted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRewardItems,
			Help: HelpTextRewardItems,
		},
		[]string{LabelSource},
	)

	Fusions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameFusions,
			Help: HelpTextFusions,
		},
		[]string{LabelKind},
	)

	ScrapStaked = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameScrapStaked,
			Help: HelpTextScrapStaked,
		},
	)

	StakesCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameStakesCreated,
			Help: HelpTextStakesCreated,
		},
	)

	QuestsCompleted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameQuestsCompleted,
			Help: HelpTextQuestsCompleted,
		},
	)

	TokensMinted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameTokensMinted,
			Help: HelpTextTokensMinted,
		},
	)

	UsersRegistered = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameUsersRegistered,
			Help: HelpTextUsersRegistered,
		},
	)
)

// RecordRewards counts a committed reward bundle against its source
func RecordRewards(source string, bundle domain.RewardBundle) {
	if bundle.XP > 0 {
		RewardXPGranted.WithLabelValues(source).Add(float64(bundle.XP))
	}
	if bundle.Scrap > 0 {
		RewardScrapGranted.WithLabelValues(source).Add(bundle.Scrap)
	}
	units := 0
	for _, it := range bundle.Items {
		if it.Quantity > 0 {
			units += it.Quantity
		} else {
			units++
		}
	}
	if units > 0 {
		RewardItemsGranted.WithLabelValues(source).Add(float64(units))
	}
}

// RecordStake counts a committed stake
func RecordStake(amount float64) {
	StakesCreated.Inc()
	ScrapStaked.Add(amount)
}
