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

// Business metric names
const (
	MetricNameBoostersOpened  = "boosters_opened_total"
	MetricNameRewardXPGranted = "reward_xp_granted_total"
	MetricNameRewardScrap     = "reward_scrap_granted_total"
	MetricNameRewardItems     = "reward_items_granted_total"
	MetricNameFusions         = "fusions_total"
	MetricNameScrapStaked     = "scrap_staked_total"
	MetricNameStakesCreated   = "stakes_created_total"
	MetricNameQuestsCompleted = "quests_completed_total"
	MetricNameTokensMinted    = "tokens_minted_total"
	MetricNameUsersRegistered = "users_registered_total"
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

// Business metric help text
const (
	HelpTextBoostersOpened  = "Total number of boosters opened"
	HelpTextRewardXPGranted = "Total experience granted through reward bundles"
	HelpTextRewardScrap     = "Total scrap granted through reward bundles"
	HelpTextRewardItems     = "Total item units granted through reward bundles"
	HelpTextFusions         = "Total number of fusions performed"
	HelpTextScrapStaked     = "Total scrap moved into staking"
	HelpTextStakesCreated   = "Total number of staking positions opened"
	HelpTextQuestsCompleted = "Total number of quests completed"
	HelpTextTokensMinted    = "Total number of tokens minted"
	HelpTextUsersRegistered = "Total number of wallet registrations"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelTier   = "tier"
	LabelKind   = "kind"
	LabelSource = "source"
)

// Reward sources
const (
	SourceBooster = "booster"
	SourceQuest   = "quest"
)

// unmatchedRoute labels requests that no route matched, keeping path cardinality bounded
const unmatchedRoute = "unmatched"

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}
