package metrics

import "github.com/prometheus/client_golang/prometheus"

// Outcomes recorded by TenantResolutions.
const (
	ResolvedByID        = "id"
	ResolvedBySubdomain = "subdomain"
	ResolvedFromCache   = "cache"
	ResolveMiss         = "miss"
)

var (
	HTTPRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total HTTP requests by method, route and status code",
	}, []string{"method", "route", "status"})

	HTTPRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Latency of HTTP handlers",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})

	// How tenant references were resolved
	TenantResolutions = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "tenant_resolutions_total",
		Help: "Tenant reference resolutions by outcome",
	}, []string{"outcome"})

	TenantScopeDenials = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "tenant_scope_denials_total",
		Help: "Mutations rejected because the resource belongs to another tenant",
	}, []string{"resource"})
)

func Init() {
	prometheus.MustRegister(
		HTTPRequests,
		HTTPRequestDuration,
		TenantResolutions,
		TenantScopeDenials,
	)
}
