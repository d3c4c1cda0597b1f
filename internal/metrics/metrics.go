package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	PlatformCalls = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "crm_platform_requests_total",
			Help: "Platform API calls by resource, method and outcome",
		},
		[]string{"resource", "method", "outcome"}, // customers|tasks , success|domain_error|server_error|transport_error
	)
)

func MustRegister(r prometheus.Registerer) {
	r.MustRegister(
		PlatformCalls,
	)
}

// ObservePlatformCall records one completed (or failed) platform call.
func ObservePlatformCall(resource, method string, res *http.Response, err error) {
	outcome := "transport_error"
	if err == nil && res != nil {
		switch {
		case res.StatusCode/100 == 2:
			outcome = "success"
		case res.StatusCode >= http.StatusInternalServerError:
			outcome = "server_error"
		default:
			outcome = "domain_error"
		}
	}
	PlatformCalls.WithLabelValues(resource, method, outcome).Inc()
}
