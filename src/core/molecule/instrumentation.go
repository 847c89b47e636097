// go/src/core/molecule/instrumentation.go
package molecule

import "github.com/molecule-core/go/src/metrics"

// opMetrics counts and times the build, sign and verify operations this
// package exposes. Callers that expose a /metrics endpoint register
// Metrics().Collectors() with their own prometheus.Registerer.
var opMetrics = metrics.New()

// Metrics returns the package's Prometheus metrics instance, for callers
// that want to register its collectors.
func Metrics() *metrics.Metrics {
	return opMetrics
}
