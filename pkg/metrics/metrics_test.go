package metrics_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/okian/gridpath/pkg/metrics"
	. "github.com/smartystreets/goconvey/convey"
)

func TestManager(t *testing.T) {
	Convey("Given a manager on a fresh registry", t, func() {
		registry := prometheus.NewRegistry()
		m := metrics.NewManager(
			metrics.WithNamespace("gridpath_test"),
			metrics.WithSubsystem("recruiting"),
			metrics.WithPrometheusRegistry(registry),
		)

		Convey("Then construction registers all metrics without panicking", func() {
			So(m, ShouldNotBeNil)

			families, err := registry.Gather()
			So(err, ShouldBeNil)
			So(len(families), ShouldBeGreaterThan, 0)
		})
	})
}

func TestGlobalHelpers(t *testing.T) {
	Convey("Given the global manager", t, func() {
		Convey("Then recording helpers do not panic", func() {
			So(func() {
				metrics.RecordDatasetLoad(12.5)
				metrics.RecordDatasetLoadError()
				metrics.AddRowsRead(100)
				metrics.AddRowsDropped(3)
				metrics.UpdateRecordsCached(97)
				metrics.RecordAggregationLatency("pathways", 0.4)
				metrics.RecordFilterRequest()
				metrics.RecordHTTPRequest("pathways", "GET", "200")
				metrics.RecordHTTPRequestDuration("pathways", "GET", "200", 1.2)
				metrics.RecordErrorByEndpoint("pathways", "GET", "client_error")
				metrics.UpdateSystemMemoryUsage(1 << 20)
				metrics.UpdateSystemGoroutineCount(8)
			}, ShouldNotPanic)
		})

		Convey("Then the custom registry is exposed", func() {
			So(metrics.GetRegistry(), ShouldNotBeNil)
		})
	})
}
