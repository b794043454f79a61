// Package metrics exports Prometheus metrics for schema validation and the
// HTTP adapter. A Collector is passed to schemas with schema.WithObserver and
// mounted on a chi router:
//
//	collector := metrics.NewCollector("", nil)
//	signups := demo.Signup(schema.WithObserver(collector))
//	r.Use(collector.Middleware)
//	r.Handle("/metrics", collector.Handler())
package metrics
