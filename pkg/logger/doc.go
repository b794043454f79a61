// Package logger builds *slog.Logger values from functional options or from
// an environment-driven Config, and provides attribute constructors that keep
// key names consistent across the module (schema, phase, failures, status).
//
//	log, err := logger.FromConfig(cfg.Log)
//	if err != nil {
//		return err
//	}
//	log.Info("server started", logger.Component("http"))
//
// Context extractors registered with WithContextExtractors add request-scoped
// attributes, such as the request id, to every record logged with a context.
package logger
