// Package httpserver runs the validation HTTP endpoints with configured
// timeouts and graceful shutdown on context cancellation, and provides the
// health probe handler.
//
//	srv := httpserver.New(cfg.HTTP, router, log)
//	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
//	defer stop()
//	if err := srv.Run(ctx); err != nil {
//		log.Error("server failed", logger.Error(err))
//	}
package httpserver
