// Package httpserver wraps net/http with graceful shutdown, configurable
// timeouts, health-check handlers and structured lifecycle logging.
//
// Run listens on the configured address and blocks until the context is
// cancelled, then drains in-flight requests within the shutdown timeout.
// Signal handling is left to the caller:
//
//	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
//	defer stop()
//
//	srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server failed", logger.Error(err))
//	}
//
// Options panic on invalid values (empty address, non-positive timeouts) so
// that misconfiguration fails at startup.
package httpserver
