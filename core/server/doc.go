// Package server runs an http.Handler with graceful shutdown.
//
//	srv, err := server.NewFromConfig(cfg.Server, server.WithLogger(log))
//	if err != nil {
//		return err
//	}
//
//	g, ctx := errgroup.WithContext(ctx)
//	g.Go(srv.Run(ctx, handler))
//	return g.Wait()
//
// Run serves until the context is canceled, then shuts down within the
// configured timeout. Start and Stop are available for manual control.
//
// Config is read from SERVER_ADDR, SERVER_READ_TIMEOUT, SERVER_WRITE_TIMEOUT,
// SERVER_IDLE_TIMEOUT, SERVER_SHUTDOWN_TIMEOUT and SERVER_MAX_HEADER_BYTES.
// Setting SERVER_TLS_CERT_FILE and SERVER_TLS_KEY_FILE enables HTTPS.
// An address with port 0 binds a free port; Addr reports it while running.
package server
