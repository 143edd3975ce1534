// Package server hosts a tab layout over HTTP with chi.
//
// Routes:
//
//	GET  /*            render the tab owning the path (404 when none does)
//	POST /_tabs/{key}  change tab, 303 to the synthesized path
//	GET  /_live        websocket: {"tab","path","params"} in, {"path","tab"} or {"error"} out
//	GET  /metrics      Prometheus metrics
//
// Each visitor gets a session (cookie "headless_sid") holding its own layout
// controller. The session's location stands in for the browser URL: the
// controller reads it as its endpoint and its navigations, after passing
// the metrics and tracing middleware, write it.
//
//	srv, err := server.New(cfg, server.WithLogger(log))
//	if err != nil {
//	    return err
//	}
//	return srv.Run(ctx)
package server
