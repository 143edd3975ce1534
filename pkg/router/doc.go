// Package router holds the contracts between headless components and the
// host application's real router.
//
// Components never change the URL themselves. They synthesize a destination
// and hand it to a NavigateFunc together with the destination template's
// segments and the parameters that were substituted:
//
//	metrics := middleware.NewMetrics()
//	nav := router.Chain(
//	    func(ctx context.Context, n router.Navigation) { http.Redirect(w, r, n.Path, http.StatusSeeOther) },
//	    metrics.Navigation(),
//	)
//
// The current location is read back through an EndpointFunc. History is an
// in-memory implementation of both for hosts without a browser.
//
// # Typed parameters
//
// ParamParser converts route params to and from structs with `param` tags,
// so views can work with typed records instead of loose maps:
//
//	type ItemParams struct {
//	    ID int `param:"id"`
//	}
//
//	var p ItemParams
//	err := router.NewParamParser(router.Strict()).Parse(params, &p)
package router
