package router

import "context"

// Middleware wraps a NavigateFunc.
type Middleware func(next NavigateFunc) NavigateFunc

// Chain wraps fn with middleware. The first middleware is the outermost, so
// it runs first.
func Chain(fn NavigateFunc, mw ...Middleware) NavigateFunc {
	for i := len(mw) - 1; i >= 0; i-- {
		fn = mw[i](fn)
	}
	return fn
}

// Skip bypasses mw for navigations where condition is true.
func Skip(condition func(nav Navigation) bool, mw Middleware) Middleware {
	return func(next NavigateFunc) NavigateFunc {
		wrapped := mw(next)
		return func(ctx context.Context, nav Navigation) {
			if condition(nav) {
				next(ctx, nav)
				return
			}
			wrapped(ctx, nav)
		}
	}
}

// Only applies mw just to navigations where condition is true.
func Only(condition func(nav Navigation) bool, mw Middleware) Middleware {
	return Skip(func(nav Navigation) bool { return !condition(nav) }, mw)
}
