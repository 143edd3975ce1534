// Package errors provides coded, actionable errors for headless components
// and the CLI.
//
// Each code (e.g. "H001") maps to a category, a short message and a longer
// explanation. Errors wrap an underlying cause, so errors.Is keeps working
// with the sentinel errors exported by the pkg/ packages:
//
//	err := errors.New("H001").
//	    WithDetail(`no tab is registered under "overveiw"`).
//	    WithSuggestion(`did you mean "overview"?`).
//	    Wrap(layout.ErrUnknownTab)
//
//	fmt.Print(err.Format())
//	// ERROR H001: Unknown tab key
//	//
//	//   no tab is registered under "overveiw"
//	//
//	//   Hint: did you mean "overview"?
//
// # Error Categories
//
//   - navigation: tab lookup and path synthesis
//   - template: path template parsing
//   - form: field declaration and submission
//   - config: configuration files
//   - cli: command-line usage
package errors
