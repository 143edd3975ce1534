// Package routepath parses slash-delimited path templates with named
// parameters and translates between templates and concrete paths.
//
// A template is a sequence of literal and parameter segments:
//
//	t := routepath.MustParse("/layout1/:tag/cat/:number")
//
// Match reads parameters out of a concrete path purely by position, and
// Synthesize writes them back into a template:
//
//	params := routepath.Match(routepath.MustParse("/layout2/:tag/:number"), "/layout2/T/100")
//	// params == Params{"tag": "T", "number": "100"}
//
//	routepath.Synthesize(t, params) // "/layout1/T/cat/100"
//
// This is deliberately not a router: there are no wildcards, optional
// segments, constraints or query handling, and Match does not compare
// literal segments. Template.Matches is the strict shape check for hosts that
// need to find which template owns a path.
package routepath
