package render

// booleanAttrs are rendered as a bare name when true and omitted when false.
var booleanAttrs = map[string]bool{
	"autofocus": true,
	"checked":   true,
	"disabled":  true,
	"hidden":    true,
	"multiple":  true,
	"open":      true,
	"readonly":  true,
	"required":  true,
	"selected":  true,
	"defer":     true,
	"async":     true,
}

// inlineElements keep their children on one line in pretty mode.
var inlineElements = map[string]bool{
	"a":      true,
	"button": true,
	"label":  true,
	"span":   true,
	"strong": true,
	"title":  true,
	"h1":     true,
	"h2":     true,
	"p":      true,
	"li":     true,
}

func isBooleanAttr(name string) bool {
	return booleanAttrs[name]
}

func isInlineElement(tag string) bool {
	return inlineElements[tag]
}
