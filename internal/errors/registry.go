package errors

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Navigation Errors (H001-H019)
	// ============================================

	"H001": {
		Category: CategoryNavigation,
		Message:  "Unknown tab key",
		Detail:   "No tab is registered under the requested key.",
	},
	"H002": {
		Category: CategoryNavigation,
		Message:  "Cannot synthesize destination path",
		Detail:   "The destination template needs a parameter that neither the current path nor the supplied params provide.",
	},
	"H003": {
		Category: CategoryNavigation,
		Message:  "Duplicate tab key",
		Detail:   "Tab keys must be unique within one layout.",
	},
	"H004": {
		Category: CategoryNavigation,
		Message:  "No tab owns this path",
	},
	"H005": {
		Category: CategoryNavigation,
		Message:  "Navigation re-entered the controller",
		Detail:   "The navigate callback called Navigate or Change on the controller that is dispatching it.",
	},

	// ============================================
	// Template Errors (H020-H039)
	// ============================================

	"H020": {
		Category: CategoryTemplate,
		Message:  "Invalid path template",
	},

	// ============================================
	// Form Errors (H040-H059)
	// ============================================

	"H040": {
		Category: CategoryForm,
		Message:  "Unknown form field",
		Detail:   "The field key was not declared when the form was created.",
	},
	"H041": {
		Category: CategoryForm,
		Message:  "Duplicate form field",
	},
	"H042": {
		Category: CategoryForm,
		Message:  "Submit failed",
	},

	// ============================================
	// Config Errors (H060-H079)
	// ============================================

	"H060": {
		Category: CategoryConfig,
		Message:  "Cannot read config file",
	},
	"H061": {
		Category: CategoryConfig,
		Message:  "Invalid configuration",
	},

	// ============================================
	// CLI Errors (H080-H099)
	// ============================================

	"H080": {
		Category: CategoryCLI,
		Message:  "Invalid argument",
	},
}

// Lookup returns the template for a code.
func Lookup(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}
