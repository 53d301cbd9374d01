package errors

// Error codes.
const (
	CodeInvalidSuffix    = "C001"
	CodeInvalidPrefix    = "C002"
	CodeMissingBaseName  = "C003"
	CodePrefixedBaseName = "C004"
	CodeAlreadyDefined   = "C005"
	CodeInvalidTagName   = "C006"

	CodeConfigNotFound = "C010"
	CodeConfigParse    = "C011"
	CodeConfigInvalid  = "C012"
	CodeIconSource     = "C020"
)

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	DocURL   string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// Naming and registration (C001-C009)
	CodeInvalidSuffix: {
		Category: CategoryConfig,
		Message:  "Invalid scope suffix",
		DocURL:   "https://vango.dev/charm/errors/C001",
	},
	CodeInvalidPrefix: {
		Category: CategoryConfig,
		Message:  "Invalid project prefix",
		DocURL:   "https://vango.dev/charm/errors/C002",
	},
	CodeMissingBaseName: {
		Category: CategoryRegistration,
		Message:  "Component has no base name",
		DocURL:   "https://vango.dev/charm/errors/C003",
	},
	CodePrefixedBaseName: {
		Category: CategoryNaming,
		Message:  "Base name already carries the prefix",
		DocURL:   "https://vango.dev/charm/errors/C004",
	},
	CodeAlreadyDefined: {
		Category: CategoryRegistration,
		Message:  "Element already defined",
		DocURL:   "https://vango.dev/charm/errors/C005",
	},
	CodeInvalidTagName: {
		Category: CategoryNaming,
		Message:  "Invalid element or attribute name",
		DocURL:   "https://vango.dev/charm/errors/C006",
	},

	// Configuration files (C010-C019)
	CodeConfigNotFound: {
		Category: CategoryConfig,
		Message:  "Configuration file not found",
		DocURL:   "https://vango.dev/charm/errors/C010",
	},
	CodeConfigParse: {
		Category: CategoryConfig,
		Message:  "Configuration file could not be parsed",
		DocURL:   "https://vango.dev/charm/errors/C011",
	},
	CodeConfigInvalid: {
		Category: CategoryConfig,
		Message:  "Configuration is invalid",
		DocURL:   "https://vango.dev/charm/errors/C012",
	},

	// Sources (C020-C029)
	CodeIconSource: {
		Category: CategorySource,
		Message:  "Icon source could not be read",
		DocURL:   "https://vango.dev/charm/errors/C020",
	},
}

// Lookup returns the template registered for code.
func Lookup(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}
