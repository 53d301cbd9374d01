// Package errors provides structured, actionable error messages for charm.
//
// Every error carries a stable code (e.g. "C001") that maps to a short
// message, a longer explanation and a documentation link. Codes let
// callers match failures with errors.Is without comparing strings.
//
// # Error Categories
//
//   - config: malformed prefixes, suffixes or configuration files
//   - registration: component definitions that could not be registered
//   - naming: base names that do not fit the tag-name scheme
//   - source: icon sources that could not be read
//
// # Usage
//
//	err := errors.New(errors.CodeInvalidSuffix).
//	    WithDetail(`suffix "@#$" contains characters outside [a-z0-9_-]`).
//	    WithSuggestion("Use lowercase letters, digits, '-' or '_'")
//
//	fmt.Println(err.Format())
//	// ERROR C001: Invalid scope suffix
//	//
//	//   suffix "@#$" contains characters outside [a-z0-9_-]
//	//
//	//   Hint: Use lowercase letters, digits, '-' or '_'
package errors
