package openapi3

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeInvalidType            = "invalid_type"
	CodeDuplicateComponent     = "duplicate_component"
	CodeParameterShape         = "parameter_shape"
	CodeUnknownPathParamType   = "unknown_path_param_type"
	CodeDuplicateRequestBody   = "duplicate_request_body"
	CodeGetRequestBody         = "get_request_body"
	CodeMissingResponse        = "missing_response"
	CodeInvalidStatusCode      = "invalid_status_code"
	CodeServerVariableMismatch = "server_variable_mismatch"
	CodeDocumentAssembly       = "document_assembly"
)

// Issue represents a single authoring error.
type Issue struct {
	Path    string // Location in the declaration space (for example: /paths/~1pets/get).
	Code    string // One of the codes listed above.
	Message string
	Hint    string // Optional: remediation hints.
	Cause   error  // Optional: underlying error.
	// Params carries structured parameters (e.g., {"status":"600"})
	// for i18n and observability.
	Params map[string]any
}

// Issues is a collection of authoring errors that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. invalid_status_code at /paths/~1pets/get
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// HasCode reports whether err carries at least one Issue with the given code.
func HasCode(err error, code string) bool {
	iss, ok := AsIssues(err)
	if !ok {
		return false
	}
	for _, it := range iss {
		if it.Code == code {
			return true
		}
	}
	return false
}
