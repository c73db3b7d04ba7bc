package executor

import "errors"

// GraphQLError represents an error that occurred during execution
type GraphQLError struct {
	Message    string         `json:"message"`
	Path       Path           `json:"path,omitempty"`
	Extensions map[string]any `json:"extensions,omitempty"`
}

func (e GraphQLError) Error() string {
	return e.Message
}

// ExecutionResult represents the result of executing a GraphQL query
type ExecutionResult struct {
	Data   any            `json:"data"`
	Errors []GraphQLError `json:"errors,omitempty"`
}

// CodedError carries a machine-readable failure code alongside a resolver
// error. The executor copies the code into the GraphQL error's
// extensions, letting transports map failure kinds (e.g. NOT_FOUND) to
// their own conventions.
type CodedError struct {
	Code string
	Err  error
}

func (e *CodedError) Error() string { return e.Err.Error() }
func (e *CodedError) Unwrap() error { return e.Err }

// WithCode wraps err with the given extensions code.
func WithCode(err error, code string) error {
	return &CodedError{Code: code, Err: err}
}

// locatedError converts a resolver error into a GraphQL error at path.
func locatedError(err error, path Path) GraphQLError {
	ge := GraphQLError{Message: err.Error(), Path: path}
	var ce *CodedError
	if errors.As(err, &ce) {
		ge.Extensions = map[string]any{"code": ce.Code}
	}
	return ge
}
