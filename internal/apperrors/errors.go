package apperrors

import "fmt"

// PreconditionFailed reports an input that is structurally valid but not
// permitted in the current narrowing context. The message names the allowed
// set so callers can surface it verbatim.
type PreconditionFailed struct {
	Message string
}

func (e *PreconditionFailed) Error() string {
	return "precondition failed: " + e.Message
}

// InvalidRequestData reports request content that cannot be accepted, either
// because it does not parse or because policy forbids it.
type InvalidRequestData struct {
	Message string
}

func (e *InvalidRequestData) Error() string {
	return "invalid request data: " + e.Message
}

// IncorrectValueProvided reports a value outside the vocabulary expected for
// the named field.
type IncorrectValueProvided struct {
	FieldName string
}

func (e *IncorrectValueProvided) Error() string {
	return fmt.Sprintf("incorrect value provided for field %q", e.FieldName)
}

// InvalidValue reports a recognized value that is unusable in the requested
// role, such as a connector that cannot be routed to.
type InvalidValue struct {
	Message string
}

func (e *InvalidValue) Error() string {
	return "invalid value: " + e.Message
}

// Internal wraps unexpected failures from supporting infrastructure so
// callers can tell them apart from validation results.
type Internal struct {
	Err error
}

func (e *Internal) Error() string {
	return "internal error: " + e.Err.Error()
}

func (e *Internal) Unwrap() error {
	return e.Err
}
