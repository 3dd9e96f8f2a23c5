package comparison

import "errors"

// ErrMalformedPayload is returned when the evaluator response is not a JSON object.
var ErrMalformedPayload = errors.New("malformed evaluator payload")

// BackendError carries the message of an evaluator response that set its error field.
type BackendError struct {
	Message string
}

func (e *BackendError) Error() string {
	return "evaluator error: " + e.Message
}
