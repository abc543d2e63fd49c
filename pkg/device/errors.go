package device

import "errors"

var (
	// ErrTimeout indicates a camera did not answer within the request timeout
	ErrTimeout = errors.New("camera request timed out")

	// ErrUnreachable indicates the camera could not be contacted
	ErrUnreachable = errors.New("camera unreachable")

	// ErrHTTPStatus indicates the camera answered with a non-2xx status
	ErrHTTPStatus = errors.New("unexpected HTTP status")

	// ErrNotCamera indicates the address answered but not with the camera protocol
	ErrNotCamera = errors.New("not a camera")

	// ErrInvalidAddress indicates a malformed camera address
	ErrInvalidAddress = errors.New("invalid camera address")

	// ErrValidation indicates a parameter payload failed schema validation
	ErrValidation = errors.New("validation error")
)
