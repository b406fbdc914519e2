package subsonic

import "fmt"

// Kind classifies what went wrong during an API call.
type Kind int

const (
	// ErrNetwork covers transport failures: DNS, refused connections, timeouts.
	ErrNetwork Kind = iota + 1
	// ErrHTTPStatus means the server answered with a non-2xx status.
	ErrHTTPStatus
	// ErrDecode means the response body was not the expected JSON shape.
	ErrDecode
	// ErrServer means the envelope carried status "failed" with an error code.
	ErrServer
)

// Error is the error type returned by every Client operation.
type Error struct {
	Kind     Kind
	Endpoint string
	Status   int    // HTTP status, set for ErrHTTPStatus
	Code     int    // Subsonic error code, set for ErrServer
	Message  string // server-provided message, set for ErrServer
	cause    error
}

func (e *Error) Error() string {
	switch e.Kind {
	case ErrNetwork:
		return fmt.Sprintf("%s: request failed: %v", e.Endpoint, e.cause)
	case ErrHTTPStatus:
		return fmt.Sprintf("%s: unexpected status %d", e.Endpoint, e.Status)
	case ErrDecode:
		return fmt.Sprintf("%s: decode response: %v", e.Endpoint, e.cause)
	case ErrServer:
		return fmt.Sprintf("%s: server error %d: %s", e.Endpoint, e.Code, e.Message)
	}
	return fmt.Sprintf("%s: unknown error", e.Endpoint)
}

func (e *Error) Unwrap() error { return e.cause }

func networkErr(endpoint string, cause error) *Error {
	return &Error{Kind: ErrNetwork, Endpoint: endpoint, cause: cause}
}

func statusErr(endpoint string, status int) *Error {
	return &Error{Kind: ErrHTTPStatus, Endpoint: endpoint, Status: status}
}

func decodeErr(endpoint string, cause error) *Error {
	return &Error{Kind: ErrDecode, Endpoint: endpoint, cause: cause}
}

func serverErr(endpoint string, code int, message string) *Error {
	return &Error{Kind: ErrServer, Endpoint: endpoint, Code: code, Message: message}
}
