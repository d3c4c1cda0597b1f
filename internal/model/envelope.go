package model

// Envelope is the universal wrapper around every platform API response.
type Envelope[T any] struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    T      `json:"data"`
}

const (
	EnvelopeSuccess = "success"
	EnvelopeError   = "error"
)

// ErrorResponse is the structured error payload carried in an envelope's
// data field on domain failures. The platform spells the human-readable
// text as errorMessage in most places and message in a few; both are kept.
type ErrorResponse struct {
	ErrorCode    string `json:"errorCode"`
	ErrorMessage string `json:"errorMessage"`
	Message      string `json:"message"`
	Timestamp    string `json:"timestamp"`
}

// Detail returns the human-readable error text, whichever spelling the
// platform used.
func (e ErrorResponse) Detail() string {
	if e.ErrorMessage != "" {
		return e.ErrorMessage
	}
	return e.Message
}

// WellFormed reports whether the payload actually looks like a platform
// error: the shape check that gates trusting data as an ErrorResponse.
func (e ErrorResponse) WellFormed() bool {
	return e.ErrorCode != "" && e.Detail() != "" && e.Timestamp != ""
}
