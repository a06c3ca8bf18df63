package handler

// ErrorResponse is the generic error body returned to callers. The original
// error only goes to the operator console.
type ErrorResponse struct {
	Error string `json:"error"`
}

// FailureResponse is the error body for endpoints that report a success flag.
type FailureResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}
