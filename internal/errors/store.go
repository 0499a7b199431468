package errors

import "net/http"

var ErrTaskNotFound = &Exception{
	Message:    "task not found",
	StatusCode: http.StatusNotFound,
}

// ErrStoreUnavailable marks failures reaching the task store. It is returned
// wrapped around the driver error and is never retried.
var ErrStoreUnavailable = &Exception{
	Message:    "task store unavailable",
	StatusCode: http.StatusServiceUnavailable,
}
