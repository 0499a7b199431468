package errors

import "net/http"

var ErrInvalidJSON = &Exception{
	Message:    "invalid JSON payload",
	StatusCode: http.StatusBadRequest,
}

var ErrTaskIDsRequired = &Exception{
	Message:    "taskIds must not be empty",
	StatusCode: http.StatusBadRequest,
}

var ErrInvalidTaskID = &Exception{
	Message:    "task id must be a positive integer",
	StatusCode: http.StatusBadRequest,
}

var ErrTitleRequired = &Exception{
	Message:    "title is required",
	StatusCode: http.StatusBadRequest,
}
