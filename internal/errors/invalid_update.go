package errors

import "net/http"

var ErrInvalidUpdatePayload = &Exception{
	Message:    "update must set at least one of status, priority, context, completedAt",
	StatusCode: http.StatusBadRequest,
}

var ErrInvalidStatus = &Exception{
	Message:    "status must be one of todo, in_progress, review, completed, archived",
	StatusCode: http.StatusBadRequest,
}

var ErrInvalidPriority = &Exception{
	Message:    "priority must be one of low, medium, high",
	StatusCode: http.StatusBadRequest,
}

var ErrInvalidContext = &Exception{
	Message:    "context must be one of business, personal",
	StatusCode: http.StatusBadRequest,
}
