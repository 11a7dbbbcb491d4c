package utils

import "errors"

var (
	ErrorRecordNotFound = errors.New("record not found")

	// ErrorNotDeletable guards the built-in alert rules.
	ErrorNotDeletable = errors.New("built-in rules cannot be deleted")

	ErrorAlreadySent    = errors.New("reminder has already been sent")
	ErrorAlreadyHandled = errors.New("reminder has been cancelled")
	ErrorInvalidStatus  = errors.New("operation not allowed in current status")
)
