package apperrors

import "errors"

var (
	ErrInvalidRequest    = errors.New("invalid request")
	ErrUserNotFound      = errors.New("user not found")
	ErrInternalServer    = errors.New("internal server error")
	ErrInvalidAuthHeader = errors.New("invalid or missing Authorization header")
	ErrInvalidToken      = errors.New("invalid or expired token")
	ErrInvalidInitData   = errors.New("invalid telegram init data")

	ErrTaskNotFound       = errors.New("task not found")
	ErrAssignmentNotFound = errors.New("task assignment not found")
	ErrForbidden          = errors.New("no access to this resource")
	ErrInvalidTaskType    = errors.New("invalid task type")
	ErrNoTasksAvailable   = errors.New("no tasks available")
	ErrTaskNotAvailable   = errors.New("task is no longer available")
	ErrTaskLimitExceeded  = errors.New("active task limit exceeded")
	ErrInvalidStatus      = errors.New("operation is not allowed in current status")

	ErrScreenshotNotFound      = errors.New("screenshot not found")
	ErrScreenshotRequired      = errors.New("at least one screenshot is required")
	ErrScreenshotLimitExceeded = errors.New("screenshot limit exceeded")
	ErrInvalidFileType         = errors.New("invalid file type")
	ErrFileTooLarge            = errors.New("file too large")

	ErrInvalidPhoneNumber       = errors.New("invalid phone number format")
	ErrInvalidWithdrawalMethod  = errors.New("unknown withdrawal method")
	ErrInvalidWithdrawalDetails = errors.New("invalid withdrawal details")
	ErrInvalidWithdrawalAmount  = errors.New("invalid withdrawal amount")
	ErrBelowMinWithdrawal       = errors.New("withdrawal amount below minimum")
	ErrTooManyPending           = errors.New("too many pending withdrawals")
	ErrInsufficientBalance      = errors.New("insufficient balance")
	ErrWithdrawalNotFound       = errors.New("withdrawal not found")
)
