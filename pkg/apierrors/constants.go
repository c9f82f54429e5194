package apierrors

const (
	MsgTaskNotFound  = "taskNotFound"
	MsgInvalidTaskID = "invalidTaskID"
	MsgUnauthorized  = "unauthorized"
	MsgInternalError = "internalServerError"
)
