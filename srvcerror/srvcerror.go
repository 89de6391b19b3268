package srvcerror

type Error struct {
	errorCode string
	msgToUser string // public
	dbgInfoErr error // private, for debugging

	httpStatus int // optional, status code the remote service answered with
}

func (e *Error) Error() string {
	return e.msgToUser
}

func (e *Error) ErrorCode() string {
	return e.errorCode
}

func (e *Error) DebugInfo() error {
	return e.dbgInfoErr
}

func (e *Error) SetDebug(err error) *Error {
	e.dbgInfoErr = err
	return e
}

// HttpStatusCode returns the status code received from the remote
// service, or 0 if the failure happened before any response arrived.
func (e *Error) HttpStatusCode() int {
	return e.httpStatus
}

func (e *Error) SetHttpStatusCode(code int) *Error {
	e.httpStatus = code
	return e
}

func New(errorCode string, msgToUser string) *Error {
	return &Error{
		errorCode: errorCode,
		msgToUser: msgToUser,
	}
}
