package servererrors

// ServerError carries an http status code alongside the error message so the
// central error handler in handlerutils can map it to a response without the
// individual handlers knowing about transport details.
type ServerError struct {
	StatusCode int
	Message    string
	Errors     any
}

func New(statusCode int, message string, errs any) *ServerError {
	return &ServerError{
		StatusCode: statusCode,
		Message:    message,
		Errors:     errs,
	}
}

func (e *ServerError) Error() string {
	return e.Message
}
