package services

// ValidationError reports input rejected by a service-level check, as opposed
// to a storage failure. The handler layer turns it into a 400 response.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func errValidation(msg string) error {
	return &ValidationError{Msg: msg}
}
