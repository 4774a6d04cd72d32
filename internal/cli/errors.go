package cli

// ArgumentError reports bad command-line input or configuration.
type ArgumentError struct {
	Err error
}

func (e *ArgumentError) Error() string {
	return e.Err.Error()
}

func (e *ArgumentError) Unwrap() error {
	return e.Err
}
