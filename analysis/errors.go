package analysis

// ValidationError reports caller-supplied input that violates a
// precondition, such as empty resume text or an empty answer.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}
