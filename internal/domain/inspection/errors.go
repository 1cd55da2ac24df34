package inspection

import "fmt"

// ValidationError carries every broken scheduling rule for one candidate
// slot. It is client-caused and recoverable; callers render the full list.
type ValidationError struct {
	Violations []Violation
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("inspection validation failed (%d violations)", len(e.Violations))
}

func NewValidationError(violations []Violation) *ValidationError {
	return &ValidationError{Violations: violations}
}
