package jiraerror

import "fmt"

// InvalidInstanceError reports that a value passed where a Jira client
// instance was required has the wrong type.
type InvalidInstanceError struct {
	// TypeName is the dynamic type of the offending value.
	TypeName string
}

// NewInvalidInstanceError creates an InvalidInstanceError for the given value
func NewInvalidInstanceError(instance any) *InvalidInstanceError {
	return &InvalidInstanceError{TypeName: fmt.Sprintf("%T", instance)}
}

// Error implements the error interface
func (e *InvalidInstanceError) Error() string {
	return fmt.Sprintf("the first argument of this function must be a Jira client instance, got %s", e.TypeName)
}
