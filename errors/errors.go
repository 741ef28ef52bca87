package errors

import "fmt"

var (
	ErrNotAuthenticated = fmt.Errorf("no active session")
	ErrInvalidArgument  = fmt.Errorf("invalid argument")
	ErrNotFound         = fmt.Errorf("not found")
)
