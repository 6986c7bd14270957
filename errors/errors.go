package errors

import "fmt"

var (
	ErrInvalidToken   = fmt.Errorf("invalid or expired token")
	ErrMissingBearer  = fmt.Errorf("authorization token is missing")
	ErrForbidden      = fmt.Errorf("insufficient role")
	ErrEmptyGenerated = fmt.Errorf("the model returned no fortune")
)
