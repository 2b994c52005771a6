package ownable

import "fmt"

// KindUnauthorized classifies UnauthorizedError.
const KindUnauthorized = "unauthorized"

// UnauthorizedError is returned when a caller lacks the owner privilege.
type UnauthorizedError struct {
	Caller string
	Owner  string
}

// NewUnauthorizedError reports that caller is not owner.
func NewUnauthorizedError(caller string, owner string) error {
	return UnauthorizedError{Caller: caller, Owner: owner}
}

func (errorValue UnauthorizedError) Error() string {
	return fmt.Sprintf("caller %s is not the owner", errorValue.Caller)
}

func (UnauthorizedError) Kind() string {
	return KindUnauthorized
}
