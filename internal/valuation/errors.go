package valuation

import (
	"errors"
	"fmt"
)

// NotFoundError is returned when no player record matches the queried
// name. It carries the original query string for user-facing messaging.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("player %q not found", e.Name)
}

// IsNotFound reports whether err is a player-not-found outcome.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
