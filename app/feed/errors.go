package feed

import (
	"fmt"
)

// MissingFieldError reports a required metadata field that is absent, naming
// the field and the entity (channel or episode index) it belongs to. It
// aborts the build; optional fields never produce it.
type MissingFieldError struct {
	Field  string
	Entity string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("required field %q missing on %s", e.Field, e.Entity)
}
