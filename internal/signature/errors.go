package signature

import "fmt"

// PayloadError reports a request body that is not a flat JSON object
type PayloadError struct {
	Field   string
	Message string
}

func (e PayloadError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid payload field %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("invalid payload: %s", e.Message)
}
