package riot

import (
	"fmt"

	"github.com/osse101/RiftStats_Go/internal/domain"
)

// APIError is a non-2xx response from the Riot API
type APIError struct {
	StatusCode int
	Message    string
	Body       string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf(ErrMsgStatusTemplate+": %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf(ErrMsgStatusTemplate, e.StatusCode)
}

// Is lets errors.Is(err, domain.ErrUpstream) match
func (e *APIError) Is(target error) bool {
	return target == domain.ErrUpstream
}
