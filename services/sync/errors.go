package sync

import (
	"errors"
	"fmt"
	"net/http"

	"smartslot/client"
)

// Validation failures rejected before any network call.
var (
	ErrNoDatesSelected = fmt.Errorf("no dates selected")
	ErrSubmitInFlight  = fmt.Errorf("a submission is already in progress")
)

// userMessage maps a failure to the user-facing cause per the error
// taxonomy: transport errors become "unable to connect", backend statuses
// map to specific causes, and backend-supplied messages pass through
// verbatim elsewhere.
func userMessage(err error) string {
	if errors.Is(err, client.ErrUnreachable) {
		return "Unable to connect to the booking service. Please try again."
	}
	var statusErr *client.StatusError
	if errors.As(err, &statusErr) {
		switch {
		case statusErr.Code == http.StatusNotFound:
			return "The requested date was not found."
		case statusErr.Code == http.StatusForbidden:
			return "You are not allowed to perform this action."
		case statusErr.Code == http.StatusConflict:
			return "This date has existing bookings and cannot be changed."
		case statusErr.Code >= 500:
			return "The booking service hit an internal error. Please try again later."
		}
	}
	return "Something went wrong. Please try again."
}
