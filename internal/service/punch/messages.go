package punch

import (
	"errors"

	"github.com/mdarwaz0786/ems-attendance-client/internal/domain/attendance"
	"github.com/mdarwaz0786/ems-attendance-client/internal/pkg/location"
)

// UserMessage resolves any punch-attempt error into the one message
// shown to the employee. Write failures keep the server's wording.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, attendance.ErrAlreadyMarked):
		return "Attendance already marked for today."
	case errors.Is(err, attendance.ErrInvalidTransition):
		return "This punch action is not valid right now."
	case errors.Is(err, location.ErrPermissionDenied):
		return "Location permission is required. Enable location access and try again."
	case errors.Is(err, location.ErrUnavailable), errors.Is(err, location.ErrStaleFix):
		return "Failed to retrieve your current location. Try again."
	case errors.Is(err, ErrOutsideGeofence):
		return "Attendance can only be marked in office."
	case errors.Is(err, attendance.ErrWriteFailed):
		return err.Error()
	default:
		return "Something went wrong while marking attendance. Try again."
	}
}
