package leave

import "errors"

var (
	ErrApplyFailed     = errors.New("failed to submit leave request")
	ErrRequestNotFound = errors.New("leave request not found")
)
