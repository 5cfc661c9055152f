package services

import "errors"

// Boundary rejection errors. The engine itself never fails; these guard the
// service entry points so invalid requests are rejected before any mutation.
var (
	// ErrCapabilityMismatch rejects an assignment for a department the
	// employee holds no capability in
	ErrCapabilityMismatch = errors.New("employee not capable for section")

	// ErrLeaveOverride reports that approved leave forced the time-off
	// value instead of the requested one
	ErrLeaveOverride = errors.New("approved time off overrides assignment")

	// ErrInvariantViolation rejects malformed input: unknown records,
	// malformed dates, dates outside the materialized horizon
	ErrInvariantViolation = errors.New("invalid scheduling request")
)
