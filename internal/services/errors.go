package services

import "errors"

// Error kinds surfaced by the services. Handlers translate these to HTTP
// status codes; anything else is treated as a storage failure.
var (
	// ErrMissingFields: a capture payload without user_id, title or company.
	ErrMissingFields = errors.New("missing required fields: user_id, title, company")
	// ErrInvalidUser: the supplied user id resolves to no account.
	ErrInvalidUser = errors.New("invalid user id")
	// ErrInvalidStatus: a status value outside the pipeline enumeration.
	ErrInvalidStatus = errors.New("invalid status")
	// ErrDuplicateJob: the user already tracks this external_id.
	ErrDuplicateJob = errors.New("job already exists for this user")
	// ErrJobNotFound: no such job for this owner.
	ErrJobNotFound = errors.New("job not found")
)
