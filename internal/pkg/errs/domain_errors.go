package errs

import "errors"

// Cross-layer markers. Domain packages mark their own sentinels with these so
// the transport layer can classify without importing every domain package.
var (
	// Input rejected by a domain constructor or value object
	ErrDomainValidation = errors.New("domain validation error")

	// Operation failed in the storage layer
	ErrDatabaseOperationFailed = errors.New("database operation failed")

	// Stored data could not be turned back into a domain object
	ErrDataIntegrity = errors.New("stored data is corrupt")
)

// Validation marks err as a domain validation failure.
func Validation(msg string) error {
	return Mark(New(msg), ErrDomainValidation)
}
