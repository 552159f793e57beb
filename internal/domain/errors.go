package domain

import (
	"errors"
)

// Sentinel errors for the failure classes of one execution request.
// Use with errors.Is() for checking and fmt.Errorf("%w", ...) for wrapping with context.
// All of them are fatal for the current request; nothing retries internally.

var (
	// ErrConfiguration indicates the trust configuration file is missing, unreadable or
	// malformed, or that it references a trust anchor absent from the database.
	ErrConfiguration = errors.New("invalid trust configuration")

	// ErrInvalidIdentity indicates the identity blob does not decompose into a
	// private key followed by a certificate.
	ErrInvalidIdentity = errors.New("invalid identity format")

	// ErrParse indicates a certificate chain bundle is not valid PEM.
	ErrParse = errors.New("cannot parse certificate chain")

	// ErrTransportSetup indicates the mTLS channel could not be built from the
	// identity and chain material.
	ErrTransportSetup = errors.New("cannot set up transport")

	// ErrSubmission indicates the remote service rejected a policy document.
	ErrSubmission = errors.New("policy submission rejected")

	// ErrExec indicates the target process could not be launched.
	ErrExec = errors.New("failed to exec child")
)

// SubmissionError carries the remote service's reply for a rejected document.
// The response body is the primary diagnostic, so Error returns it verbatim.
type SubmissionError struct {
	StatusCode int
	Body       string
}

func (e *SubmissionError) Error() string {
	return e.Body
}

// Is reports ErrSubmission as a match so callers can test the class without a type assertion.
func (e *SubmissionError) Is(target error) bool {
	return target == ErrSubmission
}
