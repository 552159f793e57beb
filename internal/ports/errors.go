package ports

import "errors"

// Infrastructure errors for the adapter layer.
//
// These represent adapter concerns and are kept apart from the domain errors,
// which describe configuration and policy failures.

// ErrSubmitterClosed indicates a submission was attempted on a closed submitter.
var ErrSubmitterClosed = errors.New("submitter closed")
