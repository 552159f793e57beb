package ports

import (
	"context"

	"github.com/sufield/sessionify/internal/config"
)

// SessionSubmitter registers policy documents with the remote configuration service.
//
// Error Contract:
// - PostSession returns *domain.SubmissionError (matches domain.ErrSubmission) when
//   the service answers with a non-success status; the error text is the reply body
// - PostSession returns a wrapped transport error when no reply was received
type SessionSubmitter interface {
	// PostSession submits one serialized policy document.
	PostSession(ctx context.Context, document []byte) error

	// Close releases the connections held by the submitter.
	Close() error
}

// SubmitterFactory builds a SessionSubmitter from the local trust configuration.
//
// Error Contract:
// - Returns domain.ErrConfiguration if the default trust anchor cannot be resolved
// - Returns domain.ErrParse if the anchor chain is not valid PEM
// - Returns domain.ErrInvalidIdentity if the identity does not split into key and certificate
// - Returns domain.ErrTransportSetup if the TLS client cannot be built
type SubmitterFactory func(cfg *config.TrustConfig) (SessionSubmitter, error)

// RandomSource supplies the random suffixes of generated policy names.
type RandomSource interface {
	Uint32() uint32
}

// ProcessLauncher replaces the current process with the target command.
//
// Error Contract:
// - Exec returns domain.ErrExec if the command cannot be resolved or started.
//   On success Exec does not return.
type ProcessLauncher interface {
	Exec(args []string, env map[string]string, configID string) error
}
