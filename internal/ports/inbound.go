package ports

import (
	"context"

	"github.com/sufield/sessionify/internal/config"
)

// SessionCreator is the application use case driven by the library entry point
// and the CLI: register a namespace and a session for one command, and return
// the configuration id handed to the launched process.
type SessionCreator interface {
	CreateSessionForExec(ctx context.Context, cfg *config.TrustConfig, creatorPEM string, command []string, env map[string]string) (string, error)
}
