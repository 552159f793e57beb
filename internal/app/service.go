package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sufield/sessionify/internal/config"
	"github.com/sufield/sessionify/internal/debug"
	"github.com/sufield/sessionify/internal/domain"
	"github.com/sufield/sessionify/internal/ports"
)

// SessionService registers a namespace and a session for one command with the
// remote configuration service.
//
// Pure orchestration: the transport is reached through the injected
// ports.SubmitterFactory.
type SessionService struct {
	factory   ports.SubmitterFactory
	component string
	random    ports.RandomSource
	logger    *slog.Logger
	names     *NameGenerator
}

// Option configures a SessionService.
type Option func(*SessionService)

// WithComponent sets the component name embedded in namespace names.
func WithComponent(component string) Option {
	return func(s *SessionService) {
		if component != "" {
			s.component = component
		}
	}
}

// WithRandomSource sets the randomness used for policy names.
func WithRandomSource(random ports.RandomSource) Option {
	return func(s *SessionService) {
		s.random = random
	}
}

// WithLogger sets the logger. By default logs are discarded.
func WithLogger(logger *slog.Logger) Option {
	return func(s *SessionService) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewSessionService creates a service submitting through submitters built by factory.
func NewSessionService(factory ports.SubmitterFactory, opts ...Option) (*SessionService, error) {
	if factory == nil {
		return nil, fmt.Errorf("%w: submitter factory is required", domain.ErrTransportSetup)
	}

	s := &SessionService{
		factory:   factory,
		component: DefaultComponent,
		logger:    debug.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.names = NewNameGenerator(s.component, s.random)
	return s, nil
}

// SessionRequest holds the inputs of one generated session.
type SessionRequest struct {
	// CreatorPEM is the certificate recorded as the creator of the session.
	CreatorPEM  string
	Command     []string
	Environment map[string]string
	Attestation domain.AttestationMode
}

// Plan is the pair of documents registered for one request.
type Plan struct {
	Namespace domain.NamespaceSession
	Session   domain.Session
}

// ConfigID returns the reference handed to the launched process.
func (p Plan) ConfigID() string {
	return p.Session.ConfigID()
}

// RenderedPlan is a Plan serialized for submission.
type RenderedPlan struct {
	ConfigID  string
	Namespace []byte
	Session   []byte
}

// Plan draws fresh names and builds both documents. Nothing is submitted.
func (s *SessionService) Plan(req SessionRequest) Plan {
	namespace := s.names.Namespace()
	session := s.names.Session()

	return Plan{
		Namespace: domain.NewNamespaceSession(namespace),
		Session: domain.NewSession(domain.SessionParams{
			Namespace:   namespace,
			Name:        session,
			Command:     req.Command,
			Environment: req.Environment,
			CreatorPEM:  req.CreatorPEM,
			Attestation: req.Attestation,
		}),
	}
}

// RenderSession builds and serializes both documents without submitting them.
func (s *SessionService) RenderSession(req SessionRequest) (*RenderedPlan, error) {
	return render(s.Plan(req))
}

// CreateSessionForExec registers a namespace, then a session running command
// with env under it, and returns "<namespace>/<session>/<service>".
//
// The session is only submitted after the namespace was accepted. A rejected
// session leaves the namespace registered; nothing is rolled back. Errors from
// the remote service are returned unchanged (*domain.SubmissionError).
func (s *SessionService) CreateSessionForExec(ctx context.Context, cfg *config.TrustConfig, creatorPEM string, command []string, env map[string]string) (string, error) {
	submitter, err := s.factory(cfg)
	if err != nil {
		return "", err
	}
	defer func() { _ = submitter.Close() }()

	rendered, err := s.RenderSession(SessionRequest{
		CreatorPEM:  creatorPEM,
		Command:     command,
		Environment: env,
		Attestation: domain.AttestationNone,
	})
	if err != nil {
		return "", err
	}

	if err := submitter.PostSession(ctx, rendered.Namespace); err != nil {
		s.logger.DebugContext(ctx, "namespace rejected", "error", err)
		return "", err
	}
	s.logger.DebugContext(ctx, "namespace registered")

	if err := submitter.PostSession(ctx, rendered.Session); err != nil {
		s.logger.DebugContext(ctx, "session rejected", "config_id", rendered.ConfigID, "error", err)
		return "", err
	}
	s.logger.DebugContext(ctx, "session registered", "config_id", rendered.ConfigID)

	return rendered.ConfigID, nil
}

func render(plan Plan) (*RenderedPlan, error) {
	namespace, err := Marshal(plan.Namespace)
	if err != nil {
		return nil, err
	}
	session, err := Marshal(plan.Session)
	if err != nil {
		return nil, err
	}
	return &RenderedPlan{
		ConfigID:  plan.ConfigID(),
		Namespace: namespace,
		Session:   session,
	}, nil
}

var _ ports.SessionCreator = (*SessionService)(nil)
