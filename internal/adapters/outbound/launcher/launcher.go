package launcher

import (
	"fmt"
	"log/slog"
	"os"
	"os/exec"

	"github.com/sufield/sessionify/internal/debug"
	"github.com/sufield/sessionify/internal/domain"
	"github.com/sufield/sessionify/internal/ports"
)

// ExecFunc replaces the current process image. syscall.Exec on unix.
type ExecFunc func(argv0 string, argv []string, envv []string) error

// Launcher replaces the current process with a command.
type Launcher struct {
	lookPath func(string) (string, error)
	exec     ExecFunc
	environ  func() []string
	logger   *slog.Logger
}

// Option configures a Launcher.
type Option func(*Launcher)

// WithLookPath sets the command resolver. Defaults to exec.LookPath.
func WithLookPath(lookPath func(string) (string, error)) Option {
	return func(l *Launcher) {
		l.lookPath = lookPath
	}
}

// WithExecFunc sets the exec implementation. Defaults to syscall.Exec.
func WithExecFunc(fn ExecFunc) Option {
	return func(l *Launcher) {
		l.exec = fn
	}
}

// WithEnviron sets the source of the inherited environment. Defaults to os.Environ.
func WithEnviron(environ func() []string) Option {
	return func(l *Launcher) {
		l.environ = environ
	}
}

// WithLogger sets the logger. By default logs are discarded.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Launcher) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// New creates a Launcher.
func New(opts ...Option) *Launcher {
	l := &Launcher{
		lookPath: exec.LookPath,
		exec:     systemExec,
		environ:  os.Environ,
		logger:   debug.Discard(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Exec runs args[0] with args in place of the current process. The child sees
// the inherited environment overlaid with env and SCONE_CONFIG_ID=configID.
//
// On success Exec does not return. Every failure wraps domain.ErrExec.
func (l *Launcher) Exec(args []string, env map[string]string, configID string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: no command given", domain.ErrExec)
	}

	path, err := l.lookPath(args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrExec, err)
	}

	overrides := make(map[string]string, len(env)+1)
	for k, v := range env {
		overrides[k] = v
	}
	overrides[ConfigIDEnv] = configID
	envv := BuildEnv(l.environ(), overrides)

	l.logger.Info("execing", "path", path, "args", args, ConfigIDEnv, configID)

	if err := l.exec(path, args, envv); err != nil {
		return fmt.Errorf("%w: %s: %w", domain.ErrExec, path, err)
	}
	return nil
}

var _ ports.ProcessLauncher = (*Launcher)(nil)
