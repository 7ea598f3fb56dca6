package out

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"go.uber.org/zap"

	launcherout "cyberdeck/internal/modules/launcher/port/out"
	apperrors "cyberdeck/internal/platform/errors"
)

// EntrySource resolves launch details for a desktop-file id.
type EntrySource interface {
	Entry(ctx context.Context, id string) (DesktopEntry, error)
}

// StartFunc starts argv in dir without waiting for it to exit.
type StartFunc func(argv []string, dir string) error

type ExecLauncher struct {
	entries  EntrySource
	terminal string
	start    StartFunc
	logger   *zap.Logger
}

type ExecOption func(*ExecLauncher)

func WithStartFunc(start StartFunc) ExecOption {
	return func(l *ExecLauncher) {
		if start != nil {
			l.start = start
		}
	}
}

func WithExecLogger(logger *zap.Logger) ExecOption {
	return func(l *ExecLauncher) {
		if logger != nil {
			l.logger = logger
		}
	}
}

func NewExecLauncher(entries EntrySource, terminal string, opts ...ExecOption) launcherout.Launcher {
	l := &ExecLauncher{entries: entries, terminal: terminal, logger: zap.NewNop()}
	l.start = l.startDetached
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *ExecLauncher) Launch(ctx context.Context, id string) error {
	entry, err := l.entries.Entry(ctx, id)
	if err != nil {
		return err
	}
	argv, err := ExpandExec(entry.Exec)
	if err != nil {
		return fmt.Errorf("%s: %v: %w", id, err, apperrors.ErrNoLaunchTarget)
	}
	if entry.Terminal {
		if l.terminal == "" {
			return fmt.Errorf("%s needs a terminal: %w", id, apperrors.ErrNoLaunchTarget)
		}
		argv = append([]string{l.terminal, "-e"}, argv...)
	}
	if err := l.start(argv, entry.Path); err != nil {
		return fmt.Errorf("start %s: %w", id, err)
	}
	l.logger.Debug("launched", zap.String("id", id), zap.Strings("argv", argv))
	return nil
}

// startDetached leaves the child running past ctx and reaps it in the
// background.
func (l *ExecLauncher) startDetached(argv []string, dir string) error {
	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Dir = dir
	if err := cmd.Start(); err != nil {
		return err
	}
	go func() {
		if err := cmd.Wait(); err != nil {
			l.logger.Debug("launched process exited", zap.String("cmd", argv[0]), zap.Error(err))
		}
	}()
	return nil
}

// ExpandExec splits an Exec value into argv. File and URL field codes are
// dropped since nothing is opened with the app; %% becomes a literal %.
func ExpandExec(value string) ([]string, error) {
	var (
		argv    []string
		current strings.Builder
		inToken bool
		quoted  bool
	)
	flush := func() {
		if inToken {
			if arg, keep := expandFieldCodes(current.String()); keep {
				argv = append(argv, arg)
			}
		}
		current.Reset()
		inToken = false
	}
	for i := 0; i < len(value); i++ {
		c := value[i]
		switch {
		case quoted && c == '\\' && i+1 < len(value) && strings.IndexByte("\"`$\\", value[i+1]) >= 0:
			i++
			current.WriteByte(value[i])
		case c == '"':
			quoted = !quoted
			inToken = true
		case !quoted && (c == ' ' || c == '\t'):
			flush()
		default:
			current.WriteByte(c)
			inToken = true
		}
	}
	if quoted {
		return nil, fmt.Errorf("unterminated quote in %q", value)
	}
	flush()
	if len(argv) == 0 {
		return nil, fmt.Errorf("empty Exec line")
	}
	return argv, nil
}

// expandFieldCodes rewrites one argument. An argument that consisted only of
// a dropped field code is removed.
func expandFieldCodes(arg string) (string, bool) {
	if !strings.Contains(arg, "%") {
		return arg, true
	}
	var b strings.Builder
	dropped := false
	for i := 0; i < len(arg); i++ {
		if arg[i] != '%' || i == len(arg)-1 {
			b.WriteByte(arg[i])
			continue
		}
		i++
		if arg[i] == '%' {
			b.WriteByte('%')
			continue
		}
		dropped = true
	}
	if dropped && b.Len() == 0 {
		return "", false
	}
	return b.String(), true
}
