package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"cyberdeck/internal/modules/launcher/domain"
	launcherout "cyberdeck/internal/modules/launcher/port/out"
	"cyberdeck/internal/platform/clock"
	apperrors "cyberdeck/internal/platform/errors"
)

type handler func(ctx context.Context, cmd domain.Command) domain.Feedback

// InterpreterService owns the application registry and dispatches parsed
// command lines. reset is the only verb that replaces the registry.
type InterpreterService struct {
	directory launcherout.Directory
	launcher  launcherout.Launcher
	battery   launcherout.BatterySource
	clock     clock.Clock
	logger    *zap.Logger

	pinned     domain.PinnedList
	searchFull bool
	handlers   map[domain.Verb]handler

	mu         sync.RWMutex
	all        domain.Registry
	pinnedView domain.Registry
}

type Option func(*InterpreterService)

func WithPinned(ids []string) Option {
	return func(s *InterpreterService) {
		s.pinned = domain.NewPinnedList(ids)
	}
}

// WithSearchFullDirectory selects which registry open and list search. When
// false only the resolved pinned view is used.
func WithSearchFullDirectory(enabled bool) Option {
	return func(s *InterpreterService) {
		s.searchFull = enabled
	}
}

func WithClock(clk clock.Clock) Option {
	return func(s *InterpreterService) {
		if clk != nil {
			s.clock = clk
		}
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(s *InterpreterService) {
		if logger != nil {
			s.logger = logger
		}
	}
}

func NewInterpreterService(directory launcherout.Directory, launcher launcherout.Launcher, battery launcherout.BatterySource, opts ...Option) *InterpreterService {
	s := &InterpreterService{
		directory:  directory,
		launcher:   launcher,
		battery:    battery,
		clock:      clock.SystemClock{},
		logger:     zap.NewNop(),
		searchFull: true,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.handlers = map[domain.Verb]handler{
		domain.VerbHelp:    s.help,
		domain.VerbOpen:    s.open,
		domain.VerbList:    s.list,
		domain.VerbReset:   s.reset,
		domain.VerbExit:    s.exit,
		domain.VerbTime:    s.time,
		domain.VerbBattery: s.batteryLine,
	}
	return s
}

// Load enumerates the directory and resolves the pinned view. On failure the
// previous registry stays in place.
func (s *InterpreterService) Load(ctx context.Context) error {
	if s.directory == nil {
		return fmt.Errorf("application directory is not configured")
	}
	all, err := s.directory.EnumerateAll(ctx)
	if err != nil {
		return fmt.Errorf("enumerate applications: %w", err)
	}
	pinned := s.resolvePinned(ctx)

	s.mu.Lock()
	s.all = domain.NewRegistry(all)
	s.pinnedView = domain.NewRegistry(pinned)
	s.mu.Unlock()

	s.logger.Debug("registry loaded", zap.Int("apps", len(all)), zap.Int("pinned", len(pinned)))
	return nil
}

func (s *InterpreterService) resolvePinned(ctx context.Context) []domain.Application {
	ids := s.pinned.IDs()
	out := make([]domain.Application, 0, len(ids))
	for _, id := range ids {
		app, err := s.directory.Resolve(ctx, id)
		if err != nil {
			s.logger.Debug("pinned application skipped", zap.String("id", id), zap.Error(err))
			continue
		}
		out = append(out, app)
	}
	return out
}

// Views returns the pinned and full registries in display order.
func (s *InterpreterService) Views() (pinned, all []domain.Application) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.pinnedView.List(), s.all.List()
}

// Submit parses and dispatches one line. User-facing failures are reported
// in the feedback; the error return is reserved for missing collaborators.
func (s *InterpreterService) Submit(ctx context.Context, line string) (domain.Feedback, error) {
	cmd, ok := domain.ParseCommand(line)
	if !ok {
		return domain.Feedback{}, nil
	}
	if s.directory == nil || s.launcher == nil {
		return domain.Feedback{}, fmt.Errorf("interpreter is not wired")
	}
	verb, known := domain.LookupVerb(cmd.Verb)
	if !known {
		s.logger.Debug("unknown command", zap.String("verb", cmd.Verb))
		return domain.Failure(domain.Verb(cmd.Verb), domain.UnknownCommandMessage(cmd.Verb)), nil
	}
	s.logger.Debug("dispatch", zap.String("verb", string(verb)), zap.String("argument", cmd.Argument))
	return s.handlers[verb](ctx, cmd), nil
}

// Launch starts the registry entry with the given id, as when an entry is
// picked from one of the lists.
func (s *InterpreterService) Launch(ctx context.Context, id string) (domain.Feedback, error) {
	if s.launcher == nil {
		return domain.Feedback{}, fmt.Errorf("launcher is not configured")
	}
	s.mu.RLock()
	app, ok := s.all.ByID(id)
	if !ok {
		app, ok = s.pinnedView.ByID(id)
	}
	s.mu.RUnlock()
	if !ok {
		return domain.Failure(domain.VerbOpen, domain.NotFoundMessage(id)), nil
	}
	return s.start(ctx, app), nil
}

func (s *InterpreterService) searchable() domain.Registry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.searchFull {
		return s.all
	}
	return s.pinnedView
}

func (s *InterpreterService) help(context.Context, domain.Command) domain.Feedback {
	fb := domain.Info(domain.VerbHelp, domain.HelpText)
	fb.Kind = domain.FeedbackHelp
	return fb
}

func (s *InterpreterService) open(ctx context.Context, cmd domain.Command) domain.Feedback {
	if cmd.Argument == "" {
		return domain.Failure(domain.VerbOpen, domain.MsgOpenUsage)
	}
	app, ok := s.searchable().FindFirst(cmd.Argument)
	if !ok {
		return domain.Failure(domain.VerbOpen, domain.NotFoundMessage(cmd.Argument))
	}
	return s.start(ctx, app)
}

func (s *InterpreterService) start(ctx context.Context, app domain.Application) domain.Feedback {
	if err := s.launcher.Launch(ctx, app.ID); err != nil {
		fields := []zap.Field{zap.String("id", app.ID), zap.Error(err)}
		if errors.Is(err, apperrors.ErrNoLaunchTarget) {
			s.logger.Warn("no launch target", fields...)
		} else {
			s.logger.Warn("launch failed", fields...)
		}
		return domain.Failure(domain.VerbOpen, domain.MsgLaunchFailed)
	}
	fb := domain.Info(domain.VerbOpen, domain.LaunchedMessage(app.Name))
	launched := app
	fb.Launched = &launched
	return fb
}

func (s *InterpreterService) list(context.Context, domain.Command) domain.Feedback {
	fb := domain.Info(domain.VerbList, domain.FormatListing(s.searchable().List()))
	fb.Kind = domain.FeedbackListing
	return fb
}

func (s *InterpreterService) reset(ctx context.Context, _ domain.Command) domain.Feedback {
	if err := s.Load(ctx); err != nil {
		s.logger.Warn("reset failed", zap.Error(err))
		return domain.Failure(domain.VerbReset, "Reset failed: "+err.Error())
	}
	fb := domain.Info(domain.VerbReset, domain.MsgReset)
	fb.RegistryRebuilt = true
	return fb
}

func (s *InterpreterService) exit(context.Context, domain.Command) domain.Feedback {
	fb := domain.Info(domain.VerbExit, "")
	fb.Dismiss = true
	return fb
}

func (s *InterpreterService) time(context.Context, domain.Command) domain.Feedback {
	return domain.Info(domain.VerbTime, s.clock.Now().Format(clock.TimeLayout))
}

func (s *InterpreterService) batteryLine(ctx context.Context, _ domain.Command) domain.Feedback {
	if s.battery == nil {
		return domain.Info(domain.VerbBattery, "Battery: [N/A]")
	}
	line, err := s.battery.LastBattery(ctx)
	if err != nil || line == "" {
		return domain.Info(domain.VerbBattery, "Battery: [N/A]")
	}
	return domain.Info(domain.VerbBattery, line)
}
