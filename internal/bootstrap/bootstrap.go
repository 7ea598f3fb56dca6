package bootstrap

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	launcherinadapter "cyberdeck/internal/modules/launcher/adapter/in"
	launcheroutadapter "cyberdeck/internal/modules/launcher/adapter/out"
	launcherservice "cyberdeck/internal/modules/launcher/service"
	launcherusecase "cyberdeck/internal/modules/launcher/usecase"
	statusinadapter "cyberdeck/internal/modules/status/adapter/in"
	statusoutadapter "cyberdeck/internal/modules/status/adapter/out"
	statusdto "cyberdeck/internal/modules/status/dto"
	statusin "cyberdeck/internal/modules/status/port/in"
	statusservice "cyberdeck/internal/modules/status/service"
	statususecase "cyberdeck/internal/modules/status/usecase"
	"cyberdeck/internal/platform/clock"
	"cyberdeck/internal/platform/config"
	"cyberdeck/internal/platform/logging"
	uiapp "cyberdeck/internal/ui/app"
)

type App struct {
	StatusCLI   statusinadapter.CLIHandler
	StatusTUI   statusinadapter.TUIHandler
	LauncherCLI launcherinadapter.CLIHandler
	LauncherTUI launcherinadapter.TUIHandler

	status statusin.Usecase
	logger *logging.Logger
}

// New wires both modules. A failed initial enumeration is logged and leaves
// the registry empty until the next reset.
func New(ctx context.Context, cfg config.Config, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.NewNop()
	}
	clk := clock.SystemClock{}

	statusUC := statususecase.NewInteractor(statusservice.NewStatusService(
		statusoutadapter.NewSystemTelemetry(cfg.Telemetry),
		clk,
		logger.Named("status"),
	))
	// The startup tick pins the network baseline and seeds the last battery
	// line for the battery verb.
	_, _ = statusUC.Tick(ctx)

	launcherLog := logger.Named("launcher")
	directory := launcheroutadapter.NewDesktopDirectory(cfg.ApplicationDirs, launcherLog)
	launcherSvc := launcherservice.NewInterpreterService(
		directory,
		launcheroutadapter.NewExecLauncher(directory, cfg.Terminal, launcheroutadapter.WithExecLogger(launcherLog)),
		launcheroutadapter.NewStatusBatteryAdapter(statusUC),
		launcherservice.WithPinned(cfg.Pinned),
		launcherservice.WithSearchFullDirectory(cfg.SearchFullDirectory),
		launcherservice.WithClock(clk),
		launcherservice.WithLogger(launcherLog),
	)
	launcherUC := launcherusecase.NewInteractor(launcherSvc, launcheroutadapter.NewDesktopWatcher(cfg.ApplicationDirs, launcherLog))
	if err := launcherUC.Load(ctx); err != nil {
		launcherLog.Warn("initial application enumeration failed", zap.Error(err))
	}

	return &App{
		StatusCLI:   statusinadapter.NewCLIHandler(statusUC),
		StatusTUI:   statusinadapter.NewTUIHandler(statusUC),
		LauncherCLI: launcherinadapter.NewCLIHandler(launcherUC),
		LauncherTUI: launcherinadapter.NewTUIHandler(launcherUC),
		status:      statusUC,
		logger:      logger,
	}, nil
}

// NewStatusTicker drives the status module outside the TUI.
func (a *App) NewStatusTicker(publish func(statusdto.StatusOutput)) *statusinadapter.Ticker {
	return statusinadapter.NewTicker(a.status, publish)
}

func RunTUI(ctx context.Context, app *App) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	model := uiapp.NewModel(ctx, app.StatusTUI, app.LauncherTUI)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithReportFocus())
	_, err := program.Run()
	if err != nil {
		app.logger.Error("tui exited", zap.Error(err))
	}
	return err
}
