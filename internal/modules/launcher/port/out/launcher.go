package out

import (
	"context"

	"cyberdeck/internal/modules/launcher/domain"
)

// Directory enumerates installed applications. Resolve reports
// apperrors.ErrNotInstalled for unknown identifiers.
type Directory interface {
	EnumerateAll(ctx context.Context) ([]domain.Application, error)
	Resolve(ctx context.Context, id string) (domain.Application, error)
}

// Launcher starts the application behind id. A missing entry is reported as
// apperrors.ErrNoLaunchTarget.
type Launcher interface {
	Launch(ctx context.Context, id string) error
}

type BatterySource interface {
	LastBattery(ctx context.Context) (string, error)
}

// DirectoryWatcher emits a hint whenever the application directories change.
// The channel closes when ctx is done.
type DirectoryWatcher interface {
	Watch(ctx context.Context) (<-chan struct{}, error)
}
