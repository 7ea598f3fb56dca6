package in

import (
	"context"

	"cyberdeck/internal/modules/status/dto"
)

type Usecase interface {
	Tick(ctx context.Context) (dto.StatusOutput, error)
	Snapshot(ctx context.Context) (dto.SnapshotOutput, error)
	LastBattery(ctx context.Context) (string, error)
}
