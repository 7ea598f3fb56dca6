package in

import (
	"context"

	"cyberdeck/internal/modules/status/dto"
	statusin "cyberdeck/internal/modules/status/port/in"
)

type CLIHandler struct {
	usecase statusin.Usecase
}

func NewCLIHandler(usecase statusin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Tick(ctx context.Context) (dto.StatusOutput, error) {
	return h.usecase.Tick(ctx)
}

func (h CLIHandler) Snapshot(ctx context.Context) (dto.SnapshotOutput, error) {
	return h.usecase.Snapshot(ctx)
}
