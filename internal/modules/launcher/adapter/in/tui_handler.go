package in

import (
	"context"

	"cyberdeck/internal/modules/launcher/dto"
	launcherin "cyberdeck/internal/modules/launcher/port/in"
)

type TUIHandler struct {
	usecase launcherin.Usecase
}

func NewTUIHandler(usecase launcherin.Usecase) TUIHandler {
	return TUIHandler{usecase: usecase}
}

func (h TUIHandler) Submit(ctx context.Context, line string) (dto.SubmitOutput, error) {
	return h.usecase.Submit(ctx, line)
}

func (h TUIHandler) Registry(ctx context.Context) (dto.RegistryOutput, error) {
	return h.usecase.Registry(ctx)
}

func (h TUIHandler) LaunchApp(ctx context.Context, id string) (dto.SubmitOutput, error) {
	return h.usecase.LaunchApp(ctx, id)
}

func (h TUIHandler) WatchDirectory(ctx context.Context) (<-chan struct{}, error) {
	return h.usecase.WatchDirectory(ctx)
}
