package in

import (
	"context"

	"cyberdeck/internal/modules/launcher/dto"
	launcherin "cyberdeck/internal/modules/launcher/port/in"
)

type CLIHandler struct {
	usecase launcherin.Usecase
}

func NewCLIHandler(usecase launcherin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Run(ctx context.Context, line string) (dto.SubmitOutput, error) {
	return h.usecase.Submit(ctx, line)
}

func (h CLIHandler) Apps(ctx context.Context) (dto.RegistryOutput, error) {
	return h.usecase.Registry(ctx)
}
