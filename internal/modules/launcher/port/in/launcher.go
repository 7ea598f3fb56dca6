package in

import (
	"context"

	"cyberdeck/internal/modules/launcher/dto"
)

type Usecase interface {
	Submit(ctx context.Context, line string) (dto.SubmitOutput, error)
	Load(ctx context.Context) error
	Registry(ctx context.Context) (dto.RegistryOutput, error)
	LaunchApp(ctx context.Context, id string) (dto.SubmitOutput, error)
	WatchDirectory(ctx context.Context) (<-chan struct{}, error)
}
