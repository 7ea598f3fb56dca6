package usecase

import (
	"context"
	"fmt"

	"cyberdeck/internal/modules/launcher/domain"
	"cyberdeck/internal/modules/launcher/dto"
	launcherin "cyberdeck/internal/modules/launcher/port/in"
	launcherout "cyberdeck/internal/modules/launcher/port/out"
	"cyberdeck/internal/modules/launcher/service"
	apperrors "cyberdeck/internal/platform/errors"
)

type Interactor struct {
	svc     *service.InterpreterService
	watcher launcherout.DirectoryWatcher
}

func NewInteractor(svc *service.InterpreterService, watcher launcherout.DirectoryWatcher) launcherin.Usecase {
	return &Interactor{svc: svc, watcher: watcher}
}

func (i *Interactor) Submit(ctx context.Context, line string) (dto.SubmitOutput, error) {
	fb, err := i.svc.Submit(ctx, line)
	if err != nil {
		return dto.SubmitOutput{}, err
	}
	return toSubmitOutput(fb), nil
}

func (i *Interactor) Load(ctx context.Context) error {
	return i.svc.Load(ctx)
}

func (i *Interactor) Registry(_ context.Context) (dto.RegistryOutput, error) {
	pinned, all := i.svc.Views()
	return dto.RegistryOutput{Pinned: toAppOutputs(pinned), All: toAppOutputs(all)}, nil
}

func (i *Interactor) LaunchApp(ctx context.Context, id string) (dto.SubmitOutput, error) {
	fb, err := i.svc.Launch(ctx, id)
	if err != nil {
		return dto.SubmitOutput{}, err
	}
	return toSubmitOutput(fb), nil
}

func (i *Interactor) WatchDirectory(ctx context.Context) (<-chan struct{}, error) {
	if i.watcher == nil {
		return nil, fmt.Errorf("directory watcher: %w", apperrors.ErrUnavailable)
	}
	return i.watcher.Watch(ctx)
}

func toSubmitOutput(fb domain.Feedback) dto.SubmitOutput {
	out := dto.SubmitOutput{
		Verb:            string(fb.Verb),
		Message:         fb.Message,
		Kind:            string(fb.Kind),
		Dispatched:      fb.Dispatched,
		RegistryRebuilt: fb.RegistryRebuilt,
		Dismiss:         fb.Dismiss,
	}
	if fb.Launched != nil {
		out.Launched = &dto.AppOutput{Name: fb.Launched.Name, ID: fb.Launched.ID}
	}
	return out
}

func toAppOutputs(apps []domain.Application) []dto.AppOutput {
	out := make([]dto.AppOutput, 0, len(apps))
	for _, app := range apps {
		out = append(out, dto.AppOutput{Name: app.Name, ID: app.ID})
	}
	return out
}
