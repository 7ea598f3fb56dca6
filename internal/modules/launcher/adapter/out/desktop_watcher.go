package out

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	launcherout "cyberdeck/internal/modules/launcher/port/out"
	apperrors "cyberdeck/internal/platform/errors"
)

// DesktopWatcher turns fsnotify events under the application directories
// into coalesced change hints. It never touches the registry itself.
type DesktopWatcher struct {
	dirs   []string
	logger *zap.Logger
}

func NewDesktopWatcher(dirs []string, logger *zap.Logger) launcherout.DirectoryWatcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DesktopWatcher{dirs: append([]string(nil), dirs...), logger: logger}
}

func (w *DesktopWatcher) Watch(ctx context.Context) (<-chan struct{}, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	watched := 0
	for _, root := range w.dirs {
		_ = filepath.WalkDir(root, func(path string, de fs.DirEntry, err error) error {
			if err != nil || !de.IsDir() {
				return nil
			}
			if addErr := watcher.Add(path); addErr != nil {
				w.logger.Debug("watch skipped", zap.String("dir", path), zap.Error(addErr))
				return nil
			}
			watched++
			return nil
		})
	}
	if watched == 0 {
		_ = watcher.Close()
		return nil, fmt.Errorf("no application directory to watch: %w", apperrors.ErrUnavailable)
	}

	hints := make(chan struct{}, 1)
	go func() {
		defer close(hints)
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Has(fsnotify.Create) && !strings.HasSuffix(event.Name, ".desktop") {
					if addErr := watcher.Add(event.Name); addErr == nil {
						w.logger.Debug("watching new directory", zap.String("dir", event.Name))
					}
					continue
				}
				if !strings.HasSuffix(event.Name, ".desktop") || event.Op == fsnotify.Chmod {
					continue
				}
				select {
				case hints <- struct{}{}:
				default:
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				w.logger.Warn("directory watch error", zap.Error(err))
			}
		}
	}()
	return hints, nil
}
