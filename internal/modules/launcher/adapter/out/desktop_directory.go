package out

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"

	"cyberdeck/internal/modules/launcher/domain"
	apperrors "cyberdeck/internal/platform/errors"
)

const desktopGroup = "[Desktop Entry]"

// DesktopEntry is the subset of a freedesktop .desktop file the launcher
// needs. ID follows the desktop-file-id rules: the path below the
// applications directory with separators turned into dashes.
type DesktopEntry struct {
	ID        string
	Name      string
	Exec      string
	Path      string
	Type      string
	Terminal  bool
	NoDisplay bool
	Hidden    bool
}

func (e DesktopEntry) visible() bool {
	return e.Type == "Application" && !e.NoDisplay && !e.Hidden && strings.TrimSpace(e.Name) != ""
}

// DesktopDirectory enumerates XDG application directories. Earlier
// directories shadow later ones for the same desktop-file id.
type DesktopDirectory struct {
	dirs   []string
	logger *zap.Logger
}

func NewDesktopDirectory(dirs []string, logger *zap.Logger) *DesktopDirectory {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DesktopDirectory{dirs: append([]string(nil), dirs...), logger: logger}
}

// EnumerateAll lists visible applications sorted case-insensitively by name.
func (d *DesktopDirectory) EnumerateAll(ctx context.Context) ([]domain.Application, error) {
	entries, err := d.scan(ctx)
	if err != nil {
		return nil, err
	}
	apps := make([]domain.Application, 0, len(entries))
	for _, entry := range entries {
		if entry.visible() {
			apps = append(apps, domain.Application{Name: entry.Name, ID: entry.ID})
		}
	}
	sort.SliceStable(apps, func(i, j int) bool {
		a, b := strings.ToLower(apps[i].Name), strings.ToLower(apps[j].Name)
		if a != b {
			return a < b
		}
		return apps[i].ID < apps[j].ID
	})
	return apps, nil
}

// Resolve looks up one id. NoDisplay entries still resolve so they can be
// pinned; Hidden entries count as uninstalled.
func (d *DesktopDirectory) Resolve(ctx context.Context, id string) (domain.Application, error) {
	entry, err := d.lookup(ctx, id)
	if err != nil {
		return domain.Application{}, err
	}
	if entry.Hidden || strings.TrimSpace(entry.Name) == "" {
		return domain.Application{}, fmt.Errorf("%s: %w", id, apperrors.ErrNotInstalled)
	}
	return domain.Application{Name: entry.Name, ID: entry.ID}, nil
}

// Entry returns the launch details for id.
func (d *DesktopDirectory) Entry(ctx context.Context, id string) (DesktopEntry, error) {
	entry, err := d.lookup(ctx, id)
	if err != nil {
		return DesktopEntry{}, fmt.Errorf("%s: %w", id, apperrors.ErrNoLaunchTarget)
	}
	if entry.Hidden || strings.TrimSpace(entry.Exec) == "" {
		return DesktopEntry{}, fmt.Errorf("%s has no Exec line: %w", id, apperrors.ErrNoLaunchTarget)
	}
	return entry, nil
}

func (d *DesktopDirectory) lookup(ctx context.Context, id string) (DesktopEntry, error) {
	entries, err := d.scan(ctx)
	if err != nil {
		return DesktopEntry{}, err
	}
	for _, entry := range entries {
		if entry.ID == id {
			return entry, nil
		}
	}
	return DesktopEntry{}, fmt.Errorf("%s: %w", id, apperrors.ErrNotInstalled)
}

func (d *DesktopDirectory) scan(ctx context.Context) ([]DesktopEntry, error) {
	seen := map[string]struct{}{}
	var out []DesktopEntry
	for _, root := range d.dirs {
		err := filepath.WalkDir(root, func(path string, de fs.DirEntry, err error) error {
			if err != nil {
				if errors.Is(err, fs.ErrNotExist) && path == root {
					return filepath.SkipDir
				}
				d.logger.Debug("skip unreadable path", zap.String("path", path), zap.Error(err))
				if de != nil && de.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}
			if de.IsDir() || !strings.HasSuffix(de.Name(), ".desktop") {
				return nil
			}
			rel, relErr := filepath.Rel(root, path)
			if relErr != nil {
				return nil
			}
			id := desktopFileID(rel)
			if _, dup := seen[id]; dup {
				return nil
			}
			entry, parseErr := readDesktopEntry(path)
			if parseErr != nil {
				d.logger.Debug("skip malformed desktop entry", zap.String("path", path), zap.Error(parseErr))
				return nil
			}
			seen[id] = struct{}{}
			entry.ID = id
			out = append(out, entry)
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", root, err)
		}
	}
	return out, nil
}

func desktopFileID(rel string) string {
	rel = strings.TrimSuffix(filepath.ToSlash(rel), ".desktop")
	return strings.ReplaceAll(rel, "/", "-")
}

func readDesktopEntry(path string) (DesktopEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		return DesktopEntry{}, err
	}
	defer f.Close()
	return ParseDesktopEntry(f)
}

// ParseDesktopEntry reads the [Desktop Entry] group. Localized keys are
// ignored so names stay in the default locale.
func ParseDesktopEntry(r io.Reader) (DesktopEntry, error) {
	var entry DesktopEntry
	inGroup, sawGroup := false, false
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if strings.HasPrefix(line, "[") {
			inGroup = line == desktopGroup
			sawGroup = sawGroup || inGroup
			continue
		}
		if !inGroup {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		value = unescapeValue(strings.TrimSpace(value))
		switch key {
		case "Name":
			entry.Name = value
		case "Exec":
			entry.Exec = value
		case "Path":
			entry.Path = value
		case "Type":
			entry.Type = value
		case "Terminal":
			entry.Terminal = value == "true"
		case "NoDisplay":
			entry.NoDisplay = value == "true"
		case "Hidden":
			entry.Hidden = value == "true"
		}
	}
	if err := scanner.Err(); err != nil {
		return DesktopEntry{}, err
	}
	if !sawGroup {
		return DesktopEntry{}, fmt.Errorf("missing %s group: %w", desktopGroup, apperrors.ErrInvalidInput)
	}
	return entry, nil
}

func unescapeValue(v string) string {
	if !strings.Contains(v, `\`) {
		return v
	}
	var b strings.Builder
	for i := 0; i < len(v); i++ {
		if v[i] != '\\' || i == len(v)-1 {
			b.WriteByte(v[i])
			continue
		}
		i++
		switch v[i] {
		case 's':
			b.WriteByte(' ')
		case 'n':
			b.WriteByte('\n')
		case 't':
			b.WriteByte('\t')
		case 'r':
			b.WriteByte('\r')
		case '\\':
			b.WriteByte('\\')
		default:
			b.WriteByte('\\')
			b.WriteByte(v[i])
		}
	}
	return b.String()
}
