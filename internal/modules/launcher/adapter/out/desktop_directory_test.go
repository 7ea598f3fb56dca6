package out_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"cyberdeck/internal/modules/launcher/adapter/out"
	"cyberdeck/internal/modules/launcher/domain"
	apperrors "cyberdeck/internal/platform/errors"
)

func writeDesktop(t *testing.T, dir, rel, body string) {
	t.Helper()
	path := filepath.Join(dir, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", rel, err)
	}
}

func app(name, exec string, extra ...string) string {
	lines := []string{"[Desktop Entry]", "Type=Application", "Name=" + name, "Exec=" + exec}
	return strings.Join(append(lines, extra...), "\n") + "\n"
}

func TestDesktopDirectoryEnumerateAll(t *testing.T) {
	t.Parallel()
	user, system := t.TempDir(), t.TempDir()
	writeDesktop(t, user, "spotify.desktop", app("Spotify (user)", "spotify --user"))
	writeDesktop(t, system, "spotify.desktop", app("Spotify", "spotify"))
	writeDesktop(t, system, "htop.desktop", app("htop", "htop", "Terminal=true"))
	writeDesktop(t, system, "org.gnome.Calculator.desktop", app("Calculator", "gnome-calculator"))
	writeDesktop(t, system, "kde/konsole.desktop", app("Konsole", "konsole"))
	writeDesktop(t, system, "hidden.desktop", app("Hidden", "x", "Hidden=true"))
	writeDesktop(t, system, "helper.desktop", app("Helper", "x", "NoDisplay=true"))
	writeDesktop(t, system, "link.desktop", "[Desktop Entry]\nType=Link\nName=Docs\nURL=https://example.com\n")
	writeDesktop(t, system, "broken.desktop", "Name=No group\n")
	writeDesktop(t, system, "README", "not an entry")

	dir := out.NewDesktopDirectory([]string{user, filepath.Join(user, "missing"), system}, nil)
	got, err := dir.EnumerateAll(context.Background())
	if err != nil {
		t.Fatalf("enumerate: %v", err)
	}
	want := []domain.Application{
		{Name: "Calculator", ID: "org.gnome.Calculator"},
		{Name: "htop", ID: "htop"},
		{Name: "Konsole", ID: "kde-konsole"},
		{Name: "Spotify (user)", ID: "spotify"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("enumerate mismatch (-want +got):\n%s", diff)
	}
}

func TestDesktopDirectoryResolve(t *testing.T) {
	t.Parallel()
	root := t.TempDir()
	writeDesktop(t, root, "helper.desktop", app("Helper", "helper", "NoDisplay=true"))
	writeDesktop(t, root, "gone.desktop", app("Gone", "gone", "Hidden=true"))
	dir := out.NewDesktopDirectory([]string{root}, nil)

	got, err := dir.Resolve(context.Background(), "helper")
	if err != nil || got.Name != "Helper" {
		t.Fatalf("resolve helper = %+v, %v", got, err)
	}
	for _, id := range []string{"gone", "nope"} {
		if _, err := dir.Resolve(context.Background(), id); !errors.Is(err, apperrors.ErrNotInstalled) {
			t.Fatalf("resolve %s: expected ErrNotInstalled, got %v", id, err)
		}
	}
}

func TestDesktopDirectoryEntry(t *testing.T) {
	t.Parallel()
	root := t.TempDir()
	writeDesktop(t, root, "term.desktop", app("Term", `sh -c "echo\shi"`, "Terminal=true", "Path=/tmp"))
	writeDesktop(t, root, "noexec.desktop", "[Desktop Entry]\nType=Application\nName=NoExec\n")
	dir := out.NewDesktopDirectory([]string{root}, nil)

	entry, err := dir.Entry(context.Background(), "term")
	if err != nil {
		t.Fatalf("entry: %v", err)
	}
	if !entry.Terminal || entry.Path != "/tmp" || entry.Exec != `sh -c "echo hi"` {
		t.Fatalf("entry = %+v", entry)
	}
	for _, id := range []string{"noexec", "missing"} {
		if _, err := dir.Entry(context.Background(), id); !errors.Is(err, apperrors.ErrNoLaunchTarget) {
			t.Fatalf("entry %s: expected ErrNoLaunchTarget, got %v", id, err)
		}
	}
}

func TestParseDesktopEntryIgnoresOtherGroupsAndLocales(t *testing.T) {
	t.Parallel()
	body := strings.Join([]string{
		"# comment",
		"[Desktop Entry]",
		"Name=Files",
		"Name[de]=Dateien",
		"Exec=nautilus --new-window %U",
		"Type=Application",
		"",
		"[Desktop Action new-window]",
		"Name=New Window",
		"Exec=nautilus --new-window",
	}, "\n")
	entry, err := out.ParseDesktopEntry(strings.NewReader(body))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if entry.Name != "Files" || entry.Exec != "nautilus --new-window %U" {
		t.Fatalf("entry = %+v", entry)
	}
}
