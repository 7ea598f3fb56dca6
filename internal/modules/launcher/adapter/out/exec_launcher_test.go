package out_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"

	"cyberdeck/internal/modules/launcher/adapter/out"
	apperrors "cyberdeck/internal/platform/errors"
)

type entryMap map[string]out.DesktopEntry

func (m entryMap) Entry(_ context.Context, id string) (out.DesktopEntry, error) {
	entry, ok := m[id]
	if !ok {
		return out.DesktopEntry{}, fmt.Errorf("%s: %w", id, apperrors.ErrNoLaunchTarget)
	}
	return entry, nil
}

type recorder struct {
	argv [][]string
	dirs []string
	err  error
}

func (r *recorder) start(argv []string, dir string) error {
	if r.err != nil {
		return r.err
	}
	r.argv = append(r.argv, argv)
	r.dirs = append(r.dirs, dir)
	return nil
}

func TestExpandExec(t *testing.T) {
	t.Parallel()
	cases := []struct {
		in   string
		want []string
	}{
		{in: "firefox %u", want: []string{"firefox"}},
		{in: "gimp-2.10 %U --new", want: []string{"gimp-2.10", "--new"}},
		{in: `sh -c "echo \"hi\" 100%%"`, want: []string{"sh", "-c", `echo "hi" 100%`}},
		{in: `"/opt/My App/bin/app" --flag=%f`, want: []string{"/opt/My App/bin/app", "--flag="}},
		{in: "code --icon %i %c %k", want: []string{"code", "--icon"}},
		{in: `run ""`, want: []string{"run", ""}},
	}
	for _, tc := range cases {
		got, err := out.ExpandExec(tc.in)
		if err != nil {
			t.Fatalf("ExpandExec(%q): %v", tc.in, err)
		}
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Fatalf("ExpandExec(%q) (-want +got):\n%s", tc.in, diff)
		}
	}
	for _, bad := range []string{"", "   ", "%f", `app "unterminated`} {
		if _, err := out.ExpandExec(bad); err == nil {
			t.Fatalf("ExpandExec(%q) should fail", bad)
		}
	}
}

func TestExecLauncherStartsEntry(t *testing.T) {
	t.Parallel()
	rec := &recorder{}
	entries := entryMap{
		"spotify": {ID: "spotify", Exec: "spotify %U", Path: "/home/deck"},
		"htop":    {ID: "htop", Exec: "htop", Terminal: true},
	}
	launcher := out.NewExecLauncher(entries, "foot", out.WithStartFunc(rec.start))

	if err := launcher.Launch(context.Background(), "spotify"); err != nil {
		t.Fatalf("launch spotify: %v", err)
	}
	if err := launcher.Launch(context.Background(), "htop"); err != nil {
		t.Fatalf("launch htop: %v", err)
	}
	want := [][]string{{"spotify"}, {"foot", "-e", "htop"}}
	if diff := cmp.Diff(want, rec.argv); diff != "" {
		t.Fatalf("argv (-want +got):\n%s", diff)
	}
	if rec.dirs[0] != "/home/deck" {
		t.Fatalf("working dir = %q", rec.dirs[0])
	}
}

func TestExecLauncherFailures(t *testing.T) {
	t.Parallel()
	rec := &recorder{}
	entries := entryMap{"htop": {ID: "htop", Exec: "htop", Terminal: true}}

	noTerminal := out.NewExecLauncher(entries, "", out.WithStartFunc(rec.start))
	if err := noTerminal.Launch(context.Background(), "htop"); !errors.Is(err, apperrors.ErrNoLaunchTarget) {
		t.Fatalf("expected ErrNoLaunchTarget without terminal, got %v", err)
	}
	if err := noTerminal.Launch(context.Background(), "uninstalled"); !errors.Is(err, apperrors.ErrNoLaunchTarget) {
		t.Fatalf("expected ErrNoLaunchTarget for missing entry, got %v", err)
	}

	rec.err = errors.New("exec: not found")
	failing := out.NewExecLauncher(entries, "xterm", out.WithStartFunc(rec.start))
	if err := failing.Launch(context.Background(), "htop"); err == nil {
		t.Fatalf("start failure should surface")
	}
}
