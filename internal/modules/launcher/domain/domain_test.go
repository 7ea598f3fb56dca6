package domain_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"cyberdeck/internal/modules/launcher/domain"
)

func TestParseCommand(t *testing.T) {
	t.Parallel()
	cases := []struct {
		line string
		want domain.Command
		ok   bool
	}{
		{line: "", ok: false},
		{line: "   \t ", ok: false},
		{line: "OPEN spot", want: domain.Command{Verb: "open", Argument: "spot"}, ok: true},
		{line: "  launch   Google   Chrome  ", want: domain.Command{Verb: "launch", Argument: "Google   Chrome"}, ok: true},
		{line: "ls", want: domain.Command{Verb: "ls"}, ok: true},
		{line: "?\tmore", want: domain.Command{Verb: "?", Argument: "more"}, ok: true},
	}
	for _, tc := range cases {
		got, ok := domain.ParseCommand(tc.line)
		if ok != tc.ok {
			t.Fatalf("ParseCommand(%q) ok = %v", tc.line, ok)
		}
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Fatalf("ParseCommand(%q) mismatch (-want +got):\n%s", tc.line, diff)
		}
	}
}

func TestLookupVerbAliases(t *testing.T) {
	t.Parallel()
	want := map[string]domain.Verb{
		"?": domain.VerbHelp, "launch": domain.VerbOpen, "ls": domain.VerbList,
		"clear": domain.VerbReset, "quit": domain.VerbExit, "bat": domain.VerbBattery,
		"time": domain.VerbTime,
	}
	for token, verb := range want {
		got, ok := domain.LookupVerb(token)
		if !ok || got != verb {
			t.Fatalf("LookupVerb(%q) = %q, %v", token, got, ok)
		}
	}
	if _, ok := domain.LookupVerb("frobnicate"); ok {
		t.Fatalf("unknown verb resolved")
	}
	if _, ok := domain.LookupVerb("OPEN"); ok {
		t.Fatalf("lookup expects lower-cased tokens")
	}
}

func TestRegistryDedupesAndRejectsBlankNames(t *testing.T) {
	t.Parallel()
	reg := domain.NewRegistry([]domain.Application{
		{Name: "Spotify", ID: "spotify"},
		{Name: "  ", ID: "ghost"},
		{Name: "Spotify (flatpak)", ID: "spotify"},
		{Name: "Terminal", ID: "org.gnome.Terminal"},
	})
	want := []domain.Application{
		{Name: "Spotify", ID: "spotify"},
		{Name: "Terminal", ID: "org.gnome.Terminal"},
	}
	if diff := cmp.Diff(want, reg.List()); diff != "" {
		t.Fatalf("registry mismatch (-want +got):\n%s", diff)
	}
}

func TestFindFirstIsFirstSubstringInOrder(t *testing.T) {
	t.Parallel()
	reg := domain.NewRegistry([]domain.Application{
		{Name: "Spotlight Search", ID: "a"},
		{Name: "Spotify", ID: "b"},
	})
	got, ok := reg.FindFirst("SPOT")
	if !ok || got.ID != "a" {
		t.Fatalf("expected first match a, got %+v ok=%v", got, ok)
	}
	got, ok = reg.FindFirst("tify")
	if !ok || got.ID != "b" {
		t.Fatalf("expected b, got %+v", got)
	}
	if _, ok := reg.FindFirst("zzzz"); ok {
		t.Fatalf("unexpected match")
	}
}

func TestFormatListing(t *testing.T) {
	t.Parallel()
	apps := func(n int) []domain.Application {
		out := make([]domain.Application, n)
		for i := range out {
			out[i] = domain.Application{Name: fmt.Sprintf("App %02d", i), ID: fmt.Sprintf("app%d", i)}
		}
		return out
	}

	long := domain.FormatListing(apps(15))
	if got := strings.Count(long, "• "); got != 10 {
		t.Fatalf("expected 10 names, got %d", got)
	}
	if !strings.HasSuffix(long, "\n... and 5 more") {
		t.Fatalf("missing remainder suffix: %q", long)
	}

	short := domain.FormatListing(apps(3))
	want := "Installed apps:\n\n• App 00\n• App 01\n• App 02\n"
	if short != want {
		t.Fatalf("listing = %q, want %q", short, want)
	}

	exact := domain.FormatListing(apps(10))
	if strings.Contains(exact, "more") {
		t.Fatalf("ten entries should have no suffix: %q", exact)
	}
}

func TestPinnedListIsImmutableCopy(t *testing.T) {
	t.Parallel()
	src := []string{"spotify", " ", "htop"}
	pinned := domain.NewPinnedList(src)
	src[0] = "changed"
	ids := pinned.IDs()
	ids[1] = "changed"
	if diff := cmp.Diff([]string{"spotify", "htop"}, pinned.IDs()); diff != "" {
		t.Fatalf("pinned list mutated (-want +got):\n%s", diff)
	}
}
