package out_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"cyberdeck/internal/modules/status/adapter/out"
	"cyberdeck/internal/modules/status/domain"
	apperrors "cyberdeck/internal/platform/errors"
)

func writeSupply(t *testing.T, root, name string, files map[string]string) {
	t.Helper()
	dir := filepath.Join(root, name)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	for file, content := range files {
		if err := os.WriteFile(filepath.Join(dir, file), []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", file, err)
		}
	}
}

func TestPowerSupplyReadsCapacity(t *testing.T) {
	t.Parallel()
	root := t.TempDir()
	writeSupply(t, root, "AC", map[string]string{"online": "1\n"})
	writeSupply(t, root, "BAT0", map[string]string{"capacity": "83\n"})

	got, err := out.NewPowerSupply(root).Read(context.Background())
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if got != (domain.Battery{Level: 83, Scale: 100}) {
		t.Fatalf("battery = %+v", got)
	}
}

func TestPowerSupplyFallsBackToChargeCounters(t *testing.T) {
	t.Parallel()
	root := t.TempDir()
	writeSupply(t, root, "BAT1", map[string]string{"charge_now": "2500000", "charge_full": "5000000"})

	got, err := out.NewPowerSupply(root).Read(context.Background())
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	pct, ok := got.Percent()
	if !ok || pct != 50 {
		t.Fatalf("percent = %d ok=%v", pct, ok)
	}
}

func TestPowerSupplyWithoutBattery(t *testing.T) {
	t.Parallel()
	root := t.TempDir()
	writeSupply(t, root, "AC", map[string]string{"online": "1"})

	_, err := out.NewPowerSupply(root).Read(context.Background())
	if !errors.Is(err, apperrors.ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestPowerSupplyUnreadableCharge(t *testing.T) {
	t.Parallel()
	root := t.TempDir()
	writeSupply(t, root, "BAT0", map[string]string{"capacity": "unknown"})

	_, err := out.NewPowerSupply(root).Read(context.Background())
	if !errors.Is(err, apperrors.ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}
