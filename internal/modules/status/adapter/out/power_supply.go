package out

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"cyberdeck/internal/modules/status/domain"
	apperrors "cyberdeck/internal/platform/errors"
)

// PowerSupply reads battery charge from a Linux power_supply class directory.
type PowerSupply struct {
	dir string
}

func NewPowerSupply(dir string) *PowerSupply {
	if dir == "" {
		dir = "/sys/class/power_supply"
	}
	return &PowerSupply{dir: dir}
}

// Read returns the first battery's charge. capacity is already a percentage;
// without it charge_now/charge_full (or energy_*) give level and scale.
func (p *PowerSupply) Read(ctx context.Context) (domain.Battery, error) {
	if err := ctx.Err(); err != nil {
		return domain.Battery{}, err
	}
	supplies, err := filepath.Glob(filepath.Join(p.dir, "BAT*"))
	if err != nil {
		return domain.Battery{}, err
	}
	if len(supplies) == 0 {
		return domain.Battery{}, fmt.Errorf("battery in %s: %w", p.dir, apperrors.ErrUnavailable)
	}
	sort.Strings(supplies)
	bat := supplies[0]

	if level, err := readInt(filepath.Join(bat, "capacity")); err == nil {
		return domain.Battery{Level: level, Scale: 100}, nil
	}
	for _, kind := range []string{"charge", "energy"} {
		now, errNow := readInt(filepath.Join(bat, kind+"_now"))
		full, errFull := readInt(filepath.Join(bat, kind+"_full"))
		if errNow == nil && errFull == nil {
			return domain.Battery{Level: now, Scale: full}, nil
		}
	}
	return domain.Battery{}, fmt.Errorf("battery %s has no charge files: %w", filepath.Base(bat), apperrors.ErrUnavailable)
}

func readInt(path string) (int, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(strings.TrimSpace(string(raw)))
}
