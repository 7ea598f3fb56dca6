package service

import (
	"context"
	"fmt"
	"net/netip"
	"sync"

	"go.uber.org/zap"

	"cyberdeck/internal/modules/status/domain"
	statusout "cyberdeck/internal/modules/status/port/out"
	"cyberdeck/internal/platform/clock"
)

type StatusService struct {
	telemetry statusout.Telemetry
	clock     clock.Clock
	logger    *zap.Logger

	mu       sync.Mutex
	baseline domain.NetworkBaseline
}

func NewStatusService(telemetry statusout.Telemetry, clk clock.Clock, logger *zap.Logger) *StatusService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StatusService{telemetry: telemetry, clock: clk, logger: logger}
}

// Sample reads every metric independently. A failed read degrades only its
// own field; Sample itself cannot fail.
func (s *StatusService) Sample(ctx context.Context) domain.Snapshot {
	snap := domain.Snapshot{At: s.clock.Now()}
	if s.telemetry == nil {
		s.logger.Warn("telemetry is not configured")
		return snap
	}

	snap.BatteryPct = s.battery(ctx)
	snap.WiFi, snap.IPv4 = s.wifi(ctx)
	snap.Memory = s.memory(ctx)
	snap.Storage = s.volume(ctx, "storage", s.telemetry.Storage)
	snap.Removable = s.volume(ctx, "removable", s.telemetry.RemovableStorage)
	snap.Uptime = s.uptime(ctx)
	snap.Temperature = s.temperature(ctx)
	snap.Network = s.network(ctx)
	return snap
}

func (s *StatusService) battery(ctx context.Context) domain.Reading[int] {
	return guard(s, "battery", func() (int, error) {
		b, err := s.telemetry.Battery(ctx)
		if err != nil {
			return 0, err
		}
		pct, ok := b.Percent()
		if !ok {
			return 0, fmt.Errorf("battery scale %d level %d", b.Scale, b.Level)
		}
		return pct, nil
	})
}

func (s *StatusService) wifi(ctx context.Context) (domain.Reading[bool], domain.Reading[string]) {
	state := guard(s, "wifi", func() (domain.WiFi, error) {
		return s.telemetry.WiFi(ctx)
	})
	if !state.OK {
		return domain.Unavailable[bool](), domain.Unavailable[string]()
	}
	enabled := domain.Available(state.Value.Enabled)
	if !state.Value.Enabled {
		return enabled, domain.Unavailable[string]()
	}
	ip := guard(s, "ip", func() (string, error) {
		addr, err := netip.ParseAddr(state.Value.IPv4)
		if err != nil {
			return "", err
		}
		if !addr.Is4() {
			return "", fmt.Errorf("%s is not an IPv4 address", addr)
		}
		return addr.String(), nil
	})
	return enabled, ip
}

func (s *StatusService) memory(ctx context.Context) domain.Reading[domain.MemoryUsage] {
	return guard(s, "memory", func() (domain.MemoryUsage, error) {
		m, err := s.telemetry.Memory(ctx)
		if err != nil {
			return domain.MemoryUsage{}, err
		}
		usage, ok := m.Usage()
		if !ok {
			return domain.MemoryUsage{}, fmt.Errorf("total memory is zero")
		}
		return usage, nil
	})
}

func (s *StatusService) volume(ctx context.Context, metric string, read func(context.Context) (domain.Volume, error)) domain.Reading[domain.Volume] {
	return guard(s, metric, func() (domain.Volume, error) {
		return read(ctx)
	})
}

func (s *StatusService) uptime(ctx context.Context) domain.Reading[domain.Uptime] {
	return guard(s, "uptime", func() (domain.Uptime, error) {
		millis, err := s.telemetry.UptimeMillis(ctx)
		if err != nil {
			return domain.Uptime{}, err
		}
		return domain.DecomposeUptime(millis), nil
	})
}

func (s *StatusService) temperature(ctx context.Context) domain.Reading[int] {
	return guard(s, "temperature", func() (int, error) {
		celsius, err := s.telemetry.TemperatureCelsius(ctx)
		if err != nil {
			return 0, err
		}
		return int(celsius), nil
	})
}

func (s *StatusService) network(ctx context.Context) domain.Reading[domain.Traffic] {
	return guard(s, "network", func() (domain.Traffic, error) {
		totals, err := s.telemetry.NetworkTotals(ctx)
		if err != nil {
			return domain.Traffic{}, err
		}
		s.mu.Lock()
		defer s.mu.Unlock()
		return s.baseline.Delta(totals), nil
	})
}

// guard runs one metric read, converting errors and panics from the
// platform layer into an unavailable reading.
func guard[T any](s *StatusService, metric string, read func() (T, error)) (out domain.Reading[T]) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Warn("metric read panicked", zap.String("metric", metric), zap.Any("panic", r))
			out = domain.Unavailable[T]()
		}
	}()
	value, err := read()
	if err != nil {
		s.logger.Debug("metric unavailable", zap.String("metric", metric), zap.Error(err))
		return domain.Unavailable[T]()
	}
	return domain.Available(value)
}
