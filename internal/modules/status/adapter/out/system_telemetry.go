package out

import (
	"context"
	"fmt"
	"net/netip"
	"slices"
	"strings"

	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"
	"github.com/shirou/gopsutil/v4/net"
	"github.com/shirou/gopsutil/v4/sensors"

	"cyberdeck/internal/modules/status/domain"
	statusout "cyberdeck/internal/modules/status/port/out"
	"cyberdeck/internal/platform/config"
	apperrors "cyberdeck/internal/platform/errors"
)

// SystemTelemetry reads device state through gopsutil. Battery charge comes
// from sysfs since gopsutil has no power supply support.
type SystemTelemetry struct {
	cfg     config.TelemetryConfig
	battery *PowerSupply
}

func NewSystemTelemetry(cfg config.TelemetryConfig) statusout.Telemetry {
	return &SystemTelemetry{cfg: cfg, battery: NewPowerSupply(cfg.PowerSupplyDir)}
}

func (t *SystemTelemetry) Battery(ctx context.Context) (domain.Battery, error) {
	return t.battery.Read(ctx)
}

// WiFi reports the first interface named with the wireless prefix. A host
// without one is disconnected rather than unreadable.
func (t *SystemTelemetry) WiFi(ctx context.Context) (domain.WiFi, error) {
	ifaces, err := net.InterfacesWithContext(ctx)
	if err != nil {
		return domain.WiFi{}, fmt.Errorf("list interfaces: %w", err)
	}
	return selectWiFi(ifaces, t.cfg.WiFiPrefix), nil
}

func selectWiFi(ifaces net.InterfaceStatList, prefix string) domain.WiFi {
	if prefix == "" {
		prefix = "wl"
	}
	for _, iface := range ifaces {
		if !strings.HasPrefix(iface.Name, prefix) {
			continue
		}
		state := domain.WiFi{Enabled: slices.Contains(iface.Flags, "up")}
		for _, addr := range iface.Addrs {
			cidr, err := netip.ParsePrefix(addr.Addr)
			if err != nil || !cidr.Addr().Is4() {
				continue
			}
			state.IPv4 = cidr.Addr().String()
			break
		}
		return state
	}
	return domain.WiFi{}
}

func (t *SystemTelemetry) Memory(ctx context.Context) (domain.Memory, error) {
	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return domain.Memory{}, fmt.Errorf("virtual memory: %w", err)
	}
	return domain.Memory{TotalBytes: vm.Total, AvailableBytes: vm.Available}, nil
}

func (t *SystemTelemetry) Storage(ctx context.Context) (domain.Volume, error) {
	return usage(ctx, t.cfg.StoragePath)
}

// RemovableStorage reports the first mounted partition under one of the
// configured removable mount roots.
func (t *SystemTelemetry) RemovableStorage(ctx context.Context) (domain.Volume, error) {
	parts, err := disk.PartitionsWithContext(ctx, false)
	if err != nil {
		return domain.Volume{}, fmt.Errorf("partitions: %w", err)
	}
	mount, ok := selectRemovable(parts, t.cfg.RemovableMounts)
	if !ok {
		return domain.Volume{}, apperrors.ErrNotFound
	}
	return usage(ctx, mount)
}

func selectRemovable(parts []disk.PartitionStat, roots []string) (string, bool) {
	for _, part := range parts {
		for _, root := range roots {
			if root != "" && strings.HasPrefix(part.Mountpoint, root) {
				return part.Mountpoint, true
			}
		}
	}
	return "", false
}

func (t *SystemTelemetry) UptimeMillis(ctx context.Context) (int64, error) {
	secs, err := host.UptimeWithContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("uptime: %w", err)
	}
	return int64(secs) * 1000, nil
}

// TemperatureCelsius prefers the sensor whose key contains ThermalSensor and
// falls back to the first sensor reported. Partial sensor errors are ignored
// as long as some readings came back.
func (t *SystemTelemetry) TemperatureCelsius(ctx context.Context) (float64, error) {
	temps, err := sensors.TemperaturesWithContext(ctx)
	if len(temps) == 0 {
		if err != nil {
			return 0, fmt.Errorf("temperatures: %w", err)
		}
		return 0, apperrors.ErrUnavailable
	}
	if want := strings.ToLower(t.cfg.ThermalSensor); want != "" {
		for _, temp := range temps {
			if strings.Contains(strings.ToLower(temp.SensorKey), want) {
				return temp.Temperature, nil
			}
		}
	}
	return temps[0].Temperature, nil
}

// NetworkTotals sums per-interface counters, leaving out loopback devices.
func (t *SystemTelemetry) NetworkTotals(ctx context.Context) (domain.Traffic, error) {
	counters, err := net.IOCountersWithContext(ctx, true)
	if err != nil {
		return domain.Traffic{}, fmt.Errorf("io counters: %w", err)
	}
	loopback := map[string]bool{"lo": true}
	if ifaces, err := net.InterfacesWithContext(ctx); err == nil {
		for _, iface := range ifaces {
			if slices.Contains(iface.Flags, "loopback") {
				loopback[iface.Name] = true
			}
		}
	}
	totals, ok := sumTraffic(counters, loopback)
	if !ok {
		return domain.Traffic{}, apperrors.ErrUnavailable
	}
	return totals, nil
}

func sumTraffic(counters []net.IOCountersStat, skip map[string]bool) (domain.Traffic, bool) {
	var (
		totals domain.Traffic
		seen   bool
	)
	for _, c := range counters {
		if skip[c.Name] {
			continue
		}
		totals.RxBytes += int64(c.BytesRecv)
		totals.TxBytes += int64(c.BytesSent)
		seen = true
	}
	return totals, seen
}

func usage(ctx context.Context, path string) (domain.Volume, error) {
	if path == "" {
		path = "/"
	}
	st, err := disk.UsageWithContext(ctx, path)
	if err != nil {
		return domain.Volume{}, fmt.Errorf("usage %s: %w", path, err)
	}
	return domain.Volume{AvailableBytes: st.Free, TotalBytes: st.Total}, nil
}
