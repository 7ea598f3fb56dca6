package usecase

import (
	"context"
	"sync"

	"cyberdeck/internal/modules/status/domain"
	"cyberdeck/internal/modules/status/dto"
	statusin "cyberdeck/internal/modules/status/port/in"
	"cyberdeck/internal/modules/status/service"
	"cyberdeck/internal/platform/clock"
)

type Interactor struct {
	svc *service.StatusService

	mu          sync.RWMutex
	lastBattery string
}

func NewInteractor(svc *service.StatusService) statusin.Usecase {
	return &Interactor{svc: svc, lastBattery: domain.RenderBattery(domain.Unavailable[int]())}
}

// Tick samples every metric and renders the status strip. It has no failure
// mode of its own; unavailable metrics render as their sentinels.
func (i *Interactor) Tick(ctx context.Context) (dto.StatusOutput, error) {
	snap := i.svc.Sample(ctx)
	out := Render(snap)

	i.mu.Lock()
	i.lastBattery = out.Battery
	i.mu.Unlock()
	return out, nil
}

func (i *Interactor) LastBattery(_ context.Context) (string, error) {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.lastBattery, nil
}

func (i *Interactor) Snapshot(ctx context.Context) (dto.SnapshotOutput, error) {
	snap := i.svc.Sample(ctx)
	var out dto.SnapshotOutput
	if snap.BatteryPct.OK {
		out.BatteryPercent = ptr(snap.BatteryPct.Value)
	}
	if snap.WiFi.OK {
		out.WiFiEnabled = ptr(snap.WiFi.Value)
	}
	if snap.IPv4.OK {
		out.IPv4 = ptr(snap.IPv4.Value)
	}
	if snap.Memory.OK {
		out.MemoryUsedMB = ptr(snap.Memory.Value.UsedMB)
		out.MemoryTotalMB = ptr(snap.Memory.Value.TotalMB)
	}
	if snap.Storage.OK {
		out.StorageFreeGB = ptr(toGB(snap.Storage.Value.AvailableBytes))
		out.StorageTotalGB = ptr(toGB(snap.Storage.Value.TotalBytes))
	}
	if snap.Removable.OK {
		out.RemovableFreeGB = ptr(toGB(snap.Removable.Value.AvailableBytes))
		out.RemovableTotalGB = ptr(toGB(snap.Removable.Value.TotalBytes))
	}
	if snap.Uptime.OK {
		u := snap.Uptime.Value
		out.UptimeMinutes = ptr(u.Days*24*60 + u.Hours*60 + u.Minutes)
	}
	if snap.Temperature.OK {
		out.TemperatureC = ptr(snap.Temperature.Value)
	}
	if snap.Network.OK {
		out.RxMB = ptr(float64(snap.Network.Value.RxBytes) / (1024 * 1024))
		out.TxMB = ptr(float64(snap.Network.Value.TxBytes) / (1024 * 1024))
	}
	return out, nil
}

// Render formats a snapshot into the fixed set of status lines.
func Render(snap domain.Snapshot) dto.StatusOutput {
	return dto.StatusOutput{
		Time:        domain.RenderTime(snap.At, clock.TimeLayout),
		Date:        domain.RenderDate(snap.At, clock.DateLayout),
		Battery:     domain.RenderBattery(snap.BatteryPct),
		WiFi:        domain.RenderWiFi(snap.WiFi),
		Memory:      domain.RenderMemory(snap.Memory),
		Storage:     domain.RenderStorage(snap.Storage),
		Removable:   domain.RenderRemovable(snap.Removable),
		Uptime:      domain.RenderUptime(snap.Uptime),
		IP:          domain.RenderIP(snap.IPv4, snap.WiFi),
		Temperature: domain.RenderTemperature(snap.Temperature),
		Network:     domain.RenderNetwork(snap.Network),
	}
}

func toGB(bytes uint64) float64 {
	return float64(bytes) / (1024 * 1024 * 1024)
}

func ptr[T any](v T) *T {
	return &v
}
