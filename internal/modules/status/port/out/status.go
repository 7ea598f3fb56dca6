package out

import (
	"context"

	"cyberdeck/internal/modules/status/domain"
)

// Telemetry supplies point-in-time device readings. Every getter fails
// independently of the others.
type Telemetry interface {
	Battery(ctx context.Context) (domain.Battery, error)
	WiFi(ctx context.Context) (domain.WiFi, error)
	Memory(ctx context.Context) (domain.Memory, error)
	Storage(ctx context.Context) (domain.Volume, error)
	RemovableStorage(ctx context.Context) (domain.Volume, error)
	UptimeMillis(ctx context.Context) (int64, error)
	TemperatureCelsius(ctx context.Context) (float64, error)
	NetworkTotals(ctx context.Context) (domain.Traffic, error)
}
