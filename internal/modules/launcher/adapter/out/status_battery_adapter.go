package out

import (
	"context"

	launcherout "cyberdeck/internal/modules/launcher/port/out"
	statusin "cyberdeck/internal/modules/status/port/in"
)

// StatusBatteryAdapter exposes the status strip's last battery line to the
// interpreter's battery verb.
type StatusBatteryAdapter struct {
	status statusin.Usecase
}

func NewStatusBatteryAdapter(status statusin.Usecase) launcherout.BatterySource {
	return &StatusBatteryAdapter{status: status}
}

func (a *StatusBatteryAdapter) LastBattery(ctx context.Context) (string, error) {
	return a.status.LastBattery(ctx)
}
