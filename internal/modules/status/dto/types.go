package dto

// StatusOutput is one rendered tick, ready for the display sink.
type StatusOutput struct {
	Time        string `json:"time"`
	Date        string `json:"date"`
	Battery     string `json:"battery"`
	WiFi        string `json:"wifi"`
	Memory      string `json:"memory"`
	Storage     string `json:"storage"`
	Removable   string `json:"removable"`
	Uptime      string `json:"uptime"`
	IP          string `json:"ip"`
	Temperature string `json:"temperature"`
	Network     string `json:"network"`
}

// Lines returns the gauges in display order.
func (o StatusOutput) Lines() []string {
	return []string{
		o.Time,
		o.Date,
		o.Battery,
		o.WiFi,
		o.Memory,
		o.Storage,
		o.Removable,
		o.Uptime,
		o.IP,
		o.Temperature,
		o.Network,
	}
}

type SnapshotOutput struct {
	BatteryPercent   *int     `json:"battery_percent"`
	WiFiEnabled      *bool    `json:"wifi_enabled"`
	IPv4             *string  `json:"ipv4"`
	MemoryUsedMB     *int64   `json:"memory_used_mb"`
	MemoryTotalMB    *int64   `json:"memory_total_mb"`
	StorageFreeGB    *float64 `json:"storage_free_gb"`
	StorageTotalGB   *float64 `json:"storage_total_gb"`
	RemovableFreeGB  *float64 `json:"removable_free_gb"`
	RemovableTotalGB *float64 `json:"removable_total_gb"`
	UptimeMinutes    *int64   `json:"uptime_minutes"`
	TemperatureC     *int     `json:"temperature_c"`
	RxMB             *float64 `json:"rx_mb"`
	TxMB             *float64 `json:"tx_mb"`
}
