package domain

import (
	"fmt"
	"strings"
	"time"
)

const (
	GaugeWidth  = 10
	GaugeFilled = "█"
	GaugeEmpty  = "░"
)

// Gauge renders a 0–100 quantity as a fixed-width bar with percent/10 filled
// glyphs, truncated. Out-of-range input is clamped.
func Gauge(percent int) string {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	filled := percent / 10
	return strings.Repeat(GaugeFilled, filled) + strings.Repeat(GaugeEmpty, GaugeWidth-filled)
}

func RenderTime(at time.Time, layout string) string {
	return at.Format(layout)
}

func RenderDate(at time.Time, layout string) string {
	return "[" + at.Format(layout) + "]"
}

func RenderBattery(r Reading[int]) string {
	if !r.OK {
		return "Battery: [N/A]"
	}
	return fmt.Sprintf("Battery: [%d%%] %s", r.Value, Gauge(r.Value))
}

func RenderWiFi(r Reading[bool]) string {
	switch {
	case !r.OK:
		return "WiFi: [N/A]"
	case r.Value:
		return "WiFi: [Connected]"
	default:
		return "WiFi: [Disconnected]"
	}
}

func RenderMemory(r Reading[MemoryUsage]) string {
	if !r.OK {
		return "RAM: [N/A]"
	}
	return fmt.Sprintf("RAM: [%dMB/%dMB] %s", r.Value.UsedMB, r.Value.TotalMB, Gauge(r.Value.Percent()))
}

func RenderStorage(r Reading[Volume]) string {
	if !r.OK {
		return "Storage: [N/A]"
	}
	return fmt.Sprintf("Storage: [%sGB/%sGB free]", gigabytes(r.Value.AvailableBytes), gigabytes(r.Value.TotalBytes))
}

func RenderRemovable(r Reading[Volume]) string {
	if !r.OK {
		return "SD Card: [Not detected]"
	}
	return fmt.Sprintf("SD Card: [%sGB/%sGB free]", gigabytes(r.Value.AvailableBytes), gigabytes(r.Value.TotalBytes))
}

func RenderUptime(r Reading[Uptime]) string {
	if !r.OK {
		return "Uptime: [N/A]"
	}
	return fmt.Sprintf("Uptime: [%dd %dh %dm]", r.Value.Days, r.Value.Hours, r.Value.Minutes)
}

// RenderIP distinguishes a radio that is off from an address that could not
// be read.
func RenderIP(ip Reading[string], wifi Reading[bool]) string {
	switch {
	case ip.OK:
		return "IP: [" + ip.Value + "]"
	case wifi.OK && !wifi.Value:
		return "IP: [No WiFi]"
	default:
		return "IP: [N/A]"
	}
}

func RenderTemperature(r Reading[int]) string {
	if !r.OK {
		return "Temp: [--°C]"
	}
	return fmt.Sprintf("Temp: [%d°C]", r.Value)
}

func RenderNetwork(r Reading[Traffic]) string {
	if !r.OK {
		return "Network: [N/A]"
	}
	return fmt.Sprintf("Network: [TX: %.1fMB RX: %.1fMB]", float64(r.Value.TxBytes)/mib, float64(r.Value.RxBytes)/mib)
}

func gigabytes(bytes uint64) string {
	return fmt.Sprintf("%.1f", float64(bytes)/gib)
}
