package out

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/net"

	"cyberdeck/internal/modules/status/domain"
)

func TestSelectWiFiMatchesPrefix(t *testing.T) {
	t.Parallel()
	ifaces := net.InterfaceStatList{
		{Name: "lo", Flags: []string{"up", "loopback"}, Addrs: net.InterfaceAddrList{{Addr: "127.0.0.1/8"}}},
		{Name: "eth0", Flags: []string{"up"}, Addrs: net.InterfaceAddrList{{Addr: "10.0.0.2/24"}}},
		{Name: "wlan0", Flags: []string{"up", "broadcast"}, Addrs: net.InterfaceAddrList{
			{Addr: "fe80::1/64"},
			{Addr: "192.168.1.23/24"},
		}},
	}

	got := selectWiFi(ifaces, "")
	if diff := cmp.Diff(domain.WiFi{Enabled: true, IPv4: "192.168.1.23"}, got); diff != "" {
		t.Fatalf("default prefix (-want +got):\n%s", diff)
	}
	got = selectWiFi(ifaces, "eth")
	if diff := cmp.Diff(domain.WiFi{Enabled: true, IPv4: "10.0.0.2"}, got); diff != "" {
		t.Fatalf("custom prefix (-want +got):\n%s", diff)
	}
}

func TestSelectWiFiDownOrMissingIsDisconnected(t *testing.T) {
	t.Parallel()
	down := net.InterfaceStatList{{Name: "wlp2s0", Flags: []string{"broadcast"}}}
	if got := selectWiFi(down, "wl"); got.Enabled || got.IPv4 != "" {
		t.Fatalf("down interface = %+v", got)
	}
	wired := net.InterfaceStatList{{Name: "eth0", Flags: []string{"up"}}}
	if got := selectWiFi(wired, "wl"); got != (domain.WiFi{}) {
		t.Fatalf("wired-only host = %+v", got)
	}
}

func TestSelectRemovableFirstMountUnderRoot(t *testing.T) {
	t.Parallel()
	parts := []disk.PartitionStat{
		{Device: "/dev/nvme0n1p2", Mountpoint: "/"},
		{Device: "/dev/nvme0n1p1", Mountpoint: "/boot"},
		{Device: "/dev/mmcblk0p1", Mountpoint: "/run/media/deck/SD"},
		{Device: "/dev/sda1", Mountpoint: "/media/usb"},
	}
	roots := []string{"", "/media/", "/run/media/"}

	mount, ok := selectRemovable(parts, roots)
	if !ok || mount != "/run/media/deck/SD" {
		t.Fatalf("mount = %q, %v", mount, ok)
	}
	if _, ok := selectRemovable(parts[:2], roots); ok {
		t.Fatalf("no removable partition should match")
	}
	if _, ok := selectRemovable(parts, nil); ok {
		t.Fatalf("no roots should match nothing")
	}
}

func TestSumTrafficSkipsLoopback(t *testing.T) {
	t.Parallel()
	counters := []net.IOCountersStat{
		{Name: "lo", BytesRecv: 1 << 30, BytesSent: 1 << 30},
		{Name: "wlan0", BytesRecv: 3000, BytesSent: 1000},
		{Name: "eth0", BytesRecv: 500, BytesSent: 200},
	}

	got, ok := sumTraffic(counters, map[string]bool{"lo": true})
	if !ok {
		t.Fatalf("expected totals")
	}
	if diff := cmp.Diff(domain.Traffic{RxBytes: 3500, TxBytes: 1200}, got); diff != "" {
		t.Fatalf("totals (-want +got):\n%s", diff)
	}
	if _, ok := sumTraffic(counters[:1], map[string]bool{"lo": true}); ok {
		t.Fatalf("loopback-only host has no traffic reading")
	}
}
