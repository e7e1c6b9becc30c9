package logger

import (
	"encoding/csv"
	"os"
	"testing"

	"al1905d/datamodel"
)

func TestCSVLoggerLogSnapshot(t *testing.T) {
	tmpDir := t.TempDir()

	l, err := NewCSVLogger(tmpDir)
	if err != nil {
		t.Fatalf("NewCSVLogger() error = %v", err)
	}
	defer l.Close()

	devices := []datamodel.DeviceSnapshot{
		{ALMAC: datamodel.MAC{0xaa, 0xbb, 0xcc, 0xdd, 0xee, 0x01}, SlotCount: 2, MetricCount: 1},
	}
	links := []datamodel.LinkSnapshot{
		{LocalInterfaceName: "eth0", NeighborALMAC: datamodel.MAC{0xaa, 0xbb, 0xcc, 0xdd, 0xee, 0x01}, Bridged: true},
	}

	if err := l.LogSnapshot(devices, links); err != nil {
		t.Fatalf("LogSnapshot() error = %v", err)
	}
	l.Close()

	f, err := os.Open(l.Filepath())
	if err != nil {
		t.Fatalf("opening logged file: %v", err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("reading CSV: %v", err)
	}
	// header + 1 device row + 1 link row
	if len(records) != 3 {
		t.Fatalf("len(records) = %d, want 3: %v", len(records), records)
	}
	if records[1][1] != "device" || records[2][1] != "link" {
		t.Fatalf("unexpected row kinds: %v / %v", records[1][1], records[2][1])
	}
}

func TestCSVLoggerLogAfterClose(t *testing.T) {
	l, err := NewCSVLogger(t.TempDir())
	if err != nil {
		t.Fatalf("NewCSVLogger() error = %v", err)
	}
	l.Close()

	if err := l.LogSnapshot(nil, nil); err == nil {
		t.Fatalf("LogSnapshot() after Close() = nil error, want error")
	}
}
