package dashboard

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"al1905d/datamodel"
)

func macFor(b byte) datamodel.MAC {
	return datamodel.MAC{0x02, 0, 0, 0, 0, b}
}

func TestUpdateOnTickRefreshesSnapshot(t *testing.T) {
	store := datamodel.New()
	store.InsertInterface("eth0", macFor(1))
	store.UpdateDiscoveryTimestamps(macFor(1), macFor(2), macFor(3), datamodel.TimestampTopologyDiscovery)

	m := New(store, "test-host", "")
	updated, cmd := m.Update(tickMsg(time.Now()))
	model := updated.(Model)

	if len(model.devices) != 1 {
		t.Fatalf("devices after tick = %d, want 1", len(model.devices))
	}
	if cmd == nil {
		t.Error("expected a follow-up tick command")
	}
}

func TestUpdateQuitOnKey(t *testing.T) {
	m := New(datamodel.New(), "test-host", "")
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("expected tea.Quit command")
	}
}

func TestUpdateRunsGCOnKey(t *testing.T) {
	store := datamodel.New(datamodel.WithThresholds(120_000, 1, 1))
	store.InsertInterface("eth0", macFor(1))
	store.UpdateDiscoveryTimestamps(macFor(1), macFor(2), macFor(3), datamodel.TimestampTopologyDiscovery)

	m := New(store, "test-host", "")
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'g'}})
	model := updated.(Model)

	if model.gcRuns != 1 {
		t.Errorf("gcRuns = %d, want 1", model.gcRuns)
	}
}

func TestViewContainsSystemNameAndFooterHints(t *testing.T) {
	m := New(datamodel.New(), "test-host", "/tmp/al1905d.csv")
	m.width = 80
	m.height = 30

	out := m.View()
	if !strings.Contains(out, "test-host") {
		t.Error("view missing system name")
	}
	if !strings.Contains(out, "quit") {
		t.Error("view missing footer key hints")
	}
	if !strings.Contains(out, "/tmp/al1905d.csv") {
		t.Error("view missing log path")
	}
}

func TestViewShowsWaitingMessageWithNoDevices(t *testing.T) {
	m := New(datamodel.New(), "test-host", "")
	m.width = 80
	m.height = 30

	out := m.View()
	if !strings.Contains(out, "waiting for 1905 topology-discovery frames") {
		t.Error("expected waiting message with no devices")
	}
}
