// Package dashboard is a bubbletea/lipgloss live view over a
// datamodel.Store: one scrollable table of known 1905 devices and a second
// of neighbor links, refreshed on a tick from Store.Snapshot. It shows the
// same information DumpNetworkDevices prints, interactively, and is a demo
// consumer of the store exactly like the collector package — no part of
// the data model lives here.
package dashboard

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"al1905d/datamodel"
	"al1905d/version"
)

// keyMap defines the dashboard's key bindings.
type keyMap struct {
	Refresh key.Binding
	GC      key.Binding
	Up      key.Binding
	Down    key.Binding
	Quit    key.Binding
}

var keys = keyMap{
	Refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	GC:      key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "run gc now")),
	Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑", "scroll up")),
	Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓", "scroll down")),
	Quit:    key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
}

// tickMsg drives the periodic snapshot refresh.
type tickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// Model is the dashboard's single bubbletea screen.
type Model struct {
	store      *datamodel.Store
	systemName string
	logPath    string

	styles Styles
	width  int
	height int

	devices      []datamodel.DeviceSnapshot
	links        []datamodel.LinkSnapshot
	scrollOffset int
	gcRuns       int
	lastEvicted  int
}

// New builds a dashboard Model over store. logPath, if non-empty, is shown
// in the footer the way the teacher's neighbor table shows its CSV path.
func New(store *datamodel.Store, systemName, logPath string) Model {
	return Model{
		store:      store,
		systemName: systemName,
		logPath:    logPath,
		styles:     DefaultStyles,
	}
}

// Init starts the refresh tick and the alt-screen.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tickCmd(), tea.EnterAltScreen)
}

// Update handles bubbletea messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tickMsg:
		m.devices, m.links = m.store.Snapshot()
		return m, tickCmd()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Refresh):
			m.devices, m.links = m.store.Snapshot()
			m.scrollOffset = 0
			return m, tea.ClearScreen
		case key.Matches(msg, keys.GC):
			m.lastEvicted = m.store.RunGarbageCollector()
			m.gcRuns++
			m.devices, m.links = m.store.Snapshot()
			return m, nil
		case key.Matches(msg, keys.Up):
			if m.scrollOffset > 0 {
				m.scrollOffset--
			}
		case key.Matches(msg, keys.Down):
			maxScroll := len(m.devices) - m.visibleRows()
			if maxScroll < 0 {
				maxScroll = 0
			}
			if m.scrollOffset < maxScroll {
				m.scrollOffset++
			}
		}
	}

	return m, nil
}

func (m Model) visibleRows() int {
	available := m.height - 10
	if available < 1 {
		available = 1
	}
	return available
}

// View renders the header, device table, link table, and footer.
func (m Model) View() string {
	header := m.renderHeader()
	devices := m.renderDevices()
	links := m.renderLinks()
	footer := m.renderFooter()

	var b strings.Builder
	b.WriteString(header)
	b.WriteString("\n\n")
	b.WriteString(devices)
	b.WriteString("\n\n")
	b.WriteString(links)
	b.WriteString("\n\n")
	b.WriteString(footer)
	return b.String()
}

func (m Model) renderHeader() string {
	bg := DefaultTheme.Base01

	nameStyle := lipgloss.NewStyle().Foreground(DefaultTheme.Base0C).Background(bg).Bold(true)
	versionStyle := lipgloss.NewStyle().Foreground(DefaultTheme.Base03).Background(bg)
	left := nameStyle.Render("al1905d") + lipgloss.NewStyle().Background(bg).Render(" ") + versionStyle.Render("v"+version.Version)

	systemStyle := lipgloss.NewStyle().Foreground(DefaultTheme.Base0D).Background(bg).Bold(true)
	systemName := m.systemName
	if systemName == "" {
		systemName = "(unnamed)"
	}

	countStyle := lipgloss.NewStyle().Foreground(DefaultTheme.Base0B).Background(bg).Bold(true)
	labelStyle := lipgloss.NewStyle().Foreground(DefaultTheme.Base04).Background(bg)
	right := countStyle.Render(fmt.Sprintf("%d", len(m.devices))) + lipgloss.NewStyle().Background(bg).Render(" ") + labelStyle.Render("device(s)")

	top := renderBar(bg, left, right, m.width)
	bottom := renderBar(bg, systemStyle.Render(systemName), "", m.width)
	return top + "\n" + bottom
}

func (m Model) renderDevices() string {
	var b strings.Builder

	devices := append([]datamodel.DeviceSnapshot(nil), m.devices...)
	sort.Slice(devices, func(i, j int) bool { return devices[i].ALMAC.String() < devices[j].ALMAC.String() })

	header := []string{"AL MAC", "Slots", "Metrics", "Extensions", "Stale"}
	widths := []int{17, 6, 8, 10, 6}

	var headerCells []string
	for i, h := range header {
		headerCells = append(headerCells, truncate(h, widths[i]))
	}
	b.WriteString(m.styles.TableHeader.Render(strings.Join(headerCells, "  ")))
	b.WriteString("\n")

	if len(devices) == 0 {
		b.WriteString(m.styles.StatusListening.Render("  waiting for 1905 topology-discovery frames...\n"))
		return b.String()
	}

	visible := devices
	if m.scrollOffset > 0 && m.scrollOffset < len(visible) {
		visible = visible[m.scrollOffset:]
	}
	maxRows := m.visibleRows()
	if len(visible) > maxRows {
		visible = visible[:maxRows]
	}

	for _, d := range visible {
		style := m.styles.TableRow
		if d.NeedsUpdate {
			style = m.styles.TableRowStale
		}
		cells := []string{
			truncate(d.ALMAC.String(), widths[0]),
			truncate(fmt.Sprintf("%d", d.SlotCount), widths[1]),
			truncate(fmt.Sprintf("%d", d.MetricCount), widths[2]),
			truncate(fmt.Sprintf("%d", d.ExtensionCount), widths[3]),
			truncate(fmt.Sprintf("%t", d.NeedsUpdate), widths[4]),
		}
		b.WriteString(style.Render(strings.Join(cells, "  ")))
		b.WriteString("\n")
	}

	if len(devices) > maxRows {
		b.WriteString(m.styles.StatusInfo.Render(fmt.Sprintf("  [%d-%d of %d]\n", m.scrollOffset+1, m.scrollOffset+len(visible), len(devices))))
	}

	return b.String()
}

func (m Model) renderLinks() string {
	var b strings.Builder

	header := []string{"Local Iface", "Neighbor AL", "Neighbor Iface", "Bridged"}
	widths := []int{14, 17, 17, 8}

	var headerCells []string
	for i, h := range header {
		headerCells = append(headerCells, truncate(h, widths[i]))
	}
	b.WriteString(m.styles.TableHeader.Render(strings.Join(headerCells, "  ")))
	b.WriteString("\n")

	links := append([]datamodel.LinkSnapshot(nil), m.links...)
	if len(links) == 0 {
		b.WriteString(m.styles.StatusInfo.Render("  no neighbor links yet\n"))
		return b.String()
	}

	for _, l := range links {
		bridged := m.styles.StatusInfo.Render(truncate("false", widths[3]))
		if l.Bridged {
			bridged = m.styles.BadgeBridged.Render("BRIDGED")
		}
		cells := []string{
			truncate(l.LocalInterfaceName, widths[0]),
			truncate(l.NeighborALMAC.String(), widths[1]),
			truncate(l.NeighborInterfaceMAC.String(), widths[2]),
			bridged,
		}
		b.WriteString(m.styles.TableCell.Render(strings.Join(cells, "  ")))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) renderFooter() string {
	bg := DefaultTheme.Base01

	keyStyle := lipgloss.NewStyle().Foreground(DefaultTheme.Base0C).Background(bg).Bold(true)
	textStyle := lipgloss.NewStyle().Foreground(DefaultTheme.Base04).Background(bg)
	sepStyle := lipgloss.NewStyle().Foreground(DefaultTheme.Base02).Background(bg)
	sep := sepStyle.Render(" │ ")

	left := keyStyle.Render("r") + textStyle.Render(" refresh") + sep +
		keyStyle.Render("g") + textStyle.Render(fmt.Sprintf(" gc (evicted %d last run)", m.lastEvicted)) + sep +
		keyStyle.Render("↑/↓") + textStyle.Render(" scroll") + sep +
		keyStyle.Render("q") + textStyle.Render(" quit")

	var right string
	if m.logPath != "" {
		fileStyle := lipgloss.NewStyle().Foreground(DefaultTheme.Base0A).Background(bg)
		right = textStyle.Render("logging: ") + fileStyle.Render(m.logPath)
	}

	return renderBar(bg, left, right, m.width)
}
