// Package tui provides a Bubble Tea viewer for the timesheet: a tabbed
// summary of the sheet, its sessions, and a flat event timeline. With
// follow enabled the view reloads whenever the store file changes.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/fakeyudi/trk/internal/store"
	"github.com/fakeyudi/trk/internal/timesheet"
)

// ── Styles ────────────

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("62")).
			Padding(0, 2)

	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("62")).
			Padding(0, 1)

	inactiveTabStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("245")).
				Background(lipgloss.Color("235")).
				Padding(0, 1)

	tabSepStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("238")).
			Background(lipgloss.Color("235"))

	sectionHeader = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("86"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("33")).
			Bold(true)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	timeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("178"))

	statusBarStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("235")).
			Foreground(lipgloss.Color("245")).
			Padding(0, 1)

	kindPauseStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	kindResumeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("82")).Bold(true)
	kindNoteStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true)
	kindCommitStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)

	runningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	closedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// ── Tab definitions ─────────────────

type tabID int

const (
	tabSummary tabID = iota
	tabSessions
	tabTimeline
	tabCount
)

var tabNames = [tabCount]string{"Summary", "Sessions", "Timeline"}

// ── Messages ────────────────────────

// reloadMsg arrives when the watched store file changed.
type reloadMsg struct{}

// watchErrMsg carries a watcher failure; follow mode degrades to static.
type watchErrMsg struct{ err error }

// ── Model ────────────────────

// Model is the root Bubble Tea model for the TUI.
type Model struct {
	sheet     *timesheet.Timesheet
	st        store.Store
	watcher   *store.Watcher
	activeTab tabID
	viewports [tabCount]viewport.Model
	width     int
	height    int
	ready     bool
	reloads   int
	watchErr  error
}

// New creates a TUI model over the given sheet. watcher may be nil.
func New(sheet *timesheet.Timesheet, st store.Store, watcher *store.Watcher) Model {
	return Model{sheet: sheet, st: st, watcher: watcher}
}

// waitForChange blocks on the watcher until the store file changes.
func waitForChange(w *store.Watcher) tea.Cmd {
	return func() tea.Msg {
		select {
		case <-w.Events:
			return reloadMsg{}
		case err := <-w.Errors:
			return watchErrMsg{err: err}
		}
	}
}

// ── Bubble Tea interface ───────────────

func (m Model) Init() tea.Cmd {
	if m.watcher != nil {
		return waitForChange(m.watcher)
	}
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "tab", "l", "right":
			m.activeTab = (m.activeTab + 1) % tabCount
		case "shift+tab", "h", "left":
			m.activeTab = (m.activeTab - 1 + tabCount) % tabCount
		case "1", "2", "3":
			m.activeTab = tabID(msg.String()[0] - '1')
		case "r":
			return m, m.reload()
		}
		var cmd tea.Cmd
		m.viewports[m.activeTab], cmd = m.viewports[m.activeTab].Update(msg)
		return m, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.initViewports()
		return m, nil

	case reloadMsg:
		cmd := m.reload()
		if m.watcher != nil {
			return m, tea.Batch(cmd, waitForChange(m.watcher))
		}
		return m, cmd

	case watchErrMsg:
		m.watchErr = msg.err
		return m, nil
	}
	return m, nil
}

// reload re-reads the sheet from the store and rebuilds all tabs.
func (m *Model) reload() tea.Cmd {
	sheet, err := m.st.Load()
	if err != nil {
		return nil
	}
	m.sheet = sheet
	m.reloads++
	if m.ready {
		m.initViewports()
	}
	return nil
}

func (m Model) View() string {
	if !m.ready {
		return "Loading…"
	}

	title := titleStyle.Width(m.width).Render("  trk  timesheet for " + m.sheet.User)

	var tabParts []string
	for i := tabID(0); i < tabCount; i++ {
		label := fmt.Sprintf(" %d %s ", i+1, tabNames[i])
		if i == m.activeTab {
			tabParts = append(tabParts, activeTabStyle.Render(label))
		} else {
			tabParts = append(tabParts, inactiveTabStyle.Render(label))
		}
		if i < tabCount-1 {
			tabParts = append(tabParts, tabSepStyle.Render("│"))
		}
	}
	tabRow := lipgloss.NewStyle().
		Background(lipgloss.Color("235")).
		Width(m.width).
		Render(lipgloss.JoinHorizontal(lipgloss.Top, tabParts...))

	content := m.viewports[m.activeTab].View()

	hint := "  ←/→ tab  ↑/↓ scroll  1-3 jump  r reload  q quit"
	if m.watcher != nil {
		hint += "  (following)"
	}
	if m.watchErr != nil {
		hint += "  watch error"
	}
	pct := fmt.Sprintf("%3.0f%%", m.viewports[m.activeTab].ScrollPercent()*100)
	pad := m.width - lipgloss.Width(hint) - len(pct) - 2
	if pad < 1 {
		pad = 1
	}
	statusBar := statusBarStyle.Width(m.width).Render(
		hint + strings.Repeat(" ", pad) + pct,
	)

	return lipgloss.JoinVertical(lipgloss.Left, title, tabRow, content, statusBar)
}

// ── Viewport management ───────────────────────────────────────────────────────

func (m *Model) initViewports() {
	// title(1) + tabRow(1) + statusBar(1) = 3 fixed rows
	vpHeight := m.height - 3
	if vpHeight < 1 {
		vpHeight = 1
	}
	for i := tabID(0); i < tabCount; i++ {
		vp := viewport.New(m.width, vpHeight)
		vp.SetContent(m.renderTab(i))
		m.viewports[i] = vp
	}
}

// ── Tab renderers ─────────────────────────────────────────────────────────────

func (m *Model) renderTab(t tabID) string {
	switch t {
	case tabSummary:
		return m.renderSummary()
	case tabSessions:
		return m.renderSessions()
	case tabTimeline:
		return m.renderTimeline()
	}
	return ""
}

func heading(s string) string {
	return "\n" + sectionHeader.Render("  "+s) + "\n\n"
}

func (m *Model) renderSummary() string {
	var sb strings.Builder
	sb.WriteString(heading("Timesheet Summary"))

	row := func(label, value string) {
		sb.WriteString(labelStyle.Render(fmt.Sprintf("  %-14s", label)) + "  " + value + "\n")
	}
	row("Owner:", m.sheet.User)
	if m.sheet.Repo != "" {
		row("Repository:", m.sheet.Repo)
	}
	row("Started:", timesheet.FormatDate(m.sheet.Start))
	row("Sessions:", fmt.Sprintf("%d", len(m.sheet.Sessions)))
	row("Worked:", timesheet.FormatDuration(m.sheet.WorkingTime()))
	row("Paused:", timesheet.FormatDuration(m.sheet.PauseTime()))

	if last := m.sheet.LastSession(); last != nil && last.Running {
		sb.WriteString("\n")
		sb.WriteString(heading("Current Session"))
		row("Started:", timesheet.FormatDate(last.Start))
		if last.IsPaused() {
			row("State:", kindPauseStyle.Render("paused"))
		} else {
			row("State:", runningStyle.Render("running"))
		}
		row("Events:", fmt.Sprintf("%d", len(last.Events)))
	}
	return sb.String()
}

func (m *Model) renderSessions() string {
	var sb strings.Builder
	sb.WriteString(heading(fmt.Sprintf("Sessions (%d)", len(m.sheet.Sessions))))
	if len(m.sheet.Sessions) == 0 {
		sb.WriteString(dimStyle.Render("  (none)") + "\n")
		return sb.String()
	}
	for i := range m.sheet.Sessions {
		s := &m.sheet.Sessions[i]
		state := closedStyle.Render("closed")
		if s.Running {
			state = runningStyle.Render("running")
		}
		sb.WriteString(fmt.Sprintf("  %s — %s  %s\n",
			timeStyle.Render(timesheet.FormatDate(s.Start)),
			timeStyle.Render(timesheet.FormatDate(s.End)),
			state,
		))
		sb.WriteString(fmt.Sprintf("      worked %s, paused %s, %d events\n",
			timesheet.FormatDuration(s.WorkingTime()),
			timesheet.FormatDuration(s.PauseTime()),
			len(s.Events),
		))
		if len(s.Branches) > 0 {
			sb.WriteString(dimStyle.Render("      branches: "+strings.Join(s.Branches, " ")) + "\n")
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func kindBadge(e timesheet.Event) string {
	label := "[" + strings.ToUpper(e.Label()) + "]"
	switch e.Kind {
	case timesheet.KindPause:
		return kindPauseStyle.Render(label)
	case timesheet.KindResume:
		return kindResumeStyle.Render(label)
	case timesheet.KindNote:
		return kindNoteStyle.Render(label)
	case timesheet.KindCommit:
		return kindCommitStyle.Render(label)
	}
	return label
}

func (m *Model) renderTimeline() string {
	var sb strings.Builder
	var total int
	for i := range m.sheet.Sessions {
		total += len(m.sheet.Sessions[i].Events)
	}
	sb.WriteString(heading(fmt.Sprintf("Timeline (%d events)", total)))
	if total == 0 {
		sb.WriteString(dimStyle.Render("  (none)") + "\n")
		return sb.String()
	}
	for i := range m.sheet.Sessions {
		s := &m.sheet.Sessions[i]
		sb.WriteString(dimStyle.Render("  ── session "+timesheet.FormatDate(s.Start)+" ──") + "\n")
		for _, e := range s.Events {
			ts := timeStyle.Render(time.Unix(e.Timestamp, 0).Format("15:04:05"))
			text := e.Note
			if e.Kind == timesheet.KindCommit {
				text = e.Hash
				if e.Note != "" {
					text += "  " + e.Note
				}
			}
			sb.WriteString(fmt.Sprintf("  %s  %s  %s\n", ts, kindBadge(e), text))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// Run starts the TUI over the stored timesheet. With follow enabled the
// view reloads whenever another trk process saves the sheet.
func Run(st store.Store, follow bool) error {
	sheet, err := st.Load()
	if err != nil {
		return err
	}

	var watcher *store.Watcher
	if follow {
		watcher, err = store.Watch(st)
		if err != nil {
			return err
		}
		defer watcher.Close()
	}

	p := tea.NewProgram(New(sheet, st, watcher), tea.WithAltScreen())
	_, err = p.Run()
	return err
}
