package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/chantcounter/internal/calendar"
	"github.com/alexanderramin/chantcounter/internal/cli/formatter"
	"github.com/alexanderramin/chantcounter/internal/contract"
	"github.com/alexanderramin/chantcounter/internal/domain"
	"github.com/alexanderramin/chantcounter/internal/notify"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const maxToasts = 3

type toastMsg struct{ n notify.Notification }

type snapshotMsg struct {
	status    *contract.TodayStatus
	stats     *contract.StatsResponse
	log       domain.DailyLog
	target    domain.Target
	installed bool
	err       error
}

type recordedMsg struct {
	res *contract.RecordResult
	err error
}

type resetMsg struct {
	res *contract.ResetResult
	err error
}

type errMsg struct{ err error }

type dashboardModel struct {
	ctx   context.Context
	app   *App
	keys  dashboardKeys
	help  help.Model
	input textinput.Model

	width  int
	class  domain.DeviceClass
	view   calendar.ViewState
	placed bool

	status    *contract.TodayStatus
	stats     *contract.StatsResponse
	log       domain.DailyLog
	target    domain.Target
	installed bool

	toasts          []notify.Notification
	confirmingReset bool
	err             error
}

func newDashboardModel(ctx context.Context, app *App) *dashboardModel {
	ti := textinput.New()
	ti.Prompt = "Add chants › "
	ti.Placeholder = strconv.Itoa(domain.DefaultDailyTarget)
	ti.CharLimit = len(strconv.Itoa(domain.MaxDelta))
	ti.Validate = func(s string) error {
		for _, r := range s {
			if r < '0' || r > '9' {
				return fmt.Errorf("digits only")
			}
		}
		return nil
	}
	ti.Focus()

	width := app.terminalWidth()
	m := &dashboardModel{
		ctx:    ctx,
		app:    app,
		keys:   newDashboardKeys(),
		help:   help.New(),
		input:  ti,
		width:  width,
		class:  app.deviceClass(width),
		log:    domain.DailyLog{},
		target: domain.DefaultTarget(),
	}
	m.view = calendar.Initial(app.now(), m.class)
	return m
}

func (m *dashboardModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.load())
}

func (m *dashboardModel) load() tea.Cmd {
	return func() tea.Msg {
		var msg snapshotMsg
		now := m.app.now()
		if msg.status, msg.err = m.app.Progress.Today(m.ctx, now); msg.err != nil {
			return msg
		}
		if msg.stats, msg.err = m.app.Progress.Stats(m.ctx, now); msg.err != nil {
			return msg
		}
		if msg.log, msg.err = m.app.Progress.Log(m.ctx); msg.err != nil {
			return msg
		}
		msg.target = msg.stats.Target
		if m.app.Install != nil {
			msg.installed, msg.err = m.app.Install.Accepted(m.ctx)
		}
		return msg
	}
}

func (m *dashboardModel) record(n int) tea.Cmd {
	return func() tea.Msg {
		res, err := m.app.Progress.RecordCount(m.ctx, "", n)
		return recordedMsg{res: res, err: err}
	}
}

func (m *dashboardModel) reset() tea.Cmd {
	return func() tea.Msg {
		res, err := m.app.Progress.ResetDate(m.ctx, "")
		return resetMsg{res: res, err: err}
	}
}

func (m *dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width)
		m.help.Width = msg.Width
		return m, nil

	case snapshotMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.status, m.stats, m.log, m.target, m.installed = msg.status, msg.stats, msg.log, msg.target, msg.installed
		return m, nil

	case recordedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.input.Reset()
		return m, m.load()

	case resetMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		return m, m.load()

	case toastMsg:
		m.toasts = append(m.toasts, msg.n)
		if len(m.toasts) > maxToasts {
			m.toasts = m.toasts[len(m.toasts)-maxToasts:]
		}
		return m, nil

	case errMsg:
		m.err = msg.err
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *dashboardModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.confirmingReset {
		switch {
		case key.Matches(msg, m.keys.Confirm):
			m.confirmingReset = false
			return m, m.reset()
		case key.Matches(msg, m.keys.Cancel):
			m.confirmingReset = false
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Prev):
		m.view = m.view.Prev(m.class)
		return m, nil
	case key.Matches(msg, m.keys.Next):
		m.view = m.view.Next(m.class)
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Reset):
		m.confirmingReset = true
		return m, nil
	case key.Matches(msg, m.keys.Test):
		return m, m.sendTest()
	case key.Matches(msg, m.keys.Add):
		return m, m.submit()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *dashboardModel) submit() tea.Cmd {
	raw := strings.TrimSpace(m.input.Value())
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		m.err = fmt.Errorf("enter a number of chants greater than zero")
		return nil
	}
	return m.record(n)
}

func (m *dashboardModel) sendTest() tea.Cmd {
	if m.app.Permission != nil && !m.app.Permission() {
		m.err = fmt.Errorf("notifications are disabled")
		return nil
	}
	notifier := m.app.notifier()
	ctx := m.ctx
	return func() tea.Msg {
		notifier.Notify(ctx, notify.Test())
		return nil
	}
}

// resize reclassifies the viewport; switching to the wide layout realigns
// the calendar page.
func (m *dashboardModel) resize(width int) {
	class := m.app.deviceClass(width)
	m.width = width
	m.view = m.view.Resize(m.class, class)
	m.class = class
}

func (m *dashboardModel) View() string {
	var sections []string

	title := formatter.StyleHeader.Render("CHANT COUNTER") + formatter.Dim(" · "+m.app.now().Format("Monday, January 2, 2006"))
	sections = append(sections, title)

	if m.status != nil {
		sections = append(sections, formatter.FormatToday(m.status))
	}
	sections = append(sections, m.input.View())

	g := calendar.Build(m.view.Request(m.class, m.log, m.app.today(), m.target.Daily))
	sections = append(sections, formatter.FormatCalendar(g))

	if m.stats != nil {
		sections = append(sections, fmt.Sprintf("%s %s   %s %s   %s %s",
			formatter.Dim("Total"), formatter.Count(m.stats.TotalCount),
			formatter.Dim("Days at target"), formatter.Count(m.stats.DaysAtOrAboveTarget),
			formatter.Dim("Completion"), formatter.PercentStyle(m.stats.CompletionRate).Render(fmt.Sprintf("%d%%", m.stats.CompletionRate))))
	}

	if len(m.toasts) > 0 {
		toasts := make([]string, 0, len(m.toasts))
		for _, n := range m.toasts {
			toasts = append(toasts, formatter.FormatNotification(n))
		}
		sections = append(sections, lipgloss.JoinVertical(lipgloss.Left, toasts...))
	}

	if m.confirmingReset {
		sections = append(sections, formatter.StyleYellow.Render("Reset today's progress? (y/n)"))
	}
	if m.err != nil {
		sections = append(sections, formatter.StyleRed.Render(m.err.Error()))
	}
	if !m.installed {
		sections = append(sections, formatter.Dim("Tip: run `chant install` for shell completion."))
	}

	sections = append(sections, m.help.View(m.keys))
	return strings.Join(sections, "\n\n")
}
