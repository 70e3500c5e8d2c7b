package tui

// Interactive device monitor: a table of devices polled on a tick, with
// forms for adding devices and writing values.

import (
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/freedomikeppp/mitsubishi-fx5/internal/config"
	"github.com/freedomikeppp/mitsubishi-fx5/internal/fx5"
)

// ReadWriter is the slice of the client the monitor needs.
type ReadWriter interface {
	Read(addr string, ascii bool) (fx5.Value, error)
	Write(addr, value string, ascii bool) error
	Host() string
}

var _ ReadWriter = (*fx5.Client)(nil)

// row is one monitored device.
type row struct {
	cfg     config.DeviceConfig
	value   string
	rtt     time.Duration
	err     string
	updated time.Time
}

// Model is the monitor's bubbletea model.
type Model struct {
	client   ReadWriter
	styles   Styles
	interval time.Duration

	rows    []row
	cursor  int
	paused  bool
	polling bool
	status  string

	form       *huh.Form
	formValues *formValues
	formKind   formKind
}

type tickMsg time.Time

// pollResultMsg carries the outcome of one polling sweep.
type pollResultMsg []pollResult

type pollResult struct {
	value string
	rtt   time.Duration
	err   string
}

type clipboardMsg struct{ err error }

// NewModel creates a monitor for the given client and initial device list.
func NewModel(client ReadWriter, devices []config.DeviceConfig, interval time.Duration) *Model {
	rows := make([]row, len(devices))
	for i, d := range devices {
		rows[i] = row{cfg: d}
	}
	return &Model{
		client:   client,
		styles:   NewStyles(DefaultTheme),
		interval: interval,
		rows:     rows,
	}
}

// Run starts the monitor and blocks until it exits.
func Run(client ReadWriter, devices []config.DeviceConfig, interval time.Duration) error {
	_, err := tea.NewProgram(NewModel(client, devices, interval), tea.WithAltScreen()).Run()
	return err
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.tickCmd(), m.pollCmd())
}

func (m *Model) tickCmd() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// pollCmd reads every monitored device once. The client's own lock
// serializes these reads against anything else talking to the host.
func (m *Model) pollCmd() tea.Cmd {
	devices := make([]config.DeviceConfig, len(m.rows))
	for i, r := range m.rows {
		devices[i] = r.cfg
	}
	client := m.client
	return func() tea.Msg {
		results := make(pollResultMsg, len(devices))
		for i, d := range devices {
			start := time.Now()
			v, err := client.Read(d.Address, d.ASCII)
			results[i] = pollResult{rtt: time.Since(start)}
			if err != nil {
				results[i].err = err.Error()
			} else {
				results[i].value = v.String()
			}
		}
		return results
	}
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.form != nil {
		return m.updateForm(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.updateKey(msg)

	case tickMsg:
		if m.paused || m.polling || len(m.rows) == 0 {
			return m, m.tickCmd()
		}
		m.polling = true
		return m, tea.Batch(m.tickCmd(), m.pollCmd())

	case pollResultMsg:
		m.polling = false
		for i, res := range msg {
			if i >= len(m.rows) {
				break // a row was removed mid-poll
			}
			m.rows[i].value = res.value
			m.rows[i].rtt = res.rtt
			m.rows[i].err = res.err
			m.rows[i].updated = time.Now()
		}
		return m, nil

	case clipboardMsg:
		if msg.err != nil {
			m.status = "copy failed: " + msg.err.Error()
		} else {
			m.status = "value copied"
		}
		return m, nil
	}

	return m, nil
}

func (m *Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.rows)-1 {
			m.cursor++
		}
	case " ":
		m.paused = !m.paused
		if m.paused {
			m.status = "polling paused"
		} else {
			m.status = ""
		}
	case "a":
		return m.openAddForm()
	case "w":
		if len(m.rows) > 0 {
			return m.openWriteForm(m.rows[m.cursor].cfg)
		}
	case "x":
		if len(m.rows) > 0 {
			m.rows = append(m.rows[:m.cursor], m.rows[m.cursor+1:]...)
			if m.cursor >= len(m.rows) && m.cursor > 0 {
				m.cursor--
			}
		}
	case "c":
		if len(m.rows) > 0 {
			value := m.rows[m.cursor].value
			return m, func() tea.Msg {
				return clipboardMsg{err: clipboard.WriteAll(value)}
			}
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.form != nil {
		return m.form.View()
	}

	s := m.styles
	out := s.Title.Render("fx5ctl monitor  "+m.client.Host()) + "\n\n"
	out += s.Header.Render(fmt.Sprintf("  %-10s %-14s %-9s %s", "DEVICE", "VALUE", "RTT", "LABEL")) + "\n"

	for i, r := range m.rows {
		cursor := "  "
		rowStyle := s.Row
		if i == m.cursor {
			cursor = "> "
			rowStyle = s.Selected
		}

		value := r.value
		valStyle := s.Value
		if r.err != "" {
			value = r.err
			valStyle = s.Error
		}

		rtt := ""
		if r.rtt > 0 {
			rtt = fmt.Sprintf("%.1fms", float64(r.rtt.Microseconds())/1000)
		}

		out += cursor +
			rowStyle.Render(fmt.Sprintf("%-10s ", r.cfg.Address)) +
			valStyle.Render(fmt.Sprintf("%-14s ", value)) +
			s.Dim.Render(fmt.Sprintf("%-9s %s", rtt, r.cfg.Label)) + "\n"
	}
	if len(m.rows) == 0 {
		out += s.Dim.Render("  no devices; press a to add one") + "\n"
	}

	out += "\n"
	if m.status != "" {
		out += s.Status.Render(m.status) + "\n"
	}
	out += s.KeyHint.Render("a add  w write  x remove  c copy  space pause  q quit")
	return out
}
