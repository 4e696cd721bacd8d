// Package tui provides a Bubble Tea terminal user interface for the new score
// wizard. It drives the same frontend.Model as the Gio window.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/scorecraft/scorecraft"
	"github.com/scorecraft/scorecraft/frontend"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#4285F4")).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#80DEEA"))

	cursorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#4285F4"))

	chosenStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#95E1A3"))

	chipStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#DEDEDE")).
			Background(lipgloss.Color("#37373D")).
			Padding(0, 1)

	buttonStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#4285F4")).
			Padding(0, 1)

	cancelButtonStyle = buttonStyle.
				Background(lipgloss.Color("#CF6679"))

	disabledButtonStyle = buttonStyle.
				Foreground(lipgloss.Color("#8A8A8A")).
				Background(lipgloss.Color("#3A3A3C"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFE66D"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A8DADC"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#4285F4")).
			Padding(1, 2)
)

const alertTick = 100 * time.Millisecond

// Model is the Bubble Tea model of the wizard.
type Model struct {
	m     *frontend.Model
	title *scorecraft.TitleTemplate

	fields []textinput.Model
	field  int
	search textinput.Model

	// cursor is the highlighted row of the template and instrument lists.
	cursor int
	step   frontend.Step

	ticking bool
	width   int
}

type alertTickMsg time.Time

// New creates the terminal wizard on top of model. The title template renders
// the header; nil selects the default template.
func New(model *frontend.Model, title *scorecraft.TitleTemplate) Model {
	if title == nil {
		title = scorecraft.MustParseTitleTemplate("")
	}
	ret := Model{m: model, title: title, step: model.Wizard().Step()}
	ret.ticking = model.Alerts().Count() > 0
	for _, f := range model.Info().Fields() {
		ti := textinput.New()
		ti.Placeholder = f.Label
		ti.Prompt = fmt.Sprintf("%-10s ", f.Label)
		ti.CharLimit = 200
		ti.Width = 48
		ret.fields = append(ret.fields, ti)
	}
	ret.search = textinput.New()
	ret.search.Placeholder = "Search instruments"
	ret.search.Prompt = "/ "
	ret.search.Width = 40
	return ret
}

// Frontend returns the wizard state driven by the terminal UI.
func (m Model) Frontend() *frontend.Model { return m.m }

func (m Model) Init() tea.Cmd {
	if m.ticking {
		return tea.Batch(textinput.Blink, tickAlerts())
	}
	return textinput.Blink
}

func tickAlerts() tea.Cmd {
	return tea.Tick(alertTick, func(t time.Time) tea.Msg { return alertTickMsg(t) })
}

// scheduleTick starts aging the alerts unless they are already being aged.
func (m *Model) scheduleTick() tea.Cmd {
	if m.ticking || m.m.Alerts().Count() == 0 {
		return nil
	}
	m.ticking = true
	return tickAlerts()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case alertTickMsg:
		m.ticking = false
		m.m.Alerts().Update(alertTick)
		return m, m.scheduleTick()

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		var cmd tea.Cmd
		var handled bool
		if m.m.Wizard().Visible() {
			m, cmd, handled = m.updateWizard(msg)
		} else {
			m, cmd, handled = m.updateLanding(msg)
		}
		cmds = append(cmds, cmd)
		if handled {
			return m.sync(cmds...)
		}
	}
	switch m.m.Wizard().Step() {
	case frontend.StepInfo:
		var cmd tea.Cmd
		m.fields[m.field], cmd = m.fields[m.field].Update(msg)
		m.m.Info().Fields()[m.field].Value.SetValue(m.fields[m.field].Value())
		cmds = append(cmds, cmd)
	case frontend.StepInstruments:
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		if m.m.Instruments().Search().SetValue(m.search.Value()) {
			m.cursor = 0
		}
		cmds = append(cmds, cmd)
	}
	return m.sync(cmds...)
}

func (m Model) updateLanding(msg tea.KeyMsg) (Model, tea.Cmd, bool) {
	switch msg.String() {
	case "c", "enter":
		m.m.Wizard().Create().Do()
	case "o":
		m.m.Wizard().OpenScore().Do()
	case "q", "esc":
		return m, tea.Quit, true
	}
	return m, nil, true
}

func (m Model) updateWizard(msg tea.KeyMsg) (Model, tea.Cmd, bool) {
	w := m.m.Wizard()
	switch msg.String() {
	case "esc":
		w.Cancel().Do()
		return m, nil, true
	case "ctrl+b":
		w.Back().Do()
		return m, nil, true
	case "ctrl+n":
		w.Next().Do()
		return m, nil, true
	case "ctrl+f":
		w.Finish().Do()
		return m, nil, true
	}
	switch w.Step() {
	case frontend.StepInfo:
		return m.updateInfo(msg)
	case frontend.StepTemplate:
		return m.updateRows(msg, m.templateRows())
	case frontend.StepInstruments:
		return m.updateInstruments(msg)
	case frontend.StepKeySignature:
		return m.updateKey(msg)
	}
	return m, nil, false
}

func (m Model) updateInfo(msg tea.KeyMsg) (Model, tea.Cmd, bool) {
	switch msg.String() {
	case "tab", "down":
		return m, m.focusField(m.field + 1), true
	case "shift+tab", "up":
		return m, m.focusField(m.field - 1), true
	case "enter":
		if m.field == len(m.fields)-1 {
			m.m.Wizard().Next().Do()
			return m, nil, true
		}
		return m, m.focusField(m.field + 1), true
	}
	return m, nil, false
}

func (m *Model) focusField(i int) tea.Cmd {
	i = (i + len(m.fields)) % len(m.fields)
	m.fields[m.field].Blur()
	m.field = i
	return m.fields[i].Focus()
}

func (m Model) updateInstruments(msg tea.KeyMsg) (Model, tea.Cmd, bool) {
	im := m.m.Instruments()
	tray := im.Tray()
	switch msg.String() {
	case "left":
		tray.SetSelected(tray.Selected() - 1)
		return m, nil, true
	case "right":
		tray.SetSelected(tray.Selected() + 1)
		return m, nil, true
	case "delete", "ctrl+d":
		im.Remove(im.TrayName()).Do()
		return m, nil, true
	case "ctrl+k":
		m.m.Wizard().ChooseKeySignature().Do()
		return m, nil, true
	}
	return m.updateRows(msg, m.instrumentRows())
}

func (m Model) updateRows(msg tea.KeyMsg, rows []row) (Model, tea.Cmd, bool) {
	switch msg.String() {
	case "up":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil, true
	case "down":
		if m.cursor < len(rows)-1 {
			m.cursor++
		}
		return m, nil, true
	case "enter":
		if m.cursor < len(rows) {
			rows[m.cursor].activate()
		}
		return m, nil, true
	}
	return m, nil, false
}

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd, bool) {
	km := m.m.Key()
	switch msg.String() {
	case "left", "-":
		km.Shift(-1).Do()
	case "right", "+":
		km.Shift(1).Do()
	case "m":
		if km.Minor().Enabled() {
			km.Minor().Toggle()
		}
	default:
		return m, nil, false
	}
	return m, nil, true
}

// sync copies the model into the text inputs after a step change or a reset,
// so the inputs never show stale drafts.
func (m Model) sync(cmds ...tea.Cmd) (tea.Model, tea.Cmd) {
	step := m.m.Wizard().Step()
	for i, f := range m.m.Info().Fields() {
		if m.fields[i].Value() != f.Value.Value() {
			m.fields[i].SetValue(f.Value.Value())
		}
	}
	if v := m.m.Instruments().Search().Value(); m.search.Value() != v {
		m.search.SetValue(v)
	}
	if step != m.step {
		m.step = step
		m.cursor = 0
		m.fields[m.field].Blur()
		m.search.Blur()
		switch step {
		case frontend.StepInfo:
			m.field = 0
			cmds = append(cmds, m.fields[0].Focus())
		case frontend.StepInstruments:
			cmds = append(cmds, m.search.Focus())
		}
	}
	cmds = append(cmds, m.scheduleTick())
	return m, tea.Batch(cmds...)
}

// Run starts the terminal wizard and blocks until the user quits.
func Run(model *frontend.Model, title *scorecraft.TitleTemplate) error {
	p := tea.NewProgram(New(model, title), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m Model) header() string {
	s, err := m.title.Render(m.m.Wizard().Setup())
	if err != nil {
		return "ScoreCraft"
	}
	return s
}

// View renders the landing screen, or the wizard sheet when it is open.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.header()))
	b.WriteString("\n")
	if m.m.Wizard().Visible() {
		b.WriteString(boxStyle.Render(m.viewWizard()))
	} else {
		b.WriteString(m.viewLanding())
	}
	b.WriteString("\n")
	b.WriteString(m.viewAlerts())
	b.WriteString(dimStyle.Render(m.helpText()))
	return b.String()
}
