package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/scorecraft/scorecraft"
	"github.com/scorecraft/scorecraft/frontend"
)

// row is one line of the template or instrument list.
type row struct {
	label    string
	header   bool
	expanded bool
	chosen   bool
	enabled  bool
	activate func()
}

func (m Model) templateRows() []row {
	tm := m.m.Template()
	var rows []row
	for _, group := range tm.Groups() {
		if group == scorecraft.GeneralGroup {
			expanded := tm.Expanded()
			rows = append(rows, row{label: group, header: true, expanded: expanded.Value(), enabled: expanded.Enabled(), activate: func() {
				if expanded.Enabled() {
					expanded.Toggle()
				}
			}})
			if !expanded.Value() {
				continue
			}
		} else {
			rows = append(rows, row{label: group, header: true, expanded: true, activate: func() {}})
		}
		for _, t := range tm.Options(group) {
			choose := tm.Choose(t.Name)
			rows = append(rows, row{label: t.Name, chosen: t.Name == tm.Chosen(), enabled: choose.Enabled(), activate: choose.Do})
		}
	}
	return rows
}

func (m Model) instrumentRows() []row {
	im := m.m.Instruments()
	searching := strings.TrimSpace(im.Search().Value()) != ""
	var rows []row
	for _, family := range im.VisibleFamilies() {
		expanded := im.Expanded(family)
		rows = append(rows, row{label: family, header: true, expanded: expanded.Value(), enabled: expanded.Enabled(), activate: func() {
			if expanded.Enabled() {
				expanded.Toggle()
			}
		}})
		if !expanded.Value() && !searching {
			continue
		}
		for _, name := range im.Visible(family) {
			sel := im.Select(name)
			rows = append(rows, row{label: name, enabled: sel.Enabled(), activate: sel.Do})
		}
	}
	return rows
}

func (m Model) viewRows(rows []row) string {
	var b strings.Builder
	for i, r := range rows {
		line := "  " + r.label
		if r.header {
			chevron := "▸"
			if r.expanded {
				chevron = "▾"
			}
			line = chevron + " " + r.label
		}
		switch {
		case i == m.cursor:
			line = cursorStyle.Render(line)
		case r.header:
			line = subtitleStyle.Render(line)
		case r.chosen:
			line = chosenStyle.Render(line + " ✓")
		case !r.enabled:
			line = dimStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) viewLanding() string {
	var b strings.Builder
	b.WriteString(subtitleStyle.Render("Start a new score or open an existing one"))
	b.WriteString("\n\n")
	b.WriteString(button("Create Score (c)", m.m.Wizard().Create(), buttonStyle))
	b.WriteString("  ")
	b.WriteString(button("Open Score (o)", m.m.Wizard().OpenScore(), buttonStyle))
	b.WriteString("\n")
	return b.String()
}

func (m Model) viewWizard() string {
	w := m.m.Wizard()
	step := w.Step()
	var b strings.Builder
	b.WriteString(subtitleStyle.Render(step.String()))
	b.WriteString(dimStyle.Render(fmt.Sprintf("  step %d of %d", int(step), int(frontend.NumSteps)-1)))
	b.WriteString("\n\n")
	switch step {
	case frontend.StepInfo:
		for _, f := range m.fields {
			b.WriteString(f.View())
			b.WriteString("\n")
		}
	case frontend.StepTemplate:
		b.WriteString(m.viewRows(m.templateRows()))
	case frontend.StepInstruments:
		b.WriteString(m.search.View())
		b.WriteString("\n\n")
		rows := m.instrumentRows()
		if len(rows) == 0 {
			b.WriteString(dimStyle.Render("No instruments match the search"))
			b.WriteString("\n")
		}
		b.WriteString(m.viewRows(rows))
		b.WriteString("\n")
		b.WriteString(m.viewTray())
		b.WriteString("\n")
		b.WriteString(button("Choose Key Signature (ctrl+k)", w.ChooseKeySignature(), buttonStyle))
		b.WriteString("\n")
	case frontend.StepKeySignature:
		sig := m.m.Key().Signature()
		b.WriteString(fmt.Sprintf("◂ %s ▸\n", chosenStyle.Render(sig.String())))
		b.WriteString(dimStyle.Render(fmt.Sprintf("%s, relative %s", sig.Accidentals(), sig.Relative())))
		b.WriteString("\n")
		minor := "[ ]"
		if m.m.Key().Minor().Value() {
			minor = "[×]"
		}
		b.WriteString(fmt.Sprintf("%s Minor (m)\n", minor))
	}
	b.WriteString("\n")
	b.WriteString(button("Back", w.Back(), buttonStyle))
	b.WriteString(" ")
	b.WriteString(button("Cancel", w.Cancel(), cancelButtonStyle))
	b.WriteString(" ")
	b.WriteString(button("Finish", w.Finish(), buttonStyle))
	b.WriteString(" ")
	b.WriteString(button("Next", w.Next(), buttonStyle))
	return b.String()
}

func (m Model) viewTray() string {
	im := m.m.Instruments()
	selected := im.Selected()
	if len(selected) == 0 {
		return dimStyle.Render("No instruments selected")
	}
	cursor := im.Tray().Selected()
	chips := make([]string, len(selected))
	for i, name := range selected {
		if i == cursor {
			chips[i] = cursorStyle.Padding(0, 1).Render(name + " ×")
			continue
		}
		chips[i] = chipStyle.Render(name + " ×")
	}
	return strings.Join(chips, " ")
}

func (m Model) viewAlerts() string {
	var b strings.Builder
	for a := range m.m.Alerts().Iterate() {
		style, prefix := infoStyle, "›"
		switch a.Priority {
		case frontend.Warning:
			style, prefix = warningStyle, "!"
		case frontend.Error:
			style, prefix = errorStyle, "✗"
		}
		b.WriteString(style.Render(prefix + " " + a.Message))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) helpText() string {
	switch m.m.Wizard().Step() {
	case frontend.StepCreate:
		return "c: create score • q: quit"
	case frontend.StepInfo:
		return "tab: next field • enter/ctrl+n: next step • esc: cancel"
	case frontend.StepTemplate:
		return "↑/↓: move • enter: choose • ctrl+b: back • esc: cancel"
	case frontend.StepInstruments:
		return "type to search • ↑/↓: move • enter: add • ←/→: tray • del: remove • ctrl+b: back • esc: cancel"
	case frontend.StepKeySignature:
		return "←/→: key • m: minor • ctrl+b: back • esc: cancel"
	}
	return ""
}

func button(text string, action frontend.Action, style lipgloss.Style) string {
	if !action.Enabled() {
		return disabledButtonStyle.Render(text)
	}
	return style.Render(text)
}
