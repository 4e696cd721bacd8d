package frontend

import (
	"slices"
	"strings"

	"github.com/scorecraft/scorecraft"
	"go.uber.org/zap"
)

// Instruments returns the Instruments view of the model, containing the
// instrument picker and the tray of selected instruments.
func (m *Model) Instruments() *InstrumentsModel { return (*InstrumentsModel)(m) }

type InstrumentsModel Model

func (m *InstrumentsModel) picking() bool { return m.d.Step == StepInstruments }

// Families returns the families of the catalog. The result must not be
// modified.
func (m *InstrumentsModel) Families() []scorecraft.Family { return m.catalog.Families }

// VisibleFamilies returns the names of the families that have at least one
// instrument matching the search. With an empty search, all families are
// visible, even empty ones.
func (m *InstrumentsModel) VisibleFamilies() []string {
	ret := make([]string, 0, len(m.catalog.Families))
	for _, f := range m.catalog.Families {
		if strings.TrimSpace(m.d.Search) == "" || len(m.Visible(f.Name)) > 0 {
			ret = append(ret, f.Name)
		}
	}
	return ret
}

// Visible returns the instruments of a family that match the search, in
// catalog order. Matching is a case-insensitive substring match.
func (m *InstrumentsModel) Visible(family string) []string {
	f, ok := m.catalog.Family(family)
	if !ok {
		return nil
	}
	query := strings.TrimSpace(m.d.Search)
	if query == "" {
		return f.Instruments
	}
	query = m.fold.String(query)
	var ret []string
	for _, name := range f.Instruments {
		if strings.Contains(m.fold.String(name), query) {
			ret = append(ret, name)
		}
	}
	return ret
}

// Search returns a String filtering the instruments shown in the picker.
func (m *InstrumentsModel) Search() String { return MakeString((*instrumentSearch)(m)) }

type instrumentSearch InstrumentsModel

func (v *instrumentSearch) Value() string { return v.d.Search }
func (v *instrumentSearch) SetValue(value string) bool {
	if !(*InstrumentsModel)(v).picking() {
		return false
	}
	v.d.Search = value
	return true
}

// Expanded returns a Bool telling if a family group is unfolded in the picker.
// All groups start folded.
func (m *InstrumentsModel) Expanded(family string) Bool {
	return MakeBool(familyExpanded{Family: family, Model: (*Model)(m)})
}

type familyExpanded struct {
	Family string
	*Model
}

func (v familyExpanded) Value() bool { return v.d.Expanded[v.Family] }
func (v familyExpanded) SetValue(value bool) {
	if v.d.Expanded == nil {
		v.d.Expanded = map[string]bool{}
	}
	v.d.Expanded[v.Family] = value
}
func (v familyExpanded) Enabled() bool {
	_, ok := v.catalog.Family(v.Family)
	return ok && v.d.Step == StepInstruments
}

// Select returns an Action appending an instrument to the selection. The same
// instrument can be selected many times; every Do appends one more entry.
func (m *InstrumentsModel) Select(name string) Action {
	return MakeAction(instrumentSelect{Name: name, Model: (*Model)(m)})
}

type instrumentSelect struct {
	Name string
	*Model
}

func (a instrumentSelect) Enabled() bool {
	if a.d.Step != StepInstruments {
		return false
	}
	for _, f := range a.catalog.Families {
		if slices.Contains(f.Instruments, a.Name) {
			return true
		}
	}
	return false
}

func (a instrumentSelect) Do() {
	a.d.Setup.Instruments = append(a.d.Setup.Instruments, a.Name)
	a.log.Debug("instrument selected", zap.String("instrument", a.Name), zap.Int("count", len(a.d.Setup.Instruments)))
}

// Remove returns an Action deleting the first selected entry with the given
// name. It is disabled when no entry matches.
func (m *InstrumentsModel) Remove(name string) Action {
	return MakeAction(instrumentRemove{Name: name, Model: (*Model)(m)})
}

type instrumentRemove struct {
	Name string
	*Model
}

func (a instrumentRemove) Enabled() bool {
	return a.d.Step == StepInstruments && slices.Contains(a.d.Setup.Instruments, a.Name)
}

func (a instrumentRemove) Do() {
	i := slices.Index(a.d.Setup.Instruments, a.Name)
	a.d.Setup.Instruments = slices.Delete(a.d.Setup.Instruments, i, i+1)
	a.d.TrayIndex = min(a.d.TrayIndex, max(len(a.d.Setup.Instruments)-1, 0))
	a.log.Debug("instrument removed", zap.String("instrument", a.Name), zap.Int("count", len(a.d.Setup.Instruments)))
}

// Selected returns the selected instruments in the order they were picked.
func (m *InstrumentsModel) Selected() []string { return slices.Clone(m.d.Setup.Instruments) }

// Tray returns a List over the selected instruments, used for moving the
// keyboard cursor in the tray.
func (m *InstrumentsModel) Tray() List { return MakeList((*instrumentTray)(m)) }

type instrumentTray InstrumentsModel

func (v *instrumentTray) Selected() int     { return v.d.TrayIndex }
func (v *instrumentTray) SetSelected(i int) { v.d.TrayIndex = i }
func (v *instrumentTray) Count() int        { return len(v.d.Setup.Instruments) }

// TrayName returns the name of the instrument under the tray cursor, or "" if
// the tray is empty.
func (m *InstrumentsModel) TrayName() string {
	t := m.Tray()
	if t.Count() == 0 {
		return ""
	}
	return m.d.Setup.Instruments[t.Selected()]
}
