package frontend

import (
	"github.com/scorecraft/scorecraft"
	"go.uber.org/zap"
)

// Template returns the Template view of the model, containing the template
// chooser.
func (m *Model) Template() *TemplateModel { return (*TemplateModel)(m) }

type TemplateModel Model

// Groups returns the template group names in display order.
func (m *TemplateModel) Groups() []string { return scorecraft.TemplateGroups }

// Options returns the templates of a group in display order.
func (m *TemplateModel) Options(group string) []scorecraft.Template {
	return scorecraft.TemplatesIn(group)
}

// Chosen returns the name of the chosen template, or "" if none.
func (m *TemplateModel) Chosen() string { return m.d.Setup.Template }

// Expanded returns a Bool telling if the General group is unfolded. The group
// starts unfolded.
func (m *TemplateModel) Expanded() Bool { return MakeBool((*templateExpanded)(m)) }

type templateExpanded TemplateModel

func (v *templateExpanded) Value() bool         { return !v.d.GeneralCollapsed }
func (v *templateExpanded) SetValue(value bool) { v.d.GeneralCollapsed = !value }
func (v *templateExpanded) Enabled() bool       { return v.d.Step == StepTemplate }

// Choose returns an Action for picking a template option. Picking "Choose
// Instruments" moves the wizard to the instrument picker; any other option is
// recorded as the chosen template.
func (m *TemplateModel) Choose(name string) Action {
	return MakeAction(templateChoose{Name: name, Model: (*Model)(m)})
}

type templateChoose struct {
	Name string
	*Model
}

func (a templateChoose) Enabled() bool {
	if a.d.Step != StepTemplate {
		return false
	}
	_, ok := scorecraft.FindTemplate(a.Name)
	return ok
}

func (a templateChoose) Do() {
	if a.Name == scorecraft.ChooseInstrumentsTemplate {
		a.Wizard().ChooseInstruments().Do()
		return
	}
	a.log.Debug("template chosen", zap.String("template", a.Name))
	a.d.Setup.Template = a.Name
}
