package scorecraft

// Template is a starting layout for a new score. Templates are grouped: the
// General group holds the basic staff layouts and the Other group holds the
// ensemble categories.
type Template struct {
	Name  string
	Group string
}

const (
	GeneralGroup = "General"
	OtherGroup   = "Other Options"

	// ChooseInstrumentsTemplate is the General option that, instead of being
	// recorded as the chosen template, moves the wizard to the instrument
	// picker.
	ChooseInstrumentsTemplate = "Choose Instruments"
)

var Templates = []Template{
	{Name: ChooseInstrumentsTemplate, Group: GeneralGroup},
	{Name: "Treble Clef", Group: GeneralGroup},
	{Name: "Bass Clef", Group: GeneralGroup},
	{Name: "Grand Staff", Group: GeneralGroup},
	{Name: "Choral", Group: OtherGroup},
	{Name: "Chamber Music", Group: OtherGroup},
	{Name: "Solo", Group: OtherGroup},
	{Name: "Jazz", Group: OtherGroup},
	{Name: "Popular", Group: OtherGroup},
	{Name: "Band and Percussion", Group: OtherGroup},
	{Name: "Orchestral", Group: OtherGroup},
}

// TemplateGroups lists the template groups in display order.
var TemplateGroups = []string{GeneralGroup, OtherGroup}

// TemplatesIn returns the templates belonging to group, in display order.
func TemplatesIn(group string) []Template {
	var ret []Template
	for _, t := range Templates {
		if t.Group == group {
			ret = append(ret, t)
		}
	}
	return ret
}

// FindTemplate returns the template with the given name.
func FindTemplate(name string) (Template, bool) {
	for _, t := range Templates {
		if t.Name == name {
			return t, true
		}
	}
	return Template{}, false
}
