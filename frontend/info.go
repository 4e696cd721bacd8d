package frontend

// Info returns the Info view of the model, containing the score information
// fields. The fields can only be edited on the score information step.
func (m *Model) Info() *InfoModel { return (*InfoModel)(m) }

type InfoModel Model

func (m *InfoModel) editable() bool { return m.d.Step == StepInfo }

// Title
type infoTitle InfoModel

func (m *InfoModel) Title() String { return MakeString((*infoTitle)(m)) }
func (v *infoTitle) Value() string { return v.d.Setup.Info.Title }
func (v *infoTitle) SetValue(value string) bool {
	if !(*InfoModel)(v).editable() {
		return false
	}
	v.d.Setup.Info.Title = value
	return true
}

// Subtitle
type infoSubtitle InfoModel

func (m *InfoModel) Subtitle() String { return MakeString((*infoSubtitle)(m)) }
func (v *infoSubtitle) Value() string { return v.d.Setup.Info.Subtitle }
func (v *infoSubtitle) SetValue(value string) bool {
	if !(*InfoModel)(v).editable() {
		return false
	}
	v.d.Setup.Info.Subtitle = value
	return true
}

// Composer
type infoComposer InfoModel

func (m *InfoModel) Composer() String { return MakeString((*infoComposer)(m)) }
func (v *infoComposer) Value() string { return v.d.Setup.Info.Composer }
func (v *infoComposer) SetValue(value string) bool {
	if !(*InfoModel)(v).editable() {
		return false
	}
	v.d.Setup.Info.Composer = value
	return true
}

// Lyricist
type infoLyricist InfoModel

func (m *InfoModel) Lyricist() String { return MakeString((*infoLyricist)(m)) }
func (v *infoLyricist) Value() string { return v.d.Setup.Info.Lyricist }
func (v *infoLyricist) SetValue(value string) bool {
	if !(*InfoModel)(v).editable() {
		return false
	}
	v.d.Setup.Info.Lyricist = value
	return true
}

// Copyright
type infoCopyright InfoModel

func (m *InfoModel) Copyright() String { return MakeString((*infoCopyright)(m)) }
func (v *infoCopyright) Value() string { return v.d.Setup.Info.Copyright }
func (v *infoCopyright) SetValue(value string) bool {
	if !(*InfoModel)(v).editable() {
		return false
	}
	v.d.Setup.Info.Copyright = value
	return true
}

// InfoField names one of the score information fields, in the order they are
// shown.
type InfoField struct {
	Label string
	Value String
}

// Fields returns all score information fields in display order.
func (m *InfoModel) Fields() []InfoField {
	return []InfoField{
		{"Title", m.Title()},
		{"Subtitle", m.Subtitle()},
		{"Composer", m.Composer()},
		{"Lyricist", m.Lyricist()},
		{"Copyright", m.Copyright()},
	}
}
