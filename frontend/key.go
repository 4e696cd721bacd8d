package frontend

import "github.com/scorecraft/scorecraft"

// Key returns the Key view of the model, containing the key signature
// chooser. The key can only be changed on the key signature step.
func (m *Model) Key() *KeyModel { return (*KeyModel)(m) }

type KeyModel Model

// Signature returns the chosen key signature.
func (m *KeyModel) Signature() scorecraft.KeySignature { return m.d.Setup.Key }

// Fifths returns an Int representing the number of sharps (positive) or flats
// (negative) of the key.
func (m *KeyModel) Fifths() Int { return MakeInt((*keyFifths)(m)) }

type keyFifths KeyModel

func (v *keyFifths) Value() int { return v.d.Setup.Key.Fifths }
func (v *keyFifths) SetValue(value int) bool {
	if v.d.Step != StepKeySignature {
		return false
	}
	v.d.Setup.Key.Fifths = value
	return true
}
func (v *keyFifths) Range() RangeInclusive {
	return RangeInclusive{scorecraft.MinFifths, scorecraft.MaxFifths}
}
func (v *keyFifths) StringOf(value int) string {
	return scorecraft.KeySignature{Fifths: value, Minor: v.d.Setup.Key.Minor}.String()
}

// Minor returns a Bool telling if the key is minor instead of major.
func (m *KeyModel) Minor() Bool { return MakeBool((*keyMinor)(m)) }

type keyMinor KeyModel

func (v *keyMinor) Value() bool         { return v.d.Setup.Key.Minor }
func (v *keyMinor) SetValue(value bool) { v.d.Setup.Key.Minor = value }
func (v *keyMinor) Enabled() bool       { return v.d.Step == StepKeySignature }

// Shift returns an Action moving the key delta steps around the circle of
// fifths. It is disabled when the result would leave the valid range.
func (m *KeyModel) Shift(delta int) Action {
	return MakeAction(keyShift{Delta: delta, KeyModel: m})
}

type keyShift struct {
	Delta int
	*KeyModel
}

func (a keyShift) Enabled() bool {
	to := a.d.Setup.Key.Fifths + a.Delta
	return a.d.Step == StepKeySignature && a.Delta != 0 && to >= scorecraft.MinFifths && to <= scorecraft.MaxFifths
}

func (a keyShift) Do() { a.Fifths().Add(a.Delta) }
