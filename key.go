package scorecraft

import "fmt"

// KeySignature is described by its position on the circle of fifths: Fifths is
// the number of sharps (positive) or flats (negative), within
// [MinFifths, MaxFifths]. The zero value is C major.
type KeySignature struct {
	Fifths int
	Minor  bool
}

const (
	MinFifths = -7
	MaxFifths = 7
)

var majorKeys = [...]string{"C♭", "G♭", "D♭", "A♭", "E♭", "B♭", "F", "C", "G", "D", "A", "E", "B", "F♯", "C♯"}
var minorKeys = [...]string{"A♭", "E♭", "B♭", "F", "C", "G", "D", "A", "E", "B", "F♯", "C♯", "G♯", "D♯", "A♯"}

// Tonic returns the name of the tonic of the key, e.g. "E♭". Returns "?" if
// Fifths is out of range.
func (k KeySignature) Tonic() string {
	if k.Fifths < MinFifths || k.Fifths > MaxFifths {
		return "?"
	}
	if k.Minor {
		return minorKeys[k.Fifths-MinFifths]
	}
	return majorKeys[k.Fifths-MinFifths]
}

func (k KeySignature) String() string {
	if k.Minor {
		return k.Tonic() + " minor"
	}
	return k.Tonic() + " major"
}

// Accidentals describes the signature itself, e.g. "3♭" or "no accidentals".
func (k KeySignature) Accidentals() string {
	switch {
	case k.Fifths > 0:
		return fmt.Sprintf("%d♯", k.Fifths)
	case k.Fifths < 0:
		return fmt.Sprintf("%d♭", -k.Fifths)
	default:
		return "no accidentals"
	}
}

// Relative returns the relative major/minor key, which shares the signature.
func (k KeySignature) Relative() KeySignature {
	return KeySignature{Fifths: k.Fifths, Minor: !k.Minor}
}
