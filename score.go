package scorecraft

import "slices"

type (
	// ScoreInfo is the metadata typed in on the first page of the new score
	// wizard. All fields are free text; none of them is required.
	ScoreInfo struct {
		Title     string
		Subtitle  string
		Composer  string
		Lyricist  string
		Copyright string
	}

	// Setup is a snapshot of everything the wizard has collected so far: the
	// score information, the chosen template, the selected instruments (in the
	// order they were picked, possibly with repeats) and the key signature.
	Setup struct {
		Info        ScoreInfo
		Template    string
		Instruments []string
		Key         KeySignature
	}
)

// Empty reports whether none of the fields has been filled.
func (s ScoreInfo) Empty() bool {
	return s == ScoreInfo{}
}

// Copy makes a deep copy of a Setup.
func (s Setup) Copy() Setup {
	return Setup{Info: s.Info, Template: s.Template, Instruments: slices.Clone(s.Instruments), Key: s.Key}
}

// Empty reports whether the setup is in its initial, untouched state.
func (s Setup) Empty() bool {
	return s.Info.Empty() && s.Template == "" && len(s.Instruments) == 0 && s.Key == KeySignature{}
}
