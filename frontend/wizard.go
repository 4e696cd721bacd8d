package frontend

import (
	"github.com/scorecraft/scorecraft"
	"go.uber.org/zap"
)

// Step tells which page of the wizard is shown. StepCreate is the landing
// screen, with the wizard hidden.
type Step int

const (
	StepCreate Step = iota
	StepInfo
	StepTemplate
	StepInstruments
	StepKeySignature
	NumSteps
)

var stepNames = [...]string{"Create score", "Score information", "Template", "Instruments", "Key signature"}

func (s Step) String() string {
	if s < 0 || s >= NumSteps {
		return "Unknown"
	}
	return stepNames[s]
}

// Previous returns the step Back leads to. The wizard pages are ordered info,
// template, instruments, key signature; the info page and the landing screen
// have no previous step and return themselves.
func (s Step) Previous() Step {
	if s <= StepInfo || s >= NumSteps {
		return s
	}
	return s - 1
}

// Wizard returns the Wizard view of the model, containing the navigation
// between the wizard steps.
func (m *Model) Wizard() *WizardModel { return (*WizardModel)(m) }

type WizardModel Model

// Step returns the currently shown step.
func (m *WizardModel) Step() Step { return m.d.Step }

// Visible reports whether the wizard sheet is shown over the landing screen.
func (m *WizardModel) Visible() bool { return m.d.Step != StepCreate }

// Setup returns a snapshot of everything collected so far.
func (m *WizardModel) Setup() scorecraft.Setup { return m.d.Setup.Copy() }

// Create returns an Action to open the wizard on the score information step.
// Only available on the landing screen.
func (m *WizardModel) Create() Action { return MakeAction((*wizardCreate)(m)) }

type wizardCreate WizardModel

func (m *wizardCreate) Enabled() bool { return m.d.Step == StepCreate }
func (m *wizardCreate) Do()           { (*Model)(m).setStep(StepInfo) }

// OpenScore returns an Action for opening an existing score. Opening scores is
// not supported, so the action is never enabled.
func (m *WizardModel) OpenScore() Action { return MakeAction((*wizardOpenScore)(m)) }

type wizardOpenScore WizardModel

func (m *wizardOpenScore) Enabled() bool { return false }
func (m *wizardOpenScore) Do()           {}

// Next returns an Action to advance from the score information step to the
// template step. It is not available on any other step.
func (m *WizardModel) Next() Action { return MakeAction((*wizardNext)(m)) }

type wizardNext WizardModel

func (m *wizardNext) Enabled() bool { return m.d.Step == StepInfo }
func (m *wizardNext) Do()           { (*Model)(m).setStep(StepTemplate) }

// Back returns an Action to return to the previous step.
func (m *WizardModel) Back() Action { return MakeAction((*wizardBack)(m)) }

type wizardBack WizardModel

func (m *wizardBack) Enabled() bool { return m.d.Step.Previous() != m.d.Step }
func (m *wizardBack) Do()           { (*Model)(m).setStep(m.d.Step.Previous()) }

// Finish returns an Action to create the score. Creating the score is not
// implemented, so the action is never enabled.
func (m *WizardModel) Finish() Action { return MakeAction((*wizardFinish)(m)) }

type wizardFinish WizardModel

func (m *wizardFinish) Enabled() bool { return false }
func (m *wizardFinish) Do()           {}

// Cancel returns an Action to close the wizard, discarding everything typed
// and selected, regardless of the current step.
func (m *WizardModel) Cancel() Action { return MakeAction((*wizardCancel)(m)) }

type wizardCancel WizardModel

func (m *wizardCancel) Do() {
	if m.d.Step != StepCreate {
		m.log.Info("score creation cancelled",
			zap.Stringer("step", m.d.Step),
			zap.Bool("discarded", !m.d.Setup.Empty()))
	}
	(*Model)(m).setStep(StepCreate)
	(*Model)(m).reset()
}

// ChooseInstruments returns an Action to jump from the template step directly
// to the instrument picker.
func (m *WizardModel) ChooseInstruments() Action {
	return MakeAction((*wizardChooseInstruments)(m))
}

type wizardChooseInstruments WizardModel

func (m *wizardChooseInstruments) Enabled() bool { return m.d.Step == StepTemplate }
func (m *wizardChooseInstruments) Do()           { (*Model)(m).setStep(StepInstruments) }

// ChooseKeySignature returns an Action to jump from the instrument picker to
// the key signature step.
func (m *WizardModel) ChooseKeySignature() Action {
	return MakeAction((*wizardChooseKeySignature)(m))
}

type wizardChooseKeySignature WizardModel

func (m *wizardChooseKeySignature) Enabled() bool { return m.d.Step == StepInstruments }
func (m *wizardChooseKeySignature) Do()           { (*Model)(m).setStep(StepKeySignature) }
