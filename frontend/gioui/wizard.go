package gioui

import (
	"fmt"

	"gioui.org/layout"
	"gioui.org/unit"
	"gioui.org/widget/material"
	"github.com/scorecraft/scorecraft/frontend"
)

// WizardSheet is the modal sheet of the new score wizard. It owns the widget
// state of every step; the steps themselves live in the model.
type WizardSheet struct {
	Info        *InfoStep
	Template    *TemplateStep
	Instruments *InstrumentsStep
	Key         *KeyStep

	backBtn   ActionButton
	nextBtn   ActionButton
	finishBtn ActionButton
	cancelBtn ActionButton

	lastStep frontend.Step
}

const (
	sheetWidth  = unit.Dp(720)
	sheetHeight = unit.Dp(560)
)

func NewWizardSheet() *WizardSheet {
	return &WizardSheet{
		Info:        NewInfoStep(),
		Template:    NewTemplateStep(),
		Instruments: NewInstrumentsStep(),
		Key:         NewKeyStep(),
	}
}

func (s *WizardSheet) Layout(gtx C, t *ScoreCraft) D {
	step := t.Wizard().Step()
	if step != s.lastStep {
		s.enter(step)
		s.lastStep = step
	}
	gtx.Constraints.Max.X = min(gtx.Constraints.Max.X, gtx.Dp(sheetWidth))
	gtx.Constraints.Max.Y = min(gtx.Constraints.Max.Y, gtx.Dp(sheetHeight))
	gtx.Constraints.Min = gtx.Constraints.Max
	return rounded(gtx, sheetSurfaceColor, layout.UniformInset(unit.Dp(20)), func(gtx C) D {
		gtx.Constraints.Min = gtx.Constraints.Max
		return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
			layout.Rigid(func(gtx C) D { return s.layoutHeader(gtx, t, step) }),
			layout.Rigid(layout.Spacer{Height: unit.Dp(16)}.Layout),
			layout.Flexed(1, func(gtx C) D { return s.layoutStep(gtx, t, step) }),
			layout.Rigid(layout.Spacer{Height: unit.Dp(16)}.Layout),
			layout.Rigid(func(gtx C) D { return s.layoutNavigation(gtx, t) }),
		)
	})
}

// enter is called once when the wizard arrives on a step.
func (s *WizardSheet) enter(step frontend.Step) {
	switch step {
	case frontend.StepInfo:
		s.Info.Focus(0)
	case frontend.StepInstruments:
		s.Instruments.search.Focus()
	}
}

func (s *WizardSheet) layoutHeader(gtx C, t *ScoreCraft, step frontend.Step) D {
	th := &t.Theme.Material
	return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Baseline}.Layout(gtx,
		layout.Flexed(1, func(gtx C) D {
			h := material.H5(th, step.String())
			h.Color = highEmphasisTextColor
			return h.Layout(gtx)
		}),
		layout.Rigid(func(gtx C) D {
			c := material.Caption(th, fmt.Sprintf("Step %d of %d", int(step), int(frontend.NumSteps)-1))
			c.Color = mediumEmphasisTextColor
			return c.Layout(gtx)
		}),
	)
}

func (s *WizardSheet) layoutStep(gtx C, t *ScoreCraft, step frontend.Step) D {
	switch step {
	case frontend.StepInfo:
		return s.Info.Layout(gtx, t)
	case frontend.StepTemplate:
		return s.Template.Layout(gtx, t)
	case frontend.StepInstruments:
		return s.Instruments.Layout(gtx, t)
	case frontend.StepKeySignature:
		return s.Key.Layout(gtx, t)
	}
	return D{Size: gtx.Constraints.Min}
}

func (s *WizardSheet) layoutNavigation(gtx C, t *ScoreCraft) D {
	w := t.Wizard()
	gap := layout.Rigid(layout.Spacer{Width: unit.Dp(8)}.Layout)
	return layout.Flex{Axis: layout.Horizontal}.Layout(gtx,
		layout.Rigid(func(gtx C) D {
			return s.backBtn.Layout(gtx, t.Theme, w.Back(), PrimaryButton("Back", "Return to the previous step"))
		}),
		layout.Flexed(1, func(gtx C) D { return D{Size: gtx.Constraints.Min} }),
		layout.Rigid(func(gtx C) D {
			return s.cancelBtn.Layout(gtx, t.Theme, w.Cancel(), CancelButton("Cancel", "Discard the new score (Esc)"))
		}),
		gap,
		layout.Rigid(func(gtx C) D {
			return s.finishBtn.Layout(gtx, t.Theme, w.Finish(), PrimaryButton("Finish", "Creating the score is not available yet"))
		}),
		gap,
		layout.Rigid(func(gtx C) D {
			return s.nextBtn.Layout(gtx, t.Theme, w.Next(), PrimaryButton("Next", "Continue to the next step ("+shortcutName+"+Enter)"))
		}),
	)
}
