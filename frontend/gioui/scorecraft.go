package gioui

import (
	"image"
	"runtime"
	"time"

	"gioui.org/app"
	"gioui.org/io/key"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/widget/material"
	"github.com/scorecraft/scorecraft"
	"github.com/scorecraft/scorecraft/frontend"
)

type (
	// ScoreCraft is the Gio window of the new score wizard: the landing screen
	// with the wizard sheet on top of it when it is open.
	ScoreCraft struct {
		Theme       *Theme
		Landing     *Landing
		Sheet       *WizardSheet
		preferences Preferences
		title       *scorecraft.TitleTemplate
		lastFrame   time.Time

		*frontend.Model
	}

	C = layout.Context
	D = layout.Dimensions
)

func NewScoreCraft(model *frontend.Model, preferences Preferences) *ScoreCraft {
	t := &ScoreCraft{
		Theme:       NewTheme(),
		Landing:     new(Landing),
		Sheet:       NewWizardSheet(),
		preferences: preferences,
		Model:       model,
	}
	var err error
	if t.title, err = scorecraft.ParseTitleTemplate(preferences.Title); err != nil {
		model.Alerts().AddAlert(frontend.Alert{
			Name:     "TitleTemplate",
			Priority: frontend.Warning,
			Message:  err.Error(),
			Duration: 10 * time.Second,
		})
		t.title = scorecraft.MustParseTitleTemplate("")
	}
	return t
}

// Main runs the window until it is closed.
func (t *ScoreCraft) Main() error {
	w := new(app.Window)
	w.Option(app.Size(t.preferences.WindowSize()))
	if t.preferences.Window.Maximized {
		w.Option(app.Maximized.Option())
	}
	var ops op.Ops
	title := ""
	for {
		switch e := w.Event().(type) {
		case app.DestroyEvent:
			t.Log().Info("window closed")
			return e.Err
		case app.FrameEvent:
			if s := t.Title(); s != title {
				title = s
				w.Option(app.Title(title))
			}
			gtx := app.NewContext(&ops, e)
			t.Layout(gtx)
			e.Frame(gtx.Ops)
		}
	}
}

// Title renders the window title for the current setup.
func (t *ScoreCraft) Title() string {
	s, err := t.title.Render(t.Wizard().Setup())
	if err != nil {
		t.Alerts().AddNamed("TitleTemplate", err.Error(), frontend.Warning)
		t.title = scorecraft.MustParseTitleTemplate("")
		s, _ = t.title.Render(t.Wizard().Setup())
	}
	return s
}

func (t *ScoreCraft) Layout(gtx C) D {
	defer clip.Rect(image.Rectangle{Max: gtx.Constraints.Max}).Push(gtx.Ops).Pop()
	paint.Fill(gtx.Ops, t.Theme.Material.Bg)
	t.handleKeys(gtx)
	landing := gtx
	if t.Wizard().Visible() {
		landing = gtx.Disabled()
	}
	t.Landing.Layout(landing, t)
	if !t.Wizard().Visible() {
		// the next Create enters the info step afresh
		t.Sheet.lastStep = frontend.StepCreate
	} else {
		paint.Fill(gtx.Ops, scrimColor)
		layout.Center.Layout(gtx, func(gtx C) D {
			return t.Sheet.Layout(gtx, t)
		})
	}
	t.layoutAlerts(gtx)
	return D{Size: gtx.Constraints.Max}
}

var shortcutName = func() string {
	if runtime.GOOS == "darwin" {
		return "Cmd"
	}
	return "Ctrl"
}()

// handleKeys implements the keyboard shortcuts of the wizard: Escape cancels
// and Ctrl+Enter moves to the next step.
func (t *ScoreCraft) handleKeys(gtx C) {
	for {
		ev, ok := gtx.Event(
			key.Filter{Name: key.NameEscape},
			key.Filter{Name: key.NameReturn, Required: key.ModShortcut},
		)
		if !ok {
			break
		}
		e, ok := ev.(key.Event)
		if !ok || e.State != key.Press {
			continue
		}
		switch e.Name {
		case key.NameEscape:
			t.Wizard().Cancel().Do()
		case key.NameReturn:
			t.Wizard().Next().Do()
		}
	}
}

func (t *ScoreCraft) layoutAlerts(gtx C) {
	now := gtx.Now
	if !t.lastFrame.IsZero() && t.Alerts().Update(now.Sub(t.lastFrame)) {
		gtx.Execute(op.InvalidateCmd{At: now.Add(100 * time.Millisecond)})
	}
	t.lastFrame = now
	if t.Alerts().Count() == 0 {
		return
	}
	layout.S.Layout(gtx, func(gtx C) D {
		return layout.UniformInset(6).Layout(gtx, func(gtx C) D {
			var children []layout.FlexChild
			for a := range t.Alerts().Iterate() {
				children = append(children, layout.Rigid(func(gtx C) D {
					return layout.Inset{Top: 4}.Layout(gtx, func(gtx C) D {
						return t.layoutAlert(gtx, a)
					})
				}))
			}
			return layout.Flex{Axis: layout.Vertical, Alignment: layout.Middle}.Layout(gtx, children...)
		})
	})
}

func (t *ScoreCraft) layoutAlert(gtx C, a frontend.Alert) D {
	bg, fg := infoAlertColor, highEmphasisTextColor
	switch a.Priority {
	case frontend.Warning:
		bg, fg = warningColor, black
	case frontend.Error:
		bg, fg = errorColor, black
	}
	return rounded(gtx, bg, layout.UniformInset(8), func(gtx C) D {
		l := material.Body2(&t.Theme.Material, a.Message)
		l.Color = fg
		return l.Layout(gtx)
	})
}
