package gioui

import (
	"gioui.org/io/key"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"github.com/scorecraft/scorecraft/frontend"
)

type (
	// Editor wraps a widget.Editor and keeps it in sync with a
	// frontend.String: typing updates the model, and model changes (e.g.
	// Cancel clearing the draft) update the editor.
	Editor struct {
		widgetEditor widget.Editor
		requestFocus bool
	}

	EditorEvent int
)

const (
	EditorEventNone EditorEvent = iota
	EditorEventSubmit
)

func NewEditor() *Editor {
	return &Editor{widgetEditor: widget.Editor{SingleLine: true, Submit: true}}
}

func (e *Editor) Layout(gtx C, str frontend.String, th *Theme, hint string) D {
	for e.Update(gtx, str) != EditorEventNone {
		// just consume all events if the user did not consume them
	}
	if e.widgetEditor.Text() != str.Value() {
		e.widgetEditor.SetText(str.Value())
	}
	me := material.Editor(&th.Material, &e.widgetEditor, hint)
	me.Color = highEmphasisTextColor
	me.HintColor = mediumEmphasisTextColor
	return me.Layout(gtx)
}

func (e *Editor) Update(gtx C, str frontend.String) EditorEvent {
	if e.requestFocus {
		e.requestFocus = false
		gtx.Execute(key.FocusCmd{Tag: &e.widgetEditor})
		l := len(e.widgetEditor.Text())
		e.widgetEditor.SetCaret(l, l)
	}
	for {
		ev, ok := e.widgetEditor.Update(gtx)
		if !ok {
			break
		}
		if _, ok := ev.(widget.ChangeEvent); ok {
			str.SetValue(e.widgetEditor.Text())
		}
		if _, ok := ev.(widget.SubmitEvent); ok {
			return EditorEventSubmit
		}
	}
	return EditorEventNone
}

func (e *Editor) Focus() {
	e.requestFocus = true
}
