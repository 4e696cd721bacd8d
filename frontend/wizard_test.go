package frontend_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/scorecraft/scorecraft"
	"github.com/scorecraft/scorecraft/frontend"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func newModel() *frontend.Model {
	return frontend.NewModel(scorecraft.DefaultCatalog(), nil)
}

// goTo drives a fresh model to the given step using only ordinary navigation.
func goTo(t *testing.T, m *frontend.Model, step frontend.Step) {
	t.Helper()
	w := m.Wizard()
	path := []frontend.Action{w.Create(), w.Next(), w.ChooseInstruments(), w.ChooseKeySignature()}
	for i := 0; i < int(step); i++ {
		path[i].Do()
	}
	if w.Step() != step {
		t.Fatalf("could not reach step %v, stuck at %v", step, w.Step())
	}
}

func TestOnlyCreateOpensWizard(t *testing.T) {
	m := newModel()
	w := m.Wizard()
	for name, a := range map[string]frontend.Action{
		"OpenScore":          w.OpenScore(),
		"Next":               w.Next(),
		"Back":               w.Back(),
		"Finish":             w.Finish(),
		"Cancel":             w.Cancel(),
		"ChooseInstruments":  w.ChooseInstruments(),
		"ChooseKeySignature": w.ChooseKeySignature(),
	} {
		a.Do()
		if w.Visible() {
			t.Fatalf("%s opened the wizard from the landing screen", name)
		}
	}
	if !w.Create().Enabled() {
		t.Fatalf("Create should be enabled on the landing screen")
	}
	w.Create().Do()
	if w.Step() != frontend.StepInfo || !w.Visible() {
		t.Errorf("expected Create to open the info step, got %v", w.Step())
	}
	if w.Create().Enabled() {
		t.Errorf("Create should be disabled while the wizard is open")
	}
}

func TestCancelFromAnyStep(t *testing.T) {
	for step := frontend.StepInfo; step < frontend.NumSteps; step++ {
		t.Run(step.String(), func(t *testing.T) {
			m := newModel()
			m.Wizard().Create().Do()
			for _, f := range m.Info().Fields() {
				f.Value.SetValue(f.Label + " text")
			}
			m.Wizard().Next().Do()
			m.Template().Choose("Grand Staff").Do()
			m.Wizard().ChooseInstruments().Do()
			m.Instruments().Expanded("Woodwinds").SetValue(true)
			m.Instruments().Select("Oboe").Do()
			m.Wizard().ChooseKeySignature().Do()
			m.Key().Fifths().SetValue(-2)
			m.Key().Minor().SetValue(true)
			for m.Wizard().Step() != step {
				m.Wizard().Back().Do()
			}
			m.Wizard().Cancel().Do()
			if m.Wizard().Visible() || m.Wizard().Step() != frontend.StepCreate {
				t.Fatalf("Cancel did not return to the landing screen")
			}
			if s := m.Wizard().Setup(); !s.Empty() {
				t.Errorf("Cancel left draft data behind: %+v", s)
			}
			m.Wizard().Create().Do()
			for _, f := range m.Info().Fields() {
				if f.Value.Value() != "" {
					t.Errorf("field %s survived Cancel: %q", f.Label, f.Value.Value())
				}
			}
			m.Wizard().Next().Do()
			m.Wizard().ChooseInstruments().Do()
			if m.Instruments().Expanded("Woodwinds").Value() {
				t.Errorf("family expansion survived Cancel")
			}
		})
	}
}

func TestNextOnlyOnInfoStep(t *testing.T) {
	for step := frontend.StepCreate; step < frontend.NumSteps; step++ {
		m := newModel()
		goTo(t, m, step)
		enabled := m.Wizard().Next().Enabled()
		if enabled != (step == frontend.StepInfo) {
			t.Errorf("step %v: Next enabled = %v", step, enabled)
		}
		m.Wizard().Next().Do()
		want := step
		if step == frontend.StepInfo {
			want = frontend.StepTemplate
		}
		if got := m.Wizard().Step(); got != want {
			t.Errorf("step %v: Next moved to %v, expected %v", step, got, want)
		}
	}
}

func TestBackFollowsLinearOrder(t *testing.T) {
	expected := map[frontend.Step]frontend.Step{
		frontend.StepTemplate:     frontend.StepInfo,
		frontend.StepInstruments:  frontend.StepTemplate,
		frontend.StepKeySignature: frontend.StepInstruments,
	}
	for step := frontend.StepCreate; step < frontend.NumSteps; step++ {
		m := newModel()
		goTo(t, m, step)
		prev, ok := expected[step]
		if m.Wizard().Back().Enabled() != ok {
			t.Errorf("step %v: Back enabled = %v, expected %v", step, !ok, ok)
		}
		m.Wizard().Back().Do()
		if !ok {
			prev = step
		}
		if got := m.Wizard().Step(); got != prev {
			t.Errorf("step %v: Back moved to %v, expected %v", step, got, prev)
		}
	}
}

func TestFinishAlwaysDisabled(t *testing.T) {
	for step := frontend.StepCreate; step < frontend.NumSteps; step++ {
		m := newModel()
		goTo(t, m, step)
		if m.Wizard().Finish().Enabled() || m.Wizard().OpenScore().Enabled() {
			t.Errorf("step %v: Finish or OpenScore enabled", step)
		}
		m.Wizard().Finish().Do()
		if m.Wizard().Step() != step {
			t.Errorf("step %v: Finish changed the step to %v", step, m.Wizard().Step())
		}
	}
}

func TestChooseInstrumentsSideEntry(t *testing.T) {
	paths := map[string][]func(m *frontend.Model){
		"direct": {},
		"via back from instruments": {
			func(m *frontend.Model) { m.Wizard().ChooseInstruments().Do() },
			func(m *frontend.Model) { m.Wizard().Back().Do() },
		},
		"via info and back": {
			func(m *frontend.Model) { m.Wizard().Back().Do() },
			func(m *frontend.Model) { m.Wizard().Next().Do() },
		},
		"via key signature": {
			func(m *frontend.Model) { m.Wizard().ChooseInstruments().Do() },
			func(m *frontend.Model) { m.Wizard().ChooseKeySignature().Do() },
			func(m *frontend.Model) { m.Wizard().Back().Do() },
			func(m *frontend.Model) { m.Wizard().Back().Do() },
		},
	}
	for name, path := range paths {
		t.Run(name, func(t *testing.T) {
			m := newModel()
			goTo(t, m, frontend.StepTemplate)
			for _, f := range path {
				f(m)
			}
			if m.Wizard().Step() != frontend.StepTemplate {
				t.Fatalf("path did not end on the template step: %v", m.Wizard().Step())
			}
			m.Template().Choose(scorecraft.ChooseInstrumentsTemplate).Do()
			if m.Wizard().Step() != frontend.StepInstruments {
				t.Errorf("expected instruments step, got %v", m.Wizard().Step())
			}
			if m.Template().Chosen() != "" {
				t.Errorf("Choose Instruments should not be recorded as template, got %q", m.Template().Chosen())
			}
		})
	}
}

func TestTransitionsAreLogged(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	m := frontend.NewModel(scorecraft.DefaultCatalog(), zap.New(core))
	m.Wizard().Create().Do()
	m.Wizard().Next().Do()
	m.Wizard().Cancel().Do()
	var got []string
	for _, e := range logs.FilterMessage("wizard step").All() {
		got = append(got, e.ContextMap()["to"].(string))
	}
	expected := []string{"Score information", "Template", "Create score"}
	if diff := cmp.Diff(expected, got); diff != "" {
		t.Errorf("logged transitions mismatch (-want +got):\n%s", diff)
	}
	if logs.FilterMessage("score creation cancelled").Len() != 1 {
		t.Errorf("expected one cancel log entry")
	}
}

func TestStepString(t *testing.T) {
	if frontend.StepKeySignature.String() != "Key signature" || frontend.Step(42).String() != "Unknown" {
		t.Errorf("unexpected step names")
	}
}
