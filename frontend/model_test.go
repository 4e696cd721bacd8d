package frontend_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/scorecraft/scorecraft"
	"github.com/scorecraft/scorecraft/frontend"
)

type modelFuzzState struct {
	model *frontend.Model
}

func (s *modelFuzzState) Iterate(yield func(string, func(p string, t *testing.T)) bool, seed int) {
	m := s.model
	// Actions
	s.IterateAction("Create", m.Wizard().Create(), yield, seed)
	s.IterateAction("OpenScore", m.Wizard().OpenScore(), yield, seed)
	s.IterateAction("Next", m.Wizard().Next(), yield, seed)
	s.IterateAction("Back", m.Wizard().Back(), yield, seed)
	s.IterateAction("Finish", m.Wizard().Finish(), yield, seed)
	s.IterateAction("Cancel", m.Wizard().Cancel(), yield, seed)
	s.IterateAction("ChooseInstruments", m.Wizard().ChooseInstruments(), yield, seed)
	s.IterateAction("ChooseKeySignature", m.Wizard().ChooseKeySignature(), yield, seed)
	for _, tmpl := range scorecraft.Templates {
		s.IterateAction("Choose"+tmpl.Name, m.Template().Choose(tmpl.Name), yield, seed)
	}
	for _, f := range m.Instruments().Families() {
		s.IterateBool("Expanded"+f.Name, m.Instruments().Expanded(f.Name), yield, seed)
		name := f.Instruments[seed%len(f.Instruments)]
		s.IterateAction("Select"+name, m.Instruments().Select(name), yield, seed)
		s.IterateAction("Remove"+name, m.Instruments().Remove(name), yield, seed)
	}
	// Bools
	s.IterateBool("TemplateExpanded", m.Template().Expanded(), yield, seed)
	s.IterateBool("Minor", m.Key().Minor(), yield, seed)
	// Ints
	s.IterateInt("Fifths", m.Key().Fifths(), yield, seed)
	s.IterateAction("Flatter", m.Key().Shift(-1), yield, seed)
	s.IterateAction("Sharper", m.Key().Shift(1), yield, seed)
	// Strings
	for _, f := range m.Info().Fields() {
		s.IterateString(f.Label, f.Value, yield, seed)
	}
	s.IterateString("Search", m.Instruments().Search(), yield, seed)
	// Lists
	s.IterateList("Tray", m.Instruments().Tray(), yield, seed)
}

func (s *modelFuzzState) IterateInt(name string, i frontend.Int, yield func(string, func(p string, t *testing.T)) bool, seed int) {
	r := i.Range()
	yield(name+".Set", func(p string, t *testing.T) {
		i.SetValue(seed%(r.Max-r.Min+10) - 5 + r.Min)
	})
	yield(name+".Value", func(p string, t *testing.T) {
		if v := i.Value(); v < r.Min || v > r.Max {
			t.Errorf("Path: %s %s value out of range [%d,%d]: %d", p, name, r.Min, r.Max, v)
		}
	})
}

func (s *modelFuzzState) IterateAction(name string, a frontend.Action, yield func(string, func(p string, t *testing.T)) bool, seed int) {
	yield(name+".Do", func(p string, t *testing.T) {
		a.Do()
	})
}

func (s *modelFuzzState) IterateBool(name string, b frontend.Bool, yield func(string, func(p string, t *testing.T)) bool, seed int) {
	yield(name+".Set", func(p string, t *testing.T) {
		b.SetValue(seed%2 == 0)
	})
	yield(name+".Toggle", func(p string, t *testing.T) {
		b.Toggle()
	})
}

func (s *modelFuzzState) IterateString(name string, str frontend.String, yield func(string, func(p string, t *testing.T)) bool, seed int) {
	yield(name+".Set", func(p string, t *testing.T) {
		str.SetValue(fmt.Sprintf("%s %d", name, seed))
	})
}

func (s *modelFuzzState) IterateList(name string, l frontend.List, yield func(string, func(p string, t *testing.T)) bool, seed int) {
	yield(name+".SetSelected", func(p string, t *testing.T) {
		l.SetSelected(seed%50 - 16)
	})
	yield(name+".Selected", func(p string, t *testing.T) {
		if c := l.Count(); c > 0 {
			if sel := l.Selected(); sel < 0 || sel >= c {
				t.Errorf("Path: %s %s selection %d out of range [0,%d)", p, name, sel, c)
			}
		}
	})
}

func (s *modelFuzzState) checkInvariants(p string, t *testing.T) {
	w := s.model.Wizard()
	if step := w.Step(); step < frontend.StepCreate || step >= frontend.NumSteps {
		t.Fatalf("Path: %s step out of range: %d", p, step)
	}
	if setup := w.Setup(); !w.Visible() && !setup.Empty() {
		t.Fatalf("Path: %s wizard hidden but draft not empty: %+v", p, setup)
	}
	if w.Next().Enabled() != (w.Step() == frontend.StepInfo) {
		t.Fatalf("Path: %s Next enabled on step %v", p, w.Step())
	}
	if w.Finish().Enabled() || w.OpenScore().Enabled() {
		t.Fatalf("Path: %s Finish or OpenScore enabled", p)
	}
}

func FuzzModel(f *testing.F) {
	seed := make([]byte, 1)
	for i := range 64 {
		seed[0] = byte(i)
		f.Add(seed)
	}
	f.Fuzz(func(t *testing.T, slice []byte) {
		state := &modelFuzzState{model: newModel()}
		path := ""
		for len(slice) > 0 {
			n := int(slice[0])
			slice = slice[1:]
			var actions []string
			var funcs []func(p string, t *testing.T)
			state.Iterate(func(name string, f func(p string, t *testing.T)) bool {
				actions = append(actions, name)
				funcs = append(funcs, f)
				return true
			}, n)
			index := n % len(actions)
			path += actions[index] + ">"
			funcs[index](path, t)
			state.checkInvariants(path, t)
		}
	})
}

func TestRandomWalk(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	for walk := 0; walk < 200; walk++ {
		state := &modelFuzzState{model: newModel()}
		path := ""
		for step := 0; step < 100; step++ {
			n := rnd.Intn(1 << 16)
			var actions []string
			var funcs []func(p string, t *testing.T)
			state.Iterate(func(name string, f func(p string, t *testing.T)) bool {
				actions = append(actions, name)
				funcs = append(funcs, f)
				return true
			}, n)
			index := n % len(actions)
			path += actions[index] + ">"
			funcs[index](path, t)
			state.checkInvariants(path, t)
		}
	}
}
