package frontend

import (
	"github.com/scorecraft/scorecraft"
	"go.uber.org/zap"
	"golang.org/x/text/cases"
)

// Model implements the mutable state of the new score wizard.
//
// It is owned by the UI goroutine; none of the methods are safe for concurrent
// use.
type (
	// modelData is the part of the model that Cancel throws away
	modelData struct {
		Step             Step
		Setup            scorecraft.Setup
		Expanded         map[string]bool // instrument family name -> expanded
		GeneralCollapsed bool
		Search           string
		TrayIndex        int
	}

	Model struct {
		d       modelData
		catalog scorecraft.Catalog
		alerts  []Alert
		fold    cases.Caser
		log     *zap.Logger
	}
)

// NewModel returns a model on the landing screen, offering instruments from
// catalog. A nil log disables logging.
func NewModel(catalog scorecraft.Catalog, log *zap.Logger) *Model {
	if log == nil {
		log = zap.NewNop()
	}
	return &Model{
		catalog: catalog.Copy(),
		fold:    cases.Fold(),
		log:     log,
	}
}

func (m *Model) Log() *zap.Logger { return m.log }

func (m *Model) setStep(to Step) {
	if m.d.Step == to {
		return
	}
	m.log.Debug("wizard step", zap.Stringer("from", m.d.Step), zap.Stringer("to", to))
	m.d.Step = to
}

func (m *Model) reset() {
	m.d = modelData{}
}
