package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/claimit/claimit/internal/calculation"
	"github.com/claimit/claimit/internal/domain"
	"github.com/claimit/claimit/internal/steps"
)

// Model is the questionnaire state: the answers, the derived active
// step list, and a cursor. The estimate is recomputed synchronously on
// every change; there is no background work.
type Model struct {
	answers domain.AnswerSet
	engine  *calculation.EstimateEngine
	result  calculation.EstimateResult

	active []steps.Step
	pos    int
	cursor int

	input   textinput.Model
	editing bool

	width  int
	height int
}

// NewModel starts a fresh session.
func NewModel() *Model {
	return NewModelWithAnswers(domain.NewAnswerSet())
}

// NewModelWithAnswers starts from preloaded answers, e.g. a YAML file
// passed to the tui command.
func NewModelWithAnswers(answers domain.AnswerSet) *Model {
	input := textinput.New()
	input.Prompt = "> "
	input.CharLimit = 32

	m := &Model{
		answers: answers,
		engine:  calculation.NewEstimateEngine(),
		input:   input,
		width:   80,
		height:  24,
	}
	m.refresh()
	m.snapCursor()
	return m
}

// Init is required by the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// refresh rederives the step list and recomputes the running estimate.
// Called after every answer mutation.
func (m *Model) refresh() {
	m.active = steps.Active(&m.answers)
	m.pos = steps.Clamp(m.active, m.pos)
	m.result = m.engine.ComputeEstimate(&m.answers)
}

func (m *Model) currentStep() steps.Step {
	if len(m.active) == 0 {
		return steps.StepWelcome
	}
	return m.active[steps.Clamp(m.active, m.pos)]
}

func (m *Model) advance() {
	if m.pos < len(m.active)-1 {
		m.pos++
		m.stopEditing()
		m.snapCursor()
	}
}

func (m *Model) back() {
	if m.pos > 0 {
		m.pos--
		m.stopEditing()
		m.snapCursor()
	}
}

func (m *Model) restart() {
	m.answers.Reset()
	m.pos = 0
	m.stopEditing()
	m.refresh()
	m.snapCursor()
}

// snapCursor places the cursor on the first selectable row of the
// current screen.
func (m *Model) snapCursor() {
	m.cursor = 0
	for i, r := range m.rows() {
		if r.selectable() {
			m.cursor = i
			return
		}
	}
}

func (m *Model) stopEditing() {
	m.editing = false
	m.input.Blur()
}
