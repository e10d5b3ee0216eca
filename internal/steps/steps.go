// Package steps derives the ordered list of questionnaire screens from
// the current answers. The active list is computed once per change and
// navigation is a plain index advance, so conditional screens appear
// and disappear without any offset bookkeeping in the wizard.
package steps

import (
	"github.com/claimit/claimit/internal/domain"
)

// Step identifies one questionnaire screen.
type Step string

const (
	StepWelcome         Step = "welcome"
	StepProvince        Step = "province"
	StepAboutYou        Step = "about-you"
	StepDependants      Step = "dependants"
	StepNewcomer        Step = "newcomer"
	StepQuickIncome     Step = "quick-income"
	StepQuickDeductions Step = "quick-deductions"
	StepQuickLife       Step = "quick-life"
	StepIncomeSources   Step = "income-sources"
	StepT4              Step = "t4"
	StepInvestments     Step = "investments"
	StepSelfEmployment  Step = "self-employment"
	StepRental          Step = "rental"
	StepDeductions      Step = "deductions"
	StepLifeEvents      Step = "life-events"
	StepLifeDetails     Step = "life-details"
	StepResults         Step = "results"
)

// Active returns the ordered screens for the given answers. Until a
// mode is chosen only the welcome screen is active. Selected income
// sources unlock their slip-entry screens; checked life events unlock
// the detail screen.
func Active(a *domain.AnswerSet) []Step {
	list := []Step{StepWelcome}
	if a.Mode == domain.ModeUnset {
		return list
	}

	list = append(list, StepProvince, StepAboutYou, StepDependants, StepNewcomer)

	if a.Mode == domain.ModeQuick {
		list = append(list, StepQuickIncome, StepQuickDeductions, StepQuickLife)
		return append(list, StepResults)
	}

	list = append(list, StepIncomeSources)
	if a.HasIncomeSource("t4") {
		list = append(list, StepT4)
	}
	if a.HasIncomeSource("t5") || a.HasIncomeSource("t3") {
		list = append(list, StepInvestments)
	}
	if a.HasIncomeSource("self") {
		list = append(list, StepSelfEmployment)
	}
	if a.HasIncomeSource("rental") {
		list = append(list, StepRental)
	}
	list = append(list, StepDeductions, StepLifeEvents)
	if len(a.LifeEvents) > 0 {
		list = append(list, StepLifeDetails)
	}
	return append(list, StepResults)
}

// Index locates a step in the active list, or -1.
func Index(list []Step, step Step) int {
	for i, s := range list {
		if s == step {
			return i
		}
	}
	return -1
}

// Clamp keeps a position valid for the list, for when a toggle shrinks
// the active list under the cursor.
func Clamp(list []Step, pos int) int {
	if pos < 0 {
		return 0
	}
	if pos >= len(list) {
		return len(list) - 1
	}
	return pos
}

// Progress returns percent complete for a position past the welcome
// screen, zero on the welcome screen itself.
func Progress(list []Step, pos int) int {
	if pos <= 0 || len(list) == 0 {
		return 0
	}
	pct := pos * 100 / len(list)
	if pct > 100 {
		return 100
	}
	return pct
}

// TimeLeft renders the remaining-time hint for the position.
func TimeLeft(a *domain.AnswerSet, list []Step, pos int) string {
	return domain.TimeEstimate(a.Mode, pos, len(list))
}
