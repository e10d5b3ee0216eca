package tui

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/claimit/claimit/internal/output"
	"github.com/claimit/claimit/internal/steps"
	"github.com/claimit/claimit/internal/tui/components"
)

var stepTitles = map[steps.Step][2]string{
	steps.StepWelcome:        {"ClaimIt", "Find tax credits you didn't know existed."},
	steps.StepProvince:       {"Where do you call home?", "Your province on December 31"},
	steps.StepAboutYou:       {"A bit about you", "As of December 31"},
	steps.StepDependants:     {"Any dependants?", "People who rely on you financially"},
	steps.StepNewcomer:       {"New to Canada?", "Did you move to Canada this year?"},
	steps.StepQuickIncome:    {"Your income", "Just the basics!"},
	steps.StepQuickDeductions: {"Quick deductions", "These reduce your taxable income"},
	steps.StepQuickLife:      {"Life this year", "Check all that apply!"},
	steps.StepIncomeSources:  {"Your income sources", "Check all that apply"},
	steps.StepT4:             {"T4 - Employment income", "Enter info from your T4 slip(s)"},
	steps.StepInvestments:    {"Investment income", "T5 from banks, T3 from funds"},
	steps.StepSelfEmployment: {"Self-employment", "Freelance, consulting, side hustle"},
	steps.StepRental:         {"Rental income", "Landlord income and expenses"},
	steps.StepDeductions:     {"Deductions", "Reduce your taxable income"},
	steps.StepLifeEvents:     {"Life this year", "Check all that apply!"},
	steps.StepLifeDetails:    {"A few details", "For the items you checked"},
	steps.StepResults:        {"Your results!", ""},
}

// View renders the current screen.
func (m *Model) View() string {
	var b strings.Builder

	step := m.currentStep()
	titles := stepTitles[step]
	b.WriteString(TitleStyle.Render(titles[0]))
	b.WriteString("\n")
	if titles[1] != "" {
		b.WriteString(SubtitleStyle.Render(titles[1]))
		b.WriteString("\n")
	}

	if step != steps.StepWelcome && step != steps.StepResults {
		bar := components.NewProgressBar(steps.Progress(m.active, m.pos)).
			WithLabel(steps.TimeLeft(&m.answers, m.active, m.pos)).
			WithWidth(min(40, m.width-20))
		b.WriteString(bar.Render())
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if step == steps.StepResults {
		b.WriteString(m.viewResults())
	} else {
		b.WriteString(m.viewRows())
	}

	b.WriteString("\n")
	b.WriteString(m.viewFooter(step))
	return AppStyle.Render(b.String())
}

func (m *Model) viewRows() string {
	var b strings.Builder
	for i, r := range m.rows() {
		cursor := "  "
		if i == m.cursor {
			cursor = SelectedItemStyle.Render("> ")
		}

		switch r.kind {
		case rowNote:
			b.WriteString("  " + NoteStyle.Render(r.label))

		case rowOption, rowCheck:
			marker := "( )"
			if r.kind == rowCheck {
				marker = "[ ]"
			}
			if r.selected {
				if r.kind == rowCheck {
					marker = "[x]"
				} else {
					marker = "(•)"
				}
			}
			line := fmt.Sprintf("%s %s", marker, r.label)
			if r.selected {
				line = SelectedItemStyle.Render(line)
			} else {
				line = UnselectedItemStyle.Render(line)
			}
			b.WriteString(cursor + line)
			if r.sub != "" {
				b.WriteString(" " + SubTextStyle.Render(r.sub))
			}

		case rowInput:
			if m.editing && i == m.cursor {
				b.WriteString(cursor + r.label + ": " + m.input.View())
			} else {
				value := r.get()
				if value == "" {
					value = SubTextStyle.Render("(not set)")
				}
				b.WriteString(cursor + r.label + ": " + value)
			}

		case rowAction:
			b.WriteString(cursor + "[" + r.label + "]")
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m *Model) viewResults() string {
	var b strings.Builder

	amount := output.FormatCurrency(decimal.NewFromInt(m.result.Estimate).Abs())
	if m.result.Estimate >= 0 {
		b.WriteString(EstimateStyle.Render("ESTIMATED REFUND"))
		b.WriteString("\n")
		b.WriteString(EstimateStyle.Render(amount))
	} else {
		b.WriteString(OwingStyle.Render("ESTIMATED OWING"))
		b.WriteString("\n")
		b.WriteString(OwingStyle.Render(amount))
		b.WriteString("\n")
		b.WriteString(SubTextStyle.Render("Don't worry, you can reduce this!"))
	}
	b.WriteString("\n\n")

	if len(m.result.CreditsFound) > 0 {
		b.WriteString(TitleStyle.Render("Credits you qualify for"))
		b.WriteString("\n")
		for _, c := range m.result.CreditsFound {
			b.WriteString(fmt.Sprintf("  %s  %s\n", c.Label, SubTextStyle.Render(c.Value)))
		}
		b.WriteString("\n")
	}
	if len(m.result.CreditsMissing) > 0 {
		b.WriteString(OwingStyle.Render("Credits you might be missing"))
		b.WriteString("\n")
		for _, c := range m.result.CreditsMissing {
			b.WriteString(fmt.Sprintf("  %s  %s\n", c.Label, SubTextStyle.Render(c.Value)))
		}
	}

	return ResultsBoxStyle.Render(b.String())
}

func (m *Model) viewFooter(step steps.Step) string {
	var b strings.Builder

	if step != steps.StepWelcome && step != steps.StepResults {
		estimate := output.FormatCurrency(decimal.NewFromInt(m.result.Estimate))
		b.WriteString(SubTextStyle.Render("Running estimate: "))
		if m.result.Estimate >= 0 {
			b.WriteString(EstimateStyle.Render(estimate))
		} else {
			b.WriteString(OwingStyle.Render(estimate))
		}
		b.WriteString("\n")
	}

	if m.editing {
		b.WriteString(HelpStyle.Render("enter/esc done editing"))
		return b.String()
	}

	keys := "↑/↓ move • enter select • ←/→ back/continue • q quit"
	if step == steps.StepResults {
		keys = "r start over • ← back • q quit"
	} else if !m.canAdvance() {
		keys = "↑/↓ move • enter select • ← back • q quit"
	}
	b.WriteString(HelpStyle.Render(keys))
	return b.String()
}
