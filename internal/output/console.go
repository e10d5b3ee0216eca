package output

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/claimit/claimit/internal/calculation"
	"github.com/claimit/claimit/internal/domain"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	owingStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	sectionStyle = lipgloss.NewStyle().Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// FormatConsole renders the estimate result for terminal display.
func FormatConsole(answers *domain.AnswerSet, result calculation.EstimateResult) string {
	var b strings.Builder

	amount := FormatCurrency(decimal.NewFromInt(result.Estimate).Abs())
	if result.Estimate >= 0 {
		b.WriteString(headerStyle.Render(fmt.Sprintf("ESTIMATED REFUND: %s", amount)))
	} else {
		b.WriteString(owingStyle.Render(fmt.Sprintf("ESTIMATED OWING: %s", amount)))
	}
	b.WriteString("\n")

	b.WriteString(mutedStyle.Render(fmt.Sprintf("Tax year %d | Total income %s | Tax withheld %s | Liability %s",
		answers.TaxYear,
		FormatCurrency(result.TotalIncome),
		FormatCurrency(result.TaxWithheld),
		FormatCurrency(result.Liability))))
	b.WriteString("\n")

	if info, ok := domain.ProvinceByCode(answers.Province); ok && info.SeparateReturn {
		b.WriteString(mutedStyle.Render(fmt.Sprintf("Note: %s files a separate provincial return.", info.Name)))
		b.WriteString("\n")
	}

	if len(result.CreditsFound) > 0 {
		b.WriteString("\n")
		b.WriteString(sectionStyle.Render("Credits you qualify for"))
		b.WriteString("\n")
		writeCreditList(&b, result.CreditsFound)
	}
	if len(result.CreditsMissing) > 0 {
		b.WriteString("\n")
		b.WriteString(sectionStyle.Render("Credits you might be missing"))
		b.WriteString("\n")
		writeCreditList(&b, result.CreditsMissing)
	}
	return b.String()
}

func writeCreditList(b *strings.Builder, items []calculation.CreditItem) {
	width := 0
	for _, c := range items {
		if len(c.Label) > width {
			width = len(c.Label)
		}
	}
	for _, c := range items {
		fmt.Fprintf(b, "  %-*s  %s\n", width, c.Label, c.Value)
	}
}

// FormatCurrency renders a dollar amount with thousands separators and
// no cents, matching the questionnaire's display style.
func FormatCurrency(d decimal.Decimal) string {
	neg := d.IsNegative()
	s := d.Abs().Round(0).String()

	var grouped strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			grouped.WriteByte(',')
		}
		grouped.WriteRune(r)
	}
	if neg {
		return "-$" + grouped.String()
	}
	return "$" + grouped.String()
}
