package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/claimit/claimit/internal/domain"
	"github.com/claimit/claimit/internal/output"
	"github.com/claimit/claimit/internal/steps"
)

// The wizard renders every screen from a flat list of rows, rebuilt
// from the AnswerSet after each change. Rows carry closures that
// mutate the answers through the domain operations, so the screens
// themselves hold no state.

type rowKind int

const (
	rowNote rowKind = iota
	rowOption
	rowCheck
	rowInput
	rowAction
)

type row struct {
	kind     rowKind
	label    string
	sub      string
	selected bool
	get      func() string
	set      func(string)
	act      func()
}

func (r row) selectable() bool { return r.kind != rowNote }

func noteRow(label string) row { return row{kind: rowNote, label: label} }

func optionRow(label, sub string, selected bool, act func()) row {
	return row{kind: rowOption, label: label, sub: sub, selected: selected, act: act}
}

func checkRow(label, sub string, selected bool, act func()) row {
	return row{kind: rowCheck, label: label, sub: sub, selected: selected, act: act}
}

func inputRow(label string, field *domain.Money) row {
	return row{
		kind:  rowInput,
		label: label,
		get:   func() string { return string(*field) },
		set:   func(s string) { *field = domain.Money(s) },
	}
}

func stringInputRow(label string, field *string) row {
	return row{
		kind:  rowInput,
		label: label,
		get:   func() string { return *field },
		set:   func(s string) { *field = s },
	}
}

func countInputRow(label string, field *int) row {
	return row{
		kind:  rowInput,
		label: label,
		get:   func() string { return strconv.Itoa(*field) },
		set: func(s string) {
			n, err := strconv.Atoi(strings.TrimSpace(s))
			if err != nil || n < 0 {
				n = 0
			}
			*field = n
		},
	}
}

func actionRow(label string, act func()) row {
	return row{kind: rowAction, label: label, act: act}
}

// rows builds the screen for the current step.
func (m *Model) rows() []row {
	a := &m.answers
	switch m.currentStep() {
	case steps.StepWelcome:
		return m.welcomeRows()
	case steps.StepProvince:
		return m.provinceRows()
	case steps.StepAboutYou:
		return m.aboutYouRows()
	case steps.StepDependants:
		return m.dependantRows()
	case steps.StepNewcomer:
		return m.newcomerRows()
	case steps.StepQuickIncome:
		return []row{
			inputRow("Total income before taxes", &a.QuickIncome),
			inputRow("Total tax already deducted", &a.QuickTaxPaid),
			noteRow("Don't have exact numbers? Estimate: gross pay x pay periods"),
		}
	case steps.StepQuickDeductions, steps.StepDeductions:
		return m.deductionRows()
	case steps.StepQuickLife:
		return m.quickLifeRows()
	case steps.StepIncomeSources:
		return m.incomeSourceRows()
	case steps.StepT4:
		return m.t4Rows()
	case steps.StepInvestments:
		return m.t5Rows()
	case steps.StepSelfEmployment:
		return m.businessRows(&a.SelfEmployment, "Gross revenue", "Business expenses")
	case steps.StepRental:
		return m.businessRows(&a.RentalIncome, "Gross rent collected", "Rental expenses")
	case steps.StepLifeEvents:
		return m.lifeEventRows()
	case steps.StepLifeDetails:
		return m.lifeDetailRows()
	case steps.StepResults:
		return []row{actionRow("Start over", func() { m.restart() })}
	}
	return nil
}

func (m *Model) welcomeRows() []row {
	a := &m.answers
	rows := []row{
		noteRow("Find tax credits you didn't know existed."),
		noteRow("Filing for tax year:"),
	}
	for _, year := range domain.TaxYears {
		y := year
		rows = append(rows, optionRow(strconv.Itoa(y), "", a.TaxYear == y, func() {
			a.TaxYear = y
		}))
	}
	rows = append(rows,
		optionRow("QUICK (~2 minutes)", "Perfect if you just have a regular job (T4)",
			a.Mode == domain.ModeQuick, func() {
				a.Mode = domain.ModeQuick
				m.advance()
			}),
		optionRow("DETAILED (~5-10 minutes)", "Investments, self-employment, maximize credits",
			a.Mode == domain.ModeDetailed, func() {
				a.Mode = domain.ModeDetailed
				m.advance()
			}),
		noteRow("Your data stays on your device."),
	)
	return rows
}

func (m *Model) provinceRows() []row {
	a := &m.answers
	rows := make([]row, 0, len(domain.Provinces)+1)
	for _, p := range domain.Provinces {
		info := p
		rows = append(rows, optionRow(info.Name, string(info.Code), a.Province == info.Code, func() {
			a.Province = info.Code
		}))
	}
	if info, ok := domain.ProvinceByCode(a.Province); ok && info.SeparateReturn {
		rows = append(rows, noteRow(info.Name+" files a separate provincial return."))
	}
	return rows
}

func (m *Model) aboutYouRows() []row {
	a := &m.answers
	rows := []row{noteRow("Age range")}
	for _, opt := range []struct {
		value domain.AgeRange
		label string
		sub   string
	}{
		{domain.AgeUnder25, "Under 25", ""},
		{domain.Age25To64, "25 to 64", ""},
		{domain.AgeSenior, "65 or older", "Unlocks Age Amount!"},
	} {
		o := opt
		rows = append(rows, optionRow(o.label, o.sub, a.AgeRange == o.value, func() {
			a.AgeRange = o.value
		}))
	}

	rows = append(rows, noteRow("Relationship status"))
	for _, opt := range []struct {
		value domain.MaritalStatus
		label string
		sub   string
	}{
		{domain.MaritalSingle, "Single", ""},
		{domain.MaritalMarried, "Married", ""},
		{domain.MaritalCommonLaw, "Common-law", "Living together 12+ months"},
		{domain.MaritalSeparated, "Separated / Divorced / Widowed", ""},
	} {
		o := opt
		rows = append(rows, optionRow(o.label, o.sub, a.MaritalStatus == o.value, func() {
			a.MaritalStatus = o.value
		}))
	}

	if a.HasSpouse() {
		rows = append(rows, noteRow(fmt.Sprintf("Spouse's income in %d?", a.TaxYear)))
		for _, opt := range []struct {
			value domain.SpouseIncomeBracket
			label string
			sub   string
		}{
			{domain.SpouseBracketNone, "No income", "Full Spousal Amount!"},
			{domain.SpouseBracketLow, "Under $17,000", "Partial Spousal Amount"},
			{domain.SpouseBracketHigh, "$17,000 or more", ""},
		} {
			o := opt
			rows = append(rows, optionRow(o.label, o.sub, a.SpouseIncomeBracket == o.value, func() {
				a.SpouseIncomeBracket = o.value
			}))
		}
		if a.SpouseIncomeBracket == domain.SpouseBracketLow {
			rows = append(rows, inputRow("Approximately how much?", &a.SpouseIncome))
		}
	}
	return rows
}

func (m *Model) dependantRows() []row {
	a := &m.answers
	rows := []row{
		noteRow("Children under 18?"),
		optionRow("No kids", "", a.HasKids == domain.TriNo, func() {
			a.HasKids = domain.TriNo
			a.KidsUnder6 = 0
			a.Kids6To17 = 0
		}),
		optionRow("Yes!", "", a.HasKids == domain.TriYes, func() {
			a.HasKids = domain.TriYes
		}),
	}
	if a.HasKids.True() {
		rows = append(rows,
			countInputRow("Kids under 6 (higher childcare limits!)", &a.KidsUnder6),
			countInputRow("Kids ages 6-17", &a.Kids6To17),
		)
	}
	rows = append(rows,
		checkRow("I support an elderly parent", "May qualify for Caregiver Amount",
			a.HasElderlyDependant, func() { a.HasElderlyDependant = !a.HasElderlyDependant }),
		checkRow("I care for a family member with a disability", "May qualify for Caregiver Amount",
			a.HasDisabledDependant, func() { a.HasDisabledDependant = !a.HasDisabledDependant }),
	)
	return rows
}

func (m *Model) newcomerRows() []row {
	a := &m.answers
	rows := []row{
		optionRow("Nope, been here!", "Resident for the full year", a.IsNewcomer == domain.TriNo, func() {
			a.IsNewcomer = domain.TriNo
		}),
		optionRow(fmt.Sprintf("Yes, moved to Canada in %d", a.TaxYear), "Welcome!", a.IsNewcomer == domain.TriYes, func() {
			a.IsNewcomer = domain.TriYes
		}),
	}
	if a.IsNewcomer.True() {
		rows = append(rows,
			stringInputRow("When did you arrive? (YYYY-MM-DD)", &a.ArrivalDate),
			noteRow("You only pay tax on income earned AFTER you arrived!"),
		)
	}
	return rows
}

func (m *Model) deductionRows() []row {
	a := &m.answers
	rows := []row{
		inputRow(fmt.Sprintf("RRSP contributions in %d", a.TaxYear), &a.RRSPContribution),
	}
	if a.HasKids.True() {
		limit := a.KidsUnder6*8000 + a.Kids6To17*5000
		rows = append(rows,
			inputRow("Childcare expenses", &a.ChildcareExpenses),
			noteRow(fmt.Sprintf("Childcare max: $%d", limit)),
		)
	}
	return rows
}

// quickLifeRows is the abbreviated life screen with inline details.
func (m *Model) quickLifeRows() []row {
	a := &m.answers
	quick := []string{"paidRent", "wfh", "firstHome", "medical", "charity", "tuition"}
	rows := make([]row, 0, len(quick)*2)
	for _, entry := range domain.LifeEventCatalog {
		e := entry
		if !containsString(quick, e.ID) {
			continue
		}
		rows = append(rows, checkRow(e.Label, "", a.HasLifeEvent(e.ID), func() {
			a.ToggleLifeEvent(e.ID)
		}))
	}
	if len(a.LifeEvents) > 0 {
		rows = append(rows, noteRow("Quick details:"))
		rows = append(rows, m.lifeDetailInputs()...)
	}
	return rows
}

func (m *Model) incomeSourceRows() []row {
	a := &m.answers
	rows := make([]row, 0, len(domain.IncomeSourceCatalog))
	for _, entry := range domain.IncomeSourceCatalog {
		e := entry
		rows = append(rows, checkRow(e.Label, e.Sub, a.HasIncomeSource(e.ID), func() {
			a.ToggleIncomeSource(e.ID)
		}))
	}
	return rows
}

func (m *Model) t4Rows() []row {
	a := &m.answers
	var rows []row
	for i := range a.T4Slips {
		slip := &a.T4Slips[i]
		rows = append(rows, noteRow(fmt.Sprintf("T4 slip %d of %d", i+1, len(a.T4Slips))))
		rows = append(rows,
			stringInputRow("Employer", &slip.Employer),
			inputRow("Box 14 - Employment income", &slip.Income),
			inputRow("Box 22 - Income tax deducted", &slip.TaxDeducted),
			inputRow("Box 16 - CPP contributions", &slip.CPP),
			inputRow("Box 18 - EI premiums", &slip.EI),
			inputRow("Box 20 - RPP contributions", &slip.RPP),
			inputRow("Box 44 - Union dues", &slip.UnionDues),
		)
		if len(a.T4Slips) > 1 {
			id := slip.ID
			rows = append(rows, actionRow("Remove this slip", func() {
				a.RemoveT4(id)
			}))
		}
	}
	rows = append(rows,
		actionRow("Add another T4", func() { a.AddT4() }),
		noteRow("All fields except income are optional."),
	)
	return rows
}

func (m *Model) t5Rows() []row {
	a := &m.answers
	var rows []row
	for i := range a.T5Slips {
		slip := &a.T5Slips[i]
		rows = append(rows, noteRow(fmt.Sprintf("T5/T3 slip %d of %d", i+1, len(a.T5Slips))))
		rows = append(rows,
			stringInputRow("Institution", &slip.Institution),
			inputRow("Box 13 - Interest", &slip.Interest),
			inputRow("Box 10 - Actual dividends", &slip.DividendsActual),
			inputRow("Box 11 - Taxable dividends", &slip.DividendsTaxable),
			inputRow("Box 18 - Capital gains", &slip.CapitalGains),
		)
		if len(a.T5Slips) > 1 {
			id := slip.ID
			rows = append(rows, actionRow("Remove this slip", func() {
				a.RemoveT5(id)
			}))
		}
	}
	rows = append(rows, actionRow("Add another T5/T3", func() { a.AddT5() }))
	return rows
}

func (m *Model) businessRows(b *domain.BusinessIncome, grossLabel, expenseLabel string) []row {
	rows := []row{
		inputRow(grossLabel, &b.Gross),
		inputRow(expenseLabel, &b.Expenses),
	}
	if !b.Gross.IsZero() {
		net := b.Gross.Decimal().Sub(b.Expenses.Decimal())
		rows = append(rows, noteRow("Net: "+output.FormatCurrency(net)))
	}
	return rows
}

func (m *Model) lifeEventRows() []row {
	a := &m.answers
	rows := make([]row, 0, len(domain.LifeEventCatalog))
	category := ""
	for _, entry := range domain.LifeEventCatalog {
		e := entry
		if e.Category != category {
			category = e.Category
			rows = append(rows, noteRow(strings.ToUpper(category)))
		}
		rows = append(rows, checkRow(e.Label, "", a.HasLifeEvent(e.ID), func() {
			a.ToggleLifeEvent(e.ID)
		}))
	}
	return rows
}

func (m *Model) lifeDetailRows() []row {
	rows := m.lifeDetailInputs()
	if len(rows) == 0 {
		rows = append(rows, noteRow("Nothing to add for the items you checked."))
	}
	return rows
}

// lifeDetailInputs returns one amount field per checked event that
// needs a number.
func (m *Model) lifeDetailInputs() []row {
	a := &m.answers
	var rows []row
	if a.HasLifeEvent("paidRent") {
		rows = append(rows, inputRow("Total rent paid", &a.RentAmount))
	}
	if a.HasLifeEvent("wfh") {
		rows = append(rows, inputRow("Days worked from home (max 250)", &a.WFHDays))
	}
	if a.HasLifeEvent("medical") {
		rows = append(rows, inputRow("Medical expenses", &a.MedicalExpenses))
	}
	if a.HasLifeEvent("charity") {
		rows = append(rows, inputRow("Charitable donations", &a.CharitableDonations))
	}
	if a.HasLifeEvent("tuition") {
		rows = append(rows, inputRow("Tuition (T2202)", &a.TuitionAmount))
	}
	if a.HasLifeEvent("studentLoan") {
		rows = append(rows, inputRow("Student loan interest", &a.StudentLoanInterest))
	}
	return rows
}

// canAdvance reports whether the current screen has the answers it
// needs before the continue key works.
func (m *Model) canAdvance() bool {
	a := &m.answers
	switch m.currentStep() {
	case steps.StepWelcome:
		return a.Mode != domain.ModeUnset
	case steps.StepProvince:
		return a.Province != ""
	case steps.StepAboutYou:
		if a.AgeRange == domain.AgeUnset || a.MaritalStatus == domain.MaritalUnset {
			return false
		}
		return !a.HasSpouse() || a.SpouseIncomeBracket != domain.SpouseBracketUnset
	case steps.StepDependants:
		return a.HasKids.Answered()
	case steps.StepNewcomer:
		return a.IsNewcomer.Answered()
	case steps.StepIncomeSources:
		return len(a.IncomeSources) > 0
	case steps.StepT4:
		for _, s := range a.T4Slips {
			if !s.Income.IsZero() {
				return true
			}
		}
		return false
	case steps.StepResults:
		return false
	}
	return true
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
