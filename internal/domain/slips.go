package domain

// T4Slip is one employer's statement of employment income. Field names
// follow the boxes on the paper slip; only income is required for a
// useful estimate.
type T4Slip struct {
	ID          int    `yaml:"id" json:"id"`
	Employer    string `yaml:"employer" json:"employer"`
	Income      Money  `yaml:"box14_income" json:"box14_income"`
	TaxDeducted Money  `yaml:"box22_tax_deducted" json:"box22_tax_deducted"`
	CPP         Money  `yaml:"box16_cpp" json:"box16_cpp"`
	EI          Money  `yaml:"box18_ei" json:"box18_ei"`
	RPP         Money  `yaml:"box20_rpp" json:"box20_rpp"`
	UnionDues   Money  `yaml:"box44_union_dues" json:"box44_union_dues"`
}

// NewT4Slip returns an empty employment slip with the given id.
func NewT4Slip(id int) T4Slip {
	return T4Slip{ID: id}
}

// T5Slip is one institution's statement of investment income. T3 slips
// from funds are entered here as well.
type T5Slip struct {
	ID               int    `yaml:"id" json:"id"`
	Institution      string `yaml:"institution" json:"institution"`
	Interest         Money  `yaml:"box13_interest" json:"box13_interest"`
	DividendsActual  Money  `yaml:"box10_dividends_actual" json:"box10_dividends_actual"`
	DividendsTaxable Money  `yaml:"box11_dividends_taxable" json:"box11_dividends_taxable"`
	CapitalGains     Money  `yaml:"box18_capital_gains" json:"box18_capital_gains"`
}

// NewT5Slip returns an empty investment slip with the given id.
func NewT5Slip(id int) T5Slip {
	return T5Slip{ID: id}
}

// AddT4 appends a blank employment slip and returns its id. Ids are
// allocated as max(existing)+1 and never reused within a session.
func (a *AnswerSet) AddT4() int {
	id := nextSlipID(t4IDs(a.T4Slips))
	a.T4Slips = append(a.T4Slips, NewT4Slip(id))
	return id
}

// RemoveT4 deletes the slip with the given id. Removing the last
// remaining slip is a no-op: the list never becomes empty.
func (a *AnswerSet) RemoveT4(id int) bool {
	if len(a.T4Slips) <= 1 {
		return false
	}
	for i, s := range a.T4Slips {
		if s.ID == id {
			a.T4Slips = append(a.T4Slips[:i], a.T4Slips[i+1:]...)
			return true
		}
	}
	return false
}

// T4ByID returns a pointer to the slip with the given id, or nil.
func (a *AnswerSet) T4ByID(id int) *T4Slip {
	for i := range a.T4Slips {
		if a.T4Slips[i].ID == id {
			return &a.T4Slips[i]
		}
	}
	return nil
}

// AddT5 appends a blank investment slip and returns its id.
func (a *AnswerSet) AddT5() int {
	id := nextSlipID(t5IDs(a.T5Slips))
	a.T5Slips = append(a.T5Slips, NewT5Slip(id))
	return id
}

// RemoveT5 deletes the slip with the given id, refusing to empty the
// list.
func (a *AnswerSet) RemoveT5(id int) bool {
	if len(a.T5Slips) <= 1 {
		return false
	}
	for i, s := range a.T5Slips {
		if s.ID == id {
			a.T5Slips = append(a.T5Slips[:i], a.T5Slips[i+1:]...)
			return true
		}
	}
	return false
}

// T5ByID returns a pointer to the slip with the given id, or nil.
func (a *AnswerSet) T5ByID(id int) *T5Slip {
	for i := range a.T5Slips {
		if a.T5Slips[i].ID == id {
			return &a.T5Slips[i]
		}
	}
	return nil
}

func nextSlipID(ids []int) int {
	max := 0
	for _, id := range ids {
		if id > max {
			max = id
		}
	}
	return max + 1
}

func t4IDs(slips []T4Slip) []int {
	ids := make([]int, len(slips))
	for i, s := range slips {
		ids[i] = s.ID
	}
	return ids
}

func t5IDs(slips []T5Slip) []int {
	ids := make([]int, len(slips))
	for i, s := range slips {
		ids[i] = s.ID
	}
	return ids
}
