package domain

// Mode selects between the two questionnaire flows.
type Mode string

const (
	ModeUnset    Mode = ""
	ModeQuick    Mode = "quick"
	ModeDetailed Mode = "detailed"
)

// Province is one of the 13 provincial/territorial codes.
type Province string

const (
	ProvinceON Province = "ON"
	ProvinceBC Province = "BC"
	ProvinceAB Province = "AB"
	ProvinceSK Province = "SK"
	ProvinceMB Province = "MB"
	ProvinceQC Province = "QC"
	ProvinceNB Province = "NB"
	ProvinceNS Province = "NS"
	ProvincePE Province = "PE"
	ProvinceNL Province = "NL"
	ProvinceYT Province = "YT"
	ProvinceNT Province = "NT"
	ProvinceNU Province = "NU"
)

// AgeRange buckets the filer's age as of December 31 of the tax year.
type AgeRange string

const (
	AgeUnset   AgeRange = ""
	AgeUnder25 AgeRange = "under25"
	Age25To64  AgeRange = "25-64"
	AgeSenior  AgeRange = "65+"
)

// MaritalStatus as of December 31 of the tax year.
type MaritalStatus string

const (
	MaritalUnset     MaritalStatus = ""
	MaritalSingle    MaritalStatus = "single"
	MaritalMarried   MaritalStatus = "married"
	MaritalCommonLaw MaritalStatus = "common-law"
	MaritalSeparated MaritalStatus = "separated"
)

// SpouseIncomeBracket is only meaningful when the filer has a spouse.
type SpouseIncomeBracket string

const (
	SpouseBracketUnset SpouseIncomeBracket = ""
	SpouseBracketNone  SpouseIncomeBracket = "none"
	SpouseBracketLow   SpouseIncomeBracket = "low"
	SpouseBracketHigh  SpouseIncomeBracket = "high"
)

// TriState is a yes/no answer that starts out unanswered.
type TriState string

const (
	TriUnset TriState = ""
	TriNo    TriState = "no"
	TriYes   TriState = "yes"
)

// True reports whether the answer is an explicit yes.
func (t TriState) True() bool { return t == TriYes }

// Answered reports whether the user has answered at all.
func (t TriState) Answered() bool { return t != TriUnset }

// BusinessIncome is a gross/expenses pair for self-employment or
// rental income. Net is derived at estimate time.
type BusinessIncome struct {
	Gross    Money `yaml:"gross" json:"gross"`
	Expenses Money `yaml:"expenses" json:"expenses"`
}

// AnswerSet holds every fact collected by the questionnaire. It is the
// single input to the estimate engine and is mutated only through the
// operations below; the engine never modifies it.
type AnswerSet struct {
	Mode     Mode     `yaml:"mode" json:"mode"`
	TaxYear  int      `yaml:"tax_year" json:"tax_year"`
	Province Province `yaml:"province" json:"province"`

	AgeRange            AgeRange            `yaml:"age_range" json:"age_range"`
	MaritalStatus       MaritalStatus       `yaml:"marital_status" json:"marital_status"`
	SpouseIncomeBracket SpouseIncomeBracket `yaml:"spouse_income_bracket" json:"spouse_income_bracket"`
	SpouseIncome        Money               `yaml:"spouse_income" json:"spouse_income"`

	HasKids              TriState `yaml:"has_kids" json:"has_kids"`
	KidsUnder6           int      `yaml:"kids_under_6" json:"kids_under_6"`
	Kids6To17            int      `yaml:"kids_6_to_17" json:"kids_6_to_17"`
	HasDisabledDependant bool     `yaml:"has_disabled_dependant" json:"has_disabled_dependant"`
	HasElderlyDependant  bool     `yaml:"has_elderly_dependant" json:"has_elderly_dependant"`

	// Collected for future proration support; not used in the estimate.
	IsNewcomer  TriState `yaml:"is_newcomer" json:"is_newcomer"`
	ArrivalDate string   `yaml:"arrival_date" json:"arrival_date"`

	IncomeSources  []string       `yaml:"income_sources" json:"income_sources"`
	T4Slips        []T4Slip       `yaml:"t4_slips" json:"t4_slips"`
	T5Slips        []T5Slip       `yaml:"t5_slips" json:"t5_slips"`
	SelfEmployment BusinessIncome `yaml:"self_employment" json:"self_employment"`
	RentalIncome   BusinessIncome `yaml:"rental_income" json:"rental_income"`

	QuickIncome  Money `yaml:"quick_income" json:"quick_income"`
	QuickTaxPaid Money `yaml:"quick_tax_paid" json:"quick_tax_paid"`

	RRSPContribution  Money `yaml:"rrsp_contribution" json:"rrsp_contribution"`
	ChildcareExpenses Money `yaml:"childcare_expenses" json:"childcare_expenses"`

	LifeEvents          []string `yaml:"life_events" json:"life_events"`
	RentAmount          Money    `yaml:"rent_amount" json:"rent_amount"`
	WFHDays             Money    `yaml:"wfh_days" json:"wfh_days"`
	MedicalExpenses     Money    `yaml:"medical_expenses" json:"medical_expenses"`
	CharitableDonations Money    `yaml:"charitable_donations" json:"charitable_donations"`
	TuitionAmount       Money    `yaml:"tuition_amount" json:"tuition_amount"`
	StudentLoanInterest Money    `yaml:"student_loan_interest" json:"student_loan_interest"`
}

// NewAnswerSet returns an empty answer set ready for a fresh session:
// most recent supported tax year, one blank slip of each kind.
func NewAnswerSet() AnswerSet {
	return AnswerSet{
		TaxYear: TaxYears[0],
		T4Slips: []T4Slip{NewT4Slip(1)},
		T5Slips: []T5Slip{NewT5Slip(1)},
	}
}

// Reset discards every answer and starts the session over.
func (a *AnswerSet) Reset() {
	*a = NewAnswerSet()
}

// HasSpouse reports whether the filer is married or common-law.
func (a *AnswerSet) HasSpouse() bool {
	return a.MaritalStatus == MaritalMarried || a.MaritalStatus == MaritalCommonLaw
}

// IsSenior reports whether the filer is 65 or older.
func (a *AnswerSet) IsSenior() bool {
	return a.AgeRange == AgeSenior
}

// HasIncomeSource reports whether the given source tag is selected.
func (a *AnswerSet) HasIncomeSource(id string) bool {
	return containsTag(a.IncomeSources, id)
}

// ToggleIncomeSource adds the source tag if absent, removes it if
// present. Toggling twice restores the original set.
func (a *AnswerSet) ToggleIncomeSource(id string) {
	a.IncomeSources = toggleTag(a.IncomeSources, id)
}

// HasLifeEvent reports whether the given life-event tag is selected.
func (a *AnswerSet) HasLifeEvent(id string) bool {
	return containsTag(a.LifeEvents, id)
}

// ToggleLifeEvent adds the life-event tag if absent, removes it if
// present.
func (a *AnswerSet) ToggleLifeEvent(id string) {
	a.LifeEvents = toggleTag(a.LifeEvents, id)
}

func containsTag(tags []string, id string) bool {
	for _, t := range tags {
		if t == id {
			return true
		}
	}
	return false
}

func toggleTag(tags []string, id string) []string {
	for i, t := range tags {
		if t == id {
			return append(tags[:i], tags[i+1:]...)
		}
	}
	return append(tags, id)
}
