package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/claimit/claimit/internal/domain"
)

const sampleAnswers = `
mode: detailed
tax_year: 2024
province: ON
age_range: 25-64
marital_status: married
spouse_income_bracket: low
spouse_income: "12000"
has_kids: "yes"
kids_under_6: 1
kids_6_to_17: 0
income_sources: [t4, t5]
t4_slips:
  - id: 1
    employer: Acme
    box14_income: 80000
    box22_tax_deducted: "18,000"
t5_slips:
  - id: 1
    box13_interest: "250"
rrsp_contribution: "6000"
life_events: [paidRent, wfh]
rent_amount: "18000"
wfh_days: "200"
`

func TestInputParser_LoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "answers.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleAnswers), 0644))

	parser := NewInputParser()
	answers, err := parser.LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, domain.ModeDetailed, answers.Mode)
	assert.Equal(t, 2024, answers.TaxYear)
	assert.Equal(t, domain.ProvinceON, answers.Province)
	assert.True(t, answers.HasSpouse(), "Married implies spouse")
	assert.True(t, answers.HasKids.True())
	require.Len(t, answers.T4Slips, 1)
	assert.True(t, answers.T4Slips[0].Income.Decimal().Equal(decimal.NewFromInt(80000)),
		"Numeric YAML scalars land in the free-text fields")
	assert.True(t, answers.T4Slips[0].TaxDeducted.Decimal().Equal(decimal.NewFromInt(18000)),
		"Formatted amounts parse too")
	assert.True(t, answers.HasLifeEvent("wfh"))
}

func TestInputParser_LoadFromFile_Missing(t *testing.T) {
	parser := NewInputParser()
	_, err := parser.LoadFromFile("does-not-exist.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read file")
}

func TestInputParser_Parse_BadYAML(t *testing.T) {
	parser := NewInputParser()
	_, err := parser.Parse([]byte("mode: [unclosed"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestInputParser_Normalize(t *testing.T) {
	parser := NewInputParser()

	answers, err := parser.Parse([]byte(`
mode: detailed
tax_year: 1999
t4_slips:
  - id: 2
    box14_income: "1"
  - id: 2
    box14_income: "2"
  - id: 0
    box14_income: "3"
`))
	require.NoError(t, err)

	assert.Equal(t, domain.TaxYears[0], answers.TaxYear, "Unsupported year falls back to the latest")
	require.Len(t, answers.T5Slips, 1, "Missing slip list gets one blank slip")

	ids := map[int]bool{}
	for _, s := range answers.T4Slips {
		assert.Greater(t, s.ID, 0, "Ids are positive after normalization")
		assert.False(t, ids[s.ID], "Ids are unique after normalization")
		ids[s.ID] = true
	}

	// Adding after normalization still allocates past the maximum.
	newID := answers.AddT4()
	assert.False(t, ids[newID], "Fresh id does not collide")
}

func TestInputParser_Parse_EmptyFileStillEstimable(t *testing.T) {
	parser := NewInputParser()
	answers, err := parser.Parse([]byte(""))
	require.NoError(t, err)

	assert.Len(t, answers.T4Slips, 1, "Defaults survive an empty file")
	assert.Equal(t, domain.TaxYears[0], answers.TaxYear)
}
