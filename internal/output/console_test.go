package output

import (
	"testing"

	json "github.com/goccy/go-json"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/claimit/claimit/internal/calculation"
	"github.com/claimit/claimit/internal/domain"
)

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "$0"},
		{"950", "$950"},
		{"1670", "$1,670"},
		{"15418.015", "$15,418"},
		{"-278", "-$278"},
		{"1234567", "$1,234,567"},
	}
	for _, tt := range tests {
		d, err := decimal.NewFromString(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, FormatCurrency(d), "FormatCurrency(%s)", tt.in)
	}
}

func TestFormatConsole(t *testing.T) {
	engine := calculation.NewEstimateEngine()
	a := domain.NewAnswerSet()
	a.Mode = domain.ModeQuick
	a.Province = domain.ProvinceQC
	a.QuickIncome = "65000"
	a.QuickTaxPaid = "15000"

	out := FormatConsole(&a, engine.ComputeEstimate(&a))

	assert.Contains(t, out, "ESTIMATED OWING", "Negative estimate renders as owing")
	assert.Contains(t, out, "Credits you qualify for")
	assert.Contains(t, out, "Basic Personal Amount")
	assert.Contains(t, out, "Credits you might be missing")
	assert.Contains(t, out, "separate provincial return", "Quebec note is surfaced")

	a.QuickTaxPaid = "25000"
	out = FormatConsole(&a, engine.ComputeEstimate(&a))
	assert.Contains(t, out, "ESTIMATED REFUND")
}

func TestFormatJSON(t *testing.T) {
	engine := calculation.NewEstimateEngine()
	a := domain.NewAnswerSet()
	a.Mode = domain.ModeQuick
	a.Province = domain.ProvinceON
	a.QuickIncome = "65000"
	a.QuickTaxPaid = "15000"

	out, err := FormatJSON(engine.ComputeEstimate(&a))
	require.NoError(t, err)

	var decoded struct {
		Estimate       int64                    `json:"estimate"`
		CreditsFound   []calculation.CreditItem `json:"credits_found"`
		CreditsMissing []calculation.CreditItem `json:"credits_missing"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, int64(-278), decoded.Estimate, "Round-trips the documented scenario")
	assert.NotEmpty(t, decoded.CreditsFound)
	assert.NotEmpty(t, decoded.CreditsMissing)
}
