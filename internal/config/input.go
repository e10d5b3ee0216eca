package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/claimit/claimit/internal/domain"
)

// InputParser loads answer files for the CLI path. The questionnaire
// tolerates almost anything (bad numerics coerce to zero at estimate
// time), so normalization only restores structural invariants; the
// only hard failures are unreadable files and invalid YAML.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads an AnswerSet from a YAML file.
func (ip *InputParser) LoadFromFile(filename string) (*domain.AnswerSet, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes and normalizes answer-file bytes.
func (ip *InputParser) Parse(data []byte) (*domain.AnswerSet, error) {
	answers := domain.NewAnswerSet()
	if err := yaml.Unmarshal(data, &answers); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	ip.Normalize(&answers)
	return &answers, nil
}

// Normalize restores the structural invariants a hand-edited file may
// have broken: a supported tax year, at least one slip of each kind,
// and unique slip ids.
func (ip *InputParser) Normalize(a *domain.AnswerSet) {
	if !supportedYear(a.TaxYear) {
		a.TaxYear = domain.TaxYears[0]
	}
	if len(a.T4Slips) == 0 {
		a.T4Slips = []domain.T4Slip{domain.NewT4Slip(1)}
	}
	if len(a.T5Slips) == 0 {
		a.T5Slips = []domain.T5Slip{domain.NewT5Slip(1)}
	}

	seen := map[int]bool{}
	next := 1
	for i := range a.T4Slips {
		if a.T4Slips[i].ID <= 0 || seen[a.T4Slips[i].ID] {
			for seen[next] {
				next++
			}
			a.T4Slips[i].ID = next
		}
		seen[a.T4Slips[i].ID] = true
		if a.T4Slips[i].ID >= next {
			next = a.T4Slips[i].ID + 1
		}
	}

	seen = map[int]bool{}
	next = 1
	for i := range a.T5Slips {
		if a.T5Slips[i].ID <= 0 || seen[a.T5Slips[i].ID] {
			for seen[next] {
				next++
			}
			a.T5Slips[i].ID = next
		}
		seen[a.T5Slips[i].ID] = true
		if a.T5Slips[i].ID >= next {
			next = a.T5Slips[i].ID + 1
		}
	}
}

func supportedYear(year int) bool {
	for _, y := range domain.TaxYears {
		if y == year {
			return true
		}
	}
	return false
}
