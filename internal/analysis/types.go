// Package analysis defines the boundary to the regression-analysis
// collaborator: the shape of its findings and the textual change-set
// description it consumes. Interpreting the change is the collaborator's
// job, not this package's.
package analysis

import (
	"context"
	"time"

	"github.com/regwatch/regwatch/internal/git"
)

// RiskLevel classifies the severity of a finding or a whole report.
type RiskLevel string

const (
	RiskLow      RiskLevel = "low"
	RiskMedium   RiskLevel = "medium"
	RiskHigh     RiskLevel = "high"
	RiskCritical RiskLevel = "critical"
)

// rank orders risk levels for roll-up comparisons.
func (r RiskLevel) rank() int {
	switch r {
	case RiskCritical:
		return 4
	case RiskHigh:
		return 3
	case RiskMedium:
		return 2
	case RiskLow:
		return 1
	default:
		return 2 // unknown severities count as medium
	}
}

// FindingType names the category of a suspected regression.
type FindingType string

const (
	FindingFunctional    FindingType = "functional"
	FindingPerformance   FindingType = "performance"
	FindingSecurity      FindingType = "security"
	FindingTest          FindingType = "test"
	FindingCompatibility FindingType = "compatibility"
	FindingMemoryLeak    FindingType = "memory_leak"
	FindingRaceCondition FindingType = "race_condition"
)

// Finding is one suspected regression reported by the collaborator.
type Finding struct {
	Type          FindingType `json:"type"`
	Severity      RiskLevel   `json:"severity"`
	Description   string      `json:"description"`
	AffectedFiles []string    `json:"affectedFiles"`
	Confidence    float64     `json:"confidence"`
	LineNumbers   []int       `json:"lineNumbers,omitempty"`
	CodeSnippet   string      `json:"codeSnippet,omitempty"`
}

// Report is the collaborator's structured answer for one commit.
type Report struct {
	CommitHash string    `json:"commitHash"`
	Timestamp  time.Time `json:"timestamp"`
	Findings   []Finding `json:"findings"`
	Confidence float64   `json:"confidence"`
	RiskLevel  RiskLevel `json:"riskLevel"`
}

// Analyzer is the opaque text-analysis capability: given a commit's
// change-set it returns a structured list of findings.
type Analyzer interface {
	Analyze(ctx context.Context, commit *git.Commit) (*Report, error)
}

// RollUpRisk maps the highest finding severity to an overall risk level.
// No findings means low risk.
func RollUpRisk(findings []Finding) RiskLevel {
	max := 0
	for _, f := range findings {
		if r := f.Severity.rank(); r > max {
			max = r
		}
	}
	switch {
	case max >= 4:
		return RiskCritical
	case max >= 3:
		return RiskHigh
	case max >= 2:
		return RiskMedium
	case max >= 1:
		return RiskLow
	default:
		return RiskLow
	}
}
