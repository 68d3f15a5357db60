package service

import (
	"fmt"
	"math"

	"spm-backend/internal/models"
)

// CompletenessRule names the set of answer kinds that count a required flag
// as fulfilled.
type CompletenessRule struct {
	Version  string
	Complete map[models.AnswerKind]bool
}

var (
	// CompletenessRuleV1 only counts YES answers.
	CompletenessRuleV1 = CompletenessRule{
		Version: "v1",
		Complete: map[models.AnswerKind]bool{
			models.AnswerYes: true,
		},
	}

	// CompletenessRuleV2 also accepts a struck-through YES (document validly absent).
	CompletenessRuleV2 = CompletenessRule{
		Version: "v2",
		Complete: map[models.AnswerKind]bool{
			models.AnswerYes:              true,
			models.AnswerYesStrikethrough: true,
		},
	}
)

// CompletenessRuleByVersion resolves a configured rule version.
func CompletenessRuleByVersion(version string) (CompletenessRule, error) {
	switch version {
	case "", CompletenessRuleV2.Version:
		return CompletenessRuleV2, nil
	case CompletenessRuleV1.Version:
		return CompletenessRuleV1, nil
	}
	return CompletenessRule{}, fmt.Errorf("unknown completeness rule %q", version)
}

// CompletenessScorer computes document checklist completeness. It is a pure
// function of the answers and required-flag counts handed to it.
type CompletenessScorer struct {
	rule CompletenessRule
}

func NewCompletenessScorer(rule CompletenessRule) *CompletenessScorer {
	return &CompletenessScorer{rule: rule}
}

// Rule returns the rule the scorer was built with.
func (s *CompletenessScorer) Rule() CompletenessRule {
	return s.rule
}

// Score returns the completeness percentage of one rincian given how many
// flags its kode akun requires.
func (s *CompletenessScorer) Score(answers []models.JawabanFlag, requiredFlagCount int) int {
	if requiredFlagCount <= 0 {
		return 100
	}

	complete := 0
	for _, answer := range answers {
		if s.rule.Complete[answer.Tipe] {
			complete++
		}
	}

	return clampPercentage(roundHalfUp(100 * float64(complete) / float64(requiredFlagCount)))
}

// ScoreRincian scores a rincian using the required counts keyed by kode akun id.
func (s *CompletenessScorer) ScoreRincian(rincian models.Rincian, requiredCounts map[int]int) int {
	return s.Score(rincian.JawabanFlags, requiredCounts[rincian.KodeAkunID])
}

// Average returns the rounded mean score of the rincian, or 100 when there are none.
func (s *CompletenessScorer) Average(rincian []models.Rincian, requiredCounts map[int]int) int {
	if len(rincian) == 0 {
		return 100
	}
	return roundHalfUp(s.mean(rincian, requiredCounts))
}

// mean is Average without the final rounding, used by the performance report.
func (s *CompletenessScorer) mean(rincian []models.Rincian, requiredCounts map[int]int) float64 {
	if len(rincian) == 0 {
		return 100
	}
	total := 0
	for _, r := range rincian {
		total += s.ScoreRincian(r, requiredCounts)
	}
	return float64(total) / float64(len(rincian))
}

func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}

func clampPercentage(p int) int {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}
