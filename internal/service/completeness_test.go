package service

import (
	"testing"

	"spm-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func answers(kinds ...models.AnswerKind) []models.JawabanFlag {
	out := make([]models.JawabanFlag, 0, len(kinds))
	for i, k := range kinds {
		out = append(out, models.JawabanFlag{ID: i + 1, Nama: string(rune('X' + i)), Tipe: k})
	}
	return out
}

func TestCompletenessScorer_Score(t *testing.T) {
	scorer := NewCompletenessScorer(CompletenessRuleV2)

	tests := []struct {
		name     string
		answers  []models.JawabanFlag
		required int
		want     int
	}{
		{"yes and struck-through yes", answers(models.AnswerYes, models.AnswerYesStrikethrough), 2, 100},
		{"yes and no", answers(models.AnswerYes, models.AnswerNo), 2, 50},
		{"no required flags", nil, 0, 100},
		{"no required flags with answers", answers(models.AnswerNo), 0, 100},
		{"all incomplete", answers(models.AnswerNo, models.AnswerIncomplete), 2, 0},
		{"nothing answered", nil, 3, 0},
		{"one of three rounds down", answers(models.AnswerYes), 3, 33},
		{"two of three rounds up", answers(models.AnswerYes, models.AnswerYes), 3, 67},
		{"half rounds up", answers(models.AnswerYes), 8, 13},
		{"more answers than required is clamped", answers(models.AnswerYes, models.AnswerYes, models.AnswerYes), 2, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, scorer.Score(tt.answers, tt.required))
		})
	}
}

func TestCompletenessScorer_RuleV1(t *testing.T) {
	scorer := NewCompletenessScorer(CompletenessRuleV1)

	assert.Equal(t, 50, scorer.Score(answers(models.AnswerYes, models.AnswerYesStrikethrough), 2))
	assert.Equal(t, 100, scorer.Score(answers(models.AnswerYes, models.AnswerYes), 2))
}

func TestCompletenessScorer_Average(t *testing.T) {
	scorer := NewCompletenessScorer(CompletenessRuleV2)
	required := map[int]int{1: 2, 2: 3, 3: 0}

	t.Run("empty list", func(t *testing.T) {
		assert.Equal(t, 100, scorer.Average(nil, required))
	})

	t.Run("mean of scores", func(t *testing.T) {
		rincian := []models.Rincian{
			{KodeAkunID: 1, JawabanFlags: answers(models.AnswerYes, models.AnswerNo)},  // 50
			{KodeAkunID: 2, JawabanFlags: answers(models.AnswerYes)},                    // 33
			{KodeAkunID: 3, JawabanFlags: nil},                                          // 100
		}
		// (50 + 33 + 100) / 3 = 61
		assert.Equal(t, 61, scorer.Average(rincian, required))
	})

	t.Run("unknown kode akun counts as no requirement", func(t *testing.T) {
		rincian := []models.Rincian{{KodeAkunID: 99}}
		assert.Equal(t, 100, scorer.Average(rincian, required))
	})
}

func TestCompletenessRuleByVersion(t *testing.T) {
	rule, err := CompletenessRuleByVersion("")
	require.NoError(t, err)
	assert.Equal(t, "v2", rule.Version)

	rule, err = CompletenessRuleByVersion("v1")
	require.NoError(t, err)
	assert.False(t, rule.Complete[models.AnswerYesStrikethrough])

	_, err = CompletenessRuleByVersion("v3")
	assert.Error(t, err)
}
