package structurer

import (
	"strings"
	"testing"

	"github.com/podume/resume-extractor/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestScore_Baseline(t *testing.T) {
	assert.InDelta(t, 0.3, Score("", types.NewStructuredResume()), 1e-9)
	assert.InDelta(t, 0.3, Score("", nil), 1e-9)
}

func TestScore_FullyPopulated(t *testing.T) {
	resume := &types.StructuredResume{
		Name:    "Jane Doe",
		Contact: types.Contact{Email: "jane@example.com", Phone: "555-123-4567"},
		Sections: types.ResumeSections{
			Experience: []string{"Engineer at Acme"},
			Education:  []string{"BSc 2015"},
			Skills:     []string{"Go"},
		},
	}
	rawText := strings.Repeat("x", 1500)

	score := Score(rawText, resume)
	// 0.3 + 0.2 + 0.1 + 0.1 + 0.2 + 0.1 + 0.1 + 0.1 + 0.1 = 1.3, clamped.
	assert.InDelta(t, 1.0, score, 1e-9)
}

func TestScore_StrictlyAboveBaselineWhenPopulated(t *testing.T) {
	baseline := Score("", types.NewStructuredResume())

	resume := &types.StructuredResume{
		Name:    "Jane Doe",
		Contact: types.Contact{Email: "jane@example.com", Phone: "555-123-4567"},
		Sections: types.ResumeSections{
			Experience: []string{"Engineer at Acme"},
			Education:  []string{"BSc 2015"},
			Skills:     []string{"Go"},
		},
	}
	assert.Greater(t, Score("short", resume), baseline)
}

func TestScore_LengthBonusesAreAdditive(t *testing.T) {
	resume := types.NewStructuredResume()

	short := Score(strings.Repeat("x", 100), resume)
	medium := Score(strings.Repeat("x", 500), resume)
	long := Score(strings.Repeat("x", 1500), resume)

	assert.InDelta(t, 0.3, short, 1e-9)
	assert.InDelta(t, 0.4, medium, 1e-9)
	assert.InDelta(t, 0.5, long, 1e-9)
}

func TestScore_AlwaysInRange(t *testing.T) {
	inputs := []*types.StructuredResume{
		nil,
		types.NewStructuredResume(),
		{Name: "Jane Doe"},
		{
			Name:    "Jane Doe",
			Contact: types.Contact{Email: "a@b.co", Phone: "555-123-4567"},
			Sections: types.ResumeSections{
				Experience: []string{"x"},
				Education:  []string{"y"},
				Skills:     []string{"z"},
			},
		},
	}

	for _, resume := range inputs {
		for _, length := range []int{0, 300, 301, 1000, 1001, 5000} {
			score := Score(strings.Repeat("a", length), resume)
			assert.GreaterOrEqual(t, score, 0.0)
			assert.LessOrEqual(t, score, 1.0)
		}
	}
}
