package structurer

import "github.com/podume/resume-extractor/internal/types"

// Additive confidence weights. The base acknowledges that even an
// all-defaults result still carries usable raw text.
const (
	confidenceBase = 0.3

	nameBonus       = 0.2
	emailBonus      = 0.1
	phoneBonus      = 0.1
	experienceBonus = 0.2
	skillsBonus     = 0.1
	educationBonus  = 0.1
	lengthBonus     = 0.1

	lengthThresholdShort = 300
	lengthThresholdLong  = 1000
)

// Score computes a heuristic quality estimate in [0,1] for a structuring
// result. The score is advisory only: it tells the UI whether to prompt the
// user to verify the extracted fields, and never blocks the pipeline.
func Score(rawText string, structured *types.StructuredResume) float64 {
	score := confidenceBase
	if structured == nil {
		return score
	}

	if structured.Name != "" && structured.Name != types.DefaultName {
		score += nameBonus
	}
	if structured.Contact.Email != "" {
		score += emailBonus
	}
	if structured.Contact.Phone != "" {
		score += phoneBonus
	}
	if len(structured.Sections.Experience) > 0 {
		score += experienceBonus
	}
	if len(structured.Sections.Skills) > 0 {
		score += skillsBonus
	}
	if len(structured.Sections.Education) > 0 {
		score += educationBonus
	}
	if len(rawText) > lengthThresholdShort {
		score += lengthBonus
	}
	if len(rawText) > lengthThresholdLong {
		score += lengthBonus
	}

	if score > 1.0 {
		score = 1.0
	}
	return score
}
