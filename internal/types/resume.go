package types

// DefaultName is the placeholder used when no candidate name could be extracted.
// Downstream consumers rely on this field never being empty.
const DefaultName = "Professional"

// MaxSkills caps the skills list to keep the structured output bounded.
const MaxSkills = 20

// MaxExperienceEntries caps the experience list to keep the structured output bounded.
const MaxExperienceEntries = 10

// Contact holds the contact details found near the top of a resume.
// Both fields are optional; empty string means not found.
type Contact struct {
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// ResumeSections holds the heuristically partitioned body of a resume.
type ResumeSections struct {
	Summary    string   `json:"summary,omitempty"`
	Experience []string `json:"experience"`
	Education  []string `json:"education"`
	Skills     []string `json:"skills"`
}

// StructuredResume is the structured record extracted from flat resume text.
// Name defaults to DefaultName rather than being empty.
type StructuredResume struct {
	Name     string         `json:"name"`
	Contact  Contact        `json:"contact"`
	Sections ResumeSections `json:"sections"`
}

// NewStructuredResume returns a StructuredResume with defaults applied and
// all section slices initialized so the JSON encoding is stable.
func NewStructuredResume() *StructuredResume {
	return &StructuredResume{
		Name: DefaultName,
		Sections: ResumeSections{
			Experience: []string{},
			Education:  []string{},
			Skills:     []string{},
		},
	}
}
