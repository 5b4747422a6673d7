package models

// User is the account that owns resumes.
type User struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	CreatedAt string `json:"created_at,omitempty"`
}

// SectionSetting controls visibility and display order of one section
// within a resume.
type SectionSetting struct {
	Name    SectionName `json:"name"`
	Visible bool        `json:"visible"`
	Order   int         `json:"order"`
}

// Resume is the aggregate root: top-level metadata plus the ordered
// section settings. Section contents live behind their own endpoints
// and are not embedded here.
type Resume struct {
	ID              string           `json:"id"`
	UserID          string           `json:"user_id"`
	Title           string           `json:"title"`
	Summary         string           `json:"summary"`
	CreatedAt       string           `json:"created_at,omitempty"`
	UpdatedAt       string           `json:"updated_at,omitempty"`
	SectionSettings []SectionSetting `json:"section_settings"`
}

// ResumeDraft is the payload for creating a resume.
type ResumeDraft struct {
	UserID          string           `json:"user_id" validate:"required"`
	Title           string           `json:"title" validate:"required,min=2,max=100"`
	Summary         string           `json:"summary" validate:"omitempty,max=500"`
	SectionSettings []SectionSetting `json:"section_settings"`
}

// ResumeUpdate is a partial update of the aggregate root's own fields.
// Nil fields are left untouched by the server.
type ResumeUpdate struct {
	Title           *string          `json:"title,omitempty" validate:"omitempty,min=2,max=100"`
	Summary         *string          `json:"summary,omitempty" validate:"omitempty,max=500"`
	SectionSettings []SectionSetting `json:"section_settings,omitempty"`
}

// DefaultSectionSettings returns the six standard sections, all visible,
// ordered 1..6.
func DefaultSectionSettings() []SectionSetting {
	settings := make([]SectionSetting, 0, len(SectionNames))
	for i, name := range SectionNames {
		settings = append(settings, SectionSetting{Name: name, Visible: true, Order: i + 1})
	}
	return settings
}

// ParsedResume is the structure returned by the backend resume parser.
// Sections absent from the uploaded document are nil.
type ParsedResume struct {
	PersonalInfo *PersonalInfo `json:"personal_info,omitempty"`
	Summary      *Summary      `json:"summary,omitempty"`
	Education    []Education   `json:"education,omitempty"`
	Experience   []Experience  `json:"experience,omitempty"`
	Skills       []Skill       `json:"skills,omitempty"`
	Projects     []Project     `json:"projects,omitempty"`
}
