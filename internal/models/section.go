// Package models defines the resume aggregate, its sections, and the
// entry types one section can hold.
package models

import (
	"encoding/json"
	"errors"
	"fmt"
)

// SectionName identifies one independently fetchable/writable portion
// of a resume.
type SectionName string

const (
	SectionPersonalInfo SectionName = "personal_info"
	SectionSummary      SectionName = "summary"
	SectionEducation    SectionName = "education"
	SectionExperience   SectionName = "experience"
	SectionSkills       SectionName = "skills"
	SectionProjects     SectionName = "projects"
)

// SectionNames lists all section kinds in their default display order.
var SectionNames = []SectionName{
	SectionPersonalInfo,
	SectionSummary,
	SectionEducation,
	SectionExperience,
	SectionSkills,
	SectionProjects,
}

var ErrUnknownSection = errors.New("unknown section")

// ParseSectionName validates a user- or server-supplied section name
// against the closed set of kinds.
func ParseSectionName(s string) (SectionName, error) {
	for _, n := range SectionNames {
		if s == string(n) {
			return n, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownSection, s)
}

// IsList reports whether the section holds an ordered list of entries
// rather than a single object.
func (n SectionName) IsList() bool {
	switch n {
	case SectionEducation, SectionExperience, SectionSkills, SectionProjects:
		return true
	}
	return false
}

// SectionValue is the stored value of one section. The concrete type is
// determined by the section kind: a singleton object for personal_info
// and summary, an ordered list for the rest.
type SectionValue interface {
	Section() SectionName
}

// PersonalInfo is the singleton value of the personal_info section.
type PersonalInfo struct {
	FullName     string `json:"full_name" validate:"required"`
	Email        string `json:"email" validate:"required,email"`
	Phone        string `json:"phone" validate:"required"`
	Location     string `json:"location" validate:"required"`
	LinkedInURL  string `json:"linkedin_url,omitempty" validate:"omitempty,url"`
	GitHubURL    string `json:"github_url,omitempty" validate:"omitempty,url"`
	PortfolioURL string `json:"portfolio_url,omitempty" validate:"omitempty,url"`
}

func (PersonalInfo) Section() SectionName { return SectionPersonalInfo }

// Summary is the singleton value of the summary section.
type Summary struct {
	Content string `json:"content" validate:"required,min=10,max=1000"`
}

func (Summary) Section() SectionName { return SectionSummary }

// Education is one entry of the education section.
type Education struct {
	ID           string   `json:"id,omitempty"`
	Institution  string   `json:"institution" validate:"required"`
	Degree       string   `json:"degree" validate:"required"`
	FieldOfStudy string   `json:"field_of_study" validate:"required"`
	StartDate    string   `json:"start_date" validate:"required"`
	EndDate      string   `json:"end_date,omitempty"`
	GPA          *float64 `json:"gpa,omitempty" validate:"omitempty,gte=0,lte=4"`
	Description  string   `json:"description,omitempty" validate:"omitempty,max=500"`
}

// Experience is one entry of the experience section. When Current is
// true the entry describes an ongoing position and EndDate must be empty.
type Experience struct {
	ID           string   `json:"id,omitempty"`
	Company      string   `json:"company" validate:"required"`
	Position     string   `json:"position" validate:"required"`
	Location     string   `json:"location" validate:"required"`
	StartDate    string   `json:"start_date" validate:"required"`
	EndDate      string   `json:"end_date,omitempty"`
	Current      bool     `json:"current"`
	Description  string   `json:"description" validate:"required"`
	Achievements []string `json:"achievements,omitempty"`
}

// Skill is one entry of the skills section.
type Skill struct {
	ID                string   `json:"id,omitempty"`
	Name              string   `json:"name" validate:"required"`
	Category          string   `json:"category" validate:"required"`
	Proficiency       string   `json:"proficiency" validate:"required,oneof=beginner intermediate expert"`
	YearsOfExperience *float64 `json:"years_of_experience,omitempty" validate:"omitempty,gte=0"`
}

// Project is one entry of the projects section.
type Project struct {
	ID           string   `json:"id,omitempty"`
	Title        string   `json:"title" validate:"required"`
	Description  string   `json:"description" validate:"required"`
	Technologies []string `json:"technologies" validate:"required,min=1,dive,required"`
	StartDate    string   `json:"start_date" validate:"required"`
	EndDate      string   `json:"end_date,omitempty"`
	URL          string   `json:"url,omitempty" validate:"omitempty,url"`
}

// List-kind section values. Order is array position.

type EducationList []Education

func (EducationList) Section() SectionName { return SectionEducation }

type ExperienceList []Experience

func (ExperienceList) Section() SectionName { return SectionExperience }

type SkillList []Skill

func (SkillList) Section() SectionName { return SectionSkills }

type ProjectList []Project

func (ProjectList) Section() SectionName { return SectionProjects }

// EmptySection returns the zero value of the given kind: an empty object
// for singleton sections, an empty list otherwise. A backend "not found"
// is represented with this, never with an error.
func EmptySection(name SectionName) SectionValue {
	switch name {
	case SectionPersonalInfo:
		return PersonalInfo{}
	case SectionSummary:
		return Summary{}
	case SectionEducation:
		return EducationList{}
	case SectionExperience:
		return ExperienceList{}
	case SectionSkills:
		return SkillList{}
	case SectionProjects:
		return ProjectList{}
	}
	return nil
}

// DecodeSection unmarshals the raw stored value of a section into its
// typed form.
func DecodeSection(name SectionName, data []byte) (SectionValue, error) {
	switch name {
	case SectionPersonalInfo:
		var v PersonalInfo
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, err
		}
		return v, nil
	case SectionSummary:
		var v Summary
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, err
		}
		return v, nil
	case SectionEducation:
		v := EducationList{}
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, err
		}
		return v, nil
	case SectionExperience:
		v := ExperienceList{}
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, err
		}
		return v, nil
	case SectionSkills:
		v := SkillList{}
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, err
		}
		return v, nil
	case SectionProjects:
		v := ProjectList{}
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, err
		}
		return v, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownSection, name)
}

// Len returns the entry count of a list-kind value and 0 for singletons.
func Len(v SectionValue) int {
	switch list := v.(type) {
	case EducationList:
		return len(list)
	case ExperienceList:
		return len(list)
	case SkillList:
		return len(list)
	case ProjectList:
		return len(list)
	}
	return 0
}
