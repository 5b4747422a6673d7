// Package validate checks section values and request payloads against
// their field-level rules before any network call is made. It produces
// per-field error messages and normalized copies safe to persist.
package validate

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"resumecli/internal/models"
)

var v = newValidator()

func newValidator() *validator.Validate {
	val := validator.New(validator.WithRequiredStructEnabled())
	// Report errors under the JSON field name, matching the wire format.
	val.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return val
}

// FieldError is one rejected field with a user-facing message.
type FieldError struct {
	Field   string
	Message string
}

// FieldErrors is the full set of local validation failures for one
// payload. It satisfies error so callers can return it directly.
type FieldErrors []FieldError

func (e FieldErrors) Error() string {
	parts := make([]string, 0, len(e))
	for _, fe := range e {
		parts = append(parts, fmt.Sprintf("%s: %s", fe.Field, fe.Message))
	}
	return strings.Join(parts, "; ")
}

// Is lets errors.Is match any FieldErrors value.
func (e FieldErrors) Is(target error) bool {
	_, ok := target.(FieldErrors)
	return ok
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "invalid email format"
	case "url":
		return "invalid URL format"
	case "min":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("must have at least %s items", fe.Param())
		}
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "lte":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", strings.ReplaceAll(fe.Param(), " ", ", "))
	}
	return fmt.Sprintf("failed %s validation", fe.Tag())
}

// check runs the validator on one struct and converts the result into
// FieldErrors. The prefix (e.g. "experience[2].") scopes list entries.
func check(value any, prefix string) FieldErrors {
	err := v.Struct(value)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return FieldErrors{{Field: prefix, Message: err.Error()}}
	}
	out := make(FieldErrors, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{Field: prefix + fe.Field(), Message: message(fe)})
	}
	return out
}

// Section normalizes and validates a full section value. On success the
// returned value is the normalized copy to persist; on failure the
// error is a FieldErrors and nothing must be written.
func Section(value models.SectionValue) (models.SectionValue, error) {
	switch sv := value.(type) {
	case models.PersonalInfo:
		n := normalizePersonalInfo(sv)
		if errs := check(n, ""); errs != nil {
			return nil, errs
		}
		return n, nil
	case models.Summary:
		n := models.Summary{Content: strings.TrimSpace(sv.Content)}
		if errs := check(n, ""); errs != nil {
			return nil, errs
		}
		return n, nil
	case models.EducationList:
		out := make(models.EducationList, len(sv))
		var all FieldErrors
		for i, e := range sv {
			out[i] = normalizeEducation(e)
			all = append(all, check(out[i], fmt.Sprintf("education[%d].", i))...)
		}
		if len(all) > 0 {
			return nil, all
		}
		return out, nil
	case models.ExperienceList:
		out := make(models.ExperienceList, len(sv))
		var all FieldErrors
		for i, e := range sv {
			out[i] = normalizeExperience(e)
			all = append(all, check(out[i], fmt.Sprintf("experience[%d].", i))...)
		}
		if len(all) > 0 {
			return nil, all
		}
		return out, nil
	case models.SkillList:
		out := make(models.SkillList, len(sv))
		var all FieldErrors
		for i, s := range sv {
			out[i] = normalizeSkill(s)
			all = append(all, check(out[i], fmt.Sprintf("skills[%d].", i))...)
		}
		if len(all) > 0 {
			return nil, all
		}
		return out, nil
	case models.ProjectList:
		out := make(models.ProjectList, len(sv))
		var all FieldErrors
		for i, p := range sv {
			out[i] = normalizeProject(p)
			all = append(all, check(out[i], fmt.Sprintf("projects[%d].", i))...)
		}
		if len(all) > 0 {
			return nil, all
		}
		return out, nil
	}
	return nil, fmt.Errorf("%w: %T", models.ErrUnknownSection, value)
}

// Entry validates a single list entry outside its list, e.g. while the
// user is still filling a form.
func Entry(entry any) error {
	switch e := entry.(type) {
	case models.Education:
		if errs := check(normalizeEducation(e), ""); errs != nil {
			return errs
		}
	case models.Experience:
		if errs := check(normalizeExperience(e), ""); errs != nil {
			return errs
		}
	case models.Skill:
		if errs := check(normalizeSkill(e), ""); errs != nil {
			return errs
		}
	case models.Project:
		if errs := check(normalizeProject(e), ""); errs != nil {
			return errs
		}
	default:
		return fmt.Errorf("unsupported entry type %T", entry)
	}
	return nil
}

// ResumeDraft validates a resume-creation payload, including the
// client-side guard that the owner id is present.
func ResumeDraft(d models.ResumeDraft) error {
	d.Title = strings.TrimSpace(d.Title)
	d.Summary = strings.TrimSpace(d.Summary)
	if errs := check(d, ""); errs != nil {
		return errs
	}
	return nil
}

// OptimizationRequest validates an optimize payload. An empty job
// description is rejected here so the request is never issued.
func OptimizationRequest(r models.OptimizationRequest) error {
	r.JobDescription = strings.TrimSpace(r.JobDescription)
	if errs := check(r, ""); errs != nil {
		return errs
	}
	return nil
}

func normalizePersonalInfo(p models.PersonalInfo) models.PersonalInfo {
	p.FullName = strings.TrimSpace(p.FullName)
	p.Email = strings.TrimSpace(p.Email)
	p.Phone = strings.TrimSpace(p.Phone)
	p.Location = strings.TrimSpace(p.Location)
	p.LinkedInURL = strings.TrimSpace(p.LinkedInURL)
	p.GitHubURL = strings.TrimSpace(p.GitHubURL)
	p.PortfolioURL = strings.TrimSpace(p.PortfolioURL)
	return p
}

func normalizeEducation(e models.Education) models.Education {
	e.Institution = strings.TrimSpace(e.Institution)
	e.Degree = strings.TrimSpace(e.Degree)
	e.FieldOfStudy = strings.TrimSpace(e.FieldOfStudy)
	e.Description = strings.TrimSpace(e.Description)
	return e
}

// normalizeExperience clears a stale end date on current positions so
// exactly one of {current, end_date} describes the end state.
func normalizeExperience(e models.Experience) models.Experience {
	e.Company = strings.TrimSpace(e.Company)
	e.Position = strings.TrimSpace(e.Position)
	e.Location = strings.TrimSpace(e.Location)
	e.Description = strings.TrimSpace(e.Description)
	if e.Current {
		e.EndDate = ""
	}
	return e
}

func normalizeSkill(s models.Skill) models.Skill {
	s.Name = strings.TrimSpace(s.Name)
	s.Category = strings.TrimSpace(s.Category)
	s.Proficiency = strings.ToLower(strings.TrimSpace(s.Proficiency))
	return s
}

func normalizeProject(p models.Project) models.Project {
	p.Title = strings.TrimSpace(p.Title)
	p.Description = strings.TrimSpace(p.Description)
	p.URL = strings.TrimSpace(p.URL)
	techs := make([]string, 0, len(p.Technologies))
	for _, t := range p.Technologies {
		if t = strings.TrimSpace(t); t != "" {
			techs = append(techs, t)
		}
	}
	p.Technologies = techs
	return p
}
