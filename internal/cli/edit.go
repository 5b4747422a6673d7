package cli

import (
	"fmt"
	"os"
	"strings"

	"resumecli/internal/models"
)

// promptSingleton gathers a complete value for a singleton section.
func (a *App) promptSingleton(name models.SectionName) (models.SectionValue, error) {
	switch name {
	case models.SectionPersonalInfo:
		return a.personalInfoDetails()
	case models.SectionSummary:
		return a.summaryDetails()
	}
	return nil, fmt.Errorf("%w: %s", models.ErrUnknownSection, name)
}

// promptEntry gathers one entry for a list section.
func (a *App) promptEntry(name models.SectionName) (any, error) {
	switch name {
	case models.SectionEducation:
		return a.educationDetails()
	case models.SectionExperience:
		return a.experienceDetails()
	case models.SectionSkills:
		return a.skillDetails()
	case models.SectionProjects:
		return a.projectDetails()
	}
	return nil, fmt.Errorf("%w: %s", models.ErrUnknownSection, name)
}

func (a *App) personalInfoDetails() (models.PersonalInfo, error) {
	var zero models.PersonalInfo

	fullName, err := getSimpleText(a.reader, "Full name", os.Stdout)
	if err != nil {
		return zero, err
	}
	email, err := getSimpleText(a.reader, "Email", os.Stdout)
	if err != nil {
		return zero, err
	}
	phone, err := getSimpleText(a.reader, "Phone", os.Stdout)
	if err != nil {
		return zero, err
	}
	location, err := getSimpleText(a.reader, "Location", os.Stdout)
	if err != nil {
		return zero, err
	}
	linkedin, err := getSimpleText(a.reader, "LinkedIn URL (optional)", os.Stdout)
	if err != nil {
		return zero, err
	}
	github, err := getSimpleText(a.reader, "GitHub URL (optional)", os.Stdout)
	if err != nil {
		return zero, err
	}
	portfolio, err := getSimpleText(a.reader, "Portfolio URL (optional)", os.Stdout)
	if err != nil {
		return zero, err
	}

	return models.PersonalInfo{
		FullName:     fullName,
		Email:        email,
		Phone:        phone,
		Location:     location,
		LinkedInURL:  linkedin,
		GitHubURL:    github,
		PortfolioURL: portfolio,
	}, nil
}

func (a *App) summaryDetails() (models.Summary, error) {
	content, err := GetMultiline(a.reader, "Professional summary", os.Stdout)
	if err != nil {
		return models.Summary{}, err
	}
	return models.Summary{Content: content}, nil
}

func (a *App) educationDetails() (models.Education, error) {
	var zero models.Education

	institution, err := getSimpleText(a.reader, "Institution", os.Stdout)
	if err != nil {
		return zero, err
	}
	degree, err := getSimpleText(a.reader, "Degree", os.Stdout)
	if err != nil {
		return zero, err
	}
	field, err := getSimpleText(a.reader, "Field of study", os.Stdout)
	if err != nil {
		return zero, err
	}
	start, err := getSimpleText(a.reader, "Start date (YYYY-MM)", os.Stdout)
	if err != nil {
		return zero, err
	}
	end, err := getSimpleText(a.reader, "End date (YYYY-MM, optional)", os.Stdout)
	if err != nil {
		return zero, err
	}
	gpa, err := GetOptionalFloat(a.reader, "GPA, 0 to 4", os.Stdout)
	if err != nil {
		return zero, err
	}
	description, err := GetMultiline(a.reader, "Description (optional)", os.Stdout)
	if err != nil {
		return zero, err
	}

	return models.Education{
		Institution:  institution,
		Degree:       degree,
		FieldOfStudy: field,
		StartDate:    start,
		EndDate:      end,
		GPA:          gpa,
		Description:  description,
	}, nil
}

func (a *App) experienceDetails() (models.Experience, error) {
	var zero models.Experience

	company, err := getSimpleText(a.reader, "Company", os.Stdout)
	if err != nil {
		return zero, err
	}
	position, err := getSimpleText(a.reader, "Position", os.Stdout)
	if err != nil {
		return zero, err
	}
	location, err := getSimpleText(a.reader, "Location", os.Stdout)
	if err != nil {
		return zero, err
	}
	start, err := getSimpleText(a.reader, "Start date (YYYY-MM)", os.Stdout)
	if err != nil {
		return zero, err
	}
	current, err := GetYesNo(a.reader, "Current position?", os.Stdout)
	if err != nil {
		return zero, err
	}
	end := ""
	if !current {
		end, err = getSimpleText(a.reader, "End date (YYYY-MM)", os.Stdout)
		if err != nil {
			return zero, err
		}
	}
	description, err := GetMultiline(a.reader, "Description", os.Stdout)
	if err != nil {
		return zero, err
	}
	achievements, err := GetLines(a.reader, "Achievements (optional)", os.Stdout)
	if err != nil {
		return zero, err
	}

	return models.Experience{
		Company:      company,
		Position:     position,
		Location:     location,
		StartDate:    start,
		EndDate:      end,
		Current:      current,
		Description:  description,
		Achievements: achievements,
	}, nil
}

func (a *App) skillDetails() (models.Skill, error) {
	var zero models.Skill

	name, err := getSimpleText(a.reader, "Skill name", os.Stdout)
	if err != nil {
		return zero, err
	}
	category, err := getSimpleText(a.reader, "Category (e.g. languages, tools)", os.Stdout)
	if err != nil {
		return zero, err
	}
	proficiency, err := getSimpleText(a.reader, "Proficiency (beginner, intermediate, expert)", os.Stdout)
	if err != nil {
		return zero, err
	}
	years, err := GetOptionalFloat(a.reader, "Years of experience", os.Stdout)
	if err != nil {
		return zero, err
	}

	return models.Skill{
		Name:              name,
		Category:          category,
		Proficiency:       proficiency,
		YearsOfExperience: years,
	}, nil
}

func (a *App) projectDetails() (models.Project, error) {
	var zero models.Project

	title, err := getSimpleText(a.reader, "Project title", os.Stdout)
	if err != nil {
		return zero, err
	}
	description, err := GetMultiline(a.reader, "Description", os.Stdout)
	if err != nil {
		return zero, err
	}
	tech, err := getSimpleText(a.reader, "Technologies (comma-separated)", os.Stdout)
	if err != nil {
		return zero, err
	}
	start, err := getSimpleText(a.reader, "Start date (YYYY-MM, optional)", os.Stdout)
	if err != nil {
		return zero, err
	}
	end, err := getSimpleText(a.reader, "End date (YYYY-MM, optional)", os.Stdout)
	if err != nil {
		return zero, err
	}
	url, err := getSimpleText(a.reader, "Project URL (optional)", os.Stdout)
	if err != nil {
		return zero, err
	}

	technologies := make([]string, 0)
	for _, t := range strings.Split(tech, ",") {
		if t = strings.TrimSpace(t); t != "" {
			technologies = append(technologies, t)
		}
	}

	return models.Project{
		Title:        title,
		Description:  description,
		Technologies: technologies,
		StartDate:    start,
		EndDate:      end,
		URL:          url,
	}, nil
}
