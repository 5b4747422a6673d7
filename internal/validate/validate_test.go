package validate

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resumecli/internal/models"
)

func fieldNames(t *testing.T, err error) []string {
	t.Helper()
	var fe FieldErrors
	require.ErrorAs(t, err, &fe)
	names := make([]string, 0, len(fe))
	for _, e := range fe {
		names = append(names, e.Field)
	}
	return names
}

func validPersonalInfo() models.PersonalInfo {
	return models.PersonalInfo{
		FullName: "Ada Lovelace",
		Email:    "ada@example.com",
		Phone:    "+44 1",
		Location: "London",
	}
}

func TestSection_PersonalInfo_Valid(t *testing.T) {
	got, err := Section(validPersonalInfo())
	require.NoError(t, err)
	assert.Equal(t, validPersonalInfo(), got)
}

func TestSection_PersonalInfo_TrimsWhitespace(t *testing.T) {
	p := validPersonalInfo()
	p.FullName = "  Ada Lovelace  "
	p.Email = " ada@example.com "

	got, err := Section(p)
	require.NoError(t, err)

	normalized := got.(models.PersonalInfo)
	assert.Equal(t, "Ada Lovelace", normalized.FullName)
	assert.Equal(t, "ada@example.com", normalized.Email)
}

func TestSection_PersonalInfo_BadEmailAndURL(t *testing.T) {
	p := validPersonalInfo()
	p.Email = "not-an-email"
	p.LinkedInURL = "not a url"

	_, err := Section(p)
	names := fieldNames(t, err)
	assert.Contains(t, names, "email")
	assert.Contains(t, names, "linkedin_url")
}

func TestSection_Summary_ContentBounds(t *testing.T) {
	_, err := Section(models.Summary{Content: "short"})
	assert.Contains(t, fieldNames(t, err), "content")

	long := make([]byte, 1001)
	for i := range long {
		long[i] = 'x'
	}
	_, err = Section(models.Summary{Content: string(long)})
	assert.Contains(t, fieldNames(t, err), "content")

	_, err = Section(models.Summary{Content: "A seasoned backend engineer."})
	require.NoError(t, err)
}

func TestSection_Education_GPAOutOfRange(t *testing.T) {
	gpa := 5.0
	list := models.EducationList{{
		Institution:  "MIT",
		Degree:       "BSc",
		FieldOfStudy: "CS",
		StartDate:    "2018-09",
		GPA:          &gpa,
	}}

	_, err := Section(list)
	assert.Contains(t, fieldNames(t, err), "education[0].gpa")
}

func TestSection_Experience_CurrentClearsEndDate(t *testing.T) {
	list := models.ExperienceList{{
		Company:     "Acme",
		Position:    "Engineer",
		Location:    "Remote",
		StartDate:   "2022-01",
		EndDate:     "2023-01",
		Current:     true,
		Description: "Built things.",
	}}

	got, err := Section(list)
	require.NoError(t, err)
	assert.Empty(t, got.(models.ExperienceList)[0].EndDate)
}

func TestSection_Experience_ListErrorsAreIndexed(t *testing.T) {
	list := models.ExperienceList{
		{Company: "Acme", Position: "Engineer", Location: "Remote", StartDate: "2022-01", Description: "ok"},
		{Position: "Engineer"},
	}

	_, err := Section(list)
	names := fieldNames(t, err)
	assert.Contains(t, names, "experience[1].company")
	assert.Contains(t, names, "experience[1].location")
	assert.NotContains(t, names, "experience[0].company")
}

func TestSection_Skill_ProficiencyEnum(t *testing.T) {
	_, err := Section(models.SkillList{{Name: "Go", Category: "languages", Proficiency: "master"}})
	assert.Contains(t, fieldNames(t, err), "skills[0].proficiency")

	got, err := Section(models.SkillList{{Name: "Go", Category: "languages", Proficiency: " Expert "}})
	require.NoError(t, err, "proficiency is normalized to lower case before checking")
	assert.Equal(t, "expert", got.(models.SkillList)[0].Proficiency)
}

func TestSection_Skill_NegativeYears(t *testing.T) {
	years := -1.0
	_, err := Section(models.SkillList{{Name: "Go", Category: "languages", Proficiency: "expert", YearsOfExperience: &years}})
	assert.Contains(t, fieldNames(t, err), "skills[0].years_of_experience")
}

func TestSection_Project_RequiresTechnologies(t *testing.T) {
	_, err := Section(models.ProjectList{{
		Title:       "Thing",
		Description: "Does things.",
		StartDate:   "2024-01",
	}})
	assert.Contains(t, fieldNames(t, err), "projects[0].technologies")
}

func TestSection_Project_DropsEmptyTechnologies(t *testing.T) {
	got, err := Section(models.ProjectList{{
		Title:        "Thing",
		Description:  "Does things.",
		Technologies: []string{" Go ", "", "Postgres"},
		StartDate:    "2024-01",
	}})
	require.NoError(t, err)
	assert.Equal(t, []string{"Go", "Postgres"}, got.(models.ProjectList)[0].Technologies)
}

func TestEntry_SingleEducation(t *testing.T) {
	err := Entry(models.Education{Institution: "MIT"})
	var fe FieldErrors
	require.ErrorAs(t, err, &fe)

	err = Entry(models.Education{
		Institution:  "MIT",
		Degree:       "BSc",
		FieldOfStudy: "CS",
		StartDate:    "2018-09",
	})
	require.NoError(t, err)
}

func TestEntry_UnsupportedType(t *testing.T) {
	err := Entry("not an entry")
	require.Error(t, err)
	assert.False(t, errors.Is(err, FieldErrors{}))
}

func TestResumeDraft_TitleBounds(t *testing.T) {
	err := ResumeDraft(models.ResumeDraft{UserID: "u1", Title: "x"})
	assert.Contains(t, fieldNames(t, err), "title")

	err = ResumeDraft(models.ResumeDraft{Title: "Backend Engineer"})
	assert.Contains(t, fieldNames(t, err), "user_id")

	err = ResumeDraft(models.ResumeDraft{UserID: "u1", Title: "Backend Engineer"})
	require.NoError(t, err)
}

func TestOptimizationRequest_EmptyDescription(t *testing.T) {
	err := OptimizationRequest(models.OptimizationRequest{JobDescription: "   ", Level: models.OptimizationModerate})
	assert.Contains(t, fieldNames(t, err), "job_description")

	err = OptimizationRequest(models.OptimizationRequest{JobDescription: "Go developer wanted", Level: "extreme"})
	assert.Contains(t, fieldNames(t, err), "level")

	err = OptimizationRequest(models.OptimizationRequest{JobDescription: "Go developer wanted", Level: models.OptimizationLight})
	require.NoError(t, err)
}

func TestFieldErrors_Message(t *testing.T) {
	_, err := Section(models.Summary{Content: "short"})
	assert.Contains(t, err.Error(), "content:")
}
