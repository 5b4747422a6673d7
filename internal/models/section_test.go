package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSectionName(t *testing.T) {
	for _, name := range SectionNames {
		got, err := ParseSectionName(string(name))
		require.NoError(t, err)
		assert.Equal(t, name, got)
	}

	_, err := ParseSectionName("hobbies")
	require.ErrorIs(t, err, ErrUnknownSection)

	_, err = ParseSectionName("Summary")
	require.ErrorIs(t, err, ErrUnknownSection, "section names are case sensitive")
}

func TestSectionName_IsList(t *testing.T) {
	assert.False(t, SectionPersonalInfo.IsList())
	assert.False(t, SectionSummary.IsList())
	assert.True(t, SectionEducation.IsList())
	assert.True(t, SectionExperience.IsList())
	assert.True(t, SectionSkills.IsList())
	assert.True(t, SectionProjects.IsList())
}

func TestEmptySection_MatchesKind(t *testing.T) {
	for _, name := range SectionNames {
		value := EmptySection(name)
		require.NotNil(t, value, "empty value for %s", name)
		assert.Equal(t, name, value.Section())
		assert.Zero(t, Len(value))
	}
}

func TestDecodeSection_Singleton(t *testing.T) {
	raw := []byte(`{"full_name":"Ada Lovelace","email":"ada@example.com","phone":"+44 1","location":"London"}`)

	value, err := DecodeSection(SectionPersonalInfo, raw)
	require.NoError(t, err)

	info, ok := value.(PersonalInfo)
	require.True(t, ok, "expected PersonalInfo, got %T", value)
	assert.Equal(t, "Ada Lovelace", info.FullName)
	assert.Equal(t, "ada@example.com", info.Email)
}

func TestDecodeSection_List(t *testing.T) {
	raw := []byte(`[{"name":"Go","category":"languages","proficiency":"expert"},{"name":"SQL","category":"languages","proficiency":"intermediate"}]`)

	value, err := DecodeSection(SectionSkills, raw)
	require.NoError(t, err)

	skills, ok := value.(SkillList)
	require.True(t, ok, "expected SkillList, got %T", value)
	require.Len(t, skills, 2)
	assert.Equal(t, "Go", skills[0].Name)
	assert.Equal(t, "intermediate", skills[1].Proficiency)
}

func TestDecodeSection_ShapeMismatch(t *testing.T) {
	_, err := DecodeSection(SectionSkills, []byte(`{"name":"Go"}`))
	require.Error(t, err, "object where a list is expected must fail")

	_, err = DecodeSection(SectionSummary, []byte(`["not","an","object"]`))
	require.Error(t, err)
}

func TestDecodeSection_UnknownKind(t *testing.T) {
	_, err := DecodeSection("hobbies", []byte(`{}`))
	require.ErrorIs(t, err, ErrUnknownSection)
}

func TestDefaultSectionSettings(t *testing.T) {
	settings := DefaultSectionSettings()
	require.Len(t, settings, len(SectionNames))

	for i, s := range settings {
		assert.Equal(t, SectionNames[i], s.Name)
		assert.True(t, s.Visible)
		assert.Equal(t, i+1, s.Order)
	}
}

func TestLen_Lists(t *testing.T) {
	assert.Equal(t, 2, Len(EducationList{{}, {}}))
	assert.Equal(t, 1, Len(ProjectList{{}}))
	assert.Equal(t, 0, Len(Summary{Content: "whatever"}))
}
