package api

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"resumecli/internal/models"
)

//go:embed schemas/*.json
var schemaFS embed.FS

// sectionSchemas holds one compiled JSON Schema per section kind. The
// backend is not trusted to return well-shaped payloads; every inbound
// section value is checked against its schema before decoding.
var sectionSchemas = map[models.SectionName]*gojsonschema.Schema{}

func init() {
	for _, name := range models.SectionNames {
		raw, err := schemaFS.ReadFile(fmt.Sprintf("schemas/%s.json", name))
		if err != nil {
			panic(fmt.Sprintf("missing embedded schema for %s: %v", name, err))
		}
		schema, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(raw))
		if err != nil {
			panic(fmt.Sprintf("invalid embedded schema for %s: %v", name, err))
		}
		sectionSchemas[name] = schema
	}
}

// decodeSection validates raw section bytes against the kind's schema
// and unmarshals them into the typed value. A JSON null (section row
// exists but holds nothing) decodes to the kind's empty value.
func decodeSection(name models.SectionName, raw []byte) (models.SectionValue, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return models.EmptySection(name), nil
	}

	schema, ok := sectionSchemas[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", models.ErrUnknownSection, name)
	}

	result, err := schema.Validate(gojsonschema.NewBytesLoader(trimmed))
	if err != nil {
		return nil, &DecodeError{Section: name, Reason: "payload is not valid JSON", Err: err}
	}
	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			msgs = append(msgs, e.String())
		}
		return nil, &DecodeError{Section: name, Reason: strings.Join(msgs, "; ")}
	}

	value, err := models.DecodeSection(name, trimmed)
	if err != nil {
		return nil, &DecodeError{Section: name, Reason: "unexpected payload shape", Err: err}
	}
	return value, nil
}

// flatOptimization is the legacy single-level optimize response.
type flatOptimization struct {
	Score                float64  `json:"score"`
	Feedback             string   `json:"feedback"`
	Suggestions          []string `json:"suggestions"`
	OptimizedSummary     string   `json:"optimized_summary"`
	MissingSkills        []string `json:"missing_skills"`
	ResumeBoostParagraph string   `json:"resume_boost_paragraph"`
	SummaryAdvice        string   `json:"summary_advice"`
	SkillsAdvice         string   `json:"skills_advice"`
	ProjectsAdvice       string   `json:"projects_advice"`
}

// decodeOptimization accepts both response shapes the backend has
// served over time: the canonical nested report and the flat legacy
// variant, which is lifted into the nested form.
func decodeOptimization(raw []byte) (models.OptimizationReport, error) {
	var probe struct {
		Optimization *models.Optimization      `json:"optimization"`
		Advice       *models.ImprovementAdvice `json:"improvement_advice"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil {
		return models.OptimizationReport{}, &DecodeError{Reason: "optimization response is not valid JSON", Err: err}
	}
	if probe.Optimization != nil {
		report := models.OptimizationReport{Optimization: *probe.Optimization}
		if probe.Advice != nil {
			report.ImprovementAdvice = *probe.Advice
		}
		return report, nil
	}

	var flat flatOptimization
	if err := json.Unmarshal(raw, &flat); err != nil {
		return models.OptimizationReport{}, &DecodeError{Reason: "optimization response is not valid JSON", Err: err}
	}
	return models.OptimizationReport{
		Optimization: models.Optimization{
			Score:                flat.Score,
			Feedback:             flat.Feedback,
			Suggestions:          flat.Suggestions,
			OptimizedSummary:     flat.OptimizedSummary,
			MissingSkills:        flat.MissingSkills,
			ResumeBoostParagraph: flat.ResumeBoostParagraph,
		},
		ImprovementAdvice: models.ImprovementAdvice{
			Summary:  flat.SummaryAdvice,
			Skills:   flat.SkillsAdvice,
			Projects: flat.ProjectsAdvice,
		},
	}, nil
}

// decodeRecommendations normalizes the two shapes the recommend
// endpoint returns: a string array, or one delimited string split on
// newlines and commas.
func decodeRecommendations(raw []byte) ([]string, error) {
	var wrapper struct {
		Recommendations json.RawMessage `json:"recommendations"`
	}
	if err := json.Unmarshal(raw, &wrapper); err != nil {
		return nil, &DecodeError{Reason: "recommendation response is not valid JSON", Err: err}
	}
	if len(wrapper.Recommendations) == 0 {
		return nil, nil
	}

	var list []string
	if err := json.Unmarshal(wrapper.Recommendations, &list); err == nil {
		return cleanTitles(list), nil
	}

	var joined string
	if err := json.Unmarshal(wrapper.Recommendations, &joined); err != nil {
		return nil, &DecodeError{Reason: "recommendations is neither an array nor a string"}
	}
	// Some revisions return a JSON-encoded array inside the string.
	if err := json.Unmarshal([]byte(joined), &list); err == nil {
		return cleanTitles(list), nil
	}
	split := strings.FieldsFunc(joined, func(r rune) bool {
		return r == '\n' || r == '\r' || r == ','
	})
	return cleanTitles(split), nil
}

func cleanTitles(titles []string) []string {
	out := make([]string, 0, len(titles))
	for _, t := range titles {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}
