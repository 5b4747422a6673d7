package models

import (
	"errors"
	"fmt"
)

// OptimizationLevel controls how aggressively the backend rewrites
// resume content against a job description.
type OptimizationLevel string

const (
	OptimizationLight      OptimizationLevel = "light"
	OptimizationModerate   OptimizationLevel = "moderate"
	OptimizationAggressive OptimizationLevel = "aggressive"
)

var ErrUnknownOptimizationLevel = errors.New("unknown optimization level")

func ParseOptimizationLevel(s string) (OptimizationLevel, error) {
	switch OptimizationLevel(s) {
	case OptimizationLight, OptimizationModerate, OptimizationAggressive:
		return OptimizationLevel(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownOptimizationLevel, s)
}

// OptimizationRequest is the payload of the optimize call. JobDescription
// must be non-empty; the caller guards this before any request is made.
type OptimizationRequest struct {
	JobDescription string            `json:"job_description" validate:"required"`
	Level          OptimizationLevel `json:"optimization_level" validate:"required,oneof=light moderate aggressive"`
}

// Optimization is the scoring part of an optimization report.
type Optimization struct {
	Score                float64  `json:"score"`
	Feedback             string   `json:"feedback"`
	Suggestions          []string `json:"suggestions"`
	OptimizedSummary     string   `json:"optimized_summary,omitempty"`
	MissingSkills        []string `json:"missing_skills,omitempty"`
	ResumeBoostParagraph string   `json:"resume_boost_paragraph,omitempty"`
}

// ImprovementAdvice is per-section guidance accompanying an optimization.
type ImprovementAdvice struct {
	Summary  string `json:"summary,omitempty"`
	Skills   string `json:"skills,omitempty"`
	Projects string `json:"projects,omitempty"`
}

// OptimizationReport is the canonical (nested) optimize response. The
// backend historically also served a flat variant; the transport lifts
// that into this shape on decode.
type OptimizationReport struct {
	Optimization      Optimization      `json:"optimization"`
	ImprovementAdvice ImprovementAdvice `json:"improvement_advice"`
}
