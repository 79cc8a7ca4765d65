package solver

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/sandevgo/argand/internal/core"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	_ = validate.RegisterValidation("finite", validateFinite)
}

func validateFinite(fl validator.FieldLevel) bool {
	f := fl.Field().Float()
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// wireRoot and wireSolution mirror the JSON answer with pointers so that
// missing fields can be told apart from zero values.
type wireRoot struct {
	Real      *float64 `json:"real" validate:"required,finite"`
	Imaginary *float64 `json:"imaginary" validate:"required,finite"`
	Label     string   `json:"label" validate:"required"`
}

type wireSolution struct {
	Roots            []wireRoot `json:"roots" validate:"required,dive"`
	LatexSolution    *string    `json:"latexSolution" validate:"required"`
	ExplanationSteps []string   `json:"explanationSteps" validate:"required"`
	EquationType     *string    `json:"equationType" validate:"required"`
}

// decodeSolution parses and validates a model answer.
func decodeSolution(text string) (core.SolutionResult, error) {
	text = stripFences(text)
	if text == "" {
		return core.SolutionResult{}, ErrEmptyResponse
	}

	var w wireSolution
	if err := json.Unmarshal([]byte(text), &w); err != nil {
		return core.SolutionResult{}, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if err := validate.Struct(w); err != nil {
		return core.SolutionResult{}, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	res := core.SolutionResult{
		Roots:            make([]core.ComplexRoot, len(w.Roots)),
		LatexSolution:    *w.LatexSolution,
		ExplanationSteps: w.ExplanationSteps,
		EquationType:     *w.EquationType,
	}
	for i, r := range w.Roots {
		res.Roots[i] = core.ComplexRoot{Real: *r.Real, Imaginary: *r.Imaginary, Label: r.Label}
	}
	return res, nil
}

// stripFences removes a surrounding markdown code fence, if any.
func stripFences(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") {
		return text
	}
	text = strings.TrimPrefix(text, "```")
	if nl := strings.IndexByte(text, '\n'); nl >= 0 {
		// drop the language tag
		text = text[nl+1:]
	}
	text = strings.TrimSuffix(strings.TrimSpace(text), "```")
	return strings.TrimSpace(text)
}
