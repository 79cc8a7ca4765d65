package core

// ComplexRoot is a point a+bi reported by the solver. Color and SourceEquation
// stay empty until the root is aggregated from a history entry.
type ComplexRoot struct {
	Real           float64 `json:"real"`
	Imaginary      float64 `json:"imaginary"`
	Label          string  `json:"label"`
	Color          string  `json:"color,omitempty"`
	SourceEquation string  `json:"sourceEquation,omitempty"`
}

type SolutionResult struct {
	Roots            []ComplexRoot `json:"roots"`
	LatexSolution    string        `json:"latexSolution"`
	ExplanationSteps []string      `json:"explanationSteps"`
	EquationType     string        `json:"equationType"`
}

// HistoryEntry is one retained (equation, solution) pair. Timestamp is in
// milliseconds since the Unix epoch.
type HistoryEntry struct {
	ID        string         `json:"id"`
	Timestamp int64          `json:"timestamp"`
	Equation  string         `json:"equation"`
	Solution  SolutionResult `json:"solution"`
	Color     string         `json:"color"`
}

type Example struct {
	Label    string `json:"label"`
	Equation string `json:"equation"`
}
