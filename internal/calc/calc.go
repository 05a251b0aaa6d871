package calc

import (
	"strconv"
)

// Calculator implements the Calculator port with LaTeX preprocessing
// followed by infix evaluation.
type Calculator struct{}

// New builds a Calculator.
func New() *Calculator { return &Calculator{} }

// Evaluate preprocesses expr (accepting either plain infix arithmetic or
// the LaTeX dialect described in spec §4.E) and evaluates it, ok=false on
// any failure.
func (Calculator) Evaluate(expr string) (string, bool) {
	cleaned := preprocessLatex(expr)
	v, ok := evaluate(cleaned)
	if !ok {
		return "", false
	}
	return formatResult(v), true
}

// formatResult trims trailing zeros the way a pocket calculator display
// would, without resorting to scientific notation for ordinary magnitudes.
func formatResult(v float64) string {
	if v == float64(int64(v)) {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
