package termgath

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/fatih/color"
)

// TerminalGatherer prints the comparison transcript to a writer. Section
// headers are rendered bold; with colors off the output is the plain
// transcript byte for byte.
type TerminalGatherer struct {
	w    io.Writer
	bold *color.Color
}

func New(w io.Writer) *TerminalGatherer {
	return &TerminalGatherer{w: w, bold: color.New(color.Bold)}
}

func (t *TerminalGatherer) StartComparison(runID string) {
	slog.Debug("comparison started", "run_id", runID)
	fmt.Fprintln(t.w, t.bold.Sprint("=== The Bitter Lesson Demonstration ==="))
	fmt.Fprintln(t.w)
	fmt.Fprintln(t.w, "This simulation compares two problem-solving approaches:")
	fmt.Fprintln(t.w, "1. **Specialized Method**: Uses built-in human knowledge. Performance remains constant regardless of computation time.")
	fmt.Fprintln(t.w, "2. **General Method**: Leverages computation through search and learning. Performance improves with more computation time.")
	fmt.Fprintln(t.w)
}

func (t *TerminalGatherer) StartSpecialized() {
	fmt.Fprintln(t.w, t.bold.Sprint("**Specialized Method Results:**"))
}

func (t *TerminalGatherer) SpecializedResult(problemSize int, quality float64) {
	fmt.Fprintf(t.w, "Problem Size %d: Solution Quality = %.2f\n", problemSize, quality)
}

func (t *TerminalGatherer) FinishSpecialized() {
	fmt.Fprintln(t.w)
	fmt.Fprintln(t.w, "(Notice that the specialized method's performance remains constant across different problem sizes.)")
	fmt.Fprintln(t.w)
}

func (t *TerminalGatherer) StartGeneral() {
	fmt.Fprintln(t.w, t.bold.Sprint("**General Method Results:**"))
}

func (t *TerminalGatherer) StartProblemSize(problemSize int) {
	fmt.Fprintf(t.w, "\nProblem Size %d:\n", problemSize)
}

func (t *TerminalGatherer) GeneralResult(problemSize int, computationTime float64, quality float64) {
	fmt.Fprintf(t.w, "  Computation Time %ss -> Solution Quality: %.2f\n", seconds(computationTime), quality)
}

func (t *TerminalGatherer) FinishProblemSize(problemSize int) {
	fmt.Fprintf(t.w, "(For problem size %d, the solution quality improves with more computation time.)\n", problemSize)
}

func (t *TerminalGatherer) FinishComparison() {
	fmt.Fprintln(t.w)
	fmt.Fprintln(t.w, t.bold.Sprint("=== Conclusion ==="))
	fmt.Fprintln(t.w, "The specialized method achieves a fixed solution quality regardless of computation time or problem size.")
	fmt.Fprintln(t.w, "In contrast, the general method's solution quality improves with increased computation time, especially for larger problem sizes.")
	fmt.Fprintln(t.w)
	fmt.Fprintln(t.w, "This demonstrates **'The Bitter Lesson'**:")
	fmt.Fprintln(t.w, "General methods that leverage computation ultimately outperform specialized methods that rely on built-in human knowledge.")
	fmt.Fprintln(t.w)
	fmt.Fprintln(t.w, "As computational resources continue to grow, focusing on general-purpose algorithms and learning methods becomes increasingly advantageous.")
}

// seconds renders a computation time with a decimal point always present
// (1.0s, not 1s) and no trailing zeros beyond it.
func seconds(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
