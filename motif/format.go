package motif

import (
	"fmt"
	"github.com/vertgenlab/gonomics/dna"
	"gonum.org/v1/gonum/mat"
	"strings"
	"text/tabwriter"
)

// Format renders a profile or position-weight matrix with one row per base,
// labeled with the base, and one tab-aligned column per motif position.
func Format(m mat.Matrix) string {
	s := new(strings.Builder)
	w := tabwriter.NewWriter(s, 0, 8, 2, ' ', tabwriter.AlignRight)
	r, c := m.Dims()
	for b := 0; b < r && b < NumBases; b++ {
		fmt.Fprintf(w, "%s\t", dna.BaseToString(bases[b]))
		for k := 0; k < c; k++ {
			fmt.Fprintf(w, "%.4g\t", m.At(b, k))
		}
		fmt.Fprintln(w)
	}
	w.Flush()
	return s.String()
}

// Formatted returns m in gonum's bracketed matrix notation.
func Formatted(m mat.Matrix) string {
	return fmt.Sprintf("%v", mat.Formatted(m, mat.Squeeze()))
}
