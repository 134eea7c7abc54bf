package model

import (
	"fmt"
	"io"
	"strings"

	"github.com/neurox-ml/neurox/internal/errs"
)

// WriteSummary prints the architecture, one line per layer, followed by the
// total parameter count:
//
//	Model Summary:
//	 Layer 0: Dense 2 -> 6 (params 18)
//	 Layer 1: Dense 6 -> 2 (params 14)
//	Total params: 32
func (m *Model) WriteSummary(w io.Writer) error {
	if _, err := fmt.Fprintln(w, "Model Summary:"); err != nil {
		return errs.IO(err)
	}
	for i, s := range m.LayerShapes() {
		if _, err := fmt.Fprintf(w, " Layer %d: Dense %d -> %d (params %d)\n", i, s.In, s.Out, s.Params); err != nil {
			return errs.IO(err)
		}
	}
	_, err := fmt.Fprintf(w, "Total params: %d\n", m.NumParams())
	return errs.IO(err)
}

// Summary returns the text WriteSummary prints.
func (m *Model) Summary() string {
	var sb strings.Builder
	_ = m.WriteSummary(&sb) // strings.Builder never fails
	return sb.String()
}
