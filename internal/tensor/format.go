package tensor

import (
	"fmt"
	"strings"
)

const (
	previewRows = 3
	previewCols = 6
)

// String returns a truncated preview, e.g. "Tensor(4, 2) [[0.0000, 1.0000], ...]".
func (t *Tensor) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Tensor(%d, %d) [", t.rows, t.cols)

	rows := min(t.rows, previewRows)
	cols := min(t.cols, previewCols)
	for i := 0; i < rows; i++ {
		sb.WriteByte('[')
		for j := 0; j < cols; j++ {
			fmt.Fprintf(&sb, "%.4f", t.data[i*t.cols+j])
			if j+1 < cols {
				sb.WriteString(", ")
			}
		}
		if t.cols > previewCols {
			sb.WriteString(", ...")
		}
		sb.WriteByte(']')
		if i+1 < rows {
			sb.WriteString(", ")
		}
	}
	if t.rows > previewRows {
		sb.WriteString(", ...")
	}
	sb.WriteByte(']')

	return sb.String()
}
