package seq_modeller

import (
	"fmt"
	"strings"
)

// SequenceID joins the base id with the 1-based sequence number, zero-padded
// to padding digits. Longer numbers are never truncated.
func SequenceID(baseID string, n, padding int) string {
	return fmt.Sprintf("%s%0*d", baseID, padding, n)
}

func Header(id, seq string) string {
	return fmt.Sprintf(">%s [length=%d]", id, len(seq))
}

// Wrap splits seq into lines of width characters. width <= 0 disables
// wrapping.
func Wrap(seq string, width int) string {
	if width <= 0 || len(seq) <= width {
		return seq
	}
	var sb strings.Builder
	sb.Grow(len(seq) + len(seq)/width)
	for i := 0; i < len(seq); i += width {
		if i > 0 {
			sb.WriteByte('\n')
		}
		end := min(i+width, len(seq))
		sb.WriteString(seq[i:end])
	}
	return sb.String()
}
