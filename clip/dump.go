package clip

import (
	"fmt"
	"strings"

	"github.com/logrusorgru/aurora"
)

// DumpState formats the session's current classification for terminal
// debugging: ears cyan, other convex vertices green, reflex vertices red.
// Clipped vertices are omitted.
func (t *Triangulator) DumpState() string {
	if t.trivial {
		return "trivial triangle, no classification"
	}
	var b strings.Builder
	for i := range t.points {
		if !t.convex.Contains(i) && !t.reflex.Contains(i) {
			continue
		}
		label := fmt.Sprintf("%d(%.4g, %.4g)", i, t.points[i].X, t.points[i].Y)
		switch {
		case t.ear.Contains(i):
			b.WriteString(aurora.Cyan(label).String())
		case t.convex.Contains(i):
			b.WriteString(aurora.Green(label).String())
		default:
			b.WriteString(aurora.Red(label).String())
		}
		b.WriteString(" ")
	}
	return strings.TrimSpace(b.String())
}
