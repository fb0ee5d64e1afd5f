// Package progress renders a single-line textual progress bar with an
// estimated remaining time. Rendering is a pure function of the current
// count, the total and the elapsed time; Reporter handles the in-place
// terminal overwrite.
package progress

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// barWidth is the number of fill cells between the bar borders.
const barWidth = 50

// Render returns the progress line for current out of total after elapsed
// wall-clock time, e.g. `│███──...──│ 3/50 remaining time: 0:00:12`.
func Render(current, total int, elapsed time.Duration) string {
	var progress float64
	if total > 0 {
		progress = float64(current) / float64(total)
	}

	filled := int(progress * barWidth)
	if filled > barWidth {
		filled = barWidth
	}

	bar := "│" + strings.Repeat("█", filled) + strings.Repeat("─", barWidth-filled) + "│"

	return fmt.Sprintf("%s %d/%d remaining time: %s", bar, current, total, formatDuration(Remaining(progress, elapsed)))
}

// Remaining estimates the time left as elapsed/progress - elapsed, the
// linear extrapolation of the observed rate. Zero progress yields zero.
func Remaining(progress float64, elapsed time.Duration) time.Duration {
	if progress <= 0 {
		return 0
	}

	return time.Duration(float64(elapsed)/progress) - elapsed
}

// formatDuration renders d as H:MM:SS with whole seconds, hours unpadded.
func formatDuration(d time.Duration) string {
	seconds := int(d.Seconds())

	return fmt.Sprintf("%d:%02d:%02d", seconds/3600, seconds/60%60, seconds%60)
}

// Reporter writes progress updates to a single terminal line, overwriting
// the previous update with a carriage return. It satisfies the generator's
// observer signature via Update.
type Reporter struct {
	w io.Writer
}

// NewReporter returns a Reporter writing to w.
func NewReporter(w io.Writer) *Reporter {
	return &Reporter{w: w}
}

// Update rewrites the progress line in place.
func (r *Reporter) Update(current, total int, elapsed time.Duration) {
	fmt.Fprint(r.w, "\r"+Render(current, total, elapsed))
}

// Finish terminates the progress line so following output starts on a
// fresh line.
func (r *Reporter) Finish() {
	fmt.Fprintln(r.w)
}
