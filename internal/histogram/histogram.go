// Package histogram renders fixed-bucket histograms of float64 samples as
// styled terminal bars. It exists for the `randkit hist` command and for
// eyeballing distribution shape during development.
package histogram

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	barStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7D56F4"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))
)

// Histogram accumulates samples into evenly sized buckets over [Min, Max).
// Samples outside the interval are counted as clipped rather than dropped
// silently.
type Histogram struct {
	Min, Max float64
	Counts   []int
	Clipped  int
	total    int
}

// New returns a histogram over [min, max) with the given bucket count.
func New(min, max float64, buckets int) *Histogram {
	if buckets < 1 {
		buckets = 1
	}
	return &Histogram{
		Min:    min,
		Max:    max,
		Counts: make([]int, buckets),
	}
}

// Observe adds one sample.
func (h *Histogram) Observe(v float64) {
	h.total++
	if v < h.Min || v >= h.Max {
		h.Clipped++
		return
	}
	i := int((v - h.Min) / (h.Max - h.Min) * float64(len(h.Counts)))
	if i == len(h.Counts) {
		// Guard against float rounding at the upper edge.
		i--
	}
	h.Counts[i]++
}

// Total returns the number of observed samples, including clipped ones.
func (h *Histogram) Total() int {
	return h.total
}

// Render returns one line per bucket: a range label, a bar scaled so the
// fullest bucket spans width cells, and the raw count. Set color to false
// for plain ASCII output.
func (h *Histogram) Render(width int, color bool) string {
	if width < 1 {
		width = 40
	}
	peak := 0
	for _, c := range h.Counts {
		if c > peak {
			peak = c
		}
	}

	var b strings.Builder
	step := (h.Max - h.Min) / float64(len(h.Counts))
	for i, c := range h.Counts {
		lo := h.Min + float64(i)*step
		label := fmt.Sprintf("%9.3f ", lo)
		cells := 0
		if peak > 0 {
			cells = c * width / peak
		}
		bar := strings.Repeat("█", cells)
		if color {
			label = labelStyle.Render(label)
			bar = barStyle.Render(bar)
		}
		fmt.Fprintf(&b, "%s%s %d\n", label, bar, c)
	}
	if h.Clipped > 0 {
		fmt.Fprintf(&b, "(%d samples outside [%g, %g))\n", h.Clipped, h.Min, h.Max)
	}
	return b.String()
}
