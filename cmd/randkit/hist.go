package main

import (
	"fmt"

	"github.com/muesli/termenv"

	"github.com/lox/randkit/internal/histogram"
)

// HistCmd samples a distribution and renders a terminal histogram, handy
// for eyeballing the shape of the Gaussian sampler or a bounded range.
type HistCmd struct {
	Dist    string  `default:"gaussian" enum:"gaussian,uniform" help:"Distribution to sample"`
	Samples int     `short:"n" default:"100000" help:"Number of samples"`
	Buckets int     `default:"20" help:"Number of histogram buckets"`
	Width   int     `default:"40" help:"Bar width of the fullest bucket"`
	Mean    float64 `default:"0" help:"Gaussian mean"`
	Stddev  float64 `default:"1" help:"Gaussian standard deviation"`
	Min     float64 `default:"0" help:"Uniform lower bound"`
	Max     float64 `default:"1" help:"Uniform upper bound"`
	NoColor bool    `help:"Disable styled output"`
}

func (c *HistCmd) Run(g *Globals) error {
	gen, err := g.generator()
	if err != nil {
		return err
	}

	var h *histogram.Histogram
	switch c.Dist {
	case "gaussian":
		// Cover ±4 sigma; anything outside shows up as clipped.
		h = histogram.New(c.Mean-4*c.Stddev, c.Mean+4*c.Stddev, c.Buckets)
		for i := 0; i < c.Samples; i++ {
			h.Observe(gen.Gaussian(c.Mean, c.Stddev))
		}
	case "uniform":
		h = histogram.New(c.Min, c.Max, c.Buckets)
		for i := 0; i < c.Samples; i++ {
			h.Observe(c.Min + gen.Float64()*(c.Max-c.Min))
		}
	}

	color := !c.NoColor && termenv.ColorProfile() != termenv.Ascii
	fmt.Print(h.Render(c.Width, color))
	return nil
}
