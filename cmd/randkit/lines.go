package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/lox/randkit/pcg"
)

// ShuffleCmd prints the input lines in uniformly random order.
type ShuffleCmd struct {
	File string `arg:"" optional:"" help:"File to shuffle (defaults to stdin)"`
}

func (c *ShuffleCmd) Run(g *Globals) error {
	gen, err := g.generator()
	if err != nil {
		return err
	}
	lines, err := readLines(c.File)
	if err != nil {
		return err
	}
	pcg.ShuffleSlice(gen, lines)
	for _, line := range lines {
		fmt.Println(line)
	}
	return nil
}

// PickCmd prints uniformly chosen input lines. Lines may repeat; this is
// sampling with replacement.
type PickCmd struct {
	File  string `arg:"" optional:"" help:"File to pick from (defaults to stdin)"`
	Count int    `short:"n" default:"1" help:"Number of lines to pick"`
}

func (c *PickCmd) Run(g *Globals) error {
	gen, err := g.generator()
	if err != nil {
		return err
	}
	lines, err := readLines(c.File)
	if err != nil {
		return err
	}
	for i := 0; i < c.Count; i++ {
		line, err := pcg.Choice(gen, lines)
		if err != nil {
			return fmt.Errorf("no lines to pick from: %w", err)
		}
		fmt.Println(line)
	}
	return nil
}

func readLines(path string) ([]string, error) {
	var r io.Reader = os.Stdin
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines, scanner.Err()
}
