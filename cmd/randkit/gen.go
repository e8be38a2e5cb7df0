package main

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"os"
)

// UUIDCmd prints UUID v4 values, one per line.
type UUIDCmd struct {
	Count int `short:"n" default:"1" help:"Number of UUIDs to generate"`
}

func (c *UUIDCmd) Run(g *Globals) error {
	gen, err := g.generator()
	if err != nil {
		return err
	}
	for i := 0; i < c.Count; i++ {
		fmt.Println(gen.UUID())
	}
	return nil
}

// StringCmd prints random alphanumeric strings, one per line.
type StringCmd struct {
	Length int `short:"l" default:"16" help:"Characters per string"`
	Count  int `short:"n" default:"1" help:"Number of strings to generate"`
}

func (c *StringCmd) Run(g *Globals) error {
	gen, err := g.generator()
	if err != nil {
		return err
	}
	for i := 0; i < c.Count; i++ {
		fmt.Println(gen.Alphanumeric(c.Length))
	}
	return nil
}

// IntCmd prints uniform integers from an inclusive range.
type IntCmd struct {
	Min   int32 `required:"" help:"Lower bound (inclusive)"`
	Max   int32 `required:"" help:"Upper bound (inclusive)"`
	Count int   `short:"n" default:"1" help:"Number of values to generate"`
}

func (c *IntCmd) Run(g *Globals) error {
	gen, err := g.generator()
	if err != nil {
		return err
	}
	for i := 0; i < c.Count; i++ {
		fmt.Println(gen.Range(c.Min, c.Max))
	}
	return nil
}

// FloatCmd prints uniform floats from a half-open range.
type FloatCmd struct {
	Min   float32 `default:"0" help:"Lower bound (inclusive)"`
	Max   float32 `default:"1" help:"Upper bound (exclusive)"`
	Count int     `short:"n" default:"1" help:"Number of values to generate"`
}

func (c *FloatCmd) Run(g *Globals) error {
	gen, err := g.generator()
	if err != nil {
		return err
	}
	for i := 0; i < c.Count; i++ {
		fmt.Println(gen.RangeFloat(c.Min, c.Max))
	}
	return nil
}

// BytesCmd writes random bytes to stdout.
type BytesCmd struct {
	Count    int    `short:"n" default:"16" help:"Number of bytes to generate"`
	Encoding string `default:"hex" enum:"hex,base64,raw" help:"Output encoding"`
}

func (c *BytesCmd) Run(g *Globals) error {
	gen, err := g.generator()
	if err != nil {
		return err
	}
	buf := make([]byte, c.Count)
	gen.Bytes(buf)
	switch c.Encoding {
	case "hex":
		fmt.Println(hex.EncodeToString(buf))
	case "base64":
		fmt.Println(base64.StdEncoding.EncodeToString(buf))
	case "raw":
		if _, err := os.Stdout.Write(buf); err != nil {
			return err
		}
	}
	return nil
}
