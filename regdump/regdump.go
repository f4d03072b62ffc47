// Copyright 2017 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package regdump renders register snapshots to a terminal using ANSI color
// codes, one line per register with each bit drawn as a block.
//
// Useful while bringing up a device to see which flags are set at a glance.
package regdump

import (
	"bytes"
	"fmt"
	"image/color"
	"io"
	"os"

	"github.com/maruel/ansi256"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

// Row is one register of a snapshot.
type Row struct {
	Name  string
	Value byte
	// On is the color of set bits. The zero value uses DefaultOn.
	On color.NRGBA
}

// DefaultOn is the color of set bits when a Row doesn't specify one.
var DefaultOn = color.NRGBA{R: 0x20, G: 0xd0, B: 0x20, A: 255}

var off = color.NRGBA{R: 0x30, G: 0x30, B: 0x30, A: 255}

// Opts represents the options available for the dumper.
type Opts struct {
	Palette *ansi256.Palette
	// Plain prints bits as 0 and 1 without escape codes.
	Plain bool

	_ struct{}
}

// Dumper writes register snapshots.
type Dumper struct {
	w       io.Writer
	palette ansi256.Palette
	plain   bool

	buf bytes.Buffer
}

// New returns a Dumper that writes to the console. Output falls back to
// plain text when stdout is not a terminal.
func New(opts *Opts) *Dumper {
	fd := os.Stdout.Fd()
	tty := isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	d := NewWriter(colorable.NewColorableStdout(), opts)
	d.plain = d.plain || !tty
	return d
}

// NewWriter returns a Dumper that writes to w.
func NewWriter(w io.Writer, opts *Opts) *Dumper {
	if opts == nil {
		opts = &Opts{}
	}
	p := opts.Palette
	if p == nil {
		p = ansi256.Default
	}
	return &Dumper{w: w, palette: *p, plain: opts.Plain}
}

func (d *Dumper) String() string {
	return "regdump"
}

// Halt resets the terminal attributes.
func (d *Dumper) Halt() error {
	if d.plain {
		return nil
	}
	_, err := io.WriteString(d.w, "\033[0m")
	return err
}

// Write renders rows, most significant bit first.
func (d *Dumper) Write(rows []Row) error {
	d.buf.Reset()
	width := 0
	for _, r := range rows {
		if len(r.Name) > width {
			width = len(r.Name)
		}
	}
	for _, r := range rows {
		_, _ = fmt.Fprintf(&d.buf, "%-*s 0x%02x ", width, r.Name, r.Value)
		if d.plain {
			_, _ = fmt.Fprintf(&d.buf, "%08b\n", r.Value)
			continue
		}
		on := r.On
		if on == (color.NRGBA{}) {
			on = DefaultOn
		}
		for bit := 7; bit >= 0; bit-- {
			c := off
			if r.Value&(1<<bit) != 0 {
				c = on
			}
			_, _ = io.WriteString(&d.buf, d.palette.Block(c))
		}
		_, _ = d.buf.WriteString("\033[0m\n")
	}
	_, err := d.buf.WriteTo(d.w)
	return err
}

var _ fmt.Stringer = &Dumper{}
