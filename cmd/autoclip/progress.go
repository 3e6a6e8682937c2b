//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

package main

import (
	"fmt"
	"io"
	"strings"
)

const (
	progressWidth = 40
)

// progressBar draws a single updating line
type progressBar struct {
	writer io.Writer
	shown  int
}

func newProgressBar(writer io.Writer) (pb *progressBar) {
	pb = &progressBar{
		writer: writer,
		shown:  -1,
	}
	return
}

func (pb *progressBar) Show(label string, percent float32) {
	filled := int(percent) * progressWidth / 100
	if filled > progressWidth {
		filled = progressWidth
	}

	if filled == pb.shown && percent < 100.0 {
		return
	}
	pb.shown = filled

	fmt.Fprintf(pb.writer, "\r%-8s [%s%s] %3.0f%%", label,
		strings.Repeat("#", filled),
		strings.Repeat(".", progressWidth-filled),
		percent)
}

func (pb *progressBar) Stop() {
	fmt.Fprintln(pb.writer)
	pb.shown = -1
}
