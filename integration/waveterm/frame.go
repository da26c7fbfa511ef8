// Copyright 2026 The wavetile Authors
// SPDX-License-Identifier: BSD-3-Clause

package waveterm

import (
	"fmt"
	"image"
	"io"
	"strings"
)

// WriteFrame writes img to w as ANSI truecolor half blocks, stretched
// to a cols x rows character grid. Each cell covers two image rows: the
// upper through the foreground color of U+2580 and the lower through
// the background. Every line resets attributes, so partial frames never
// leak colors into following output.
//
// WriteFrame is stateless; it neither positions the cursor nor clears
// the screen. An empty image or grid writes nothing.
func WriteFrame(w io.Writer, img *image.RGBA, cols, rows int) error {
	if img == nil || cols < 1 || rows < 1 {
		return nil
	}
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return nil
	}

	var sb strings.Builder
	for cy := 0; cy < rows; cy++ {
		for cx := 0; cx < cols; cx++ {
			x := b.Min.X + cx*b.Dx()/cols
			top := img.RGBAAt(x, b.Min.Y+(cy*2)*b.Dy()/(rows*2))
			bot := img.RGBAAt(x, b.Min.Y+(cy*2+1)*b.Dy()/(rows*2))
			fmt.Fprintf(&sb, "\x1b[38;2;%d;%d;%dm\x1b[48;2;%d;%d;%dm▀",
				top.R, top.G, top.B, bot.R, bot.G, bot.B)
		}
		sb.WriteString("\x1b[0m\n")
	}
	_, err := io.WriteString(w, sb.String())
	return err
}
