// Command wavetile renders a waveform image from an audio file.
package main

import (
	"flag"
	"log"
	"math"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/term"

	"github.com/wavetile/wavetile"
	"github.com/wavetile/wavetile/integration/waveterm"
	"github.com/wavetile/wavetile/peaks"
)

func main() {
	var (
		in            = flag.String("in", "", "input audio file (.wav or .aiff)")
		out           = flag.String("out", "waveform.png", "output image file (.png or .jpg)")
		width         = flag.Int("width", 800, "image width in logical pixels")
		height        = flag.Int("height", 128, "waveform height in buffer pixels")
		pixelRatio    = flag.Float64("pixel-ratio", 1, "device pixel ratio")
		vertical      = flag.Bool("vertical", false, "render top to bottom instead of left to right")
		waveColor     = flag.String("wave-color", "#999", "waveform color, comma-separated hex list for a gradient")
		progressColor = flag.String("progress-color", "", "progress overlay color, comma-separated hex list")
		barWidth      = flag.Float64("bar-width", 0, "bar width in buffer pixels, 0 draws a continuous waveform")
		barGap        = flag.Float64("bar-gap", 0, "gap between bars, 0 derives one from the bar width")
		barRadius     = flag.Float64("bar-radius", 0, "bar corner radius")
		samples       = flag.Int("samples", 0, "max/min pairs to extract, 0 matches the device width")
		quality       = flag.Int("quality", 0, "jpeg quality 1-100, 0 uses the encoder default")
		preview       = flag.Bool("preview", false, "print an ANSI preview to the terminal")
	)
	flag.Parse()

	if *in == "" {
		flag.Usage()
		os.Exit(2)
	}

	deviceWidth := int(math.Round(float64(*width) * *pixelRatio))
	pairs := *samples
	if pairs <= 0 {
		pairs = deviceWidth
	}

	series, err := peaks.FromFile(*in, pairs)
	if err != nil {
		log.Fatalf("Failed to read audio: %v", err)
	}

	opts := []wavetile.Option{
		wavetile.WithHeight(*height),
		wavetile.WithPixelRatio(*pixelRatio),
	}
	if *vertical {
		opts = append(opts, wavetile.WithOrientation(wavetile.Vertical))
	}
	if spec := parseFill(*waveColor); spec != nil {
		opts = append(opts, wavetile.WithWaveFill(spec))
	}
	if spec := parseFill(*progressColor); spec != nil {
		opts = append(opts, wavetile.WithProgressFill(spec))
	}
	if *barWidth > 0 {
		opts = append(opts, wavetile.WithBars(wavetile.BarStyle{
			Width:  *barWidth,
			Gap:    *barGap,
			Radius: *barRadius,
		}))
	}

	r, err := wavetile.NewRenderer(opts...)
	if err != nil {
		log.Fatalf("Failed to create renderer: %v", err)
	}
	defer r.Close()

	if err := r.Layout(deviceWidth); err != nil {
		log.Fatalf("Failed to lay out tiles: %v", err)
	}
	if err := r.Render(series); err != nil {
		log.Fatalf("Failed to render: %v", err)
	}

	if *preview {
		img, err := r.Image()
		if err != nil {
			log.Fatalf("Failed to stitch preview: %v", err)
		}
		cols, rows, err := term.GetSize(0)
		if err != nil {
			// Not a terminal; fall back to a typical size.
			cols, rows = 80, 24
		}
		if err := waveterm.WriteFrame(os.Stdout, img, cols, rows-1); err != nil {
			log.Fatalf("Failed to write preview: %v", err)
		}
	}

	f, err := os.Create(*out)
	if err != nil {
		log.Fatalf("Failed to create output: %v", err)
	}
	if err := r.WriteImage(f, outputFormat(*out), *quality); err != nil {
		log.Fatalf("Failed to encode image: %v", err)
	}
	if err := f.Close(); err != nil {
		log.Fatalf("Failed to close output: %v", err)
	}

	w, h := deviceWidth, bandHeight(r)
	if *vertical {
		w, h = h, w
	}
	log.Printf("Waveform saved to %s (%dx%d)\n", *out, w, h)
}

// outputFormat picks the encoding from the output file extension.
func outputFormat(path string) wavetile.Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return wavetile.FormatJPEG
	default:
		return wavetile.FormatPNG
	}
}

// bandHeight reports the rendered image height from the first tile.
func bandHeight(r *wavetile.Renderer) int {
	if t := r.Tile(0); t != nil {
		return t.Height()
	}
	return 0
}

// parseFill turns a comma-separated hex color list into a fill spec.
// One color yields a solid fill, several a vertical gradient, none nil.
func parseFill(s string) wavetile.FillSpec {
	var hexes []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			hexes = append(hexes, part)
		}
	}
	return wavetile.FillHex(hexes...)
}
