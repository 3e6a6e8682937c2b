//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

package main

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ezrec/autoclip"
)

var (
	opaque = color.NRGBA{R: 0x80, G: 0x40, B: 0x20, A: 0xff}
)

// writeSpeckle saves a 6x6 transparent PNG with a lone pixel at (0,0) and
// a 2x2 block at (3,3)
func writeSpeckle(t *testing.T, dir string) (path string) {
	img := image.NewNRGBA(image.Rect(0, 0, 6, 6))
	img.SetNRGBA(0, 0, opaque)
	img.SetNRGBA(3, 3, opaque)
	img.SetNRGBA(4, 3, opaque)
	img.SetNRGBA(3, 4, opaque)
	img.SetNRGBA(4, 4, opaque)

	path = filepath.Join(dir, "speckle.png")
	writer, err := os.Create(path)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	defer writer.Close()

	err = png.Encode(writer, img)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	return
}

func TestEvaluateClip(t *testing.T) {
	dir := t.TempDir()
	in := writeSpeckle(t, dir)
	out := filepath.Join(dir, "clipped.argb")

	cfg := DefaultConfig()
	session, err := evaluate(&cfg, []string{in, "clip", "-r", "1.5", "-n", "1", out})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if !session.HasAlphaChannel() {
		t.Errorf("expected the PNG alpha channel to be detected")
	}

	// Read back through the native container
	reloaded, err := evaluate(&cfg, []string{out})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	bm := reloaded.Current()
	if bm.PixelAt(0, 0) != autoclip.Transparent {
		t.Errorf("expected the lone pixel to be clipped, got %v", bm.PixelAt(0, 0))
	}

	kept := autoclip.PackChannels(opaque.A, opaque.R, opaque.G, opaque.B)
	for _, pt := range []image.Point{{3, 3}, {4, 3}, {3, 4}, {4, 4}} {
		if bm.PixelAt(pt.X, pt.Y) != kept {
			t.Errorf("(%v,%v): expected %v, got %v", pt.X, pt.Y, kept, bm.PixelAt(pt.X, pt.Y))
		}
	}
}

func TestEvaluateReset(t *testing.T) {
	dir := t.TempDir()
	in := writeSpeckle(t, dir)

	cfg := DefaultConfig()
	session, err := evaluate(&cfg, []string{in, "clip", "reset"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if session.Modified() {
		t.Errorf("expected reset to restore the original")
	}
}

func TestEvaluateEmpty(t *testing.T) {
	cfg := DefaultConfig()

	session, err := evaluate(&cfg, []string{"empty", "--size", "4x3", "--fill", "#F00", "clip", "-n", "8"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	bm := session.Current()
	if bm.Width != 4 || bm.Height != 3 {
		t.Fatalf("expected 4x3, got %vx%v", bm.Width, bm.Height)
	}

	// Only the two middle pixels have 8 neighbours at radius 1.5
	red := autoclip.PackChannels(0xff, 0xff, 0, 0)
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			expected := autoclip.Transparent
			if y == 1 && (x == 1 || x == 2) {
				expected = red
			}
			if bm.PixelAt(x, y) != expected {
				t.Errorf("(%v,%v): expected %v, got %v", x, y, expected, bm.PixelAt(x, y))
			}
		}
	}
}

func TestEvaluateErrors(t *testing.T) {
	dir := t.TempDir()
	in := writeSpeckle(t, dir)

	cfg := DefaultConfig()

	_, err := evaluate(&cfg, []string{"empty", "--alpha=false", "clip"})
	if !errors.Is(err, autoclip.ErrMissingBackgroundColor) {
		t.Errorf("expected %v, got %v", autoclip.ErrMissingBackgroundColor, err)
	}

	_, err = evaluate(&cfg, []string{"empty", "--alpha=false", "clip", "--background", "#XYZ"})
	var colorErr autoclip.ErrInvalidColorFormat
	if !errors.As(err, &colorErr) {
		t.Errorf("expected an invalid color error, got %v", err)
	}

	table := map[string][]string{
		"none":       {},
		"suffix":     {filepath.Join(dir, "image.unknown")},
		"missing":    {filepath.Join(dir, "missing.png")},
		"option":     {in, "clip", "--no-such-option"},
		"passes":     {in, "clip", "--passes", "0"},
		"radius":     {in, "clip", "--radius", "-1"},
		"trailing":   {in, filepath.Join(dir, "out.png"), "extra"},
		"outsuffix":  {in, "clip", filepath.Join(dir, "out.unknown")},
		"emptysize":  {"empty", "--size", "0x3"},
		"emptyparse": {"empty", "--size", "large"},
	}

	for key, args := range table {
		_, err = evaluate(&cfg, args)
		if err == nil {
			t.Errorf("%v: expected an error", key)
		}
	}
}

func TestEvaluateConfigDefaults(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Background = "#000"
	cfg.MinNeighbors = 9

	// Without an alpha channel, the configured background selects colour mode
	session, err := evaluate(&cfg, []string{"empty", "--alpha=false", "--size", "3x3", "--fill", "#FFF", "clip"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	black := autoclip.PackChannels(0xff, 0, 0, 0)
	for n, p := range session.Current().Pix {
		if p != black {
			t.Errorf("[%v]: expected %v, got %v", n, black, p)
		}
	}
}

func TestEvaluateProgress(t *testing.T) {
	buff := &bytes.Buffer{}

	cfg := DefaultConfig()
	cfg.Progress = newProgressBar(buff)

	_, err := evaluate(&cfg, []string{"empty", "--size", "8x8", "clip", "reset"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if !strings.HasPrefix(buff.String(), "\rclip") || !strings.HasSuffix(buff.String(), " 100%\n") {
		t.Errorf("expected a clip progress bar, got %q", buff.String())
	}

	// Commands without a display stay silent
	buff.Reset()
	cfg.Progress = nil
	_, err = evaluate(&cfg, []string{"empty", "--size", "8x8", "clip"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if buff.Len() != 0 {
		t.Errorf("expected no progress, got %q", buff.String())
	}
}
