//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

package raster

import (
	"bytes"
	"image"
	"testing"

	"github.com/ezrec/autoclip"
)

func testBitmap(t *testing.T, pix []autoclip.Pixel) (bm *autoclip.Bitmap) {
	bm, err := autoclip.NewBitmap(3, 2)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	copy(bm.Pix, pix)
	return
}

func roundTrip(t *testing.T, suffix string, args []string, bm *autoclip.Bitmap) (img image.Image) {
	rf := NewFormatter(suffix)
	err := rf.Parse(args)
	if err != nil {
		t.Fatalf("%s: expected no error, got %v", suffix, err)
	}

	buff := &bytes.Buffer{}
	err = rf.Encode(buff, bm)
	if err != nil {
		t.Fatalf("%s: encode: %v", suffix, err)
	}

	img, err = rf.Decode(bytes.NewReader(buff.Bytes()), int64(buff.Len()))
	if err != nil {
		t.Fatalf("%s: decode: %v", suffix, err)
	}

	if img.Bounds() != bm.Bounds() {
		t.Fatalf("%s: expected bounds %v, got %v", suffix, bm.Bounds(), img.Bounds())
	}

	return
}

func TestLossless(t *testing.T) {
	opaque := []autoclip.Pixel{
		0xffff0000, 0xff00ff00, 0xff0000ff,
		0xff000000, 0xffffffff, 0xff123456,
	}
	alpha := []autoclip.Pixel{
		0xffff0000, 0x00000000, 0xff0000ff,
		0x00000000, 0xffffffff, 0xff123456,
	}

	table := map[string]struct {
		suffix string
		pix    []autoclip.Pixel
		alpha  bool
	}{
		"png":       {".png", opaque, false},
		"png-alpha": {".png", alpha, true},
		"bmp":       {".bmp", opaque, false},
	}

	for key, item := range table {
		bm := testBitmap(t, item.pix)
		img := roundTrip(t, item.suffix, []string{}, bm)

		if autoclip.HasAlphaChannel(img) != item.alpha {
			t.Errorf("%v: expected alpha %v, got %v", key, item.alpha, !item.alpha)
		}

		out, err := autoclip.FromImage(img)
		if err != nil {
			t.Fatalf("%v: expected no error, got %v", key, err)
		}

		for n, p := range out.Pix {
			if p != bm.Pix[n] {
				t.Errorf("%v: [%d] expected %v, got %v", key, n, bm.Pix[n], p)
			}
		}
	}
}

func TestLossy(t *testing.T) {
	bm := testBitmap(t, []autoclip.Pixel{0xffff0000, 0xffff0000, 0xffff0000})

	img := roundTrip(t, ".jpg", []string{"--quality", "90"}, bm)
	if autoclip.HasAlphaChannel(img) {
		t.Errorf("jpeg: expected no alpha channel")
	}

	roundTrip(t, ".gif", []string{"-c", "16"}, bm)
}

func TestInvalidOptions(t *testing.T) {
	bm := testBitmap(t, nil)

	table := map[string]struct {
		suffix string
		args   []string
	}{
		"quality":     {".jpeg", []string{"--quality", "0"}},
		"colors":      {".gif", []string{"--colors", "300"}},
		"compression": {".png", []string{"--compression", "fast"}},
	}

	for key, item := range table {
		rf := NewFormatter(item.suffix)
		err := rf.Parse(item.args)
		if err != nil {
			t.Fatalf("%v: expected no error, got %v", key, err)
		}

		err = rf.Encode(&bytes.Buffer{}, bm)
		if err == nil {
			t.Errorf("%v: expected an error", key)
		}
	}
}

func TestHeaderAlpha(t *testing.T) {
	header := make([]byte, 32)

	header[28] = 32
	if !bmpAlpha(header) {
		t.Errorf("bmp: expected 32bpp to carry alpha")
	}
	header[28] = 24
	if bmpAlpha(header) {
		t.Errorf("bmp: expected 24bpp to lack alpha")
	}

	header[16] = 24
	header[17] = 0
	if tgaAlpha(header) {
		t.Errorf("tga: expected 24bpp to lack alpha")
	}
	header[17] = 8
	if !tgaAlpha(header) {
		t.Errorf("tga: expected alpha bits to carry alpha")
	}

	if bmpAlpha(header[:10]) || tgaAlpha(header[:10]) {
		t.Errorf("short headers must not report alpha")
	}
}
