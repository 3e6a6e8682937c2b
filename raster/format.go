//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

package raster

import (
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"

	"github.com/ftrvxmtrx/tga"
	"github.com/spf13/pflag"
	"golang.org/x/image/bmp"

	"github.com/ezrec/autoclip"
)

const (
	defaultJpegQuality = 100 // Saved images should not lose detail to the clip
	defaultGifColors   = 256
)

var pngCompression = map[string]png.CompressionLevel{
	"default": png.DefaultCompression,
	"none":    png.NoCompression,
	"speed":   png.BestSpeed,
	"best":    png.BestCompression,
}

type Format struct {
	*pflag.FlagSet

	Suffix      string
	Quality     int    // JPEG quality, 1..100
	Compression string // PNG compression level
	Colors      int    // GIF palette size, 1..256
}

func NewFormatter(suffix string) (rf *Format) {
	flagSet := pflag.NewFlagSet(suffix, pflag.ContinueOnError)
	flagSet.SetInterspersed(false)

	rf = &Format{
		FlagSet: flagSet,
		Suffix:  suffix,
	}

	switch suffix {
	case ".jpg", ".jpeg":
		rf.IntVarP(&rf.Quality, "quality", "q", defaultJpegQuality, "JPEG quality (1-100)")
	case ".png":
		rf.StringVarP(&rf.Compression, "compression", "c", "default", "PNG compression: default, none, speed, best")
	case ".gif":
		rf.IntVarP(&rf.Colors, "colors", "c", defaultGifColors, "GIF palette size (1-256)")
	}

	return
}

func (rf *Format) Decode(reader autoclip.Reader, filesize int64) (img image.Image, err error) {
	header := readHeader(reader, 32)

	switch rf.Suffix {
	case ".png":
		img, err = png.Decode(reader)
		if err == nil {
			img = &decoded{Image: img, alpha: pngAlpha(header, img)}
		}
	case ".jpg", ".jpeg":
		img, err = jpeg.Decode(reader)
	case ".gif":
		img, err = gif.Decode(reader)
	case ".bmp":
		img, err = bmp.Decode(reader)
		if err == nil {
			img = &decoded{Image: img, alpha: bmpAlpha(header)}
		}
	case ".tga":
		img, err = tga.Decode(reader)
		if err == nil {
			img = &decoded{Image: img, alpha: tgaAlpha(header)}
		}
	default:
		err = fmt.Errorf("%s: unsupported raster format", rf.Suffix)
	}

	return
}

func (rf *Format) Encode(writer autoclip.Writer, bm *autoclip.Bitmap) (err error) {
	err = bm.Validate()
	if err != nil {
		return
	}

	switch rf.Suffix {
	case ".png":
		level, found := pngCompression[rf.Compression]
		if !found {
			err = fmt.Errorf("png: invalid --compression=%v", rf.Compression)
			return
		}
		encoder := &png.Encoder{CompressionLevel: level}
		err = encoder.Encode(writer, bm)
	case ".jpg", ".jpeg":
		if rf.Quality < 1 || rf.Quality > 100 {
			err = fmt.Errorf("jpeg: invalid --quality=%v", rf.Quality)
			return
		}
		err = jpeg.Encode(writer, bm, &jpeg.Options{Quality: rf.Quality})
	case ".gif":
		if rf.Colors < 1 || rf.Colors > 256 {
			err = fmt.Errorf("gif: invalid --colors=%v", rf.Colors)
			return
		}
		err = gif.Encode(writer, bm, &gif.Options{NumColors: rf.Colors})
	case ".bmp":
		err = bmp.Encode(writer, bm)
	case ".tga":
		err = tga.Encode(writer, bm)
	default:
		err = fmt.Errorf("%s: unsupported raster format", rf.Suffix)
	}

	return
}
