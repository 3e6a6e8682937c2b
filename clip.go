//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

package autoclip

import (
	"errors"
	"math"
	"runtime"
	"sync"
)

var (
	ErrMissingBackgroundColor = errors.New("image has no alpha channel, and no background color was given")
	ErrInvalidParams          = errors.New("clip: invalid parameters")
)

// Params selects how isolated pixels are detected and replaced
type Params struct {
	Radius          float64 // Neighbourhood radius, in pixels
	MinNeighbors    int     // Minimum qualifying neighbours to keep a pixel
	UseAlphaChannel bool    // Qualify neighbours by alpha, instead of by colour
	Background      Pixel   // Replacement colour (and comparison colour)

	Workers  int        // Concurrent row bands; 0 for one per CPU
	Progress Progressor // Row completion display; nil for none
}

// NewParams selects the clip mode.
//
// When the image has an alpha channel and no background colour text is given,
// neighbours qualify by non-zero alpha and clipped pixels become Transparent.
// Otherwise the background colour must be given, and neighbours qualify by
// differing from it.
func NewParams(hasAlpha bool, background string, radius float64, minNeighbors int) (params Params, err error) {
	params = Params{
		Radius:       radius,
		MinNeighbors: minNeighbors,
	}

	if hasAlpha && len(background) == 0 {
		params.UseAlphaChannel = true
		params.Background = Transparent
	} else {
		if len(background) == 0 {
			err = ErrMissingBackgroundColor
			return
		}

		params.Background, err = ParseColor(background)
		if err != nil {
			return
		}
	}

	err = params.Validate()

	return
}

// Validate checks the numeric parameters
func (params *Params) Validate() (err error) {
	if !(params.Radius >= 0) || math.IsInf(params.Radius, 0) || params.MinNeighbors < 0 {
		err = ErrInvalidParams
	}

	return
}

func (params *Params) qualifies(p Pixel) bool {
	if params.UseAlphaChannel {
		return p.A() != 0
	}
	return p != params.Background
}

type offset struct {
	dx, dy int
}

// neighborhood lists the offsets of the bounding box [-r,r]x[-r,r] that fall
// within the circle of the given radius, excluding the centre. Offsets
// further than 'limit' on either axis can never land inside the image.
func neighborhood(radius float64, limit int) (r int, offsets []offset) {
	if radius >= float64(limit) {
		r = limit
	} else {
		r = int(math.Round(radius))
	}

	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			distance := math.Sqrt(float64(dx*dx) + float64(dy*dy))
			if distance > radius {
				continue
			}
			offsets = append(offsets, offset{dx: dx, dy: dy})
		}
	}

	return
}

// Clip replaces every non-transparent pixel that has fewer than
// params.MinNeighbors qualifying neighbours within params.Radius by
// params.Background. The input is never modified.
func Clip(in *Bitmap, params Params) (out *Bitmap, err error) {
	err = in.Validate()
	if err != nil {
		return
	}

	err = params.Validate()
	if err != nil {
		return
	}

	out = &Bitmap{
		Width:  in.Width,
		Height: in.Height,
		Pix:    make([]Pixel, len(in.Pix)),
	}

	height := int(in.Height)

	limit := int(in.Width) - 1
	if height-1 > limit {
		limit = height - 1
	}

	_, offsets := neighborhood(params.Radius, limit)

	workers := params.Workers
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	if workers > height {
		workers = height
	}

	prog := NewProgress(params.Progress, "clip", height)
	defer prog.Close()

	var wg sync.WaitGroup
	rowsPerWorker := (height + workers - 1) / workers

	for worker := 0; worker < workers; worker++ {
		startY := worker * rowsPerWorker
		endY := startY + rowsPerWorker
		if endY > height {
			endY = height
		}
		if startY >= endY {
			continue
		}

		wg.Add(1)
		go func(startY, endY int) {
			defer wg.Done()
			for y := startY; y < endY; y++ {
				clipRow(out, in, &params, offsets, y)
				prog.Indicate()
			}
		}(startY, endY)
	}

	wg.Wait()

	return
}

func clipRow(out *Bitmap, in *Bitmap, params *Params, offsets []offset, y int) {
	width := int(in.Width)
	height := int(in.Height)

	n := y * width
	for x := 0; x < width; x++ {
		color := in.Pix[n+x]

		// Fully transparent pixels are never altered
		if color.A() == 0 {
			out.Pix[n+x] = color
			continue
		}

		count := 0
		for _, off := range offsets {
			nx := x + off.dx
			ny := y + off.dy
			if nx < 0 || ny < 0 || nx >= width || ny >= height {
				continue
			}
			if params.qualifies(in.Pix[ny*width+nx]) {
				count++
				if count >= params.MinNeighbors {
					break
				}
			}
		}

		if count < params.MinNeighbors {
			out.Pix[n+x] = params.Background
		} else {
			out.Pix[n+x] = color
		}
	}
}
