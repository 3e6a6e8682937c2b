//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

package main

import (
	"fmt"
	"os"

	"github.com/ezrec/autoclip"
	_ "github.com/ezrec/autoclip/argb"
	_ "github.com/ezrec/autoclip/raster"
	_ "github.com/ezrec/autoclip/webp"

	"github.com/faiface/pixel"
	"github.com/faiface/pixel/pixelgl"

	"github.com/spf13/pflag"

	"golang.org/x/image/colornames"
)

const (
	windowWidth  = 1024
	windowHeight = 768
)

var param struct {
	radius       float64
	minNeighbors int
	background   string
	workers      int
}

func init() {
	pflag.Float64VarP(&param.radius, "radius", "r", 1.5, "Neighbourhood radius, in pixels")
	pflag.IntVarP(&param.minNeighbors, "min-neighbors", "n", 1, "Minimum neighbours for a pixel to be kept")
	pflag.StringVarP(&param.background, "background", "b", "", "Background color; required without an alpha channel")
	pflag.IntVarP(&param.workers, "workers", "w", 0, "Concurrent workers (0 for one per CPU)")
	pflag.CommandLine.SetInterspersed(false)
}

type viewer struct {
	win      *pixelgl.Window
	filename string
	session  *autoclip.Session
	original bool
	zoom     float64
	sprite   *pixel.Sprite
}

func (v *viewer) refresh() {
	bm := v.session.Current()
	state := "current"
	if v.original {
		bm = v.session.Original()
		state = "original"
	}

	pic := pixel.PictureDataFromImage(bm)
	v.sprite = pixel.NewSprite(pic, pic.Bounds())

	modified := ""
	if v.session.Modified() {
		modified = " (modified)"
	}
	v.win.SetTitle(fmt.Sprintf("%s [%s]%s", v.filename, state, modified))
}

func (v *viewer) fit() {
	bm := v.session.Current()
	bounds := v.win.Bounds()
	v.zoom = autoclip.FitZoom(int(bm.Width), int(bm.Height), int(bounds.W()), int(bounds.H()))
}

func (v *viewer) clip() {
	params, err := v.session.Params(param.background, param.radius, param.minNeighbors)
	if err != nil {
		fmt.Fprintf(os.Stderr, "clip: %v\n", err)
		return
	}
	params.Workers = param.workers

	session, err := v.session.Clip(params)
	if err != nil {
		fmt.Fprintf(os.Stderr, "clip: %v\n", err)
		return
	}

	v.session = session
	v.original = false
	v.fit()
	v.refresh()
}

func (v *viewer) run() {
	for !v.win.Closed() {
		switch {
		case v.win.JustPressed(pixelgl.KeyEscape):
			v.win.SetClosed(true)
		case v.win.JustPressed(pixelgl.KeyC):
			v.clip()
		case v.win.JustPressed(pixelgl.KeyR):
			v.session = v.session.Reset()
			v.original = false
			v.fit()
			v.refresh()
		case v.win.JustPressed(pixelgl.KeyF):
			v.fit()
		case v.win.JustPressed(pixelgl.KeyZ):
			v.zoom = 1.0
		case v.win.JustPressed(pixelgl.KeySpace):
			v.original = !v.original
			v.refresh()
		}

		mat := pixel.IM
		mat = mat.Scaled(pixel.ZV, v.zoom)
		mat = mat.Moved(v.win.Bounds().Center())

		v.win.Clear(colornames.Wheat)
		v.sprite.Draw(v.win, mat)
		v.win.Update()
	}
}

func view(filename string, session *autoclip.Session) {
	cfg := pixelgl.WindowConfig{
		Title:     filename,
		Bounds:    pixel.R(0, 0, windowWidth, windowHeight),
		Resizable: true,
		VSync:     true,
	}

	win, err := pixelgl.NewWindow(cfg)
	if err != nil {
		panic(err)
	}

	// Enable smoothing
	win.SetSmooth(true)

	v := &viewer{
		win:      win,
		filename: filename,
		session:  session,
	}

	v.fit()
	v.refresh()
	v.run()
}

func main() {
	pflag.Parse()

	args := pflag.Args()
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "Usage: view [options] INFILE [fmt-options]")
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "Keys: C clip, R reset, F fit to window, Z zoom 1:1, Space original/current, Esc quit")
		fmt.Fprintln(os.Stderr)
		pflag.PrintDefaults()
		os.Exit(1)
	}

	format, err := autoclip.NewFormat(args[0], args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "view: %v\n", err)
		os.Exit(1)
	}

	session, err := format.Session()
	if err != nil {
		fmt.Fprintf(os.Stderr, "view: %v\n", err)
		os.Exit(1)
	}

	pixelgl.Run(func() { view(format.Filename, session) })
}
