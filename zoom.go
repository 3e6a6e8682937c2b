//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

package autoclip

// FitZoom is the zoom factor that fits a width x height image into the
// available area. The axis that overflows the most (or underflows the
// least) decides; an image that already fits vertically is shown 1:1.
func FitZoom(width, height, availWidth, availHeight int) (zoom float64) {
	switch {
	case width <= 0 || height <= 0:
		zoom = 1.0
	case width-availWidth > height-availHeight:
		zoom = float64(availWidth) / float64(width)
	case height > availHeight:
		zoom = float64(availHeight) / float64(height)
	default:
		zoom = 1.0
	}

	return
}
