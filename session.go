//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

package autoclip

import (
	"image"
)

const (
	defaultClipCache = 8
)

// Session is the state of one loaded image: the original pixels, the
// currently displayed pixels, and whether the source format had alpha.
//
// Session values are never modified after creation; operations return a new
// Session sharing the same original.
type Session struct {
	original *Bitmap
	current  *Bitmap
	hasAlpha bool

	cache *clipCache
}

// NewSession repacks a decoded image as the original of a new session
func NewSession(img image.Image) (session *Session, err error) {
	original, err := FromImage(img)
	if err != nil {
		return
	}

	session = NewSessionFromBitmap(original, HasAlphaChannel(img))

	return
}

// NewSessionFromBitmap takes ownership of 'original'
func NewSessionFromBitmap(original *Bitmap, hasAlpha bool) (session *Session) {
	session = &Session{
		original: original,
		current:  original,
		hasAlpha: hasAlpha,
		cache:    newClipCache(defaultClipCache),
	}

	return
}

// Original is the bitmap as loaded; callers must not modify it
func (session *Session) Original() *Bitmap {
	return session.original
}

// Current is the bitmap after the most recent clip or reset; callers must
// not modify it
func (session *Session) Current() *Bitmap {
	return session.current
}

// HasAlphaChannel reports whether the source image format carried alpha
func (session *Session) HasAlphaChannel() bool {
	return session.hasAlpha
}

// Params selects the clip mode for this session's image
func (session *Session) Params(background string, radius float64, minNeighbors int) (params Params, err error) {
	params, err = NewParams(session.hasAlpha, background, radius, minNeighbors)
	return
}

func (session *Session) withCurrent(current *Bitmap) (out *Session) {
	out = &Session{
		original: session.original,
		current:  current,
		hasAlpha: session.hasAlpha,
		cache:    session.cache,
	}
	return
}

// Clip filters the original bitmap. Repeated clips are not cumulative.
func (session *Session) Clip(params Params) (out *Session, err error) {
	current, err := session.cache.Clip(session.original, params)
	if err != nil {
		return
	}

	out = session.withCurrent(current)

	return
}

// ClipCurrent filters the current bitmap, for multiple passes
func (session *Session) ClipCurrent(params Params) (out *Session, err error) {
	current, err := Clip(session.current, params)
	if err != nil {
		return
	}

	out = session.withCurrent(current)

	return
}

// Reset restores the current bitmap to a copy of the original
func (session *Session) Reset() (out *Session) {
	out = session.withCurrent(session.original.Clone())
	return
}

// Modified reports whether the current bitmap differs from the original
func (session *Session) Modified() bool {
	if session.current == session.original {
		return false
	}

	for n, p := range session.current.Pix {
		if session.original.Pix[n] != p {
			return true
		}
	}

	return false
}
