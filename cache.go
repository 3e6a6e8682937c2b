//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

package autoclip

import (
	"sync"
)

// clipKey holds the parameters that affect a clip result
type clipKey struct {
	radius          float64
	minNeighbors    int
	useAlphaChannel bool
	background      Pixel
}

func newClipKey(params Params) clipKey {
	return clipKey{
		radius:          params.Radius,
		minNeighbors:    params.MinNeighbors,
		useAlphaChannel: params.UseAlphaChannel,
		background:      params.Background,
	}
}

// clipCache memoises clips of a single source bitmap
type clipCache struct {
	mutex      sync.Mutex
	cacheDepth int
	results    map[clipKey]*Bitmap
}

func newClipCache(cacheDepth int) (cc *clipCache) {
	cc = &clipCache{
		cacheDepth: cacheDepth,
		results:    make(map[clipKey]*Bitmap, cacheDepth),
	}
	return
}

// Clip returns a private copy of the clip of 'source' with 'params'
func (cc *clipCache) Clip(source *Bitmap, params Params) (out *Bitmap, err error) {
	key := newClipKey(params)

	cc.mutex.Lock()
	cached, found := cc.results[key]
	cc.mutex.Unlock()

	if found {
		out = cached.Clone()
		return
	}

	result, err := Clip(source, params)
	if err != nil {
		return
	}

	cc.mutex.Lock()
	if cc.cacheDepth > 0 {
		if len(cc.results) >= cc.cacheDepth {
			for key := range cc.results {
				delete(cc.results, key)
				break
			}
		}
		cc.results[key] = result
	}
	cc.mutex.Unlock()

	out = result.Clone()

	return
}

// Len is the number of cached results
func (cc *clipCache) Len() (count int) {
	cc.mutex.Lock()
	count = len(cc.results)
	cc.mutex.Unlock()
	return
}
