//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

package argb

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"image"
	"io"

	"github.com/go-restruct/restruct"
	"github.com/klauspost/compress/zstd"
	"github.com/spf13/pflag"

	"github.com/ezrec/autoclip"
)

const (
	defaultHeaderMagic = uint32(0x504c4341) // 'ACLP'
	defaultVersion     = uint16(1)
	defaultLevel       = "default"

	flagAlphaChannel = uint16(1 << 0)
)

var (
	ErrHeaderMagic   = errors.New("argb: invalid header magic")
	ErrVersion       = errors.New("argb: unsupported version")
	ErrPayloadLength = errors.New("argb: payload length does not match dimensions")
)

type argbHeader struct {
	Magic       uint32    // 00: 'ACLP'
	Version     uint16    // 04:
	Flags       uint16    // 06: Bit 0 = alpha channel
	Width       int32     // 08:
	Height      int32     // 0c:
	PayloadSize uint32    // 10: Compressed payload, in bytes
	_           [3]uint32 // 14:
}

// ARGB is a decoded bitmap, and the alpha channel flag of its source
type ARGB struct {
	*autoclip.Bitmap
	alpha bool
}

func (a *ARGB) HasAlphaChannel() bool {
	return a.alpha
}

type Format struct {
	*pflag.FlagSet

	Level string // zstd encoder level
	Alpha bool   // Record the bitmap as having an alpha channel
}

func NewFormatter(suffix string) (af *Format) {
	flagSet := pflag.NewFlagSet(suffix, pflag.ContinueOnError)
	flagSet.SetInterspersed(false)

	af = &Format{
		FlagSet: flagSet,
	}

	af.StringVarP(&af.Level, "level", "l", defaultLevel, "zstd level: fastest, default, better, best")
	af.BoolVarP(&af.Alpha, "alpha", "a", true, "Mark the bitmap as having an alpha channel")

	return
}

func (af *Format) Encode(writer autoclip.Writer, bm *autoclip.Bitmap) (err error) {
	err = bm.Validate()
	if err != nil {
		return
	}

	ok, level := zstd.EncoderLevelFromString(af.Level)
	if !ok {
		err = fmt.Errorf("argb: invalid --level=%v", af.Level)
		return
	}

	raw := make([]byte, len(bm.Pix)*4)
	for n, p := range bm.Pix {
		binary.LittleEndian.PutUint32(raw[n*4:], uint32(p))
	}

	payload := &bytes.Buffer{}
	enc, err := zstd.NewWriter(payload, zstd.WithEncoderLevel(level))
	if err != nil {
		return
	}
	_, err = enc.Write(raw)
	if err != nil {
		enc.Close()
		return
	}
	err = enc.Close()
	if err != nil {
		return
	}

	header := argbHeader{
		Magic:       defaultHeaderMagic,
		Version:     defaultVersion,
		Width:       bm.Width,
		Height:      bm.Height,
		PayloadSize: uint32(payload.Len()),
	}
	if af.Alpha {
		header.Flags |= flagAlphaChannel
	}

	data, err := restruct.Pack(binary.LittleEndian, &header)
	if err != nil {
		return
	}

	_, err = writer.Write(data)
	if err != nil {
		return
	}

	_, err = writer.Write(payload.Bytes())

	return
}

func (af *Format) Decode(reader autoclip.Reader, filesize int64) (img image.Image, err error) {
	var header argbHeader

	headerSize, err := restruct.SizeOf(&header)
	if err != nil {
		return
	}

	data := make([]byte, headerSize)
	_, err = io.ReadFull(reader, data)
	if err != nil {
		err = fmt.Errorf("argb: header: %w", err)
		return
	}

	err = restruct.Unpack(data, binary.LittleEndian, &header)
	if err != nil {
		return
	}

	if header.Magic != defaultHeaderMagic {
		err = ErrHeaderMagic
		return
	}

	if header.Version != defaultVersion {
		err = ErrVersion
		return
	}

	if filesize > 0 && int64(headerSize)+int64(header.PayloadSize) != filesize {
		err = ErrPayloadLength
		return
	}

	bm, err := autoclip.NewBitmap(int(header.Width), int(header.Height))
	if err != nil {
		return
	}

	dec, err := zstd.NewReader(io.LimitReader(reader, int64(header.PayloadSize)))
	if err != nil {
		return
	}
	defer dec.Close()

	raw, err := io.ReadAll(dec)
	if err != nil {
		err = fmt.Errorf("argb: payload: %w", err)
		return
	}

	if len(raw) != len(bm.Pix)*4 {
		err = ErrPayloadLength
		return
	}

	for n := range bm.Pix {
		bm.Pix[n] = autoclip.Pixel(binary.LittleEndian.Uint32(raw[n*4:]))
	}

	img = &ARGB{
		Bitmap: bm,
		alpha:  (header.Flags & flagAlphaChannel) != 0,
	}

	return
}
