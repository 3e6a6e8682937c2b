//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

package autoclip

import (
	"fmt"
	"image"
	"io"
	"os"
	"sort"
	"strings"
)

// Reader needs io.ReaderAt for formats that seek
type Reader interface {
	io.Reader
	io.ReaderAt
}

// Writer
type Writer interface {
	io.Writer
}

// Image file format
type Formatter interface {
	Parse(args []string) (err error)
	Parsed() bool
	Args() (args []string)
	NArg() int
	PrintDefaults()

	Decode(reader Reader, size int64) (img image.Image, err error)
	Encode(writer Writer, bm *Bitmap) (err error)
}

// NewFormatter creates a Formatter for a file suffix
type NewFormatter func(suffix string) (formatter Formatter)

var formatterMap map[string]NewFormatter

// RegisterFormatter binds a (lower case) file suffix to a formatter
func RegisterFormatter(suffix string, newFormatter NewFormatter) {
	if formatterMap == nil {
		formatterMap = make(map[string]NewFormatter)
	}

	formatterMap[strings.ToLower(suffix)] = newFormatter
}

// FormatterSuffixes lists the registered suffixes, sorted
func FormatterSuffixes() (list []string) {
	for suffix := range formatterMap {
		list = append(list, suffix)
	}
	sort.Strings(list)

	return
}

// FormatterUsage prints the options of every registered format
func FormatterUsage() {
	for _, suffix := range FormatterSuffixes() {
		newFormatter := formatterMap[suffix]
		fmt.Fprintln(os.Stderr)
		fmt.Fprintf(os.Stderr, "Options for '%s':\n", suffix)
		fmt.Fprintln(os.Stderr)
		newFormatter(suffix).PrintDefaults()
	}
}

// Format is a file bound to its formatter
type Format struct {
	Formatter
	Suffix   string
	Filename string
}

// lookupFormatter finds the longest registered suffix of filename
func lookupFormatter(filename string) (suffix string, newFormatter NewFormatter) {
	lower := strings.ToLower(filename)

	for candidate, nf := range formatterMap {
		if strings.HasSuffix(lower, candidate) && len(candidate) > len(suffix) {
			suffix = candidate
			newFormatter = nf
		}
	}

	return
}

// NewFormat selects the format of filename, and parses its options
func NewFormat(filename string, args []string) (format *Format, err error) {
	suffix, newFormatter := lookupFormatter(filename)
	if newFormatter == nil {
		err = fmt.Errorf("%s: File extension unknown", filename)
		return
	}

	formatter := newFormatter(suffix)

	err = formatter.Parse(args)
	if err != nil {
		return
	}

	format = &Format{
		Formatter: formatter,
		Suffix:    suffix,
		Filename:  filename,
	}
	return
}

// Image decodes the file
func (format *Format) Image() (img image.Image, err error) {
	var reader *os.File
	var filesize int64

	if format.Suffix != "empty" {
		reader, err = os.Open(format.Filename)
		if err != nil {
			return
		}
		defer func() { reader.Close() }()

		filesize, err = reader.Seek(0, io.SeekEnd)
		if err != nil {
			return
		}

		_, err = reader.Seek(0, io.SeekStart)
		if err != nil {
			return
		}
	}

	img, err = format.Decode(reader, filesize)
	if err != nil {
		err = fmt.Errorf("%s: %w", format.Filename, err)
		return
	}

	return
}

// Session decodes the file into a new session
func (format *Format) Session() (session *Session, err error) {
	img, err := format.Image()
	if err != nil {
		return
	}

	session, err = NewSession(img)
	if err != nil {
		err = fmt.Errorf("%s: %w", format.Filename, err)
		return
	}

	return
}

// SetBitmap writes a bitmap to the file
func (format *Format) SetBitmap(bm *Bitmap) (err error) {
	var writer *os.File

	if format.Suffix != "empty" {
		writer, err = os.Create(format.Filename)
		if err != nil {
			return
		}
		defer func() {
			closeErr := writer.Close()
			if err == nil {
				err = closeErr
			}
		}()
	}

	err = format.Encode(writer, bm)
	if err != nil {
		err = fmt.Errorf("%s: %w", format.Filename, err)
		return
	}

	return
}
