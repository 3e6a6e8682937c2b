//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

package autoclip

import (
	"errors"
	"image"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
)

// testFormat stores bitmaps in memory, keyed by suffix
type testFormat struct {
	*pflag.FlagSet
	suffix string
}

var testStore = map[string]*Bitmap{}

func newTestFormat(suffix string) Formatter {
	tf := &testFormat{
		FlagSet: pflag.NewFlagSet(suffix, pflag.ContinueOnError),
		suffix:  suffix,
	}
	tf.SetInterspersed(false)
	return tf
}

func (tf *testFormat) Decode(reader Reader, size int64) (img image.Image, err error) {
	bm, ok := testStore[tf.suffix]
	if !ok {
		err = errors.New("nothing stored")
		return
	}
	img = bm
	return
}

func (tf *testFormat) Encode(writer Writer, bm *Bitmap) (err error) {
	testStore[tf.suffix] = bm.Clone()
	_, err = writer.Write([]byte(tf.suffix))
	return
}

func TestFormatLookup(t *testing.T) {
	RegisterFormatter(".test", newTestFormat)
	RegisterFormatter(".other.TEST", newTestFormat)

	table := map[string]struct {
		suffix string
		err    bool
	}{
		"image.test":       {".test", false},
		"IMAGE.TEST":       {".test", false},
		"image.other.test": {".other.test", false},
		"image.unknown":    {"", true},
	}

	for filename, item := range table {
		format, err := NewFormat(filename, []string{"extra"})
		if item.err {
			if err == nil {
				t.Errorf("%v: expected an error", filename)
			}
			continue
		}
		if err != nil {
			t.Errorf("%v: expected no error, got %v", filename, err)
			continue
		}
		if format.Suffix != item.suffix {
			t.Errorf("%v: expected suffix %v, got %v", filename, item.suffix, format.Suffix)
		}
		if format.NArg() != 1 || format.Args()[0] != "extra" {
			t.Errorf("%v: expected remaining args [extra], got %v", filename, format.Args())
		}
	}

	found := false
	for _, suffix := range FormatterSuffixes() {
		if suffix == ".other.test" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected suffixes to be lower case, got %v", FormatterSuffixes())
	}
}

func TestFormatFiles(t *testing.T) {
	RegisterFormatter(".test", newTestFormat)

	filename := filepath.Join(t.TempDir(), "out.test")

	format, err := NewFormat(filename, []string{})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	bm, _ := NewBitmap(2, 1)
	bm.Pix[1] = 0xff00ff00

	err = format.SetBitmap(bm)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	data, err := os.ReadFile(filename)
	if err != nil || string(data) != ".test" {
		t.Fatalf("expected the file to be written, got %q, %v", data, err)
	}

	session, err := format.Session()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	expectBitmap(t, "session", bm, session.Original())

	missing, _ := NewFormat(filepath.Join(t.TempDir(), "missing.test"), []string{})
	_, err = missing.Session()
	if !os.IsNotExist(errors.Unwrap(err)) && !os.IsNotExist(err) {
		t.Errorf("expected a missing file error, got %v", err)
	}
}
