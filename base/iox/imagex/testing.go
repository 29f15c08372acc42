// Copyright 2023 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagex

import (
	"errors"
	"image"
	"image/color"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/anthonynsimon/bild/clone"
)

// TestingT is an interface wrapper around *testing.T
type TestingT interface {
	Errorf(format string, args ...any)
}

// UpdateTestImages indicates whether to update currently saved test
// images in [Assert] instead of comparing against them.
// It is set if the environment variable "HARMONY_UPDATE_TESTDATA"
// is "true". It should only be set when behavior has been updated
// that causes test images to change.
var UpdateTestImages = os.Getenv("HARMONY_UPDATE_TESTDATA") == "true"

// CompareUint8 returns whether two numbers are within tol of each other.
func CompareUint8(cc, ic uint8, tol int) bool {
	d := int(cc) - int(ic)
	return d >= -tol && d <= tol
}

// CompareColors returns whether every channel of two
// colors is within tol of each other.
func CompareColors(cc, ic color.RGBA, tol int) bool {
	return CompareUint8(cc.R, ic.R, tol) &&
		CompareUint8(cc.G, ic.G, tol) &&
		CompareUint8(cc.B, ic.B, tol) &&
		CompareUint8(cc.A, ic.A, tol)
}

func absDiff(a, b uint8) uint8 {
	if a > b {
		return a - b
	}
	return b - a
}

// DiffImage returns the difference between two images,
// with pixels having the abs of the difference between pixels.
func DiffImage(a, b image.Image) image.Image {
	ra, rb := clone.AsRGBA(a), clone.AsRGBA(b)
	ab := ra.Bounds()
	di := image.NewRGBA(ab)
	for y := ab.Min.Y; y < ab.Max.Y; y++ {
		for x := ab.Min.X; x < ab.Max.X; x++ {
			cc := ra.RGBAAt(x, y)
			ic := rb.RGBAAt(x, y)
			di.SetRGBA(x, y, color.RGBA{absDiff(cc.R, ic.R), absDiff(cc.G, ic.G), absDiff(cc.B, ic.B), 255})
		}
	}
	return di
}

// Assert asserts that the given image is equivalent
// to the image stored at the given filename in the testdata directory,
// with ".png" added to the filename if there is no extension
// (eg: "swatch" becomes "testdata/swatch.png").
// If it is not, it fails the test with an error, but continues its
// execution, saving the image as a .fail file and the difference as a
// .diff file next to it. If there is no image at the given filename in
// the testdata directory, it creates the image.
func Assert(t TestingT, img image.Image, filename string) {
	filename = filepath.Join("testdata", filename)
	if filepath.Ext(filename) == "" {
		filename += ".png"
	}

	err := os.MkdirAll(filepath.Dir(filename), 0750)
	if err != nil {
		t.Errorf("error making testdata directory: %v", err)
	}

	ext := filepath.Ext(filename)
	failFilename := strings.TrimSuffix(filename, ext) + ".fail" + ext
	diffFilename := strings.TrimSuffix(filename, ext) + ".diff" + ext

	if UpdateTestImages {
		err := Save(img, filename)
		if err != nil {
			t.Errorf("imagex.Assert: error saving updated image: %v", err)
		}
		os.RemoveAll(failFilename)
		os.RemoveAll(diffFilename)
		return
	}

	fimg, _, err := Open(filename)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("imagex.Assert: error opening saved image: %v", err)
			return
		}
		// we don't have the file yet, so we make it
		err := Save(img, filename)
		if err != nil {
			t.Errorf("imagex.Assert: error saving new image: %v", err)
		}
		return
	}

	failed := false
	ibounds := img.Bounds()
	fbounds := fimg.Bounds()
	if ibounds != fbounds {
		t.Errorf("imagex.Assert: expected bounds %v for image for %s, but got bounds %v; see %s", fbounds, filename, ibounds, failFilename)
		failed = true
	} else {
		ri, rf := clone.AsRGBA(img), clone.AsRGBA(fimg)
	rows:
		for y := ibounds.Min.Y; y < ibounds.Max.Y; y++ {
			for x := ibounds.Min.X; x < ibounds.Max.X; x++ {
				cc, ic := ri.RGBAAt(x, y), rf.RGBAAt(x, y)
				if !CompareColors(cc, ic, 1) {
					t.Errorf("imagex.Assert: image for %s is not the same as expected; see %s; expected color %v at (%d, %d), but got %v", filename, failFilename, ic, x, y, cc)
					failed = true
					break rows
				}
			}
		}
	}

	if failed {
		if err := Save(img, failFilename); err != nil {
			t.Errorf("imagex.Assert: error saving fail image: %v", err)
		}
		if err := Save(DiffImage(img, fimg), diffFilename); err != nil {
			t.Errorf("imagex.Assert: error saving diff image: %v", err)
		}
		return
	}
	os.RemoveAll(failFilename)
	os.RemoveAll(diffFilename)
}
