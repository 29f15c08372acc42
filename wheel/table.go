// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wheel

import (
	"math"

	"cogentcore.org/harmony/hsv"
)

// Step is the hue distance in degrees between two
// consecutive entries of the calibration [Table].
const Step = 15

// Entry is one calibration point on the color wheel.
type Entry struct {

	// Hue is the wheel angle of this entry in degrees.
	Hue int

	// R, G, B are the 0-255 channel values rendered at this hue.
	R, G, B int

	// Value is the brightness scale of this entry as a percentage.
	Value int

	// Saturation is the saturation scale of this entry as a percentage.
	// It is 100 for every entry of the classic wheel.
	Saturation int
}

// Table is the calibration wheel: 24 entries at 15 degree steps
// covering the full circle, in increasing hue order. It must not be modified.
var Table = [360 / Step]Entry{
	{0, 255, 0, 0, 100, 100},
	{15, 255, 51, 0, 100, 100},
	{30, 255, 102, 0, 100, 100},
	{45, 255, 128, 0, 100, 100},
	{60, 255, 153, 0, 100, 100},
	{75, 255, 178, 0, 100, 100},
	{90, 255, 204, 0, 100, 100},
	{105, 255, 229, 0, 100, 100},
	{120, 255, 255, 0, 100, 100},
	{135, 204, 255, 0, 100, 100},
	{150, 153, 255, 0, 100, 100},
	{165, 51, 255, 0, 100, 100},
	{180, 0, 204, 0, 80, 100},
	{195, 0, 178, 102, 70, 100},
	{210, 0, 153, 153, 60, 100},
	{225, 0, 102, 178, 70, 100},
	{240, 0, 51, 204, 80, 100},
	{255, 25, 25, 178, 70, 100},
	{270, 51, 0, 153, 60, 100},
	{285, 64, 0, 153, 60, 100},
	{300, 102, 0, 153, 60, 100},
	{315, 153, 0, 153, 60, 100},
	{330, 204, 0, 153, 80, 100},
	{345, 229, 0, 102, 90, 100},
}

// tableHues caches the HSV hue of each [Table] entry's own RGB value.
var tableHues = func() [len(Table)]float64 {
	var hs [len(Table)]float64
	for i, e := range Table {
		hs[i], _, _ = hsv.FromRGB(float64(e.R)/255, float64(e.G)/255, float64(e.B)/255)
	}
	return hs
}()

// Hues returns the HSV hue (0-360) of the RGB value of each [Table]
// entry, in table order. These are generally not equal to the
// entries' wheel angles, and are used to map an arbitrary RGB hue
// back onto the wheel.
func Hues() []float64 {
	hs := tableHues
	return hs[:]
}

// Lookup returns the [Table] entry at the given wheel angle. If no entry
// has exactly that angle, the entry with the smallest circular distance
// to it is returned, so Lookup always resolves.
func Lookup(angle float64) Entry {
	a := math.Mod(angle, 360)
	if a < 0 {
		a += 360
	}
	if a == math.Trunc(a) && int(a)%Step == 0 {
		return Table[int(a)/Step]
	}
	best := 0
	bestd := math.Inf(1)
	for i, e := range Table {
		d := math.Abs(a - float64(e.Hue))
		d = math.Min(d, 360-d)
		if d < bestd {
			best, bestd = i, d
		}
	}
	return Table[best]
}

// round rounds half up, toward positive infinity.
func round(x float64) float64 {
	return math.Floor(x + 0.5)
}

// lerp interpolates between the integers a and b by k,
// rounding the offset from a.
func lerp(a, b int, k float64) int {
	return a + int(round(float64(b-a)*k))
}
