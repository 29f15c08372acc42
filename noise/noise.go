// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package noise provides deterministic pseudo-random functions:
// an order-sensitive integer hash and a coherent 2D value noise.
// Both are pure functions of their arguments.
package noise

import (
	"math"
	"strconv"

	"github.com/cespare/xxhash"
	"github.com/chewxy/math32"
)

// Hash returns a 32 bit hash of the seed and the two integers a and b.
// It is order-sensitive: Hash(s, a, b) and Hash(s, b, a) generally differ.
// It is not suitable for cryptographic use.
func Hash(seed int64, a, b int) uint32 {
	buf := make([]byte, 0, 48)
	buf = strconv.AppendInt(buf, seed, 10)
	buf = append(buf, ':')
	buf = strconv.AppendInt(buf, int64(a), 10)
	buf = append(buf, ':')
	buf = strconv.AppendInt(buf, int64(b), 10)
	return uint32(xxhash.Sum64(buf))
}

// lattice returns the pseudo-random value in [-1, 1]
// at the integer lattice point (ix, iy).
func lattice(ix, iy int, seed int64) float32 {
	return float32(Hash(seed, ix, iy))/math.MaxUint32*2 - 1
}

// Value2D returns coherent 2D value noise at (x, y) for the given seed,
// in [-1, 1]. It bilinearly interpolates pseudo-random values placed on
// the integer lattice, so nearby points return nearby values.
func Value2D(x, y float32, seed int64) float32 {
	fx := math32.Floor(x)
	fy := math32.Floor(y)
	ix, iy := int(fx), int(fy)
	tx, ty := x-fx, y-fy

	v00 := lattice(ix, iy, seed)
	v10 := lattice(ix+1, iy, seed)
	v01 := lattice(ix, iy+1, seed)
	v11 := lattice(ix+1, iy+1, seed)

	top := v00 + (v10-v00)*tx
	bottom := v01 + (v11-v01)*tx
	return top + (bottom-top)*ty
}
