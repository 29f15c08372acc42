// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package randx provides a small random source interface
// and helpers for drawing random hues and seeds.
package randx

import "math/rand"

// Rand is the random source of new palette colors. It is satisfied
// by [*rand.Rand] and by [SysRand], so that tests can supply a
// seeded source while everything else uses the global one.
type Rand interface {

	// Intn returns, as an int, a non-negative pseudo-random number in the half-open interval [0,n).
	// It panics if n <= 0.
	Intn(n int) int
}

// SysRand is a [Rand] backed by its own seeded source,
// or by the global source if that is nil.
type SysRand struct {

	// if non-nil, use this random number source instead of the global default one
	Rand *rand.Rand
}

// NewGlobalRand returns a new SysRand drawing from the global source.
func NewGlobalRand() *SysRand {
	return &SysRand{}
}

// NewSysRand returns a new SysRand with its own source
// initialized with the given seed.
func NewSysRand(seed int64) *SysRand {
	return &SysRand{Rand: rand.New(rand.NewSource(seed))}
}

// Intn returns, as an int, a non-negative pseudo-random number in the half-open interval [0,n).
// It panics if n <= 0.
func (r *SysRand) Intn(n int) int {
	if r.Rand == nil {
		return rand.Intn(n)
	}
	return r.Rand.Intn(n)
}
