// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package randx

import (
	"time"
)

// TimeSeed returns a new seed based on the current time.
// Callers that need reproducible output across runs must
// supply their own seed instead.
func TimeSeed() int64 {
	return time.Now().UnixNano()
}

// Hue returns a random hue in whole degrees in [0, 360),
// drawn from the given source, or the global source if nil.
func Hue(rnd Rand) float64 {
	if rnd == nil {
		rnd = NewGlobalRand()
	}
	return float64(rnd.Intn(360))
}
