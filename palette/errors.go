// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package palette

import "cogentcore.org/harmony/base/errors"

var (
	// ErrInvalidArgument is returned by setters given a value
	// outside of their accepted range or set.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidState is returned by render when the palette is
	// configured with a scheme that no algorithm handles.
	ErrInvalidState = errors.New("invalid state")
)
