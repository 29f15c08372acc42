// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package palette_test

import (
	"fmt"

	"cogentcore.org/harmony/base/errors"
	"cogentcore.org/harmony/palette"
)

func ExamplePalette_RenderGrouped() {
	p := palette.New(2).FromHue(0)
	errors.Log(p.SetScheme(palette.Contrast))
	groups, err := p.RenderGrouped()
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, g := range groups {
		fmt.Println(g)
	}
	// Output:
	// [ff0000 b30000 ffbfbf ff8080]
	// [00cc00 008f00 bfffbf 80ff80]
}

func ExampleParseScheme() {
	_, err := palette.ParseScheme("tetrad")
	fmt.Println(errors.Is(err, palette.ErrInvalidArgument))
	s, _ := palette.ParseScheme("splitComplement")
	fmt.Println(s.Title())
	// Output:
	// true
	// Split Complement
}
