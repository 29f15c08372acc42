// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package palette

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// suggestThreshold is the minimum similarity for a known
// name to be offered as a suggestion for an unknown one.
const suggestThreshold = 0.5

// parseName returns the index of name in names, or an
// [ErrInvalidArgument] error naming the closest known name.
func parseName(kind, name string, names []string) (int, error) {
	for i, n := range names {
		if n == name {
			return i, nil
		}
	}
	err := fmt.Errorf("%q is not a valid %s name: %w", name, kind, ErrInvalidArgument)
	if s := suggest(name, names); s != "" {
		err = fmt.Errorf("%q is not a valid %s name (did you mean %q?): %w", name, kind, s, ErrInvalidArgument)
	}
	return -1, err
}

// suggest returns the name most similar to s, or "" if
// none is similar enough.
func suggest(s string, names []string) string {
	lev := metrics.NewLevenshtein()
	lev.CaseSensitive = false
	best, bestSim := "", 0.0
	for _, n := range names {
		if sim := strutil.Similarity(s, n, lev); sim >= suggestThreshold && sim > bestSim {
			best, bestSim = n, sim
		}
	}
	return best
}

// title converts a lowerCamel name into space separated title case.
func title(name string) string {
	var b strings.Builder
	for i, r := range name {
		if i > 0 && unicode.IsUpper(r) {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return cases.Title(language.English).String(b.String())
}
