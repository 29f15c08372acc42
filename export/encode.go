// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package export

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// WriteText writes one line per color, with its four
// variations separated by spaces.
func WriteText(w io.Writer, d *Document) error {
	bw := bufio.NewWriter(w)
	for _, g := range d.Colors {
		bw.WriteString(strings.Join(g, " "))
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// WriteJSON writes the document as indented JSON.
func WriteJSON(w io.Writer, d *Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "\t")
	return enc.Encode(d)
}

// WriteYAML writes the document as YAML.
func WriteYAML(w io.Writer, d *Document) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(d); err != nil {
		return err
	}
	return enc.Close()
}

// WriteTOML writes the document as TOML.
func WriteTOML(w io.Writer, d *Document) error {
	return toml.NewEncoder(w).Encode(d)
}

// Read reads a document written by [WriteJSON], [WriteYAML]
// or [WriteTOML] in the given format.
func Read(r io.Reader, f Formats) (*Document, error) {
	d := &Document{}
	var err error
	switch f {
	case JSON:
		err = json.NewDecoder(r).Decode(d)
	case YAML:
		err = yaml.NewDecoder(r).Decode(d)
	case TOML:
		err = toml.NewDecoder(r).Decode(d)
	default:
		return nil, fmt.Errorf("export: cannot read format %v", f)
	}
	if err != nil {
		return nil, err
	}
	return d, nil
}
