// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package export

import (
	"bytes"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cogentcore.org/harmony/base/iox/imagex"
	"cogentcore.org/harmony/palette"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func contrast(t *testing.T) *Document {
	t.Helper()
	p := palette.New(2).FromHue(0).SetSeed(5)
	require.NoError(t, p.SetScheme(palette.Contrast))
	d, err := NewDocument(p)
	require.NoError(t, err)
	return d
}

func TestNewDocument(t *testing.T) {
	d := contrast(t)
	assert.Equal(t, palette.Contrast, d.Scheme)
	assert.Equal(t, 0, d.Hue)
	assert.Equal(t, int64(5), d.Seed)
	assert.Equal(t, [][]string{
		{"ff0000", "b30000", "ffbfbf", "ff8080"},
		{"00cc00", "008f00", "bfffbf", "80ff80"},
	}, d.Colors)
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, contrast(t), Text, DefaultOptions()))
	assert.Equal(t, "ff0000 b30000 ffbfbf ff8080\n00cc00 008f00 bfffbf 80ff80\n", buf.String())
}

func TestEncodings(t *testing.T) {
	d := contrast(t)
	for _, f := range []Formats{JSON, YAML, TOML} {
		var buf bytes.Buffer
		require.NoError(t, Write(&buf, d, f, DefaultOptions()), f.String())
		assert.Contains(t, buf.String(), "contrast", f.String())
		got, err := Read(&buf, f)
		require.NoError(t, err, f.String())
		assert.Equal(t, d, got, f.String())
	}
	_, err := Read(strings.NewReader(""), Text)
	assert.Error(t, err)
}

func TestWriteTerminal(t *testing.T) {
	d := contrast(t)
	var buf bytes.Buffer
	require.NoError(t, WriteTerminal(&buf, d, termenv.Ascii))
	assert.Equal(t, "ff0000 b30000 ffbfbf ff8080\n00cc00 008f00 bfffbf 80ff80\n", buf.String())

	buf.Reset()
	require.NoError(t, WriteTerminal(&buf, d, termenv.TrueColor))
	assert.Contains(t, buf.String(), "\x1b[")
	assert.Contains(t, buf.String(), "00cc00 008f00 bfffbf 80ff80\n")
}

func TestSwatches(t *testing.T) {
	d := contrast(t)
	img := Swatches(d, 8)
	assert.Equal(t, 32, img.Bounds().Dx())
	assert.Equal(t, 16, img.Bounds().Dy())
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, img.RGBAAt(4, 4))
	assert.Equal(t, color.RGBA{0x80, 0xff, 0x80, 255}, img.RGBAAt(28, 12))
	imagex.Assert(t, img, "contrast")

	small := Swatches(&Document{Colors: [][]string{{"zzzzzz", "0000ff"}}}, 1)
	assert.Equal(t, color.RGBA{}, small.RGBAAt(0, 0))
	assert.Equal(t, color.RGBA{0, 0, 255, 255}, small.RGBAAt(1, 0))
}

func TestFormats(t *testing.T) {
	for name, want := range map[string]Formats{
		"p.json": JSON, "p.YAML": YAML, "p.yml": YAML, "p.toml": TOML,
		"p.png": Image, "p.jpg": Image, "p.txt": Text, "p": Text,
	} {
		assert.Equal(t, want, FormatFromFilename(name), name)
	}
	var f Formats
	require.NoError(t, f.SetString("terminal"))
	assert.Equal(t, Terminal, f)
	assert.Error(t, f.SetString("svg"))
	assert.Equal(t, "Formats(9)", Formats(9).String())
}

func TestSave(t *testing.T) {
	d := contrast(t)
	dir := t.TempDir()
	opts := DefaultOptions()
	opts.Swatch = 4

	fn := filepath.Join(dir, "palette.toml")
	require.NoError(t, Save(fn, d, opts))
	b, err := os.ReadFile(fn)
	require.NoError(t, err)
	got, err := Read(bytes.NewReader(b), TOML)
	require.NoError(t, err)
	assert.Equal(t, d, got)

	fn = filepath.Join(dir, "palette.png")
	require.NoError(t, Save(fn, d, opts))
	img, f, err := imagex.Open(fn)
	require.NoError(t, err)
	assert.Equal(t, imagex.PNG, f)
	assert.Equal(t, 16, img.Bounds().Dx())

	fn = filepath.Join(dir, "palette.webp")
	assert.Equal(t, Image, FormatFromFilename(fn))
	assert.Error(t, Save(fn, d, opts))
	assert.NoFileExists(t, fn)

	fn = filepath.Join(dir, "palette.out")
	assert.Error(t, SaveFormat(fn, d, Formats(9), opts))
	assert.NoFileExists(t, fn)
}

func TestSaveFormat(t *testing.T) {
	d := contrast(t)
	dir := t.TempDir()
	opts := DefaultOptions()

	fn := filepath.Join(dir, "palette.txt")
	require.NoError(t, SaveFormat(fn, d, JSON, opts))
	b, err := os.ReadFile(fn)
	require.NoError(t, err)
	got, err := Read(bytes.NewReader(b), JSON)
	require.NoError(t, err)
	assert.Equal(t, d, got)

	fn = filepath.Join(dir, "palette.bin")
	opts.ImageFormat = imagex.BMP
	require.NoError(t, SaveFormat(fn, d, Image, opts))
	_, f, err := imagex.Open(fn)
	require.NoError(t, err)
	assert.Equal(t, imagex.BMP, f)
}

func ExampleWriteText() {
	p := palette.New(3).FromHue(120)
	if err := p.SetScheme(palette.Triade); err != nil {
		fmt.Println(err)
		return
	}
	p.SetWebSafe(true)
	d, err := NewDocument(p)
	if err != nil {
		fmt.Println(err)
		return
	}
	WriteText(os.Stdout, d)
	// Output:
	// ffff00 cccc00 ffffcc ffff99
	// 330099 330066 ccccff 9999ff
	// cc0099 990066 ffccff ff99cc
}
