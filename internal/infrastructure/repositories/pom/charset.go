package pom

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/ianaindex"
)

// charset tracks the single-byte encoding a pom declares, if any. The
// decoder reads its transcoded UTF-8 form, so offsets reported by the
// decoder are mapped back to bytes of the original content.
type charset struct {
	content []byte
	decoded []byte
	active  bool
}

// reader is used as xml.Decoder.CharsetReader. Only charsets with one byte
// per character are accepted, so every original byte stays one character.
func (it *charset) reader(label string, input io.Reader) (io.Reader, error) {
	if isASCIILabel(label) {
		return input, nil
	}

	encoding, err := ianaindex.IANA.Encoding(label)
	if err != nil || encoding == nil {
		return nil, fmt.Errorf("unsupported encoding %q", label)
	}
	table, ok := encoding.(*charmap.Charmap)
	if !ok {
		return nil, fmt.Errorf("unsupported encoding %q: not a single-byte charset", label)
	}

	decoded, err := table.NewDecoder().Bytes(it.content)
	if err != nil {
		return nil, fmt.Errorf("decoding %q content: %w", label, err)
	}
	it.decoded = decoded
	it.active = true
	return table.NewDecoder().Reader(input), nil
}

func isASCIILabel(label string) bool {
	switch strings.ToLower(label) {
	case "us-ascii", "ascii", "iso646-us":
		return true
	}
	return false
}

// original maps an offset in the decoded stream to one in the content.
func (it *charset) original(offset int) int {
	if !it.active || offset <= 0 {
		return offset
	}
	return utf8.RuneCount(it.decoded[:min(offset, len(it.decoded))])
}

// remap rewrites every element span to offsets of the original content.
func (it *charset) remap(doc *document) {
	if !it.active {
		return
	}
	for _, e := range doc.byPath {
		e.offset = it.original(e.offset)
		e.textStart = it.original(e.textStart)
		e.textEnd = it.original(e.textEnd)
		e.column = e.offset - bytes.LastIndexByte(it.content[:e.offset], '\n')
	}
}
