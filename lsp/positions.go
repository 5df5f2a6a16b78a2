package lsp

import (
	"unicode/utf8"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/dhamidi/remod/java/syntax"
)

// The protocol counts positions in UTF-16 code units on zero-based
// lines, while spans carry byte offsets. These helpers translate
// between the two against the document's source bytes.

func positionFor(source []byte, offset int) protocol.Position {
	if offset > len(source) {
		offset = len(source)
	}
	var line, lineStart int
	for i := 0; i < offset; i++ {
		if source[i] == '\n' {
			line++
			lineStart = i + 1
		}
	}
	return protocol.Position{
		Line:      protocol.UInteger(line),
		Character: protocol.UInteger(utf16Len(source[lineStart:offset])),
	}
}

func rangeFor(source []byte, span syntax.Span) protocol.Range {
	return protocol.Range{
		Start: positionFor(source, span.Start.Offset),
		End:   positionFor(source, span.End.Offset),
	}
}

// fullRange covers the whole document, for whole-text edits.
func fullRange(source []byte) protocol.Range {
	return protocol.Range{
		Start: protocol.Position{Line: 0, Character: 0},
		End:   positionFor(source, len(source)),
	}
}

// offsetFor converts a protocol position back to a byte offset,
// clamping past-the-end positions to the document.
func offsetFor(source []byte, pos protocol.Position) int {
	offset := 0
	for line := protocol.UInteger(0); line < pos.Line; line++ {
		next := indexByte(source, offset, '\n')
		if next < 0 {
			return len(source)
		}
		offset = next + 1
	}
	var units protocol.UInteger
	for offset < len(source) && source[offset] != '\n' && units < pos.Character {
		r, size := utf8.DecodeRune(source[offset:])
		offset += size
		if r > 0xFFFF {
			units += 2
		} else {
			units++
		}
	}
	return offset
}

func utf16Len(b []byte) int {
	var n int
	for len(b) > 0 {
		r, size := utf8.DecodeRune(b)
		b = b[size:]
		if r > 0xFFFF {
			n += 2
		} else {
			n++
		}
	}
	return n
}

func indexByte(b []byte, from int, c byte) int {
	for i := from; i < len(b); i++ {
		if b[i] == c {
			return i
		}
	}
	return -1
}
