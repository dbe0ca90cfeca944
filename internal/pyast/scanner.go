package pyast

import (
	"bytes"
	"strings"
)

const tabSize = 8

var utf8BOM = []byte{0xef, 0xbb, 0xbf}

// logicalLine is one Python statement line: comments stripped, string
// literals collapsed to "" and explicit or bracketed continuations joined.
type logicalLine struct {
	line   int
	indent int
	code   string
}

type scanner struct {
	src      []byte
	pos      int
	line     int
	comments map[int]string
	brackets []openBracket
}

type openBracket struct {
	char byte
	line int
}

var closers = map[byte]byte{')': '(', ']': '[', '}': '{'}

func scan(src []byte) ([]logicalLine, map[int]string, error) {
	s := &scanner{
		src:      bytes.TrimPrefix(src, utf8BOM),
		line:     1,
		comments: make(map[int]string),
	}

	lines, err := s.run()
	if err != nil {
		return nil, nil, err
	}

	return lines, s.comments, nil
}

func (s *scanner) run() ([]logicalLine, error) {
	var (
		lines []logicalLine
		cur   logicalLine
		buf   strings.Builder
		open  bool
	)

	atLineStart := true

	flush := func() {
		if open {
			cur.code = strings.TrimSpace(buf.String())
			lines = append(lines, cur)
		}

		buf.Reset()

		open = false
	}

	for s.pos < len(s.src) {
		if atLineStart {
			atLineStart = false
			indent := s.indentation()

			if s.pos < len(s.src) && !isNewline(s.src[s.pos]) && s.src[s.pos] != '#' {
				open = true
				cur = logicalLine{line: s.line, indent: indent}
			}

			continue
		}

		c := s.src[s.pos]

		switch {
		case c == '#':
			start := s.pos + 1
			for s.pos < len(s.src) && !isNewline(s.src[s.pos]) {
				s.pos++
			}

			s.comments[s.line] = strings.TrimSpace(string(s.src[start:s.pos]))

		case c == '\\' && s.pos+1 < len(s.src) && isNewline(s.src[s.pos+1]):
			s.pos++
			s.newline()
			buf.WriteByte(' ')

		case isNewline(c):
			s.newline()

			if len(s.brackets) > 0 {
				buf.WriteByte(' ')
				continue
			}

			flush()

			atLineStart = true

		case c == '"' || c == '\'':
			if err := s.skipString(); err != nil {
				return nil, err
			}

			buf.WriteString(`""`)

		case isIdentByte(c) && !isDigit(c):
			start := s.pos
			for s.pos < len(s.src) && isIdentByte(s.src[s.pos]) {
				s.pos++
			}

			word := string(s.src[start:s.pos])
			if s.pos < len(s.src) && (s.src[s.pos] == '"' || s.src[s.pos] == '\'') && isStringPrefix(word) {
				if err := s.skipString(); err != nil {
					return nil, err
				}

				buf.WriteString(`""`)

				continue
			}

			buf.WriteString(word)

		case c == '(' || c == '[' || c == '{':
			s.brackets = append(s.brackets, openBracket{char: c, line: s.line})
			buf.WriteByte(c)
			s.pos++

		case c == ')' || c == ']' || c == '}':
			n := len(s.brackets)
			if n == 0 || s.brackets[n-1].char != closers[c] {
				return nil, errorAt(s.line, "unmatched '%c'", c)
			}

			s.brackets = s.brackets[:n-1]
			buf.WriteByte(c)
			s.pos++

		default:
			buf.WriteByte(c)
			s.pos++
		}
	}

	if n := len(s.brackets); n > 0 {
		return nil, errorAt(s.brackets[n-1].line, "'%c' was never closed", s.brackets[n-1].char)
	}

	flush()

	return lines, nil
}

// indentation consumes leading whitespace and returns its width.
func (s *scanner) indentation() int {
	col := 0

	for s.pos < len(s.src) {
		switch s.src[s.pos] {
		case ' ':
			col++
		case '\t':
			col = (col/tabSize + 1) * tabSize
		case '\f':
			col = 0
		default:
			return col
		}

		s.pos++
	}

	return col
}

// newline consumes \n, \r\n or \r at pos.
func (s *scanner) newline() {
	if s.src[s.pos] == '\r' && s.pos+1 < len(s.src) && s.src[s.pos+1] == '\n' {
		s.pos++
	}

	s.pos++
	s.line++
}

func (s *scanner) skipString() error {
	quote := s.src[s.pos]
	startLine := s.line

	if bytes.HasPrefix(s.src[s.pos:], []byte{quote, quote, quote}) {
		s.pos += 3

		for s.pos < len(s.src) {
			switch c := s.src[s.pos]; {
			case c == '\\':
				s.pos++
				if s.pos < len(s.src) && isNewline(s.src[s.pos]) {
					s.newline()
				} else {
					s.pos++
				}
			case isNewline(c):
				s.newline()
			case bytes.HasPrefix(s.src[s.pos:], []byte{quote, quote, quote}):
				s.pos += 3
				return nil
			default:
				s.pos++
			}
		}

		return errorAt(startLine, "unterminated triple-quoted string literal")
	}

	s.pos++

	for s.pos < len(s.src) {
		switch c := s.src[s.pos]; {
		case c == '\\':
			s.pos++
			if s.pos < len(s.src) && isNewline(s.src[s.pos]) {
				s.newline()
			} else {
				s.pos++
			}
		case isNewline(c):
			return errorAt(startLine, "unterminated string literal")
		case c == quote:
			s.pos++
			return nil
		default:
			s.pos++
		}
	}

	return errorAt(startLine, "unterminated string literal")
}

func isNewline(c byte) bool {
	return c == '\n' || c == '\r'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// isIdentByte accepts any non-ASCII byte so UTF-8 identifiers pass through
// whole.
func isIdentByte(c byte) bool {
	return c == '_' || isDigit(c) || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c >= 0x80
}

func isStringPrefix(word string) bool {
	switch strings.ToLower(word) {
	case "r", "u", "b", "f", "br", "rb", "fr", "rf", "t", "tr", "rt":
		return true
	}

	return false
}
