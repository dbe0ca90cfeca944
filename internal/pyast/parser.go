package pyast

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"fortio.org/safecast"
)

// SyntaxError reports source that cannot be split into statements.
type SyntaxError struct {
	Line int
	Msg  string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
}

func errorAt(line int, format string, args ...any) error {
	return &SyntaxError{Line: line, Msg: fmt.Sprintf(format, args...)}
}

// Parse builds the structural tree of a Python module.
func Parse(path string, src []byte) (*Module, error) {
	lines, comments, err := scan(src)
	if err != nil {
		return nil, err
	}

	p := &parser{lines: lines}

	body, err := p.block(0)
	if err != nil {
		return nil, err
	}

	mod := &Module{
		Path:     path,
		Body:     body,
		Comments: make(map[uint32]string, len(comments)),
	}

	for line, text := range comments {
		n, err := lineno(line)
		if err != nil {
			return nil, err
		}

		mod.Comments[n] = text
	}

	return mod, nil
}

type parser struct {
	lines []logicalLine
	pos   int
}

func lineno(line int) (uint32, error) {
	n, err := safecast.Conv[uint32](line)
	if err != nil {
		return 0, fmt.Errorf("line number %d: %w", line, err)
	}

	return n, nil
}

// block parses consecutive statements sharing indent.
func (p *parser) block(indent int) ([]Node, error) {
	nodes := []Node{}

	var (
		decorators     []string
		decoratorsLine int
	)

	for p.pos < len(p.lines) {
		ln := p.lines[p.pos]
		if ln.indent < indent {
			break
		}

		if ln.indent > indent {
			return nil, errorAt(ln.line, "unexpected indent")
		}

		p.pos++

		if strings.HasPrefix(ln.code, "@") {
			if len(decorators) == 0 {
				decoratorsLine = ln.line
			}

			decorators = append(decorators, strings.TrimSpace(ln.code[1:]))

			continue
		}

		node, err := p.statement(ln, decorators)
		if err != nil {
			return nil, err
		}

		if _, ok := node.(*Other); ok && len(decorators) > 0 {
			return nil, errorAt(ln.line, "decorator must precede a def or class statement")
		}

		if class, ok := node.(*ClassDef); ok && len(decorators) > 0 {
			if class.DecoratorLine, err = lineno(decoratorsLine); err != nil {
				return nil, err
			}
		}

		decorators = nil

		nodes = append(nodes, node)
	}

	if len(decorators) > 0 {
		return nil, errorAt(decoratorsLine, "decorator must precede a def or class statement")
	}

	return nodes, nil
}

// suite parses the indented block following a header line.
func (p *parser) suite(header logicalLine) ([]Node, error) {
	if p.pos >= len(p.lines) || p.lines[p.pos].indent <= header.indent {
		return nil, errorAt(header.line, "expected an indented block")
	}

	body, err := p.block(p.lines[p.pos].indent)
	if err != nil {
		return nil, err
	}

	if p.pos < len(p.lines) && p.lines[p.pos].indent > header.indent {
		return nil, errorAt(p.lines[p.pos].line, "unindent does not match any outer indentation level")
	}

	return body, nil
}

func (p *parser) statement(ln logicalLine, decorators []string) (Node, error) {
	kw, rest := leadingWord(ln.code)

	switch kw {
	case "class":
		return p.classDef(ln, rest, decorators)
	case "def":
		return p.funcDef(ln, rest, decorators, false)
	case "async":
		if next, after := leadingWord(rest); next == "def" {
			return p.funcDef(ln, after, decorators, true)
		}
	}

	n, err := lineno(ln.line)
	if err != nil {
		return nil, err
	}

	if strings.HasSuffix(ln.code, ":") && indexTop(ln.code, ':') == len(ln.code)-1 {
		if _, err := p.suite(ln); err != nil {
			return nil, err
		}
	}

	return &Other{Lineno: n}, nil
}

func (p *parser) classDef(ln logicalLine, rest string, decorators []string) (Node, error) {
	name, after := leadingWord(rest)
	if !isIdentifier(name) {
		return nil, errorAt(ln.line, "invalid class name")
	}

	after, err := skipTypeParams(ln, after)
	if err != nil {
		return nil, err
	}

	bases := []BaseRef{}

	if strings.HasPrefix(after, "(") {
		end := matching(after)
		if end < 0 {
			return nil, errorAt(ln.line, "'(' was never closed")
		}

		bases = parseBases(after[1:end])
		after = strings.TrimSpace(after[end+1:])
	}

	if !strings.HasPrefix(after, ":") {
		return nil, errorAt(ln.line, "expected ':'")
	}

	n, err := lineno(ln.line)
	if err != nil {
		return nil, err
	}

	class := &ClassDef{
		Name:       name,
		Lineno:     n,
		Bases:      bases,
		Decorators: nonNil(decorators),
		Body:       []Node{&Other{Lineno: n}},
	}

	if strings.TrimSpace(after[1:]) == "" {
		body, err := p.suite(ln)
		if err != nil {
			return nil, err
		}

		class.Body = body
	}

	return class, nil
}

func (p *parser) funcDef(ln logicalLine, rest string, decorators []string, async bool) (Node, error) {
	name, after := leadingWord(rest)
	if !isIdentifier(name) {
		return nil, errorAt(ln.line, "invalid function name")
	}

	after, err := skipTypeParams(ln, after)
	if err != nil {
		return nil, err
	}

	if !strings.HasPrefix(after, "(") {
		return nil, errorAt(ln.line, "expected '('")
	}

	end := matching(after)
	if end < 0 {
		return nil, errorAt(ln.line, "'(' was never closed")
	}

	params, err := parseParams(after[1:end])
	if err != nil {
		return nil, errorAt(ln.line, "%v", err)
	}

	tail := after[end+1:]

	colon := indexTop(tail, ':')
	if colon < 0 {
		return nil, errorAt(ln.line, "expected ':'")
	}

	if strings.TrimSpace(tail[colon+1:]) == "" {
		if _, err := p.suite(ln); err != nil {
			return nil, err
		}
	}

	n, err := lineno(ln.line)
	if err != nil {
		return nil, err
	}

	return &FuncDef{
		Name:       name,
		Lineno:     n,
		Params:     params,
		Decorators: nonNil(decorators),
		Async:      async,
	}, nil
}

func skipTypeParams(ln logicalLine, s string) (string, error) {
	if !strings.HasPrefix(s, "[") {
		return s, nil
	}

	end := matching(s)
	if end < 0 {
		return "", errorAt(ln.line, "'[' was never closed")
	}

	return strings.TrimSpace(s[end+1:]), nil
}

// parseParams returns the formal parameter names. Star prefixes, annotations
// and defaults are dropped and the bare '*' and '/' markers are skipped.
func parseParams(s string) ([]string, error) {
	params := []string{}

	for _, part := range splitParams(s) {
		part = strings.TrimSpace(part)
		if part == "" || part == "*" || part == "/" {
			continue
		}

		part = strings.TrimLeft(part, "*")
		if cut := strings.IndexAny(part, ":="); cut >= 0 {
			part = part[:cut]
		}

		name := strings.TrimSpace(part)
		if !isIdentifier(name) {
			return nil, fmt.Errorf("invalid parameter %q", name)
		}

		params = append(params, name)
	}

	return params, nil
}

// parseBases keeps positional bases only; keyword arguments such as
// metaclass=... and **kwargs expansions are not bases.
func parseBases(s string) []BaseRef {
	bases := []BaseRef{}

	for _, part := range splitTop(s) {
		part = strings.TrimSpace(part)
		if part == "" || strings.HasPrefix(part, "**") {
			continue
		}

		if eq := strings.IndexByte(part, '='); eq > 0 && isIdentifier(strings.TrimSpace(part[:eq])) &&
			(eq+1 >= len(part) || part[eq+1] != '=') {
			continue
		}

		ref := BaseRef{Expr: part}
		if isIdentifier(part) {
			ref.Name = part
		}

		bases = append(bases, ref)
	}

	return bases
}

// leadingWord splits off the identifier at the start of s.
func leadingWord(s string) (string, string) {
	s = strings.TrimSpace(s)

	i := 0
	for i < len(s) && isIdentByte(s[i]) {
		i++
	}

	return s[:i], strings.TrimSpace(s[i:])
}

// matching returns the index of the bracket closing s[0], or -1.
func matching(s string) int {
	depth := 0

	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(', '[', '{':
			depth++
		case ')', ']', '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}

	return -1
}

// indexTop returns the index of the first c outside any bracket, or -1.
func indexTop(s string, c byte) int {
	depth := 0

	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(', '[', '{':
			depth++
		case ')', ']', '}':
			depth--
		case c:
			if depth == 0 {
				return i
			}
		}
	}

	return -1
}

func splitTop(s string) []string {
	var parts []string

	depth, start := 0, 0

	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(', '[', '{':
			depth++
		case ')', ']', '}':
			depth--
		case ',':
			if depth == 0 {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}

	return append(parts, s[start:])
}

// splitParams splits a parameter list like splitTop, except that commas
// between a lambda keyword and its ':' belong to the lambda's own parameters.
func splitParams(s string) []string {
	var parts []string

	depth, lambdas, start := 0, 0, 0

	for i := 0; i < len(s); i++ {
		c := s[i]

		switch {
		case c == '(' || c == '[' || c == '{':
			depth++
		case c == ')' || c == ']' || c == '}':
			depth--
		case depth > 0:
		case c == ',' && lambdas == 0:
			parts = append(parts, s[start:i])
			start = i + 1
		case c == ':' && lambdas > 0:
			lambdas--
		case isIdentByte(c) && (i == 0 || !isIdentByte(s[i-1])):
			end := i
			for end < len(s) && isIdentByte(s[end]) {
				end++
			}

			if s[i:end] == "lambda" {
				lambdas++
			}

			i = end - 1
		}
	}

	return append(parts, s[start:])
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}

	for i, r := range s {
		if r == utf8.RuneError {
			return false
		}

		if r == '_' || unicode.IsLetter(r) || (i > 0 && unicode.IsDigit(r)) {
			continue
		}

		return false
	}

	return true
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}

	return s
}
