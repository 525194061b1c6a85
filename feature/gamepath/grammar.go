package gamepath

import (
	"fmt"
	"strconv"
	"strings"
)

// Pattern is a compiled path template. Templates are literal text with these
// constructs:
//
//	{name:d4}   exactly four digits, captured as name
//	{name:d+}   one or more digits ({name:d*} allows none)
//	{name:a3}   lowercase letters, same count forms as d
//	{name:x4}   lowercase letters or digits
//	{name:p1}   one of '-' or '_'
//	{name:s+}   any characters except '/'
//	{name:*}    any run of characters
//	{=name}     the exact text captured earlier as name
//	[...]       optional group, [name=...] records whether it matched
//	(name=...)  required group captured as name
//
// The name may be empty ({:a1}) for runs that are matched but not captured.
// A pattern must match the whole path.
type Pattern struct {
	source string
	nodes  []node
}

// Captures holds the named fields of a successful match.
type Captures map[string]string

// Has reports whether a field (or named group) took part in the match.
func (c Captures) Has(name string) bool {
	_, ok := c[name]
	return ok
}

// Get returns the captured text, or "" when the field did not match.
func (c Captures) Get(name string) string {
	return c[name]
}

// String returns the template the pattern was compiled from.
func (p *Pattern) String() string {
	return p.source
}

// Match reports whether the whole path matches and returns its captures.
func (p *Pattern) Match(path string) (Captures, bool) {
	s := &matchState{input: path, caps: make(Captures)}
	ok := matchSeq(s, p.nodes, 0, func(end int) bool {
		return end == len(path)
	})
	if !ok {
		return nil, false
	}
	return s.caps, true
}

// MustCompile is like Compile but panics on a malformed template.
func MustCompile(template string) *Pattern {
	p, err := Compile(template)
	if err != nil {
		panic(err)
	}
	return p
}

// Compile parses a template into a Pattern.
func Compile(template string) (*Pattern, error) {
	c := &compiler{src: template, defined: make(map[string]bool)}
	nodes, err := c.parseSeq(0)
	if err != nil {
		return nil, fmt.Errorf("compile %q: %w", template, err)
	}
	if c.pos != len(c.src) {
		return nil, fmt.Errorf("compile %q: unexpected %q at %d", template, c.src[c.pos], c.pos)
	}
	return &Pattern{source: template, nodes: nodes}, nil
}

type matchState struct {
	input string
	caps  Captures
}

// set records a capture and returns a function restoring the previous state.
func (s *matchState) set(name, value string) func() {
	prev, had := s.caps[name]
	s.caps[name] = value
	return func() {
		if had {
			s.caps[name] = prev
		} else {
			delete(s.caps, name)
		}
	}
}

type node interface {
	match(s *matchState, pos int, k func(int) bool) bool
}

func matchSeq(s *matchState, nodes []node, pos int, k func(int) bool) bool {
	if len(nodes) == 0 {
		return k(pos)
	}
	return nodes[0].match(s, pos, func(next int) bool {
		return matchSeq(s, nodes[1:], next, k)
	})
}

type literal string

func (l literal) match(s *matchState, pos int, k func(int) bool) bool {
	if !strings.HasPrefix(s.input[pos:], string(l)) {
		return false
	}
	return k(pos + len(l))
}

type charClass byte

const (
	classDigit    charClass = 'd'
	classLower    charClass = 'a'
	classAlnum    charClass = 'x'
	classSep      charClass = 'p'
	classSegment  charClass = 's'
	classAnything charClass = '*'
)

func (c charClass) valid() bool {
	switch c {
	case classDigit, classLower, classAlnum, classSep, classSegment, classAnything:
		return true
	default:
		return false
	}
}

func (c charClass) accepts(b byte) bool {
	switch c {
	case classDigit:
		return '0' <= b && b <= '9'
	case classLower:
		return 'a' <= b && b <= 'z'
	case classAlnum:
		return ('a' <= b && b <= 'z') || ('0' <= b && b <= '9')
	case classSep:
		return b == '-' || b == '_'
	case classSegment:
		return b != '/'
	case classAnything:
		return true
	default:
		return false
	}
}

// run matches between min and max characters of a class, longest first.
// max < 0 means unbounded.
type run struct {
	name  string
	class charClass
	min   int
	max   int
}

func (r run) match(s *matchState, pos int, k func(int) bool) bool {
	avail := 0
	for pos+avail < len(s.input) && (r.max < 0 || avail < r.max) && r.class.accepts(s.input[pos+avail]) {
		avail++
	}
	for n := avail; n >= r.min; n-- {
		if r.name == "" {
			if k(pos + n) {
				return true
			}
			continue
		}
		restore := s.set(r.name, s.input[pos:pos+n])
		if k(pos + n) {
			return true
		}
		restore()
	}
	return false
}

type backref string

func (b backref) match(s *matchState, pos int, k func(int) bool) bool {
	value, ok := s.caps[string(b)]
	if !ok || !strings.HasPrefix(s.input[pos:], value) {
		return false
	}
	return k(pos + len(value))
}

type group struct {
	name     string
	optional bool
	nodes    []node
}

func (g group) match(s *matchState, pos int, k func(int) bool) bool {
	matched := matchSeq(s, g.nodes, pos, func(end int) bool {
		if g.name == "" {
			return k(end)
		}
		restore := s.set(g.name, s.input[pos:end])
		if k(end) {
			return true
		}
		restore()
		return false
	})
	if matched {
		return true
	}
	return g.optional && k(pos)
}

type compiler struct {
	src     string
	pos     int
	defined map[string]bool
}

// parseSeq parses until the closing delimiter (0 for end of input).
func (c *compiler) parseSeq(closing byte) ([]node, error) {
	var nodes []node
	var lit strings.Builder
	flush := func() {
		if lit.Len() > 0 {
			nodes = append(nodes, literal(lit.String()))
			lit.Reset()
		}
	}

	for c.pos < len(c.src) {
		ch := c.src[c.pos]
		switch {
		case closing != 0 && ch == closing:
			flush()
			return nodes, nil
		case ch == '{':
			flush()
			n, err := c.parseField()
			if err != nil {
				return nil, err
			}
			nodes = append(nodes, n)
		case ch == '[' || ch == '(':
			flush()
			n, err := c.parseGroup(ch)
			if err != nil {
				return nil, err
			}
			nodes = append(nodes, n)
		case ch == '}' || ch == ']' || ch == ')':
			return nil, fmt.Errorf("unbalanced %q at %d", ch, c.pos)
		default:
			lit.WriteByte(ch)
			c.pos++
		}
	}

	if closing != 0 {
		return nil, fmt.Errorf("missing %q", closing)
	}
	flush()
	return nodes, nil
}

func (c *compiler) parseField() (node, error) {
	end := strings.IndexByte(c.src[c.pos:], '}')
	if end < 0 {
		return nil, fmt.Errorf("unterminated field at %d", c.pos)
	}
	body := c.src[c.pos+1 : c.pos+end]
	c.pos += end + 1

	if ref, ok := strings.CutPrefix(body, "="); ok {
		if !c.defined[ref] {
			return nil, fmt.Errorf("back-reference to undefined field %q", ref)
		}
		return backref(ref), nil
	}

	name, spec, ok := strings.Cut(body, ":")
	if !ok || spec == "" {
		return nil, fmt.Errorf("field %q needs a class", body)
	}
	r := run{name: name, class: charClass(spec[0])}
	if !r.class.valid() {
		return nil, fmt.Errorf("unknown class %q in field %q", spec[0], body)
	}

	switch count := spec[1:]; {
	case count == "" && r.class == classAnything:
		r.min, r.max = 0, -1
	case count == "":
		r.min, r.max = 1, 1
	case count == "+":
		r.min, r.max = 1, -1
	case count == "*":
		r.min, r.max = 0, -1
	default:
		n, err := strconv.Atoi(count)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("bad count %q in field %q", count, body)
		}
		r.min, r.max = n, n
	}

	if name != "" {
		c.defined[name] = true
	}
	return r, nil
}

func (c *compiler) parseGroup(open byte) (node, error) {
	closing := byte(']')
	if open == '(' {
		closing = ')'
	}
	c.pos++

	g := group{optional: open == '['}
	if eq := c.identEnd(); eq > c.pos && eq < len(c.src) && c.src[eq] == '=' {
		g.name = c.src[c.pos:eq]
		c.pos = eq + 1
	}
	if !g.optional && g.name == "" {
		return nil, fmt.Errorf("required group at %d needs a name", c.pos)
	}

	nodes, err := c.parseSeq(closing)
	if err != nil {
		return nil, err
	}
	c.pos++ // closing delimiter
	g.nodes = nodes
	if g.name != "" {
		c.defined[g.name] = true
	}
	return g, nil
}

// identEnd returns the index just past a run of lowercase letters at the cursor.
func (c *compiler) identEnd() int {
	i := c.pos
	for i < len(c.src) && 'a' <= c.src[i] && c.src[i] <= 'z' {
		i++
	}
	return i
}
