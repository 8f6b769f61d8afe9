// Package spice parses SPICE text kernels such as leap-second (LSK) and
// planetary-constants (PCK) files.
//
// A text kernel starts with a KPL/<type> header and carries one or more
// data blocks delimited by \begindata and \begintext markers. Each
// assignment binds a key to a double, a quoted string, an @timestamp,
// or a parenthesized array of one of those. NAIF's LSK kernels break
// their own format rules and mix bare integers with timestamps inside a
// single array, so bare digit runs are accepted wherever a timestamp is
// expected.
package spice

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
)

// ErrMissingHeader is returned when the input does not start with a
// KPL/<type> header.
var ErrMissingHeader = errors.New("missing KPL/<type> header")

// ErrNoData is returned when the kernel contains no parseable data block.
var ErrNoData = errors.New("no data blocks found")

type valueKind int

const (
	kindDouble valueKind = iota
	kindString
	kindTimestamp
	kindDoubleArray
	kindStringArray
	kindTimestampArray
)

type value struct {
	kind    valueKind
	num     float64
	str     string
	numArr  []float64
	strArr  []string
}

// Kernel is the in-memory representation of a SPICE text kernel.
type Kernel struct {
	// TypeID is the kernel type from the KPL/ header, e.g. "LSK" or "PCK".
	TypeID string

	items map[string]value
}

// Parse reads a SPICE text kernel from a string.
func Parse(input string) (*Kernel, error) {
	if !strings.HasPrefix(input, "KPL/") {
		return nil, ErrMissingHeader
	}
	rest := input[len("KPL/"):]
	n := 0
	for n < len(rest) && isAlpha(rest[n]) {
		n++
	}
	if n == 0 {
		return nil, ErrMissingHeader
	}
	k := &Kernel{
		TypeID: rest[:n],
		items:  make(map[string]value),
	}

	blocks := 0
	for body := rest[n:]; ; {
		start, ok := nextDataBlock(body)
		if !ok {
			break
		}
		p := &parser{s: body, pos: start}
		if err := p.parseBlock(k.items); err != nil {
			// A malformed trailing block is ignored if at least one
			// block parsed, matching lenient kernel readers.
			if blocks > 0 {
				break
			}
			return nil, err
		}
		blocks++
		body = body[p.pos:]
	}
	if blocks == 0 {
		return nil, ErrNoData
	}
	return k, nil
}

// ParseFile reads a SPICE text kernel from a file.
func ParseFile(path string) (*Kernel, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading kernel: %w", err)
	}
	k, err := Parse(string(raw))
	if err != nil {
		return nil, fmt.Errorf("parsing kernel %s: %w", path, err)
	}
	return k, nil
}

// Keys returns the sorted keys of all assignments in the kernel.
func (k *Kernel) Keys() []string {
	keys := make([]string, 0, len(k.items))
	for key := range k.items {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Has reports whether the kernel contains an assignment for key.
func (k *Kernel) Has(key string) bool {
	_, ok := k.items[key]
	return ok
}

// Double returns the scalar double assigned to key.
func (k *Kernel) Double(key string) (float64, bool) {
	v, ok := k.items[key]
	if !ok || v.kind != kindDouble {
		return 0, false
	}
	return v.num, true
}

// Text returns the scalar string assigned to key.
func (k *Kernel) Text(key string) (string, bool) {
	v, ok := k.items[key]
	if !ok || v.kind != kindString {
		return "", false
	}
	return v.str, true
}

// Timestamp returns the scalar timestamp assigned to key, without the
// leading @.
func (k *Kernel) Timestamp(key string) (string, bool) {
	v, ok := k.items[key]
	if !ok || v.kind != kindTimestamp {
		return "", false
	}
	return v.str, true
}

// Doubles returns the double array assigned to key.
func (k *Kernel) Doubles(key string) ([]float64, bool) {
	v, ok := k.items[key]
	if !ok || v.kind != kindDoubleArray {
		return nil, false
	}
	return v.numArr, true
}

// Texts returns the string array assigned to key.
func (k *Kernel) Texts(key string) ([]string, bool) {
	v, ok := k.items[key]
	if !ok || v.kind != kindStringArray {
		return nil, false
	}
	return v.strArr, true
}

// Timestamps returns the timestamp array assigned to key. Bare integer
// entries are preserved as digit strings.
func (k *Kernel) Timestamps(key string) ([]string, bool) {
	v, ok := k.items[key]
	if !ok || v.kind != kindTimestampArray {
		return nil, false
	}
	return v.strArr, true
}

// nextDataBlock finds the offset just past the next \begindata marker
// and its line ending.
func nextDataBlock(s string) (int, bool) {
	const marker = `\begindata`
	for from := 0; ; {
		idx := strings.Index(s[from:], marker)
		if idx < 0 {
			return 0, false
		}
		end := from + idx + len(marker)
		if strings.HasPrefix(s[end:], "\n") {
			return end + 1, true
		}
		if strings.HasPrefix(s[end:], "\r\n") {
			return end + 2, true
		}
		from = end
	}
}

type parser struct {
	s   string
	pos int
}

func (p *parser) eof() bool {
	return p.pos >= len(p.s)
}

func (p *parser) peek() byte {
	return p.s[p.pos]
}

func (p *parser) skipSpace() {
	for !p.eof() && isSpace(p.peek()) {
		p.pos++
	}
}

// skipSeparator consumes at least one whitespace or comma character.
func (p *parser) skipSeparator() error {
	start := p.pos
	for !p.eof() && isSeparator(p.peek()) {
		p.pos++
	}
	if p.pos == start {
		return fmt.Errorf("expected separator at offset %d", p.pos)
	}
	return nil
}

// parseBlock reads assignments until the closing \begintext marker.
func (p *parser) parseBlock(items map[string]value) error {
	const endTag = `\begintext`
	for {
		p.skipSpace()
		if strings.HasPrefix(p.s[p.pos:], endTag) {
			p.pos += len(endTag)
			return nil
		}
		if p.eof() {
			return errors.New("unterminated data block")
		}
		key, err := p.parseKey()
		if err != nil {
			return err
		}
		v, err := p.parseValue(key)
		if err != nil {
			return err
		}
		items[key] = v
	}
}

func (p *parser) parseKey() (string, error) {
	start := p.pos
	for !p.eof() && !isSpace(p.peek()) && p.peek() != '=' {
		p.pos++
	}
	key := p.s[start:p.pos]
	if key == "" {
		return "", fmt.Errorf("expected key at offset %d", start)
	}
	p.skipSpace()
	if p.eof() || p.peek() != '=' {
		return "", fmt.Errorf("expected '=' after key %q", key)
	}
	p.pos++
	if p.eof() || !isSpace(p.peek()) {
		return "", fmt.Errorf("expected whitespace after '=' for key %q", key)
	}
	p.skipSpace()
	return key, nil
}

func (p *parser) parseValue(key string) (value, error) {
	if p.eof() {
		return value{}, fmt.Errorf("missing value for key %q", key)
	}
	switch p.peek() {
	case '(':
		return p.parseArray(key)
	case '\'':
		s, err := p.parseQuoted(key)
		if err != nil {
			return value{}, err
		}
		return value{kind: kindString, str: s}, nil
	case '@':
		p.pos++
		return value{kind: kindTimestamp, str: p.takeToSeparator()}, nil
	default:
		tok := p.takeToSeparator()
		num, err := parseDouble(tok)
		if err != nil {
			return value{}, fmt.Errorf("invalid value %q for key %q", tok, key)
		}
		return value{kind: kindDouble, num: num}, nil
	}
}

// parseQuoted reads a quoted string. Doubled quotes escape a literal
// quote, handled as adjacent quoted segments joined by a single quote.
func (p *parser) parseQuoted(key string) (string, error) {
	var out strings.Builder
	first := true
	for !p.eof() && p.peek() == '\'' {
		p.pos++
		end := strings.IndexByte(p.s[p.pos:], '\'')
		if end < 0 {
			return "", fmt.Errorf("unterminated string for key %q", key)
		}
		if !first {
			out.WriteByte('\'')
		}
		out.WriteString(p.s[p.pos : p.pos+end])
		p.pos += end + 1
		first = false
	}
	return out.String(), nil
}

// parseArray reads a parenthesized array and classifies it as doubles,
// strings or timestamps. Every element must be followed by a separator,
// including the last one before the closing parenthesis.
func (p *parser) parseArray(key string) (value, error) {
	p.pos++ // consume '('
	if err := p.skipSeparator(); err != nil {
		return value{}, fmt.Errorf("malformed array for key %q: %w", key, err)
	}
	var tokens []string
	var quoted []bool
	for {
		if p.eof() {
			return value{}, fmt.Errorf("unterminated array for key %q", key)
		}
		if p.peek() == ')' {
			p.pos++
			break
		}
		if p.peek() == '\'' {
			s, err := p.parseQuoted(key)
			if err != nil {
				return value{}, err
			}
			tokens = append(tokens, s)
			quoted = append(quoted, true)
		} else {
			tokens = append(tokens, p.takeToSeparator())
			quoted = append(quoted, false)
		}
		if err := p.skipSeparator(); err != nil {
			return value{}, fmt.Errorf("malformed array for key %q: %w", key, err)
		}
	}
	if len(tokens) == 0 {
		return value{}, fmt.Errorf("empty array for key %q", key)
	}
	return classifyArray(key, tokens, quoted)
}

func classifyArray(key string, tokens []string, quoted []bool) (value, error) {
	anyQuoted := false
	allQuoted := true
	for _, q := range quoted {
		anyQuoted = anyQuoted || q
		allQuoted = allQuoted && q
	}
	if anyQuoted {
		if !allQuoted {
			return value{}, fmt.Errorf("mixed quoted and bare elements in array for key %q", key)
		}
		return value{kind: kindStringArray, strArr: tokens}, nil
	}

	nums := make([]float64, len(tokens))
	numeric := true
	for i, tok := range tokens {
		num, err := parseDouble(tok)
		if err != nil {
			numeric = false
			break
		}
		nums[i] = num
	}
	if numeric {
		return value{kind: kindDoubleArray, numArr: nums}, nil
	}

	stamps := make([]string, len(tokens))
	for i, tok := range tokens {
		switch {
		case strings.HasPrefix(tok, "@"):
			stamps[i] = tok[1:]
		case isDigits(tok):
			stamps[i] = tok
		default:
			return value{}, fmt.Errorf("invalid array element %q for key %q", tok, key)
		}
	}
	return value{kind: kindTimestampArray, strArr: stamps}, nil
}

func (p *parser) takeToSeparator() string {
	start := p.pos
	for !p.eof() && !isSeparator(p.peek()) {
		p.pos++
	}
	return p.s[start:p.pos]
}

// parseDouble parses a double, accepting Fortran-style d/D exponent
// markers found in older kernels.
func parseDouble(tok string) (float64, error) {
	num, err := strconv.ParseFloat(tok, 64)
	if err == nil {
		return num, nil
	}
	if strings.ContainsAny(tok, "dD") {
		fixed := strings.ReplaceAll(strings.ReplaceAll(tok, "d", "e"), "D", "e")
		return strconv.ParseFloat(fixed, 64)
	}
	return 0, err
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isDigits(s string) bool {
	if len(s) == 0 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\v' || c == '\f'
}

func isSeparator(c byte) bool {
	return isSpace(c) || c == ','
}
