package msgformat

import (
	"strconv"
	"strings"
	"unicode"
)

// DefaultMaxDepth bounds argument nesting so hostile patterns cannot
// exhaust the stack.
const DefaultMaxDepth = 64

type compileOptions struct {
	maxDepth int
}

// CompileOption configures Compile.
type CompileOption func(*compileOptions)

// WithMaxDepth sets how many arguments may nest inside each other.
// Values below 1 keep DefaultMaxDepth.
func WithMaxDepth(depth int) CompileOption {
	return func(o *compileOptions) {
		if depth > 0 {
			o.maxDepth = depth
		}
	}
}

// Compile parses pattern into an immutable Message.
// Any error is a *ParseError.
func Compile(pattern string, opts ...CompileOption) (*Message, error) {
	o := compileOptions{maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		opt(&o)
	}

	tokens, err := tokenize(pattern)
	if err != nil {
		return nil, err
	}

	p := &parser{tokens: tokens, end: len([]rune(pattern)), maxDepth: o.maxDepth}
	return p.parseMessage(0, false, -1)
}

// MustCompile is like Compile but panics on error.
// Use it for patterns known at build time.
func MustCompile(pattern string, opts ...CompileOption) *Message {
	m, err := Compile(pattern, opts...)
	if err != nil {
		panic(err)
	}
	return m
}

type parser struct {
	tokens   []token
	pos      int
	end      int
	maxDepth int
}

func (p *parser) peek() (token, bool) {
	if p.pos >= len(p.tokens) {
		return token{}, false
	}
	return p.tokens[p.pos], true
}

// parseMessage reads parts until end of input (open < 0) or the '}'
// closing the brace at open, which it leaves unconsumed.
func (p *parser) parseMessage(depth int, inPlural bool, open int) (*Message, error) {
	var (
		parts []Part
		text  strings.Builder
	)
	flush := func() {
		if text.Len() > 0 {
			parts = append(parts, &Literal{text: text.String()})
			text.Reset()
		}
	}

	for {
		t, ok := p.peek()
		if !ok {
			if open >= 0 {
				return nil, newParseError(ErrUnbalancedBrace, open, "'{' is never closed")
			}
			flush()
			return &Message{parts: parts}, nil
		}

		switch t.kind {
		case tokenText, tokenComma:
			text.WriteString(t.text)
			p.pos++
		case tokenPound:
			if !inPlural {
				return nil, newParseError(ErrUnexpectedPound, t.pos, "quote it as '#' to use it as text")
			}
			flush()
			parts = append(parts, Pound{})
			p.pos++
		case tokenOpen:
			flush()
			p.pos++
			arg, err := p.parseArgument(depth+1, inPlural, t.pos)
			if err != nil {
				return nil, err
			}
			parts = append(parts, arg)
		case tokenClose:
			if open < 0 {
				return nil, newParseError(ErrUnbalancedBrace, t.pos, "'}' has no matching '{'")
			}
			flush()
			return &Message{parts: parts}, nil
		}
	}
}

// parseArgument parses everything after the '{' at open up to and
// including its closing '}'.
func (p *parser) parseArgument(depth int, inPlural bool, open int) (Part, error) {
	if depth > p.maxDepth {
		return nil, newParseError(ErrTooDeeplyNested, open, "more than %d nested arguments", p.maxDepth)
	}

	name, namePos, err := p.parseWord(open)
	if err != nil {
		return nil, err
	}
	if name == "" {
		return nil, newParseError(ErrMissingArgumentName, namePos, "expected a name after '{'")
	}
	if !isName(name) {
		return nil, newParseError(ErrInvalidArgumentName, namePos, "%q", name)
	}

	t, ok := p.peek()
	if !ok {
		return nil, newParseError(ErrUnbalancedBrace, open, "'{' is never closed")
	}
	if t.kind == tokenClose {
		p.pos++
		return &SimpleArgument{name: name}, nil
	}
	if t.kind != tokenComma {
		return nil, newParseError(ErrUnexpectedToken, t.pos, "expected ',' or '}' after argument %q, got %s", name, t.kind)
	}
	p.pos++

	typ, typPos, err := p.parseWord(open)
	if err != nil {
		return nil, err
	}

	switch typ {
	case "number", "date", "time":
		style, err := p.parseStyle(open)
		if err != nil {
			return nil, err
		}
		switch typ {
		case "number":
			return &NumberArgument{name: name, style: style}, nil
		case "date":
			return &DateArgument{name: name, style: style}, nil
		default:
			return &TimeArgument{name: name, style: style}, nil
		}
	case "plural", "selectordinal":
		kind := Cardinal
		if typ == "selectordinal" {
			kind = Ordinal
		}
		if err := p.expectComma(open, typ); err != nil {
			return nil, err
		}
		return p.parsePlural(depth, name, kind, open)
	case "select":
		if err := p.expectComma(open, typ); err != nil {
			return nil, err
		}
		return p.parseSelect(depth, inPlural, name, open)
	case "":
		return nil, newParseError(ErrUnknownArgumentType, typPos, "missing argument type for %q", name)
	default:
		return nil, newParseError(ErrUnknownArgumentType, typPos, "%q", typ)
	}
}

// parseWord consumes one Text token and returns it trimmed.
// An absent token yields an empty word positioned at the next token.
func (p *parser) parseWord(open int) (string, int, error) {
	t, ok := p.peek()
	if !ok {
		return "", p.end, newParseError(ErrUnbalancedBrace, open, "'{' is never closed")
	}
	if t.kind != tokenText {
		return "", t.pos, nil
	}
	p.pos++
	trimmed := strings.TrimLeftFunc(t.text, unicode.IsSpace)
	return strings.TrimRightFunc(trimmed, unicode.IsSpace), t.pos + runeCount(t.text) - runeCount(trimmed), nil
}

func (p *parser) expectComma(open int, typ string) error {
	t, ok := p.peek()
	if !ok {
		return newParseError(ErrUnbalancedBrace, open, "'{' is never closed")
	}
	if t.kind != tokenComma {
		return newParseError(ErrUnexpectedToken, t.pos, "expected ',' after %q, got %s", typ, t.kind)
	}
	p.pos++
	return nil
}

// parseStyle reads an optional ", style" and the closing '}'.
func (p *parser) parseStyle(open int) (string, error) {
	t, ok := p.peek()
	if !ok {
		return "", newParseError(ErrUnbalancedBrace, open, "'{' is never closed")
	}
	if t.kind == tokenClose {
		p.pos++
		return "", nil
	}
	if t.kind != tokenComma {
		return "", newParseError(ErrUnexpectedToken, t.pos, "expected ',' or '}', got %s", t.kind)
	}
	p.pos++

	var style strings.Builder
	for {
		t, ok := p.peek()
		if !ok {
			return "", newParseError(ErrUnbalancedBrace, open, "'{' is never closed")
		}
		p.pos++
		switch t.kind {
		case tokenClose:
			return strings.TrimSpace(style.String()), nil
		case tokenOpen:
			return "", newParseError(ErrUnexpectedToken, t.pos, "'{' is not allowed in a style")
		default:
			style.WriteString(t.text)
		}
	}
}

func (p *parser) parsePlural(depth int, name string, kind PluralKind, open int) (Part, error) {
	arg := &PluralArgument{name: name, kind: kind}
	syn := branchSyntax{inPlural: true, key: pluralKey}
	syn.offset = func(w string, pos int) error {
		if kind == Ordinal {
			return newParseError(ErrInvalidOffset, pos, "selectordinal does not take an offset")
		}
		off, err := parseOffset(w, pos)
		arg.offset = off
		return err
	}

	bs, err := p.parseBranches(depth, open, syn)
	if err != nil {
		return nil, err
	}
	arg.branches = bs
	return arg, nil
}

func (p *parser) parseSelect(depth int, inPlural bool, name string, open int) (Part, error) {
	bs, err := p.parseBranches(depth, open, branchSyntax{inPlural: inPlural, key: selectKey})
	if err != nil {
		return nil, err
	}
	return &SelectArgument{name: name, branches: bs}, nil
}

// branchSyntax is what differs between plural and select branch lists.
// offset is nil when "offset:" is not recognised at all.
type branchSyntax struct {
	inPlural bool
	key      func(w string, pos int) (Branch, error)
	offset   func(w string, pos int) error
}

// parseBranches reads "key{message}" pairs up to and including the
// argument's closing '}'.
func (p *parser) parseBranches(depth, open int, syn branchSyntax) (branches, error) {
	bs := branches{index: make(map[string]int)}
	var (
		pending    *word
		offsetSeen bool
	)

	for {
		t, ok := p.peek()
		if !ok {
			return bs, newParseError(ErrUnbalancedBrace, open, "'{' is never closed")
		}

		switch t.kind {
		case tokenText:
			p.pos++
			words := splitWords(t)
			for i := 0; i < len(words); i++ {
				w := words[i]
				if pending != nil {
					return bs, newParseError(ErrMissingBranchMessage, pending.pos, "key %q has no message", pending.text)
				}
				if syn.offset != nil && !offsetSeen && len(bs.list) == 0 && strings.HasPrefix(w.text, "offset:") {
					val, pos := strings.TrimPrefix(w.text, "offset:"), w.pos+len("offset:")
					if val == "" && i+1 < len(words) {
						i++
						val, pos = words[i].text, words[i].pos
					}
					if err := syn.offset(val, pos); err != nil {
						return bs, err
					}
					offsetSeen = true
					continue
				}
				pending = &w
			}
		case tokenOpen:
			if pending == nil {
				return bs, newParseError(ErrMissingBranchMessage, t.pos, "'{' without a branch key")
			}
			br, err := syn.key(pending.text, pending.pos)
			if err != nil {
				return bs, err
			}
			if _, dup := bs.index[br.key]; dup {
				return bs, newParseError(ErrDuplicateBranchKey, pending.pos, "%q", br.key)
			}
			p.pos++
			msg, err := p.parseMessage(depth, syn.inPlural, t.pos)
			if err != nil {
				return bs, err
			}
			p.pos++ // closing '}'
			br.message = msg
			bs.index[br.key] = len(bs.list)
			bs.list = append(bs.list, br)
			pending = nil
		case tokenClose:
			if pending != nil {
				return bs, newParseError(ErrMissingBranchMessage, pending.pos, "key %q has no message", pending.text)
			}
			p.pos++
			if _, ok := bs.index[string(CategoryOther)]; !ok {
				return bs, newParseError(ErrMissingOtherBranch, open, "every plural and select needs an 'other' branch")
			}
			return bs, nil
		default:
			return bs, newParseError(ErrUnexpectedToken, t.pos, "unexpected %s between branches", t.kind)
		}
	}
}

type word struct {
	text string
	pos  int
}

// splitWords splits a text token on whitespace, keeping code-point offsets.
func splitWords(t token) []word {
	var (
		words []word
		cur   strings.Builder
		start int
	)
	i := t.pos
	for _, r := range t.text {
		if unicode.IsSpace(r) {
			if cur.Len() > 0 {
				words = append(words, word{text: cur.String(), pos: start})
				cur.Reset()
			}
		} else {
			if cur.Len() == 0 {
				start = i
			}
			cur.WriteRune(r)
		}
		i++
	}
	if cur.Len() > 0 {
		words = append(words, word{text: cur.String(), pos: start})
	}
	return words
}

func pluralKey(w string, pos int) (Branch, error) {
	if num, ok := strings.CutPrefix(w, "="); ok {
		v, err := strconv.ParseFloat(num, 64)
		if err != nil || strings.ContainsAny(num, "eEnNiIxX+_") {
			return Branch{}, newParseError(ErrInvalidBranchKey, pos, "%q is not an exact value", w)
		}
		return Branch{key: "=" + strconv.FormatFloat(v, 'f', -1, 64), exact: true, value: v}, nil
	}
	if !IsCategory(w) {
		return Branch{}, newParseError(ErrInvalidBranchKey, pos, "%q is not a plural category", w)
	}
	return Branch{key: w}, nil
}

func selectKey(w string, pos int) (Branch, error) {
	if !isName(w) {
		return Branch{}, newParseError(ErrInvalidBranchKey, pos, "%q is not a valid select key", w)
	}
	return Branch{key: w}, nil
}

func parseOffset(w string, pos int) (int64, error) {
	if w == "" {
		return 0, newParseError(ErrInvalidOffset, pos, "missing offset value")
	}
	for _, r := range w {
		if r < '0' || r > '9' {
			return 0, newParseError(ErrInvalidOffset, pos, "%q is not an unsigned integer", w)
		}
	}
	off, err := strconv.ParseInt(w, 10, 64)
	if err != nil {
		return 0, newParseError(ErrInvalidOffset, pos, "%q is out of range", w)
	}
	return off, nil
}

func isName(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' && r != '-' && r != '.' {
			return false
		}
	}
	return true
}

func runeCount(s string) int {
	return len([]rune(s))
}
