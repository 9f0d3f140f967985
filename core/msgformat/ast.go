package msgformat

import (
	"slices"
	"strconv"
	"strings"
)

// Message is a compiled pattern: an ordered sequence of parts.
// It is immutable and safe to share between goroutines.
type Message struct {
	parts []Part
}

// Parts returns a copy of the message parts in output order.
func (m *Message) Parts() []Part {
	return slices.Clone(m.parts)
}

// Len returns the number of top-level parts.
func (m *Message) Len() int {
	return len(m.parts)
}

// String returns the canonical pattern for m. Compiling the result
// yields an equivalent message.
func (m *Message) String() string {
	var b strings.Builder
	m.writePattern(&b)
	return b.String()
}

// Arguments returns the sorted names of every argument referenced by m,
// including those nested in plural and select branches.
func (m *Message) Arguments() []string {
	seen := make(map[string]struct{})
	m.collectArguments(seen)
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func (m *Message) collectArguments(seen map[string]struct{}) {
	for _, p := range m.parts {
		switch v := p.(type) {
		case *SimpleArgument:
			seen[v.name] = struct{}{}
		case *NumberArgument:
			seen[v.name] = struct{}{}
		case *DateArgument:
			seen[v.name] = struct{}{}
		case *TimeArgument:
			seen[v.name] = struct{}{}
		case *PluralArgument:
			seen[v.name] = struct{}{}
			for _, br := range v.list {
				br.message.collectArguments(seen)
			}
		case *SelectArgument:
			seen[v.name] = struct{}{}
			for _, br := range v.list {
				br.message.collectArguments(seen)
			}
		}
	}
}

func (m *Message) writePattern(b *strings.Builder) {
	for _, p := range m.parts {
		p.writePattern(b)
	}
}

// Part is one element of a Message. The concrete types are
// *Literal, *SimpleArgument, *NumberArgument, *DateArgument,
// *TimeArgument, *PluralArgument, *SelectArgument and Pound.
type Part interface {
	writePattern(b *strings.Builder)
}

// Literal is text copied verbatim to the output.
type Literal struct {
	text string
}

// Text returns the literal text with escapes resolved.
func (l *Literal) Text() string { return l.text }

func (l *Literal) writePattern(b *strings.Builder) {
	writeEscaped(b, l.text, "{}#")
}

// SimpleArgument substitutes the default string form of an argument.
type SimpleArgument struct {
	name string
}

// Name returns the argument name.
func (a *SimpleArgument) Name() string { return a.name }

func (a *SimpleArgument) writePattern(b *strings.Builder) {
	b.WriteByte('{')
	b.WriteString(a.name)
	b.WriteByte('}')
}

// NumberArgument renders a number through the ValueFormatter.
type NumberArgument struct {
	name  string
	style string
}

// Name returns the argument name.
func (a *NumberArgument) Name() string { return a.name }

// Style returns the style text, possibly empty.
func (a *NumberArgument) Style() string { return a.style }

func (a *NumberArgument) writePattern(b *strings.Builder) {
	writeTyped(b, a.name, "number", a.style)
}

// DateArgument renders the date part of a time through the ValueFormatter.
type DateArgument struct {
	name  string
	style string
}

// Name returns the argument name.
func (a *DateArgument) Name() string { return a.name }

// Style returns the style text, possibly empty.
func (a *DateArgument) Style() string { return a.style }

func (a *DateArgument) writePattern(b *strings.Builder) {
	writeTyped(b, a.name, "date", a.style)
}

// TimeArgument renders the time-of-day part of a time through the ValueFormatter.
type TimeArgument struct {
	name  string
	style string
}

// Name returns the argument name.
func (a *TimeArgument) Name() string { return a.name }

// Style returns the style text, possibly empty.
func (a *TimeArgument) Style() string { return a.style }

func (a *TimeArgument) writePattern(b *strings.Builder) {
	writeTyped(b, a.name, "time", a.style)
}

// Branch is one key and nested message of a plural or select argument.
type Branch struct {
	key     string
	exact   bool
	value   float64
	message *Message
}

// Key returns the branch key as written in canonical form ("one", "=3").
func (br Branch) Key() string { return br.key }

// Exact returns the numeric value of an "=N" key.
func (br Branch) Exact() (float64, bool) { return br.value, br.exact }

// Message returns the nested message.
func (br Branch) Message() *Message { return br.message }

// branches is the ordered, indexed set shared by plural and select arguments.
type branches struct {
	list  []Branch
	index map[string]int
}

func (bs branches) lookup(key string) (*Message, bool) {
	i, ok := bs.index[key]
	if !ok {
		return nil, false
	}
	return bs.list[i].message, true
}

func (bs branches) writePattern(b *strings.Builder) {
	for _, br := range bs.list {
		b.WriteByte(' ')
		b.WriteString(br.key)
		b.WriteByte('{')
		br.message.writePattern(b)
		b.WriteByte('}')
	}
}

// PluralArgument picks a branch by exact value or plural category.
// Exact "=N" keys match the raw argument and ignore the offset. Category keys
// and '#' use the value minus the offset, so with offset:1 and n=2 "=2" wins
// over "one" and '#' renders 1.
type PluralArgument struct {
	name   string
	kind   PluralKind
	offset int64
	branches
}

// Name returns the argument name.
func (a *PluralArgument) Name() string { return a.name }

// Kind reports whether cardinal or ordinal rules apply.
func (a *PluralArgument) Kind() PluralKind { return a.kind }

// Offset returns the value subtracted before category lookup and '#'.
// It is not applied to exact "=N" keys.
func (a *PluralArgument) Offset() int64 { return a.offset }

// Branches returns the branches in declaration order.
func (a *PluralArgument) Branches() []Branch { return slices.Clone(a.list) }

// Branch returns the nested message for key ("few", "=2").
func (a *PluralArgument) Branch(key string) (*Message, bool) { return a.lookup(key) }

func (a *PluralArgument) writePattern(b *strings.Builder) {
	b.WriteByte('{')
	b.WriteString(a.name)
	b.WriteString(", ")
	b.WriteString(a.kind.String())
	b.WriteByte(',')
	if a.offset != 0 {
		b.WriteString(" offset:")
		b.WriteString(strconv.FormatInt(a.offset, 10))
	}
	a.branches.writePattern(b)
	b.WriteByte('}')
}

// SelectArgument picks a branch by exact keyword match.
type SelectArgument struct {
	name string
	branches
}

// Name returns the argument name.
func (a *SelectArgument) Name() string { return a.name }

// Branches returns the branches in declaration order.
func (a *SelectArgument) Branches() []Branch { return slices.Clone(a.list) }

// Branch returns the nested message for key.
func (a *SelectArgument) Branch(key string) (*Message, bool) { return a.lookup(key) }

func (a *SelectArgument) writePattern(b *strings.Builder) {
	b.WriteByte('{')
	b.WriteString(a.name)
	b.WriteString(", select,")
	a.branches.writePattern(b)
	b.WriteByte('}')
}

// Pound is '#' inside a plural branch: the enclosing plural's adjusted value.
type Pound struct{}

func (Pound) writePattern(b *strings.Builder) {
	b.WriteByte('#')
}

func writeTyped(b *strings.Builder, name, typ, style string) {
	b.WriteByte('{')
	b.WriteString(name)
	b.WriteString(", ")
	b.WriteString(typ)
	if style != "" {
		b.WriteString(", ")
		writeEscaped(b, style, "{}")
	}
	b.WriteByte('}')
}

// writeEscaped quotes runs of the given syntax characters so the tokenizer
// reads them back as text. Style text keeps '#' bare: the parser joins
// pound tokens of a style back into its text.
func writeEscaped(b *strings.Builder, s, syntax string) {
	quoted := false
	for _, r := range s {
		switch r {
		case '\'':
			b.WriteString("''")
		case '{', '}', '#':
			if !strings.ContainsRune(syntax, r) {
				if quoted {
					b.WriteByte('\'')
					quoted = false
				}
				b.WriteRune(r)
				continue
			}
			if !quoted {
				b.WriteByte('\'')
				quoted = true
			}
			b.WriteRune(r)
		default:
			if quoted {
				b.WriteByte('\'')
				quoted = false
			}
			b.WriteRune(r)
		}
	}
	if quoted {
		b.WriteByte('\'')
	}
}
