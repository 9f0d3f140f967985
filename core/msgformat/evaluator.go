package msgformat

import (
	"strconv"
	"strings"

	"golang.org/x/text/language"
)

// Evaluator renders compiled messages with a fixed pair of collaborators.
// It holds no mutable state and is safe for concurrent use.
type Evaluator struct {
	plurals      PluralSelector
	values       ValueFormatter
	literalPound bool
}

// EvaluatorOption configures NewEvaluator.
type EvaluatorOption func(*Evaluator)

// WithLiteralPound keeps '#' in plural branches as a literal "#" instead of
// the formatted plural value. Branch selection is unchanged. Use it when a
// later stage substitutes the count itself.
func WithLiteralPound() EvaluatorOption {
	return func(e *Evaluator) {
		e.literalPound = true
	}
}

// NewEvaluator returns an Evaluator calling plurals for plural categories
// and values for number, date and time rendering.
func NewEvaluator(plurals PluralSelector, values ValueFormatter, opts ...EvaluatorOption) *Evaluator {
	if plurals == nil {
		panic("msgformat: plural selector is not provided")
	}
	if values == nil {
		panic("msgformat: value formatter is not provided")
	}
	e := &Evaluator{plurals: plurals, values: values}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Format is a one-shot form of (*Evaluator).Format.
func Format(m *Message, locale language.Tag, args Args, plurals PluralSelector, values ValueFormatter, opts ...EvaluatorOption) (string, error) {
	return NewEvaluator(plurals, values, opts...).Format(m, locale, args)
}

// Format renders m for locale. Any missing or mistyped argument fails
// the whole call with a *FormatError and an empty result.
func (e *Evaluator) Format(m *Message, locale language.Tag, args Args) (string, error) {
	var b strings.Builder
	st := &evalState{e: e, locale: locale, args: args, out: &b}
	if err := st.message(m, nil); err != nil {
		return "", err
	}
	return b.String(), nil
}

type evalState struct {
	e      *Evaluator
	locale language.Tag
	args   Args
	out    *strings.Builder
}

// message writes m. pound is the adjusted value of the nearest enclosing
// plural, nil at top level.
func (st *evalState) message(m *Message, pound *Value) error {
	for _, part := range m.parts {
		switch p := part.(type) {
		case *Literal:
			st.out.WriteString(p.text)
		case *SimpleArgument:
			v, err := st.lookup(p.name)
			if err != nil {
				return err
			}
			st.out.WriteString(v.String())
		case *NumberArgument:
			if err := st.formatted(p.name, KindNumber, Style{Type: StyleNumber, Text: p.style}); err != nil {
				return err
			}
		case *DateArgument:
			if err := st.formatted(p.name, KindDate, Style{Type: StyleDate, Text: p.style}); err != nil {
				return err
			}
		case *TimeArgument:
			if err := st.formatted(p.name, KindDate, Style{Type: StyleTime, Text: p.style}); err != nil {
				return err
			}
		case *PluralArgument:
			if err := st.plural(p); err != nil {
				return err
			}
		case *SelectArgument:
			if err := st.selectBranch(p, pound); err != nil {
				return err
			}
		case Pound:
			if st.e.literalPound {
				st.out.WriteByte('#')
			} else if pound != nil {
				st.out.WriteString(st.e.values.FormatValue(st.locale, *pound, Style{Type: StyleNumber}))
			}
		}
	}
	return nil
}

func (st *evalState) lookup(name string) (Value, error) {
	v, ok := st.args[name]
	if !ok {
		return Value{}, &FormatError{Kind: ErrMissingArgument, Argument: name}
	}
	return v, nil
}

func (st *evalState) typed(name string, want Kind) (Value, error) {
	v, err := st.lookup(name)
	if err != nil {
		return Value{}, err
	}
	if v.kind != want {
		return Value{}, &FormatError{Kind: ErrArgumentTypeMismatch, Argument: name, Expected: want, Actual: v.kind}
	}
	return v, nil
}

func (st *evalState) formatted(name string, want Kind, style Style) error {
	v, err := st.typed(name, want)
	if err != nil {
		return err
	}
	st.out.WriteString(st.e.values.FormatValue(st.locale, v, style))
	return nil
}

func (st *evalState) plural(p *PluralArgument) error {
	raw, err := st.typed(p.name, KindNumber)
	if err != nil {
		return err
	}

	adjusted, ok := raw.subtract(p.offset)
	if !ok {
		return &FormatError{Kind: ErrInvalidOffset, Argument: p.name}
	}

	// Exact keys compare against the raw value; categories against the adjusted one.
	if msg, ok := p.lookup(exactKey(raw)); ok {
		return st.message(msg, &adjusted)
	}
	category := st.e.plurals.SelectPlural(st.locale, adjusted, p.kind)
	msg, ok := p.lookup(string(category))
	if !ok {
		msg, _ = p.lookup(string(CategoryOther))
	}
	return st.message(msg, &adjusted)
}

func (st *evalState) selectBranch(p *SelectArgument, pound *Value) error {
	v, err := st.typed(p.name, KindString)
	if err != nil {
		return err
	}
	msg, ok := p.lookup(v.str)
	if !ok {
		msg, _ = p.lookup(string(CategoryOther))
	}
	return st.message(msg, pound)
}

// exactKey renders a number the way the parser canonicalises "=N" keys.
func exactKey(v Value) string {
	if v.isFloat {
		return "=" + strconv.FormatFloat(v.float, 'f', -1, 64)
	}
	return "=" + strconv.FormatInt(v.integer, 10)
}
