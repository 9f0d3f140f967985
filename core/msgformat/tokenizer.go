package msgformat

import "strings"

type tokenKind uint8

const (
	tokenText tokenKind = iota
	tokenOpen
	tokenClose
	tokenComma
	tokenPound
)

func (k tokenKind) String() string {
	switch k {
	case tokenOpen:
		return "'{'"
	case tokenClose:
		return "'}'"
	case tokenComma:
		return "','"
	case tokenPound:
		return "'#'"
	default:
		return "text"
	}
}

// token is a literal span or a structural character.
// pos is the code-point offset of the first character it covers.
type token struct {
	kind tokenKind
	text string
	pos  int
}

// tokenize classifies every code point of pattern as literal or structural.
// Quotes are resolved here, so Text tokens hold final output text.
func tokenize(pattern string) ([]token, error) {
	runes := []rune(pattern)
	n := len(runes)

	var (
		tokens    []token
		buf       strings.Builder
		textStart = -1
	)

	appendText := func(i int, r rune) {
		if textStart < 0 {
			textStart = i
		}
		buf.WriteRune(r)
	}
	flush := func() {
		if textStart < 0 {
			return
		}
		tokens = append(tokens, token{kind: tokenText, text: buf.String(), pos: textStart})
		buf.Reset()
		textStart = -1
	}

	for i := 0; i < n; {
		r := runes[i]
		switch r {
		case '\'':
			if i+1 < n && runes[i+1] == '\'' {
				appendText(i, '\'')
				i += 2
				continue
			}
			if i+1 < n && isQuotable(runes[i+1]) {
				start := i
				if textStart < 0 {
					textStart = start
				}
				i++
				closed := false
				for i < n {
					if runes[i] == '\'' {
						if i+1 < n && runes[i+1] == '\'' {
							buf.WriteRune('\'')
							i += 2
							continue
						}
						i++
						closed = true
						break
					}
					buf.WriteRune(runes[i])
					i++
				}
				if !closed {
					return nil, newParseError(ErrUnterminatedQuote, start, "quoted literal is never closed")
				}
				continue
			}
			appendText(i, r)
			i++
		case '{', '}', ',', '#':
			flush()
			tokens = append(tokens, token{kind: structural(r), text: string(r), pos: i})
			i++
		default:
			appendText(i, r)
			i++
		}
	}
	flush()

	return tokens, nil
}

// isQuotable reports whether an apostrophe before r opens a quoted run.
func isQuotable(r rune) bool {
	return r == '{' || r == '}' || r == '#'
}

func structural(r rune) tokenKind {
	switch r {
	case '{':
		return tokenOpen
	case '}':
		return tokenClose
	case ',':
		return tokenComma
	default:
		return tokenPound
	}
}
