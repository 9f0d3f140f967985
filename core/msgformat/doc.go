// Package msgformat compiles and renders ICU-style message patterns with
// plural, selectordinal and select placeholders that nest to any depth.
//
// Compilation turns a pattern into an immutable *Message once; rendering walks
// that tree with a locale and a set of typed arguments. The package knows no
// locale data itself: plural categories come from a PluralSelector and number,
// date and time text from a ValueFormatter, both supplied by the caller (the
// core/i18n package ships CLDR-backed implementations).
//
// # Basic Usage
//
//	msg, err := msgformat.Compile("{count, plural, =0{No files} one{# file} other{# files}} in {folder}")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	eval := msgformat.NewEvaluator(plurals, values)
//	out, err := eval.Format(msg, language.English, msgformat.Args{
//		"count":  msgformat.Int(3),
//		"folder": msgformat.String("Downloads"),
//	})
//	// out == "3 files in Downloads"
//
// # Pattern Syntax
//
//	{name}                               default string form of the argument
//	{name, number[, style]}              number through the ValueFormatter
//	{name, date[, style]}                date through the ValueFormatter
//	{name, time[, style]}                time through the ValueFormatter
//	{name, plural, [offset:N] key{...}}  cardinal plural; keys =N or zero|one|two|few|many|other
//	{name, selectordinal, key{...}}      ordinal plural
//	{name, select, key{...}}             keyword selection
//	#                                    inside a plural branch: the offset-adjusted value
//
// Every plural and select needs an other branch. Exact =N keys are matched
// against the raw argument value before any category lookup; categories and '#'
// use the value minus the offset.
//
// An Evaluator built with WithLiteralPound selects branches as usual but leaves
// '#' as literal text, for callers that substitute the count themselves.
//
// # Quoting
//
// Two apostrophes always produce one. A single apostrophe followed by '{', '}'
// or '#' starts a quoted run that ends at the next single apostrophe; everything
// inside is literal. Any other apostrophe is literal, so "it's" needs no escaping:
//
//	msgformat.MustCompile("it''s '{'literal'}'") // renders "it's {literal}"
//
// # Errors
//
// Compile returns *ParseError carrying the code-point offset and a kind that
// errors.Is matches against ErrUnbalancedBrace, ErrMissingOtherBranch and the
// other Err variables. Format returns *FormatError for ErrMissingArgument,
// ErrArgumentTypeMismatch and ErrInvalidOffset; a failing argument fails the
// whole call, there is no partial output.
//
// # Concurrency
//
// Messages and Evaluators carry no mutable state. One compiled Message may be
// rendered by any number of goroutines at once, which makes caching compiled
// messages per pattern safe. Nesting depth is bounded by DefaultMaxDepth
// (see WithMaxDepth) so untrusted patterns cannot exhaust the stack.
package msgformat
