package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrymomot/messageformat/core/msgformat"
)

var errBadArgument = errors.New("bad argument")

// parseArgs turns "name=value" pairs into message arguments.
//
// Untyped values are read as an integer, then a float, then an RFC 3339
// timestamp, falling back to a string. A type suffix forces one reading:
// "name:s=007", "name:i=3", "name:f=2", "name:t=2024-03-05".
func parseArgs(pairs []string) (msgformat.Args, error) {
	args := make(msgformat.Args, len(pairs))
	for _, pair := range pairs {
		name, raw, ok := strings.Cut(pair, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("%w: %q is not name=value", errBadArgument, pair)
		}

		name, typ, _ := strings.Cut(name, ":")
		v, err := parseValue(typ, raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", errBadArgument, name, err)
		}
		args[name] = v
	}
	return args, nil
}

func parseValue(typ, raw string) (msgformat.Value, error) {
	switch typ {
	case "":
		if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
			return msgformat.Int(n), nil
		}
		if f, err := strconv.ParseFloat(raw, 64); err == nil {
			return msgformat.Float(f), nil
		}
		if t, err := time.Parse(time.RFC3339, raw); err == nil {
			return msgformat.Date(t), nil
		}
		return msgformat.String(raw), nil
	case "s":
		return msgformat.String(raw), nil
	case "i":
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return msgformat.Value{}, err
		}
		return msgformat.Int(n), nil
	case "f":
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return msgformat.Value{}, err
		}
		return msgformat.Float(f), nil
	case "t":
		for _, layout := range []string{time.RFC3339, time.DateOnly, time.DateTime} {
			if t, err := time.Parse(layout, raw); err == nil {
				return msgformat.Date(t), nil
			}
		}
		return msgformat.Value{}, fmt.Errorf("%q is not a date or time", raw)
	default:
		return msgformat.Value{}, fmt.Errorf("unknown type %q", typ)
	}
}
