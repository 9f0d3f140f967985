package i18n

// M is a convenience type for loosely typed message arguments. Values are
// converted with msgformat.ArgsFrom: strings, numbers, time.Time and
// fmt.Stringer are accepted.
type M map[string]any
