package nicecolors

// MarshalText implements encoding.TextMarshaler, emitting the canonical
// "#RRGGBB" form. Together with UnmarshalText this lets Color round-trip
// through encoding/json, yaml and any other framework that honors the
// encoding interfaces, as a single string field.
func (c Color) MarshalText() ([]byte, error) {
	return []byte("#" + c.Hex()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It accepts every syntax
// Parse accepts and reports ErrInvalidColor otherwise.
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
