// SPDX-License-Identifier: MPL-2.0

package names

// ParseDataString reads the machine-readable form produced by AsDataString
// and returns a StringArrayName holding the unescaped components. opts choose
// the display delimiter of the result; the data string itself is always
// split on DefaultDelimiter.
//
// The empty string parses to a name with zero components.
func ParseDataString(data string, opts ...Option) (*StringArrayName, error) {
	const op = "ParseDataString"
	if err := requireText(op, data); err != nil {
		return nil, err
	}
	masked := SplitMasked(data, DefaultDelimiter)
	components := make([]string, len(masked))
	for i, m := range masked {
		c, err := UnescapeComponent(m)
		if err != nil {
			return nil, &PreconditionError{Op: op, Reason: "malformed data string", Cause: err}
		}
		components[i] = c
	}

	result, err := NewStringArrayName(components, opts...)
	if err != nil {
		return nil, err
	}

	if err := ensure(len(result.components) == len(masked), op,
		"parsed %d components from %d fields", len(result.components), len(masked)); err != nil {
		return nil, err
	}
	return result, nil
}

// Parse reads s as a packed, masked name using the delimiter from opts and
// builds the requested variant. For VariantString the packed text is kept
// as is. For VariantArray each field is unescaped into a raw component, so
// `a\.b.c` yields the components "a.b" and "c".
func Parse(variant Variant, s string, opts ...Option) (Name, error) {
	const op = "Parse"
	if err := variant.Validate(); err != nil {
		return nil, &PreconditionError{Op: op, Reason: "unknown variant", Cause: err}
	}
	if variant == VariantString {
		return NewStringName(s, opts...)
	}

	d, err := resolveDelimiter(op, opts)
	if err != nil {
		return nil, err
	}
	if err := requireText(op, s); err != nil {
		return nil, err
	}
	masked := SplitMasked(s, d)
	components := make([]string, len(masked))
	for i, m := range masked {
		if components[i], err = UnescapeComponent(m); err != nil {
			return nil, &PreconditionError{Op: op, Reason: "malformed packed name", Cause: err}
		}
	}
	return NewStringArrayName(components, opts...)
}
