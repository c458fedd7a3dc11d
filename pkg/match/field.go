package match

// Field reports whether value matches pattern in its entirety, ignoring case.
// A nil value never matches. An unusable pattern is reported as ErrInvalidPattern before the value is looked at.
func Field(value *string, pattern string) (bool, error) {
	re, err := compileMatch(pattern)
	if err != nil {
		return false, err
	}

	if value == nil {
		return false, nil
	}

	return re.MatchString(*value), nil
}

// FieldWithGroups works like Field and, when value matched, collects every capturing group
// of every occurrence of groupPattern found in value.
func FieldWithGroups(value *string, pattern, groupPattern string) (Result, error) {
	re, err := compileMatch(pattern)
	if err != nil {
		return Result{}, err
	}

	groupRe, err := compileGroup(groupPattern)
	if err != nil {
		return Result{}, err
	}

	if value == nil || !re.MatchString(*value) {
		return Result{}, nil
	}

	return Result{
		Matched: true,
		Groups:  captureAll(groupRe, *value),
	}, nil
}
