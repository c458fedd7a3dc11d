package match

// Any reports whether at least one of values matches pattern in its entirety, ignoring case.
// An empty set never matches.
func Any(values []*string, pattern string) (bool, error) {
	re, err := compileMatch(pattern)
	if err != nil {
		return false, err
	}

	for _, value := range values {
		if value != nil && re.MatchString(*value) {
			return true, nil
		}
	}

	return false, nil
}

// AnyWithGroups works like Any and collects the groups of every value that matched,
// in the order of values. Values that did not match pattern contribute no groups.
func AnyWithGroups(values []*string, pattern, groupPattern string) (Result, error) {
	re, err := compileMatch(pattern)
	if err != nil {
		return Result{}, err
	}

	groupRe, err := compileGroup(groupPattern)
	if err != nil {
		return Result{}, err
	}

	var result Result
	for _, value := range values {
		if value == nil || !re.MatchString(*value) {
			continue
		}
		result.Matched = true
		result.Groups = append(result.Groups, captureAll(groupRe, *value)...)
	}

	return result, nil
}

// Values projects items onto one of their text fields, keeping the order of items.
func Values[T any](items []T, get func(T) *string) []*string {
	values := make([]*string, 0, len(items))
	for _, item := range items {
		values = append(values, get(item))
	}
	return values
}
