package core

import "strings"

// NormalizeTag converts a free-form tag string to its canonical form:
// case-folded, whitespace and underscores collapsed to single dashes,
// with "/" preserved as the hierarchy separator.
func NormalizeTag(tag string) string {
	tag = strings.ToLower(strings.TrimSpace(tag))
	if tag == "" {
		return ""
	}

	segments := strings.Split(tag, "/")
	cleaned := segments[:0]
	for _, segment := range segments {
		segment = strings.Map(func(r rune) rune {
			switch {
			case r == ' ' || r == '\t' || r == '_':
				return '-'
			default:
				return r
			}
		}, strings.TrimSpace(segment))
		// Collapse dash runs left behind by mixed separators.
		for strings.Contains(segment, "--") {
			segment = strings.ReplaceAll(segment, "--", "-")
		}
		segment = strings.Trim(segment, "-")
		if segment != "" {
			cleaned = append(cleaned, segment)
		}
	}
	return strings.Join(cleaned, "/")
}

// NormalizeTags normalizes each tag and drops empties.
func NormalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		if normalized := NormalizeTag(tag); normalized != "" {
			out = append(out, normalized)
		}
	}
	return out
}

// TagSatisfies reports whether a note tag satisfies a required tag.
// A required tag is satisfied by itself or any hierarchical descendant:
// "food/recipes" is satisfied by "food/recipes/desserts" but "food" is
// not satisfied by "food/recipes" being required.
func TagSatisfies(required, tag string) bool {
	required = NormalizeTag(required)
	tag = NormalizeTag(tag)
	if required == "" {
		return true
	}
	return tag == required || strings.HasPrefix(tag, required+"/")
}

// HasTag reports whether any of the note's tags satisfies the required tag.
func HasTag(tags []string, required string) bool {
	for _, tag := range tags {
		if TagSatisfies(required, tag) {
			return true
		}
	}
	return false
}

// MissingTags returns the required tags that no note tag satisfies.
func MissingTags(tags, required []string) []string {
	var missing []string
	for _, req := range required {
		if !HasTag(tags, req) {
			missing = append(missing, NormalizeTag(req))
		}
	}
	return missing
}
