package service

// Fixed categories assigned from the post type selector.
const (
	categoryEntertainment = "Entertainment"
	categoryPolitics      = "Politics"
	categoryFootball      = "Football"
)

const (
	bodyMinTruncateLen = 20
	bodyKeepLen        = 97
	bodyEllipsis       = "..."
)

// deriveBodyAndCategory applies the field-derivation rules to a post input
// before it is mapped to storage form. It mutates body and category in place.
func deriveBodyAndCategory(body *string, postType int, category *string) {
	*body = truncateBody(*body)
	*category = categoryForType(postType, *category)
}

// truncateBody bounds long bodies: anything over 97 characters keeps the
// first 97 and gains a 3-character ellipsis, for a stored maximum of 100.
// Bodies of 97 characters or fewer pass through unchanged. Counted in runes
// so multi-byte input is never split mid-character.
func truncateBody(body string) string {
	if body == "" {
		return body
	}
	r := []rune(body)
	if len(r) <= bodyMinTruncateLen {
		return body
	}
	if len(r) > bodyKeepLen {
		return string(r[:bodyKeepLen]) + bodyEllipsis
	}
	return body
}

// categoryForType maps the type selector onto a fixed category. Unknown
// types leave the caller-supplied category unchanged.
func categoryForType(postType int, current string) string {
	switch postType {
	case 1:
		return categoryEntertainment
	case 2:
		return categoryPolitics
	case 3:
		return categoryFootball
	default:
		return current
	}
}
