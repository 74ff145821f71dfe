package model

import "strings"

// TagSeparator joins tags into the single stored column.
const TagSeparator = ","

// JoinTags encodes tags for storage. A nil slice encodes to nil (NULL).
func JoinTags(tags []string) *string {
	if tags == nil {
		return nil
	}
	joined := strings.Join(tags, TagSeparator)
	return &joined
}

// SplitTags decodes a stored tag column. NULL decodes to nil and the empty
// string to an empty, non-nil slice.
func SplitTags(joined *string) []string {
	if joined == nil {
		return nil
	}
	if *joined == "" {
		return []string{}
	}
	return strings.Split(*joined, TagSeparator)
}

// ParseTagInput splits comma separated user input into trimmed tags,
// dropping blanks. Blank input yields nil.
func ParseTagInput(s string) []string {
	var tags []string
	for _, part := range strings.Split(s, TagSeparator) {
		if part = strings.TrimSpace(part); part != "" {
			tags = append(tags, part)
		}
	}
	return tags
}
