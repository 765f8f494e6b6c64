package entity

// SearchFilter is a domain-level filter for substring search.
// Used by repository layer to avoid coupling with delivery DTOs;
// each repository matches it against its own fixed field set.
type SearchFilter struct {
	Query string // matched case-insensitively as a substring
}
