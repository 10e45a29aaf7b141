package store

import (
	"strings"

	"github.com/studio-ormeau/folio/pkg/api"
)

// Derive computes the view list for a cache: an item passes iff it
// matches the search term (vacuously true when empty) AND the filter
// (nil means no filter). Pure and idempotent; preserves input order.
func Derive[T any](items []T, term string, matches func(T, string) bool, filter func(T) bool) []T {
	term = strings.ToLower(strings.TrimSpace(term))

	view := make([]T, 0, len(items))
	for _, item := range items {
		if term != "" && !matches(item, term) {
			continue
		}
		if filter != nil && !filter(item) {
			continue
		}
		view = append(view, item)
	}
	return view
}

// containsFold reports whether s contains term, case-insensitively.
// term must already be lowercased.
func containsFold(s, term string) bool {
	return strings.Contains(strings.ToLower(s), term)
}

// ProjectMatches searches title, description, and tag names.
func ProjectMatches(p api.Project, term string) bool {
	if containsFold(p.Title, term) || containsFold(p.Description, term) {
		return true
	}
	for _, tag := range p.Tags {
		if containsFold(tag, term) {
			return true
		}
	}
	return false
}

// SkillMatches searches the skill name.
func SkillMatches(s api.Skill, term string) bool {
	return containsFold(s.Name, term)
}

// ContactMatches searches sender name, email, and subject.
func ContactMatches(c api.Contact, term string) bool {
	return containsFold(c.Name, term) || containsFold(c.Email, term) || containsFold(c.Subject, term)
}

// Filter values understood by the project screen: FilterAll, "featured",
// or "tag:<name>".
const (
	FilterAll      = "all"
	FilterFeatured = "featured"
	FilterRead     = "read"
	FilterUnread   = "unread"
	tagPrefix      = "tag:"
)

// ProjectFilter builds the filter predicate for the project screen.
func ProjectFilter(filter string) func(api.Project) bool {
	switch {
	case filter == "" || filter == FilterAll:
		return nil
	case filter == FilterFeatured:
		return func(p api.Project) bool { return p.Featured }
	case strings.HasPrefix(filter, tagPrefix):
		name := strings.ToLower(strings.TrimPrefix(filter, tagPrefix))
		return func(p api.Project) bool {
			for _, tag := range p.Tags {
				if strings.ToLower(tag) == name {
					return true
				}
			}
			return false
		}
	default:
		// Unknown filters pass nothing rather than silently meaning "all".
		return func(api.Project) bool { return false }
	}
}

// SkillFilter builds the filter predicate for the skill screen; filter is
// a category name or "all".
func SkillFilter(filter string) func(api.Skill) bool {
	if filter == "" || filter == FilterAll {
		return nil
	}
	return func(s api.Skill) bool { return s.Category == filter }
}

// ContactFilter builds the filter predicate for the inbox: all, read,
// or unread.
func ContactFilter(filter string) func(api.Contact) bool {
	switch filter {
	case "", FilterAll:
		return nil
	case FilterRead:
		return func(c api.Contact) bool { return c.Read }
	case FilterUnread:
		return func(c api.Contact) bool { return !c.Read }
	default:
		return func(api.Contact) bool { return false }
	}
}
