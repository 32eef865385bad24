package templates

import (
	"strings"
)

// DefaultPartialPrefix is the conventional prefix marking a template as a partial.
const DefaultPartialPrefix = "_"

// PartialName derives the name of a partial template from the name of a full template, by
// inserting the prefix before the last path segment. For example, with the prefix "_",
// "todos/todo_form.html" becomes "todos/_todo_form.html" and "form.html" becomes "_form.html".
func PartialName(name, prefix string) string {
	i := strings.LastIndex(name, "/")
	return name[:i+1] + prefix + name[i+1:]
}

// Resolver resolves partial template names by convention.
type Resolver struct {
	Prefix string
}

// NewResolver creates a [Resolver] with the provided prefix.
func NewResolver(prefix string) Resolver {
	return Resolver{Prefix: prefix}
}

// Partial returns the partial template name for the full template name.
func (r Resolver) Partial(name string) string {
	return PartialName(name, r.Prefix)
}

// Partials resolves each template name into its partial template name, preserving order so that
// template-engine fallback chains keep their priorities.
func (r Resolver) Partials(names []string) []string {
	partials := make([]string, len(names))
	for i, name := range names {
		partials[i] = r.Partial(name)
	}
	return partials
}

// StreamNames returns the template names to render for a fragment. An explicitly configured
// name takes precedence, and resolution is skipped entirely; only when no name is configured are
// the names resolved into partials. Presence is determined by configuredSet rather than by the
// configured name being non-empty, so an empty configured name is passed through to the template
// engine (where it will fail to match) instead of silently falling back to the partials.
func (r Resolver) StreamNames(configured string, configuredSet bool, names []string) []string {
	if configuredSet {
		return []string{configured}
	}
	return r.Partials(names)
}
