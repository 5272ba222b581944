// Package discovery finds candidate posts for a search query, one source per
// platform. Each source wraps one or more upstream providers and degrades
// gracefully: provider failures fall back to a secondary strategy where one
// exists, and to an empty candidate set otherwise.
package discovery
