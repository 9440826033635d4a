package redis

const (
	// KeyPrefixPage is the prefix for page snapshot keys
	KeyPrefixPage = "portfolio:page:"
	// KeyPrefixViews is the prefix for page view counters
	KeyPrefixViews = "portfolio:views:"
	// KeyAllPages is the key for the set of all page slugs
	KeyAllPages = "portfolio:pages:all"
)

// PageKey returns the Redis key for a page by slug
func PageKey(slug string) string {
	return KeyPrefixPage + slug
}

// ViewsKey returns the Redis key for the view counter of a page
func ViewsKey(slug string) string {
	return KeyPrefixViews + slug
}

// AllPagesKey returns the key for the set of all page slugs
func AllPagesKey() string {
	return KeyAllPages
}
