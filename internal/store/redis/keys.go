package redis

const (
	// KeyPrefix namespaces every key written by the showcase.
	KeyPrefix = "showcase:"
	// DefaultDocumentKey is the fixed name of the cached document.
	DefaultDocumentKey = "mainra-games"
)

// DocumentKey returns the Redis key for the cached document named name.
func DocumentKey(name string) string {
	if name == "" {
		name = DefaultDocumentKey
	}
	return KeyPrefix + name
}
