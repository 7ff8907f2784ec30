package cache

// ScopedKeyer wraps a Keyer with a prefix so several tools or users can
// share one Redis or MongoDB backend without key collisions.
//
// Example usage:
//
//	k := NewScopedKeyer(NewDefaultKeyer(), "lab-a:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// HintsKey generates a prefixed key for hints caching.
func (k *ScopedKeyer) HintsKey(pedigreeHash string, opts HintsKeyOpts) string {
	return k.prefix + k.inner.HintsKey(pedigreeHash, opts)
}

// LayoutKey generates a prefixed key for layout caching.
func (k *ScopedKeyer) LayoutKey(pedigreeHash string, opts LayoutKeyOpts) string {
	return k.prefix + k.inner.LayoutKey(pedigreeHash, opts)
}
