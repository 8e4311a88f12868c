package cache

// Keyer derives cache keys.
type Keyer interface {
	// ResultKey returns the key of the automorphism group of the graph with
	// the given hash.
	ResultKey(graphHash string) string
}

// resultVersion is bumped whenever the stored result format changes.
const resultVersion = "v1"

// DefaultKeyer produces keys of the form "result:v1:<sha256>".
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// ResultKey implements Keyer.
func (DefaultKeyer) ResultKey(graphHash string) string {
	return hashKey("result:"+resultVersion, graphHash)
}

// ScopedKeyer wraps a Keyer with a prefix, so several deployments can share
// one Redis or MongoDB backend.
//
//	keyer := cache.NewScopedKeyer(cache.NewDefaultKeyer(), "autgroup:")
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

// ResultKey implements Keyer.
func (k *ScopedKeyer) ResultKey(graphHash string) string {
	return k.prefix + k.inner.ResultKey(graphHash)
}
