package cache

// Keyer derives cache keys. Implementations must be deterministic and must
// produce different keys whenever an option that changes the cached value
// differs.
type Keyer interface {
	// HintsKey is the key for hints generated for a pedigree.
	HintsKey(pedigreeHash string, opts HintsKeyOpts) string
	// LayoutKey is the key for a layout of a pedigree under given hints.
	LayoutKey(pedigreeHash string, opts LayoutKeyOpts) string
}

// HintsKeyOpts are the options that influence generated hints.
type HintsKeyOpts struct {
	Packed bool      `json:"packed"`
	Align  []float64 `json:"align,omitempty"`
	Engine string    `json:"engine"`
}

// LayoutKeyOpts are the options that influence a layout.
type LayoutKeyOpts struct {
	Packed    bool      `json:"packed"`
	Align     []float64 `json:"align,omitempty"`
	Engine    string    `json:"engine"`
	HintsHash string    `json:"hints_hash"`
}

// DefaultKeyer hashes the options into the key.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the standard keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// HintsKey returns "hints:<sha256>".
func (DefaultKeyer) HintsKey(pedigreeHash string, opts HintsKeyOpts) string {
	return hashKey("hints", pedigreeHash, opts)
}

// LayoutKey returns "layout:<sha256>".
func (DefaultKeyer) LayoutKey(pedigreeHash string, opts LayoutKeyOpts) string {
	return hashKey("layout", pedigreeHash, opts)
}
