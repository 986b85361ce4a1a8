// Package masking redacts user PII from log output. Chat text flows through
// structured logs at several stages; everything logged goes through the
// service first so raw contact details never land on disk.
package masking

// Masker is the interface for code-based maskers that need structural
// awareness beyond regex matching, e.g. masking values of sensitive keys
// inside a JSON document without touching the rest.
type Masker interface {
	// Name returns the unique identifier for this masker.
	Name() string

	// AppliesTo performs a lightweight check on whether this masker should
	// process the data. Should be fast (string contains, not parsing).
	AppliesTo(data string) bool

	// Mask applies masking logic and returns the masked result. Must be
	// defensive: return original data on parse errors.
	Mask(data string) string
}
