// Package bloom provides a Bloom-filter guard for document caches.
package bloom

import "github.com/bits-and-blooms/bloom/v3"

// Filter answers cache key membership tests probabilistically. It is
// not safe for concurrent use; CacheGuard adds the locking.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter sizes the underlying bit set for n expected keys at the
// given false-positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Add records a key in the filter.
func (f *Filter) Add(key string) {
	f.f.AddString(key)
}

// Test reports whether key may have been added. A true result can be
// wrong at the configured rate; a false result never is.
func (f *Filter) Test(key string) bool {
	return f.f.TestString(key)
}

// Reset clears the filter back to empty.
func (f *Filter) Reset() {
	f.f.ClearAll()
}

// EstimatedCount approximates how many distinct keys were added.
func (f *Filter) EstimatedCount() uint {
	return uint(f.f.ApproximatedSize())
}
