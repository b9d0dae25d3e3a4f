// Package bloom remembers which URLs an import has already seen using a
// Bloom filter.
package bloom

import "github.com/bits-and-blooms/bloom/v3"

// DefaultFalsePositiveRate is the false positive rate of NewURLFilter.
const DefaultFalsePositiveRate = 0.001

// minCapacity keeps small imports from producing a degenerate filter.
const minCapacity = 1024

// Filter is a Bloom filter over URLs. A negative answer is certain; a
// positive answer must be confirmed by the caller.
// Filter is not safe for concurrent use.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter creates a filter sized for n expected URLs with the given false
// positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{
		f: bloom.NewWithEstimates(max(n, minCapacity), fpRate),
	}
}

// NewURLFilter creates a filter sized for n URLs at DefaultFalsePositiveRate.
func NewURLFilter(n int) *Filter {
	return NewFilter(uint(max(n, 0)), DefaultFalsePositiveRate)
}

// Add records url.
func (f *Filter) Add(url string) {
	f.f.AddString(url)
}

// Test reports whether url may have been added.
func (f *Filter) Test(url string) bool {
	return f.f.TestString(url)
}

// TestAndAdd reports whether url may have been added, then records it.
func (f *Filter) TestAndAdd(url string) bool {
	return f.f.TestAndAddString(url)
}

// EstimatedCount returns the approximate number of URLs recorded.
func (f *Filter) EstimatedCount() uint {
	return uint(f.f.ApproximatedSize())
}
