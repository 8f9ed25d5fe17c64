// Package bloom provides article link deduplication using Bloom filters.
package bloom

import (
	"github.com/AlexJubs/helpcenter"
	"github.com/bits-and-blooms/bloom/v3"
)

// Sizing used by the CLI's --dedupe flag.
const (
	DefaultCapacity          = 10000
	DefaultFalsePositiveRate = 0.0001
)

// Ensure Filter implements helpcenter.LinkFilter at compile time.
var _ helpcenter.LinkFilter = (*Filter)(nil)

// Filter wraps a Bloom filter for link deduplication.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter creates a new Bloom filter sized for n expected links
// with the given false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Seen adds the link to the filter and reports whether it might have been
// added before. False positives are possible; false negatives are not.
func (f *Filter) Seen(link string) bool {
	return f.f.TestAndAddString(link)
}

// EstimatedCount returns the approximate number of links in the filter.
func (f *Filter) EstimatedCount() uint {
	return uint(f.f.ApproximatedSize())
}
