package naming

import (
	"fmt"
	"math/big"
	"slices"
	"strings"
)

// Generator enumerates every concrete name formed by the cross-product of a
// template's slot vocabularies.
//
// Enumeration order is an external contract (exported CSVs are consumed by
// downstream tooling): odometer order, lexicographic over slot indices with
// the LAST template slot varying fastest. Scanning an export therefore reads
// grouped by the leading slot, which is the order users expect.
//
// A Generator is a snapshot: it copies the term lists at construction, so a
// cursor stays deterministic and restartable even if the Project is edited
// while an export is in flight.
type Generator struct {
	setName   string
	delimiter string
	slots     []string   // element name per template position
	factors   [][]string // term vocabulary per template position
	total     *big.Int
}

// NewGenerator builds a Generator for one NameSet against the Element
// registry. Templates referencing a missing Element are rejected with
// ErrUnknownElement; dangling references are never enumerated.
func NewGenerator(set *NameSet, elements *ElementRegistry) (*Generator, error) {
	g := &Generator{
		setName:   set.Name,
		delimiter: set.Delimiter,
		slots:     slices.Clone(set.Template),
		factors:   make([][]string, len(set.Template)),
	}
	for i, name := range set.Template {
		el := elements.Get(name)
		if el == nil {
			return nil, fmt.Errorf("%w: %s", ErrUnknownElement, name)
		}
		g.factors[i] = slices.Clone(el.Terms)
	}

	// Total count in big.Int: the product of factor sizes can exceed any
	// fixed-width integer long before the factors look suspicious, and the
	// count must be trustworthy pre-flight. An empty template enumerates to
	// an empty result, not to the single empty tuple.
	if len(g.factors) == 0 {
		g.total = big.NewInt(0)
	} else {
		g.total = big.NewInt(1)
		for _, factor := range g.factors {
			g.total.Mul(g.total, big.NewInt(int64(len(factor))))
		}
	}
	return g, nil
}

// SetName returns the name of the NameSet being enumerated.
func (g *Generator) SetName() string { return g.setName }

// Delimiter returns the NameSet's delimiter.
func (g *Generator) Delimiter() string { return g.delimiter }

// Slots returns the element name for each template position, in order.
// Used as the CSV header row.
func (g *Generator) Slots() []string { return g.slots }

// TotalCount returns the number of tuples the full enumeration yields:
// the product of the factor sizes, or 0 if any factor is empty or the
// template has no slots. Available before generation starts so callers can
// refuse oversized exports.
func (g *Generator) TotalCount() *big.Int {
	return new(big.Int).Set(g.total)
}

// EmptyReason reports why the enumeration is empty, when it is. An Element
// with zero terms is an absorbing factor: the whole cross-product collapses
// to nothing. This is a diagnostic for the UI, distinguishable from failure.
func (g *Generator) EmptyReason() (EmptyReason, bool) {
	if len(g.factors) == 0 {
		return EmptyReason{}, true
	}
	for i, factor := range g.factors {
		if len(factor) == 0 {
			return EmptyReason{Element: g.slots[i]}, true
		}
	}
	return EmptyReason{}, false
}

// TupleAt returns the k-th tuple of the enumeration, 0 <= k < TotalCount,
// by mixed-radix decomposition of k over the factor sizes. It is a pure
// function: TupleAt(k) equals the k-th tuple a Cursor yields.
func (g *Generator) TupleAt(k *big.Int) ([]string, error) {
	if k.Sign() < 0 || k.Cmp(g.total) >= 0 {
		return nil, fmt.Errorf("%w: tuple index %s of %s", ErrIndexOutOfRange, k, g.total)
	}

	tuple := make([]string, len(g.factors))
	rest := new(big.Int).Set(k)
	radix := new(big.Int)
	digit := new(big.Int)

	// Last slot is the least significant digit.
	for i := len(g.factors) - 1; i >= 0; i-- {
		radix.SetInt64(int64(len(g.factors[i])))
		rest.DivMod(rest, radix, digit)
		tuple[i] = g.factors[i][digit.Int64()]
	}
	return tuple, nil
}

// Render joins a tuple with the NameSet's delimiter. Identical join logic
// to RenderPreview, but over concrete values.
func (g *Generator) Render(tuple []string) string {
	return strings.Join(tuple, g.delimiter)
}

// Cursor returns a fresh lazy iterator over the enumeration. Multiple
// cursors over one Generator are independent; re-creating a cursor replays
// the identical sequence.
func (g *Generator) Cursor() *Cursor {
	c := &Cursor{g: g}
	c.Reset()
	return c
}

// Cursor lazily walks the cross-product in odometer order without
// materializing it. Abandoning a cursor mid-walk has no side effects; there
// is nothing to undo.
type Cursor struct {
	g    *Generator
	idx  []int
	done bool
}

// Reset rewinds the cursor to the first tuple.
func (c *Cursor) Reset() {
	c.idx = make([]int, len(c.g.factors))
	c.done = c.g.total.Sign() == 0
}

// Next returns the next tuple, or false when the enumeration is exhausted.
// The returned slice is freshly allocated; callers may retain it.
func (c *Cursor) Next() ([]string, bool) {
	if c.done {
		return nil, false
	}

	tuple := make([]string, len(c.idx))
	for i, j := range c.idx {
		tuple[i] = c.g.factors[i][j]
	}

	// Odometer increment: bump the last slot, carrying left on rollover.
	for i := len(c.idx) - 1; ; i-- {
		if i < 0 {
			c.done = true
			break
		}
		c.idx[i]++
		if c.idx[i] < len(c.g.factors[i]) {
			break
		}
		c.idx[i] = 0
	}

	return tuple, true
}
