// SPDX-License-Identifier: MIT
package transform_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/katalvlaran/harmonic/fraction"
	"github.com/katalvlaran/harmonic/sequence"
	"github.com/katalvlaran/harmonic/transform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustSeq(t *testing.T, vs ...int64) sequence.Base {
	t.Helper()
	s, err := sequence.New(vs...)
	require.NoError(t, err)

	return s
}

// TestStandardRegistry lists the preloaded names in order.
func TestStandardRegistry(t *testing.T) {
	t.Parallel()

	r := transform.Standard(sequence.Default(), transform.DefaultMultiplier)
	assert.Equal(t, []string{
		"base_lookup", "digital_root", "double", "half",
		"identity", "reciprocal", "scale432", "square",
	}, r.Names())

	sq, err := r.Lookup("square")
	require.NoError(t, err)
	assert.Equal(t, "9/1", apply(t, sq, fraction.FromInt(3)).String())

	_, err = r.Lookup("cube")
	require.ErrorIs(t, err, transform.ErrUnknownTransform)
}

// TestRegistry_Register covers duplicates and zero transforms.
func TestRegistry_Register(t *testing.T) {
	t.Parallel()

	r := transform.NewRegistry()
	assert.Empty(t, r.Names())
	require.NoError(t, r.Register(transform.Double))
	require.ErrorIs(t, r.Register(transform.Double), transform.ErrDuplicate)
	require.ErrorIs(t, r.Register(transform.Transform{}), transform.ErrNilOperation)
	assert.Equal(t, []string{"double"}, r.Names())
}

// TestRegistry_Pipeline parses comma-separated names.
func TestRegistry_Pipeline(t *testing.T) {
	t.Parallel()

	r := transform.Standard(sequence.Default(), 3)

	p, err := r.Pipeline(" double , square ")
	require.NoError(t, err)
	assert.Equal(t, "double,square", p.Name())
	assert.Equal(t, "16/1", apply(t, p, fraction.FromInt(2)).String())

	again, err := r.Pipeline(p.Name())
	require.NoError(t, err)
	assert.Equal(t, p.Name(), again.Name())

	p, err = r.Pipeline("scale3,base_lookup")
	require.NoError(t, err)
	assert.Equal(t, int64(8), apply(t, p, fraction.FromInt(1)).Num())

	_, err = r.Pipeline(" , ")
	require.ErrorIs(t, err, transform.ErrEmptyPipeline)
	_, err = r.Pipeline("double,cube")
	require.ErrorIs(t, err, transform.ErrUnknownTransform)
}

// TestRegistry_Concurrent registers and looks up from many goroutines.
func TestRegistry_Concurrent(t *testing.T) {
	t.Parallel()

	r := transform.NewRegistry()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = r.Register(transform.Scale(int64(i)))
			_, _ = r.Lookup(fmt.Sprintf("scale%d", i))
			_ = r.Names()
		}(i)
	}
	wg.Wait()
	assert.Len(t, r.Names(), 16)
}
