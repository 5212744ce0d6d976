package motion

import (
	"errors"
	"math"
	"sync"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProjector struct {
	calls int
	out   mgl32.Vec3
	err   error
}

func (f *fakeProjector) ProjectPointer(x, y float64, width, height int) (mgl32.Vec3, error) {
	f.calls++
	return f.out, f.err
}

func TestPointerCell_KeepsLatest(t *testing.T) {
	var cell PointerCell
	_, ok := cell.Load()
	assert.False(t, ok)

	cell.Store(1, 2, 800, 600)
	cell.Store(3, 4, 800, 600)

	s, ok := cell.Load()
	require.True(t, ok)
	assert.Equal(t, 3.0, s.X)
	assert.Equal(t, 4.0, s.Y)
	assert.Equal(t, uint64(2), s.Seq)
}

func TestPointerCell_ConcurrentWriter(t *testing.T) {
	var cell PointerCell
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 1000; i++ {
			cell.Store(float64(i), float64(i), 100, 100)
		}
	}()
	for i := 0; i < 1000; i++ {
		if s, ok := cell.Load(); ok {
			require.Equal(t, s.X, s.Y)
		}
	}
	wg.Wait()

	s, _ := cell.Load()
	assert.Equal(t, 999.0, s.X)
}

func TestPointerTracker_ProjectsNewSamplesOnly(t *testing.T) {
	var cell PointerCell
	proj := &fakeProjector{out: mgl32.Vec3{1, 2, 0}}
	var tr PointerTracker

	p, err := tr.Update(&cell, proj)
	require.NoError(t, err)
	assert.Equal(t, mgl32.Vec3{}, p)
	assert.Equal(t, 0, proj.calls)

	cell.Store(10, 10, 100, 100)
	p, err = tr.Update(&cell, proj)
	require.NoError(t, err)
	assert.Equal(t, mgl32.Vec3{1, 2, 0}, p)

	_, _ = tr.Update(&cell, proj)
	assert.Equal(t, 1, proj.calls)
}

func TestPointerTracker_KeepsLastValid(t *testing.T) {
	var cell PointerCell
	proj := &fakeProjector{out: mgl32.Vec3{1, 2, 0}}
	var tr PointerTracker

	cell.Store(10, 10, 100, 100)
	_, err := tr.Update(&cell, proj)
	require.NoError(t, err)

	degenerate := errors.New("parallel")
	proj.err = degenerate
	cell.Store(20, 20, 100, 100)
	p, err := tr.Update(&cell, proj)
	assert.ErrorIs(t, err, degenerate)
	assert.Equal(t, mgl32.Vec3{1, 2, 0}, p)

	proj.err = nil
	proj.out = mgl32.Vec3{float32(math.NaN()), 0, 0}
	cell.Store(30, 30, 100, 100)
	p, err = tr.Update(&cell, proj)
	assert.ErrorIs(t, err, ErrNonFinite)
	assert.Equal(t, mgl32.Vec3{1, 2, 0}, p)
	assert.Equal(t, 2, tr.Rejected())
	assert.Equal(t, mgl32.Vec3{1, 2, 0}, tr.Current())
}
