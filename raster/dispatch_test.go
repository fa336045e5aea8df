package raster

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-rgba/internal/cpu"
)

// resetBestForTest forces the next Best call to select again, and restores
// real detection when t ends.
func resetBestForTest(t *testing.T) {
	t.Helper()
	bestKernel = Kernel{}
	bestInitOnce = sync.Once{}

	t.Cleanup(func() {
		cpu.ResetDetection()
		bestKernel = Kernel{}
		bestInitOnce = sync.Once{}
	})
}

func TestNoSIMDEnvSelectsGeneric(t *testing.T) {
	t.Setenv(cpu.NoSIMDEnv, "1")
	cpu.ResetDetection()
	resetBestForTest(t)

	assert.Equal(t, "generic", Best().Name())
	assert.Equal(t, 1, Best().Lanes())
}

func TestRegisteredIncludesGeneric(t *testing.T) {
	reg := Registered()
	require.NotEmpty(t, reg)

	assert.Equal(t, "generic", reg[len(reg)-1].Name(), "generic has the lowest priority")
	for i := 1; i < len(reg); i++ {
		assert.GreaterOrEqual(t, reg[i-1].entry.Priority, reg[i].entry.Priority)
	}
}

func TestSelect(t *testing.T) {
	tests := []struct {
		name  string
		want  string
		lanes int
	}{
		{"generic", "generic", 1},
		{"portable", "generic", 1},
		{"scalar", "generic", 1},
		{"wide", "wide", 8},
		{"narrow", "narrow", 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k, err := Select(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.want, k.Name())
			assert.Equal(t, tt.lanes, k.Lanes())
		})
	}

	best, err := Select("")
	require.NoError(t, err)
	assert.Equal(t, Best().Name(), best.Name())

	for _, k := range Registered() {
		got, err := Select(k.Name())
		require.NoError(t, err)
		assert.Equal(t, k.Name(), got.Name())
	}

	_, err = Select("mmx")
	assert.ErrorIs(t, err, ErrUnknownVariant)
}

func TestZeroKernelReturnsError(t *testing.T) {
	k, err := Select("mmx")
	require.ErrorIs(t, err, ErrUnknownVariant)

	pix := make([]byte, 16)
	assert.ErrorIs(t, k.Fill(pix, 2, 2, White), ErrUnknownVariant)
	assert.ErrorIs(t, k.Blend(pix, pix, 2, 2, 2, 2, 0, 0), ErrUnknownVariant)
	assert.ErrorIs(t, k.Blit(pix, 2, 2, pix, 2, 2, 0, 0), ErrUnknownVariant)
	assert.ErrorIs(t, k.Resize(pix, pix, 2, 2, 2, 2), ErrUnknownVariant)
	assert.ErrorIs(t, Kernel{}.ResizeWith(FloatingPoint, pix, pix, 2, 2, 2, 2), ErrUnknownVariant)
	assert.Equal(t, make([]byte, 16), pix)
}

func TestKernelString(t *testing.T) {
	assert.Equal(t, "wide(8 lanes, None)", Wide().String())
	assert.Equal(t, "narrow(4 lanes, None)", Narrow().String())
	assert.Equal(t, "generic(1 lanes, None)", Portable().String())
}
