package propagation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFSPLZeroForNonPositiveInputs(t *testing.T) {
	assert.Equal(t, 0.0, FSPLDb(0, 100))
	assert.Equal(t, 0.0, FSPLDb(10, 0))
	assert.Equal(t, 0.0, FSPLDb(-1, 100))
}

func TestFSPLDoublingDistanceAdds6dB(t *testing.T) {
	l1 := FSPLDb(10, 144)
	l2 := FSPLDb(20, 144)
	assert.InDelta(t, 6.02, l2-l1, 0.01)
}

func TestFSPLDoublingFrequencyAdds6dB(t *testing.T) {
	l1 := FSPLDb(10, 144)
	l2 := FSPLDb(10, 288)
	assert.InDelta(t, 6.02, l2-l1, 0.01)
}

func TestFSPLReferenceValue(t *testing.T) {
	// 1 km at 145 MHz: 20*log10(1) + 20*log10(145) + 32.44
	l := FSPLDb(1, 145)
	assert.InDelta(t, 75.66, l, 0.1)
}
