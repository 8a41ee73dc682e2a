package propagation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOkumuraHataFallsBackToFSPLOutsideValidRange(t *testing.T) {
	assert.Equal(t, FSPLDb(0.05, 400), OkumuraHataLoss(0.05, 400, GroundUrban, 30, 2))
	assert.Equal(t, FSPLDb(5, 2000), OkumuraHataLoss(5, 2000, GroundUrban, 30, 2))
}

func TestOkumuraHataOrderingByGroundType(t *testing.T) {
	open := OkumuraHataLoss(5, 400, GroundOpenLand, 30, 2)
	suburban := OkumuraHataLoss(5, 400, GroundSuburban, 30, 2)
	urban := OkumuraHataLoss(5, 400, GroundUrban, 30, 2)
	assert.Less(t, open, suburban)
	assert.Less(t, suburban, urban)
}

func TestOkumuraHataUrbanAndDenseUrbanEqual(t *testing.T) {
	urban := OkumuraHataLoss(5, 400, GroundUrban, 30, 2)
	dense := OkumuraHataLoss(5, 400, GroundDenseUrban, 30, 2)
	assert.Equal(t, urban, dense)
}
