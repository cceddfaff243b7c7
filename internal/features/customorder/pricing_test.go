package customorder

import (
	"testing"

	"github.com/atelier-arts/atelier-e-commerce-backend/internal/servererrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_EstimateRange(t *testing.T) {
	assert.Equal(t, PriceRange{Min: 50, Max: 150}, MaterialMosaic.EstimateRange())
	assert.Equal(t, PriceRange{Min: 20, Max: 60}, MaterialCharcoal.EstimateRange())
	assert.Equal(t, PriceRange{Min: 30, Max: 90}, MaterialAcrylic.EstimateRange())
	assert.Equal(t, PriceRange{Min: 20, Max: 100}, MaterialOther.EstimateRange())

	// an unparsed material still quotes the default bracket
	assert.Equal(t, PriceRange{Min: 20, Max: 100}, Material("gouache").EstimateRange())
}

func Test_ParseMaterial(t *testing.T) {
	assert.Equal(t, MaterialMosaic, ParseMaterial("mosaic"))
	assert.Equal(t, MaterialCharcoal, ParseMaterial("charcoal"))
	assert.Equal(t, MaterialAcrylic, ParseMaterial("acrylic"))

	// unknown media degrade instead of failing the submission
	assert.Equal(t, MaterialOther, ParseMaterial("gouache"))
	assert.Equal(t, MaterialOther, ParseMaterial(""))
	assert.Equal(t, MaterialOther, ParseMaterial("Mosaic"))
}

func Test_ParseStatus(t *testing.T) {
	for _, raw := range []string{"pending", "completed", "cancelled"} {
		status, err := ParseStatus(raw)
		require.NoError(t, err)
		assert.Equal(t, Status(raw), status)
	}

	_, err := ParseStatus("shipped")
	assert.ErrorIs(t, err, servererrors.ErrInvalidOrderStatus)
}
