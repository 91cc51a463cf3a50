package production_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kavins/produccion-api/internal/domain/entity"
	"github.com/kavins/produccion-api/internal/domain/production"
)

func TestNormalizeCutItems_GrillaDigitada(t *testing.T) {
	items := []entity.OrderItem{{
		Color: "Azul",
		Sizes: entity.SizeMap{entity.SizeP: 10, entity.SizeM: 10, entity.SizeG: 10, entity.SizeGG: 10},
	}}

	out := production.NormalizeCutItems(items)

	require.Len(t, out, 1)
	assert.Equal(t, 40, out[0].ActualPieces)
}

func TestNormalizeCutItems_GrillaVaciaUsaEstimacion(t *testing.T) {
	items := []entity.OrderItem{{
		Color:            "Negro",
		PiecesPerSizeEst: 25,
		Sizes:            entity.SizeMap{},
	}}

	out := production.NormalizeCutItems(items)

	require.Len(t, out, 1)
	// Distribución uniforme sobre P/M/G/GG
	assert.Equal(t, 100, out[0].ActualPieces)
	for _, s := range entity.StandardSizes {
		assert.Equal(t, 25, out[0].Sizes.Get(s))
	}
	assert.Zero(t, out[0].Sizes.Get(entity.SizeG1))
}

func TestNormalizeCutItems_SinEstimacionQuedaEnCero(t *testing.T) {
	out := production.NormalizeCutItems([]entity.OrderItem{{Color: "Rojo", Sizes: entity.SizeMap{}}})
	require.Len(t, out, 1)
	assert.Zero(t, out[0].ActualPieces)
	assert.Zero(t, out[0].Sizes.Total())
}

func TestNormalizeCutItems_NoComparteMemoriaConLaEntrada(t *testing.T) {
	items := []entity.OrderItem{{Color: "Azul", Sizes: entity.SizeMap{entity.SizeP: 5}}}

	out := production.NormalizeCutItems(items)
	out[0].Sizes[entity.SizeP] = 99

	assert.Equal(t, 5, items[0].Sizes.Get(entity.SizeP))
}

func TestAggregateFabricUsage_SumaClavesDuplicadas(t *testing.T) {
	items := []entity.OrderItem{
		{FabricName: "Malha", Color: "Azul", RollsUsed: decimal.NewFromFloat(1.5)},
		{FabricName: "Malha", Color: "Azul", RollsUsed: decimal.NewFromFloat(0.5)},
		{FabricName: "Malha", Color: "Negro", RollsUsed: decimal.NewFromInt(3)},
	}

	usage := production.AggregateFabricUsage(items)

	require.Len(t, usage, 2)
	azul := usage[production.FabricKey{Fabric: "Malha", Color: "Azul"}]
	negro := usage[production.FabricKey{Fabric: "Malha", Color: "Negro"}]
	assert.True(t, azul.Equal(decimal.NewFromInt(2)), "esperaba 2 rollos, obtuvo %s", azul)
	assert.True(t, negro.Equal(decimal.NewFromInt(3)))
}
