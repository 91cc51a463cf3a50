package production_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kavins/produccion-api/internal/domain"
	"github.com/kavins/produccion-api/internal/domain/entity"
	"github.com/kavins/produccion-api/internal/application/production"
)

func rolls(f float64) decimal.Decimal { return decimal.NewFromFloat(f) }

func azulFabric(stock float64) *entity.Fabric {
	return &entity.Fabric{ID: "fab-1", Name: "Malha Azul", Color: "Azul", StockRolls: rolls(stock)}
}

func plannedOrder() *entity.ProductionOrder {
	return &entity.ProductionOrder{
		ID:            "ord-1",
		ReferenceCode: "REF-100",
		Status:        entity.StatusPlanned,
		Items: []entity.OrderItem{{
			ProductID:     "prod-1",
			ReferenceCode: "REF-100",
			Color:         "Azul",
			FabricName:    "Malha Azul",
			RollsUsed:     rolls(2),
		}},
	}
}

func cutItems(sizes entity.SizeMap) []entity.OrderItem {
	return []entity.OrderItem{{
		ProductID:     "prod-1",
		ReferenceCode: "REF-100",
		Color:         "Azul",
		FabricName:    "Malha Azul",
		RollsUsed:     rolls(2),
		Sizes:         sizes,
	}}
}

func fullGrid(n int) entity.SizeMap {
	return entity.SizeMap{entity.SizeP: n, entity.SizeM: n, entity.SizeG: n, entity.SizeGG: n}
}

func TestConfirmCut_DebitaStockYPasaACorte(t *testing.T) {
	fabricRepo := newFakeFabricRepo(azulFabric(5))
	orderRepo := newFakeOrderRepo(plannedOrder())
	uc := production.NewConfirmCutUseCase(&fakeTxRunner{fabricRepo: fabricRepo, orderRepo: orderRepo})

	order, err := uc.ConfirmCut(context.Background(), "ord-1", cutItems(fullGrid(10)))

	require.NoError(t, err)
	assert.Equal(t, entity.StatusCutting, order.Status)
	assert.True(t, fabricRepo.stockOf("Malha Azul", "Azul").Equal(rolls(3)),
		"5 rollos - 2 usados = 3, obtuvo %s", fabricRepo.stockOf("Malha Azul", "Azul"))
	require.Len(t, order.ActiveCuttingItems, 1)
	assert.Equal(t, 40, order.ActiveCuttingItems[0].ActualPieces)
	assert.Equal(t, 40, order.Items[0].ActualPieces)
}

func TestConfirmCut_StockInsuficienteNoMutaNada(t *testing.T) {
	fabricRepo := newFakeFabricRepo(azulFabric(1))
	orderRepo := newFakeOrderRepo(plannedOrder())
	uc := production.NewConfirmCutUseCase(&fakeTxRunner{fabricRepo: fabricRepo, orderRepo: orderRepo})

	_, err := uc.ConfirmCut(context.Background(), "ord-1", cutItems(fullGrid(10)))

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	var shortage *domain.StockShortageError
	require.ErrorAs(t, err, &shortage)
	assert.Equal(t, "Malha Azul", shortage.Fabric)
	assert.Equal(t, "Azul", shortage.Color)
	assert.True(t, shortage.Required.Equal(rolls(2)))
	assert.True(t, shortage.Available.Equal(rolls(1)))

	// Ni el ledger ni la orden cambiaron.
	assert.True(t, fabricRepo.stockOf("Malha Azul", "Azul").Equal(rolls(1)))
	assert.Equal(t, entity.StatusPlanned, orderRepo.stored("ord-1").Status)
	assert.Empty(t, orderRepo.stored("ord-1").ActiveCuttingItems)
}

func TestConfirmCut_TelaInexistenteReportaFaltante(t *testing.T) {
	fabricRepo := newFakeFabricRepo()
	orderRepo := newFakeOrderRepo(plannedOrder())
	uc := production.NewConfirmCutUseCase(&fakeTxRunner{fabricRepo: fabricRepo, orderRepo: orderRepo})

	_, err := uc.ConfirmCut(context.Background(), "ord-1", cutItems(fullGrid(10)))

	var shortage *domain.StockShortageError
	require.ErrorAs(t, err, &shortage)
	assert.True(t, shortage.Available.IsZero())
}

func TestConfirmCut_ClavesDuplicadasSeSumanAntesDeValidar(t *testing.T) {
	// Dos líneas sobre la misma tela/color: 1.5 + 1.0 = 2.5 > 2 disponibles.
	// Línea por línea cada una pasaría; agregadas deben fallar.
	fabricRepo := newFakeFabricRepo(azulFabric(2))
	order := plannedOrder()
	uc := production.NewConfirmCutUseCase(&fakeTxRunner{fabricRepo: fabricRepo, orderRepo: newFakeOrderRepo(order)})

	items := []entity.OrderItem{
		{Color: "Azul", FabricName: "Malha Azul", RollsUsed: rolls(1.5), Sizes: fullGrid(5)},
		{Color: "Azul", FabricName: "Malha Azul", RollsUsed: rolls(1.0), Sizes: fullGrid(5)},
	}
	_, err := uc.ConfirmCut(context.Background(), "ord-1", items)

	var shortage *domain.StockShortageError
	require.ErrorAs(t, err, &shortage)
	assert.True(t, shortage.Required.Equal(rolls(2.5)))
	assert.True(t, fabricRepo.stockOf("Malha Azul", "Azul").Equal(rolls(2)))
}

func TestConfirmCut_GrillaVaciaSintetizaEstimacion(t *testing.T) {
	fabricRepo := newFakeFabricRepo(azulFabric(5))
	orderRepo := newFakeOrderRepo(plannedOrder())
	uc := production.NewConfirmCutUseCase(&fakeTxRunner{fabricRepo: fabricRepo, orderRepo: orderRepo})

	items := cutItems(entity.SizeMap{})
	items[0].PiecesPerSizeEst = 12

	order, err := uc.ConfirmCut(context.Background(), "ord-1", items)

	require.NoError(t, err)
	assert.Equal(t, 48, order.Items[0].ActualPieces)
	for _, s := range entity.StandardSizes {
		assert.Equal(t, 12, order.Items[0].Sizes.Get(s))
	}
}

func TestConfirmCut_WorkingSetEsCopiaProfunda(t *testing.T) {
	fabricRepo := newFakeFabricRepo(azulFabric(5))
	orderRepo := newFakeOrderRepo(plannedOrder())
	uc := production.NewConfirmCutUseCase(&fakeTxRunner{fabricRepo: fabricRepo, orderRepo: orderRepo})

	order, err := uc.ConfirmCut(context.Background(), "ord-1", cutItems(fullGrid(10)))
	require.NoError(t, err)

	order.ActiveCuttingItems[0].Sizes[entity.SizeP] = 0
	assert.Equal(t, 10, order.Items[0].Sizes.Get(entity.SizeP),
		"mutar el working set no debe tocar el registro de planeación")
}

func TestConfirmCut_SoloDesdePlanned(t *testing.T) {
	order := plannedOrder()
	order.Status = entity.StatusCutting
	uc := production.NewConfirmCutUseCase(&fakeTxRunner{
		fabricRepo: newFakeFabricRepo(azulFabric(5)),
		orderRepo:  newFakeOrderRepo(order),
	})

	_, err := uc.ConfirmCut(context.Background(), "ord-1", cutItems(fullGrid(10)))
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestConfirmCut_OrdenInexistente(t *testing.T) {
	uc := production.NewConfirmCutUseCase(&fakeTxRunner{
		fabricRepo: newFakeFabricRepo(azulFabric(5)),
		orderRepo:  newFakeOrderRepo(),
	})

	_, err := uc.ConfirmCut(context.Background(), "nope", cutItems(fullGrid(10)))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
