package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kavins/produccion-api/internal/application/production"
	"github.com/kavins/produccion-api/internal/domain/entity"
	"github.com/kavins/produccion-api/internal/domain/repository"
	apphttp "github.com/kavins/produccion-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria: el flujo completo corte → distribución → cierre a través
// del stack Fiber real, sin base de datos.
// ──────────────────────────────────────────────────────────────────────────────

type memFabricRepo struct {
	fabrics map[string]*entity.Fabric
}

func (r *memFabricRepo) Create(f *entity.Fabric) error { r.fabrics[f.ID] = f; return nil }

func (r *memFabricRepo) GetByID(id string) (*entity.Fabric, error) {
	f, ok := r.fabrics[id]
	if !ok {
		return nil, nil
	}
	cp := *f
	return &cp, nil
}

func (r *memFabricRepo) GetByKey(name, color string) (*entity.Fabric, error) {
	for _, f := range r.fabrics {
		if f.Name == name && f.Color == color {
			cp := *f
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memFabricRepo) GetByKeyForUpdate(name, color string) (*entity.Fabric, error) {
	return r.GetByKey(name, color)
}

func (r *memFabricRepo) UpdateStock(id string, stockRolls decimal.Decimal) error {
	r.fabrics[id].StockRolls = stockRolls
	return nil
}

func (r *memFabricRepo) Update(f *entity.Fabric) error { r.fabrics[f.ID] = f; return nil }

func (r *memFabricRepo) List(limit, offset int) ([]*entity.Fabric, error) { return nil, nil }
func (r *memFabricRepo) Delete(id string) error                           { delete(r.fabrics, id); return nil }

type memOrderRepo struct {
	orders map[string]*entity.ProductionOrder
}

// cloneViaJSON copia profunda por serialización: el usecase muta su copia sin
// tocar lo "persistido", como pasaría con una fila real.
func cloneViaJSON(o *entity.ProductionOrder) *entity.ProductionOrder {
	data, _ := json.Marshal(o)
	var cp entity.ProductionOrder
	_ = json.Unmarshal(data, &cp)
	return &cp
}

func (r *memOrderRepo) Create(o *entity.ProductionOrder) error { r.orders[o.ID] = o; return nil }

func (r *memOrderRepo) GetByID(id string) (*entity.ProductionOrder, error) {
	o, ok := r.orders[id]
	if !ok {
		return nil, nil
	}
	return cloneViaJSON(o), nil
}

func (r *memOrderRepo) GetByIDForUpdate(id string) (*entity.ProductionOrder, error) {
	return r.GetByID(id)
}

func (r *memOrderRepo) Update(o *entity.ProductionOrder) error { r.orders[o.ID] = o; return nil }

func (r *memOrderRepo) List(limit, offset int) ([]*entity.ProductionOrder, error) { return nil, nil }
func (r *memOrderRepo) ListByStatus(status entity.OrderStatus, limit, offset int) ([]*entity.ProductionOrder, error) {
	return nil, nil
}
func (r *memOrderRepo) Delete(id string) error { delete(r.orders, id); return nil }

type memSeamstressRepo struct {
	seamstresses map[string]*entity.Seamstress
}

func (r *memSeamstressRepo) Create(s *entity.Seamstress) error { r.seamstresses[s.ID] = s; return nil }
func (r *memSeamstressRepo) GetByID(id string) (*entity.Seamstress, error) {
	s, ok := r.seamstresses[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}
func (r *memSeamstressRepo) Update(s *entity.Seamstress) error { r.seamstresses[s.ID] = s; return nil }
func (r *memSeamstressRepo) List(limit, offset int) ([]*entity.Seamstress, error) {
	return nil, nil
}
func (r *memSeamstressRepo) Delete(id string) error { delete(r.seamstresses, id); return nil }

// memTxRunner ejecuta el callback directamente; los usecases validan todo
// antes de escribir, así que el flujo feliz no necesita rollback real.
type memTxRunner struct {
	fabricRepo repository.FabricRepository
	orderRepo  repository.OrderRepository
}

func (tr *memTxRunner) Run(_ context.Context, fn func(repository.FabricRepository, repository.OrderRepository) error) error {
	return fn(tr.fabricRepo, tr.orderRepo)
}

// ──────────────────────────────────────────────────────────────────────────────
// App de prueba
// ──────────────────────────────────────────────────────────────────────────────

type testEnv struct {
	app     *fiber.App
	fabrics *memFabricRepo
	orders  *memOrderRepo
}

func buildProductionApp(t *testing.T) *testEnv {
	t.Helper()

	fabrics := &memFabricRepo{fabrics: map[string]*entity.Fabric{
		"fab-1": {
			ID: "fab-1", Name: "Malha Azul", Color: "Azul",
			StockRolls: decimal.NewFromInt(5),
		},
	}}
	orders := &memOrderRepo{orders: map[string]*entity.ProductionOrder{}}
	seamstresses := &memSeamstressRepo{seamstresses: map[string]*entity.Seamstress{
		"seam-1": {ID: "seam-1", Name: "Maria", Active: true},
	}}
	txRunner := &memTxRunner{fabricRepo: fabrics, orderRepo: orders}

	now := time.Now().UTC()
	orders.orders["ord-1"] = &entity.ProductionOrder{
		ID:            "ord-1",
		ReferenceCode: "REF-100",
		Fabric:        "Malha Azul",
		Items: []entity.OrderItem{{
			ReferenceCode: "REF-100",
			Color:         "Azul",
			FabricName:    "Malha Azul",
			RollsUsed:     decimal.NewFromInt(2),
		}},
		Status:    entity.StatusPlanned,
		CreatedAt: now,
		UpdatedAt: now,
	}

	app := fiber.New()
	productionHandler := apphttp.NewProductionHandler(
		production.NewConfirmCutUseCase(txRunner),
		production.NewDistributeUseCase(txRunner, seamstresses),
		production.NewFinishSplitUseCase(txRunner),
		nil, // la ficha PDF no participa en este flujo
	)
	app.Post("/api/orders/:id/cut", productionHandler.ConfirmCut)
	app.Post("/api/orders/:id/distribute", productionHandler.Distribute)
	app.Post("/api/orders/:id/splits/:splitId/finish", productionHandler.FinishSplit)

	return &testEnv{app: app, fabrics: fabrics, orders: orders}
}

func postJSON(t *testing.T, app *fiber.App, path string, payload any) *http.Response {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeOrder(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()
	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Flujo completo: corte → distribución → cierre
// ──────────────────────────────────────────────────────────────────────────────

func TestProductionFlow_CorteDistribucionCierre(t *testing.T) {
	env := buildProductionApp(t)

	// 1. Confirmar el corte: 2 rollos de Malha Azul, 20 piezas
	cutBody := map[string]any{
		"items": []map[string]any{{
			"reference_code": "REF-100",
			"color":          "Azul",
			"fabric_name":    "Malha Azul",
			"rolls_used":     "2",
			"sizes":          map[string]int{"P": 5, "M": 5, "G": 5, "GG": 5},
		}},
	}
	resp := postJSON(t, env.app, "/api/orders/ord-1/cut", cutBody)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeOrder(t, resp)
	assert.Equal(t, "CUTTING", body["status"])
	assert.EqualValues(t, 20, body["remaining_pieces"])

	// El ledger debitó los 2 rollos
	fab, err := env.fabrics.GetByID("fab-1")
	require.NoError(t, err)
	assert.True(t, fab.StockRolls.Equal(decimal.NewFromInt(3)),
		"el stock debe quedar en 3 rollos, quedó %s", fab.StockRolls)

	// 2. Distribuir la mitad a Maria
	distBody := map[string]any{
		"seamstress_id": "seam-1",
		"items": []map[string]any{{
			"color": "Azul",
			"sizes": map[string]int{"P": 5, "M": 5},
		}},
	}
	resp = postJSON(t, env.app, "/api/orders/ord-1/distribute", distBody)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body = decodeOrder(t, resp)
	assert.Equal(t, "CUTTING", body["status"], "con saldo pendiente la orden sigue en CUTTING")
	assert.EqualValues(t, 10, body["remaining_pieces"])

	// 3. Distribuir el resto: la orden pasa a SEWING
	distBody["items"] = []map[string]any{{
		"color": "Azul",
		"sizes": map[string]int{"G": 5, "GG": 5},
	}}
	resp = postJSON(t, env.app, "/api/orders/ord-1/distribute", distBody)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body = decodeOrder(t, resp)
	assert.Equal(t, "SEWING", body["status"])
	assert.EqualValues(t, 0, body["remaining_pieces"])

	splits, ok := body["splits"].([]any)
	require.True(t, ok)
	require.Len(t, splits, 2)

	// 4. Terminar ambos paquetes: al cerrar el último, la orden queda FINISHED
	for i, raw := range splits {
		sp := raw.(map[string]any)
		resp = postJSON(t, env.app, "/api/orders/ord-1/splits/"+sp["id"].(string)+"/finish", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		body = decodeOrder(t, resp)
		if i < len(splits)-1 {
			assert.Equal(t, "SEWING", body["status"], "con paquetes pendientes la orden no cierra")
		}
	}
	assert.Equal(t, "FINISHED", body["status"])
	assert.NotNil(t, body["finished_at"])
}

func TestProductionFlow_CorteSinStock_Retorna409(t *testing.T) {
	env := buildProductionApp(t)

	cutBody := map[string]any{
		"items": []map[string]any{{
			"color":       "Azul",
			"fabric_name": "Malha Azul",
			"rolls_used":  "9",
			"sizes":       map[string]int{"P": 10},
		}},
	}
	resp := postJSON(t, env.app, "/api/orders/ord-1/cut", cutBody)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	var errBody map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&errBody))
	assert.Equal(t, "INSUFFICIENT_STOCK", errBody["code"])

	// Nada se debitó y la orden sigue en PLANNED
	fab, err := env.fabrics.GetByID("fab-1")
	require.NoError(t, err)
	assert.True(t, fab.StockRolls.Equal(decimal.NewFromInt(5)))
	order, err := env.orders.GetByID("ord-1")
	require.NoError(t, err)
	assert.Equal(t, entity.StatusPlanned, order.Status)
}

func TestProductionFlow_DistribucionExcedida_Retorna409(t *testing.T) {
	env := buildProductionApp(t)

	cutBody := map[string]any{
		"items": []map[string]any{{
			"color":       "Azul",
			"fabric_name": "Malha Azul",
			"rolls_used":  "1",
			"sizes":       map[string]int{"P": 4},
		}},
	}
	resp := postJSON(t, env.app, "/api/orders/ord-1/cut", cutBody)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	distBody := map[string]any{
		"seamstress_id": "seam-1",
		"items": []map[string]any{{
			"color": "Azul",
			"sizes": map[string]int{"P": 5},
		}},
	}
	resp = postJSON(t, env.app, "/api/orders/ord-1/distribute", distBody)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	var errBody map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&errBody))
	assert.Equal(t, "INSUFFICIENT_PIECES", errBody["code"])

	// El saldo activo no cambió
	order, err := env.orders.GetByID("ord-1")
	require.NoError(t, err)
	assert.Equal(t, 4, order.RemainingPieces())
	assert.Empty(t, order.Splits)
}
