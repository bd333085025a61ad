package usecase_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/fulfilment-api/internal/application/usecase"
	"github.com/jhoicas/fulfilment-api/internal/domain"
	"github.com/jhoicas/fulfilment-api/internal/domain/entity"
)

// fakeAssignmentRepo simula la tabla append-only de asignaciones.
type fakeAssignmentRepo struct {
	rows []entity.FulfilmentAssignment
}

func (f *fakeAssignmentRepo) GetAll(_ context.Context) ([]*entity.FulfilmentAssignment, error) {
	out := make([]*entity.FulfilmentAssignment, 0, len(f.rows))
	for i := range f.rows {
		a := f.rows[i]
		out = append(out, &a)
	}
	return out, nil
}

func (f *fakeAssignmentRepo) Create(_ context.Context, assignment *entity.FulfilmentAssignment) error {
	f.rows = append(f.rows, *assignment)
	return nil
}

func newFulfilmentUC() (*usecase.FulfilmentUseCase, *fakeAssignmentRepo) {
	repo := &fakeAssignmentRepo{}
	return usecase.NewFulfilmentUseCase(repo), repo
}

func mustAssign(t *testing.T, uc *usecase.FulfilmentUseCase, store, product, warehouse string) {
	t.Helper()
	require.NoError(t, uc.Assign(context.Background(), store, product, warehouse),
		"la asignación %s/%s/%s debe ser exitosa", store, product, warehouse)
}

func TestAssign_Exitoso(t *testing.T) {
	uc, repo := newFulfilmentUC()

	mustAssign(t, uc, "S1", "P1", "W1")

	require.Len(t, repo.rows, 1)
	assert.Equal(t, "S1", repo.rows[0].StoreID)
	assert.Equal(t, "P1", repo.rows[0].ProductID)
	assert.Equal(t, "W1", repo.rows[0].WarehouseBusinessUnitCode)
	assert.False(t, repo.rows[0].CreatedAt.IsZero())
}

func TestAssign_TripletaRepetidaEsNoOp(t *testing.T) {
	uc, repo := newFulfilmentUC()
	mustAssign(t, uc, "S1", "P1", "W1")

	// Repetir la tripleta exacta no falla ni escribe una fila extra.
	mustAssign(t, uc, "S1", "P1", "W1")
	assert.Len(t, repo.rows, 1, "la asignación repetida es idempotente")
}

func TestAssign_MaximoDosBodegasPorTiendaProducto(t *testing.T) {
	uc, _ := newFulfilmentUC()
	mustAssign(t, uc, "S1", "P1", "W1")
	mustAssign(t, uc, "S1", "P1", "W2")

	err := uc.Assign(context.Background(), "S1", "P1", "W3")
	assert.ErrorIs(t, err, domain.ErrAssignMaxWarehousesPerProduct)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestAssign_MaximoTresBodegasPorTienda(t *testing.T) {
	uc, _ := newFulfilmentUC()
	// Tres bodegas distintas para S1, repartidas entre productos.
	mustAssign(t, uc, "S1", "P1", "W1")
	mustAssign(t, uc, "S1", "P2", "W2")
	mustAssign(t, uc, "S1", "P3", "W3")

	err := uc.Assign(context.Background(), "S1", "P4", "W4")
	assert.ErrorIs(t, err, domain.ErrAssignMaxWarehousesPerStore)
}

func TestAssign_MaximoCincoProductosPorBodega(t *testing.T) {
	uc, _ := newFulfilmentUC()
	// Cinco productos distintos servidos por W1 desde tiendas diferentes.
	for i := 1; i <= 5; i++ {
		mustAssign(t, uc, fmt.Sprintf("S%d", i), fmt.Sprintf("P%d", i), "W1")
	}

	err := uc.Assign(context.Background(), "S9", "P9", "W1")
	assert.ErrorIs(t, err, domain.ErrAssignMaxProductsPerWarehouse)
}

// Los topes aplican solo a relaciones distintas nuevas: si la bodega ya sirve
// a la tienda, o la bodega ya sirve el producto, ese tope queda exento.
func TestAssign_BodegaYaConocidaPorLaTiendaQuedaExenta(t *testing.T) {
	uc, _ := newFulfilmentUC()
	// S1 ya usa sus tres bodegas.
	mustAssign(t, uc, "S1", "P1", "W1")
	mustAssign(t, uc, "S1", "P2", "W2")
	mustAssign(t, uc, "S1", "P3", "W3")

	// W2 ya es una de las bodegas de S1: asignarla a otro producto no agrega
	// una bodega distinta y debe pasar.
	mustAssign(t, uc, "S1", "P4", "W2")
}

func TestAssign_ProductoYaConocidoPorLaBodegaQuedaExento(t *testing.T) {
	uc, _ := newFulfilmentUC()
	// W1 ya sirve cinco productos distintos.
	for i := 1; i <= 5; i++ {
		mustAssign(t, uc, fmt.Sprintf("S%d", i), fmt.Sprintf("P%d", i), "W1")
	}

	// P3 ya está entre los productos de W1: servirlo a otra tienda no agrega
	// un producto distinto.
	mustAssign(t, uc, "S9", "P3", "W1")
}

func TestAssign_TopesIndependientes(t *testing.T) {
	uc, _ := newFulfilmentUC()
	mustAssign(t, uc, "S1", "P1", "W1")
	mustAssign(t, uc, "S1", "P1", "W2")

	// W3 sería la tercera bodega para el par S1/P1 aunque la tienda solo
	// tenga dos bodegas en total: el tope por par se evalúa primero.
	err := uc.Assign(context.Background(), "S1", "P1", "W3")
	assert.ErrorIs(t, err, domain.ErrAssignMaxWarehousesPerProduct)
}

func TestListAssignments(t *testing.T) {
	uc, _ := newFulfilmentUC()
	mustAssign(t, uc, "S1", "P1", "W1")
	mustAssign(t, uc, "S2", "P2", "W2")

	list, err := uc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "S1", list[0].StoreID)
	assert.Equal(t, "W2", list[1].WarehouseBusinessUnitCode)
}
