package inventory_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appinventory "github.com/Dinuli-Disara/Smart-Distribution-Management-System-sub000/internal/application/inventory"
	"github.com/Dinuli-Disara/Smart-Distribution-Management-System-sub000/internal/domain"
	"github.com/Dinuli-Disara/Smart-Distribution-Management-System-sub000/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func seedStoreBatch(state *memState, productID, qty int64, expiryDays int, batchNumber string) *entity.Batch {
	return state.seedBatch(&entity.Batch{
		ProductID:    productID,
		LocationID:   testStoreID,
		BatchNumber:  batchNumber,
		Quantity:     qty,
		PricePerUnit: decimal.NewFromInt(12),
		ExpiryDate:   expiry(expiryDays),
		ReceivedDate: time.Now().UTC().AddDate(0, 0, -expiryDays),
		Status:       entity.BatchStatusActive,
		CreatedBy:    testActorID,
		UpdatedBy:    testActorID,
	})
}

func newTransferUC(state *memState, products ...*entity.Product) *appinventory.CreateTransferUseCase {
	return appinventory.NewCreateTransferUseCase(
		&fakeTxRunner{state: state},
		newFakeLocationRepo(testStore(), testVan()),
		newFakeProductRepo(products...),
	)
}

// ──────────────────────────────────────────────────────────────────────────────
// CreateTransfer — camino feliz
// ──────────────────────────────────────────────────────────────────────────────

// Trasladar 30 de un lote de 100 descuenta el origen a 70 y crea en el
// vehículo un lote de 30 con linaje al origen y su mismo precio/vencimiento.
func TestCreateTransfer_DescuentaOrigenYCreaDestino(t *testing.T) {
	state := newMemState()
	source := seedStoreBatch(state, testProductID, 100, 90, "BAT-A")
	uc := newTransferUC(state, testProduct(testProductID))

	result, err := uc.CreateTransfer(context.Background(), appinventory.CreateTransferInput{
		ToLocationID: testVanID,
		ActorID:      testActorID,
		Items:        []appinventory.TransferItemInput{{ProductID: testProductID, Quantity: 30}},
	})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Regexp(t, `^TRF-\d+$`, result.TransferNumber)

	assert.Equal(t, int64(70), state.batches[source.ID].Quantity,
		"el lote origen debe quedar con 100-30 unidades")

	var dest *entity.Batch
	for _, b := range state.batches {
		if b.LocationID == testVanID {
			dest = b
		}
	}
	require.NotNil(t, dest, "debe existir un lote nuevo en el vehículo")
	assert.Equal(t, int64(30), dest.Quantity)
	require.NotNil(t, dest.ParentBatchID)
	assert.Equal(t, source.ID, *dest.ParentBatchID, "el lote destino apunta a su lote padre")
	assert.True(t, dest.PricePerUnit.Equal(source.PricePerUnit), "el precio se hereda del origen")
	assert.True(t, dest.ExpiryDate.Equal(source.ExpiryDate), "el vencimiento se hereda del origen")
	assert.Equal(t, result.TransferNumber+"-BAT-A", dest.BatchNumber)

	// Conservación: la suma de unidades no cambia con un traslado.
	var total int64
	for _, b := range state.batches {
		total += b.Quantity
	}
	assert.Equal(t, int64(100), total, "un traslado nunca crea ni destruye unidades")

	transfer := state.transfers[result.TransferID]
	require.NotNil(t, transfer)
	assert.Equal(t, entity.TransferStatusCompleted, transfer.Status)
	assert.Equal(t, testStoreID, transfer.FromLocationID)
	assert.Equal(t, testVanID, transfer.ToLocationID)

	require.Len(t, state.items, 1)
	item := state.items[0]
	assert.Equal(t, entity.TransferItemStatusProcessed, item.Status)
	assert.Equal(t, source.ID, item.SourceBatchID)
	require.NotNil(t, item.DestinationBatchID)
	assert.Equal(t, dest.ID, *item.DestinationBatchID)

	require.Len(t, state.movements, 1)
	mov := state.movements[0]
	assert.Equal(t, entity.MovementTypeTransfer, mov.MovementType)
	require.NotNil(t, mov.FromLocationID)
	require.NotNil(t, mov.ToLocationID)
	assert.Equal(t, testStoreID, *mov.FromLocationID)
	assert.Equal(t, testVanID, *mov.ToLocationID)
	require.NotNil(t, mov.ReferenceID)
	assert.Equal(t, result.TransferID, *mov.ReferenceID)
}

// El traslado consume el lote que vence primero aunque otro tenga más stock.
func TestCreateTransfer_RespetaPoliticaFIFO(t *testing.T) {
	state := newMemState()
	tardio := seedStoreBatch(state, testProductID, 500, 180, "BAT-TARDIO")
	proximo := seedStoreBatch(state, testProductID, 60, 15, "BAT-PROXIMO")
	uc := newTransferUC(state, testProduct(testProductID))

	_, err := uc.CreateTransfer(context.Background(), appinventory.CreateTransferInput{
		ToLocationID: testVanID,
		ActorID:      testActorID,
		Items:        []appinventory.TransferItemInput{{ProductID: testProductID, Quantity: 40}},
	})
	require.NoError(t, err)

	assert.Equal(t, int64(20), state.batches[proximo.ID].Quantity,
		"debe consumirse el lote con vencimiento más próximo")
	assert.Equal(t, int64(500), state.batches[tardio.ID].Quantity,
		"el lote de vencimiento lejano no se toca")
}

// Trasladar exactamente toda la cantidad del lote lo deja en cero, nunca en
// negativo, y el lote sigue existiendo para trazabilidad.
func TestCreateTransfer_ConsumoTotalDejaCero(t *testing.T) {
	state := newMemState()
	source := seedStoreBatch(state, testProductID, 50, 60, "BAT-B")
	uc := newTransferUC(state, testProduct(testProductID))

	_, err := uc.CreateTransfer(context.Background(), appinventory.CreateTransferInput{
		ToLocationID: testVanID,
		ActorID:      testActorID,
		Items:        []appinventory.TransferItemInput{{ProductID: testProductID, Quantity: 50}},
	})
	require.NoError(t, err)

	b := state.batches[source.ID]
	require.NotNil(t, b, "el lote agotado no se elimina")
	assert.Equal(t, int64(0), b.Quantity)
}

// Un traslado con varias líneas procesa cada producto contra sus propios lotes.
func TestCreateTransfer_MultiLinea(t *testing.T) {
	state := newMemState()
	b1 := seedStoreBatch(state, 10, 100, 90, "BAT-P1")
	b2 := seedStoreBatch(state, 11, 200, 45, "BAT-P2")
	uc := newTransferUC(state, testProduct(10), testProduct2(11))

	result, err := uc.CreateTransfer(context.Background(), appinventory.CreateTransferInput{
		ToLocationID: testVanID,
		ActorID:      testActorID,
		Items: []appinventory.TransferItemInput{
			{ProductID: 10, Quantity: 30},
			{ProductID: 11, Quantity: 120},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, int64(70), state.batches[b1.ID].Quantity)
	assert.Equal(t, int64(80), state.batches[b2.ID].Quantity)
	assert.Len(t, state.items, 2)
	assert.Len(t, state.movements, 2)
	assert.Equal(t, entity.TransferStatusCompleted, state.transfers[result.TransferID].Status)
}

// ──────────────────────────────────────────────────────────────────────────────
// Atomicidad
// ──────────────────────────────────────────────────────────────────────────────

// Si una línea intermedia no tiene stock suficiente, el traslado completo se
// descarta: las líneas ya procesadas no dejan rastro y los lotes conservan
// sus cantidades originales.
func TestCreateTransfer_FalloIntermedio_RollbackTotal(t *testing.T) {
	state := newMemState()
	b1 := seedStoreBatch(state, 10, 100, 90, "BAT-P1")
	// El producto 11 solo tiene 5 unidades; la segunda línea pide 50.
	b2 := seedStoreBatch(state, 11, 5, 45, "BAT-P2")
	uc := newTransferUC(state, testProduct(10), testProduct2(11))

	_, err := uc.CreateTransfer(context.Background(), appinventory.CreateTransferInput{
		ToLocationID: testVanID,
		ActorID:      testActorID,
		Items: []appinventory.TransferItemInput{
			{ProductID: 10, Quantity: 30},
			{ProductID: 11, Quantity: 50},
		},
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.Equal(t, int64(100), state.batches[b1.ID].Quantity,
		"la primera línea procesada debe revertirse por completo")
	assert.Equal(t, int64(5), state.batches[b2.ID].Quantity)
	assert.Empty(t, state.transfers, "no debe persistir ningún traslado fallido")
	assert.Empty(t, state.items)
	assert.Empty(t, state.movements)
	assert.Len(t, state.batches, 2, "no deben quedar lotes destino huérfanos")
}

// Aunque la suma de lotes alcance, ningún lote único cubre la demanda:
// stock insuficiente y sin efectos.
func TestCreateTransfer_SinLoteUnicoSuficiente_Insuficiente(t *testing.T) {
	state := newMemState()
	seedStoreBatch(state, testProductID, 30, 30, "BAT-C1")
	seedStoreBatch(state, testProductID, 40, 60, "BAT-C2")
	uc := newTransferUC(state, testProduct(testProductID))

	_, err := uc.CreateTransfer(context.Background(), appinventory.CreateTransferInput{
		ToLocationID: testVanID,
		ActorID:      testActorID,
		Items:        []appinventory.TransferItemInput{{ProductID: testProductID, Quantity: 60}},
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Empty(t, state.transfers)
}

// ──────────────────────────────────────────────────────────────────────────────
// Validaciones
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateTransfer_DestinoNoEsVehiculo_Invalido(t *testing.T) {
	state := newMemState()
	seedStoreBatch(state, testProductID, 100, 90, "BAT-A")
	uc := newTransferUC(state, testProduct(testProductID))

	_, err := uc.CreateTransfer(context.Background(), appinventory.CreateTransferInput{
		ToLocationID: testStoreID, // la propia bodega
		ActorID:      testActorID,
		Items:        []appinventory.TransferItemInput{{ProductID: testProductID, Quantity: 10}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput,
		"el destino de un traslado debe ser un vehículo")
}

func TestCreateTransfer_DestinoInexistente_NotFound(t *testing.T) {
	state := newMemState()
	uc := newTransferUC(state, testProduct(testProductID))

	_, err := uc.CreateTransfer(context.Background(), appinventory.CreateTransferInput{
		ToLocationID: 999,
		ActorID:      testActorID,
		Items:        []appinventory.TransferItemInput{{ProductID: testProductID, Quantity: 10}},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreateTransfer_SinLineas_Invalido(t *testing.T) {
	uc := newTransferUC(newMemState(), testProduct(testProductID))

	_, err := uc.CreateTransfer(context.Background(), appinventory.CreateTransferInput{
		ToLocationID: testVanID,
		ActorID:      testActorID,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreateTransfer_CantidadNegativa_Invalido(t *testing.T) {
	uc := newTransferUC(newMemState(), testProduct(testProductID))

	_, err := uc.CreateTransfer(context.Background(), appinventory.CreateTransferInput{
		ToLocationID: testVanID,
		ActorID:      testActorID,
		Items:        []appinventory.TransferItemInput{{ProductID: testProductID, Quantity: -10}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreateTransfer_ProductoInexistente_NotFound(t *testing.T) {
	uc := newTransferUC(newMemState())

	_, err := uc.CreateTransfer(context.Background(), appinventory.CreateTransferInput{
		ToLocationID: testVanID,
		ActorID:      testActorID,
		Items:        []appinventory.TransferItemInput{{ProductID: 999, Quantity: 10}},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
