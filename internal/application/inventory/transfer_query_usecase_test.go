package inventory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appinventory "github.com/Dinuli-Disara/Smart-Distribution-Management-System-sub000/internal/application/inventory"
	"github.com/Dinuli-Disara/Smart-Distribution-Management-System-sub000/internal/domain"
	"github.com/Dinuli-Disara/Smart-Distribution-Management-System-sub000/internal/domain/entity"
)

// Un traslado recién creado se puede consultar con sus líneas completas.
func TestTransferQuery_GetByID_ConLineas(t *testing.T) {
	state := newMemState()
	seedStoreBatch(state, testProductID, 100, 90, "BAT-A")
	createUC := newTransferUC(state, testProduct(testProductID))

	result, err := createUC.CreateTransfer(context.Background(), appinventory.CreateTransferInput{
		ToLocationID: testVanID,
		ActorID:      testActorID,
		Notes:        "reparto ruta norte",
		Items:        []appinventory.TransferItemInput{{ProductID: testProductID, Quantity: 30}},
	})
	require.NoError(t, err)

	queryUC := appinventory.NewTransferQueryUseCase(&fakeTransferRepo{state: state})
	got, err := queryUC.GetByID(context.Background(), result.TransferID)
	require.NoError(t, err)

	assert.Equal(t, result.TransferNumber, got.TransferNumber)
	assert.Equal(t, entity.TransferStatusCompleted, got.Status)
	assert.Equal(t, "reparto ruta norte", got.Notes)
	require.Len(t, got.Items, 1)
	assert.Equal(t, int64(30), got.Items[0].Quantity)
	assert.Equal(t, entity.TransferItemStatusProcessed, got.Items[0].Status)
}

func TestTransferQuery_GetByID_NoExiste(t *testing.T) {
	queryUC := appinventory.NewTransferQueryUseCase(&fakeTransferRepo{state: newMemState()})

	_, err := queryUC.GetByID(context.Background(), 999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTransferQuery_List(t *testing.T) {
	state := newMemState()
	seedStoreBatch(state, testProductID, 100, 90, "BAT-A")
	createUC := newTransferUC(state, testProduct(testProductID))

	_, err := createUC.CreateTransfer(context.Background(), appinventory.CreateTransferInput{
		ToLocationID: testVanID,
		ActorID:      testActorID,
		Items:        []appinventory.TransferItemInput{{ProductID: testProductID, Quantity: 10}},
	})
	require.NoError(t, err)

	queryUC := appinventory.NewTransferQueryUseCase(&fakeTransferRepo{state: state})
	got, err := queryUC.List(context.Background(), 0, 0)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}
