package inventory

import (
	"context"

	"github.com/Dinuli-Disara/Smart-Distribution-Management-System-sub000/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Es el único mecanismo de atomicidad del motor:
// o comprometen juntos todos los lotes, líneas y registros de movimiento de
// una llamada, o ninguno.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		batchRepo repository.BatchRepository,
		transferRepo repository.TransferRepository,
		movementRepo repository.MovementRepository,
	) error) error
}
