package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Bodega-api/internal/application/dto"
	"github.com/jhoicas/Bodega-api/internal/application/ports"
	"github.com/jhoicas/Bodega-api/internal/domain"
	"github.com/jhoicas/Bodega-api/internal/domain/entity"
	"github.com/jhoicas/Bodega-api/internal/domain/repository"
)

// ApplyStockMovementUseCase es la única autoridad para mutar la cantidad y la
// caja de un producto, y para producir el registro correspondiente del libro.
//
// Cada movimiento corre dentro de una transacción de BD con bloqueo de fila
// (SELECT FOR UPDATE): el par leer-cantidad / escribir-cantidad no puede
// intercalarse con otro movimiento concurrente sobre el mismo producto, lo
// que cierra la anomalía de lost-update entre sesiones.
type ApplyStockMovementUseCase struct {
	txRunner  TxRunner
	publisher ports.EventPublisher
}

// NewApplyStockMovementUseCase construye el motor de movimientos.
func NewApplyStockMovementUseCase(txRunner TxRunner, publisher ports.EventPublisher) *ApplyStockMovementUseCase {
	if publisher == nil {
		publisher = ports.NopPublisher{}
	}
	return &ApplyStockMovementUseCase{txRunner: txRunner, publisher: publisher}
}

// Apply registra un movimiento de stock:
//
//   - IN suma la cantidad; OUT resta recortando el resultado en 0 (nunca negativo).
//   - La transacción del libro guarda SIEMPRE la cantidad solicitada, aunque
//     la salida se haya recortado. El libro registra intención, no efecto.
//   - Producto inexistente es un no-op silencioso: Applied=false, sin error.
//   - El motor no re-valida la cantidad; el mínimo de 1 se exige en el borde HTTP.
//   - Si NewBox difiere de la caja actual, se reubica y el motivo queda anotado.
//
// Tras el commit se publican los eventos de cambio; stock_out es un evento
// distinto de stock_in para que los clientes puedan señalizar las salidas.
func (uc *ApplyStockMovementUseCase) Apply(ctx context.Context, userID string, in dto.StockMovementRequest) (*dto.MovementResultDTO, error) {
	if in.Type != entity.MovementTypeIN && in.Type != entity.MovementTypeOUT {
		return nil, domain.ErrInvalidInput
	}
	if userID == "" {
		userID = entity.LocalActorID
	}

	now := time.Now()
	var product *entity.Product
	var ledger *entity.Transaction

	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		txRepo repository.TransactionRepository,
	) error {
		p, err := productRepo.GetForUpdate(in.ProductID)
		if err != nil {
			return err
		}
		if p == nil {
			// Política de salto silencioso: el caller resolvió el id antes de
			// llamar; si ya no existe, la operación completa es un no-op.
			return nil
		}

		reason := in.Reason
		if in.Type == entity.MovementTypeIN {
			p.Quantity += in.Quantity
		} else {
			p.Quantity -= in.Quantity
			if p.Quantity < 0 {
				p.Quantity = 0
			}
		}
		if in.NewBox != "" && in.NewBox != p.Box {
			reason = annotateRelocation(reason, p.Box, in.NewBox)
			p.Box = in.NewBox
		}
		p.UpdatedAt = now
		if err := productRepo.UpdateStock(p); err != nil {
			return err
		}

		tx := &entity.Transaction{
			ID:          uuid.New().String(),
			ProductID:   p.ID,
			ProductName: p.Name,
			Type:        in.Type,
			Quantity:    in.Quantity, // cantidad solicitada, no la recortada
			Reason:      reason,
			CreatedAt:   now,
			CreatedBy:   userID,
		}
		if err := txRepo.Append(tx); err != nil {
			return err
		}

		product = p
		ledger = tx
		return nil
	})
	if err != nil {
		return nil, err
	}

	if product == nil {
		return &dto.MovementResultDTO{Applied: false}, nil
	}

	txDTO := dto.NewTransactionResponse(ledger)
	uc.publisher.Publish(ports.EventTransactionInserted, txDTO)
	uc.publisher.Publish(ports.EventProductsChanged, nil)
	if in.Type == entity.MovementTypeOUT && in.Quantity > 0 {
		uc.publisher.Publish(ports.EventStockOut, txDTO)
	} else {
		uc.publisher.Publish(ports.EventStockIn, txDTO)
	}

	return &dto.MovementResultDTO{
		Applied:     true,
		Product:     dto.NewProductResponse(product),
		Transaction: txDTO,
	}, nil
}

// annotateRelocation anota el cambio de caja en el motivo para auditoría.
func annotateRelocation(reason, from, to string) string {
	note := fmt.Sprintf("(reubicado: %s → %s)", from, to)
	if reason == "" {
		return note
	}
	return reason + " " + note
}
