package sales

import (
	"context"
	"strconv"
	"time"

	"github.com/jhoicas/decima-pos/internal/application/dto"
	"github.com/jhoicas/decima-pos/internal/domain"
	"github.com/jhoicas/decima-pos/internal/domain/entity"
	"github.com/jhoicas/decima-pos/internal/domain/pricing"
	"github.com/jhoicas/decima-pos/internal/domain/repository"
)

// idempotencyTTL ventana durante la cual una Idempotency-Key repetida
// devuelve el resultado guardado en vez de crear otra venta.
const idempotencyTTL = 24 * time.Hour

// reservationTTL vida de la reservación de una clave mientras el checkout
// está en vuelo. Corta a propósito: si el proceso muere a mitad de camino,
// la clave vuelve a estar disponible sin esperar las 24 horas.
const reservationTTL = 2 * time.Minute

// CheckoutUseCase cierra una venta: valida el carrito y los pagos, arma
// el payload, crea la venta en el ERP y dispara la preparación del DTE.
//
// La creación de la venta y el DTE son dos llamadas al ERP. Si la
// segunda falla, la venta YA existe: el resultado se devuelve como
// éxito parcial (DTEIssued en falso con el detalle del error) para que
// la caja no reintente el checkout completo y duplique la venta.
type CheckoutUseCase struct {
	submitter SaleSubmitter
	catalog   CheckoutCatalog
	records   repository.CheckoutRecordRepository
	now       func() time.Time
}

// NewCheckoutUseCase construye el caso de uso de checkout.
func NewCheckoutUseCase(submitter SaleSubmitter, catalog CheckoutCatalog, records repository.CheckoutRecordRepository) *CheckoutUseCase {
	return &CheckoutUseCase{submitter: submitter, catalog: catalog, records: records, now: time.Now}
}

// Checkout procesa el cierre de venta de un usuario. Con idemKey no
// vacía y ya registrada, responde el resultado guardado con Replayed
// en true sin tocar el ERP.
func (uc *CheckoutUseCase) Checkout(ctx context.Context, userID, idemKey string, req dto.CheckoutRequest) (*dto.CheckoutResponse, error) {
	if idemKey != "" {
		resp, err := uc.replayFor(ctx, idemKey, userID)
		if resp != nil || err != nil {
			return resp, err
		}
	}

	if req.ClientID <= 0 {
		return nil, domain.ErrClientRequired
	}
	if req.SalePointID <= 0 {
		return nil, domain.ErrSalePointRequired
	}
	client, err := uc.catalog.ClientByID(ctx, req.ClientID)
	if err != nil {
		return nil, err
	}
	term, err := uc.resolvePaymentTerm(ctx, req.PaymentTermID)
	if err != nil {
		return nil, err
	}

	items := make([]entity.CartItem, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, entity.CartItem{
			ArticleID: it.ArticleID,
			Name:      it.Name,
			Price:     it.Price,
			Quantity:  it.Quantity,
		})
	}
	dist := make([]pricing.PaymentEntry, 0, len(req.PaymentDistribution))
	for _, d := range req.PaymentDistribution {
		dist = append(dist, pricing.PaymentEntry{PaymentFormID: d.PaymentFormID, Amount: d.Amount})
	}

	built, err := BuildSalePayload(BuildInput{
		Items:           items,
		Client:          client,
		SalePointID:     req.SalePointID,
		PaymentTerm:     term,
		PaymentFormID:   req.PaymentFormID,
		DocumentTypeID:  req.DocumentTypeID,
		CombinedPayment: req.CombinedPayment,
		Distribution:    dist,
		Remark:          req.Remark,
		Now:             uc.now(),
	})
	if err != nil {
		return nil, err
	}

	// La reservación va después de las validaciones (una entrada inválida
	// no quema la clave) y antes de tocar el ERP: dos peticiones
	// concurrentes con la misma clave solo pueden reservar una.
	if idemKey != "" {
		reserved, err := uc.records.Reserve(ctx, idemKey, userID, uc.now(), uc.now().Add(reservationTTL))
		if err != nil {
			return nil, err
		}
		if !reserved {
			resp, err := uc.replayFor(ctx, idemKey, userID)
			if resp != nil || err != nil {
				return resp, err
			}
			return nil, domain.ErrCheckoutInProgress
		}
	}

	saleID, err := uc.submitter.CreateSale(ctx, built.Payload)
	if err != nil {
		if idemKey != "" {
			// Sin venta creada la clave se libera: el reintento debe
			// volver a intentar contra el ERP, no recibir "en curso".
			_ = uc.records.Delete(ctx, idemKey, userID)
		}
		return nil, err
	}

	resp := &dto.CheckoutResponse{
		SaleID:         saleID,
		DocumentNumber: strconv.FormatInt(built.DocumentNumber, 10),
		DocumentTypeID: built.DocumentTypeID,
		Subtotal:       built.Subtotal,
		VAT:            built.VAT,
		Total:          built.Total,
		DTEIssued:      true,
	}
	if err := uc.submitter.PrepareElectronicInvoice(ctx, saleID); err != nil {
		// La venta ya existe en el ERP: éxito parcial, no error.
		resp.DTEIssued = false
		resp.DTEError = err.Error()
	}

	if idemKey != "" {
		created := uc.now()
		rec := &entity.CheckoutRecord{
			Key:            idemKey,
			UserID:         userID,
			SaleID:         saleID,
			DocumentNumber: built.DocumentNumber,
			DocumentTypeID: built.DocumentTypeID,
			Subtotal:       built.Subtotal,
			VAT:            built.VAT,
			Total:          built.Total,
			DTEIssued:      resp.DTEIssued,
			DTEError:       resp.DTEError,
			CreatedAt:      created,
			ExpiresAt:      created.Add(idempotencyTTL),
		}
		// La venta ya salió bien: un fallo guardando el resultado no la
		// invalida, pero la reservación se libera para que un replay no
		// quede respondiendo "en curso" hasta vencer.
		if err := uc.records.Create(ctx, rec); err != nil {
			_ = uc.records.Delete(ctx, idemKey, userID)
		}
	}
	return resp, nil
}

// replayFor resuelve el estado de una clave ya registrada: el resultado
// guardado si el checkout terminó, ErrCheckoutInProgress si sigue en
// vuelo, o nada si la clave está libre o vencida.
func (uc *CheckoutUseCase) replayFor(ctx context.Context, idemKey, userID string) (*dto.CheckoutResponse, error) {
	rec, err := uc.records.GetByKey(ctx, idemKey, userID)
	if err != nil {
		return nil, err
	}
	if rec == nil || rec.IsExpired() {
		return nil, nil
	}
	if rec.IsPending() {
		return nil, domain.ErrCheckoutInProgress
	}
	return replayResponse(rec), nil
}

func (uc *CheckoutUseCase) resolvePaymentTerm(ctx context.Context, termID int64) (*entity.PaymentTerm, error) {
	if termID <= 0 {
		return nil, domain.ErrPaymentTermRequired
	}
	terms, err := uc.catalog.PaymentTerms(ctx)
	if err != nil {
		return nil, err
	}
	for i := range terms {
		if terms[i].ID == termID {
			return &terms[i], nil
		}
	}
	return nil, domain.ErrPaymentTermRequired
}

func replayResponse(rec *entity.CheckoutRecord) *dto.CheckoutResponse {
	return &dto.CheckoutResponse{
		SaleID:         rec.SaleID,
		DocumentNumber: strconv.FormatInt(rec.DocumentNumber, 10),
		DocumentTypeID: rec.DocumentTypeID,
		Subtotal:       rec.Subtotal,
		VAT:            rec.VAT,
		Total:          rec.Total,
		DTEIssued:      rec.DTEIssued,
		DTEError:       rec.DTEError,
		Replayed:       true,
	}
}
