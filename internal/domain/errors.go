package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")

	// Validaciones de checkout: el pedido no sale hacia el ERP si falta algo.
	ErrEmptyCart           = errors.New("el carrito está vacío")
	ErrClientRequired      = errors.New("debe seleccionar un cliente antes de procesar la venta")
	ErrSalePointRequired   = errors.New("debe seleccionar un punto de venta antes de procesar la venta")
	ErrPaymentTermRequired = errors.New("debe seleccionar una condición de pago")
	ErrPaymentFormRequired = errors.New("debe seleccionar al menos una forma de pago")
	ErrPaymentMismatch     = errors.New("la distribución de pagos no cuadra con el total de la venta")

	// ErrCheckoutInProgress indica que la misma Idempotency-Key tiene un
	// checkout en vuelo: otro request la reservó y aún no registra resultado.
	ErrCheckoutInProgress = errors.New("hay un checkout en curso con la misma clave de idempotencia")

	// ErrUpstream señala fallos de red o respuestas no-2xx del ERP Decima.
	ErrUpstream = errors.New("el ERP no está disponible")
)
