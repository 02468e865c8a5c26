package ledger

// Mensajes de resultado de las operaciones del ledger. Los textos de éxito y
// el de stock insuficiente son parte del contrato de la API.
const (
	MsgInventoryUpdated  = "Inventory updated successfully"
	MsgDamageLogged      = "Damage logged successfully"
	MsgDelayLogged       = "Transport delay logged successfully"
	MsgSaleLogged        = "Sale logged successfully"
	MsgInsufficientStock = "Insufficient stock"
	MsgUnknownProduct    = "Unknown product"
)

// Result par (éxito, mensaje) de una operación mutadora. Los errores de
// almacenamiento se convierten aquí; nunca se propagan como panic.
type Result struct {
	Success bool
	Message string
}

func ok(msg string) Result   { return Result{Success: true, Message: msg} }
func fail(msg string) Result { return Result{Success: false, Message: msg} }
