package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// OperationResponse resultado estructurado de una operación mutadora del
// ledger: éxito/fracaso más mensaje, nunca una excepción hacia el caller.
type OperationResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
