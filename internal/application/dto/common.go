package dto

// ServiceResponse es el resultado uniforme de todas las operaciones de
// servicio: bandera de éxito, código de estado numérico y mensaje legible.
// La capa HTTP solo lo traduce a estado y cuerpo.
type ServiceResponse struct {
	Succeeded  bool   `json:"isSucceed"`
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
}

// NewServiceResponse construye un ServiceResponse.
func NewServiceResponse(succeeded bool, statusCode int, message string) ServiceResponse {
	return ServiceResponse{
		Succeeded:  succeeded,
		StatusCode: statusCode,
		Message:    message,
	}
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
