package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// IDResponse respuesta de una creación: id asignado por el almacenamiento.
type IDResponse struct {
	ID int64 `json:"id"`
}

// HealthResponse estado del proceso y de la base de datos.
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}
