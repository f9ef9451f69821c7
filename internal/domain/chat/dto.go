package chat

// Wire shapes are fixed by the existing frontend and assistant bridge;
// field names stay in Spanish.

type AskRequest struct {
	Mensaje string `json:"mensaje"`
}

type AskResponse struct {
	Respuesta string `json:"respuesta"`
	Timestamp string `json:"timestamp"` // YYYY-MM-DD HH:MM:SS
}

// RecordSnapshot is one recent punch serialized into the assistant context.
type RecordSnapshot struct {
	Nombre                  string `json:"nombre"`
	Documento               string `json:"documento"`
	Cargo                   string `json:"cargo"`
	TipoEvento              string `json:"tipo_evento"`
	FechaHora               string `json:"fecha_hora"` // YYYY-MM-DD HH:MM:SS
	ValidadoBiometricamente bool   `json:"validado_biometricamente"`
}
