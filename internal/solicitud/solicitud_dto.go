package solicitud

import "go-solicitudes/internal/breakdown"

type BreakdownResponse struct {
	SolicitudID string                   `json:"solicitud_id"`
	Code        string                   `json:"code"`
	Status      Status                   `json:"status"`
	Editable    bool                     `json:"editable"`
	Groups      []breakdown.PartidaGroup `json:"groups"`
	Totals      breakdown.Totals         `json:"totals"`
}

type ExportFile struct {
	Filename    string
	ContentType string
	Content     []byte
}
