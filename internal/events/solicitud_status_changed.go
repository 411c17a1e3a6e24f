package events

import "time"

const SolicitudStatusChangedTopic = "sgp.solicitud.status.v1"

const SolicitudStatusChangedType = "solicitud.status_changed"

type SolicitudStatusChangedEvent struct {
	EventType   string    `json:"event_type"`
	SolicitudID string    `json:"solicitud_id"`
	FromStatus  string    `json:"from_status"`
	ToStatus    string    `json:"to_status"`
	ActorID     string    `json:"actor_id"`
	OccurredAt  time.Time `json:"occurred_at"`
}
