package solicitud

import (
	"strings"

	solicituderrors "go-solicitudes/internal/solicitud/errors"
)

// Status mirrors the lifecycle owned by the backend. This service only reads
// it to pick a builder and to sanity-check change events.
type Status string

const (
	StatusDraft     Status = "BORRADOR"
	StatusPending   Status = "PENDIENTE"
	StatusObserved  Status = "OBSERVADO"
	StatusApproved  Status = "APROBADO"
	StatusRejected  Status = "RECHAZADO"
	StatusDisbursed Status = "DESEMBOLSADO"
)

var transitions = map[Status][]Status{
	StatusDraft:    {StatusPending},
	StatusPending:  {StatusObserved, StatusApproved, StatusRejected, StatusDisbursed},
	StatusObserved: {StatusPending},
	// An approval forwards the request to the next approver.
	StatusApproved: {StatusPending, StatusDisbursed},
}

func ParseStatus(s string) (Status, error) {
	st := Status(strings.ToUpper(strings.TrimSpace(s)))
	switch st {
	case StatusDraft, StatusPending, StatusObserved, StatusApproved, StatusRejected, StatusDisbursed:
		return st, nil
	}
	return "", solicituderrors.ErrUnknownStatus
}

// Editable reports whether the submitter may still change the lines, in
// which case breakdowns are recomputed from form state.
func (s Status) Editable() bool {
	return s == StatusDraft || s == StatusObserved
}

func (s Status) Terminal() bool {
	return s == StatusRejected || s == StatusDisbursed
}

func IsAllowedTransition(from, to Status) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
