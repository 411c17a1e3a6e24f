package breakdown

import (
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const perDiemMarker = "VIATICO"

// normalizeName trims, strips diacritics and upper-cases a catalog name.
func normalizeName(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.ToUpper(strings.TrimSpace(out))
}

// IsPerDiemPartida is the only place that decides whether a reservation holds
// per-diem lines. The explicit category wins; the name match stays until the
// budget catalog sends a category for every partida.
func IsPerDiemPartida(r BudgetReservation) bool {
	switch r.Category {
	case PartidaCategoryPerDiem:
		return true
	case PartidaCategoryExpense:
		return false
	}
	return strings.Contains(normalizeName(r.PartidaName), perDiemMarker)
}

// DayCount is the inclusive number of days between StartDate and EndDate, or
// 0 when the range cannot be computed.
func (a PlannedActivity) DayCount() int {
	start, err := time.Parse("2006-01-02", a.StartDate)
	if err != nil {
		return 0
	}
	end, err := time.Parse("2006-01-02", a.EndDate)
	if err != nil {
		return 0
	}
	if start.After(end) {
		return 0
	}
	return int(end.Sub(start).Hours()/24) + 1
}

// EnsureActivityIDs returns a copy of the form where every activity has an id
// and every per-diem draft references its activity by id. Legacy index
// references are rewritten; the input is left untouched.
func EnsureActivityIDs(form FormState) FormState {
	out := form

	out.Activities = make([]PlannedActivity, len(form.Activities))
	copy(out.Activities, form.Activities)
	for i := range out.Activities {
		if out.Activities[i].ID == "" {
			out.Activities[i].ID = uuid.NewString()
		}
	}

	out.PerDiems = make([]PerDiemDraft, len(form.PerDiems))
	copy(out.PerDiems, form.PerDiems)
	for i := range out.PerDiems {
		d := &out.PerDiems[i]
		if d.ActivityID == "" && d.ActivityIndex != nil {
			idx := *d.ActivityIndex
			if idx >= 0 && idx < len(out.Activities) {
				d.ActivityID = out.Activities[idx].ID
			}
		}
		d.ActivityIndex = nil
	}

	out.Sources = make([]SelectedSource, len(form.Sources))
	copy(out.Sources, form.Sources)
	out.Expenses = append([]ExpenseDraft(nil), form.Expenses...)
	out.Payroll = append([]PayrollDraft(nil), form.Payroll...)
	return out
}

func indexActivities(activities []PlannedActivity) map[string]PlannedActivity {
	idx := make(map[string]PlannedActivity, len(activities))
	for _, a := range activities {
		if a.ID != "" {
			idx[a.ID] = a
		}
	}
	return idx
}

func activityDescription(activities map[string]PlannedActivity, id string) *string {
	if id == "" {
		return nil
	}
	a, ok := activities[id]
	if !ok || a.Description == "" {
		return nil
	}
	desc := a.Description
	return &desc
}
