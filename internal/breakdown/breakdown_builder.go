package breakdown

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// BuildBreakdown groups the in-progress wizard lines by selected reservation.
// It is pure: the same inputs always yield the same groups and nothing is
// mutated, so it can run on every field change.
func BuildBreakdown(
	form FormState,
	reservations []BudgetReservation,
	concepts []PerDiemConcept,
	categories []ExpenseCategory,
) []PartidaGroup {
	reservationsByLine := make(map[int64]BudgetReservation, len(reservations))
	for _, r := range reservations {
		if _, seen := reservationsByLine[r.BudgetLineID]; !seen {
			reservationsByLine[r.BudgetLineID] = r
		}
	}
	conceptsByID := make(map[int64]PerDiemConcept, len(concepts))
	for _, c := range concepts {
		conceptsByID[c.ID] = c
	}
	categoriesByID := make(map[int64]ExpenseCategory, len(categories))
	for _, c := range categories {
		categoriesByID[c.ID] = c
	}
	activities := indexActivities(form.Activities)

	groups := make([]PartidaGroup, 0, len(form.Sources))
	for _, source := range form.Sources {
		reservation, ok := reservationsByLine[source.BudgetLineID]
		if !ok {
			continue
		}

		isPerDiem := IsPerDiemPartida(reservation)
		items := make([]BreakdownItem, 0)
		if isPerDiem {
			for i, d := range form.PerDiems {
				if d.BudgetLineID != source.BudgetLineID {
					continue
				}
				items = append(items, perDiemDraftItem(i, d, conceptsByID, activities))
			}
		} else {
			for i, e := range form.Expenses {
				if e.BudgetLineID != source.BudgetLineID {
					continue
				}
				items = append(items, expenseDraftItem(i, e, categoriesByID))
			}
		}
		for i, p := range form.Payroll {
			if p.BudgetLineID != source.BudgetLineID {
				continue
			}
			items = append(items, payrollItem(draftItemID("nomina", p.ID, i), p.FullName, p.Institution, p.NetAmount, p.LiquidAmount))
		}

		groups = append(groups, newGroup(
			reservation.ID,
			reservation.PartidaName,
			activityDescription(activities, source.ActivityID),
			isPerDiem,
			items,
		))
	}
	return groups
}

// BuildBreakdownFromResponse groups the already-priced lines of a persisted
// request. Activities are joined by reference id; absent nested lists are
// treated as empty.
func BuildBreakdownFromResponse(req *SubmittedRequest) []PartidaGroup {
	if req == nil {
		return []PartidaGroup{}
	}
	activities := indexActivities(req.Activities)

	groups := make([]PartidaGroup, 0, len(req.BudgetLines))
	for _, line := range req.BudgetLines {
		reservation := BudgetReservation{
			ID:           line.ReservationID,
			BudgetLineID: line.BudgetLineID,
			PartidaName:  line.PartidaName,
			Category:     line.Category,
		}
		isPerDiem := IsPerDiemPartida(reservation)

		items := make([]BreakdownItem, 0, len(line.PerDiems)+len(line.Expenses)+len(line.Payroll))
		if isPerDiem {
			for i, v := range line.PerDiems {
				dest := v.Destination
				items = append(items, BreakdownItem{
					ID:           draftItemID("viatico", v.ID, i),
					Name:         labelOr(v.ConceptName, GenericPerDiemLabel),
					Detail:       activityDescription(activities, v.ActivityRefID),
					Destination:  &dest,
					NetAmount:    v.NetAmount,
					LiquidAmount: v.LiquidAmount,
				})
			}
		} else {
			for i, g := range line.Expenses {
				items = append(items, BreakdownItem{
					ID:           draftItemID("gasto", g.ID, i),
					Name:         labelOr(g.CategoryName, GenericExpenseLabel),
					Detail:       documentDetail(g.DocumentType),
					NetAmount:    g.NetAmount,
					LiquidAmount: g.LiquidAmount,
				})
			}
		}
		for i, p := range line.Payroll {
			items = append(items, payrollItem(draftItemID("nomina", p.ID, i), p.FullName, p.Institution, p.NetAmount, p.LiquidAmount))
		}

		groups = append(groups, newGroup(
			line.ReservationID,
			line.PartidaName,
			activityDescription(activities, line.ActivityRefID),
			isPerDiem,
			items,
		))
	}
	return groups
}

// Summarize returns the grand totals across groups.
func Summarize(groups []PartidaGroup) Totals {
	totals := Totals{TotalLiquido: decimal.Zero, TotalPresupuestado: decimal.Zero}
	for _, g := range groups {
		totals.TotalLiquido = totals.TotalLiquido.Add(g.TotalLiquido)
		totals.TotalPresupuestado = totals.TotalPresupuestado.Add(g.TotalPresupuestado)
	}
	return totals
}

// ReservationsFromResponse lists the reservations held by a persisted request.
func ReservationsFromResponse(req *SubmittedRequest) []BudgetReservation {
	if req == nil {
		return nil
	}
	out := make([]BudgetReservation, 0, len(req.BudgetLines))
	for _, line := range req.BudgetLines {
		out = append(out, BudgetReservation{
			ID:               line.ReservationID,
			BudgetLineID:     line.BudgetLineID,
			PartidaName:      line.PartidaName,
			Category:         line.Category,
			ReservedAmount:   line.ReservedAmount,
			AvailableBalance: line.AvailableBalance,
		})
	}
	return out
}

// ToFormState turns a persisted request back into wizard state, which is what
// happens when a request is returned to its submitter.
func ToFormState(req *SubmittedRequest) FormState {
	form := FormState{}
	if req == nil {
		return form
	}
	form.Activities = append([]PlannedActivity(nil), req.Activities...)
	for _, line := range req.BudgetLines {
		form.Sources = append(form.Sources, SelectedSource{
			BudgetLineID: line.BudgetLineID,
			ActivityID:   line.ActivityRefID,
		})
		for _, v := range line.PerDiems {
			form.PerDiems = append(form.PerDiems, PerDiemDraft{
				ID:           v.ID,
				BudgetLineID: line.BudgetLineID,
				ActivityID:   v.ActivityRefID,
				ConceptID:    v.ConceptID,
				Destination:  v.Destination,
				Days:         v.Days,
				Persons:      v.Persons,
			})
		}
		for _, g := range line.Expenses {
			form.Expenses = append(form.Expenses, ExpenseDraft{
				ID:           g.ID,
				BudgetLineID: line.BudgetLineID,
				CategoryID:   g.CategoryID,
				DocumentType: g.DocumentType,
				Quantity:     g.Quantity,
				UnitCost:     g.UnitCost,
			})
		}
		for _, p := range line.Payroll {
			form.Payroll = append(form.Payroll, PayrollDraft{
				ID:           p.ID,
				BudgetLineID: line.BudgetLineID,
				FullName:     p.FullName,
				Institution:  p.Institution,
				NetAmount:    p.NetAmount,
				LiquidAmount: p.LiquidAmount,
			})
		}
	}
	return form
}

func perDiemDraftItem(i int, d PerDiemDraft, concepts map[int64]PerDiemConcept, activities map[string]PlannedActivity) BreakdownItem {
	var concept *PerDiemConcept
	name := GenericPerDiemLabel
	if c, ok := concepts[d.ConceptID]; ok {
		concept = &c
		name = labelOr(c.Name, GenericPerDiemLabel)
	}

	var activity *PlannedActivity
	if a, ok := activities[d.ActivityID]; ok {
		activity = &a
	}
	days, persons := ClampPerDiem(d.Days, d.Persons, d.Destination, activity)
	amounts := DerivePerDiem(PerDiemInput{
		Days:        days,
		Persons:     persons,
		Destination: d.Destination,
		Concept:     concept,
	})

	dest := d.Destination
	return BreakdownItem{
		ID:           draftItemID("viatico", d.ID, i),
		Name:         name,
		Detail:       activityDescription(activities, d.ActivityID),
		Destination:  &dest,
		NetAmount:    amounts.NetAmount,
		LiquidAmount: amounts.LiquidAmount,
	}
}

func expenseDraftItem(i int, e ExpenseDraft, categories map[int64]ExpenseCategory) BreakdownItem {
	name := GenericExpenseLabel
	categoryName := ""
	if c, ok := categories[e.CategoryID]; ok {
		categoryName = c.Name
		name = labelOr(c.Name, GenericExpenseLabel)
	}
	amounts := DeriveExpense(ExpenseInput{
		Quantity:     e.Quantity,
		UnitCost:     e.UnitCost,
		DocumentType: e.DocumentType,
		CategoryName: categoryName,
	})
	return BreakdownItem{
		ID:           draftItemID("gasto", e.ID, i),
		Name:         name,
		Detail:       documentDetail(e.DocumentType),
		NetAmount:    amounts.NetAmount,
		LiquidAmount: amounts.LiquidAmount,
	}
}

func payrollItem(id, fullName, institution string, net, liquid decimal.Decimal) BreakdownItem {
	var detail *string
	if institution != "" {
		detail = &institution
	}
	return BreakdownItem{
		ID:           id,
		Name:         labelOr(fullName, GenericPayrollLabel),
		Detail:       detail,
		NetAmount:    nonNegativeDecimal(net),
		LiquidAmount: nonNegativeDecimal(liquid),
	}
}

func newGroup(reservationID int64, partidaName string, activity *string, isPerDiem bool, items []BreakdownItem) PartidaGroup {
	g := PartidaGroup{
		ReservationID:       reservationID,
		PartidaName:         partidaName,
		ActivityDescription: activity,
		IsPerDiem:           isPerDiem,
		Items:               items,
		TotalLiquido:        decimal.Zero,
		TotalPresupuestado:  decimal.Zero,
	}
	for _, it := range items {
		g.TotalLiquido = g.TotalLiquido.Add(it.LiquidAmount)
		g.TotalPresupuestado = g.TotalPresupuestado.Add(it.NetAmount)
	}
	return g
}

// draftItemID keeps ids deterministic for lines that were never persisted.
func draftItemID(kind, id string, position int) string {
	if id != "" {
		return id
	}
	return fmt.Sprintf("%s-%d", kind, position)
}

func documentDetail(t DocumentType) *string {
	if t == "" {
		return nil
	}
	v := string(t)
	return &v
}

func labelOr(name, fallback string) string {
	if name == "" {
		return fallback
	}
	return name
}
