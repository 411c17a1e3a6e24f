package sgp

import (
	"strings"

	"go-solicitudes/internal/breakdown"
)

func toPerDiemConcepts(in []conceptoViaticoDTO) []breakdown.PerDiemConcept {
	out := make([]breakdown.PerDiemConcept, 0, len(in))
	for _, c := range in {
		out = append(out, breakdown.PerDiemConcept{
			ID:                c.ID.Int64(),
			Name:              c.Nombre,
			InstitutionalRate: c.PrecioInstitucional.Value,
			ThirdPartyRate:    c.PrecioTerceros.Value,
		})
	}
	return out
}

func toExpenseCategories(in []tipoGastoDTO) []breakdown.ExpenseCategory {
	out := make([]breakdown.ExpenseCategory, 0, len(in))
	for _, c := range in {
		out = append(out, breakdown.ExpenseCategory{ID: c.ID.Int64(), Name: c.Nombre})
	}
	return out
}

func toDestination(s string) breakdown.DestinationType {
	if strings.EqualFold(strings.TrimSpace(s), string(breakdown.DestinationThirdParty)) {
		return breakdown.DestinationThirdParty
	}
	return breakdown.DestinationInstitutional
}

func toDocumentType(s string) breakdown.DocumentType {
	if strings.EqualFold(strings.TrimSpace(s), string(breakdown.DocumentReceipt)) {
		return breakdown.DocumentReceipt
	}
	return breakdown.DocumentInvoice
}

func toCategory(s string) breakdown.PartidaCategory {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case string(breakdown.PartidaCategoryPerDiem):
		return breakdown.PartidaCategoryPerDiem
	case string(breakdown.PartidaCategoryExpense):
		return breakdown.PartidaCategoryExpense
	}
	return ""
}

func toSubmittedRequest(in solicitudDTO) *breakdown.SubmittedRequest {
	req := &breakdown.SubmittedRequest{
		ID:          string(in.ID),
		Code:        in.CodigoSolicitud,
		Status:      strings.ToUpper(strings.TrimSpace(in.Estado)),
		Activities:  make([]breakdown.PlannedActivity, 0, len(in.Planificaciones)),
		BudgetLines: make([]breakdown.PersistedBudgetLine, 0, len(in.Presupuestos)),
	}

	for _, p := range in.Planificaciones {
		req.Activities = append(req.Activities, breakdown.PlannedActivity{
			ID:                     string(p.ID),
			Description:            p.Actividad,
			StartDate:              p.FechaInicio,
			EndDate:                p.FechaFin,
			InstitutionalHeadcount: p.CantInstitucional,
			ThirdPartyHeadcount:    p.CantTerceros,
		})
	}

	for _, b := range in.Presupuestos {
		line := breakdown.PersistedBudgetLine{
			ReservationID:    b.ID.Int64(),
			BudgetLineID:     b.IDPoa.Int64(),
			PartidaName:      b.Partida,
			Category:         toCategory(b.Categoria),
			ActivityRefID:    string(b.IDPlanificacion),
			ReservedAmount:   b.MontoReservado.Decimal,
			AvailableBalance: b.SaldoDisponible.Decimal,
		}
		for _, v := range b.Viaticos {
			line.PerDiems = append(line.PerDiems, breakdown.PersistedPerDiem{
				ID:            string(v.ID),
				ActivityRefID: string(v.IDPlanificacion),
				ConceptID:     v.IDConcepto.Int64(),
				ConceptName:   v.Concepto,
				Destination:   toDestination(v.TipoDestino),
				Days:          v.Dias,
				Persons:       v.CantPersonas,
				NetAmount:     v.MontoNeto.Decimal,
				LiquidAmount:  v.LiquidoPagable.Decimal,
			})
		}
		for _, g := range b.Gastos {
			line.Expenses = append(line.Expenses, breakdown.PersistedExpense{
				ID:           string(g.ID),
				CategoryID:   g.IDTipoGasto.Int64(),
				CategoryName: g.TipoGasto,
				DocumentType: toDocumentType(g.TipoDocumento),
				Quantity:     g.Cantidad.Decimal,
				UnitCost:     g.CostoUnitario.Decimal,
				NetAmount:    g.MontoNeto.Decimal,
				LiquidAmount: g.LiquidoPagable.Decimal,
			})
		}
		for _, n := range b.Nominas {
			line.Payroll = append(line.Payroll, breakdown.PersistedPayrollEntry{
				ID:           string(n.ID),
				FullName:     n.NombreCompleto,
				Institution:  n.Institucion,
				NetAmount:    n.MontoNeto.Decimal,
				LiquidAmount: n.LiquidoPagable.Decimal,
			})
		}
		req.BudgetLines = append(req.BudgetLines, line)
	}
	return req
}
