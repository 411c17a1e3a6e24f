package breakdown_test

import (
	"testing"

	"go-solicitudes/internal/breakdown"

	"github.com/stretchr/testify/assert"
)

func catalogFixtures() ([]breakdown.PerDiemConcept, []breakdown.ExpenseCategory) {
	concepts := []breakdown.PerDiemConcept{
		{ID: 1, Name: "Alimentación", InstitutionalRate: ptr("50"), ThirdPartyRate: ptr("40")},
		{ID: 2, Name: "Hospedaje", InstitutionalRate: ptr("120.50")},
	}
	categories := []breakdown.ExpenseCategory{
		{ID: 10, Name: "Compra"},
		{ID: 11, Name: "Alquiler"},
	}
	return concepts, categories
}

func reservationFixtures() []breakdown.BudgetReservation {
	return []breakdown.BudgetReservation{
		{ID: 100, BudgetLineID: 1, PartidaName: "Viáticos por viajes en el interior", ReservedAmount: dec("5000")},
		{ID: 200, BudgetLineID: 2, PartidaName: "Material de escritorio", ReservedAmount: dec("1000")},
	}
}

func TestBuildBreakdown(t *testing.T) {
	concepts, categories := catalogFixtures()
	reservations := reservationFixtures()

	form := breakdown.FormState{
		Sources: []breakdown.SelectedSource{
			{BudgetLineID: 1, ActivityID: "act-1"},
			{BudgetLineID: 2},
		},
		Activities: []breakdown.PlannedActivity{
			{ID: "act-1", Description: "Taller regional", StartDate: "2026-05-04", EndDate: "2026-05-06", InstitutionalHeadcount: 2, ThirdPartyHeadcount: 1},
		},
		PerDiems: []breakdown.PerDiemDraft{
			{BudgetLineID: 1, ActivityID: "act-1", ConceptID: 1, Destination: breakdown.DestinationInstitutional, Days: 3, Persons: 2},
			{ID: "v-2", BudgetLineID: 1, ActivityID: "act-1", ConceptID: 1, Destination: breakdown.DestinationThirdParty, Days: 5, Persons: 4},
			{BudgetLineID: 2, ConceptID: 1, Destination: breakdown.DestinationInstitutional, Days: 1, Persons: 1},
		},
		Expenses: []breakdown.ExpenseDraft{
			{BudgetLineID: 2, CategoryID: 10, DocumentType: breakdown.DocumentReceipt, Quantity: dec("2"), UnitCost: dec("100")},
			{BudgetLineID: 2, CategoryID: 99, DocumentType: breakdown.DocumentInvoice, Quantity: dec("1"), UnitCost: dec("50")},
			{BudgetLineID: 1, CategoryID: 10, DocumentType: breakdown.DocumentInvoice, Quantity: dec("1"), UnitCost: dec("999")},
		},
	}

	groups := breakdown.BuildBreakdown(form, reservations, concepts, categories)
	assert.Len(t, groups, 2)

	t.Run("per-diem group", func(t *testing.T) {
		g := groups[0]
		assert.Equal(t, int64(100), g.ReservationID)
		assert.True(t, g.IsPerDiem)
		if assert.NotNil(t, g.ActivityDescription) {
			assert.Equal(t, "Taller regional", *g.ActivityDescription)
		}
		assert.Len(t, g.Items, 2)

		first := g.Items[0]
		assert.Equal(t, "viatico-0", first.ID)
		assert.Equal(t, "Alimentación", first.Name)
		assert.Equal(t, "300.00", first.LiquidAmount.StringFixed(2))
		assert.Equal(t, "344.83", first.NetAmount.StringFixed(2))
		if assert.NotNil(t, first.Destination) {
			assert.Equal(t, breakdown.DestinationInstitutional, *first.Destination)
		}

		// 5 days and 4 persons clamp to 3 days and 1 third-party person.
		second := g.Items[1]
		assert.Equal(t, "v-2", second.ID)
		assert.Equal(t, "120.00", second.LiquidAmount.StringFixed(2))
		assert.Equal(t, "142.86", second.NetAmount.StringFixed(2))

		assert.Equal(t, "420.00", g.TotalLiquido.StringFixed(2))
		assert.Equal(t, "487.69", g.TotalPresupuestado.StringFixed(2))
	})

	t.Run("expense group", func(t *testing.T) {
		g := groups[1]
		assert.Equal(t, int64(200), g.ReservationID)
		assert.False(t, g.IsPerDiem)
		assert.Nil(t, g.ActivityDescription)
		assert.Len(t, g.Items, 2)

		assert.Equal(t, "Compra", g.Items[0].Name)
		assert.Equal(t, "216.00", g.Items[0].LiquidAmount.StringFixed(2))
		if assert.NotNil(t, g.Items[0].Detail) {
			assert.Equal(t, "RECIBO", *g.Items[0].Detail)
		}
		assert.Equal(t, breakdown.GenericExpenseLabel, g.Items[1].Name)
		assert.Equal(t, "gasto-1", g.Items[1].ID)

		assert.Equal(t, "266.00", g.TotalLiquido.StringFixed(2))
		assert.Equal(t, "250.00", g.TotalPresupuestado.StringFixed(2))
	})

	t.Run("totals equal sum of items", func(t *testing.T) {
		for _, g := range groups {
			liquid, net := dec("0"), dec("0")
			for _, it := range g.Items {
				liquid = liquid.Add(it.LiquidAmount)
				net = net.Add(it.NetAmount)
			}
			assert.True(t, liquid.Equal(g.TotalLiquido))
			assert.True(t, net.Equal(g.TotalPresupuestado))
		}
	})

	t.Run("idempotent", func(t *testing.T) {
		again := breakdown.BuildBreakdown(form, reservations, concepts, categories)
		assert.Equal(t, groups, again)
	})
}

func TestBuildBreakdown_ReservationLookup(t *testing.T) {
	concepts, categories := catalogFixtures()

	t.Run("found with no items", func(t *testing.T) {
		form := breakdown.FormState{Sources: []breakdown.SelectedSource{{BudgetLineID: 2}}}

		groups := breakdown.BuildBreakdown(form, reservationFixtures(), concepts, categories)

		assert.Len(t, groups, 1)
		assert.NotNil(t, groups[0].Items)
		assert.Empty(t, groups[0].Items)
		assert.True(t, groups[0].TotalLiquido.IsZero())
		assert.True(t, groups[0].TotalPresupuestado.IsZero())
	})

	t.Run("not found is omitted", func(t *testing.T) {
		form := breakdown.FormState{Sources: []breakdown.SelectedSource{{BudgetLineID: 42}, {BudgetLineID: 1}}}

		groups := breakdown.BuildBreakdown(form, reservationFixtures(), concepts, categories)

		assert.Len(t, groups, 1)
		assert.Equal(t, int64(100), groups[0].ReservationID)
	})

	t.Run("empty inputs", func(t *testing.T) {
		groups := breakdown.BuildBreakdown(breakdown.FormState{}, nil, nil, nil)
		assert.NotNil(t, groups)
		assert.Empty(t, groups)
	})
}

func TestBuildBreakdown_DoesNotMutateInputs(t *testing.T) {
	concepts, categories := catalogFixtures()
	form := breakdown.FormState{
		Sources:    []breakdown.SelectedSource{{BudgetLineID: 1, ActivityID: "act-1"}},
		Activities: []breakdown.PlannedActivity{{ID: "act-1", StartDate: "2026-01-01", EndDate: "2026-01-01", InstitutionalHeadcount: 1}},
		PerDiems:   []breakdown.PerDiemDraft{{BudgetLineID: 1, ActivityID: "act-1", ConceptID: 1, Destination: breakdown.DestinationInstitutional, Days: 9, Persons: 9}},
	}

	breakdown.BuildBreakdown(form, reservationFixtures(), concepts, categories)

	assert.Equal(t, 9, form.PerDiems[0].Days)
	assert.Equal(t, 9, form.PerDiems[0].Persons)
}

func TestBuildBreakdown_Payroll(t *testing.T) {
	concepts, categories := catalogFixtures()
	form := breakdown.FormState{
		Sources: []breakdown.SelectedSource{{BudgetLineID: 2}},
		Payroll: []breakdown.PayrollDraft{
			{BudgetLineID: 2, FullName: "Ana Quispe", Institution: "UMSA", NetAmount: dec("1000"), LiquidAmount: dec("870")},
			{BudgetLineID: 2, NetAmount: dec("0"), LiquidAmount: dec("0")},
			{BudgetLineID: 1, FullName: "Otro", NetAmount: dec("5"), LiquidAmount: dec("5")},
		},
	}

	groups := breakdown.BuildBreakdown(form, reservationFixtures(), concepts, categories)

	assert.Len(t, groups, 1)
	assert.Len(t, groups[0].Items, 2)
	assert.Equal(t, "Ana Quispe", groups[0].Items[0].Name)
	if assert.NotNil(t, groups[0].Items[0].Detail) {
		assert.Equal(t, "UMSA", *groups[0].Items[0].Detail)
	}
	assert.Equal(t, breakdown.GenericPayrollLabel, groups[0].Items[1].Name)
	assert.Equal(t, "nomina-1", groups[0].Items[1].ID)
	assert.Equal(t, "870.00", groups[0].TotalLiquido.StringFixed(2))
	assert.Equal(t, "1000.00", groups[0].TotalPresupuestado.StringFixed(2))
}

func submittedFixture() *breakdown.SubmittedRequest {
	return &breakdown.SubmittedRequest{
		ID:     "55",
		Code:   "SOL-2026-055",
		Status: "PENDIENTE",
		Activities: []breakdown.PlannedActivity{
			{ID: "7", Description: "Taller regional"},
			{ID: "8", Description: "Visita de campo", InstitutionalHeadcount: 5, ThirdPartyHeadcount: 5},
		},
		BudgetLines: []breakdown.PersistedBudgetLine{
			{
				ReservationID: 100,
				BudgetLineID:  1,
				PartidaName:   "VIATICOS",
				ActivityRefID: "7",
				PerDiems: []breakdown.PersistedPerDiem{
					{ID: "v1", ActivityRefID: "8", ConceptID: 1, ConceptName: "Alimentación", Destination: breakdown.DestinationInstitutional, Days: 3, Persons: 2, NetAmount: dec("344.83"), LiquidAmount: dec("300")},
					{ID: "v2", ActivityRefID: "99", ConceptName: "", Destination: breakdown.DestinationThirdParty, NetAmount: dec("10"), LiquidAmount: dec("8.40")},
				},
			},
			{
				ReservationID: 200,
				BudgetLineID:  2,
				PartidaName:   "Servicios",
				Expenses: []breakdown.PersistedExpense{
					{ID: "g1", CategoryID: 10, CategoryName: "Compra", DocumentType: breakdown.DocumentReceipt, Quantity: dec("2"), UnitCost: dec("100"), NetAmount: dec("200"), LiquidAmount: dec("216")},
				},
				Payroll: []breakdown.PersistedPayrollEntry{
					{ID: "n1", FullName: "Ana Quispe", NetAmount: dec("500"), LiquidAmount: dec("435")},
				},
			},
			{
				ReservationID: 300,
				BudgetLineID:  3,
				PartidaName:   "Pasajes",
			},
		},
	}
}

func TestBuildBreakdownFromResponse(t *testing.T) {
	groups := breakdown.BuildBreakdownFromResponse(submittedFixture())
	assert.Len(t, groups, 3)

	t.Run("per-diem line uses persisted amounts", func(t *testing.T) {
		g := groups[0]
		assert.True(t, g.IsPerDiem)
		if assert.NotNil(t, g.ActivityDescription) {
			assert.Equal(t, "Taller regional", *g.ActivityDescription)
		}
		assert.Len(t, g.Items, 2)
		assert.Equal(t, "v1", g.Items[0].ID)
		if assert.NotNil(t, g.Items[0].Detail) {
			assert.Equal(t, "Visita de campo", *g.Items[0].Detail)
		}
		assert.Nil(t, g.Items[1].Detail)
		assert.Equal(t, breakdown.GenericPerDiemLabel, g.Items[1].Name)
		assert.Equal(t, "308.40", g.TotalLiquido.StringFixed(2))
		assert.Equal(t, "354.83", g.TotalPresupuestado.StringFixed(2))
	})

	t.Run("expense line with payroll", func(t *testing.T) {
		g := groups[1]
		assert.False(t, g.IsPerDiem)
		assert.Len(t, g.Items, 2)
		assert.Equal(t, "Compra", g.Items[0].Name)
		assert.Equal(t, "Ana Quispe", g.Items[1].Name)
		assert.Equal(t, "651.00", g.TotalLiquido.StringFixed(2))
		assert.Equal(t, "700.00", g.TotalPresupuestado.StringFixed(2))
	})

	t.Run("absent arrays are empty", func(t *testing.T) {
		g := groups[2]
		assert.NotNil(t, g.Items)
		assert.Empty(t, g.Items)
		assert.True(t, g.TotalLiquido.IsZero())
	})

	t.Run("nil request", func(t *testing.T) {
		groups := breakdown.BuildBreakdownFromResponse(nil)
		assert.NotNil(t, groups)
		assert.Empty(t, groups)
	})
}

func TestSummarize(t *testing.T) {
	totals := breakdown.Summarize(breakdown.BuildBreakdownFromResponse(submittedFixture()))
	assert.Equal(t, "959.40", totals.TotalLiquido.StringFixed(2))
	assert.Equal(t, "1054.83", totals.TotalPresupuestado.StringFixed(2))

	empty := breakdown.Summarize(nil)
	assert.True(t, empty.TotalLiquido.IsZero())
	assert.True(t, empty.TotalPresupuestado.IsZero())
}

func TestToFormState_RoundTripsThroughFormBuilder(t *testing.T) {
	concepts, categories := catalogFixtures()
	req := submittedFixture()

	form := breakdown.ToFormState(req)
	assert.Len(t, form.Sources, 3)
	assert.Len(t, form.PerDiems, 2)
	assert.Len(t, form.Expenses, 1)
	assert.Len(t, form.Payroll, 1)
	assert.Equal(t, "8", form.PerDiems[0].ActivityID)
	assert.Equal(t, int64(2), form.Expenses[0].BudgetLineID)

	groups := breakdown.BuildBreakdown(form, breakdown.ReservationsFromResponse(req), concepts, categories)
	assert.Len(t, groups, 3)

	// Re-derived from the current catalog, so the first per-diem matches the
	// persisted value and the expense reproduces its server amount.
	assert.Equal(t, "300.00", groups[0].Items[0].LiquidAmount.StringFixed(2))
	assert.Equal(t, "216.00", groups[1].Items[0].LiquidAmount.StringFixed(2))

	assert.Empty(t, breakdown.ToFormState(nil).Sources)
	assert.Nil(t, breakdown.ReservationsFromResponse(nil))
}
