package breakdown

import (
	"context"

	breakdownerrors "go-solicitudes/internal/breakdown/errors"
	"go-solicitudes/internal/shared/contextutil"

	"go.uber.org/zap"
)

//go:generate mockgen -source=breakdown_service.go -destination=mock/breakdown_service_mock.go -package=mock
type CatalogProvider interface {
	PerDiemConcepts(ctx context.Context) ([]PerDiemConcept, error)
	ExpenseCategories(ctx context.Context) ([]ExpenseCategory, error)
}

type Service interface {
	Preview(ctx context.Context, req PreviewRequest) (BreakdownResponse, error)
	DerivePerDiem(ctx context.Context, req PerDiemDerivationRequest) (PerDiemDerivationResponse, error)
	DeriveExpense(ctx context.Context, req ExpenseDerivationRequest) (ExpenseDerivationResponse, error)
	ValidatePayroll(ctx context.Context, req PayrollValidationRequest) (PayrollValidationResponse, error)
}

type service struct {
	catalogs CatalogProvider
	logger   *zap.Logger
}

func NewService(catalogs CatalogProvider, logger ...*zap.Logger) Service {
	l := zap.L().Named("breakdown.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("breakdown.service")
	}
	return &service{catalogs: catalogs, logger: l}
}

func (s *service) loadCatalogs(ctx context.Context) ([]PerDiemConcept, []ExpenseCategory, error) {
	concepts, err := s.catalogs.PerDiemConcepts(ctx)
	if err != nil {
		s.logger.Error("load per-diem concepts failed", zap.Error(err))
		return nil, nil, breakdownerrors.ErrCatalogUnavailable
	}
	categories, err := s.catalogs.ExpenseCategories(ctx)
	if err != nil {
		s.logger.Error("load expense categories failed", zap.Error(err))
		return nil, nil, breakdownerrors.ErrCatalogUnavailable
	}
	return concepts, categories, nil
}

func (s *service) Preview(ctx context.Context, req PreviewRequest) (BreakdownResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("preview breakdown requested",
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.Int("sources", len(req.Form.Sources)),
		zap.Int("per_diems", len(req.Form.PerDiems)),
		zap.Int("expenses", len(req.Form.Expenses)),
	)

	concepts, categories, err := s.loadCatalogs(ctx)
	if err != nil {
		return BreakdownResponse{}, err
	}

	groups := BuildBreakdown(EnsureActivityIDs(req.Form), req.Reservations, concepts, categories)
	return BreakdownResponse{Groups: groups, Totals: Summarize(groups)}, nil
}

func (s *service) DerivePerDiem(ctx context.Context, req PerDiemDerivationRequest) (PerDiemDerivationResponse, error) {
	concepts, err := s.catalogs.PerDiemConcepts(ctx)
	if err != nil {
		s.logger.Error("derive per-diem load concepts failed", zap.Error(err))
		return PerDiemDerivationResponse{}, breakdownerrors.ErrCatalogUnavailable
	}

	var concept *PerDiemConcept
	name := GenericPerDiemLabel
	for i := range concepts {
		if concepts[i].ID == req.ConceptID {
			concept = &concepts[i]
			name = labelOr(concept.Name, GenericPerDiemLabel)
			break
		}
	}
	if concept == nil {
		s.logger.Warn("derive per-diem concept not in catalog", zap.Int64("concept_id", req.ConceptID))
	}

	days, persons := ClampPerDiem(req.Days, req.Persons, req.Destination, req.Activity)
	amounts := DerivePerDiem(PerDiemInput{
		Days:        days,
		Persons:     persons,
		Destination: req.Destination,
		Concept:     concept,
	})

	return PerDiemDerivationResponse{
		ConceptName:  name,
		Days:         days,
		Persons:      persons,
		UnitRate:     amounts.UnitRate,
		NetAmount:    amounts.NetAmount,
		LiquidAmount: amounts.LiquidAmount,
	}, nil
}

func (s *service) DeriveExpense(ctx context.Context, req ExpenseDerivationRequest) (ExpenseDerivationResponse, error) {
	categories, err := s.catalogs.ExpenseCategories(ctx)
	if err != nil {
		s.logger.Error("derive expense load categories failed", zap.Error(err))
		return ExpenseDerivationResponse{}, breakdownerrors.ErrCatalogUnavailable
	}

	name := GenericExpenseLabel
	categoryName := ""
	for _, c := range categories {
		if c.ID == req.CategoryID {
			categoryName = c.Name
			name = labelOr(c.Name, GenericExpenseLabel)
			break
		}
	}

	amounts := DeriveExpense(ExpenseInput{
		Quantity:     req.Quantity,
		UnitCost:     req.UnitCost,
		DocumentType: req.DocumentType,
		CategoryName: categoryName,
	})

	return ExpenseDerivationResponse{
		CategoryName:    name,
		NetAmount:       amounts.NetAmount,
		LiquidAmount:    amounts.LiquidAmount,
		WithholdingRate: amounts.WithholdingRate,
		Taxes:           amounts.Taxes,
	}, nil
}

func (s *service) ValidatePayroll(ctx context.Context, req PayrollValidationRequest) (PayrollValidationResponse, error) {
	if err := ValidatePayrollEntry(req.NetAmount, req.LiquidAmount); err != nil {
		s.logger.Debug("payroll entry rejected",
			zap.String("full_name", req.FullName),
			zap.Error(err),
		)
		return PayrollValidationResponse{}, err
	}
	return PayrollValidationResponse{Valid: true}, nil
}
