package catalog_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"go-solicitudes/internal/breakdown"
	"go-solicitudes/internal/catalog"
	"go-solicitudes/internal/sgp/mock"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type serviceDeps struct {
	client    *mock.MockClient
	redismock redismock.ClientMock
	service   catalog.Service
}

func setupCatalogService(t *testing.T) serviceDeps {
	ctrl := gomock.NewController(t)
	client := mock.NewMockClient(ctrl)
	rdb, rmock := redismock.NewClientMock()
	t.Cleanup(func() {
		assert.NoError(t, rmock.ExpectationsWereMet())
	})
	return serviceDeps{
		client:    client,
		redismock: rmock,
		service:   catalog.NewService(client, rdb),
	}
}

func rate(v string) *string { return &v }

func conceptsFixture() []breakdown.PerDiemConcept {
	return []breakdown.PerDiemConcept{
		{ID: 1, Name: "Alimentación", InstitutionalRate: rate("50.00"), ThirdPartyRate: rate("40.00")},
		{ID: 2, Name: "Hospedaje", InstitutionalRate: rate("120.00")},
	}
}

func categoriesFixture() []breakdown.ExpenseCategory {
	return []breakdown.ExpenseCategory{
		{ID: 10, Name: "Compra"},
		{ID: 11, Name: "Alquiler de ambientes"},
	}
}

func TestCatalogService_PerDiemConcepts(t *testing.T) {
	ctx := context.Background()

	t.Run("cache hit", func(t *testing.T) {
		deps := setupCatalogService(t)
		cachedData, _ := json.Marshal(conceptsFixture())
		deps.redismock.ExpectGet(catalog.PerDiemConceptsKey).SetVal(string(cachedData))

		res, err := deps.service.PerDiemConcepts(ctx)

		assert.NoError(t, err)
		assert.Equal(t, conceptsFixture(), res)
	})

	t.Run("cache miss loads backend and stores", func(t *testing.T) {
		deps := setupCatalogService(t)
		data := conceptsFixture()
		jsonData, _ := json.Marshal(data)

		deps.redismock.ExpectGet(catalog.PerDiemConceptsKey).RedisNil()
		deps.client.EXPECT().GetPerDiemConcepts(gomock.Any()).Return(data, nil)
		deps.redismock.ExpectSet(catalog.PerDiemConceptsKey, jsonData, catalog.CacheTTL).SetVal("OK")

		res, err := deps.service.PerDiemConcepts(ctx)

		assert.NoError(t, err)
		assert.Len(t, res, 2)
		assert.Equal(t, "Hospedaje", res[1].Name)
	})

	t.Run("redis unavailable still serves backend", func(t *testing.T) {
		deps := setupCatalogService(t)
		data := conceptsFixture()
		jsonData, _ := json.Marshal(data)

		deps.redismock.ExpectGet(catalog.PerDiemConceptsKey).SetErr(errors.New("connection refused"))
		deps.client.EXPECT().GetPerDiemConcepts(gomock.Any()).Return(data, nil)
		deps.redismock.ExpectSet(catalog.PerDiemConceptsKey, jsonData, catalog.CacheTTL).SetErr(errors.New("connection refused"))

		res, err := deps.service.PerDiemConcepts(ctx)

		assert.NoError(t, err)
		assert.Equal(t, data, res)
	})

	t.Run("backend error is not cached", func(t *testing.T) {
		deps := setupCatalogService(t)
		deps.redismock.ExpectGet(catalog.PerDiemConceptsKey).RedisNil()
		deps.client.EXPECT().GetPerDiemConcepts(gomock.Any()).Return(nil, errors.New("backend down"))

		res, err := deps.service.PerDiemConcepts(ctx)

		assert.Error(t, err)
		assert.Nil(t, res)
	})
}

func TestCatalogService_ExpenseCategories(t *testing.T) {
	ctx := context.Background()

	t.Run("cache miss loads backend and stores", func(t *testing.T) {
		deps := setupCatalogService(t)
		data := categoriesFixture()
		jsonData, _ := json.Marshal(data)

		deps.redismock.ExpectGet(catalog.ExpenseCategoriesKey).RedisNil()
		deps.client.EXPECT().GetExpenseCategories(gomock.Any()).Return(data, nil)
		deps.redismock.ExpectSet(catalog.ExpenseCategoriesKey, jsonData, catalog.CacheTTL).SetVal("OK")

		res, err := deps.service.ExpenseCategories(ctx)

		assert.NoError(t, err)
		assert.Equal(t, data, res)
	})

	t.Run("corrupt cache entry falls back to backend", func(t *testing.T) {
		deps := setupCatalogService(t)
		data := categoriesFixture()
		jsonData, _ := json.Marshal(data)

		deps.redismock.ExpectGet(catalog.ExpenseCategoriesKey).SetVal("{not json")
		deps.client.EXPECT().GetExpenseCategories(gomock.Any()).Return(data, nil)
		deps.redismock.ExpectSet(catalog.ExpenseCategoriesKey, jsonData, catalog.CacheTTL).SetVal("OK")

		res, err := deps.service.ExpenseCategories(ctx)

		assert.NoError(t, err)
		assert.Equal(t, data, res)
	})
}

func TestCatalogService_Invalidate(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		deps := setupCatalogService(t)
		deps.redismock.ExpectDel(catalog.PerDiemConceptsKey, catalog.ExpenseCategoriesKey).SetVal(2)

		assert.NoError(t, deps.service.Invalidate(ctx))
	})

	t.Run("redis error", func(t *testing.T) {
		deps := setupCatalogService(t)
		deps.redismock.ExpectDel(catalog.PerDiemConceptsKey, catalog.ExpenseCategoriesKey).SetErr(errors.New("readonly"))

		assert.Error(t, deps.service.Invalidate(ctx))
	})
}

func TestCatalogService_WithoutRedis(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock.NewMockClient(ctrl)
	svc := catalog.NewService(client, nil)

	client.EXPECT().GetExpenseCategories(gomock.Any()).Return(categoriesFixture(), nil).Times(2)

	for i := 0; i < 2; i++ {
		res, err := svc.ExpenseCategories(context.Background())
		assert.NoError(t, err)
		assert.Len(t, res, 2)
	}
	assert.NoError(t, svc.Invalidate(context.Background()))
}
