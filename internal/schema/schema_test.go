package schema_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itsatony/agrisynth/internal/generator"
	"github.com/itsatony/agrisynth/internal/models"
	"github.com/itsatony/agrisynth/internal/schema"
)

func TestEmbeddedSchemasCompile(t *testing.T) {
	v, err := schema.NewValidator()
	require.NoError(t, err)

	for _, k := range []schema.Kind{
		schema.KindUser, schema.KindFarm, schema.KindSensorReading, schema.KindPestDetection,
		schema.KindLivestock, schema.KindLivestockHealth, schema.KindProduct, schema.KindOrder, schema.KindDataset,
	} {
		assert.True(t, v.Has(k), k)
	}
}

func TestGeneratedDatasetMatchesSchema(t *testing.T) {
	v, err := schema.NewValidator()
	require.NoError(t, err)

	now := time.Date(2024, time.March, 3, 9, 0, 0, 0, time.UTC)
	g := generator.New(generator.WithSeed(11), generator.WithClock(func() time.Time { return now }))
	ds, err := g.GenerateDataset(generator.DatasetConfig{
		Users: 12, Farms: 4, SensorDays: 2, PestDetections: 3, Livestock: 4, LivestockHealthDays: 1, Products: 5, Orders: 6,
	})
	require.NoError(t, err)

	require.NoError(t, v.Validate(schema.KindDataset, ds))
	require.NoError(t, v.Validate(schema.KindUser, ds.Users[0]))
	require.NoError(t, v.Validate(schema.KindOrder, ds.Orders[0]))
}

func TestInvalidRecords(t *testing.T) {
	v, err := schema.NewValidator()
	require.NoError(t, err)

	order := models.Order{
		ID: "ord_1", BuyerID: "usr_1", ProductID: "prd_1", Quantity: 0,
		TotalPrice: decimal.NewFromInt(10), Status: "lost", Currency: "USD",
		CreatedAt: time.Now(), UpdatedAt: time.Now(),
	}
	err = v.Validate(schema.KindOrder, order)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid order")

	err = v.ValidateJSON(schema.KindUser, []byte(`{"id":"usr_1","name":"","role":"guest"}`))
	require.Error(t, err)

	err = v.Validate("tractor", struct{}{})
	require.Error(t, err)
}
