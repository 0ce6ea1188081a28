package utils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateID(t *testing.T) {
	id, err := GenerateID()
	require.NoError(t, err)
	assert.Len(t, id, 6)
	assert.Regexp(t, "^[A-Za-z0-9]+$", id)
}

func TestGenerateBatchID(t *testing.T) {
	id, err := GenerateBatchID()
	require.NoError(t, err)
	assert.Len(t, id, BatchIDSize)
}

func TestPercent(t *testing.T) {
	assert.Equal(t, 0.0, Percent(decimal.NewFromInt(10), decimal.Zero))
	assert.Equal(t, 0.0, Percent(decimal.NewFromInt(10), decimal.NewFromInt(-5)))
	assert.Equal(t, 33.33, Percent(decimal.NewFromInt(1), decimal.NewFromInt(3)))
	assert.Equal(t, 150.0, Percent(decimal.NewFromInt(15), decimal.NewFromInt(10)))
}

func TestRoundWithTwoDecimalPlace(t *testing.T) {
	assert.Equal(t, 0.0, RoundWithTwoDecimalPlace(0))
	assert.Equal(t, 33.33, RoundWithTwoDecimalPlace(33.3333))
	assert.Equal(t, 66.67, RoundWithTwoDecimalPlace(66.666))
}

func TestPrettyJson(t *testing.T) {
	out, err := PrettyJson(map[string]int{"a": 1})
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":1}`, out)
	assert.Contains(t, out, "\n  \"a\"")

	out, err = PrettyJson([]byte(`{"a":1}`))
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":1}`, out)

	_, err = PrettyJson([]byte(`{`))
	assert.Error(t, err)
}

func TestValidateStruct(t *testing.T) {
	type request struct {
		Name  string `json:"name" validate:"required"`
		Month int    `json:"month" validate:"min=1,max=12"`
	}

	assert.Nil(t, ValidateStruct(request{Name: "ANIL", Month: 10}))
	assert.Equal(t, map[string]string{"name": "required", "month": "min"}, ValidateStruct(request{}))
	assert.NotNil(t, ValidateStruct(nil))
}
