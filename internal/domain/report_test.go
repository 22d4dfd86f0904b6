package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonth_Bounds(t *testing.T) {
	start, end, err := Month("2025-03").Bounds()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC), end)

	// December rolls into the next year
	start, end, err = Month("2024-12").Bounds()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), end)

	_, _, err = Month("03-2025").Bounds()
	assert.Error(t, err)

	_, _, err = Month("").Bounds()
	assert.Error(t, err)
}

func TestMonth_Contains(t *testing.T) {
	m := Month("2025-03")

	assert.True(t, m.Contains(time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, m.Contains(time.Date(2025, 3, 31, 23, 59, 59, 0, time.UTC)))
	assert.False(t, m.Contains(time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)))
	assert.False(t, m.Contains(time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC)))
	assert.False(t, Month("bogus").Contains(time.Now()))
}

func TestUpsertGoalsInput_Validate(t *testing.T) {
	goal := 100.0

	input := UpsertGoalsInput{ShopID: "shop1", Month: "2025-03", FeasibleGoal: &goal}
	assert.NoError(t, input.Validate())

	input = UpsertGoalsInput{Month: "2025-03"}
	assert.Error(t, input.Validate())

	input = UpsertGoalsInput{ShopID: "shop1", Month: "not-a-month"}
	assert.Error(t, input.Validate())
}

func TestComprehensiveReport_Clone(t *testing.T) {
	shopID := "shop1"
	report := &ComprehensiveReport{
		ID:      "r1",
		ShopID:  &shopID,
		Revenue: 1500,
	}

	clone := report.Clone()
	require.NotNil(t, clone)

	*clone.ShopID = "other"
	clone.Revenue = 0

	assert.Equal(t, "shop1", *report.ShopID)
	assert.Equal(t, 1500.0, report.Revenue)

	var nilReport *ComprehensiveReport
	assert.Nil(t, nilReport.Clone())
}
