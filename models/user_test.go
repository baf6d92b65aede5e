package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRatingAggregateFold(t *testing.T) {
	agg := RatingAggregate{}

	agg = agg.Fold(5)
	assert.Equal(t, 1, agg.Count)
	assert.InDelta(t, 5.0, agg.Average, 1e-9)

	agg = agg.Fold(3)
	assert.Equal(t, 2, agg.Count)
	assert.InDelta(t, 4.0, agg.Average, 1e-9)
}

func TestRatingAggregateFoldOrderIndependentMean(t *testing.T) {
	a := RatingAggregate{}.Fold(5).Fold(3).Fold(4)
	b := RatingAggregate{}.Fold(4).Fold(5).Fold(3)

	assert.Equal(t, a.Count, b.Count)
	assert.InDelta(t, a.Average, b.Average, 1e-9)
	assert.InDelta(t, 4.0, a.Average, 1e-9)
}

func TestRatingAggregateFoldDoesNotMutateReceiver(t *testing.T) {
	agg := RatingAggregate{Count: 1, Average: 5}
	_ = agg.Fold(1)

	assert.Equal(t, 1, agg.Count)
	assert.InDelta(t, 5.0, agg.Average, 1e-9)
}
