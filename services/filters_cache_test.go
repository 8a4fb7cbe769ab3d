package services

import (
	"testing"

	"myhotel/dto"

	"github.com/stretchr/testify/assert"
)

func TestMergeFilters(t *testing.T) {
	t.Run("new values win", func(t *testing.T) {
		old := &dto.RoomFilterRequest{Name: "Hoa Sen", Type: "luxe"}
		next := &dto.RoomFilterRequest{Name: "Hoa Mai"}

		got := MergeFilters(old, next)

		assert.Equal(t, "Hoa Mai", got.Name)
		assert.Equal(t, "luxe", got.Type)
	})

	t.Run("old values fill gaps", func(t *testing.T) {
		capacity := 2
		old := &dto.RoomFilterRequest{Capacity: &capacity, StartDate: "01/06/2026", EndDate: "05/06/2026"}
		next := &dto.RoomFilterRequest{}

		got := MergeFilters(old, next)

		assert.Equal(t, &capacity, got.Capacity)
		assert.Equal(t, "01/06/2026", got.StartDate)
		assert.Equal(t, "05/06/2026", got.EndDate)
	})

	t.Run("new price min above old price max drops old max", func(t *testing.T) {
		oldMax := 1000.0
		newMin := 2000.0
		old := &dto.RoomFilterRequest{PriceMax: &oldMax}
		next := &dto.RoomFilterRequest{PriceMin: &newMin}

		got := MergeFilters(old, next)

		assert.Nil(t, got.PriceMax)
		assert.Equal(t, &newMin, got.PriceMin)
	})

	t.Run("new price max below old price min drops old min", func(t *testing.T) {
		oldMin := 2000.0
		newMax := 1000.0
		old := &dto.RoomFilterRequest{PriceMin: &oldMin}
		next := &dto.RoomFilterRequest{PriceMax: &newMax}

		got := MergeFilters(old, next)

		assert.Nil(t, got.PriceMin)
		assert.Equal(t, &newMax, got.PriceMax)
	})

	t.Run("compatible prices are kept", func(t *testing.T) {
		oldMin := 500.0
		newMax := 1000.0
		old := &dto.RoomFilterRequest{PriceMin: &oldMin}
		next := &dto.RoomFilterRequest{PriceMax: &newMax}

		got := MergeFilters(old, next)

		assert.Equal(t, &oldMin, got.PriceMin)
		assert.Equal(t, &newMax, got.PriceMax)
	})
}
