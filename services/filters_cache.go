package services

import (
	"context"
	"encoding/json"
	"time"

	"myhotel/dto"

	"github.com/redis/go-redis/v9"
)

func SaveLastFilters(ctx context.Context, rdb *redis.Client, key string, filters *dto.RoomFilterRequest) error {
	b, _ := json.Marshal(filters)
	return rdb.Set(ctx, "last_filters:"+key, b, 30*time.Minute).Err()
}

func GetLastFilters(ctx context.Context, rdb *redis.Client, key string) (*dto.RoomFilterRequest, error) {
	val, err := rdb.Get(ctx, "last_filters:"+key).Result()
	if err != nil {
		return nil, err
	}
	var filters dto.RoomFilterRequest
	json.Unmarshal([]byte(val), &filters)
	return &filters, nil
}

func ClearLastFilters(ctx context.Context, rdb *redis.Client, key string) error {
	return rdb.Del(ctx, "last_filters:"+key).Err()
}

// MergeFilters gộp bộ lọc cũ với bộ lọc mới của cùng một session
func MergeFilters(old *dto.RoomFilterRequest, next *dto.RoomFilterRequest) *dto.RoomFilterRequest {
	next.SortBy = orString(next.SortBy, old.SortBy)
	next.Type = orString(next.Type, old.Type)
	next.Name = orString(next.Name, old.Name)
	next.Search = orString(next.Search, old.Search)
	next.Capacity = orIntPointer(next.Capacity, old.Capacity)
	next.StartDate = orString(next.StartDate, old.StartDate)
	next.EndDate = orString(next.EndDate, old.EndDate)

	// Xử lý case người dùng nhập lại PriceMax và PriceMin
	if next.PriceMin != nil && old.PriceMax != nil && *next.PriceMin > *old.PriceMax {
		next.PriceMax = nil
	} else {
		next.PriceMax = orFloatPointer(next.PriceMax, old.PriceMax)
	}

	if next.PriceMax != nil && old.PriceMin != nil && *next.PriceMax < *old.PriceMin {
		next.PriceMin = nil
	} else {
		next.PriceMin = orFloatPointer(next.PriceMin, old.PriceMin)
	}

	return next
}

func orString(newVal, oldVal string) string {
	if newVal != "" {
		return newVal
	}
	return oldVal
}

func orIntPointer(newVal, oldVal *int) *int {
	if newVal != nil {
		return newVal
	}
	return oldVal
}

func orFloatPointer(newVal, oldVal *float64) *float64 {
	if newVal != nil {
		return newVal
	}
	return oldVal
}
