package cache

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
)

type cachedListing struct {
	Title string  `json:"title"`
	Price float64 `json:"price"`
}

func withMockClient(t *testing.T) redismock.ClientMock {
	t.Helper()
	db, mockRedis := redismock.NewClientMock()
	Client = db
	t.Cleanup(func() { Client = nil })
	return mockRedis
}

func TestGetJSON_Miss(t *testing.T) {
	mockRedis := withMockClient(t)
	mockRedis.ExpectGet("listings:all").RedisNil()

	var dest []cachedListing
	ok := GetJSON(context.Background(), "listings:all", &dest)

	assert.False(t, ok)
	assert.NoError(t, mockRedis.ExpectationsWereMet())
}

func TestGetJSON_Hit(t *testing.T) {
	mockRedis := withMockClient(t)
	mockRedis.ExpectGet("listings:all").SetVal(`[{"title":"Test Property","price":150}]`)

	var dest []cachedListing
	ok := GetJSON(context.Background(), "listings:all", &dest)

	assert.True(t, ok)
	if assert.Len(t, dest, 1) {
		assert.Equal(t, "Test Property", dest[0].Title)
		assert.Equal(t, 150.0, dest[0].Price)
	}
	assert.NoError(t, mockRedis.ExpectationsWereMet())
}

func TestGetJSON_CorruptEntryDropped(t *testing.T) {
	mockRedis := withMockClient(t)
	mockRedis.ExpectGet("listings:all").SetVal(`{broken`)
	mockRedis.ExpectDel("listings:all").SetVal(1)

	var dest []cachedListing
	ok := GetJSON(context.Background(), "listings:all", &dest)

	assert.False(t, ok)
	assert.NoError(t, mockRedis.ExpectationsWereMet())
}

func TestSetJSON(t *testing.T) {
	mockRedis := withMockClient(t)

	value := []cachedListing{{Title: "Test Property", Price: 150}}
	raw, _ := json.Marshal(value)
	mockRedis.ExpectSet("listings:all", raw, 5*time.Minute).SetVal("OK")

	SetJSON(context.Background(), "listings:all", value, 5*time.Minute)

	assert.NoError(t, mockRedis.ExpectationsWereMet())
}

func TestInvalidate(t *testing.T) {
	mockRedis := withMockClient(t)
	mockRedis.ExpectDel("listings:all", "listings:abc").SetVal(2)

	Invalidate(context.Background(), "listings:all", "listings:abc")

	assert.NoError(t, mockRedis.ExpectationsWereMet())
}

func TestHelpersNoopWithoutClient(t *testing.T) {
	Client = nil

	var dest []cachedListing
	assert.False(t, GetJSON(context.Background(), "k", &dest))
	SetJSON(context.Background(), "k", dest, time.Minute)
	Invalidate(context.Background(), "k")
}
