package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/berk/parentportal/internal/app/models"
	"github.com/berk/parentportal/internal/cache"
)

// fakeItemStore serves a fixed row set and records paging arguments
type fakeItemStore struct {
	rows      []models.Parent
	total     int64
	listCalls int
	lastLimit int
	lastOff   uint64
}

func (f *fakeItemStore) List(_ context.Context, limit int, offset uint64) ([]models.Parent, error) {
	f.listCalls++
	f.lastLimit = limit
	f.lastOff = offset
	return f.rows, nil
}

func (f *fakeItemStore) Count(_ context.Context) (int64, error) {
	return f.total, nil
}

// fakeItemCache is a permanently available in-memory cache.Store
type fakeItemCache struct {
	entries map[string]string
	sets    []string
}

func (f *fakeItemCache) Available() bool { return true }

func (f *fakeItemCache) Get(_ context.Context, key string) (string, error) {
	value, ok := f.entries[key]
	if !ok {
		return "", cache.ErrCacheMiss
	}
	return value, nil
}

func (f *fakeItemCache) SetEx(_ context.Context, key, value string, _ time.Duration) error {
	f.entries[key] = value
	f.sets = append(f.sets, key)
	return nil
}

func TestListItems_DerivesKeyFromQueryParams(t *testing.T) {
	store := &fakeItemCache{entries: map[string]string{}}
	items := &fakeItemStore{rows: []models.Parent{{ID: 1, Name: "Bob Senior"}}, total: 25}
	svc := NewItemService(items, store, time.Hour)

	_, err := svc.ListItems(context.Background(), 2, 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"items?page=2&limit=10"}, store.sets)
	assert.Equal(t, 10, items.lastLimit)
	assert.Equal(t, uint64(10), items.lastOff)
}

func TestListItems_SecondCallServedFromCache(t *testing.T) {
	store := &fakeItemCache{entries: map[string]string{}}
	items := &fakeItemStore{rows: []models.Parent{{ID: 1, Name: "Bob Senior"}}, total: 1}
	svc := NewItemService(items, store, time.Hour)

	first, err := svc.ListItems(context.Background(), 1, 10)
	require.NoError(t, err)

	second, err := svc.ListItems(context.Background(), 1, 10)
	require.NoError(t, err)

	assert.Equal(t, 1, items.listCalls)
	assert.Equal(t, first.Pagination, second.Pagination)
	require.Len(t, second.Data, 1)
	assert.Equal(t, "Bob Senior", second.Data[0].Name)
}

func TestListItems_PagesCacheIndependently(t *testing.T) {
	store := &fakeItemCache{entries: map[string]string{}}
	items := &fakeItemStore{rows: []models.Parent{{ID: 1}}, total: 25}
	svc := NewItemService(items, store, time.Hour)

	_, err := svc.ListItems(context.Background(), 1, 10)
	require.NoError(t, err)
	_, err = svc.ListItems(context.Background(), 2, 10)
	require.NoError(t, err)

	assert.Equal(t, 2, items.listCalls)
	assert.Contains(t, store.entries, "items?page=1&limit=10")
	assert.Contains(t, store.entries, "items?page=2&limit=10")
}

func TestListItems_NilCacheFallsThroughToStore(t *testing.T) {
	items := &fakeItemStore{rows: []models.Parent{{ID: 1}}, total: 1}
	svc := NewItemService(items, nil, time.Hour)

	for i := 0; i < 2; i++ {
		_, err := svc.ListItems(context.Background(), 1, 10)
		require.NoError(t, err)
	}
	assert.Equal(t, 2, items.listCalls)
}

func TestListItems_NormalizesPaginationInput(t *testing.T) {
	store := &fakeItemCache{entries: map[string]string{}}
	items := &fakeItemStore{rows: []models.Parent{{ID: 1}}, total: 25}
	svc := NewItemService(items, store, time.Hour)

	got, err := svc.ListItems(context.Background(), 0, -3)
	require.NoError(t, err)

	assert.Equal(t, 1, got.Pagination.Page)
	assert.Equal(t, 10, got.Pagination.Limit)
	assert.Equal(t, 3, got.Pagination.TotalPages)
	assert.Equal(t, []string{"items?page=1&limit=10"}, store.sets)
}
