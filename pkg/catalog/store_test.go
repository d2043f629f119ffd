package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func storeRecords() []ModelRecord {
	return []ModelRecord{
		{ID: "a", ModelName: "model-a"},
		{ID: "b", ModelName: "model-b", DisplayName: "Model B"},
		{ID: "c", ModelName: "model-c"},
	}
}

func TestMemoryStore_Get(t *testing.T) {
	store := NewMemoryStore(storeRecords())
	ctx := context.Background()

	record, err := store.Get(ctx, "b")
	require.NoError(t, err)
	assert.Equal(t, "Model B", record.DisplayLabel())

	_, err = store.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrRecordNotFound)
}

func TestMemoryStore_ListKeepsCatalogOrder(t *testing.T) {
	store := NewMemoryStore(storeRecords())

	records, err := store.List(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "a", records[0].ID)
	assert.Equal(t, "b", records[1].ID)
	assert.Equal(t, "c", records[2].ID)
}

func TestMemoryStore_Count(t *testing.T) {
	store := NewMemoryStore(storeRecords())

	n, err := store.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestMemoryStore_SnapshotIsolation(t *testing.T) {
	input := storeRecords()
	store := NewMemoryStore(input)

	// Mutating the caller's slice must not leak into the store.
	input[0].ID = "mutated"

	record, err := store.Get(context.Background(), "a")
	require.NoError(t, err)
	assert.Equal(t, "a", record.ID)

	// Nor must mutating a listed copy.
	records, err := store.List(context.Background())
	require.NoError(t, err)
	records[1].ModelName = "changed"

	again, err := store.Get(context.Background(), "b")
	require.NoError(t, err)
	assert.Equal(t, "model-b", again.ModelName)
}

func TestDisplayLabel(t *testing.T) {
	withDisplay := ModelRecord{ModelName: "qwen2.5:7b", DisplayName: "Qwen 2.5"}
	assert.Equal(t, "Qwen 2.5", withDisplay.DisplayLabel())

	withoutDisplay := ModelRecord{ModelName: "qwen2.5:7b"}
	assert.Equal(t, "qwen2.5:7b", withoutDisplay.DisplayLabel())
}
