package repository

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stpnv0/HotelDesk/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func newTestStore(t *testing.T) *FileStore {
	t.Helper()
	return NewFileStore(filepath.Join(t.TempDir(), "bookings.txt"), newTestLogger(t))
}

func TestFileStore_Load_MissingFile(t *testing.T) {
	store := newTestStore(t)

	bookings, err := store.Load(context.Background())

	require.NoError(t, err)
	assert.Empty(t, bookings)
}

func TestFileStore_RoundTrip(t *testing.T) {
	store := newTestStore(t)

	in := []*domain.Booking{
		{ID: "B12345678", CustomerName: "Jane Doe", Category: domain.CategoryStandard, Nights: 3, Total: 4500, CreatedAt: 1699999999000},
		{ID: "B87654321", CustomerName: "Bob", Category: domain.CategoryDeluxe, Nights: 1, Total: 3000, CreatedAt: 1700000000000},
		{ID: "B11111111", CustomerName: "Carol", Category: domain.CategorySuite, Nights: 2, Total: 12000, CreatedAt: 1700000001000},
	}
	require.NoError(t, store.Save(context.Background(), in))

	out, err := store.Load(context.Background())

	require.NoError(t, err)
	require.Len(t, out, len(in))
	for i := range in {
		assert.Equal(t, *in[i], *out[i])
	}
}

func TestFileStore_Save_FullRewrite(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, []*domain.Booking{
		{ID: "B1", CustomerName: "Alice", Category: domain.CategoryStandard, Nights: 1, Total: 1500, CreatedAt: 1},
		{ID: "B2", CustomerName: "Bob", Category: domain.CategoryDeluxe, Nights: 1, Total: 3000, CreatedAt: 2},
	}))
	require.NoError(t, store.Save(ctx, []*domain.Booking{
		{ID: "B2", CustomerName: "Bob", Category: domain.CategoryDeluxe, Nights: 1, Total: 3000, CreatedAt: 2},
	}))

	data, err := os.ReadFile(store.path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	require.Len(t, lines, 1)
	assert.Equal(t, "B2,Bob,DELUXE,1,3000.00,2", lines[0])
}

func TestFileStore_Load_SkipsMalformedLines(t *testing.T) {
	store := newTestStore(t)

	content := strings.Join([]string{
		"B12345678,Jane Doe,STANDARD,3,4500.00,1699999999000",
		"short,line,only",
		"B2,Bob,PENTHOUSE,1,1500.00,1",
		"B3,Carol,SUITE,two,6000.00,1",
		"B4,Dave,DELUXE,1,abc,1",
	}, "\n") + "\n"
	require.NoError(t, os.WriteFile(store.path, []byte(content), 0o644))

	bookings, err := store.Load(context.Background())

	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, "B12345678", bookings[0].ID)
	assert.Equal(t, "Jane Doe", bookings[0].CustomerName)
	assert.Equal(t, domain.CategoryStandard, bookings[0].Category)
	assert.Equal(t, 3, bookings[0].Nights)
	assert.Equal(t, 4500.0, bookings[0].Total)
	assert.Equal(t, int64(1699999999000), bookings[0].CreatedAt)
}

func TestFileStore_Save_ReplacesCommasInName(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, []*domain.Booking{
		{ID: "B1", CustomerName: "Doe, Jane", Category: domain.CategoryStandard, Nights: 1, Total: 1500, CreatedAt: 1},
	}))

	out, err := store.Load(ctx)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.NotContains(t, out[0].CustomerName, ",")
	assert.Equal(t, 1500.0, out[0].Total)
}

func TestFileStore_Save_TwoFractionDigits(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Save(context.Background(), []*domain.Booking{
		{ID: "B1", CustomerName: "Alice", Category: domain.CategoryStandard, Nights: 3, Total: 4500, CreatedAt: 1699999999000},
	}))

	data, err := os.ReadFile(store.path)
	require.NoError(t, err)
	assert.Equal(t, "B1,Alice,STANDARD,3,4500.00,1699999999000\n", string(data))
}

func TestFileStore_Load_CategoryLabelIsCaseInsensitive(t *testing.T) {
	store := newTestStore(t)

	content := "B1,Alice,standard,1,1500.00,1\n"
	require.NoError(t, os.WriteFile(store.path, []byte(content), 0o644))

	bookings, err := store.Load(context.Background())

	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, domain.CategoryStandard, bookings[0].Category)
}
