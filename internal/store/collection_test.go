package store

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsertAndFindByID(t *testing.T) {
	c := newTestCollection(t)

	require.NoError(t, c.Insert(&testDoc{ID: "d1", Status: "pending", Owner: "alice"}))

	doc, err := c.FindByID("d1")
	require.NoError(t, err)
	require.NotNil(t, doc)
	assert.Equal(t, "pending", doc.Status)
	assert.Equal(t, "alice", doc.Owner)

	missing, err := c.FindByID("nope")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestInsertConflict(t *testing.T) {
	c := newTestCollection(t)

	require.NoError(t, c.Insert(&testDoc{ID: "d1", Status: "pending"}))
	err := c.Insert(&testDoc{ID: "d1", Status: "approved"})

	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "docs", conflict.Collection)
	assert.Equal(t, "d1", conflict.ID)

	// Первый документ не затерт
	doc, err := c.FindByID("d1")
	require.NoError(t, err)
	assert.Equal(t, "pending", doc.Status)
}

func TestInsertValidation(t *testing.T) {
	c := newTestCollection(t)

	// status обязателен, пустая строка не считается заполненным полем
	err := c.Insert(&testDoc{ID: "d1"})
	var validation *ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, "status", validation.Field)

	assert.Equal(t, 0, c.Count())
}

func TestFindBySelector(t *testing.T) {
	c := newTestCollection(t)

	require.NoError(t, c.Insert(&testDoc{ID: "a", Status: "pending"}))
	require.NoError(t, c.Insert(&testDoc{ID: "b", Status: "approved"}))
	require.NoError(t, c.Insert(&testDoc{ID: "c", Status: "denied"}))

	docs, err := c.Find(Selector{"status": "approved"})
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "b", docs[0].ID)

	all, err := c.Find(Selector{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []string{"a", "b", "c"}, []string{all[0].ID, all[1].ID, all[2].ID})

	none, err := c.Find(Selector{"status": "cancelled"})
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestFindByDateRange(t *testing.T) {
	c := newTestCollection(t)

	require.NoError(t, c.Insert(&testDoc{ID: "jan", Status: "pending", StartDate: "2025-01-01"}))
	require.NoError(t, c.Insert(&testDoc{ID: "jun", Status: "pending", StartDate: "2025-06-01"}))
	require.NoError(t, c.Insert(&testDoc{ID: "dec", Status: "pending", StartDate: "2025-12-01"}))

	docs, err := c.Find(Selector{"startDate": Range{GTE: "2025-03-01", LTE: "2025-09-01"}})
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "jun", docs[0].ID)

	// Открытые границы
	from, err := c.Find(Selector{"startDate": Range{GTE: "2025-06-01"}})
	require.NoError(t, err)
	assert.Len(t, from, 2)

	until, err := c.Find(Selector{"startDate": Range{LTE: "2025-06-01"}})
	require.NoError(t, err)
	assert.Len(t, until, 2)
}

func TestPatch(t *testing.T) {
	c := newTestCollection(t)

	require.NoError(t, c.Insert(&testDoc{ID: "d1", Status: "pending", Owner: "alice"}))

	doc, ok, err := c.Patch("d1", map[string]any{"status": "approved"})
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "approved", doc.Status)
	assert.Equal(t, "alice", doc.Owner) // не тронутые поля остаются
	assert.NotEmpty(t, doc.UpdatedAt)

	// Отсутствующий документ - false без ошибки
	_, ok, err = c.Patch("nope", map[string]any{"status": "approved"})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRemove(t *testing.T) {
	c := newTestCollection(t)

	require.NoError(t, c.Insert(&testDoc{ID: "d1", Status: "pending"}))
	require.NoError(t, c.Insert(&testDoc{ID: "d2", Status: "pending"}))

	ok, err := c.Remove("d1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 1, c.Count())

	ok, err = c.Remove("d1")
	require.NoError(t, err)
	assert.False(t, ok)

	docs, err := c.Find(Selector{})
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "d2", docs[0].ID)
}

func TestSubscribe(t *testing.T) {
	c := newTestCollection(t)

	var calls [][]*testDoc
	cancel, err := c.Subscribe(Selector{"status": "pending"}, func(docs []*testDoc) {
		calls = append(calls, docs)
	})
	require.NoError(t, err)

	// Первый вызов - сразу, с текущим (пустым) результатом
	require.Len(t, calls, 1)
	assert.Empty(t, calls[0])

	require.NoError(t, c.Insert(&testDoc{ID: "d1", Status: "pending"}))
	require.Len(t, calls, 2)
	require.Len(t, calls[1], 1)
	assert.Equal(t, "d1", calls[1][0].ID)

	// Документ уходит из результата - подписчик видит пустой снимок
	_, ok, err := c.Patch("d1", map[string]any{"status": "approved"})
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, calls, 3)
	assert.Empty(t, calls[2])

	// Чужие документы подписку не трогают
	require.NoError(t, c.Insert(&testDoc{ID: "d2", Status: "denied"}))
	assert.Len(t, calls, 3)

	cancel()
	require.NoError(t, c.Insert(&testDoc{ID: "d3", Status: "pending"}))
	assert.Len(t, calls, 3)

	// Повторная отмена безопасна
	cancel()
}

func TestSubscribeMultiple(t *testing.T) {
	c := newTestCollection(t)

	var pending, all int
	cancelPending, err := c.Subscribe(Selector{"status": "pending"}, func([]*testDoc) { pending++ })
	require.NoError(t, err)
	defer cancelPending()

	cancelAll, err := c.Subscribe(Selector{}, func([]*testDoc) { all++ })
	require.NoError(t, err)
	defer cancelAll()

	require.NoError(t, c.Insert(&testDoc{ID: "d1", Status: "approved"}))

	assert.Equal(t, 1, pending) // только начальный вызов
	assert.Equal(t, 2, all)
}

func TestSnapshotIsolation(t *testing.T) {
	c := newTestCollection(t)
	require.NoError(t, c.Insert(&testDoc{ID: "d1", Status: "pending", Owner: "alice"}))

	docs, err := c.Find(Selector{})
	require.NoError(t, err)
	docs[0].Owner = "mallory"

	again, err := c.FindByID("d1")
	require.NoError(t, err)
	assert.Equal(t, "alice", again.Owner)
}

func TestStorageErrorUnwrap(t *testing.T) {
	inner := errors.New("disk on fire")
	err := &StorageError{Op: "insert", Err: inner}
	assert.ErrorIs(t, err, inner)
	assert.Contains(t, err.Error(), "insert")
}
