package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tp(s string) *time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return &t
}

func TestSortTasksStable(t *testing.T) {
	tasks := []Task{
		{ID: "1", Title: "b", Status: StatusOpen},
		{ID: "2", Title: "a", Status: StatusOpen},
		{ID: "3", Title: "c", Status: StatusOpen},
	}

	sorted := SortTasks(tasks, FieldStatus, true)

	// identical statuses keep their original relative order
	require.Len(t, sorted, 3)
	assert.Equal(t, "1", sorted[0].ID)
	assert.Equal(t, "2", sorted[1].ID)
	assert.Equal(t, "3", sorted[2].ID)
}

func TestSortTasksDoesNotMutateInput(t *testing.T) {
	tasks := []Task{
		{ID: "1", Title: "b"},
		{ID: "2", Title: "a"},
	}

	sorted := SortTasks(tasks, FieldTitle, true)

	assert.Equal(t, "2", sorted[0].ID)
	assert.Equal(t, "1", tasks[0].ID)
}

func TestSortTasksNullFirstAscending(t *testing.T) {
	tasks := []Task{
		{ID: "with", DueDate: tp("2024-01-01T00:00:00Z")},
		{ID: "without"},
	}

	asc := SortTasks(tasks, FieldDueDate, true)
	assert.Equal(t, "without", asc[0].ID)

	desc := SortTasks(tasks, FieldDueDate, false)
	assert.Equal(t, "without", desc[1].ID)
}

func TestSortTasksByInstantDescending(t *testing.T) {
	tasks := []Task{
		{ID: "old", CreatedAt: *tp("2022-01-01T00:00:00Z")},
		{ID: "new", CreatedAt: *tp("2025-03-13T21:22:00Z")},
	}

	sorted := SortTasks(tasks, FieldCreatedAt, false)
	assert.Equal(t, "new", sorted[0].ID)
	assert.Equal(t, "old", sorted[1].ID)
}

func TestSortTasksByTitleCollated(t *testing.T) {
	tasks := []Task{
		{ID: "3", Title: "cica"},
		{ID: "1", Title: "alma"},
		{ID: "2", Title: "Árvíztűrő"},
	}

	sorted := SortTasks(tasks, FieldTitle, true)

	// Hungarian collation puts á right after a, not after z
	assert.Equal(t, []string{"1", "2", "3"}, []string{sorted[0].ID, sorted[1].ID, sorted[2].ID})
}

func TestSortTasksNilCustomerIDFirst(t *testing.T) {
	cid := "c-1"
	tasks := []Task{
		{ID: "assigned", CustomerID: &cid},
		{ID: "unassigned"},
	}

	sorted := SortTasks(tasks, FieldCustomerID, true)
	assert.Equal(t, "unassigned", sorted[0].ID)
}

func TestParseTaskStatus(t *testing.T) {
	st, ok := ParseTaskStatus("in_progress")
	assert.True(t, ok)
	assert.Equal(t, StatusInProgress, st)

	st, ok = ParseTaskStatus("")
	assert.True(t, ok)
	assert.Equal(t, StatusOpen, st)

	_, ok = ParseTaskStatus("bogus")
	assert.False(t, ok)
}
