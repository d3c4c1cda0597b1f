package model

import (
	"fmt"
	"sort"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Task fields accepted by SortTasks.
const (
	FieldID          = "id"
	FieldCustomerID  = "customerId"
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldStatus      = "status"
	FieldReminder    = "reminder"
	FieldDueDate     = "dueDate"
	FieldCompletedAt = "completedAt"
	FieldCreatedAt   = "createdAt"
	FieldUpdatedAt   = "updatedAt"
)

// SortTasks returns a new slice ordered by the named field. The sort is
// stable, so re-sorting on the same field never reorders ties. Absent
// values (nil customerId, unset instants) come first ascending and last
// descending; instants compare by point in time, text compares under
// Hungarian collation.
func SortTasks(tasks []Task, field string, asc bool) []Task {
	out := make([]Task, len(tasks))
	copy(out, tasks)

	col := collate.New(language.Hungarian)
	sort.SliceStable(out, func(i, j int) bool {
		c := compareField(taskField(out[i], field), taskField(out[j], field), col)
		if asc {
			return c < 0
		}
		return c > 0
	})
	return out
}

// taskField extracts the named field as nil, a time.Time, or a string.
func taskField(t Task, field string) any {
	switch field {
	case FieldID:
		return t.ID
	case FieldCustomerID:
		if t.CustomerID == nil {
			return nil
		}
		return *t.CustomerID
	case FieldTitle:
		return t.Title
	case FieldDescription:
		return t.Description
	case FieldStatus:
		return string(t.Status)
	case FieldReminder:
		return instant(t.Reminder)
	case FieldDueDate:
		return instant(t.DueDate)
	case FieldCompletedAt:
		return instant(t.CompletedAt)
	case FieldCreatedAt:
		return t.CreatedAt
	case FieldUpdatedAt:
		return t.UpdatedAt
	default:
		return nil
	}
}

func instant(t *time.Time) any {
	if t == nil {
		return nil
	}
	return *t
}

func compareField(a, b any, col *collate.Collator) int {
	if a == nil && b == nil {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}

	if at, ok := a.(time.Time); ok {
		if bt, ok := b.(time.Time); ok {
			return at.Compare(bt)
		}
	}

	if as, ok := a.(string); ok {
		if bs, ok := b.(string); ok {
			return col.CompareString(as, bs)
		}
	}

	// Mixed kinds cannot come from the same field; order by rendering.
	as, bs := fmt.Sprint(a), fmt.Sprint(b)
	switch {
	case as == bs:
		return 0
	case as < bs:
		return -1
	default:
		return 1
	}
}
