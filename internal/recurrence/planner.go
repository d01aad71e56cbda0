// Package recurrence implements the recurring-transaction materialization
// engine: given schedules, the existing ledger, a checkpoint, and the current
// time, it computes which concrete transactions are due. The planner is a
// pure function; persistence and the session guard live around it.
package recurrence

import (
	"time"

	"moneta/internal/models"
)

// Occurrence is one due date of a schedule that has not yet been
// materialized into the ledger.
type Occurrence struct {
	ScheduleID  string
	CategoryID  string
	Type        models.TransactionType
	Amount      int64
	Description string
	Date        time.Time
}

type occurrenceKey struct {
	scheduleID string
	day        time.Time
}

// Plan computes all occurrences due in (start..now] across the given
// schedules that are not already present in the ledger. The checkpoint only
// bounds the iteration (fast-forward); the ledger lookup in step two is the
// authoritative duplicate guard, which makes re-runs after a partial failure
// safe: they re-derive exactly the missing occurrences.
//
// Occurrences are returned grouped by schedule, in date order within each
// schedule. Callers commit the batch and the checkpoint advance together.
func Plan(schedules []models.RecurringTransaction, ledger []models.Transaction, lastChecked, now time.Time) []Occurrence {
	seen := make(map[occurrenceKey]struct{})
	for _, tx := range ledger {
		if tx.RecurringID == nil {
			continue
		}
		seen[occurrenceKey{*tx.RecurringID, DayOf(tx.Date)}] = struct{}{}
	}

	var staged []Occurrence
	for _, sched := range schedules {
		if !sched.IsActive {
			continue
		}
		staged = append(staged, planSchedule(sched, seen, lastChecked, now)...)
	}
	return staged
}

func planSchedule(sched models.RecurringTransaction, seen map[occurrenceKey]struct{}, lastChecked, now time.Time) []Occurrence {
	start := DayOf(sched.StartDate)

	var end time.Time
	if sched.EndDate != nil {
		end = EndOfDay(*sched.EndDate)
	}

	// Fast-forward: skip whole cadence steps that fall strictly before the
	// checkpoint. Anything at or after it is re-examined against the ledger.
	n := 0
	for NthOccurrence(sched.Frequency, start, n).Before(lastChecked) {
		n++
	}

	var staged []Occurrence
	for {
		candidate := NthOccurrence(sched.Frequency, start, n)
		if candidate.After(now) {
			break
		}
		if sched.EndDate != nil && candidate.After(end) {
			break
		}

		key := occurrenceKey{sched.ID, candidate}
		if _, exists := seen[key]; !exists {
			seen[key] = struct{}{}
			staged = append(staged, Occurrence{
				ScheduleID:  sched.ID,
				CategoryID:  sched.CategoryID,
				Type:        sched.Type,
				Amount:      sched.Amount,
				Description: sched.Description,
				Date:        candidate,
			})
		}
		n++
	}
	return staged
}
