package recurrence

import (
	"testing"
	"time"

	"moneta/internal/models"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func at(y int, m time.Month, d, hour int) time.Time {
	return time.Date(y, m, d, hour, 0, 0, 0, time.UTC)
}

func schedule(id string, freq models.Frequency, start time.Time) models.RecurringTransaction {
	s := models.RecurringTransaction{
		UserID:      "user-1",
		CategoryID:  "cat-1",
		Type:        models.TransactionTypeExpense,
		Amount:      10000,
		Description: "Streaming subscription",
		Frequency:   freq,
		StartDate:   start,
		IsActive:    true,
	}
	s.ID = id
	return s
}

func materialized(occs []Occurrence) []models.Transaction {
	txs := make([]models.Transaction, 0, len(occs))
	for _, occ := range occs {
		id := occ.ScheduleID
		txs = append(txs, models.Transaction{
			UserID:      "user-1",
			CategoryID:  occ.CategoryID,
			Type:        occ.Type,
			Amount:      occ.Amount,
			Description: occ.Description,
			Date:        occ.Date,
			RecurringID: &id,
		})
	}
	return txs
}

func TestPlan(t *testing.T) {
	t.Run("monthly_catch_up", func(t *testing.T) {
		sched := schedule("rtx-1", models.FrequencyMonthly, day(2024, time.January, 1))
		occs := Plan([]models.RecurringTransaction{sched}, nil, day(2024, time.January, 1), at(2024, time.April, 15, 12))

		if len(occs) != 4 {
			t.Fatalf("expected 4 occurrences, got %d", len(occs))
		}
		want := []time.Time{
			day(2024, time.January, 1),
			day(2024, time.February, 1),
			day(2024, time.March, 1),
			day(2024, time.April, 1),
		}
		for i, occ := range occs {
			if !occ.Date.Equal(want[i]) {
				t.Errorf("occurrence %d: expected %s, got %s", i, want[i], occ.Date)
			}
			if occ.ScheduleID != "rtx-1" {
				t.Errorf("occurrence %d: expected schedule rtx-1, got %s", i, occ.ScheduleID)
			}
			if occ.Amount != 10000 {
				t.Errorf("occurrence %d: expected amount 10000, got %d", i, occ.Amount)
			}
		}
	})

	t.Run("idempotent_rerun", func(t *testing.T) {
		sched := schedule("rtx-1", models.FrequencyWeekly, day(2024, time.January, 1))
		now := at(2024, time.March, 1, 9)

		first := Plan([]models.RecurringTransaction{sched}, nil, day(2024, time.January, 1), now)
		if len(first) == 0 {
			t.Fatal("expected occurrences on first run")
		}

		// Second run with the materialized batch in the ledger and the
		// advanced checkpoint stages nothing.
		second := Plan([]models.RecurringTransaction{sched}, materialized(first), now, now)
		if len(second) != 0 {
			t.Errorf("expected 0 occurrences on rerun, got %d", len(second))
		}
	})

	t.Run("rerun_without_checkpoint_advance", func(t *testing.T) {
		// A failed run leaves the checkpoint behind; dedup against the ledger
		// still prevents duplicates.
		sched := schedule("rtx-1", models.FrequencyDaily, day(2024, time.January, 1))
		now := at(2024, time.January, 10, 8)

		first := Plan([]models.RecurringTransaction{sched}, nil, time.Time{}, now)
		second := Plan([]models.RecurringTransaction{sched}, materialized(first), time.Time{}, now)
		if len(second) != 0 {
			t.Errorf("expected 0 occurrences when ledger already holds all dates, got %d", len(second))
		}
	})

	t.Run("end_date_inclusive", func(t *testing.T) {
		sched := schedule("rtx-1", models.FrequencyDaily, day(2024, time.January, 1))
		end := day(2024, time.January, 5)
		sched.EndDate = &end

		occs := Plan([]models.RecurringTransaction{sched}, nil, time.Time{}, at(2024, time.January, 10, 12))
		if len(occs) != 5 {
			t.Fatalf("expected 5 occurrences (Jan 1-5), got %d", len(occs))
		}
		if last := occs[len(occs)-1].Date; !last.Equal(end) {
			t.Errorf("expected last occurrence on end date %s, got %s", end, last)
		}
	})

	t.Run("inactive_schedule_skipped", func(t *testing.T) {
		sched := schedule("rtx-1", models.FrequencyDaily, day(2020, time.January, 1))
		sched.IsActive = false

		occs := Plan([]models.RecurringTransaction{sched}, nil, time.Time{}, at(2024, time.June, 1, 0))
		if len(occs) != 0 {
			t.Errorf("expected 0 occurrences for inactive schedule, got %d", len(occs))
		}
	})

	t.Run("reactivation_resumes_from_checkpoint", func(t *testing.T) {
		// The schedule started in January but was inactive until June. No
		// backlog accrues: the checkpoint fast-forward skips everything
		// strictly before it.
		sched := schedule("rtx-1", models.FrequencyMonthly, day(2024, time.January, 15))
		lastChecked := at(2024, time.June, 1, 10)

		occs := Plan([]models.RecurringTransaction{sched}, nil, lastChecked, at(2024, time.August, 1, 10))
		if len(occs) != 2 {
			t.Fatalf("expected 2 occurrences (Jun 15, Jul 15), got %d", len(occs))
		}
		if !occs[0].Date.Equal(day(2024, time.June, 15)) {
			t.Errorf("expected first occurrence Jun 15, got %s", occs[0].Date)
		}
		if !occs[1].Date.Equal(day(2024, time.July, 15)) {
			t.Errorf("expected second occurrence Jul 15, got %s", occs[1].Date)
		}
	})

	t.Run("dedup_against_existing_ledger_row", func(t *testing.T) {
		sched := schedule("rtx-1", models.FrequencyMonthly, day(2024, time.January, 1))
		rid := "rtx-1"
		ledger := []models.Transaction{{
			UserID:      "user-1",
			CategoryID:  "cat-1",
			Type:        models.TransactionTypeExpense,
			Amount:      10000,
			Date:        day(2024, time.February, 1),
			RecurringID: &rid,
		}}

		occs := Plan([]models.RecurringTransaction{sched}, ledger, day(2024, time.January, 1), at(2024, time.March, 10, 0))
		if len(occs) != 2 {
			t.Fatalf("expected 2 occurrences (Jan 1, Mar 1), got %d", len(occs))
		}
		for _, occ := range occs {
			if occ.Date.Equal(day(2024, time.February, 1)) {
				t.Error("Feb 1 should have been deduplicated against the ledger")
			}
		}
	})

	t.Run("dedup_ignores_manual_transactions", func(t *testing.T) {
		// A manual transaction on the same day without a recurring tag does
		// not block materialization.
		sched := schedule("rtx-1", models.FrequencyMonthly, day(2024, time.January, 1))
		ledger := []models.Transaction{{
			UserID:     "user-1",
			CategoryID: "cat-1",
			Type:       models.TransactionTypeExpense,
			Amount:     10000,
			Date:       day(2024, time.January, 1),
		}}

		occs := Plan([]models.RecurringTransaction{sched}, ledger, time.Time{}, at(2024, time.January, 15, 0))
		if len(occs) != 1 {
			t.Fatalf("expected 1 occurrence, got %d", len(occs))
		}
	})

	t.Run("nothing_due_before_start", func(t *testing.T) {
		sched := schedule("rtx-1", models.FrequencyDaily, day(2024, time.June, 1))
		occs := Plan([]models.RecurringTransaction{sched}, nil, time.Time{}, at(2024, time.May, 20, 0))
		if len(occs) != 0 {
			t.Errorf("expected 0 occurrences before start date, got %d", len(occs))
		}
	})

	t.Run("occurrence_on_now_day_included", func(t *testing.T) {
		sched := schedule("rtx-1", models.FrequencyDaily, day(2024, time.January, 1))
		occs := Plan([]models.RecurringTransaction{sched}, nil, time.Time{}, at(2024, time.January, 3, 7))
		if len(occs) != 3 {
			t.Fatalf("expected 3 occurrences (Jan 1-3), got %d", len(occs))
		}
	})

	t.Run("multiple_schedules", func(t *testing.T) {
		daily := schedule("rtx-daily", models.FrequencyDaily, day(2024, time.January, 1))
		monthly := schedule("rtx-monthly", models.FrequencyMonthly, day(2024, time.January, 1))
		monthly.Type = models.TransactionTypeIncome
		monthly.Description = "Salary"

		occs := Plan([]models.RecurringTransaction{daily, monthly}, nil, time.Time{}, at(2024, time.January, 5, 0))
		if len(occs) != 6 {
			t.Fatalf("expected 6 occurrences (5 daily + 1 monthly), got %d", len(occs))
		}
	})
}

func TestNthOccurrence(t *testing.T) {
	t.Run("monthly_clamps_short_months", func(t *testing.T) {
		start := day(2024, time.January, 31)
		cases := []struct {
			n    int
			want time.Time
		}{
			{0, day(2024, time.January, 31)},
			{1, day(2024, time.February, 29)}, // leap year
			{2, day(2024, time.March, 31)},
			{3, day(2024, time.April, 30)},
			{13, day(2025, time.February, 28)},
		}
		for _, c := range cases {
			if got := NthOccurrence(models.FrequencyMonthly, start, c.n); !got.Equal(c.want) {
				t.Errorf("n=%d: expected %s, got %s", c.n, c.want, got)
			}
		}
	})

	t.Run("monthly_anchored_no_drift", func(t *testing.T) {
		// Stepping through February must not shift later occurrences off the
		// anchor day.
		start := day(2024, time.January, 31)
		if got := NthOccurrence(models.FrequencyMonthly, start, 4); !got.Equal(day(2024, time.May, 31)) {
			t.Errorf("expected May 31, got %s", got)
		}
	})

	t.Run("yearly_leap_day", func(t *testing.T) {
		start := day(2024, time.February, 29)
		if got := NthOccurrence(models.FrequencyYearly, start, 1); !got.Equal(day(2025, time.February, 28)) {
			t.Errorf("expected Feb 28 2025, got %s", got)
		}
		if got := NthOccurrence(models.FrequencyYearly, start, 4); !got.Equal(day(2028, time.February, 29)) {
			t.Errorf("expected Feb 29 2028, got %s", got)
		}
	})

	t.Run("weekly", func(t *testing.T) {
		start := day(2024, time.January, 1)
		if got := NthOccurrence(models.FrequencyWeekly, start, 3); !got.Equal(day(2024, time.January, 22)) {
			t.Errorf("expected Jan 22, got %s", got)
		}
	})
}

func TestDayBoundaries(t *testing.T) {
	t.Run("day_of_strips_time", func(t *testing.T) {
		got := DayOf(time.Date(2024, time.March, 5, 23, 59, 59, 0, time.UTC))
		if !got.Equal(day(2024, time.March, 5)) {
			t.Errorf("expected Mar 5 midnight, got %s", got)
		}
	})

	t.Run("end_of_day_is_inclusive_bound", func(t *testing.T) {
		end := EndOfDay(day(2024, time.January, 5))
		if !day(2024, time.January, 5).Before(end) {
			t.Error("midnight of the end date should be before its end-of-day")
		}
		if !day(2024, time.January, 6).After(end) {
			t.Error("the next day should be after end-of-day")
		}
	})
}
