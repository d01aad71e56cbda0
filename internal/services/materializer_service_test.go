package services

import (
	"testing"
	"time"

	"moneta/internal/models"
	"moneta/internal/recurrence"
	"moneta/internal/testutil"
)

func utcDay(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestMaterialize(t *testing.T) {
	t.Run("monthly_catch_up_since_checkpoint", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		user := testutil.CreateTestUser(t, db)
		cat := testutil.CreateTestCategory(t, db, user.ID, models.CategoryTypeExpense)
		testutil.CreateTestSchedule(t, db, user.ID, cat.ID, models.FrequencyMonthly, utcDay(2024, time.January, 1))

		clock := recurrence.FixedClock{Instant: time.Date(2024, time.April, 15, 10, 0, 0, 0, time.UTC)}
		svc := NewMaterializerService(db, clock)

		created, err := svc.Materialize(user.ID)
		testutil.AssertNoError(t, err)
		if created != 4 {
			t.Fatalf("expected 4 materialized transactions, got %d", created)
		}

		var transactions []models.Transaction
		if err := db.Where("user_id = ? AND recurring_id IS NOT NULL", user.ID).
			Order("date ASC").Find(&transactions).Error; err != nil {
			t.Fatalf("failed to load transactions: %v", err)
		}
		if len(transactions) != 4 {
			t.Fatalf("expected 4 ledger rows, got %d", len(transactions))
		}
		if !transactions[0].Date.Equal(utcDay(2024, time.January, 1)) {
			t.Errorf("expected first occurrence Jan 1, got %s", transactions[0].Date)
		}
		if !transactions[3].Date.Equal(utcDay(2024, time.April, 1)) {
			t.Errorf("expected last occurrence Apr 1, got %s", transactions[3].Date)
		}
	})

	t.Run("second_run_is_idempotent", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		user := testutil.CreateTestUser(t, db)
		cat := testutil.CreateTestCategory(t, db, user.ID, models.CategoryTypeExpense)
		testutil.CreateTestSchedule(t, db, user.ID, cat.ID, models.FrequencyDaily, utcDay(2024, time.March, 1))

		clock := recurrence.FixedClock{Instant: time.Date(2024, time.March, 10, 8, 0, 0, 0, time.UTC)}
		svc := NewMaterializerService(db, clock)

		created, err := svc.Materialize(user.ID)
		testutil.AssertNoError(t, err)
		if created != 10 {
			t.Fatalf("expected 10 materialized transactions, got %d", created)
		}

		created, err = svc.Materialize(user.ID)
		testutil.AssertNoError(t, err)
		if created != 0 {
			t.Errorf("expected 0 on second run, got %d", created)
		}

		var count int64
		db.Model(&models.Transaction{}).Where("user_id = ?", user.ID).Count(&count)
		if count != 10 {
			t.Errorf("expected 10 ledger rows after rerun, got %d", count)
		}
	})

	t.Run("advances_checkpoint_even_when_nothing_due", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		user := testutil.CreateTestUser(t, db)

		now := time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)
		svc := NewMaterializerService(db, recurrence.FixedClock{Instant: now})

		created, err := svc.Materialize(user.ID)
		testutil.AssertNoError(t, err)
		if created != 0 {
			t.Fatalf("expected 0 with no schedules, got %d", created)
		}

		var checkpoint models.RecurrenceCheckpoint
		if err := db.Where("user_id = ?", user.ID).First(&checkpoint).Error; err != nil {
			t.Fatalf("expected checkpoint to exist: %v", err)
		}
		if !checkpoint.LastCheckedAt.Equal(now) {
			t.Errorf("expected checkpoint at %s, got %s", now, checkpoint.LastCheckedAt)
		}
	})

	t.Run("bypasses_spending_gate", func(t *testing.T) {
		// A materialized expense lands even with no income on record; the
		// gate applies to manual entries only.
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		user := testutil.CreateTestUser(t, db)
		cat := testutil.CreateTestCategory(t, db, user.ID, models.CategoryTypeExpense)
		testutil.CreateTestSchedule(t, db, user.ID, cat.ID, models.FrequencyMonthly, utcDay(2024, time.May, 1))

		svc := NewMaterializerService(db, recurrence.FixedClock{Instant: time.Date(2024, time.May, 2, 0, 0, 0, 0, time.UTC)})

		created, err := svc.Materialize(user.ID)
		testutil.AssertNoError(t, err)
		if created != 1 {
			t.Errorf("expected 1 materialized expense, got %d", created)
		}
	})

	t.Run("awards_no_points", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		gamification := NewGamificationService(db)
		user := testutil.CreateTestUser(t, db)
		cat := testutil.CreateTestCategory(t, db, user.ID, models.CategoryTypeExpense)
		testutil.CreateTestSchedule(t, db, user.ID, cat.ID, models.FrequencyDaily, utcDay(2024, time.May, 1))

		svc := NewMaterializerService(db, recurrence.FixedClock{Instant: time.Date(2024, time.May, 5, 0, 0, 0, 0, time.UTC)})

		_, err := svc.Materialize(user.ID)
		testutil.AssertNoError(t, err)

		points, err := gamification.GetPoints(user.ID)
		testutil.AssertNoError(t, err)
		if points != 0 {
			t.Errorf("expected 0 points from materialization, got %d", points)
		}
	})

	t.Run("paused_stretch_not_backfilled", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		user := testutil.CreateTestUser(t, db)
		cat := testutil.CreateTestCategory(t, db, user.ID, models.CategoryTypeExpense)
		sched := testutil.CreateTestSchedule(t, db, user.ID, cat.ID, models.FrequencyMonthly, utcDay(2024, time.January, 15))

		// First run in March with the schedule paused: nothing lands, but
		// the checkpoint still advances.
		if err := db.Model(sched).Update("is_active", false).Error; err != nil {
			t.Fatalf("failed to pause schedule: %v", err)
		}
		svc := NewMaterializerService(db, recurrence.FixedClock{Instant: time.Date(2024, time.March, 20, 0, 0, 0, 0, time.UTC)})
		created, err := svc.Materialize(user.ID)
		testutil.AssertNoError(t, err)
		if created != 0 {
			t.Fatalf("expected 0 while paused, got %d", created)
		}

		// Resume and run again in May: only the occurrences after the
		// checkpoint land.
		if err := db.Model(sched).Update("is_active", true).Error; err != nil {
			t.Fatalf("failed to resume schedule: %v", err)
		}
		svc = NewMaterializerService(db, recurrence.FixedClock{Instant: time.Date(2024, time.May, 20, 0, 0, 0, 0, time.UTC)})
		created, err = svc.Materialize(user.ID)
		testutil.AssertNoError(t, err)
		if created != 2 {
			t.Fatalf("expected 2 occurrences (Apr 15, May 15), got %d", created)
		}

		var earliest models.Transaction
		if err := db.Where("user_id = ? AND recurring_id IS NOT NULL", user.ID).
			Order("date ASC").First(&earliest).Error; err != nil {
			t.Fatalf("failed to load transactions: %v", err)
		}
		if !earliest.Date.Equal(utcDay(2024, time.April, 15)) {
			t.Errorf("expected earliest occurrence Apr 15, got %s", earliest.Date)
		}
	})

	t.Run("scoped_to_one_user", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		user := testutil.CreateTestUser(t, db)
		other := testutil.CreateTestUser(t, db)
		otherCat := testutil.CreateTestCategory(t, db, other.ID, models.CategoryTypeExpense)
		testutil.CreateTestSchedule(t, db, other.ID, otherCat.ID, models.FrequencyDaily, utcDay(2024, time.May, 1))

		svc := NewMaterializerService(db, recurrence.FixedClock{Instant: time.Date(2024, time.May, 10, 0, 0, 0, 0, time.UTC)})

		created, err := svc.Materialize(user.ID)
		testutil.AssertNoError(t, err)
		if created != 0 {
			t.Errorf("expected 0 for user without schedules, got %d", created)
		}

		var count int64
		db.Model(&models.Transaction{}).Where("user_id = ?", other.ID).Count(&count)
		if count != 0 {
			t.Errorf("expected other user's schedules untouched, got %d rows", count)
		}
	})
}
