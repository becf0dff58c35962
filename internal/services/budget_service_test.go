package services

import (
	"testing"

	"sobi/internal/models"
	"sobi/internal/testutil"
)

func TestBudgetService_SetBudget(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	service := NewBudgetService(db)

	t.Run("creates_budget_on_first_write", func(t *testing.T) {
		userID := testutil.NewTestUserID()

		budget, err := service.SetBudget(userID, models.CategoryFood, "2024-01", 300000)
		testutil.AssertNoError(t, err)

		if budget.ID == "" || budget.Amount != 300000 {
			t.Errorf("unexpected budget: %+v", budget)
		}
	})

	t.Run("second_write_replaces_not_duplicates", func(t *testing.T) {
		userID := testutil.NewTestUserID()

		first, err := service.SetBudget(userID, models.CategoryFood, "2024-01", 300000)
		testutil.AssertNoError(t, err)

		second, err := service.SetBudget(userID, models.CategoryFood, "2024-01", 250000)
		testutil.AssertNoError(t, err)

		if second.ID != first.ID {
			t.Errorf("expected upsert to reuse row %s, got %s", first.ID, second.ID)
		}

		budgets, err := service.GetMonthBudgets(userID, "2024-01")
		testutil.AssertNoError(t, err)
		if len(budgets) != 1 || budgets[0].Amount != 250000 {
			t.Errorf("expected single replaced budget, got %+v", budgets)
		}
	})

	t.Run("different_months_are_distinct_rows", func(t *testing.T) {
		userID := testutil.NewTestUserID()

		_, err := service.SetBudget(userID, models.CategoryFood, "2024-01", 300000)
		testutil.AssertNoError(t, err)
		_, err = service.SetBudget(userID, models.CategoryFood, "2024-02", 280000)
		testutil.AssertNoError(t, err)

		january, err := service.GetMonthBudgets(userID, "2024-01")
		testutil.AssertNoError(t, err)
		february, err := service.GetMonthBudgets(userID, "2024-02")
		testutil.AssertNoError(t, err)

		if len(january) != 1 || len(february) != 1 {
			t.Errorf("expected one budget per month, got %d and %d", len(january), len(february))
		}
	})

	t.Run("zero_amount_clears_the_cap", func(t *testing.T) {
		userID := testutil.NewTestUserID()

		_, err := service.SetBudget(userID, models.CategoryTransport, "2024-01", 0)
		testutil.AssertNoError(t, err)

		budgets, err := service.GetMonthBudgets(userID, "2024-01")
		testutil.AssertNoError(t, err)
		if len(budgets) != 1 || budgets[0].Amount != 0 {
			t.Errorf("expected stored zero-amount budget, got %+v", budgets)
		}
	})

	t.Run("validation_failures", func(t *testing.T) {
		userID := testutil.NewTestUserID()

		_, err := service.SetBudget(userID, models.Category("crypto"), "2024-01", 1000)
		testutil.AssertAppError(t, err, "INVALID_CATEGORY")

		_, err = service.SetBudget(userID, models.CategoryFood, "2024-13", 1000)
		testutil.AssertAppError(t, err, "INVALID_MONTH")

		_, err = service.SetBudget(userID, models.CategoryFood, "202401", 1000)
		testutil.AssertAppError(t, err, "INVALID_MONTH")

		_, err = service.SetBudget(userID, models.CategoryFood, "2024-01", -1)
		testutil.AssertAppError(t, err, "NEGATIVE_AMOUNT")
	})
}

func TestBudgetService_GetMonthBudgets(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	service := NewBudgetService(db)

	t.Run("returns_canonical_category_order", func(t *testing.T) {
		userID := testutil.NewTestUserID()
		testutil.CreateTestBudget(t, db, userID, models.CategoryUtilities, "2024-01", 50000)
		testutil.CreateTestBudget(t, db, userID, models.CategoryFood, "2024-01", 300000)
		testutil.CreateTestBudget(t, db, userID, models.CategoryShopping, "2024-01", 100000)

		budgets, err := service.GetMonthBudgets(userID, "2024-01")
		testutil.AssertNoError(t, err)

		want := []models.Category{models.CategoryFood, models.CategoryShopping, models.CategoryUtilities}
		if len(budgets) != len(want) {
			t.Fatalf("expected %d budgets, got %d", len(want), len(budgets))
		}
		for i, category := range want {
			if budgets[i].Category != category {
				t.Errorf("position %d: expected %s, got %s", i, category, budgets[i].Category)
			}
		}
	})

	t.Run("invalid_month_is_rejected", func(t *testing.T) {
		_, err := service.GetMonthBudgets(testutil.NewTestUserID(), "january")
		testutil.AssertAppError(t, err, "INVALID_MONTH")
	})
}

func TestBudgetService_DeleteBudget(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	service := NewBudgetService(db)

	t.Run("deletes_own_budget", func(t *testing.T) {
		userID := testutil.NewTestUserID()
		budget := testutil.CreateTestBudget(t, db, userID, models.CategoryFood, "2024-01", 300000)

		testutil.AssertNoError(t, service.DeleteBudget(userID, budget.ID))

		budgets, err := service.GetMonthBudgets(userID, "2024-01")
		testutil.AssertNoError(t, err)
		if len(budgets) != 0 {
			t.Errorf("expected no budgets after delete, got %+v", budgets)
		}
	})

	t.Run("not_found_for_other_user", func(t *testing.T) {
		userID := testutil.NewTestUserID()
		budget := testutil.CreateTestBudget(t, db, userID, models.CategoryFood, "2024-01", 300000)

		err := service.DeleteBudget(testutil.NewTestUserID(), budget.ID)
		testutil.AssertAppError(t, err, "BUDGET_NOT_FOUND")
	})

	t.Run("budget_can_be_set_again_after_delete", func(t *testing.T) {
		userID := testutil.NewTestUserID()

		first, err := service.SetBudget(userID, models.CategoryFood, "2024-01", 300000)
		testutil.AssertNoError(t, err)
		testutil.AssertNoError(t, service.DeleteBudget(userID, first.ID))

		second, err := service.SetBudget(userID, models.CategoryFood, "2024-01", 200000)
		testutil.AssertNoError(t, err)

		budgets, err := service.GetMonthBudgets(userID, "2024-01")
		testutil.AssertNoError(t, err)
		if len(budgets) != 1 || budgets[0].Amount != 200000 {
			t.Errorf("expected a single fresh budget, got %+v", budgets)
		}
		if second.ID == first.ID {
			t.Error("expected a new row after delete, got the deleted one back")
		}
	})
}
