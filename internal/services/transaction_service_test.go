package services

import (
	"testing"
	"time"

	"sobi/internal/analytics"
	"sobi/internal/models"
	"sobi/internal/pagination"
	"sobi/internal/testutil"
)

func testDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		t.Fatalf("bad test date %q: %v", s, err)
	}
	return d
}

func TestTransactionService_CreateTransaction(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	service := NewTransactionService(db)

	t.Run("creates_transaction", func(t *testing.T) {
		userID := testutil.NewTestUserID()

		txn, err := service.CreateTransaction(userID, 6500, models.CategoryFood, "아메리카노", "스타벅스", models.PaymentMethodCard, testDate(t, "2024-01-15"))
		testutil.AssertNoError(t, err)

		if txn.ID == "" {
			t.Error("expected generated ID")
		}
		if txn.Amount != 6500 || txn.Category != models.CategoryFood {
			t.Errorf("unexpected stored transaction: %+v", txn)
		}
	})

	t.Run("zero_amount_is_allowed", func(t *testing.T) {
		userID := testutil.NewTestUserID()

		_, err := service.CreateTransaction(userID, 0, models.CategoryOther, "free sample", "", models.PaymentMethodOther, testDate(t, "2024-01-15"))
		testutil.AssertNoError(t, err)
	})

	t.Run("rejects_negative_amount", func(t *testing.T) {
		userID := testutil.NewTestUserID()

		_, err := service.CreateTransaction(userID, -100, models.CategoryFood, "refund", "", models.PaymentMethodCard, testDate(t, "2024-01-15"))
		testutil.AssertAppError(t, err, "NEGATIVE_AMOUNT")
	})

	t.Run("rejects_unknown_category", func(t *testing.T) {
		userID := testutil.NewTestUserID()

		_, err := service.CreateTransaction(userID, 100, models.Category("crypto"), "coin", "", models.PaymentMethodCard, testDate(t, "2024-01-15"))
		testutil.AssertAppError(t, err, "INVALID_CATEGORY")
	})

	t.Run("defaults_zero_date_to_now", func(t *testing.T) {
		userID := testutil.NewTestUserID()

		txn, err := service.CreateTransaction(userID, 100, models.CategoryFood, "snack", "", models.PaymentMethodCash, time.Time{})
		testutil.AssertNoError(t, err)
		if txn.Date.IsZero() {
			t.Error("expected date to be defaulted")
		}
	})
}

func TestTransactionService_GetUserTransactions(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	service := NewTransactionService(db)

	t.Run("paginates_newest_first", func(t *testing.T) {
		userID := testutil.NewTestUserID()
		testutil.CreateTestTransaction(t, db, userID, 1000, models.CategoryFood, testDate(t, "2024-01-10"))
		testutil.CreateTestTransaction(t, db, userID, 2000, models.CategoryFood, testDate(t, "2024-01-12"))
		testutil.CreateTestTransaction(t, db, userID, 3000, models.CategoryFood, testDate(t, "2024-01-11"))

		page, err := service.GetUserTransactions(userID, pagination.PageRequest{Page: 1, PageSize: 2})
		testutil.AssertNoError(t, err)

		if page.TotalItems != 3 || page.TotalPages != 2 {
			t.Errorf("unexpected pagination metadata: %+v", page)
		}
		if len(page.Data) != 2 || page.Data[0].Amount != 2000 || page.Data[1].Amount != 3000 {
			t.Errorf("expected newest first, got %+v", page.Data)
		}
	})

	t.Run("does_not_see_other_users", func(t *testing.T) {
		userID := testutil.NewTestUserID()
		other := testutil.NewTestUserID()
		testutil.CreateTestTransaction(t, db, other, 1000, models.CategoryFood, testDate(t, "2024-01-10"))

		page, err := service.GetUserTransactions(userID, pagination.PageRequest{})
		testutil.AssertNoError(t, err)
		if page.TotalItems != 0 {
			t.Errorf("expected empty page, got %d items", page.TotalItems)
		}
	})
}

func TestTransactionService_UpdateTransaction(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	service := NewTransactionService(db)

	t.Run("updates_provided_fields_only", func(t *testing.T) {
		userID := testutil.NewTestUserID()
		txn := testutil.CreateTestTransaction(t, db, userID, 1000, models.CategoryFood, testDate(t, "2024-01-10"))

		amount := int64(2500)
		category := models.CategoryTransport
		updated, err := service.UpdateTransaction(userID, txn.ID, TransactionUpdate{Amount: &amount, Category: &category})
		testutil.AssertNoError(t, err)

		if updated.Amount != 2500 || updated.Category != models.CategoryTransport {
			t.Errorf("unexpected update result: %+v", updated)
		}
		if updated.Description != "test transaction" {
			t.Errorf("description should be untouched, got %q", updated.Description)
		}
	})

	t.Run("rejects_negative_amount", func(t *testing.T) {
		userID := testutil.NewTestUserID()
		txn := testutil.CreateTestTransaction(t, db, userID, 1000, models.CategoryFood, testDate(t, "2024-01-10"))

		amount := int64(-1)
		_, err := service.UpdateTransaction(userID, txn.ID, TransactionUpdate{Amount: &amount})
		testutil.AssertAppError(t, err, "NEGATIVE_AMOUNT")
	})

	t.Run("not_found_for_other_user", func(t *testing.T) {
		userID := testutil.NewTestUserID()
		txn := testutil.CreateTestTransaction(t, db, userID, 1000, models.CategoryFood, testDate(t, "2024-01-10"))

		_, err := service.UpdateTransaction(testutil.NewTestUserID(), txn.ID, TransactionUpdate{})
		testutil.AssertAppError(t, err, "TRANSACTION_NOT_FOUND")
	})
}

func TestTransactionService_DeleteTransaction(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	service := NewTransactionService(db)

	t.Run("deleted_records_leave_listings", func(t *testing.T) {
		userID := testutil.NewTestUserID()
		txn := testutil.CreateTestTransaction(t, db, userID, 1000, models.CategoryFood, testDate(t, "2024-01-10"))

		testutil.AssertNoError(t, service.DeleteTransaction(userID, txn.ID))

		page, err := service.GetUserTransactions(userID, pagination.PageRequest{})
		testutil.AssertNoError(t, err)
		if page.TotalItems != 0 {
			t.Errorf("expected deleted transaction to disappear, got %d items", page.TotalItems)
		}

		_, err = service.GetTransactionByID(userID, txn.ID)
		testutil.AssertAppError(t, err, "TRANSACTION_NOT_FOUND")
	})

	t.Run("delete_twice_is_not_found", func(t *testing.T) {
		userID := testutil.NewTestUserID()
		txn := testutil.CreateTestTransaction(t, db, userID, 1000, models.CategoryFood, testDate(t, "2024-01-10"))

		testutil.AssertNoError(t, service.DeleteTransaction(userID, txn.ID))
		testutil.AssertAppError(t, service.DeleteTransaction(userID, txn.ID), "TRANSACTION_NOT_FOUND")
	})
}

func TestTransactionService_SearchTransactions(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	service := NewTransactionService(db)

	ref := testDate(t, "2024-01-20")

	t.Run("filters_and_computes_stats", func(t *testing.T) {
		userID := testutil.NewTestUserID()
		coffee := testutil.CreateTestTransaction(t, db, userID, 6500, models.CategoryFood, testDate(t, "2024-01-15"))
		db.Model(coffee).Update("merchant", "스타벅스 강남점")
		testutil.CreateTestTransaction(t, db, userID, 12000, models.CategoryFood, testDate(t, "2024-01-16"))

		result, err := service.SearchTransactions(userID, analytics.TransactionQuery{Search: "스타벅스", Category: analytics.CategoryAll, Period: "month"}, ref)
		testutil.AssertNoError(t, err)

		if len(result.Transactions) != 1 {
			t.Fatalf("expected 1 match, got %d", len(result.Transactions))
		}
		if result.Stats.Count != 1 || result.Stats.Total != 6500 || result.Stats.Average != 6500 {
			t.Errorf("unexpected stats: %+v", result.Stats)
		}
	})

	t.Run("empty_query_returns_everything_with_stats", func(t *testing.T) {
		userID := testutil.NewTestUserID()
		testutil.CreateTestTransaction(t, db, userID, 10000, models.CategoryFood, testDate(t, "2024-01-15"))
		testutil.CreateTestTransaction(t, db, userID, 20000, models.CategoryTransport, testDate(t, "2024-01-16"))

		result, err := service.SearchTransactions(userID, analytics.TransactionQuery{}, ref)
		testutil.AssertNoError(t, err)

		if result.Stats.Count != 2 || result.Stats.Total != 30000 || result.Stats.Average != 15000 {
			t.Errorf("unexpected stats: %+v", result.Stats)
		}
	})
}
