// Package persistence implements the document store on a relational
// database.
package persistence

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/budgetbook/backend/internal/domain/document"
	"github.com/budgetbook/backend/internal/domain/entity"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dbSQL, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	dbSQL.SetMaxOpenConns(1)

	db, err := gorm.Open(sqlite.Dialector{Conn: dbSQL}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open gorm: %v", err)
	}
	if err := db.AutoMigrate(Models()...); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	t.Cleanup(func() { _ = dbSQL.Close() })
	return db
}

func TestDocumentStoreRoundTrip(t *testing.T) {
	store := NewDocumentStore(newTestDB(t))
	ctx := context.Background()

	doc := document.New()
	checkingType, err := doc.AccountTypeByName("Checking")
	if err != nil {
		t.Fatalf("account type: %v", err)
	}
	account, err := doc.AddAccount("Everyday", checkingType.ID, 5000, entity.NewDate(2025, time.January, 1), "main account")
	if err != nil {
		t.Fatalf("add account: %v", err)
	}

	auto, err := doc.AddBudgetCategory("Auto", entity.PeriodMonth, false, nil)
	if err != nil {
		t.Fatalf("add category: %v", err)
	}
	gas, err := doc.AddBudgetCategory("Gas", entity.PeriodMonth, false, &auto.ID)
	if err != nil {
		t.Fatalf("add category: %v", err)
	}
	if err := doc.SetBudgetAmount(gas.ID, entity.NewDate(2025, time.October, 10), 12000); err != nil {
		t.Fatalf("set amount: %v", err)
	}

	tx := entity.NewTransaction(entity.NewDate(2025, time.October, 15), "fill up", 4500, account, entity.Split)
	tx.ToSplits = []*entity.TransactionSplit{
		entity.NewTransactionSplit(gas, 3000),
		entity.NewTransactionSplit(auto, 1500),
	}
	tx.ClearedFrom = true
	if err := doc.AddTransaction(tx); err != nil {
		t.Fatalf("add transaction: %v", err)
	}

	scheduled := entity.NewScheduledTransaction("insurance", entity.FrequencyMonthly, entity.NewDate(2025, time.January, 1), 9000, account, auto)
	if err := doc.AddScheduledTransaction(scheduled); err != nil {
		t.Fatalf("add scheduled: %v", err)
	}

	doc.SetBudgetViewDate("default", entity.NewDate(2025, time.October, 20))
	if err := doc.SetBudgetViewPeriodType("default", entity.PeriodWeek); err != nil {
		t.Fatalf("set view: %v", err)
	}

	if err := store.Save(ctx, doc); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	t.Run("accounts survive with their types", func(t *testing.T) {
		got, err := loaded.AccountByID(account.ID)
		if err != nil {
			t.Fatalf("account: %v", err)
		}
		if got.Name != "Everyday" || got.StartingBalance != 5000 || got.Notes != "main account" {
			t.Errorf("unexpected account %+v", got)
		}
		if got.Type == nil || got.Type.Name != "Checking" {
			t.Errorf("unexpected account type %+v", got.Type)
		}
	})

	t.Run("category forest and amounts survive", func(t *testing.T) {
		gotGas, err := loaded.CategoryByID(gas.ID)
		if err != nil {
			t.Fatalf("category: %v", err)
		}
		if gotGas.SourceFullName() != "Auto:Gas" {
			t.Errorf("expected Auto:Gas, got %s", gotGas.SourceFullName())
		}
		if got := gotGas.Amount(entity.NewDate(2025, time.October, 1)); got != 12000 {
			t.Errorf("expected 12000, got %d", got)
		}
	})

	t.Run("transactions survive with splits and flags", func(t *testing.T) {
		got, err := loaded.TransactionByID(tx.ID)
		if err != nil {
			t.Fatalf("transaction: %v", err)
		}
		if got.Amount != 4500 || !got.ClearedFrom {
			t.Errorf("unexpected transaction %+v", got)
		}
		if len(got.ToSplits) != 2 {
			t.Fatalf("expected 2 splits, got %d", len(got.ToSplits))
		}
		if amount := got.ToAmount(loadedSource(t, loaded, gas.ID)); amount != 3000 {
			t.Errorf("expected split 3000, got %d", amount)
		}
	})

	t.Run("balances replay identically after a load", func(t *testing.T) {
		want, err := doc.BalanceAsOf(account.ID, entity.NewDate(2025, time.December, 31))
		if err != nil {
			t.Fatalf("balance: %v", err)
		}
		got, err := loaded.BalanceAsOf(account.ID, entity.NewDate(2025, time.December, 31))
		if err != nil {
			t.Fatalf("balance: %v", err)
		}
		if got != want {
			t.Errorf("expected %d, got %d", want, got)
		}
	})

	t.Run("scheduled transactions survive", func(t *testing.T) {
		templates := loaded.ScheduledTransactions()
		if len(templates) != 1 {
			t.Fatalf("expected 1 scheduled transaction, got %d", len(templates))
		}
		if templates[0].Name != "insurance" || templates[0].Frequency != entity.FrequencyMonthly {
			t.Errorf("unexpected template %+v", templates[0])
		}
	})

	t.Run("budget view state survives", func(t *testing.T) {
		periodType, date := loaded.BudgetViewState("default")
		if periodType != entity.PeriodWeek {
			t.Errorf("expected week, got %s", periodType)
		}
		wantType, wantDate := doc.BudgetViewState("default")
		if periodType != wantType || !date.Equal(wantDate) {
			t.Errorf("expected %s %v, got %s %v", wantType, wantDate, periodType, date)
		}
	})

	t.Run("new transactions continue the sequence", func(t *testing.T) {
		extra := entity.NewTransaction(
			entity.NewDate(2025, time.October, 16),
			"later",
			100,
			loadedSource(t, loaded, account.ID),
			loadedSource(t, loaded, gas.ID),
		)
		if err := loaded.AddTransaction(extra); err != nil {
			t.Fatalf("add transaction: %v", err)
		}
		if extra.Sequence <= tx.Sequence {
			t.Errorf("expected sequence above %d, got %d", tx.Sequence, extra.Sequence)
		}
	})
}

// loadedSource resolves a source from the loaded document by id, trying
// accounts then categories.
func loadedSource(t *testing.T, doc *document.Document, id uuid.UUID) entity.Source {
	t.Helper()
	if a, err := doc.AccountByID(id); err == nil {
		return a
	}
	c, err := doc.CategoryByID(id)
	if err != nil {
		t.Fatalf("source %s: %v", id, err)
	}
	return c
}

func TestDocumentStoreEmptyDatabase(t *testing.T) {
	store := NewDocumentStore(newTestDB(t))

	doc, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got := len(doc.AccountTypes()); got != 7 {
		t.Errorf("expected a fresh document with 7 default account types, got %d", got)
	}
	if got := len(doc.Accounts(true)); got != 0 {
		t.Errorf("expected no accounts, got %d", got)
	}
}

func TestDocumentStoreSaveReplacesPreviousState(t *testing.T) {
	store := NewDocumentStore(newTestDB(t))
	ctx := context.Background()

	doc := document.New()
	checkingType, err := doc.AccountTypeByName("Checking")
	if err != nil {
		t.Fatalf("account type: %v", err)
	}
	account, err := doc.AddAccount("Everyday", checkingType.ID, 0, entity.NewDate(2025, time.January, 1), "")
	if err != nil {
		t.Fatalf("add account: %v", err)
	}
	if err := store.Save(ctx, doc); err != nil {
		t.Fatalf("save: %v", err)
	}

	// Mutate and save again: the second snapshot must fully replace the
	// first, not accumulate.
	name := "Renamed"
	if err := doc.UpdateAccount(account.ID, document.AccountUpdate{Name: &name}); err != nil {
		t.Fatalf("update: %v", err)
	}
	if err := store.Save(ctx, doc); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	accounts := loaded.Accounts(true)
	if len(accounts) != 1 {
		t.Fatalf("expected 1 account, got %d", len(accounts))
	}
	if accounts[0].Name != "Renamed" {
		t.Errorf("expected Renamed, got %s", accounts[0].Name)
	}
}
