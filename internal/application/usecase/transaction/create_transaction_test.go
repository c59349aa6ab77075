// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/budgetbook/backend/internal/domain/document"
	"github.com/budgetbook/backend/internal/domain/entity"
	domainerror "github.com/budgetbook/backend/internal/domain/error"
)

// stubStore counts saves and can be told to fail.
type stubStore struct {
	saves   int
	saveErr error
}

func (s *stubStore) Load(ctx context.Context) (*document.Document, error) {
	return document.New(), nil
}

func (s *stubStore) Save(ctx context.Context, doc *document.Document) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.saves++
	return nil
}

func setupDocument(t *testing.T) (*document.Document, *entity.Account, *entity.BudgetCategory) {
	t.Helper()
	doc := document.New()
	accountType, err := doc.AccountTypeByName("Checking")
	if err != nil {
		t.Fatalf("account type: %v", err)
	}
	account, err := doc.AddAccount("Checking", accountType.ID, 0, entity.NewDate(2025, time.January, 1), "")
	if err != nil {
		t.Fatalf("add account: %v", err)
	}
	category, err := doc.AddBudgetCategory("Groceries", entity.PeriodMonth, false, nil)
	if err != nil {
		t.Fatalf("add category: %v", err)
	}
	return doc, account, category
}

func TestCreateTransactionUseCase(t *testing.T) {
	t.Run("creates and persists a simple transaction", func(t *testing.T) {
		doc, account, category := setupDocument(t)
		store := &stubStore{}
		uc := NewCreateTransactionUseCase(doc, store)

		out, err := uc.Execute(context.Background(), CreateTransactionInput{
			Date:        entity.NewDate(2025, time.October, 15),
			Description: "groceries",
			Amount:      10000,
			From:        SourceRef{Kind: entity.SourceKindAccount, ID: account.ID},
			To:          SourceRef{Kind: entity.SourceKindCategory, ID: category.ID},
		})
		if err != nil {
			t.Fatalf("execute: %v", err)
		}
		if out.Transaction.Amount != 10000 {
			t.Errorf("expected amount 10000, got %d", out.Transaction.Amount)
		}
		if out.Transaction.From.Name != "Checking" {
			t.Errorf("expected from Checking, got %s", out.Transaction.From.Name)
		}
		if store.saves != 1 {
			t.Errorf("expected 1 save, got %d", store.saves)
		}
	})

	t.Run("creates a split transaction", func(t *testing.T) {
		doc, account, category := setupDocument(t)
		other, err := doc.AddBudgetCategory("Household", entity.PeriodMonth, false, nil)
		if err != nil {
			t.Fatalf("add category: %v", err)
		}
		uc := NewCreateTransactionUseCase(doc, &stubStore{})

		out, err := uc.Execute(context.Background(), CreateTransactionInput{
			Date:        entity.NewDate(2025, time.October, 15),
			Description: "shopping",
			Amount:      9000,
			From:        SourceRef{Kind: entity.SourceKindAccount, ID: account.ID},
			To:          SourceRef{Kind: entity.SourceKindSplit},
			ToSplits: []SplitInput{
				{Source: SourceRef{Kind: entity.SourceKindCategory, ID: category.ID}, Amount: 5000},
				{Source: SourceRef{Kind: entity.SourceKindCategory, ID: other.ID}, Amount: 4000},
			},
		})
		if err != nil {
			t.Fatalf("execute: %v", err)
		}
		if len(out.Transaction.ToSplits) != 2 {
			t.Fatalf("expected 2 splits, got %d", len(out.Transaction.ToSplits))
		}
		if out.Transaction.To.Kind != entity.SourceKindSplit {
			t.Errorf("expected split to side, got %s", out.Transaction.To.Kind)
		}
	})

	t.Run("rejects mismatched splits without saving", func(t *testing.T) {
		doc, account, category := setupDocument(t)
		store := &stubStore{}
		uc := NewCreateTransactionUseCase(doc, store)

		_, err := uc.Execute(context.Background(), CreateTransactionInput{
			Date:        entity.NewDate(2025, time.October, 15),
			Description: "shopping",
			Amount:      9000,
			From:        SourceRef{Kind: entity.SourceKindAccount, ID: account.ID},
			To:          SourceRef{Kind: entity.SourceKindSplit},
			ToSplits: []SplitInput{
				{Source: SourceRef{Kind: entity.SourceKindCategory, ID: category.ID}, Amount: 5000},
			},
		})
		if !errors.Is(err, domainerror.ErrSplitSumMismatch) {
			t.Fatalf("expected ErrSplitSumMismatch, got %v", err)
		}
		if store.saves != 0 {
			t.Errorf("expected no saves, got %d", store.saves)
		}
	})

	t.Run("unknown source is reported", func(t *testing.T) {
		doc, account, _ := setupDocument(t)
		uc := NewCreateTransactionUseCase(doc, &stubStore{})

		_, err := uc.Execute(context.Background(), CreateTransactionInput{
			Date:        entity.NewDate(2025, time.October, 15),
			Description: "stray",
			Amount:      100,
			From:        SourceRef{Kind: entity.SourceKindAccount, ID: account.ID},
			To:          SourceRef{Kind: entity.SourceKindCategory, ID: account.ID},
		})
		if !errors.Is(err, domainerror.ErrCategoryNotFound) {
			t.Fatalf("expected ErrCategoryNotFound, got %v", err)
		}
	})
}

func TestUpdateTransactionUseCase(t *testing.T) {
	t.Run("rejects a split edit that breaks the sum", func(t *testing.T) {
		doc, account, category := setupDocument(t)
		other, err := doc.AddBudgetCategory("Household", entity.PeriodMonth, false, nil)
		if err != nil {
			t.Fatalf("add category: %v", err)
		}

		create := NewCreateTransactionUseCase(doc, &stubStore{})
		created, err := create.Execute(context.Background(), CreateTransactionInput{
			Date:        entity.NewDate(2025, time.October, 15),
			Description: "shopping",
			Amount:      9000,
			From:        SourceRef{Kind: entity.SourceKindAccount, ID: account.ID},
			To:          SourceRef{Kind: entity.SourceKindSplit},
			ToSplits: []SplitInput{
				{Source: SourceRef{Kind: entity.SourceKindCategory, ID: category.ID}, Amount: 5000},
				{Source: SourceRef{Kind: entity.SourceKindCategory, ID: other.ID}, Amount: 4000},
			},
		})
		if err != nil {
			t.Fatalf("create: %v", err)
		}

		store := &stubStore{}
		update := NewUpdateTransactionUseCase(doc, store)
		_, err = update.Execute(context.Background(), UpdateTransactionInput{
			TransactionID: created.Transaction.ID,
			ToSplits: []SplitInput{
				{Source: SourceRef{Kind: entity.SourceKindCategory, ID: category.ID}, Amount: 5001},
				{Source: SourceRef{Kind: entity.SourceKindCategory, ID: other.ID}, Amount: 4000},
			},
		})
		if !errors.Is(err, domainerror.ErrSplitSumMismatch) {
			t.Fatalf("expected ErrSplitSumMismatch, got %v", err)
		}
		if store.saves != 0 {
			t.Errorf("expected no saves, got %d", store.saves)
		}

		stored, err := doc.TransactionByID(created.Transaction.ID)
		if err != nil {
			t.Fatalf("lookup: %v", err)
		}
		if got := stored.ToAmount(category); got != 5000 {
			t.Errorf("expected split untouched at 5000, got %d", got)
		}
	})
}
