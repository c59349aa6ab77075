package document

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/budgetbook/backend/internal/domain/entity"
	domainerror "github.com/budgetbook/backend/internal/domain/error"
)

func newTestAccount(t *testing.T, d *Document, name string, typeName string, startingBalance int64) *entity.Account {
	t.Helper()
	accountType, err := d.AccountTypeByName(typeName)
	if err != nil {
		t.Fatalf("account type %s: %v", typeName, err)
	}
	account, err := d.AddAccount(name, accountType.ID, startingBalance, entity.NewDate(2025, time.January, 1), "")
	if err != nil {
		t.Fatalf("add account %s: %v", name, err)
	}
	return account
}

func newTestCategory(t *testing.T, d *Document, name string, income bool, parent *entity.BudgetCategory) *entity.BudgetCategory {
	t.Helper()
	var parentID *uuid.UUID
	if parent != nil {
		parentID = &parent.ID
	}
	category, err := d.AddBudgetCategory(name, entity.PeriodMonth, income, parentID)
	if err != nil {
		t.Fatalf("add category %s: %v", name, err)
	}
	return category
}

func TestAccountLifecycle(t *testing.T) {
	d := New()

	t.Run("new document carries the default account types", func(t *testing.T) {
		if got := len(d.AccountTypes()); got != 7 {
			t.Errorf("expected 7 account types, got %d", got)
		}
	})

	t.Run("empty name is rejected", func(t *testing.T) {
		checking, _ := d.AccountTypeByName("Checking")
		if _, err := d.AddAccount("  ", checking.ID, 0, entity.NewDate(2025, time.January, 1), ""); !errors.Is(err, domainerror.ErrAccountNameEmpty) {
			t.Errorf("expected ErrAccountNameEmpty, got %v", err)
		}
	})

	t.Run("duplicate name is rejected", func(t *testing.T) {
		newTestAccount(t, d, "Everyday", "Checking", 0)
		checking, _ := d.AccountTypeByName("Checking")
		if _, err := d.AddAccount("everyday", checking.ID, 0, entity.NewDate(2025, time.January, 1), ""); !errors.Is(err, domainerror.ErrAccountNameExists) {
			t.Errorf("expected ErrAccountNameExists, got %v", err)
		}
	})

	t.Run("unknown account type is rejected", func(t *testing.T) {
		if _, err := d.AddAccount("Orphan", uuid.New(), 0, entity.NewDate(2025, time.January, 1), ""); !errors.Is(err, domainerror.ErrAccountTypeNotFound) {
			t.Errorf("expected ErrAccountTypeNotFound, got %v", err)
		}
	})

	t.Run("deleted accounts leave listings but stay queryable", func(t *testing.T) {
		account := newTestAccount(t, d, "Old Savings", "Savings", 100)
		if err := d.RemoveAccount(account.ID); err != nil {
			t.Fatalf("remove account: %v", err)
		}
		for _, a := range d.Accounts(false) {
			if a.ID == account.ID {
				t.Error("deleted account still listed")
			}
		}
		if _, err := d.AccountByID(account.ID); err != nil {
			t.Errorf("deleted account should remain queryable, got %v", err)
		}
	})

	t.Run("a deleted account frees its name", func(t *testing.T) {
		account := newTestAccount(t, d, "Recycled", "Checking", 0)
		if err := d.RemoveAccount(account.ID); err != nil {
			t.Fatalf("remove account: %v", err)
		}
		if _, err := d.AddAccount("Recycled", account.Type.ID, 0, entity.NewDate(2025, time.January, 1), ""); err != nil {
			t.Errorf("expected name to be reusable, got %v", err)
		}
	})

	t.Run("update rejects duplicate name without committing", func(t *testing.T) {
		account := newTestAccount(t, d, "Primary", "Checking", 0)
		newTestAccount(t, d, "Secondary", "Checking", 0)
		name := "Secondary"
		if err := d.UpdateAccount(account.ID, AccountUpdate{Name: &name}); !errors.Is(err, domainerror.ErrAccountNameExists) {
			t.Fatalf("expected ErrAccountNameExists, got %v", err)
		}
		if account.Name != "Primary" {
			t.Errorf("rejected update must not change the account, name is %s", account.Name)
		}
	})
}

func TestCategoryLifecycle(t *testing.T) {
	t.Run("invalid period type is rejected", func(t *testing.T) {
		d := New()
		if _, err := d.AddBudgetCategory("Misc", entity.PeriodType("fortnight"), false, nil); !errors.Is(err, domainerror.ErrInvalidPeriodType) {
			t.Errorf("expected ErrInvalidPeriodType, got %v", err)
		}
	})

	t.Run("removal re-parents children to the removed node's parent", func(t *testing.T) {
		d := New()
		root := newTestCategory(t, d, "Auto", false, nil)
		middle := newTestCategory(t, d, "Maintenance", false, root)
		leaf := newTestCategory(t, d, "Tires", false, middle)

		if err := d.RemoveBudgetCategory(middle.ID); err != nil {
			t.Fatalf("remove category: %v", err)
		}
		if leaf.Parent != root {
			t.Errorf("expected leaf re-parented to root, got %v", leaf.Parent)
		}
		if !middle.Deleted {
			t.Error("expected middle to be soft-deleted")
		}
		if got := leaf.SourceFullName(); got != "Auto:Tires" {
			t.Errorf("expected Auto:Tires, got %s", got)
		}
	})

	t.Run("removing a root promotes its children to roots", func(t *testing.T) {
		d := New()
		root := newTestCategory(t, d, "Home", false, nil)
		child := newTestCategory(t, d, "Rent", false, root)

		if err := d.RemoveBudgetCategory(root.ID); err != nil {
			t.Fatalf("remove category: %v", err)
		}
		if child.Parent != nil {
			t.Errorf("expected child promoted to root, parent is %v", child.Parent)
		}
		found := false
		for _, r := range d.RootCategories() {
			if r.ID == child.ID {
				found = true
			}
		}
		if !found {
			t.Error("promoted child missing from root listing")
		}
	})

	t.Run("deleted categories stay queryable but leave listings", func(t *testing.T) {
		d := New()
		category := newTestCategory(t, d, "Gone", false, nil)
		if err := d.RemoveBudgetCategory(category.ID); err != nil {
			t.Fatalf("remove category: %v", err)
		}
		if _, err := d.CategoryByID(category.ID); err != nil {
			t.Errorf("deleted category should remain queryable, got %v", err)
		}
		for _, c := range d.Categories(false) {
			if c.ID == category.ID {
				t.Error("deleted category still listed")
			}
		}
	})

	t.Run("moving a category under its own descendant is rejected", func(t *testing.T) {
		d := New()
		parent := newTestCategory(t, d, "A", false, nil)
		child := newTestCategory(t, d, "B", false, parent)

		if err := d.UpdateBudgetCategory(parent.ID, CategoryUpdate{Parent: &child.ID}); !errors.Is(err, domainerror.ErrCategoryCycle) {
			t.Errorf("expected ErrCategoryCycle, got %v", err)
		}
		if parent.Parent != nil {
			t.Error("rejected move must not detach the category")
		}
	})

	t.Run("moving a category to the root", func(t *testing.T) {
		d := New()
		parent := newTestCategory(t, d, "A", false, nil)
		child := newTestCategory(t, d, "B", false, parent)

		rootID := uuid.Nil
		if err := d.UpdateBudgetCategory(child.ID, CategoryUpdate{Parent: &rootID}); err != nil {
			t.Fatalf("move to root: %v", err)
		}
		if child.Parent != nil {
			t.Errorf("expected no parent, got %v", child.Parent)
		}
		if len(parent.Children) != 0 {
			t.Errorf("expected old parent to have no children, got %d", len(parent.Children))
		}
	})

	t.Run("negative budgeted amount is rejected", func(t *testing.T) {
		d := New()
		category := newTestCategory(t, d, "Food", false, nil)
		if err := d.SetBudgetAmount(category.ID, entity.NewDate(2025, time.October, 1), -1); !errors.Is(err, domainerror.ErrNegativeAmount) {
			t.Errorf("expected ErrNegativeAmount, got %v", err)
		}
	})
}

func TestChangeEvents(t *testing.T) {
	d := New()
	events, cancel := d.Subscribe(16)
	defer cancel()

	account := newTestAccount(t, d, "Everyday", "Checking", 0)

	select {
	case e := <-events:
		if e.Kind != ChangeAccount || e.Action != ActionCreated || e.ID != account.ID {
			t.Errorf("unexpected event %+v", e)
		}
	default:
		t.Fatal("expected a change event after AddAccount")
	}

	// A failed mutation must not emit.
	checking, _ := d.AccountTypeByName("Checking")
	if _, err := d.AddAccount("", checking.ID, 0, entity.NewDate(2025, time.January, 1), ""); err == nil {
		t.Fatal("expected error")
	}
	select {
	case e := <-events:
		t.Errorf("unexpected event after failed mutation: %+v", e)
	default:
	}
}
