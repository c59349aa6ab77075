// Package document implements the ledger and budget aggregation engine.
// A Document is the aggregate root owning the account list, the budget
// category forest, the transaction ledger and the scheduled transaction
// set. All mutation is serialized behind one writer lock; reads take a
// shared lock. Every successful mutation synchronously invalidates the
// balance caches it touches and emits a change event before returning.
package document

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/budgetbook/backend/internal/domain/entity"
	domainerror "github.com/budgetbook/backend/internal/domain/error"
)

// Document is the aggregate root of the engine.
type Document struct {
	mu sync.RWMutex

	accountTypes []*entity.AccountType
	accounts     []*entity.Account
	roots        []*entity.BudgetCategory
	transactions []*entity.Transaction
	byID         map[uuid.UUID]*entity.Transaction
	scheduled    []*entity.ScheduledTransaction

	nextSequence uint64
	balances     map[uuid.UUID]*balanceEntry
	views        map[string]*BudgetView
	notifier     *notifier
}

// New creates an empty Document with the default account types installed.
func New() *Document {
	return &Document{
		accountTypes: entity.DefaultAccountTypes(),
		byID:         make(map[uuid.UUID]*entity.Transaction),
		balances:     make(map[uuid.UUID]*balanceEntry),
		views:        make(map[string]*BudgetView),
		notifier:     newNotifier(),
	}
}

// NewEmpty creates a Document without default account types. Used when
// loading a persisted document.
func NewEmpty() *Document {
	d := New()
	d.accountTypes = nil
	return d
}

// --- Account types ---

// AccountTypes returns the document's account types.
func (d *Document) AccountTypes() []*entity.AccountType {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return append([]*entity.AccountType(nil), d.accountTypes...)
}

// AccountTypeByID looks up an account type.
func (d *Document) AccountTypeByID(id uuid.UUID) (*entity.AccountType, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.accountTypeByID(id)
}

func (d *Document) accountTypeByID(id uuid.UUID) (*entity.AccountType, error) {
	for _, at := range d.accountTypes {
		if at.ID == id {
			return at, nil
		}
	}
	return nil, domainerror.NewAccountError(
		domainerror.ErrCodeAccountTypeNotFound,
		"account type not found",
		domainerror.ErrAccountTypeNotFound,
	)
}

// AccountTypeByName looks up an account type by its display name.
func (d *Document) AccountTypeByName(name string) (*entity.AccountType, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	for _, at := range d.accountTypes {
		if strings.EqualFold(at.Name, name) {
			return at, nil
		}
	}
	return nil, domainerror.NewAccountError(
		domainerror.ErrCodeAccountTypeNotFound,
		"account type not found",
		domainerror.ErrAccountTypeNotFound,
	)
}

// RestoreAccountType installs an account type when loading a document.
func (d *Document) RestoreAccountType(at *entity.AccountType) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.accountTypes = append(d.accountTypes, at)
}

// SetAccountTypeExpanded stores the persisted expansion flag of an account
// type. Pass-through UI state: no computation depends on it.
func (d *Document) SetAccountTypeExpanded(id uuid.UUID, expanded bool) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	at, err := d.accountTypeByID(id)
	if err != nil {
		return err
	}
	at.Expanded = expanded
	d.notify(ChangeAccountType, ActionUpdated, id)
	return nil
}

// --- Accounts ---

// Accounts returns accounts in creation order. Deleted accounts are
// included only when includeDeleted is set.
func (d *Document) Accounts(includeDeleted bool) []*entity.Account {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]*entity.Account, 0, len(d.accounts))
	for _, a := range d.accounts {
		if a.Deleted && !includeDeleted {
			continue
		}
		out = append(out, a)
	}
	return out
}

// AccountByID looks up an account, deleted or not.
func (d *Document) AccountByID(id uuid.UUID) (*entity.Account, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.accountByID(id)
}

func (d *Document) accountByID(id uuid.UUID) (*entity.Account, error) {
	for _, a := range d.accounts {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, domainerror.NewAccountError(
		domainerror.ErrCodeAccountNotFound,
		"account not found",
		domainerror.ErrAccountNotFound,
	)
}

// AddAccount creates an account and attaches it to the document.
func (d *Document) AddAccount(name string, typeID uuid.UUID, startingBalance int64, startDate time.Time, notes string) (*entity.Account, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if strings.TrimSpace(name) == "" {
		return nil, domainerror.NewAccountError(
			domainerror.ErrCodeAccountNameEmpty,
			"account name must not be empty",
			domainerror.ErrAccountNameEmpty,
		)
	}
	for _, a := range d.accounts {
		if !a.Deleted && strings.EqualFold(a.Name, name) {
			return nil, domainerror.NewAccountError(
				domainerror.ErrCodeAccountNameExists,
				"an account with this name already exists",
				domainerror.ErrAccountNameExists,
			)
		}
	}
	accountType, err := d.accountTypeByID(typeID)
	if err != nil {
		return nil, err
	}

	account := entity.NewAccount(name, accountType, startingBalance, startDate)
	account.Notes = notes
	d.accounts = append(d.accounts, account)
	d.notify(ChangeAccount, ActionCreated, account.ID)
	return account, nil
}

// RestoreAccount attaches an already-built account when loading a document.
func (d *Document) RestoreAccount(a *entity.Account) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.accounts = append(d.accounts, a)
}

// AccountUpdate carries the optional field changes of UpdateAccount.
type AccountUpdate struct {
	Name            *string
	TypeID          *uuid.UUID
	StartingBalance *int64
	StartDate       *time.Time
	Notes           *string
}

// UpdateAccount applies the update atomically. The balance cache for the
// account is invalidated when the starting balance or type changes.
func (d *Document) UpdateAccount(id uuid.UUID, update AccountUpdate) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	account, err := d.accountByID(id)
	if err != nil {
		return err
	}
	if update.Name != nil {
		if strings.TrimSpace(*update.Name) == "" {
			return domainerror.NewAccountError(
				domainerror.ErrCodeAccountNameEmpty,
				"account name must not be empty",
				domainerror.ErrAccountNameEmpty,
			)
		}
		for _, other := range d.accounts {
			if other.ID != id && !other.Deleted && strings.EqualFold(other.Name, *update.Name) {
				return domainerror.NewAccountError(
					domainerror.ErrCodeAccountNameExists,
					"an account with this name already exists",
					domainerror.ErrAccountNameExists,
				)
			}
		}
	}
	var accountType *entity.AccountType
	if update.TypeID != nil {
		if accountType, err = d.accountTypeByID(*update.TypeID); err != nil {
			return err
		}
	}

	// Validation passed; commit.
	if update.Name != nil {
		account.Name = *update.Name
	}
	if accountType != nil {
		account.Type = accountType
	}
	if update.StartingBalance != nil {
		account.StartingBalance = *update.StartingBalance
		d.invalidateBalance(id)
	}
	if update.StartDate != nil {
		account.StartDate = entity.Day(*update.StartDate)
	}
	if update.Notes != nil {
		account.Notes = *update.Notes
	}
	d.notify(ChangeAccount, ActionUpdated, id)
	return nil
}

// RemoveAccount soft-deletes an account. The account and its transactions
// remain queryable so history can still be replayed.
func (d *Document) RemoveAccount(id uuid.UUID) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	account, err := d.accountByID(id)
	if err != nil {
		return err
	}
	account.Deleted = true
	d.notify(ChangeAccount, ActionDeleted, id)
	return nil
}

// --- Budget categories ---

// RootCategories returns the non-deleted forest roots.
func (d *Document) RootCategories() []*entity.BudgetCategory {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]*entity.BudgetCategory, 0, len(d.roots))
	for _, c := range d.roots {
		if !c.Deleted {
			out = append(out, c)
		}
	}
	return out
}

// Categories returns the forest flattened in depth-first preorder. Deleted
// categories (and, transitively, their positions) are included only when
// includeDeleted is set; their non-deleted descendants were re-parented at
// deletion time and remain reachable.
func (d *Document) Categories(includeDeleted bool) []*entity.BudgetCategory {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.categoriesLocked(includeDeleted)
}

func (d *Document) categoriesLocked(includeDeleted bool) []*entity.BudgetCategory {
	var out []*entity.BudgetCategory
	var walk func(nodes []*entity.BudgetCategory)
	walk = func(nodes []*entity.BudgetCategory) {
		for _, c := range nodes {
			if !c.Deleted || includeDeleted {
				out = append(out, c)
			}
			walk(c.Children)
		}
	}
	walk(d.roots)
	return out
}

// CategoryByID looks up a category anywhere in the forest, deleted or not.
func (d *Document) CategoryByID(id uuid.UUID) (*entity.BudgetCategory, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.categoryByID(id)
}

func (d *Document) categoryByID(id uuid.UUID) (*entity.BudgetCategory, error) {
	for _, c := range d.categoriesLocked(true) {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, domainerror.NewBudgetError(
		domainerror.ErrCodeCategoryNotFound,
		"budget category not found",
		domainerror.ErrCategoryNotFound,
	)
}

// AddBudgetCategory creates a category under parentID (nil: forest root).
func (d *Document) AddBudgetCategory(name string, periodType entity.PeriodType, income bool, parentID *uuid.UUID) (*entity.BudgetCategory, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if strings.TrimSpace(name) == "" {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeCategoryNameEmpty,
			"category name must not be empty",
			domainerror.ErrCategoryNameEmpty,
		)
	}
	if !periodType.Valid() {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidPeriodType,
			"unknown period type",
			domainerror.ErrInvalidPeriodType,
		)
	}

	category := entity.NewBudgetCategory(name, periodType, income)
	if parentID != nil {
		parent, err := d.categoryByID(*parentID)
		if err != nil {
			return nil, err
		}
		category.Parent = parent
		parent.Children = append(parent.Children, category)
	} else {
		d.roots = append(d.roots, category)
	}
	d.notify(ChangeCategory, ActionCreated, category.ID)
	return category, nil
}

// RestoreCategory attaches an already-built category when loading a
// document. Parent wiring is the loader's responsibility.
func (d *Document) RestoreCategory(c *entity.BudgetCategory) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if c.Parent == nil {
		d.roots = append(d.roots, c)
	}
}

// CategoryUpdate carries the optional field changes of UpdateBudgetCategory.
// The period type is fixed at creation: changing it would silently orphan
// every stored period key.
type CategoryUpdate struct {
	Name     *string
	Income   *bool
	Notes    *string
	Expanded *bool
	// Parent moves the category. Nil: unchanged. Pointing at uuid.Nil:
	// move to the forest root.
	Parent *uuid.UUID
}

// UpdateBudgetCategory applies the update atomically, rejecting moves that
// would create a cycle.
func (d *Document) UpdateBudgetCategory(id uuid.UUID, update CategoryUpdate) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	category, err := d.categoryByID(id)
	if err != nil {
		return err
	}
	if update.Name != nil && strings.TrimSpace(*update.Name) == "" {
		return domainerror.NewBudgetError(
			domainerror.ErrCodeCategoryNameEmpty,
			"category name must not be empty",
			domainerror.ErrCategoryNameEmpty,
		)
	}

	var newParent *entity.BudgetCategory
	moveToRoot := false
	if update.Parent != nil {
		if *update.Parent == uuid.Nil {
			moveToRoot = true
		} else {
			if newParent, err = d.categoryByID(*update.Parent); err != nil {
				return err
			}
			if newParent == category || category.IsAncestorOf(newParent) {
				return domainerror.NewBudgetError(
					domainerror.ErrCodeCategoryCycle,
					"category cannot be moved under itself or a descendant",
					domainerror.ErrCategoryCycle,
				)
			}
		}
	}

	// Validation passed; commit.
	if update.Name != nil {
		category.Name = *update.Name
	}
	if update.Income != nil {
		category.Income = *update.Income
	}
	if update.Notes != nil {
		category.Notes = *update.Notes
	}
	if update.Expanded != nil {
		category.Expanded = *update.Expanded
	}
	if moveToRoot && category.Parent != nil {
		d.detachCategory(category)
		d.roots = append(d.roots, category)
	} else if newParent != nil && newParent != category.Parent {
		d.detachCategory(category)
		category.Parent = newParent
		newParent.Children = append(newParent.Children, category)
	}
	d.notify(ChangeCategory, ActionUpdated, id)
	return nil
}

// RemoveBudgetCategory soft-deletes a category. Its non-deleted children are
// re-parented to the removed node's parent (children of a deleted root
// become roots) so live descendants keep contributing to rollups.
func (d *Document) RemoveBudgetCategory(id uuid.UUID) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	category, err := d.categoryByID(id)
	if err != nil {
		return err
	}

	children := append([]*entity.BudgetCategory(nil), category.Children...)
	for _, child := range children {
		d.detachCategory(child)
		child.Parent = category.Parent
		if category.Parent != nil {
			category.Parent.Children = append(category.Parent.Children, child)
		} else {
			d.roots = append(d.roots, child)
		}
	}
	category.Deleted = true
	d.notify(ChangeCategory, ActionDeleted, id)
	return nil
}

// detachCategory unlinks a category from its current parent or the root
// list without touching its subtree.
func (d *Document) detachCategory(c *entity.BudgetCategory) {
	if c.Parent != nil {
		siblings := c.Parent.Children
		for i, s := range siblings {
			if s == c {
				c.Parent.Children = append(siblings[:i], siblings[i+1:]...)
				break
			}
		}
		c.Parent = nil
		return
	}
	for i, r := range d.roots {
		if r == c {
			d.roots = append(d.roots[:i], d.roots[i+1:]...)
			return
		}
	}
}

// SetBudgetAmount stores the budgeted amount for the period (in the
// category's own period type) containing date.
func (d *Document) SetBudgetAmount(categoryID uuid.UUID, date time.Time, amount int64) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	category, err := d.categoryByID(categoryID)
	if err != nil {
		return err
	}
	if amount < 0 {
		return domainerror.NewLedgerError(
			domainerror.ErrCodeNegativeAmount,
			"budgeted amount must not be negative",
			domainerror.ErrNegativeAmount,
		)
	}
	category.SetAmount(date, amount)
	d.notify(ChangeBudgetAmount, ActionUpdated, categoryID)
	return nil
}

// --- Scheduled transactions ---

// ScheduledTransactions returns the scheduled transaction templates.
func (d *Document) ScheduledTransactions() []*entity.ScheduledTransaction {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return append([]*entity.ScheduledTransaction(nil), d.scheduled...)
}

// AddScheduledTransaction validates and attaches a scheduled transaction.
func (d *Document) AddScheduledTransaction(s *entity.ScheduledTransaction) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !s.Frequency.Valid() {
		return domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidFrequency,
			"unknown frequency",
			domainerror.ErrInvalidFrequency,
		)
	}
	if s.Amount < 0 {
		return domainerror.NewLedgerError(
			domainerror.ErrCodeNegativeAmount,
			"amount must not be negative",
			domainerror.ErrNegativeAmount,
		)
	}
	if err := d.checkEndpoint(s.From); err != nil {
		return err
	}
	if err := d.checkEndpoint(s.To); err != nil {
		return err
	}
	if entity.SameSource(s.From, s.To) {
		return domainerror.NewLedgerError(
			domainerror.ErrCodeSameFromTo,
			"scheduled transaction from and to must be different sources",
			domainerror.ErrSameFromTo,
		)
	}
	d.scheduled = append(d.scheduled, s)
	d.notify(ChangeScheduled, ActionCreated, s.ID)
	return nil
}

// RemoveScheduledTransaction drops a template. Hard delete: templates carry
// no history.
func (d *Document) RemoveScheduledTransaction(id uuid.UUID) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	for i, s := range d.scheduled {
		if s.ID == id {
			d.scheduled = append(d.scheduled[:i], d.scheduled[i+1:]...)
			d.notify(ChangeScheduled, ActionDeleted, id)
			return nil
		}
	}
	return domainerror.NewLedgerError(
		domainerror.ErrCodeScheduledNotFound,
		"scheduled transaction not found",
		domainerror.ErrScheduledNotFound,
	)
}

// MaterializeScheduled generates concrete transactions for every due date
// up to asOf across all templates and returns how many were created.
func (d *Document) MaterializeScheduled(asOf time.Time) (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	created := 0
	for _, s := range d.scheduled {
		for _, due := range s.DueDates(asOf) {
			t := s.NewInstance(due)
			if err := d.addTransactionLocked(t); err != nil {
				return created, err
			}
			s.LastRun = due
			created++
		}
	}
	if created > 0 {
		d.notify(ChangeScheduled, ActionUpdated, uuid.Nil)
	}
	return created, nil
}

// RestoreTransaction attaches an already-built transaction when loading a
// document, keeping the sequence counter ahead of every restored entry.
func (d *Document) RestoreTransaction(t *entity.Transaction) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.transactions = append(d.transactions, t)
	d.byID[t.ID] = t
	if t.Sequence > d.nextSequence {
		d.nextSequence = t.Sequence
	}
}

// RestoreScheduledTransaction attaches an already-built template when
// loading a document.
func (d *Document) RestoreScheduledTransaction(s *entity.ScheduledTransaction) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.scheduled = append(d.scheduled, s)
}

// --- Budget views ---

// BudgetViewState returns the selected period type and date of a named
// budgeting view, creating the view on first use.
func (d *Document) BudgetViewState(name string) (entity.PeriodType, time.Time) {
	d.mu.Lock()
	defer d.mu.Unlock()
	v := d.viewLocked(name)
	return v.PeriodType(), v.Date()
}

// SetBudgetViewDate selects a date in the view's current period type.
func (d *Document) SetBudgetViewDate(name string, date time.Time) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.viewLocked(name).SetDate(date)
	d.notify(ChangeBudgetView, ActionUpdated, uuid.Nil)
}

// SetBudgetViewPeriodType switches the view's period type, restoring the
// last date viewed under the new type when one is remembered.
func (d *Document) SetBudgetViewPeriodType(name string, periodType entity.PeriodType) error {
	if !periodType.Valid() {
		return domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidPeriodType,
			"unknown period type",
			domainerror.ErrInvalidPeriodType,
		)
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.viewLocked(name).SetPeriodType(periodType)
	d.notify(ChangeBudgetView, ActionUpdated, uuid.Nil)
	return nil
}

// BudgetViews returns a snapshot of the named views for persistence.
func (d *Document) BudgetViews() map[string]*BudgetView {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make(map[string]*BudgetView, len(d.views))
	for name, v := range d.views {
		out[name] = v
	}
	return out
}

// RestoreView installs a view under its persisted name when loading a
// document.
func (d *Document) RestoreView(name string, v *BudgetView) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.views[name] = v
}

func (d *Document) viewLocked(name string) *BudgetView {
	v, ok := d.views[name]
	if !ok {
		v = NewBudgetView(time.Now())
		d.views[name] = v
	}
	return v
}

// --- Source ownership ---

// SourceByID resolves a source reference by kind and id.
func (d *Document) SourceByID(kind entity.SourceKind, id uuid.UUID) (entity.Source, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.sourceByID(kind, id)
}

func (d *Document) sourceByID(kind entity.SourceKind, id uuid.UUID) (entity.Source, error) {
	switch kind {
	case entity.SourceKindAccount:
		return d.accountByID(id)
	case entity.SourceKindCategory:
		return d.categoryByID(id)
	case entity.SourceKindSplit:
		return entity.Split, nil
	}
	return nil, domainerror.NewLedgerError(
		domainerror.ErrCodeSourceNotOwned,
		"unknown source kind",
		domainerror.ErrSourceNotOwned,
	)
}

// checkEndpoint verifies that a transaction endpoint belongs to this
// document. Deleted sources remain valid endpoints: history references them.
func (d *Document) checkEndpoint(s entity.Source) error {
	if s == nil {
		return domainerror.NewLedgerError(
			domainerror.ErrCodeNilSource,
			"source is required",
			domainerror.ErrNilSource,
		)
	}
	switch s.SourceKind() {
	case entity.SourceKindSplit:
		return nil
	case entity.SourceKindAccount:
		if owned, err := d.accountByID(s.SourceID()); err == nil && entity.Source(owned) == s {
			return nil
		}
	case entity.SourceKindCategory:
		if owned, err := d.categoryByID(s.SourceID()); err == nil && entity.Source(owned) == s {
			return nil
		}
	}
	return domainerror.NewLedgerError(
		domainerror.ErrCodeSourceNotOwned,
		"source does not belong to this document",
		domainerror.ErrSourceNotOwned,
	)
}
