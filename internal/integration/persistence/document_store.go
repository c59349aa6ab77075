// Package persistence implements the document store on a relational
// database. The engine works on the in-memory document; this package only
// ever loads or replaces the full graph.
package persistence

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/budgetbook/backend/internal/application/adapter"
	"github.com/budgetbook/backend/internal/domain/document"
	"github.com/budgetbook/backend/internal/domain/entity"
	"github.com/budgetbook/backend/internal/integration/persistence/model"
)

// Models lists every persisted table for migration.
func Models() []any {
	return []any{
		&model.AccountTypeModel{},
		&model.AccountModel{},
		&model.BudgetCategoryModel{},
		&model.BudgetAmountModel{},
		&model.TransactionModel{},
		&model.TransactionSplitModel{},
		&model.ScheduledTransactionModel{},
		&model.BudgetViewModel{},
		&model.BudgetViewDateModel{},
	}
}

// documentStore implements the adapter.DocumentStore interface.
type documentStore struct {
	db *gorm.DB
}

// NewDocumentStore creates a new document store instance.
func NewDocumentStore(db *gorm.DB) adapter.DocumentStore {
	return &documentStore{db: db}
}

// Load rebuilds the document graph from the database. A database without
// account types is treated as empty and yields a fresh default document.
func (s *documentStore) Load(ctx context.Context) (*document.Document, error) {
	db := s.db.WithContext(ctx)

	var accountTypes []model.AccountTypeModel
	if err := db.Order("position ASC").Find(&accountTypes).Error; err != nil {
		return nil, fmt.Errorf("load account types: %w", err)
	}
	if len(accountTypes) == 0 {
		return document.New(), nil
	}

	doc := document.NewEmpty()
	for i := range accountTypes {
		doc.RestoreAccountType(accountTypes[i].ToEntity())
	}

	var accounts []model.AccountModel
	if err := db.Order("position ASC").Find(&accounts).Error; err != nil {
		return nil, fmt.Errorf("load accounts: %w", err)
	}
	for i := range accounts {
		accountType, err := doc.AccountTypeByID(accounts[i].TypeID)
		if err != nil {
			return nil, fmt.Errorf("account %s: %w", accounts[i].Name, err)
		}
		doc.RestoreAccount(accounts[i].ToEntity(accountType))
	}

	if err := s.loadCategories(db, doc); err != nil {
		return nil, err
	}
	if err := s.loadTransactions(db, doc); err != nil {
		return nil, err
	}
	if err := s.loadScheduled(db, doc); err != nil {
		return nil, err
	}
	if err := s.loadViews(db, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func (s *documentStore) loadCategories(db *gorm.DB, doc *document.Document) error {
	var rows []model.BudgetCategoryModel
	if err := db.Order("position ASC").Find(&rows).Error; err != nil {
		return fmt.Errorf("load categories: %w", err)
	}

	categories := make(map[uuid.UUID]*entity.BudgetCategory, len(rows))
	for i := range rows {
		categories[rows[i].ID] = rows[i].ToEntity()
	}
	// Wire the forest, then hand the roots to the document. Children are
	// appended in position order because rows were read that way.
	for i := range rows {
		c := categories[rows[i].ID]
		if rows[i].ParentID == nil {
			continue
		}
		parent, ok := categories[*rows[i].ParentID]
		if !ok {
			return fmt.Errorf("category %s: parent %s not found", c.Name, *rows[i].ParentID)
		}
		c.Parent = parent
		parent.Children = append(parent.Children, c)
	}
	for i := range rows {
		doc.RestoreCategory(categories[rows[i].ID])
	}

	var amounts []model.BudgetAmountModel
	if err := db.Find(&amounts).Error; err != nil {
		return fmt.Errorf("load budget amounts: %w", err)
	}
	for _, a := range amounts {
		c, ok := categories[a.CategoryID]
		if !ok {
			return fmt.Errorf("budget amount: category %s not found", a.CategoryID)
		}
		c.RestoreAmount(a.PeriodKey, a.Amount)
	}
	return nil
}

func (s *documentStore) loadTransactions(db *gorm.DB, doc *document.Document) error {
	var splits []model.TransactionSplitModel
	if err := db.Order("position ASC").Find(&splits).Error; err != nil {
		return fmt.Errorf("load splits: %w", err)
	}
	fromSplits := make(map[uuid.UUID][]*entity.TransactionSplit)
	toSplits := make(map[uuid.UUID][]*entity.TransactionSplit)
	for _, row := range splits {
		source, err := doc.SourceByID(entity.SourceKind(row.SourceKind), row.SourceID)
		if err != nil {
			return fmt.Errorf("split %s: %w", row.ID, err)
		}
		split := &entity.TransactionSplit{ID: row.ID, Source: source, Amount: row.Amount}
		if row.Side == model.SplitSideFrom {
			fromSplits[row.TransactionID] = append(fromSplits[row.TransactionID], split)
		} else {
			toSplits[row.TransactionID] = append(toSplits[row.TransactionID], split)
		}
	}

	var rows []model.TransactionModel
	if err := db.Order("sequence ASC").Find(&rows).Error; err != nil {
		return fmt.Errorf("load transactions: %w", err)
	}
	for _, row := range rows {
		from, err := doc.SourceByID(entity.SourceKind(row.FromKind), row.FromID)
		if err != nil {
			return fmt.Errorf("transaction %s: %w", row.ID, err)
		}
		to, err := doc.SourceByID(entity.SourceKind(row.ToKind), row.ToID)
		if err != nil {
			return fmt.Errorf("transaction %s: %w", row.ID, err)
		}
		doc.RestoreTransaction(&entity.Transaction{
			ID:             row.ID,
			Date:           entity.Day(row.Date),
			Description:    row.Description,
			Number:         row.Number,
			Memo:           row.Memo,
			Amount:         row.Amount,
			From:           from,
			To:             to,
			FromSplits:     fromSplits[row.ID],
			ToSplits:       toSplits[row.ID],
			ClearedFrom:    row.ClearedFrom,
			ClearedTo:      row.ClearedTo,
			ReconciledFrom: row.ReconciledFrom,
			ReconciledTo:   row.ReconciledTo,
			Sequence:       row.Sequence,
		})
	}
	return nil
}

func (s *documentStore) loadScheduled(db *gorm.DB, doc *document.Document) error {
	var rows []model.ScheduledTransactionModel
	if err := db.Find(&rows).Error; err != nil {
		return fmt.Errorf("load scheduled transactions: %w", err)
	}
	for _, row := range rows {
		from, err := doc.SourceByID(entity.SourceKind(row.FromKind), row.FromID)
		if err != nil {
			return fmt.Errorf("scheduled %s: %w", row.ID, err)
		}
		to, err := doc.SourceByID(entity.SourceKind(row.ToKind), row.ToID)
		if err != nil {
			return fmt.Errorf("scheduled %s: %w", row.ID, err)
		}
		scheduled := &entity.ScheduledTransaction{
			ID:          row.ID,
			Name:        row.Name,
			Frequency:   entity.Frequency(row.Frequency),
			StartDate:   entity.Day(row.StartDate),
			Amount:      row.Amount,
			From:        from,
			To:          to,
			Description: row.Description,
			Memo:        row.Memo,
		}
		if row.EndDate != nil {
			end := entity.Day(*row.EndDate)
			scheduled.EndDate = &end
		}
		if !row.LastRun.IsZero() {
			scheduled.LastRun = entity.Day(row.LastRun)
		}
		doc.RestoreScheduledTransaction(scheduled)
	}
	return nil
}

func (s *documentStore) loadViews(db *gorm.DB, doc *document.Document) error {
	var dateRows []model.BudgetViewDateModel
	if err := db.Find(&dateRows).Error; err != nil {
		return fmt.Errorf("load budget view dates: %w", err)
	}
	lastDates := make(map[string]map[entity.PeriodType]time.Time)
	for _, row := range dateRows {
		if lastDates[row.ViewName] == nil {
			lastDates[row.ViewName] = make(map[entity.PeriodType]time.Time)
		}
		lastDates[row.ViewName][entity.PeriodType(row.PeriodType)] = entity.Day(row.Date)
	}

	var rows []model.BudgetViewModel
	if err := db.Find(&rows).Error; err != nil {
		return fmt.Errorf("load budget views: %w", err)
	}
	for _, row := range rows {
		view := document.RestoreBudgetView(
			entity.PeriodType(row.PeriodType),
			entity.Day(row.Date),
			lastDates[row.Name],
		)
		doc.RestoreView(row.Name, view)
	}
	return nil
}

// Save replaces the persisted state with a snapshot of the document, all in
// one database transaction.
func (s *documentStore) Save(ctx context.Context, doc *document.Document) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, m := range Models() {
			if err := tx.Where("1 = 1").Delete(m).Error; err != nil {
				return fmt.Errorf("clear table: %w", err)
			}
		}

		accountTypes := doc.AccountTypes()
		typeRows := make([]*model.AccountTypeModel, 0, len(accountTypes))
		for i, at := range accountTypes {
			typeRows = append(typeRows, model.AccountTypeFromEntity(at, i))
		}
		if err := createAll(tx, typeRows); err != nil {
			return fmt.Errorf("save account types: %w", err)
		}

		accounts := doc.Accounts(true)
		accountRows := make([]*model.AccountModel, 0, len(accounts))
		for i, a := range accounts {
			accountRows = append(accountRows, model.AccountFromEntity(a, i))
		}
		if err := createAll(tx, accountRows); err != nil {
			return fmt.Errorf("save accounts: %w", err)
		}

		categories := doc.Categories(true)
		categoryRows := make([]*model.BudgetCategoryModel, 0, len(categories))
		var amountRows []*model.BudgetAmountModel
		for i, c := range categories {
			categoryRows = append(categoryRows, model.BudgetCategoryFromEntity(c, i))
			amountRows = append(amountRows, model.BudgetAmountsFromEntity(c)...)
		}
		if err := createAll(tx, categoryRows); err != nil {
			return fmt.Errorf("save categories: %w", err)
		}
		if err := createAll(tx, amountRows); err != nil {
			return fmt.Errorf("save budget amounts: %w", err)
		}

		transactions := doc.Transactions()
		transactionRows := make([]*model.TransactionModel, 0, len(transactions))
		var splitRows []*model.TransactionSplitModel
		for _, t := range transactions {
			transactionRows = append(transactionRows, model.TransactionFromEntity(t))
			splitRows = append(splitRows, model.SplitsFromEntity(t)...)
		}
		if err := createAll(tx, transactionRows); err != nil {
			return fmt.Errorf("save transactions: %w", err)
		}
		if err := createAll(tx, splitRows); err != nil {
			return fmt.Errorf("save splits: %w", err)
		}

		scheduled := doc.ScheduledTransactions()
		scheduledRows := make([]*model.ScheduledTransactionModel, 0, len(scheduled))
		for _, sc := range scheduled {
			scheduledRows = append(scheduledRows, model.ScheduledFromEntity(sc))
		}
		if err := createAll(tx, scheduledRows); err != nil {
			return fmt.Errorf("save scheduled transactions: %w", err)
		}

		return saveViews(tx, doc.BudgetViews())
	})
}

func saveViews(tx *gorm.DB, views map[string]*document.BudgetView) error {
	names := make([]string, 0, len(views))
	for name := range views {
		names = append(names, name)
	}
	sort.Strings(names)

	var viewRows []*model.BudgetViewModel
	var dateRows []*model.BudgetViewDateModel
	for _, name := range names {
		v := views[name]
		viewRows = append(viewRows, &model.BudgetViewModel{
			Name:       name,
			PeriodType: string(v.PeriodType()),
			Date:       v.Date(),
		})
		lastDates := v.LastDates()
		periodTypes := make([]string, 0, len(lastDates))
		for pt := range lastDates {
			periodTypes = append(periodTypes, string(pt))
		}
		sort.Strings(periodTypes)
		for _, pt := range periodTypes {
			dateRows = append(dateRows, &model.BudgetViewDateModel{
				ViewName:   name,
				PeriodType: pt,
				Date:       lastDates[entity.PeriodType(pt)],
			})
		}
	}
	if err := createAll(tx, viewRows); err != nil {
		return fmt.Errorf("save budget views: %w", err)
	}
	if err := createAll(tx, dateRows); err != nil {
		return fmt.Errorf("save budget view dates: %w", err)
	}
	return nil
}

// createAll inserts a slice, tolerating the empty case gorm rejects.
func createAll[T any](tx *gorm.DB, rows []T) error {
	if len(rows) == 0 {
		return nil
	}
	return tx.Create(rows).Error
}
