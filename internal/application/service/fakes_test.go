package service

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tillpoint/tillpoint-api/internal/domain/entity"
	"github.com/tillpoint/tillpoint-api/internal/domain/enum"
	"github.com/tillpoint/tillpoint-api/internal/domain/repository"
)

// fakeItem is one line item of a recorded fake sale
type fakeItem struct {
	description string
	quantity    int64
	lineTotal   decimal.Decimal
}

// fakeSale is one sale in the in-memory analytics store
type fakeSale struct {
	id            uuid.UUID
	receiptNumber string
	timestamp     time.Time
	branchID      uuid.UUID
	customerName  *string
	totalAmount   decimal.Decimal
	taxAmount     decimal.Decimal
	status        enum.SaleStatus
	items         []fakeItem
}

// fakeAnalyticsRepo answers aggregation queries from an in-memory sale list
type fakeAnalyticsRepo struct {
	sales []fakeSale
}

func (f *fakeAnalyticsRepo) add(sale fakeSale) {
	if sale.id == uuid.Nil {
		sale.id = uuid.New()
	}
	if sale.status == "" {
		sale.status = enum.SaleStatusCompleted
	}
	f.sales = append(f.sales, sale)
}

func (f *fakeAnalyticsRepo) inRange(start, end time.Time, branchID *uuid.UUID) []fakeSale {
	var out []fakeSale
	for _, sale := range f.sales {
		if sale.status != enum.SaleStatusCompleted {
			continue
		}
		if sale.timestamp.Before(start) || !sale.timestamp.Before(end) {
			continue
		}
		if branchID != nil && sale.branchID != *branchID {
			continue
		}
		out = append(out, sale)
	}
	return out
}

func (f *fakeAnalyticsRepo) CompletedSaleTotals(_ context.Context, start, end time.Time, branchID *uuid.UUID) ([]repository.SaleTotalsRow, error) {
	var rows []repository.SaleTotalsRow
	for _, sale := range f.inRange(start, end, branchID) {
		rows = append(rows, repository.SaleTotalsRow{
			TotalAmount: sale.totalAmount,
			TaxAmount:   sale.taxAmount,
		})
	}
	return rows, nil
}

func (f *fakeAnalyticsRepo) TopItemsByRevenue(_ context.Context, start, end time.Time, branchID *uuid.UUID, limit int) ([]repository.TopItemRow, error) {
	type group struct {
		quantity int64
		revenue  decimal.Decimal
	}
	groups := map[string]*group{}
	for _, sale := range f.inRange(start, end, branchID) {
		for _, item := range sale.items {
			g, ok := groups[item.description]
			if !ok {
				g = &group{revenue: decimal.Zero}
				groups[item.description] = g
			}
			g.quantity += item.quantity
			g.revenue = g.revenue.Add(item.lineTotal)
		}
	}

	var rows []repository.TopItemRow
	for description, g := range groups {
		rows = append(rows, repository.TopItemRow{
			Description:  description,
			QuantitySold: g.quantity,
			TotalRevenue: g.revenue,
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].TotalRevenue.GreaterThan(rows[j].TotalRevenue)
	})
	if len(rows) > limit {
		rows = rows[:limit]
	}
	return rows, nil
}

func (f *fakeAnalyticsRepo) RecentCompletedSales(_ context.Context, branchID *uuid.UUID, limit int) ([]repository.RecentSaleRow, error) {
	var completed []fakeSale
	for _, sale := range f.sales {
		if sale.status != enum.SaleStatusCompleted {
			continue
		}
		if branchID != nil && sale.branchID != *branchID {
			continue
		}
		completed = append(completed, sale)
	}
	sort.Slice(completed, func(i, j int) bool {
		return completed[i].timestamp.After(completed[j].timestamp)
	})
	if len(completed) > limit {
		completed = completed[:limit]
	}

	var rows []repository.RecentSaleRow
	for _, sale := range completed {
		var itemCount int64
		for _, item := range sale.items {
			itemCount += item.quantity
		}
		rows = append(rows, repository.RecentSaleRow{
			ID:            sale.id,
			ReceiptNumber: sale.receiptNumber,
			SaleTimestamp: sale.timestamp,
			CustomerName:  sale.customerName,
			ItemCount:     itemCount,
			TotalAmount:   sale.totalAmount,
			Status:        sale.status,
		})
	}
	return rows, nil
}

// fakeBranchRepo stores branches in insertion order
type fakeBranchRepo struct {
	branches []entity.Branch
}

func (f *fakeBranchRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Branch, error) {
	for i := range f.branches {
		if f.branches[i].ID == id {
			b := f.branches[i]
			return &b, nil
		}
	}
	return nil, nil
}

func (f *fakeBranchRepo) FirstActive(_ context.Context) (*entity.Branch, error) {
	for i := range f.branches {
		if f.branches[i].IsActive {
			b := f.branches[i]
			return &b, nil
		}
	}
	return nil, nil
}

func (f *fakeBranchRepo) List(_ context.Context) ([]entity.Branch, error) {
	return append([]entity.Branch(nil), f.branches...), nil
}

func (f *fakeBranchRepo) Create(_ context.Context, branch *entity.Branch) error {
	if branch.ID == uuid.Nil {
		branch.ID = uuid.New()
	}
	branch.CreatedAt = time.Now().UTC()
	f.branches = append(f.branches, *branch)
	return nil
}

func (f *fakeBranchRepo) Update(_ context.Context, branch *entity.Branch) error {
	for i := range f.branches {
		if f.branches[i].ID == branch.ID {
			f.branches[i] = *branch
			return nil
		}
	}
	return nil
}

// fakeSettingsRepo stores settings in insertion order
type fakeSettingsRepo struct {
	settings []entity.Setting
}

func (f *fakeSettingsRepo) GetByOwnerUserID(_ context.Context, ownerUserID uuid.UUID) (*entity.Setting, error) {
	for i := range f.settings {
		if f.settings[i].OwnerUserID == ownerUserID {
			s := f.settings[i]
			return &s, nil
		}
	}
	return nil, nil
}

func (f *fakeSettingsRepo) First(_ context.Context) (*entity.Setting, error) {
	if len(f.settings) == 0 {
		return nil, nil
	}
	s := f.settings[0]
	return &s, nil
}

func (f *fakeSettingsRepo) Create(_ context.Context, setting *entity.Setting) error {
	if setting.ID == uuid.Nil {
		setting.ID = uuid.New()
	}
	f.settings = append(f.settings, *setting)
	return nil
}

func (f *fakeSettingsRepo) Update(_ context.Context, setting *entity.Setting) error {
	for i := range f.settings {
		if f.settings[i].ID == setting.ID {
			f.settings[i] = *setting
			return nil
		}
	}
	return nil
}

// fakeUserRepo stores users by email
type fakeUserRepo struct {
	users []entity.User
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for i := range f.users {
		if f.users[i].Email == email {
			u := f.users[i]
			return &u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	for i := range f.users {
		if f.users[i].ID == id {
			u := f.users[i]
			return &u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	f.users = append(f.users, *user)
	return nil
}

// fakeSaleRepo records created sale graphs and can simulate receipt number
// collisions for the first N create attempts.
type fakeSaleRepo struct {
	created        []entity.Sale
	createdItems   [][]entity.SaleItem
	receipts       []entity.Receipt
	duplicateFirst int
	attempts       int
}

func (f *fakeSaleRepo) CreateGraph(_ context.Context, sale *entity.Sale, items []entity.SaleItem, receipt *entity.Receipt) error {
	f.attempts++
	if f.attempts <= f.duplicateFirst {
		return repository.ErrDuplicateReceiptNumber
	}
	if sale.ID == uuid.Nil {
		sale.ID = uuid.New()
	}
	if sale.SaleTimestamp.IsZero() {
		sale.SaleTimestamp = time.Now().UTC()
	}
	for i := range items {
		if items[i].ID == uuid.Nil {
			items[i].ID = uuid.New()
		}
		items[i].SaleID = sale.ID
	}
	receipt.SaleID = sale.ID
	f.created = append(f.created, *sale)
	f.createdItems = append(f.createdItems, items)
	f.receipts = append(f.receipts, *receipt)
	return nil
}

func (f *fakeSaleRepo) GetWithItems(_ context.Context, id uuid.UUID) (*entity.Sale, error) {
	for i := range f.created {
		if f.created[i].ID == id {
			sale := f.created[i]
			sale.Items = f.createdItems[i]
			return &sale, nil
		}
	}
	return nil, nil
}

func (f *fakeSaleRepo) GetReceiptContext(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	return f.GetWithItems(ctx, id)
}

func (f *fakeSaleRepo) List(_ context.Context, params *repository.SaleFilterParams) ([]entity.Sale, int64, error) {
	var matched []entity.Sale
	for _, sale := range f.created {
		if params.Status != nil && sale.Status != *params.Status {
			continue
		}
		if params.From != nil && sale.SaleTimestamp.Before(*params.From) {
			continue
		}
		if params.To != nil && sale.SaleTimestamp.After(*params.To) {
			continue
		}
		matched = append(matched, sale)
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].SaleTimestamp.After(matched[j].SaleTimestamp)
	})
	total := int64(len(matched))

	offset := (params.Page - 1) * params.PageSize
	if offset >= len(matched) {
		return nil, total, nil
	}
	end := offset + params.PageSize
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], total, nil
}
