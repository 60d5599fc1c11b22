package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/Zgoubnight/new-version-thefunguy-compta/internal/model"
	"github.com/Zgoubnight/new-version-thefunguy-compta/internal/repository"
)

// In-memory repository stubs. Mutate helpers run the callback against the
// stored value directly, mirroring the row-locked read-modify-write of the
// real implementations.

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

// ── products ─────────────────────────────────────────────────────────────────

type stubProductRepo struct {
	products map[string]*model.Product
}

func newStubProductRepo() *stubProductRepo {
	return &stubProductRepo{products: make(map[string]*model.Product)}
}

func (r *stubProductRepo) Create(_ context.Context, p *model.Product) error {
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *stubProductRepo) FindByID(_ context.Context, id string) (*model.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *stubProductRepo) List(_ context.Context) ([]model.Product, error) {
	ids := make([]string, 0, len(r.products))
	for id := range r.products {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	out := make([]model.Product, 0, len(ids))
	for _, id := range ids {
		out = append(out, *r.products[id])
	}
	return out, nil
}

func (r *stubProductRepo) Mutate(_ context.Context, id string, fn func(*model.Product) error) (*model.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	if err := fn(p); err != nil {
		return nil, err
	}
	cp := *p
	return &cp, nil
}

func (r *stubProductRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.products[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.products, id)
	return nil
}

var _ repository.ProductRepository = (*stubProductRepo)(nil)

// ── sales ────────────────────────────────────────────────────────────────────

type stubSaleRepo struct {
	sales map[string]*model.Sale
	order []string
}

func newStubSaleRepo() *stubSaleRepo {
	return &stubSaleRepo{sales: make(map[string]*model.Sale)}
}

func (r *stubSaleRepo) Create(_ context.Context, s *model.Sale) error {
	cp := *s
	r.sales[s.ID] = &cp
	r.order = append(r.order, s.ID)
	return nil
}

func (r *stubSaleRepo) FindByID(_ context.Context, id string) (*model.Sale, error) {
	s, ok := r.sales[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *s
	return &cp, nil
}

func (r *stubSaleRepo) List(_ context.Context) ([]model.Sale, error) {
	out := make([]model.Sale, 0, len(r.order))
	for _, id := range r.order {
		if s, ok := r.sales[id]; ok {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (r *stubSaleRepo) Mutate(_ context.Context, id string, fn func(*model.Sale) error) (*model.Sale, error) {
	s, ok := r.sales[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	if err := fn(s); err != nil {
		return nil, err
	}
	cp := *s
	return &cp, nil
}

func (r *stubSaleRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.sales[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.sales, id)
	return nil
}

var _ repository.SaleRepository = (*stubSaleRepo)(nil)

// ── customers ────────────────────────────────────────────────────────────────

type stubCustomerRepo struct {
	customers map[string]*model.Customer
	order     []string
}

func newStubCustomerRepo() *stubCustomerRepo {
	return &stubCustomerRepo{customers: make(map[string]*model.Customer)}
}

func (r *stubCustomerRepo) Create(_ context.Context, c *model.Customer) error {
	cp := *c
	r.customers[c.ID] = &cp
	r.order = append(r.order, c.ID)
	return nil
}

func (r *stubCustomerRepo) FindByID(_ context.Context, id string) (*model.Customer, error) {
	c, ok := r.customers[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *c
	return &cp, nil
}

func (r *stubCustomerRepo) FindByName(_ context.Context, name string) (*model.Customer, error) {
	for _, id := range r.order {
		c := r.customers[id]
		if strings.EqualFold(c.Name, name) {
			cp := *c
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubCustomerRepo) List(_ context.Context) ([]model.Customer, error) {
	out := make([]model.Customer, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, *r.customers[id])
	}
	return out, nil
}

var _ repository.CustomerRepository = (*stubCustomerRepo)(nil)

// ── goals ────────────────────────────────────────────────────────────────────

type stubGoalRepo struct {
	goals map[string]*model.Goal
}

func newStubGoalRepo() *stubGoalRepo {
	return &stubGoalRepo{goals: make(map[string]*model.Goal)}
}

func (r *stubGoalRepo) FindByID(_ context.Context, id string) (*model.Goal, error) {
	g, ok := r.goals[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *g
	return &cp, nil
}

func (r *stubGoalRepo) List(_ context.Context) ([]model.Goal, error) {
	ids := make([]string, 0, len(r.goals))
	for id := range r.goals {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	out := make([]model.Goal, 0, len(ids))
	for _, id := range ids {
		out = append(out, *r.goals[id])
	}
	return out, nil
}

func (r *stubGoalRepo) Save(_ context.Context, g *model.Goal) error {
	if existing, ok := r.goals[g.ID]; ok {
		existing.Month = g.Month
		existing.Year = g.Year
		existing.SalesTarget = g.SalesTarget
		existing.RevenueTarget = g.RevenueTarget
		return nil
	}
	cp := *g
	r.goals[g.ID] = &cp
	return nil
}

func (r *stubGoalRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.goals[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.goals, id)
	return nil
}

var _ repository.GoalRepository = (*stubGoalRepo)(nil)

// ── reports ──────────────────────────────────────────────────────────────────

type stubReportRepo struct {
	reports map[string]*model.Report
}

func newStubReportRepo() *stubReportRepo {
	return &stubReportRepo{reports: make(map[string]*model.Report)}
}

func (r *stubReportRepo) FindByID(_ context.Context, id string) (*model.Report, error) {
	rep, ok := r.reports[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *rep
	return &cp, nil
}

func (r *stubReportRepo) List(_ context.Context) ([]model.Report, error) {
	ids := make([]string, 0, len(r.reports))
	for id := range r.reports {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	out := make([]model.Report, 0, len(ids))
	for _, id := range ids {
		out = append(out, *r.reports[id])
	}
	return out, nil
}

func (r *stubReportRepo) Save(_ context.Context, rep *model.Report) error {
	if existing, ok := r.reports[rep.ID]; ok {
		created := existing.CreatedAt
		*existing = *rep
		existing.CreatedAt = created
		return nil
	}
	cp := *rep
	r.reports[rep.ID] = &cp
	return nil
}

var _ repository.ReportRepository = (*stubReportRepo)(nil)

// ── settings ─────────────────────────────────────────────────────────────────

type stubSettingsRepo struct {
	settings *model.Settings
}

func (r *stubSettingsRepo) Get(_ context.Context) (*model.Settings, error) {
	if r.settings == nil {
		return model.DefaultSettings(), nil
	}
	cp := *r.settings
	return &cp, nil
}

func (r *stubSettingsRepo) Mutate(_ context.Context, fn func(*model.Settings) error) (*model.Settings, error) {
	if r.settings == nil {
		r.settings = model.DefaultSettings()
	}
	if err := fn(r.settings); err != nil {
		return nil, err
	}
	r.settings.ID = model.SettingsID
	cp := *r.settings
	return &cp, nil
}

var _ repository.SettingsRepository = (*stubSettingsRepo)(nil)

// ── donations ────────────────────────────────────────────────────────────────

type stubDonationRepo struct {
	donations []model.Donation
}

func (r *stubDonationRepo) Create(_ context.Context, d *model.Donation) error {
	r.donations = append(r.donations, *d)
	return nil
}

func (r *stubDonationRepo) List(_ context.Context) ([]model.Donation, error) {
	return append([]model.Donation(nil), r.donations...), nil
}

var _ repository.DonationRepository = (*stubDonationRepo)(nil)

// ── audit log ────────────────────────────────────────────────────────────────

type stubAuditRepo struct {
	entries []model.AuditLog
}

func (r *stubAuditRepo) Create(_ context.Context, entry *model.AuditLog) error {
	r.entries = append(r.entries, *entry)
	return nil
}

func (r *stubAuditRepo) List(_ context.Context) ([]model.AuditLog, error) {
	return append([]model.AuditLog(nil), r.entries...), nil
}

var _ repository.AuditLogRepository = (*stubAuditRepo)(nil)
