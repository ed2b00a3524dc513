package usecase_test

import (
	"context"
	"sort"
	"strings"

	"github.com/ransara-lk/supermarket-api/internal/domain"
	"github.com/ransara-lk/supermarket-api/internal/domain/entity"
	"github.com/ransara-lk/supermarket-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria compartidos por los tests del paquete.
// ──────────────────────────────────────────────────────────────────────────────

type memProductRepo struct{ products map[string]*entity.Product }

func newMemProductRepo() *memProductRepo {
	return &memProductRepo{products: map[string]*entity.Product{}}
}

func (r *memProductRepo) Create(p *entity.Product) error {
	c := *p
	r.products[p.ID] = &c
	return nil
}

func (r *memProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	c := *p
	return &c, nil
}

func (r *memProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.SKU == sku {
			c := *p
			return &c, nil
		}
	}
	return nil, nil
}

func (r *memProductRepo) Update(p *entity.Product) error {
	if _, ok := r.products[p.ID]; !ok {
		return domain.ErrNotFound
	}
	c := *p
	r.products[p.ID] = &c
	return nil
}

func (r *memProductRepo) Delete(id string) error {
	delete(r.products, id)
	return nil
}

func (r *memProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	var list []*entity.Product
	for _, p := range r.products {
		c := *p
		list = append(list, &c)
	}
	return list, nil
}

type memCategoryRepo struct{ categories map[string]*entity.Category }

func newMemCategoryRepo() *memCategoryRepo {
	return &memCategoryRepo{categories: map[string]*entity.Category{}}
}

func (r *memCategoryRepo) Create(c *entity.Category) error {
	copied := *c
	r.categories[c.ID] = &copied
	return nil
}

func (r *memCategoryRepo) GetByID(id string) (*entity.Category, error) {
	c, ok := r.categories[id]
	if !ok {
		return nil, nil
	}
	copied := *c
	return &copied, nil
}

func (r *memCategoryRepo) List(limit, offset int) ([]*entity.Category, error) {
	var list []*entity.Category
	for _, c := range r.categories {
		copied := *c
		list = append(list, &copied)
	}
	return list, nil
}

type memBatchRepo struct{ batches map[string]*entity.StockBatch }

func newMemBatchRepo() *memBatchRepo {
	return &memBatchRepo{batches: map[string]*entity.StockBatch{}}
}

func (r *memBatchRepo) Create(b *entity.StockBatch) error {
	c := *b
	r.batches[b.ID] = &c
	return nil
}

func (r *memBatchRepo) GetByID(id string) (*entity.StockBatch, error) {
	b, ok := r.batches[id]
	if !ok {
		return nil, nil
	}
	c := *b
	return &c, nil
}

func (r *memBatchRepo) GetForUpdate(id string) (*entity.StockBatch, error) { return r.GetByID(id) }

func (r *memBatchRepo) UpdateQuantity(id string, quantity int64) error {
	b, ok := r.batches[id]
	if !ok {
		return domain.ErrNotFound
	}
	b.CurrentQuantity = quantity
	return nil
}

func (r *memBatchRepo) List(limit, offset int) ([]*entity.StockBatch, error) {
	var list []*entity.StockBatch
	for _, b := range r.batches {
		c := *b
		list = append(list, &c)
	}
	return list, nil
}

func (r *memBatchRepo) ExistsByProduct(productID string) (bool, error) {
	for _, b := range r.batches {
		if b.ProductID == productID {
			return true, nil
		}
	}
	return false, nil
}

type memTxRepo struct{ txs map[string]*entity.StockTransaction }

func newMemTxRepo() *memTxRepo {
	return &memTxRepo{txs: map[string]*entity.StockTransaction{}}
}

func (r *memTxRepo) Create(tx *entity.StockTransaction) error {
	c := *tx
	r.txs[tx.ID] = &c
	return nil
}

func (r *memTxRepo) GetByID(id string) (*entity.StockTransaction, error) {
	tx, ok := r.txs[id]
	if !ok {
		return nil, nil
	}
	c := *tx
	return &c, nil
}

func (r *memTxRepo) Update(tx *entity.StockTransaction) error {
	if _, ok := r.txs[tx.ID]; !ok {
		return domain.ErrNotFound
	}
	c := *tx
	r.txs[tx.ID] = &c
	return nil
}

func (r *memTxRepo) Delete(id string) error {
	delete(r.txs, id)
	return nil
}

func (r *memTxRepo) List(limit, offset int) ([]*entity.StockTransaction, error) {
	var list []*entity.StockTransaction
	for _, tx := range r.txs {
		c := *tx
		list = append(list, &c)
	}
	return list, nil
}

func (r *memTxRepo) ListByBatch(batchID string, limit, offset int) ([]*entity.StockTransaction, error) {
	var list []*entity.StockTransaction
	for _, tx := range r.txs {
		if tx.BatchID == batchID {
			c := *tx
			list = append(list, &c)
		}
	}
	return list, nil
}

// ledgerTxRunner pasa los repos tal cual; los tests de este paquete no
// ejercitan rollback (eso lo cubre el paquete ledger).
type ledgerTxRunner struct {
	txRepo      *memTxRepo
	batchRepo   *memBatchRepo
	productRepo *memProductRepo
}

func (r *ledgerTxRunner) Run(_ context.Context, fn func(
	txRepo repository.StockTransactionRepository,
	batchRepo repository.StockBatchRepository,
	productRepo repository.ProductRepository,
) error) error {
	return fn(r.txRepo, r.batchRepo, r.productRepo)
}

type memCartRepo struct {
	carts map[string]*entity.Cart
	items map[string]*entity.CartItem
}

func newMemCartRepo() *memCartRepo {
	return &memCartRepo{carts: map[string]*entity.Cart{}, items: map[string]*entity.CartItem{}}
}

func (r *memCartRepo) GetByUser(userID string) (*entity.Cart, error) {
	for _, cart := range r.carts {
		if cart.UserID == userID {
			c := *cart
			c.Items = nil
			for _, it := range r.items {
				if it.CartID == cart.ID {
					c.Items = append(c.Items, *it)
				}
			}
			sort.Slice(c.Items, func(i, j int) bool { return c.Items[i].ProductID < c.Items[j].ProductID })
			return &c, nil
		}
	}
	return nil, nil
}

func (r *memCartRepo) Create(cart *entity.Cart) error {
	c := *cart
	r.carts[cart.ID] = &c
	return nil
}

func (r *memCartRepo) GetItem(cartID, productID string) (*entity.CartItem, error) {
	for _, it := range r.items {
		if it.CartID == cartID && it.ProductID == productID {
			c := *it
			return &c, nil
		}
	}
	return nil, nil
}

func (r *memCartRepo) CreateItem(item *entity.CartItem) error {
	c := *item
	r.items[item.ID] = &c
	return nil
}

func (r *memCartRepo) UpdateItemQuantity(itemID string, quantity int64) error {
	it, ok := r.items[itemID]
	if !ok {
		return domain.ErrNotFound
	}
	it.Quantity = quantity
	return nil
}

func (r *memCartRepo) DeleteItem(itemID string) error {
	delete(r.items, itemID)
	return nil
}

func (r *memCartRepo) Delete(cartID string) error {
	delete(r.carts, cartID)
	for id, it := range r.items {
		if it.CartID == cartID {
			delete(r.items, id)
		}
	}
	return nil
}

type memFeedbackRepo struct{ feedbacks map[string]*entity.Feedback }

func newMemFeedbackRepo() *memFeedbackRepo {
	return &memFeedbackRepo{feedbacks: map[string]*entity.Feedback{}}
}

func (r *memFeedbackRepo) Create(f *entity.Feedback) error {
	c := *f
	r.feedbacks[f.ID] = &c
	return nil
}

func (r *memFeedbackRepo) GetByID(id string) (*entity.Feedback, error) {
	f, ok := r.feedbacks[id]
	if !ok {
		return nil, nil
	}
	c := *f
	return &c, nil
}

func (r *memFeedbackRepo) Update(f *entity.Feedback) error {
	if _, ok := r.feedbacks[f.ID]; !ok {
		return domain.ErrNotFound
	}
	c := *f
	r.feedbacks[f.ID] = &c
	return nil
}

func (r *memFeedbackRepo) Delete(id string) error {
	delete(r.feedbacks, id)
	return nil
}

func (r *memFeedbackRepo) List(limit, offset int) ([]*entity.Feedback, error) {
	var list []*entity.Feedback
	for _, f := range r.feedbacks {
		c := *f
		list = append(list, &c)
	}
	return list, nil
}

type memSupplierRepo struct{ suppliers map[string]*entity.Supplier }

func newMemSupplierRepo() *memSupplierRepo {
	return &memSupplierRepo{suppliers: map[string]*entity.Supplier{}}
}

func (r *memSupplierRepo) Create(s *entity.Supplier) error {
	c := *s
	r.suppliers[s.ID] = &c
	return nil
}

func (r *memSupplierRepo) GetByID(id string) (*entity.Supplier, error) {
	s, ok := r.suppliers[id]
	if !ok {
		return nil, nil
	}
	c := *s
	return &c, nil
}

func (r *memSupplierRepo) Update(s *entity.Supplier) error {
	if _, ok := r.suppliers[s.ID]; !ok {
		return domain.ErrNotFound
	}
	c := *s
	r.suppliers[s.ID] = &c
	return nil
}

func (r *memSupplierRepo) Delete(id string) error {
	delete(r.suppliers, id)
	return nil
}

func (r *memSupplierRepo) List(filter repository.SupplierFilter) ([]*entity.Supplier, error) {
	var list []*entity.Supplier
	for _, s := range r.suppliers {
		if filter.Status != "" && s.Status != filter.Status {
			continue
		}
		if filter.Search != "" && !strings.Contains(strings.ToLower(s.Name), strings.ToLower(filter.Search)) {
			continue
		}
		c := *s
		list = append(list, &c)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list, nil
}

// stubClassifier marca como ofensivo cualquier mensaje que contenga "odio".
type stubClassifier struct{}

func (stubClassifier) Classify(_ context.Context, text string) (bool, error) {
	return strings.Contains(strings.ToLower(text), "odio"), nil
}

// stubReports devuelve un PDF de mentira.
type stubReports struct{}

func (stubReports) SupplierDirectory([]*entity.Supplier) ([]byte, error) {
	return []byte("%PDF-stub"), nil
}
