package inventory_test

import (
	"context"
	"errors"
	"time"

	"github.com/Dinuli-Disara/Smart-Distribution-Management-System-sub000/internal/domain"
	"github.com/Dinuli-Disara/Smart-Distribution-Management-System-sub000/internal/domain/entity"
	domaininventory "github.com/Dinuli-Disara/Smart-Distribution-Management-System-sub000/internal/domain/inventory"
	"github.com/Dinuli-Disara/Smart-Distribution-Management-System-sub000/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobles en memoria
//
// memState contiene el estado mutable compartido por los repos falsos. El
// fakeTxRunner emula la semántica transaccional real: ejecuta el callback
// sobre una COPIA profunda del estado y solo la promueve si el callback
// termina sin error. Así los tests de rollback verifican la misma garantía
// que da PostgreSQL (todo o nada) sin necesitar una base de datos.
// ──────────────────────────────────────────────────────────────────────────────

type memState struct {
	batches   map[int64]*entity.Batch
	transfers map[int64]*entity.Transfer
	items     []*entity.TransferItem
	movements []*entity.MovementRecord

	nextBatchID    int64
	nextTransferID int64
	nextItemID     int64
	nextMovementID int64
}

func newMemState() *memState {
	return &memState{
		batches:   make(map[int64]*entity.Batch),
		transfers: make(map[int64]*entity.Transfer),
	}
}

func (s *memState) clone() *memState {
	c := &memState{
		batches:        make(map[int64]*entity.Batch, len(s.batches)),
		transfers:      make(map[int64]*entity.Transfer, len(s.transfers)),
		items:          make([]*entity.TransferItem, len(s.items)),
		movements:      make([]*entity.MovementRecord, len(s.movements)),
		nextBatchID:    s.nextBatchID,
		nextTransferID: s.nextTransferID,
		nextItemID:     s.nextItemID,
		nextMovementID: s.nextMovementID,
	}
	for id, b := range s.batches {
		cp := *b
		c.batches[id] = &cp
	}
	for id, tr := range s.transfers {
		cp := *tr
		cp.Items = append([]*entity.TransferItem(nil), tr.Items...)
		c.transfers[id] = &cp
	}
	for i, it := range s.items {
		cp := *it
		c.items[i] = &cp
	}
	for i, m := range s.movements {
		cp := *m
		c.movements[i] = &cp
	}
	return c
}

// seedBatch inserta un lote directamente en el estado (fixture).
func (s *memState) seedBatch(b *entity.Batch) *entity.Batch {
	s.nextBatchID++
	b.ID = s.nextBatchID
	s.batches[b.ID] = b
	return b
}

// ── TxRunner falso ────────────────────────────────────────────────────────────

type fakeTxRunner struct {
	state *memState
	// movementFailAfter > 0 hace fallar el Create de movimientos número N
	// dentro de la transacción (para provocar rollback a mitad de camino).
	movementFailAfter int
}

func (r *fakeTxRunner) Run(_ context.Context, fn func(
	batchRepo repository.BatchRepository,
	transferRepo repository.TransferRepository,
	movementRepo repository.MovementRepository,
) error) error {
	work := r.state.clone()
	movRepo := &fakeMovementRepo{state: work, failAfter: r.movementFailAfter}
	err := fn(&fakeBatchRepo{state: work}, &fakeTransferRepo{state: work}, movRepo)
	if err != nil {
		return err
	}
	*r.state = *work
	return nil
}

// ── BatchRepository falso ─────────────────────────────────────────────────────

type fakeBatchRepo struct {
	state *memState
}

var _ repository.BatchRepository = (*fakeBatchRepo)(nil)

func (r *fakeBatchRepo) Create(batch *entity.Batch) error {
	r.state.nextBatchID++
	batch.ID = r.state.nextBatchID
	cp := *batch
	r.state.batches[batch.ID] = &cp
	return nil
}

func (r *fakeBatchRepo) GetByID(id int64) (*entity.Batch, error) {
	b, ok := r.state.batches[id]
	if !ok {
		return nil, nil
	}
	cp := *b
	return &cp, nil
}

func (r *fakeBatchRepo) GetForUpdate(id int64) (*entity.Batch, error) {
	return r.GetByID(id)
}

func (r *fakeBatchRepo) ListActiveForUpdate(productID, locationID int64) ([]*entity.Batch, error) {
	return r.ListActive(productID, locationID)
}

func (r *fakeBatchRepo) ListActive(productID, locationID int64) ([]*entity.Batch, error) {
	var out []*entity.Batch
	for _, b := range r.state.batches {
		if b.ProductID == productID && b.LocationID == locationID && b.Status == entity.BatchStatusActive {
			cp := *b
			out = append(out, &cp)
		}
	}
	domaininventory.SortFIFO(out)
	return out, nil
}

func (r *fakeBatchRepo) UpdateQuantity(id int64, quantity int64, updatedBy int64) error {
	b, ok := r.state.batches[id]
	if !ok {
		return domain.ErrNotFound
	}
	if quantity < 0 {
		// Emula el CHECK quantity >= 0 de la tabla.
		return errors.New("violación de restricción: cantidad negativa")
	}
	b.Quantity = quantity
	b.UpdatedBy = updatedBy
	return nil
}

func (r *fakeBatchRepo) AvailableQuantity(productID, locationID int64) (int64, error) {
	var total int64
	for _, b := range r.state.batches {
		if b.ProductID == productID && b.LocationID == locationID && b.Status == entity.BatchStatusActive {
			total += b.Quantity
		}
	}
	return total, nil
}

func (r *fakeBatchRepo) NearestExpiry(productID, locationID int64) (*time.Time, error) {
	var nearest *time.Time
	for _, b := range r.state.batches {
		if b.ProductID != productID || b.LocationID != locationID ||
			b.Status != entity.BatchStatusActive || b.Quantity == 0 {
			continue
		}
		if nearest == nil || b.ExpiryDate.Before(*nearest) {
			e := b.ExpiryDate
			nearest = &e
		}
	}
	return nearest, nil
}

func (r *fakeBatchRepo) Lineage(id int64) ([]*entity.Batch, error) {
	var chain []*entity.Batch
	cur, ok := r.state.batches[id]
	for ok {
		cp := *cur
		chain = append(chain, &cp)
		if cur.ParentBatchID == nil {
			break
		}
		cur, ok = r.state.batches[*cur.ParentBatchID]
	}
	return chain, nil
}

// ── TransferRepository falso ──────────────────────────────────────────────────

type fakeTransferRepo struct {
	state *memState
}

var _ repository.TransferRepository = (*fakeTransferRepo)(nil)

func (r *fakeTransferRepo) Create(transfer *entity.Transfer) error {
	for _, tr := range r.state.transfers {
		if tr.TransferNumber == transfer.TransferNumber {
			return domain.ErrDuplicate
		}
	}
	r.state.nextTransferID++
	transfer.ID = r.state.nextTransferID
	cp := *transfer
	r.state.transfers[transfer.ID] = &cp
	return nil
}

func (r *fakeTransferRepo) CreateItem(item *entity.TransferItem) error {
	r.state.nextItemID++
	item.ID = r.state.nextItemID
	cp := *item
	r.state.items = append(r.state.items, &cp)
	return nil
}

func (r *fakeTransferRepo) UpdateStatus(id int64, status string) error {
	tr, ok := r.state.transfers[id]
	if !ok {
		return domain.ErrNotFound
	}
	tr.Status = status
	return nil
}

func (r *fakeTransferRepo) GetByID(id int64) (*entity.Transfer, error) {
	tr, ok := r.state.transfers[id]
	if !ok {
		return nil, nil
	}
	cp := *tr
	cp.Items = nil
	for _, it := range r.state.items {
		if it.TransferID == id {
			icp := *it
			cp.Items = append(cp.Items, &icp)
		}
	}
	return &cp, nil
}

func (r *fakeTransferRepo) List(limit, offset int) ([]*entity.Transfer, error) {
	var out []*entity.Transfer
	for _, tr := range r.state.transfers {
		cp := *tr
		out = append(out, &cp)
	}
	if offset > len(out) {
		offset = len(out)
	}
	out = out[offset:]
	if limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

// ── MovementRepository falso ──────────────────────────────────────────────────

type fakeMovementRepo struct {
	state     *memState
	failAfter int // falla el Create número N (1-based); 0 = nunca
	creates   int
}

var _ repository.MovementRepository = (*fakeMovementRepo)(nil)

func (r *fakeMovementRepo) Create(record *entity.MovementRecord) error {
	r.creates++
	if r.failAfter > 0 && r.creates >= r.failAfter {
		return errors.New("fallo simulado de escritura")
	}
	r.state.nextMovementID++
	record.ID = r.state.nextMovementID
	cp := *record
	r.state.movements = append(r.state.movements, &cp)
	return nil
}

func (r *fakeMovementRepo) ListByProduct(productID int64, from, to *time.Time, limit, offset int) ([]*entity.MovementRecord, error) {
	return r.list(func(m *entity.MovementRecord) bool { return m.ProductID == productID }, from, to, limit, offset)
}

func (r *fakeMovementRepo) ListByLocation(locationID int64, from, to *time.Time, limit, offset int) ([]*entity.MovementRecord, error) {
	return r.list(func(m *entity.MovementRecord) bool {
		return (m.FromLocationID != nil && *m.FromLocationID == locationID) ||
			(m.ToLocationID != nil && *m.ToLocationID == locationID)
	}, from, to, limit, offset)
}

func (r *fakeMovementRepo) list(match func(*entity.MovementRecord) bool, from, to *time.Time, limit, offset int) ([]*entity.MovementRecord, error) {
	var out []*entity.MovementRecord
	for _, m := range r.state.movements {
		if !match(m) {
			continue
		}
		if from != nil && m.CreatedAt.Before(*from) {
			continue
		}
		if to != nil && m.CreatedAt.After(*to) {
			continue
		}
		cp := *m
		out = append(out, &cp)
	}
	if offset > len(out) {
		offset = len(out)
	}
	out = out[offset:]
	if limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

// ── Repos de catálogo y ubicaciones (fuera de transacción) ────────────────────

type fakeProductRepo struct {
	products map[int64]*entity.Product
}

var _ repository.ProductRepository = (*fakeProductRepo)(nil)

func newFakeProductRepo(products ...*entity.Product) *fakeProductRepo {
	r := &fakeProductRepo{products: make(map[int64]*entity.Product)}
	for _, p := range products {
		r.products[p.ID] = p
	}
	return r
}

func (r *fakeProductRepo) Create(product *entity.Product) error {
	product.ID = int64(len(r.products) + 1)
	r.products[product.ID] = product
	return nil
}

func (r *fakeProductRepo) GetByID(id int64) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	return p, nil
}

func (r *fakeProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.products {
		out = append(out, p)
	}
	return out, nil
}

type fakeLocationRepo struct {
	locations map[int64]*entity.Location
}

var _ repository.LocationRepository = (*fakeLocationRepo)(nil)

func newFakeLocationRepo(locations ...*entity.Location) *fakeLocationRepo {
	r := &fakeLocationRepo{locations: make(map[int64]*entity.Location)}
	for _, l := range locations {
		r.locations[l.ID] = l
	}
	return r
}

func (r *fakeLocationRepo) Create(location *entity.Location) error {
	location.ID = int64(len(r.locations) + 1)
	r.locations[location.ID] = location
	return nil
}

func (r *fakeLocationRepo) GetByID(id int64) (*entity.Location, error) {
	l, ok := r.locations[id]
	if !ok {
		return nil, nil
	}
	return l, nil
}

func (r *fakeLocationRepo) GetStore() (*entity.Location, error) {
	for _, l := range r.locations {
		if l.IsStore() {
			return l, nil
		}
	}
	return nil, nil
}

func (r *fakeLocationRepo) List() ([]*entity.Location, error) {
	var out []*entity.Location
	for _, l := range r.locations {
		out = append(out, l)
	}
	return out, nil
}
