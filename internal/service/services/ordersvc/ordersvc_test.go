package ordersvc

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/tesodev/commerce-backend/internal/dal/interfaces/icustomerrepo"
	"github.com/tesodev/commerce-backend/internal/dal/interfaces/iorderrepo"
	"github.com/tesodev/commerce-backend/internal/errs"
	"github.com/tesodev/commerce-backend/internal/service/models/audit"
	"github.com/tesodev/commerce-backend/internal/service/models/customer"
	"github.com/tesodev/commerce-backend/internal/service/models/order"
)

type fakeCustomerRepo struct {
	icustomerrepo.ICustomerRepository
	addresses map[uuid.UUID]customer.Address
}

func (f *fakeCustomerRepo) GetAddress(_ context.Context, id uuid.UUID) (*customer.Address, error) {
	address, ok := f.addresses[id]
	if !ok {
		return nil, errs.ErrCustomerNotFound
	}

	return &address, nil
}

type fakeOrderRepo struct {
	iorderrepo.IOrderRepository
	orders     map[uuid.UUID]order.Order
	insertErr  error
	lastUpdate *order.Order
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: map[uuid.UUID]order.Order{}}
}

func (f *fakeOrderRepo) Insert(_ context.Context, o order.Order) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.orders[o.ID] = o

	return nil
}

func (f *fakeOrderRepo) Update(_ context.Context, id uuid.UUID, o order.Order) (bool, error) {
	f.lastUpdate = &o
	if _, ok := f.orders[id]; !ok {
		return false, nil
	}
	o.ID = id
	f.orders[id] = o

	return true, nil
}

func (f *fakeOrderRepo) Delete(_ context.Context, id uuid.UUID) (bool, error) {
	if _, ok := f.orders[id]; !ok {
		return false, nil
	}
	delete(f.orders, id)

	return true, nil
}

func (f *fakeOrderRepo) Get(_ context.Context, id uuid.UUID) (*order.Order, error) {
	o, ok := f.orders[id]
	if !ok {
		return nil, errs.ErrOrderNotFound
	}

	return &o, nil
}

func (f *fakeOrderRepo) UpdateStatus(_ context.Context, id uuid.UUID, status string) (bool, error) {
	o, ok := f.orders[id]
	if !ok {
		return false, nil
	}
	o.Status = status
	f.orders[id] = o

	return true, nil
}

type fakePublisher struct {
	published  []audit.Event
	publishErr error
}

func (f *fakePublisher) PublishOrderCreated(_ context.Context, event audit.Event) error {
	if f.publishErr != nil {
		return f.publishErr
	}
	f.published = append(f.published, event)

	return nil
}

func newService(customers *fakeCustomerRepo, orders *fakeOrderRepo, publisher *fakePublisher) *OrderService {
	return MustNewOrderService(
		WithOrderRepository(orders),
		WithCustomerRepository(customers),
		WithAuditPublisher(publisher),
	)
}

func newOrderInput(customerID uuid.UUID) order.Order {
	return order.Order{
		CustomerID: customerID,
		Quantity:   3,
		Price:      12.5,
		Status:     "pending",
		Product: order.Product{
			ID:       uuid.New(),
			Name:     "keyboard",
			ImageURL: "https://img.example/kb.png",
		},
	}
}

func TestCreate_CopiesCustomerAddress(t *testing.T) {
	customerID := uuid.New()
	address := customer.Address{AddressLine: "Main St 1", City: "Istanbul", Country: "TR", CityCode: 34}
	customers := &fakeCustomerRepo{addresses: map[uuid.UUID]customer.Address{customerID: address}}
	orders := newFakeOrderRepo()
	publisher := &fakePublisher{}
	svc := newService(customers, orders, publisher)

	id, err := svc.Create(context.Background(), newOrderInput(customerID))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id == uuid.Nil {
		t.Fatal("expected a non-nil order id")
	}

	stored, ok := orders.orders[id]
	if !ok {
		t.Fatal("order was not persisted")
	}
	if stored.Address != address {
		t.Errorf("expected address %+v, got %+v", address, stored.Address)
	}
	if stored.CreatedAt.IsZero() || stored.UpdatedAt.IsZero() {
		t.Error("expected timestamps to be stamped")
	}
	if stored.CreatedAt != stored.UpdatedAt {
		t.Error("expected equal creation and update timestamps")
	}

	if len(publisher.published) != 1 {
		t.Fatalf("expected 1 published event, got %d", len(publisher.published))
	}
	if publisher.published[0].ID != id.String() {
		t.Errorf("expected event id %s, got %s", id, publisher.published[0].ID)
	}
}

func TestCreate_UnknownCustomer(t *testing.T) {
	customers := &fakeCustomerRepo{addresses: map[uuid.UUID]customer.Address{}}
	orders := newFakeOrderRepo()
	publisher := &fakePublisher{}
	svc := newService(customers, orders, publisher)

	_, err := svc.Create(context.Background(), newOrderInput(uuid.New()))
	if !errors.Is(err, errs.ErrCustomerNotFound) {
		t.Fatalf("expected ErrCustomerNotFound, got %v", err)
	}
	if len(orders.orders) != 0 {
		t.Error("no order should be persisted for an unknown customer")
	}
	if len(publisher.published) != 0 {
		t.Error("no event should be published for an unknown customer")
	}
}

func TestCreate_PublishFailurePropagatesAfterPersist(t *testing.T) {
	customerID := uuid.New()
	customers := &fakeCustomerRepo{addresses: map[uuid.UUID]customer.Address{customerID: {City: "Ankara", Country: "TR", CityCode: 6}}}
	orders := newFakeOrderRepo()
	publisher := &fakePublisher{publishErr: errors.New("broker unreachable")}
	svc := newService(customers, orders, publisher)

	_, err := svc.Create(context.Background(), newOrderInput(customerID))
	if err == nil {
		t.Fatal("expected publish failure to propagate")
	}
	// Best-effort contract: the insert is not rolled back.
	if len(orders.orders) != 1 {
		t.Errorf("expected the order to stay persisted, got %d orders", len(orders.orders))
	}
}

func TestCreate_RoundTrip(t *testing.T) {
	customerID := uuid.New()
	address := customer.Address{City: "Izmir", Country: "TR", CityCode: 35}
	customers := &fakeCustomerRepo{addresses: map[uuid.UUID]customer.Address{customerID: address}}
	orders := newFakeOrderRepo()
	svc := newService(customers, orders, &fakePublisher{})

	input := newOrderInput(customerID)
	id, err := svc.Create(context.Background(), input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := svc.Get(context.Background(), id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Product != input.Product {
		t.Errorf("expected product %+v, got %+v", input.Product, got.Product)
	}
	if got.Address != address {
		t.Errorf("expected address %+v, got %+v", address, got.Address)
	}
	if got.Quantity != input.Quantity || got.Price != input.Price || got.Status != input.Status {
		t.Errorf("round trip mismatch: %+v", got)
	}
}

func TestChangeStatus_Idempotent(t *testing.T) {
	customerID := uuid.New()
	customers := &fakeCustomerRepo{addresses: map[uuid.UUID]customer.Address{customerID: {City: "Bursa", Country: "TR", CityCode: 16}}}
	orders := newFakeOrderRepo()
	svc := newService(customers, orders, &fakePublisher{})

	id, err := svc.Create(context.Background(), newOrderInput(customerID))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i := 0; i < 2; i++ {
		matched, err := svc.ChangeStatus(context.Background(), id, "shipped")
		if err != nil {
			t.Fatalf("unexpected error on call %d: %v", i+1, err)
		}
		if !matched {
			t.Fatalf("expected call %d to match", i+1)
		}
	}

	got, err := svc.Get(context.Background(), id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Status != "shipped" {
		t.Errorf("expected status shipped, got %s", got.Status)
	}
}

func TestChangeStatus_UnknownOrder(t *testing.T) {
	svc := newService(&fakeCustomerRepo{}, newFakeOrderRepo(), &fakePublisher{})

	matched, err := svc.ChangeStatus(context.Background(), uuid.New(), "shipped")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if matched {
		t.Error("expected no match for an unknown order")
	}
}

func TestUpdate_RefreshesUpdateTimestamp(t *testing.T) {
	customerID := uuid.New()
	customers := &fakeCustomerRepo{addresses: map[uuid.UUID]customer.Address{customerID: {City: "Adana", Country: "TR", CityCode: 1}}}
	orders := newFakeOrderRepo()
	svc := newService(customers, orders, &fakePublisher{})

	id, err := svc.Create(context.Background(), newOrderInput(customerID))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	input := newOrderInput(customerID)
	input.Quantity = 7
	matched, err := svc.Update(context.Background(), id, input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !matched {
		t.Fatal("expected the update to match")
	}
	if orders.lastUpdate.UpdatedAt.IsZero() {
		t.Error("expected the update timestamp to be refreshed")
	}
}

func TestDelete(t *testing.T) {
	customerID := uuid.New()
	customers := &fakeCustomerRepo{addresses: map[uuid.UUID]customer.Address{customerID: {City: "Konya", Country: "TR", CityCode: 42}}}
	orders := newFakeOrderRepo()
	svc := newService(customers, orders, &fakePublisher{})

	deleted, err := svc.Delete(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if deleted {
		t.Error("expected no deletion for an unknown order")
	}

	id, err := svc.Create(context.Background(), newOrderInput(customerID))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	deleted, err = svc.Delete(context.Background(), id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !deleted {
		t.Fatal("expected the existing order to be deleted")
	}

	if _, err := svc.Get(context.Background(), id); !errors.Is(err, errs.ErrOrderNotFound) {
		t.Errorf("expected ErrOrderNotFound after delete, got %v", err)
	}
}
