package customersvc

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/tesodev/commerce-backend/internal/errs"
	"github.com/tesodev/commerce-backend/internal/service/models/customer"
)

type fakeCustomerRepo struct {
	customers map[uuid.UUID]customer.Customer
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{customers: map[uuid.UUID]customer.Customer{}}
}

func (f *fakeCustomerRepo) Insert(_ context.Context, c customer.Customer) error {
	f.customers[c.ID] = c

	return nil
}

func (f *fakeCustomerRepo) Update(_ context.Context, id uuid.UUID, c customer.Customer) (bool, error) {
	existing, ok := f.customers[id]
	if !ok {
		return false, nil
	}
	c.ID = existing.ID
	c.CreatedAt = existing.CreatedAt
	f.customers[id] = c

	return true, nil
}

func (f *fakeCustomerRepo) Delete(_ context.Context, id uuid.UUID) (bool, error) {
	if _, ok := f.customers[id]; !ok {
		return false, nil
	}
	delete(f.customers, id)

	return true, nil
}

func (f *fakeCustomerRepo) Get(_ context.Context, id uuid.UUID) (*customer.Customer, error) {
	c, ok := f.customers[id]
	if !ok {
		return nil, errs.ErrCustomerNotFound
	}

	return &c, nil
}

func (f *fakeCustomerRepo) List(_ context.Context) ([]customer.Customer, error) {
	result := []customer.Customer{}
	for _, c := range f.customers {
		result = append(result, c)
	}

	return result, nil
}

func (f *fakeCustomerRepo) Exists(_ context.Context, id uuid.UUID) (bool, error) {
	_, ok := f.customers[id]

	return ok, nil
}

func (f *fakeCustomerRepo) GetAddress(_ context.Context, id uuid.UUID) (*customer.Address, error) {
	c, ok := f.customers[id]
	if !ok {
		return nil, errs.ErrCustomerNotFound
	}

	return &c.Address, nil
}

func newInput() customer.Customer {
	return customer.Customer{
		Name:    "Ada",
		Email:   "ada@example.com",
		Address: customer.Address{City: "Istanbul", Country: "TR", CityCode: 34},
	}
}

func TestCreate_StampsIdentityAndTimestamps(t *testing.T) {
	repo := newFakeCustomerRepo()
	svc := MustNewCustomerService(WithCustomerRepository(repo))

	id, err := svc.Create(context.Background(), newInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id == uuid.Nil {
		t.Fatal("expected a non-nil customer id")
	}

	stored, ok := repo.customers[id]
	if !ok {
		t.Fatal("customer was not persisted")
	}
	if stored.CreatedAt.IsZero() || stored.UpdatedAt.IsZero() {
		t.Error("expected timestamps to be stamped")
	}
}

func TestUpdate_KeepsIDImmutable(t *testing.T) {
	repo := newFakeCustomerRepo()
	svc := MustNewCustomerService(WithCustomerRepository(repo))

	id, err := svc.Create(context.Background(), newInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	updated := newInput()
	updated.Name = "Ada L."
	matched, err := svc.Update(context.Background(), id, updated)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !matched {
		t.Fatal("expected the update to match")
	}

	got, err := svc.Get(context.Background(), id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != id {
		t.Errorf("expected id to stay %s, got %s", id, got.ID)
	}
	if got.Name != "Ada L." {
		t.Errorf("expected updated name, got %s", got.Name)
	}
}

func TestUpdate_UnknownCustomer(t *testing.T) {
	svc := MustNewCustomerService(WithCustomerRepository(newFakeCustomerRepo()))

	matched, err := svc.Update(context.Background(), uuid.New(), newInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if matched {
		t.Error("expected no match for an unknown customer")
	}
}

func TestExistsAndDelete(t *testing.T) {
	repo := newFakeCustomerRepo()
	svc := MustNewCustomerService(WithCustomerRepository(repo))

	id, err := svc.Create(context.Background(), newInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	exists, err := svc.Exists(context.Background(), id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !exists {
		t.Error("expected the customer to exist")
	}

	deleted, err := svc.Delete(context.Background(), id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !deleted {
		t.Fatal("expected the customer to be deleted")
	}

	exists, err = svc.Exists(context.Background(), id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if exists {
		t.Error("expected the customer to be gone")
	}

	if _, err := svc.Get(context.Background(), id); !errors.Is(err, errs.ErrCustomerNotFound) {
		t.Errorf("expected ErrCustomerNotFound, got %v", err)
	}
}
