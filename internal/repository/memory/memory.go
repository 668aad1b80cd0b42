// internal/repository/memory/memory.go

// Package memory is a map-backed implementation of the repository and
// unit-of-work contracts. It mirrors the store's degraded auto-commit
// behavior (writes apply immediately, Save only reports whether a unit
// was begun) and backs the workflow and handler tests.
package memory

import (
	"context"
	"sync"

	"fleet-rental-service/internal/domain/client"
	"fleet-rental-service/internal/domain/uow"
	"fleet-rental-service/internal/domain/vehicle"
	xerrors "fleet-rental-service/internal/pkg/errors"
)

// Store holds the collections. Safe for concurrent use; the unique-key
// checks in Create stand in for the mongo unique indexes.
type Store struct {
	mu       sync.RWMutex
	vehicles map[string]vehicle.Vehicle // by vehicle ID
	clients  map[string]client.Client   // by client id-number
}

func NewStore() *Store {
	return &Store{
		vehicles: make(map[string]vehicle.Vehicle),
		clients:  make(map[string]client.Client),
	}
}

// Factory returns a uow.Factory producing units over this store.
func (s *Store) Factory() uow.Factory {
	return func() uow.UnitOfWork {
		return &unitOfWork{store: s}
	}
}

type unitOfWork struct {
	store *Store
	began bool
}

func (u *unitOfWork) Begin(context.Context) error {
	u.began = true
	return nil
}

func (u *unitOfWork) Save(context.Context) (int64, error) {
	if !u.began {
		return 0, nil
	}
	u.began = false
	return 1, nil
}

func (u *unitOfWork) Close(context.Context) {
	u.began = false
}

func (u *unitOfWork) Vehicles() vehicle.Repository { return vehicleRepo{store: u.store} }
func (u *unitOfWork) Clients() client.Repository   { return clientRepo{store: u.store} }

type vehicleRepo struct {
	store *Store
}

func (r vehicleRepo) Create(_ context.Context, v *vehicle.Vehicle) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, existing := range r.store.vehicles {
		if existing.PlateNumber == v.PlateNumber {
			return xerrors.Conflictf("vehicle with plate %s already exists", v.PlateNumber)
		}
	}
	r.store.vehicles[v.ID] = *v
	return nil
}

func (r vehicleRepo) GetByPlate(_ context.Context, plateNumber string) (*vehicle.Vehicle, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	for _, v := range r.store.vehicles {
		if v.PlateNumber == plateNumber {
			found := v
			return &found, nil
		}
	}
	return nil, nil
}

func (r vehicleRepo) GetAllActive(_ context.Context) ([]vehicle.Vehicle, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	active := make([]vehicle.Vehicle, 0)
	for _, v := range r.store.vehicles {
		if v.IsActive {
			active = append(active, v)
		}
	}
	return active, nil
}

func (r vehicleRepo) UpdateRentalStatus(_ context.Context, v *vehicle.Vehicle) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.vehicles[v.ID]; !ok {
		return xerrors.NotFoundf("vehicle with ID %s does not exist", v.ID)
	}
	r.store.vehicles[v.ID] = *v
	return nil
}

func (r vehicleRepo) HasClientRented(_ context.Context, clientIDNumber string) (bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	for _, v := range r.store.vehicles {
		if v.IsActive && v.IsRented && v.Client != nil && v.Client.IDNumber == clientIDNumber {
			return true, nil
		}
	}
	return false, nil
}

type clientRepo struct {
	store *Store
}

func (r clientRepo) Create(_ context.Context, c *client.Client) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.clients[c.IDNumber]; ok {
		return xerrors.Conflictf("client with ID %s already exists", c.IDNumber)
	}
	r.store.clients[c.IDNumber] = *c
	return nil
}

func (r clientRepo) GetByIDNumber(_ context.Context, idNumber string) (*client.Client, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	if c, ok := r.store.clients[idNumber]; ok {
		found := c
		return &found, nil
	}
	return nil, nil
}
