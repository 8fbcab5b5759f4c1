// Package memory implementa los puertos de persistencia en memoria de proceso.
// Una transacción trabaja sobre una copia del estado y la publica en el Commit; mientras
// dura, el resto de operaciones espera, así que las transacciones se serializan.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/jhoicas/coco-api/internal/application/onboarding"
	"github.com/jhoicas/coco-api/internal/domain/entity"
)

var _ onboarding.TxRunner = (*DB)(nil)

type state struct {
	requests   map[string]entity.Request
	users      map[string]entity.User
	companies  map[string]entity.Company
	employees  map[string]entity.Employee
	coworkings map[string]entity.Coworking
	bookings   map[string]entity.Booking
}

func newState() *state {
	return &state{
		requests:   map[string]entity.Request{},
		users:      map[string]entity.User{},
		companies:  map[string]entity.Company{},
		employees:  map[string]entity.Employee{},
		coworkings: map[string]entity.Coworking{},
		bookings:   map[string]entity.Booking{},
	}
}

func (s *state) clone() *state {
	c := newState()
	for k, v := range s.requests {
		c.requests[k] = v
	}
	for k, v := range s.users {
		c.users[k] = v
	}
	for k, v := range s.companies {
		c.companies[k] = v
	}
	for k, v := range s.employees {
		c.employees[k] = v
	}
	for k, v := range s.coworkings {
		c.coworkings[k] = v
	}
	for k, v := range s.bookings {
		c.bookings[k] = v
	}
	return c
}

// DB almacén en memoria. Seguro para uso concurrente.
type DB struct {
	mu sync.Mutex
	st *state
}

// NewDB crea un almacén vacío.
func NewDB() *DB {
	return &DB{st: newState()}
}

// scope ejecuta operaciones sobre el estado confirmado (con lock propio) o sobre la copia de
// una transacción abierta (el lock ya lo tiene Run).
type scope struct {
	db *DB
	tx *state
}

func (s scope) do(ctx context.Context, fn func(st *state) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s.tx != nil {
		return fn(s.tx)
	}
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	return fn(s.db.st)
}

func (db *DB) stores(sc scope) onboarding.Stores {
	return onboarding.Stores{
		Requests:   &RequestRepo{sc: sc},
		Users:      &UserRepo{sc: sc},
		Companies:  &CompanyRepo{sc: sc},
		Employees:  &EmployeeRepo{sc: sc},
		Coworkings: &CoworkingRepo{sc: sc},
	}
}

// Stores repositorios fuera de transacción.
func (db *DB) Stores() onboarding.Stores {
	return db.stores(scope{db: db})
}

// Bookings repositorio de reservas.
func (db *DB) Bookings() *BookingRepo {
	return &BookingRepo{sc: scope{db: db}}
}

// Run ejecuta fn sobre una copia del estado; si fn devuelve nil la copia pasa a ser el estado
// confirmado, si no se descarta. Un pánico en fn también descarta la copia.
func (db *DB) Run(ctx context.Context, fn func(tx onboarding.Stores) error) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	db.mu.Lock()
	defer db.mu.Unlock()

	work := db.st.clone()
	if err := fn(db.stores(scope{db: db, tx: work})); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	db.st = work
	return nil
}
