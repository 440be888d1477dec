package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kirankmr450/solairis/internal/domain"
	"github.com/kirankmr450/solairis/internal/domain/entity"
	"github.com/kirankmr450/solairis/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo implementación del puerto CustomerRepository sobre PostgreSQL.
// El roster de usuarios, la dirección y la lista de sites viven en columnas
// JSONB para leer el customer completo en una sola fila.
type CustomerRepo struct {
	pool *pgxpool.Pool
}

// NewCustomerRepository construye el adaptador de persistencia para customers.
func NewCustomerRepository(pool *pgxpool.Pool) *CustomerRepo {
	return &CustomerRepo{pool: pool}
}

const customerColumns = `id, name, primary_email, emails, phone_numbers, website, address, active, users, sites, created_at, updated_at`

func scanCustomer(row pgx.Row) (*entity.Customer, error) {
	var c entity.Customer
	err := row.Scan(
		&c.ID, &c.Name, &c.PrimaryEmail, &c.Emails, &c.PhoneNumbers, &c.Website,
		&c.Address, &c.Active, &c.Users, &c.Sites, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Create persiste un nuevo customer. El índice único de primary_email
// devuelve ErrEmailAlreadyExists ante duplicados.
func (r *CustomerRepo) Create(customer *entity.Customer) error {
	query := `
		INSERT INTO customers (id, name, primary_email, emails, phone_numbers, website, address, active, users, sites, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	users := customer.Users
	if users == nil {
		users = []entity.RosterEntry{}
	}
	sites := customer.Sites
	if sites == nil {
		sites = []string{}
	}
	_, err := r.pool.Exec(context.Background(), query,
		customer.ID, customer.Name, customer.PrimaryEmail, customer.Emails,
		customer.PhoneNumbers, customer.Website, customer.Address, customer.Active,
		users, sites, customer.CreatedAt, customer.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

// GetByID obtiene un customer por ID.
func (r *CustomerRepo) GetByID(id string) (*entity.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE id = $1`
	c, err := scanCustomer(r.pool.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer by id: %w", err)
	}
	return c, nil
}

// SetActive marca el flag active del customer.
func (r *CustomerRepo) SetActive(id string, active bool) error {
	tag, err := r.pool.Exec(context.Background(),
		`UPDATE customers SET active = $2, updated_at = now() WHERE id = $1`, id, active)
	if err != nil {
		return fmt.Errorf("set customer active: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrMissingItem
	}
	return nil
}

// AddRosterEntry añade la entrada al roster con un append atómico sobre el
// JSONB, sin read-modify-write en la aplicación.
func (r *CustomerRepo) AddRosterEntry(customerID string, entry entity.RosterEntry) error {
	tag, err := r.pool.Exec(context.Background(),
		`UPDATE customers SET users = users || $2::jsonb, updated_at = now() WHERE id = $1`,
		customerID, []entity.RosterEntry{entry})
	if err != nil {
		return fmt.Errorf("add roster entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrMissingItem
	}
	return nil
}

// AddSite registra el id de un site en la lista del customer.
func (r *CustomerRepo) AddSite(customerID, siteID string) error {
	tag, err := r.pool.Exec(context.Background(),
		`UPDATE customers SET sites = sites || $2::jsonb, updated_at = now() WHERE id = $1`,
		customerID, []string{siteID})
	if err != nil {
		return fmt.Errorf("add site to customer: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrMissingItem
	}
	return nil
}
