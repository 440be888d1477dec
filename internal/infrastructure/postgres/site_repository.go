package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kirankmr450/solairis/internal/domain/entity"
	"github.com/kirankmr450/solairis/internal/domain/repository"
)

var _ repository.SiteRepository = (*SiteRepo)(nil)

// SiteRepo implementación del puerto SiteRepository sobre PostgreSQL.
// Roster, equipos y dirección en columnas JSONB; capacidad en NUMERIC
// (codec shopspring/decimal registrado en el pool).
type SiteRepo struct {
	pool *pgxpool.Pool
}

// NewSiteRepository construye el adaptador de persistencia para sites.
func NewSiteRepository(pool *pgxpool.Pool) *SiteRepo {
	return &SiteRepo{pool: pool}
}

const siteColumns = `id, name, customer_id, users, capacity_kw, panel_count, battery_count, inverters, meters, address, created_at, updated_at`

func scanSite(row pgx.Row) (*entity.Site, error) {
	var s entity.Site
	err := row.Scan(
		&s.ID, &s.Name, &s.CustomerID, &s.Users, &s.CapacityKW, &s.PanelCount,
		&s.BatteryCount, &s.Inverters, &s.Meters, &s.Address, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Create persiste un nuevo site.
func (r *SiteRepo) Create(site *entity.Site) error {
	query := `
		INSERT INTO sites (id, name, customer_id, users, capacity_kw, panel_count, battery_count, inverters, meters, address, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	users := site.Users
	if users == nil {
		users = []entity.SiteUser{}
	}
	inverters := site.Inverters
	if inverters == nil {
		inverters = []entity.Inverter{}
	}
	meters := site.Meters
	if meters == nil {
		meters = []entity.Meter{}
	}
	_, err := r.pool.Exec(context.Background(), query,
		site.ID, site.Name, site.CustomerID, users, site.CapacityKW, site.PanelCount,
		site.BatteryCount, inverters, meters, site.Address, site.CreatedAt, site.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert site: %w", err)
	}
	return nil
}

// GetByID obtiene un site por ID.
func (r *SiteRepo) GetByID(id string) (*entity.Site, error) {
	query := `SELECT ` + siteColumns + ` FROM sites WHERE id = $1`
	s, err := scanSite(r.pool.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get site by id: %w", err)
	}
	return s, nil
}

// ListByCustomer lista los sites de un customer.
func (r *SiteRepo) ListByCustomer(customerID string) ([]*entity.Site, error) {
	query := `SELECT ` + siteColumns + ` FROM sites WHERE customer_id = $1 ORDER BY created_at DESC`
	rows, err := r.pool.Query(context.Background(), query, customerID)
	if err != nil {
		return nil, fmt.Errorf("list sites: %w", err)
	}
	defer rows.Close()
	var list []*entity.Site
	for rows.Next() {
		s, err := scanSite(rows)
		if err != nil {
			return nil, fmt.Errorf("scan site: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}
