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

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
type UserRepo struct {
	pool *pgxpool.Pool
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(pool *pgxpool.Pool) *UserRepo {
	return &UserRepo{pool: pool}
}

const userColumns = `id, name, type, role, customer_id, email, phone_number, password_hash, is_new_user, active, created_at, updated_at`

func scanUser(row pgx.Row) (*entity.User, error) {
	var u entity.User
	var customerID, phone *string
	err := row.Scan(
		&u.ID, &u.Name, &u.Type, &u.Role, &customerID, &u.Email, &phone,
		&u.PasswordHash, &u.IsNewUser, &u.Active, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if customerID != nil {
		u.CustomerID = *customerID
	}
	if phone != nil {
		u.PhoneNumber = *phone
	}
	return &u, nil
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// Create persiste un nuevo usuario. El índice único de email resuelve las
// carreras entre creaciones concurrentes: aquí no hay pre-chequeo.
func (r *UserRepo) Create(user *entity.User) error {
	query := `
		INSERT INTO users (id, name, type, role, customer_id, email, phone_number, password_hash, is_new_user, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.pool.Exec(context.Background(), query,
		user.ID, user.Name, user.Type, user.Role, nullable(user.CustomerID), user.Email,
		nullable(user.PhoneNumber), user.PasswordHash, user.IsNewUser, user.Active,
		user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID.
func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	u, err := scanUser(r.pool.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by id: %w", err)
	}
	return u, nil
}

// GetByEmail obtiene un usuario por email.
func (r *UserRepo) GetByEmail(email string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1 LIMIT 1`
	u, err := scanUser(r.pool.QueryRow(context.Background(), query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	return u, nil
}

// Update actualiza los campos mutables de un usuario.
// El email no se toca: es la identidad de login del usuario.
func (r *UserRepo) Update(user *entity.User) error {
	query := `
		UPDATE users SET name = $2, phone_number = $3, password_hash = $4, is_new_user = $5, active = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		user.ID, user.Name, nullable(user.PhoneNumber), user.PasswordHash,
		user.IsNewUser, user.Active, user.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

// SetActive marca el flag active de un usuario.
func (r *UserRepo) SetActive(id string, active bool) error {
	tag, err := r.pool.Exec(context.Background(),
		`UPDATE users SET active = $2, updated_at = now() WHERE id = $1`, id, active)
	if err != nil {
		return fmt.Errorf("set user active: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// SetActiveByCustomer cascada del flag active sobre todos los usuarios del customer.
// Cero filas afectadas no es error: un customer puede quedarse sin usuarios.
func (r *UserRepo) SetActiveByCustomer(customerID string, active bool) error {
	_, err := r.pool.Exec(context.Background(),
		`UPDATE users SET active = $2, updated_at = now() WHERE customer_id = $1`, customerID, active)
	if err != nil {
		return fmt.Errorf("set users active by customer: %w", err)
	}
	return nil
}

// SetActiveByCustomerRole limita la cascada a los usuarios de un rol concreto.
func (r *UserRepo) SetActiveByCustomerRole(customerID string, role entity.UserRole, active bool) error {
	_, err := r.pool.Exec(context.Background(),
		`UPDATE users SET active = $3, updated_at = now() WHERE customer_id = $1 AND role = $2`,
		customerID, role, active)
	if err != nil {
		return fmt.Errorf("set users active by customer and role: %w", err)
	}
	return nil
}

// ListByType lista usuarios de un tipo, excluyendo opcionalmente un rol
// (se usa para ocultar Root en los listados de internos).
func (r *UserRepo) ListByType(t entity.UserType, excludeRole entity.UserRole) ([]*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE type = $1 AND role <> $2 ORDER BY created_at DESC`
	rows, err := r.pool.Query(context.Background(), query, t, excludeRole)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()
	var list []*entity.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		list = append(list, u)
	}
	return list, rows.Err()
}
