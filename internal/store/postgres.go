package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"employee-portal/internal/models"
)

type PostgresStore struct {
	Pool *pgxpool.Pool
}

func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{Pool: pool}
}

func (s *PostgresStore) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.Pool.QueryRow(ctx, `SELECT count(*) FROM employees`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count employees: %w", err)
	}
	return n, nil
}

func (s *PostgresStore) Write(ctx context.Context, id string, e models.Employee) error {
	_, err := s.Pool.Exec(ctx, `
		INSERT INTO employees (id, name, department, role, email)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE
		SET name = EXCLUDED.name,
		    department = EXCLUDED.department,
		    role = EXCLUDED.role,
		    email = EXCLUDED.email
	`, id, e.Name, e.Department, e.Role, e.Email)
	if err != nil {
		return fmt.Errorf("write employee %s: %w", id, err)
	}
	return nil
}

func (s *PostgresStore) Get(ctx context.Context, id string) (models.Employee, error) {
	var e models.Employee
	err := s.Pool.QueryRow(ctx, `
		SELECT id, name, department, role, email, created_at
		FROM employees WHERE id = $1`, id,
	).Scan(&e.ID, &e.Name, &e.Department, &e.Role, &e.Email, &e.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Employee{}, ErrNotFound
	}
	if err != nil {
		return models.Employee{}, fmt.Errorf("get employee %s: %w", id, err)
	}
	return e, nil
}

func (s *PostgresStore) List(ctx context.Context) ([]models.Employee, error) {
	rows, err := s.Pool.Query(ctx, `
		SELECT id, name, department, role, email, created_at
		FROM employees
		ORDER BY length(id), id`)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer rows.Close()

	list := make([]models.Employee, 0)
	for rows.Next() {
		var e models.Employee
		if err := rows.Scan(&e.ID, &e.Name, &e.Department, &e.Role, &e.Email, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan employee: %w", err)
		}
		list = append(list, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	return list, nil
}

// Ping reports whether the database is reachable.
func (s *PostgresStore) Ping(ctx context.Context) error {
	var one int
	return s.Pool.QueryRow(ctx, "select 1").Scan(&one)
}
