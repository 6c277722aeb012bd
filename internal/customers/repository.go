package customers

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/autolote/autolote/internal/platform/httpx"
)

type Repository interface {
	List(ctx context.Context) ([]Customer, error)
	Get(ctx context.Context, id int64) (Customer, error)
	Create(ctx context.Context, customer Customer) (Customer, error)
	Update(ctx context.Context, id int64, customer Customer) error
	Delete(ctx context.Context, id int64) error
}

type repository struct {
	pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{pool: pool}
}

const columns = `id, full_name, tax_id, birth_date, street, house_number,
	complement, neighborhood, city, state, phone, email, created_at, updated_at`

func scanCustomer(row pgx.Row) (Customer, error) {
	var c Customer
	err := row.Scan(&c.ID, &c.FullName, &c.TaxID, &c.BirthDate, &c.Street,
		&c.HouseNumber, &c.Complement, &c.Neighborhood, &c.City, &c.State,
		&c.Phone, &c.Email, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}

// List returns every customer ordered by name; id breaks ties so
// listings stay deterministic.
func (r *repository) List(ctx context.Context) ([]Customer, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+columns+` FROM customers ORDER BY full_name ASC, id ASC`)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()

	var customers []Customer
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		customers = append(customers, c)
	}
	return customers, rows.Err()
}

func (r *repository) Get(ctx context.Context, id int64) (Customer, error) {
	c, err := scanCustomer(r.pool.QueryRow(ctx, `SELECT `+columns+` FROM customers WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return Customer{}, httpx.ErrNotFound
	}
	if err != nil {
		return Customer{}, fmt.Errorf("get customer %d: %w", id, err)
	}
	return c, nil
}

func (r *repository) Create(ctx context.Context, customer Customer) (Customer, error) {
	const query = `INSERT INTO customers
		(full_name, tax_id, birth_date, street, house_number, complement,
		 neighborhood, city, state, phone, email, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $12)
		RETURNING id, created_at, updated_at`

	now := time.Now()
	err := r.pool.QueryRow(ctx, query, customer.FullName, customer.TaxID,
		customer.BirthDate, customer.Street, customer.HouseNumber, customer.Complement,
		customer.Neighborhood, customer.City, customer.State, customer.Phone,
		customer.Email, now).
		Scan(&customer.ID, &customer.CreatedAt, &customer.UpdatedAt)
	if err != nil {
		return Customer{}, fmt.Errorf("create customer: %w", err)
	}
	return customer, nil
}

func (r *repository) Update(ctx context.Context, id int64, customer Customer) error {
	const query = `UPDATE customers SET full_name = $1, tax_id = $2, birth_date = $3,
		street = $4, house_number = $5, complement = $6, neighborhood = $7,
		city = $8, state = $9, phone = $10, email = $11, updated_at = $12
		WHERE id = $13`

	tag, err := r.pool.Exec(ctx, query, customer.FullName, customer.TaxID,
		customer.BirthDate, customer.Street, customer.HouseNumber, customer.Complement,
		customer.Neighborhood, customer.City, customer.State, customer.Phone,
		customer.Email, time.Now(), id)
	if err != nil {
		return fmt.Errorf("update customer %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return httpx.ErrNotFound
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete customer %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return httpx.ErrNotFound
	}
	return nil
}
