package vehicles

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
	List(ctx context.Context) ([]Vehicle, error)
	Get(ctx context.Context, id int64) (Vehicle, error)
	Create(ctx context.Context, vehicle Vehicle) (Vehicle, error)
	Update(ctx context.Context, id int64, vehicle Vehicle) error
	Delete(ctx context.Context, id int64) error
}

type repository struct {
	pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{pool: pool}
}

// List returns every vehicle ordered by brand; id breaks ties so
// listings stay deterministic regardless of insertion order.
func (r *repository) List(ctx context.Context) ([]Vehicle, error) {
	const query = `SELECT id, brand, model, color, year_manufacture, imported, plates,
		selling_date, selling_price, created_at, updated_at
		FROM vehicles ORDER BY brand ASC, id ASC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list vehicles: %w", err)
	}
	defer rows.Close()

	var vehicles []Vehicle
	for rows.Next() {
		var v Vehicle
		err := rows.Scan(&v.ID, &v.Brand, &v.Model, &v.Color, &v.YearManufacture,
			&v.Imported, &v.Plates, &v.SellingDate, &v.SellingPrice, &v.CreatedAt, &v.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan vehicle: %w", err)
		}
		vehicles = append(vehicles, v)
	}
	return vehicles, rows.Err()
}

func (r *repository) Get(ctx context.Context, id int64) (Vehicle, error) {
	const query = `SELECT id, brand, model, color, year_manufacture, imported, plates,
		selling_date, selling_price, created_at, updated_at
		FROM vehicles WHERE id = $1`

	var v Vehicle
	err := r.pool.QueryRow(ctx, query, id).Scan(&v.ID, &v.Brand, &v.Model, &v.Color,
		&v.YearManufacture, &v.Imported, &v.Plates, &v.SellingDate, &v.SellingPrice,
		&v.CreatedAt, &v.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Vehicle{}, httpx.ErrNotFound
	}
	if err != nil {
		return Vehicle{}, fmt.Errorf("get vehicle %d: %w", id, err)
	}
	return v, nil
}

func (r *repository) Create(ctx context.Context, vehicle Vehicle) (Vehicle, error) {
	const query = `INSERT INTO vehicles
		(brand, model, color, year_manufacture, imported, plates, selling_date, selling_price, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $9)
		RETURNING id, created_at, updated_at`

	now := time.Now()
	err := r.pool.QueryRow(ctx, query, vehicle.Brand, vehicle.Model, vehicle.Color,
		vehicle.YearManufacture, vehicle.Imported, vehicle.Plates,
		vehicle.SellingDate, vehicle.SellingPrice, now).
		Scan(&vehicle.ID, &vehicle.CreatedAt, &vehicle.UpdatedAt)
	if err != nil {
		return Vehicle{}, fmt.Errorf("create vehicle: %w", err)
	}
	return vehicle, nil
}

func (r *repository) Update(ctx context.Context, id int64, vehicle Vehicle) error {
	const query = `UPDATE vehicles SET brand = $1, model = $2, color = $3,
		year_manufacture = $4, imported = $5, plates = $6,
		selling_date = $7, selling_price = $8, updated_at = $9
		WHERE id = $10`

	tag, err := r.pool.Exec(ctx, query, vehicle.Brand, vehicle.Model, vehicle.Color,
		vehicle.YearManufacture, vehicle.Imported, vehicle.Plates,
		vehicle.SellingDate, vehicle.SellingPrice, time.Now(), id)
	if err != nil {
		return fmt.Errorf("update vehicle %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return httpx.ErrNotFound
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM vehicles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete vehicle %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return httpx.ErrNotFound
	}
	return nil
}
