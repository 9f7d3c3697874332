package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/residence-registry/internal/domain"
)

// ResidentRepository defines persistence access for resident records.
type ResidentRepository interface {
	List(ctx context.Context) ([]domain.Resident, error)
	GetByID(ctx context.Context, id string) (*domain.Resident, error)
	Create(ctx context.Context, resident *domain.Resident) error
	Update(ctx context.Context, resident *domain.Resident) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

type residentRepository struct {
	pool *pgxpool.Pool
}

// NewResidentRepository returns a Postgres-backed implementation.
func NewResidentRepository(pool *pgxpool.Pool) ResidentRepository {
	return &residentRepository{pool: pool}
}

func (r *residentRepository) List(ctx context.Context) ([]domain.Resident, error) {
	const query = `
        SELECT id, title, name, suffix, sex, birthday, age, postal_code,
               citizenship, civil_status, course, address, created_at, updated_at
        FROM residents
        ORDER BY created_at, id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	residents := make([]domain.Resident, 0)
	for rows.Next() {
		var res domain.Resident
		if err := rows.Scan(
			&res.ID,
			&res.Title,
			&res.Name,
			&res.Suffix,
			&res.Sex,
			&res.Birthday,
			&res.Age,
			&res.PostalCode,
			&res.Citizenship,
			&res.CivilStatus,
			&res.Course,
			&res.Address,
			&res.CreatedAt,
			&res.UpdatedAt,
		); err != nil {
			return nil, err
		}
		residents = append(residents, res)
	}
	return residents, rows.Err()
}

func (r *residentRepository) GetByID(ctx context.Context, id string) (*domain.Resident, error) {
	const query = `
        SELECT id, title, name, suffix, sex, birthday, age, postal_code,
               citizenship, civil_status, course, address, created_at, updated_at
        FROM residents WHERE id=$1`

	var res domain.Resident
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&res.ID,
		&res.Title,
		&res.Name,
		&res.Suffix,
		&res.Sex,
		&res.Birthday,
		&res.Age,
		&res.PostalCode,
		&res.Citizenship,
		&res.CivilStatus,
		&res.Course,
		&res.Address,
		&res.CreatedAt,
		&res.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &res, nil
}

func (r *residentRepository) Create(ctx context.Context, resident *domain.Resident) error {
	const query = `
        INSERT INTO residents (id, title, name, suffix, sex, birthday, age,
                               postal_code, citizenship, civil_status, course, address)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
        RETURNING created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		resident.ID,
		resident.Title,
		resident.Name,
		resident.Suffix,
		resident.Sex,
		resident.Birthday,
		resident.Age,
		resident.PostalCode,
		resident.Citizenship,
		resident.CivilStatus,
		resident.Course,
		resident.Address,
	).Scan(&resident.CreatedAt, &resident.UpdatedAt)
}

func (r *residentRepository) Update(ctx context.Context, resident *domain.Resident) error {
	const query = `
        UPDATE residents
        SET title=$1, name=$2, suffix=$3, sex=$4, birthday=$5, age=$6,
            postal_code=$7, citizenship=$8, civil_status=$9, course=$10,
            address=$11, updated_at=NOW()
        WHERE id=$12`

	cmd, err := r.pool.Exec(ctx, query,
		resident.Title,
		resident.Name,
		resident.Suffix,
		resident.Sex,
		resident.Birthday,
		resident.Age,
		resident.PostalCode,
		resident.Citizenship,
		resident.CivilStatus,
		resident.Course,
		resident.Address,
		resident.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *residentRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM residents WHERE id=$1`

	cmd, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *residentRepository) Count(ctx context.Context) (int, error) {
	const query = `SELECT COUNT(*) FROM residents`

	var count int
	if err := r.pool.QueryRow(ctx, query).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}
