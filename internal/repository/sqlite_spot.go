package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/greenspot/internal/db"
	"github.com/alexanderramin/greenspot/internal/domain"
)

// SQLiteSpotRepo implements SpotRepo using a SQLite database.
type SQLiteSpotRepo struct {
	db db.DBTX
}

func NewSQLiteSpotRepo(db db.DBTX) *SQLiteSpotRepo {
	return &SQLiteSpotRepo{db: db}
}

const spotColumns = `id, name, room_type, light_source, direction, sun_exposure, distance, light_level, created_at, updated_at`

func (r *SQLiteSpotRepo) Create(ctx context.Context, s *domain.Spot) error {
	query := `INSERT INTO spots (` + spotColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		s.ID,
		s.Name,
		string(s.RoomType),
		string(s.LightSource),
		nullableString(s.Direction),
		nullableString(s.SunExposure),
		nullableString(s.Distance),
		string(s.LightLevel),
		formatTime(s.CreatedAt),
		formatTime(s.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting spot: %w", err)
	}
	return nil
}

func (r *SQLiteSpotRepo) GetByID(ctx context.Context, id string) (*domain.Spot, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+spotColumns+` FROM spots WHERE id = ?`, id)
	s, err := scanSpot(row)
	if err != nil {
		return nil, notFound("spot", id, err)
	}
	return s, nil
}

func (r *SQLiteSpotRepo) List(ctx context.Context) ([]*domain.Spot, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+spotColumns+` FROM spots ORDER BY created_at, rowid`)
	if err != nil {
		return nil, fmt.Errorf("listing spots: %w", err)
	}
	defer rows.Close()

	var spots []*domain.Spot
	for rows.Next() {
		s, err := scanSpot(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning spot row: %w", err)
		}
		spots = append(spots, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating spots: %w", err)
	}
	return spots, nil
}

func (r *SQLiteSpotRepo) Update(ctx context.Context, s *domain.Spot) error {
	query := `UPDATE spots SET name = ?, room_type = ?, light_source = ?, direction = ?, sun_exposure = ?,
		distance = ?, light_level = ?, updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		s.Name,
		string(s.RoomType),
		string(s.LightSource),
		nullableString(s.Direction),
		nullableString(s.SunExposure),
		nullableString(s.Distance),
		string(s.LightLevel),
		formatTime(s.UpdatedAt),
		s.ID,
	)
	if err != nil {
		return fmt.Errorf("updating spot: %w", err)
	}
	return expectAffected(res, "spot", s.ID)
}

// Delete removes the spot. Plants in it are kept with no spot.
func (r *SQLiteSpotRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM spots WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting spot: %w", err)
	}
	return expectAffected(res, "spot", id)
}

func scanSpot(sc scanner) (*domain.Spot, error) {
	var s domain.Spot
	var roomType, source, level, createdAt, updatedAt string
	var direction, sun, distance sql.NullString

	if err := sc.Scan(
		&s.ID, &s.Name, &roomType, &source,
		&direction, &sun, &distance,
		&level, &createdAt, &updatedAt,
	); err != nil {
		return nil, err
	}

	s.RoomType = domain.RoomType(roomType)
	s.LightSource = domain.LightSource(source)
	s.Direction = stringPtr[domain.Direction](direction)
	s.SunExposure = stringPtr[domain.SunExposure](sun)
	s.Distance = stringPtr[domain.WindowDistance](distance)
	s.LightLevel = domain.LightLevel(level)

	var err error
	if s.CreatedAt, err = parseTime("created_at", createdAt); err != nil {
		return nil, err
	}
	if s.UpdatedAt, err = parseTime("updated_at", updatedAt); err != nil {
		return nil, err
	}
	return &s, nil
}
