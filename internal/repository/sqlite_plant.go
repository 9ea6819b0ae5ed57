package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/greenspot/internal/db"
	"github.com/alexanderramin/greenspot/internal/domain"
)

// SQLitePlantRepo implements PlantRepo. Task settings live in
// plant_task_settings, one row per task type.
type SQLitePlantRepo struct {
	db db.DBTX
}

func NewSQLitePlantRepo(db db.DBTX) *SQLitePlantRepo {
	return &SQLitePlantRepo{db: db}
}

const plantColumns = `id, name, scientific_name, image, spot_id, status, light_requirement,
	watering_frequency, watering_days, light_description,
	light_warning_dismissed, light_mismatch_override, added_at, updated_at`

func (r *SQLitePlantRepo) Create(ctx context.Context, p *domain.Plant) error {
	query := `INSERT INTO plants (` + plantColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		p.ID,
		p.Name,
		p.ScientificName,
		p.Image,
		nullableString(p.SpotID),
		string(p.Status),
		string(p.LightRequirement),
		p.Care.WateringFrequency,
		p.Care.WateringDays,
		p.Care.LightDescription,
		boolToInt(p.LightWarningDismissed),
		boolToInt(p.LightMismatchOverride),
		formatTime(p.AddedAt),
		formatTime(p.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting plant: %w", err)
	}
	return r.saveTaskConfig(ctx, p.ID, p.TaskConfig)
}

func (r *SQLitePlantRepo) GetByID(ctx context.Context, id string) (*domain.Plant, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+plantColumns+` FROM plants WHERE id = ?`, id)
	p, err := scanPlant(row)
	if err != nil {
		return nil, notFound("plant", id, err)
	}
	configs, err := r.loadTaskConfigs(ctx, `WHERE plant_id = ?`, id)
	if err != nil {
		return nil, err
	}
	applyTaskConfig(p, configs)
	return p, nil
}

func (r *SQLitePlantRepo) List(ctx context.Context) ([]*domain.Plant, error) {
	return r.list(ctx, `ORDER BY added_at, rowid`)
}

func (r *SQLitePlantRepo) ListBySpot(ctx context.Context, spotID string) ([]*domain.Plant, error) {
	return r.list(ctx, `WHERE spot_id = ? ORDER BY added_at, rowid`, spotID)
}

func (r *SQLitePlantRepo) list(ctx context.Context, clause string, args ...any) ([]*domain.Plant, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+plantColumns+` FROM plants `+clause, args...)
	if err != nil {
		return nil, fmt.Errorf("listing plants: %w", err)
	}
	var plants []*domain.Plant
	for rows.Next() {
		p, err := scanPlant(rows)
		if err != nil {
			rows.Close()
			return nil, fmt.Errorf("scanning plant row: %w", err)
		}
		plants = append(plants, p)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("iterating plants: %w", err)
	}
	// Settings are read after closing rows: a single-connection pool
	// cannot serve a second query while the first is open.
	rows.Close()

	if len(plants) == 0 {
		return plants, nil
	}
	configs, err := r.loadTaskConfigs(ctx, "")
	if err != nil {
		return nil, err
	}
	for _, p := range plants {
		applyTaskConfig(p, configs)
	}
	return plants, nil
}

func (r *SQLitePlantRepo) Update(ctx context.Context, p *domain.Plant) error {
	query := `UPDATE plants SET name = ?, scientific_name = ?, image = ?, spot_id = ?, status = ?,
		light_requirement = ?, watering_frequency = ?, watering_days = ?, light_description = ?,
		light_warning_dismissed = ?, light_mismatch_override = ?, added_at = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		p.Name,
		p.ScientificName,
		p.Image,
		nullableString(p.SpotID),
		string(p.Status),
		string(p.LightRequirement),
		p.Care.WateringFrequency,
		p.Care.WateringDays,
		p.Care.LightDescription,
		boolToInt(p.LightWarningDismissed),
		boolToInt(p.LightMismatchOverride),
		formatTime(p.AddedAt),
		formatTime(p.UpdatedAt),
		p.ID,
	)
	if err != nil {
		return fmt.Errorf("updating plant: %w", err)
	}
	if err := expectAffected(res, "plant", p.ID); err != nil {
		return err
	}
	return r.saveTaskConfig(ctx, p.ID, p.TaskConfig)
}

// Delete removes the plant; its tasks and settings cascade.
func (r *SQLitePlantRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM plants WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting plant: %w", err)
	}
	return expectAffected(res, "plant", id)
}

func (r *SQLitePlantRepo) saveTaskConfig(ctx context.Context, plantID string, cfg domain.TaskConfig) error {
	query := `INSERT INTO plant_task_settings (plant_id, task_type, enabled, frequency_days)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(plant_id, task_type) DO UPDATE SET
			enabled = excluded.enabled,
			frequency_days = excluded.frequency_days`
	for _, typ := range domain.TaskTypes {
		s, _ := cfg.Get(typ)
		if _, err := r.db.ExecContext(ctx, query, plantID, string(typ), boolToInt(s.Enabled), s.FrequencyDays); err != nil {
			return fmt.Errorf("saving %s setting: %w", typ, err)
		}
	}
	return nil
}

// loadTaskConfigs reads settings keyed by plant id. Plants start from the
// default config so a missing row never yields a zero frequency.
func (r *SQLitePlantRepo) loadTaskConfigs(ctx context.Context, where string, args ...any) (map[string]domain.TaskConfig, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT plant_id, task_type, enabled, frequency_days FROM plant_task_settings `+where, args...)
	if err != nil {
		return nil, fmt.Errorf("loading task settings: %w", err)
	}
	defer rows.Close()

	configs := make(map[string]domain.TaskConfig)
	for rows.Next() {
		var plantID, typ string
		var enabled, freq int
		if err := rows.Scan(&plantID, &typ, &enabled, &freq); err != nil {
			return nil, fmt.Errorf("scanning task setting: %w", err)
		}
		cfg, ok := configs[plantID]
		if !ok {
			cfg = domain.DefaultTaskConfig()
		}
		if err := cfg.Set(domain.TaskType(typ), domain.TaskSetting{Enabled: intToBool(enabled), FrequencyDays: freq}); err != nil {
			return nil, fmt.Errorf("plant %s: %w", plantID, err)
		}
		configs[plantID] = cfg
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating task settings: %w", err)
	}
	return configs, nil
}

func applyTaskConfig(p *domain.Plant, configs map[string]domain.TaskConfig) {
	if cfg, ok := configs[p.ID]; ok {
		p.TaskConfig = cfg
		return
	}
	p.TaskConfig = domain.DefaultTaskConfig()
}

func scanPlant(sc scanner) (*domain.Plant, error) {
	var p domain.Plant
	var spotID sql.NullString
	var status, requirement, addedAt, updatedAt string
	var dismissed, override int

	if err := sc.Scan(
		&p.ID, &p.Name, &p.ScientificName, &p.Image, &spotID,
		&status, &requirement,
		&p.Care.WateringFrequency, &p.Care.WateringDays, &p.Care.LightDescription,
		&dismissed, &override, &addedAt, &updatedAt,
	); err != nil {
		return nil, err
	}

	p.SpotID = stringPtr[string](spotID)
	p.Status = domain.PlantStatus(status)
	p.LightRequirement = domain.LightLevel(requirement)
	p.LightWarningDismissed = intToBool(dismissed)
	p.LightMismatchOverride = intToBool(override)

	var err error
	if p.AddedAt, err = parseTime("added_at", addedAt); err != nil {
		return nil, err
	}
	if p.UpdatedAt, err = parseTime("updated_at", updatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}
