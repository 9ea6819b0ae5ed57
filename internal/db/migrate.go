package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS spots (
		id           TEXT PRIMARY KEY,
		name         TEXT NOT NULL,
		room_type    TEXT NOT NULL DEFAULT 'other'
		             CHECK(room_type IN ('bedroom','living-room','kitchen','bathroom','office','dining-room','hallway','other')),
		light_source TEXT NOT NULL
		             CHECK(light_source IN ('window','lamp','no-window')),
		direction    TEXT CHECK(direction IN ('north','east','south','west','unsure')),
		sun_exposure TEXT CHECK(sun_exposure IN ('lots','a-bit','almost-none')),
		distance     TEXT CHECK(distance IN ('windowsill','close','mid','far')),
		light_level  TEXT NOT NULL
		             CHECK(light_level IN ('bright-direct','bright-indirect','medium-indirect','low-light')),
		created_at   TEXT NOT NULL,
		updated_at   TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS plants (
		id                      TEXT PRIMARY KEY,
		name                    TEXT NOT NULL,
		scientific_name         TEXT NOT NULL DEFAULT '',
		image                   TEXT NOT NULL DEFAULT '',
		spot_id                 TEXT REFERENCES spots(id) ON DELETE SET NULL,
		status                  TEXT NOT NULL DEFAULT 'all-good'
		                        CHECK(status IN ('all-good','needs-water','check-light','needs-attention')),
		light_requirement       TEXT NOT NULL
		                        CHECK(light_requirement IN ('bright-direct','bright-indirect','medium-indirect','low-light')),
		watering_frequency      TEXT NOT NULL DEFAULT '',
		watering_days           INTEGER NOT NULL DEFAULT 0,
		light_description       TEXT NOT NULL DEFAULT '',
		light_warning_dismissed INTEGER NOT NULL DEFAULT 0,
		light_mismatch_override INTEGER NOT NULL DEFAULT 0,
		added_at                TEXT NOT NULL,
		updated_at              TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_plants_spot ON plants(spot_id)`,

	`CREATE TABLE IF NOT EXISTS plant_task_settings (
		plant_id       TEXT NOT NULL REFERENCES plants(id) ON DELETE CASCADE,
		task_type      TEXT NOT NULL
		               CHECK(task_type IN ('watering','rotating','fertilizing','misting','pruning','pestCheck')),
		enabled        INTEGER NOT NULL DEFAULT 0,
		frequency_days INTEGER NOT NULL CHECK(frequency_days > 0),
		PRIMARY KEY (plant_id, task_type)
	)`,

	`CREATE TABLE IF NOT EXISTS tasks (
		id           TEXT PRIMARY KEY,
		plant_id     TEXT NOT NULL REFERENCES plants(id) ON DELETE CASCADE,
		title        TEXT NOT NULL,
		type         TEXT NOT NULL DEFAULT '',
		category     TEXT NOT NULL DEFAULT 'care'
		             CHECK(category IN ('care','light-check','general')),
		due_date     TEXT NOT NULL,
		completed    INTEGER NOT NULL DEFAULT 0,
		completed_at TEXT,
		created_at   TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_plant ON tasks(plant_id)`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_due ON tasks(completed, due_date)`,
}
