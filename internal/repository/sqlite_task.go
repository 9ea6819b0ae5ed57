package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/greenspot/internal/db"
	"github.com/alexanderramin/greenspot/internal/domain"
)

// SQLiteTaskRepo implements TaskRepo using a SQLite database.
type SQLiteTaskRepo struct {
	db db.DBTX
}

func NewSQLiteTaskRepo(db db.DBTX) *SQLiteTaskRepo {
	return &SQLiteTaskRepo{db: db}
}

const taskColumns = `id, plant_id, title, type, category, due_date, completed, completed_at, created_at`

func (r *SQLiteTaskRepo) Create(ctx context.Context, t *domain.Task) error {
	query := `INSERT INTO tasks (` + taskColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		t.ID,
		t.PlantID,
		t.Title,
		string(t.Type),
		string(t.Category),
		formatTime(t.DueDate),
		boolToInt(t.Completed),
		nullableTimeToString(t.CompletedAt),
		formatTime(t.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting task: %w", err)
	}
	return nil
}

func (r *SQLiteTaskRepo) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+taskColumns+` FROM tasks WHERE id = ?`, id)
	t, err := scanTask(row)
	if err != nil {
		return nil, notFound("task", id, err)
	}
	return t, nil
}

func (r *SQLiteTaskRepo) List(ctx context.Context, includeCompleted bool) ([]*domain.Task, error) {
	if includeCompleted {
		return r.query(ctx, `ORDER BY due_date, rowid`)
	}
	return r.query(ctx, `WHERE completed = 0 ORDER BY due_date, rowid`)
}

func (r *SQLiteTaskRepo) ListByPlant(ctx context.Context, plantID string, includeCompleted bool) ([]*domain.Task, error) {
	if includeCompleted {
		return r.query(ctx, `WHERE plant_id = ? ORDER BY due_date, rowid`, plantID)
	}
	return r.query(ctx, `WHERE plant_id = ? AND completed = 0 ORDER BY due_date, rowid`, plantID)
}

func (r *SQLiteTaskRepo) ListDue(ctx context.Context, before time.Time) ([]*domain.Task, error) {
	return r.query(ctx, `WHERE completed = 0 AND due_date <= ? ORDER BY due_date, rowid`, formatTime(before))
}

func (r *SQLiteTaskRepo) Update(ctx context.Context, t *domain.Task) error {
	query := `UPDATE tasks SET title = ?, type = ?, category = ?, due_date = ?, completed = ?, completed_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		t.Title,
		string(t.Type),
		string(t.Category),
		formatTime(t.DueDate),
		boolToInt(t.Completed),
		nullableTimeToString(t.CompletedAt),
		t.ID,
	)
	if err != nil {
		return fmt.Errorf("updating task: %w", err)
	}
	return expectAffected(res, "task", t.ID)
}

// DeleteIncompleteByPlant removes the plant's open tasks and keeps completed history.
func (r *SQLiteTaskRepo) DeleteIncompleteByPlant(ctx context.Context, plantID string) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE plant_id = ? AND completed = 0`, plantID)
	if err != nil {
		return 0, fmt.Errorf("deleting incomplete tasks: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("reading affected rows: %w", err)
	}
	return n, nil
}

func (r *SQLiteTaskRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting task: %w", err)
	}
	return expectAffected(res, "task", id)
}

func (r *SQLiteTaskRepo) query(ctx context.Context, clause string, args ...any) ([]*domain.Task, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+taskColumns+` FROM tasks `+clause, args...)
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}
	defer rows.Close()

	var tasks []*domain.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning task row: %w", err)
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tasks: %w", err)
	}
	return tasks, nil
}

func scanTask(sc scanner) (*domain.Task, error) {
	var t domain.Task
	var typ, category, dueDate, createdAt string
	var completed int
	var completedAt sql.NullString

	if err := sc.Scan(
		&t.ID, &t.PlantID, &t.Title, &typ, &category,
		&dueDate, &completed, &completedAt, &createdAt,
	); err != nil {
		return nil, err
	}

	t.Type = domain.TaskType(typ)
	t.Category = domain.TaskCategory(category)
	t.Completed = intToBool(completed)
	t.CompletedAt = parseNullableTime(completedAt)

	var err error
	if t.DueDate, err = parseTime("due_date", dueDate); err != nil {
		return nil, err
	}
	if t.CreatedAt, err = parseTime("created_at", createdAt); err != nil {
		return nil, err
	}
	return &t, nil
}
