package db

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/alt-7/task-management/internal/core/domain"
	"github.com/alt-7/task-management/internal/core/ports"
)

const selectTaskColumns = `
SELECT id, title, description, status, created_at, updated_at, created_by, updated_by
FROM tasks
`

type TaskRepository struct {
	db *sqlx.DB
}

type taskRow struct {
	ID          int64          `db:"id"`
	Title       string         `db:"title"`
	Description sql.NullString `db:"description"`
	Status      string         `db:"status"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
	CreatedBy   sql.NullInt64  `db:"created_by"`
	UpdatedBy   sql.NullInt64  `db:"updated_by"`
}

var _ ports.TaskRepository = (*TaskRepository)(nil)

func NewTaskRepository(db *sqlx.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// FindWithPagination returns the requested window ordered by newest
// created_at first, plus the total matching row count computed
// independently of the window. Page and limit arrive pre-clamped.
func (r *TaskRepository) FindWithPagination(ctx context.Context, page, limit int, status *domain.TaskStatus) (domain.PaginatedResult, error) {
	listQuery := selectTaskColumns
	countQuery := "SELECT COUNT(*) FROM tasks"
	args := []any{}
	if status != nil {
		listQuery += " WHERE status = ?"
		countQuery += " WHERE status = ?"
		args = append(args, string(*status))
	}
	listQuery += " ORDER BY created_at DESC, id DESC LIMIT ? OFFSET ?"

	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return domain.PaginatedResult{}, err
	}

	offset := (page - 1) * limit
	var rows []taskRow
	if err := r.db.SelectContext(ctx, &rows, listQuery, append(args, limit, offset)...); err != nil {
		return domain.PaginatedResult{}, err
	}

	tasks := make([]domain.Task, 0, len(rows))
	for _, row := range rows {
		tasks = append(tasks, mapTaskRowToDomainTask(row))
	}

	return domain.NewPaginatedResult(tasks, total, page, limit), nil
}

func (r *TaskRepository) FindByID(ctx context.Context, id int64) (*domain.Task, error) {
	var row taskRow
	if err := r.db.GetContext(ctx, &row, selectTaskColumns+" WHERE id = ?", id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTaskNotFound
		}
		return nil, err
	}

	task := mapTaskRowToDomainTask(row)
	return &task, nil
}

// Create stamps created_at and updated_at immediately before the insert;
// timestamps are never client-supplied.
func (r *TaskRepository) Create(ctx context.Context, task *domain.Task) error {
	now := stamp()
	task.CreatedAt = now
	task.UpdatedAt = now

	result, err := r.db.ExecContext(ctx,
		`INSERT INTO tasks (title, description, status, created_at, updated_at, created_by, updated_by)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		task.Title,
		nullString(task.Description),
		string(task.Status),
		task.CreatedAt,
		task.UpdatedAt,
		nullInt64(task.CreatedBy),
		nullInt64(task.UpdatedBy),
	)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	task.ID = id
	return nil
}

// Update re-stamps updated_at immediately before the write. Last writer
// wins; there is no version column.
func (r *TaskRepository) Update(ctx context.Context, task *domain.Task) error {
	task.UpdatedAt = stamp()

	_, err := r.db.ExecContext(ctx,
		`UPDATE tasks
		 SET title = ?, description = ?, status = ?, updated_at = ?, updated_by = ?
		 WHERE id = ?`,
		task.Title,
		nullString(task.Description),
		string(task.Status),
		task.UpdatedAt,
		nullInt64(task.UpdatedBy),
		task.ID,
	)
	return err
}

func (r *TaskRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM tasks WHERE id = ?", id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

// stamp truncates to second precision to match the DATETIME columns, so
// the entity carries exactly what the store will return.
func stamp() time.Time {
	return time.Now().UTC().Truncate(time.Second)
}

func mapTaskRowToDomainTask(row taskRow) domain.Task {
	task := domain.Task{
		ID:        row.ID,
		Title:     row.Title,
		Status:    domain.TaskStatus(row.Status),
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}

	if row.Description.Valid {
		value := row.Description.String
		task.Description = &value
	}
	if row.CreatedBy.Valid {
		value := row.CreatedBy.Int64
		task.CreatedBy = &value
	}
	if row.UpdatedBy.Valid {
		value := row.UpdatedBy.Int64
		task.UpdatedBy = &value
	}

	return task
}

func nullString(value *string) sql.NullString {
	if value == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *value, Valid: true}
}

func nullInt64(value *int64) sql.NullInt64 {
	if value == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *value, Valid: true}
}
