package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"service/internal/repository"
	"service/internal/service/crud"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Table описывает отображение сущности на таблицу.
// Scan читает колонки в порядке IDColumn, Columns...; Values отдаёт значения в порядке Columns.
type Table[E any, ID comparable] struct {
	Name        string
	IDColumn    string
	Columns     []string
	GeneratedID bool

	ID     func(entity E) ID
	Values func(entity E) []any
	Scan   func(row pgx.Row) (E, error)
}

func (t Table[E, ID]) allColumns() []string {
	columns := make([]string, 0, len(t.Columns)+1)
	columns = append(columns, t.IDColumn)
	return append(columns, t.Columns...)
}

func (t Table[E, ID]) returning() string {
	return "RETURNING " + strings.Join(t.allColumns(), ", ")
}

// Store обобщённый репозиторий: find-all, find-by-id, insert, update, delete-by-id, count.
type Store[E any, ID comparable] struct {
	querier Querier
	table   Table[E, ID]
}

func New[E any, ID comparable](querier Querier, table Table[E, ID]) *Store[E, ID] {
	return &Store[E, ID]{
		querier: querier,
		table:   table,
	}
}

func (s *Store[E, ID]) GetAll(ctx context.Context) ([]E, error) {
	query, args, err := qb.
		Select(s.table.allColumns()...).
		From(s.table.Name).
		OrderBy(s.table.IDColumn).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected %s repository getall error: %w", s.table.Name, err)
	}

	rows, err := s.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected %s repository getall error: %w", s.table.Name, err)
	}
	defer rows.Close()

	result := make([]E, 0, 8)
	for rows.Next() {
		entity, err := s.table.Scan(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected %s repository getall error: %w", s.table.Name, err)
		}
		result = append(result, entity)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected %s repository getall error: %w", s.table.Name, err)
	}

	return result, nil
}

func (s *Store[E, ID]) GetByID(ctx context.Context, id ID) (*E, error) {
	query, args, err := qb.
		Select(s.table.allColumns()...).
		From(s.table.Name).
		Where(sq.Eq{s.table.IDColumn: id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected %s repository getbyid error: %w", s.table.Name, err)
	}

	entity, err := s.table.Scan(s.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, crud.ErrNotFound
		}
		return nil, fmt.Errorf("unexpected %s repository getbyid error: %w", s.table.Name, err)
	}

	return &entity, nil
}

// Create для GeneratedID колонка идентификатора не передаётся, значение берётся из RETURNING.
func (s *Store[E, ID]) Create(ctx context.Context, entity E) (*E, error) {
	columns := s.table.Columns
	values := s.table.Values(entity)
	if !s.table.GeneratedID {
		columns = s.table.allColumns()
		values = append([]any{s.table.ID(entity)}, values...)
	}

	query, args, err := qb.
		Insert(s.table.Name).
		Columns(columns...).
		Values(values...).
		Suffix(s.table.returning()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected %s repository create error: %w", s.table.Name, err)
	}

	created, err := s.table.Scan(s.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if repository.IsConflict(err) {
			return nil, crud.ErrConflict
		}
		return nil, fmt.Errorf("unexpected %s repository create error: %w", s.table.Name, err)
	}

	return &created, nil
}

// Update перезаписывает все колонки, кроме идентификатора.
func (s *Store[E, ID]) Update(ctx context.Context, entity E) (*E, error) {
	builder := qb.Update(s.table.Name)

	values := s.table.Values(entity)
	for i, column := range s.table.Columns {
		builder = builder.Set(column, values[i])
	}

	query, args, err := builder.
		Where(sq.Eq{s.table.IDColumn: s.table.ID(entity)}).
		Suffix(s.table.returning()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected %s repository update error: %w", s.table.Name, err)
	}

	updated, err := s.table.Scan(s.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, crud.ErrNotFound
		}
		if repository.IsConflict(err) {
			return nil, crud.ErrConflict
		}
		return nil, fmt.Errorf("unexpected %s repository update error: %w", s.table.Name, err)
	}

	return &updated, nil
}

func (s *Store[E, ID]) Delete(ctx context.Context, id ID) error {
	query, args, err := qb.
		Delete(s.table.Name).
		Where(sq.Eq{s.table.IDColumn: id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("unexpected %s repository delete error: %w", s.table.Name, err)
	}

	result, err := s.querier.Exec(ctx, query, args...)
	if err != nil {
		if repository.IsConflict(err) {
			return crud.ErrConflict
		}
		return fmt.Errorf("unexpected %s repository delete error: %w", s.table.Name, err)
	}

	if result.RowsAffected() == 0 {
		return crud.ErrNotFound
	}

	return nil
}

func (s *Store[E, ID]) Count(ctx context.Context) (int64, error) {
	query, args, err := qb.
		Select("COUNT(*)").
		From(s.table.Name).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("unexpected %s repository count error: %w", s.table.Name, err)
	}

	var count int64
	err = s.querier.QueryRow(ctx, query, args...).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("unexpected %s repository count error: %w", s.table.Name, err)
	}

	return count, nil
}
