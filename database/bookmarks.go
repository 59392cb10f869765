package database

import (
	"bookmarks-api/models"
	"context"
	"database/sql"
	"errors"

	sq "github.com/Masterminds/squirrel"
)

// Runner is the storage handle every repository call runs against.
// *sql.DB, *sql.Tx and *DB all satisfy it.
type Runner interface {
	sq.StdSqlCtx
}

const bookmarksTable = "bookmarks"

var bookmarkColumns = []string{"id", "title", "url", "description", "rating"}

// BookmarkRepository holds no connection of its own; callers pass the handle
// into each method.
type BookmarkRepository struct {
	builder sq.StatementBuilderType
}

func NewBookmarkRepository() *BookmarkRepository {
	return &BookmarkRepository{builder: sq.StatementBuilder.PlaceholderFormat(sq.Question)}
}

// GetAll returns every bookmark ordered by id. An empty table yields an empty slice.
func (r *BookmarkRepository) GetAll(ctx context.Context, h Runner) ([]models.Bookmark, error) {
	rows, err := r.builder.
		Select(bookmarkColumns...).
		From(bookmarksTable).
		OrderBy("id ASC").
		RunWith(h).
		QueryContext(ctx)
	if err != nil {
		return nil, storageErr("select bookmarks", err)
	}
	defer rows.Close()

	// Initialize with empty slice to avoid returning nil
	bookmarks := make([]models.Bookmark, 0)
	for rows.Next() {
		b, err := scanBookmark(rows)
		if err != nil {
			return nil, storageErr("scan bookmark", err)
		}
		bookmarks = append(bookmarks, *b)
	}

	return bookmarks, storageErr("iterate bookmarks", rows.Err())
}

// GetByID returns nil, nil when no row matches.
func (r *BookmarkRepository) GetByID(ctx context.Context, h Runner, id int64) (*models.Bookmark, error) {
	row := r.builder.
		Select(bookmarkColumns...).
		From(bookmarksTable).
		Where(sq.Eq{"id": id}).
		RunWith(h).
		QueryRowContext(ctx)

	b, err := scanBookmark(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, storageErr("select bookmark", err)
	}

	return b, nil
}

// Insert stores a new bookmark and returns it with the id assigned by the database.
func (r *BookmarkRepository) Insert(ctx context.Context, h Runner, req models.CreateBookmarkRequest) (*models.Bookmark, error) {
	res, err := r.builder.
		Insert(bookmarksTable).
		Columns("title", "url", "description", "rating").
		Values(req.Title, req.URL, nullString(req.Description), nullInt(req.Rating)).
		RunWith(h).
		ExecContext(ctx)
	if err != nil {
		return nil, storageErr("insert bookmark", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, storageErr("insert bookmark", err)
	}

	b, err := r.GetByID(ctx, h, id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, storageErr("insert bookmark", errors.New("inserted row not found"))
	}
	return b, nil
}

// Update writes only the supplied fields of patch. A supplied null clears the
// column. It returns the number of rows affected, 0 when id does not exist.
func (r *BookmarkRepository) Update(ctx context.Context, h Runner, id int64, patch models.BookmarkPatch) (int64, error) {
	if patch.IsEmpty() {
		return 0, nil
	}

	q := r.builder.Update(bookmarksTable).Where(sq.Eq{"id": id})
	q = setOptional(q, "title", patch.Title)
	q = setOptional(q, "url", patch.URL)
	q = setOptional(q, "description", patch.Description)
	q = setOptional(q, "rating", patch.Rating)

	res, err := q.RunWith(h).ExecContext(ctx)
	if err != nil {
		return 0, storageErr("update bookmark", err)
	}

	n, err := res.RowsAffected()
	return n, storageErr("update bookmark", err)
}

func (r *BookmarkRepository) Delete(ctx context.Context, h Runner, id int64) (int64, error) {
	res, err := r.builder.
		Delete(bookmarksTable).
		Where(sq.Eq{"id": id}).
		RunWith(h).
		ExecContext(ctx)
	if err != nil {
		return 0, storageErr("delete bookmark", err)
	}

	n, err := res.RowsAffected()
	return n, storageErr("delete bookmark", err)
}

func setOptional[T any](q sq.UpdateBuilder, column string, o models.Optional[T]) sq.UpdateBuilder {
	switch {
	case !o.Set:
		return q
	case o.Null:
		return q.Set(column, nil)
	default:
		return q.Set(column, o.Value)
	}
}

func scanBookmark(s sq.RowScanner) (*models.Bookmark, error) {
	var (
		b           models.Bookmark
		description sql.NullString
		rating      sql.NullInt64
	)
	if err := s.Scan(&b.ID, &b.Title, &b.URL, &description, &rating); err != nil {
		return nil, err
	}
	if description.Valid {
		b.Description = &description.String
	}
	if rating.Valid {
		v := int(rating.Int64)
		b.Rating = &v
	}
	return &b, nil
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func nullInt(i *int) sql.NullInt64 {
	if i == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*i), Valid: true}
}
