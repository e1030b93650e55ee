//go:generate go run go.uber.org/mock/mockgen -source=item_repository.go -destination=../../mocks/mock_item_repository.go -package=mocks
package storage

import (
	"context"
	"fmt"
	"item-lab/domain"
	"item-lab/errors"
	"log/slog"
	"time"
)

const (
	// id breaks ties between items created within the same second, newest first.
	listItemsQuery  = `SELECT id, text, created_at FROM items ORDER BY created_at DESC, id DESC`
	insertItemQuery = `INSERT INTO items (text, created_at) VALUES (?, ?)`
	deleteItemQuery = `DELETE FROM items WHERE id = ?`
)

type IItemRepository interface {
	ListItems(ctx context.Context) ([]domain.Item, error)
	AddItem(ctx context.Context, text string) error
	DeleteItem(ctx context.Context, id int64) error
}

// ItemRepository runs exactly one autocommitted statement per call against the items table.
// It does not validate text, callers that skip the service layer must do it themselves.
type ItemRepository struct {
	pool PoolProvider
	log  *slog.Logger
	// strictTimestamps fails the read on an unparsable created_at instead of substituting now.
	strictTimestamps bool
	clock            func() time.Time
}

func NewItemRepository(pool PoolProvider, log *slog.Logger, strictTimestamps bool) *ItemRepository {
	return &ItemRepository{
		pool:             pool,
		log:              log,
		strictTimestamps: strictTimestamps,
		clock:            domain.Now,
	}
}

type itemRow struct {
	ID        int64  `db:"id"`
	Text      string `db:"text"`
	CreatedAt string `db:"created_at"`
}

// ListItems returns every item, most recent first. An empty table gives an empty slice.
func (r *ItemRepository) ListItems(ctx context.Context) ([]domain.Item, error) {
	db, err := r.pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}

	var rows []itemRow
	if err = db.SelectContext(ctx, &rows, listItemsQuery); err != nil {
		return nil, &errors.QueryError{Op: "fetch items", Err: err}
	}

	items := make([]domain.Item, 0, len(rows))
	for _, row := range rows {
		createdAt, err := domain.ParseTimestamp(row.CreatedAt)
		if err != nil {
			if r.strictTimestamps {
				return nil, &errors.QueryError{
					Op:  fmt.Sprintf("parse created_at of item %d", row.ID),
					Err: err,
				}
			}
			createdAt = r.clock()
			r.log.Warn("Unparsable created_at replaced by current time",
				"item_id", row.ID, "created_at", row.CreatedAt)
		}
		items = append(items, domain.Item{ID: row.ID, Text: row.Text, CreatedAt: createdAt})
	}
	r.log.Debug("Items fetched", "count", len(items))
	return items, nil
}

// AddItem stores text as given with the current UTC second as created_at.
func (r *ItemRepository) AddItem(ctx context.Context, text string) error {
	db, err := r.pool.Acquire(ctx)
	if err != nil {
		return err
	}

	res, err := db.ExecContext(ctx, insertItemQuery, text, domain.FormatTimestamp(r.clock()))
	if err != nil {
		return &errors.QueryError{Op: "add item", Err: err}
	}
	if id, err := res.LastInsertId(); err == nil {
		r.log.Debug("Item added", "item_id", id)
	}
	return nil
}

// DeleteItem removes the item with the given id.
// Zero affected rows is a NotFoundError, more than one means the id is no longer unique.
func (r *ItemRepository) DeleteItem(ctx context.Context, id int64) error {
	db, err := r.pool.Acquire(ctx)
	if err != nil {
		return err
	}

	res, err := db.ExecContext(ctx, deleteItemQuery, id)
	if err != nil {
		return &errors.QueryError{Op: "delete item", Err: err}
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return &errors.QueryError{Op: "delete item", Err: err}
	}

	switch {
	case affected == 0:
		return &errors.NotFoundError{ID: id}
	case affected > 1:
		r.log.Error("Delete matched several rows", "item_id", id, "rows", affected)
		return &errors.QueryError{
			Op:  "delete item",
			Err: fmt.Errorf("%w: %d rows matched id %d", errors.ErrIntegrity, affected, id),
		}
	}
	r.log.Debug("Item deleted", "item_id", id)
	return nil
}
