package client

import (
	"context"
	"fmt"
	"item-lab/domain"
	"item-lab/errors"
	pb "item-lab/proto/items"

	"github.com/samber/lo"
)

// ItemClient talks to a remote ItemService and turns status codes back into domain errors,
// so callers can tell "item already gone" (errors.ErrNotFound) from "something broke".
type ItemClient struct {
	client pb.ItemServiceClient
}

func NewItemClient(client pb.ItemServiceClient) *ItemClient {
	return &ItemClient{client: client}
}

func (c *ItemClient) List(ctx context.Context) ([]domain.Item, error) {
	resp, err := c.client.GetItems(ctx, &pb.GetItemsRequest{})
	if err != nil {
		return nil, errors.FromGRPCError(err, 0)
	}

	items := make([]domain.Item, 0, len(resp.GetItems()))
	for _, item := range resp.GetItems() {
		createdAt, err := domain.ParseTimestamp(item.GetCreatedAt())
		if err != nil {
			return nil, fmt.Errorf("item %d has malformed created_at %q: %w", item.GetId(), item.GetCreatedAt(), err)
		}
		items = append(items, domain.Item{ID: item.GetId(), Text: item.GetText(), CreatedAt: createdAt})
	}
	return items, nil
}

func (c *ItemClient) Add(ctx context.Context, text string) error {
	_, err := c.client.AddItem(ctx, &pb.AddItemRequest{Text: text})
	return errors.FromGRPCError(err, 0)
}

func (c *ItemClient) Delete(ctx context.Context, id int64) error {
	_, err := c.client.DeleteItem(ctx, &pb.DeleteItemRequest{Id: id})
	return errors.FromGRPCError(err, id)
}

// Texts is a convenience for displays that only need the item texts in list order.
func Texts(items []domain.Item) []string {
	return lo.Map(items, func(item domain.Item, _ int) string { return item.Text })
}
