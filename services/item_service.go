//go:generate go run go.uber.org/mock/mockgen -source=item_service.go -destination=../mocks/mock_item_service.go -package=mocks
package services

import (
	"context"
	"item-lab/domain"
	"item-lab/infrastructure/storage"
	"log/slog"
)

type IItemService interface {
	GetItems(ctx context.Context) ([]domain.Item, error)
	AddItem(ctx context.Context, text string) error
	DeleteItem(ctx context.Context, id int64) error
}

// ItemService is the endpoint layer shared by the gRPC and HTTP surfaces.
// It validates input before any I/O and leaves error classification to the transports.
type ItemService struct {
	itemRepository storage.IItemRepository
	log            *slog.Logger
}

func NewItemService(repo storage.IItemRepository, log *slog.Logger) IItemService {
	return &ItemService{itemRepository: repo, log: log}
}

func (s *ItemService) GetItems(ctx context.Context) ([]domain.Item, error) {
	items, err := s.itemRepository.ListItems(ctx)
	if err != nil {
		s.log.Error("Failed to list items", "error", err)
		return nil, err
	}
	return items, nil
}

// AddItem stores text unchanged once it passes validation: trimming only decides emptiness.
func (s *ItemService) AddItem(ctx context.Context, text string) error {
	if err := ValidateAddItem(AddItemRequest{Text: text}); err != nil {
		return err
	}
	if err := s.itemRepository.AddItem(ctx, text); err != nil {
		s.log.Error("Failed to add item", "error", err)
		return err
	}
	return nil
}

func (s *ItemService) DeleteItem(ctx context.Context, id int64) error {
	return s.itemRepository.DeleteItem(ctx, id)
}
