package server

import (
	"context"
	"item-lab/domain"
	"item-lab/errors"
	pb "item-lab/proto/items"
	"item-lab/services"
	"log/slog"

	"github.com/samber/lo"
)

type ItemServer struct {
	pb.UnimplementedItemServiceServer
	itemService services.IItemService
	log         *slog.Logger
}

// NewItemServer creates the gRPC facade of the item service.
func NewItemServer(log *slog.Logger, itemService services.IItemService) *ItemServer {
	return &ItemServer{itemService: itemService, log: log}
}

// GetItems returns the whole list, most recent first.
func (s *ItemServer) GetItems(ctx context.Context, _ *pb.GetItemsRequest) (*pb.GetItemsResponse, error) {
	items, err := s.itemService.GetItems(ctx)
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.GetItemsResponse{Items: toPbItems(items)}, nil
}

// AddItem validates and stores a new item. Rejected text comes back as INVALID_ARGUMENT.
func (s *ItemServer) AddItem(ctx context.Context, in *pb.AddItemRequest) (*pb.AddItemResponse, error) {
	if err := s.itemService.AddItem(ctx, in.GetText()); err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.AddItemResponse{}, nil
}

// DeleteItem removes an item. An unknown id comes back as NOT_FOUND, never as INTERNAL.
func (s *ItemServer) DeleteItem(ctx context.Context, in *pb.DeleteItemRequest) (*pb.DeleteItemResponse, error) {
	if err := s.itemService.DeleteItem(ctx, in.GetId()); err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.DeleteItemResponse{}, nil
}

func toPbItems(items []domain.Item) []*pb.Item {
	return lo.Map(items, func(item domain.Item, _ int) *pb.Item {
		return &pb.Item{
			Id:        item.ID,
			Text:      item.Text,
			CreatedAt: domain.FormatTimestamp(item.CreatedAt),
		}
	})
}
