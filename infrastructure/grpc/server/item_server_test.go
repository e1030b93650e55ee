package server_test

import (
	"bytes"
	"context"
	goerrors "errors"
	"item-lab/domain"
	"item-lab/errors"
	"item-lab/infrastructure/grpc/client"
	"item-lab/infrastructure/grpc/server"
	"item-lab/infrastructure/storage"
	"item-lab/mocks"
	pb "item-lab/proto/items"
	"item-lab/services"
	"log/slog"
	"net"
	"strings"
	"sync"
	"testing"
	"time"

	grpc3 "github.com/mama165/sdk-go/grpc"
	"github.com/mama165/sdk-go/logs"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

// startServer serves svc over an in-memory listener and returns a connected client.
func startServer(t *testing.T, svc services.IItemService) pb.ItemServiceClient {
	t.Helper()
	return startServerWithLogger(t, svc, logs.GetLoggerFromLevel(slog.LevelDebug))
}

func startServerWithLogger(t *testing.T, svc services.IItemService, log *slog.Logger) pb.ItemServiceClient {
	t.Helper()
	lis := bufconn.Listen(1 << 20)

	s := grpc.NewServer(
		grpc.ChainUnaryInterceptor(grpc3.UnaryLoggingInterceptor(log), server.StatusInterceptor(log)),
	)
	pb.RegisterItemServiceServer(s, server.NewItemServer(log, svc))
	go func() {
		_ = s.Serve(lis)
	}()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = conn.Close()
		s.Stop()
	})
	return pb.NewItemServiceClient(conn)
}

// startStack wires a real SQLite repository behind the server.
func startStack(t *testing.T) *client.ItemClient {
	t.Helper()
	t.Setenv("TEST_DATABASE_URL", "sqlite::memory:")
	log := logs.GetLoggerFromLevel(slog.LevelDebug)

	pool := storage.NewPoolManager(storage.TestPool(), log)
	db, err := pool.Acquire(context.Background())
	require.NoError(t, err)
	require.NoError(t, storage.Migrate(context.Background(), db, log))
	t.Cleanup(func() { _ = pool.Close() })

	repo := storage.NewItemRepository(pool, log, false)
	return client.NewItemClient(startServer(t, services.NewItemService(repo, log)))
}

func TestItemServer_Scenario(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	items := startStack(t)

	list, err := items.List(ctx)
	req.NoError(err)
	req.Empty(list)

	req.NoError(items.Add(ctx, "Buy milk"))
	req.NoError(items.Add(ctx, "Walk dog"))

	list, err = items.List(ctx)
	req.NoError(err)
	req.Equal([]string{"Walk dog", "Buy milk"}, client.Texts(list))

	milk, ok := lo.Find(list, func(item domain.Item) bool { return item.Text == "Buy milk" })
	req.True(ok)
	req.NoError(items.Delete(ctx, milk.ID))

	list, err = items.List(ctx)
	req.NoError(err)
	req.Equal([]string{"Walk dog"}, client.Texts(list))

	err = items.Delete(ctx, milk.ID)
	req.ErrorIs(err, errors.ErrNotFound)
	var notFound *errors.NotFoundError
	req.True(goerrors.As(err, &notFound))
	req.Equal(milk.ID, notFound.ID)

	list, err = items.List(ctx)
	req.NoError(err)
	req.Len(list, 1)
}

func TestItemServer_ValidationLeavesNoRow(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	items := startStack(t)

	for _, text := range []string{"", "   ", strings.Repeat("x", 101)} {
		err := items.Add(ctx, text)
		req.ErrorIs(err, errors.ErrValidation)
	}

	list, err := items.List(ctx)
	req.NoError(err)
	req.Empty(list)

	req.NoError(items.Add(ctx, strings.Repeat("x", 100)))
	list, err = items.List(ctx)
	req.NoError(err)
	req.Len(list, 1)
}

func TestItemServer_CountsCharactersNotBytes(t *testing.T) {
	ctx := context.Background()
	items := startStack(t)
	text := strings.Repeat("é", 100)

	t.Run("should store 100 two-byte characters", func(t *testing.T) {
		req := require.New(t)
		req.Len(text, 200)
		req.NoError(items.Add(ctx, text))

		list, err := items.List(ctx)
		req.NoError(err)
		req.Equal([]string{text}, client.Texts(list))
	})

	t.Run("should reject 101 of them", func(t *testing.T) {
		req := require.New(t)
		err := items.Add(ctx, text+"é")
		req.ErrorIs(err, errors.ErrValidation)
		req.ErrorContains(err, services.ReasonTextTooLong)
	})
}

func TestItemServer_IDsGrow(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	items := startStack(t)

	var lastID int64
	for _, text := range []string{"one", "two", "three"} {
		req.NoError(items.Add(ctx, text))
		list, err := items.List(ctx)
		req.NoError(err)
		added, ok := lo.Find(list, func(item domain.Item) bool { return item.Text == text })
		req.True(ok)
		req.Greater(added.ID, lastID)
		lastID = added.ID
	}
}

func TestItemServer_ConcurrentAdds(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	items := startStack(t)

	const writers = 20
	var wg sync.WaitGroup
	errs := make(chan error, writers)
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- items.Add(ctx, "parallel")
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		req.NoError(err)
	}

	list, err := items.List(ctx)
	req.NoError(err)
	req.Len(list, writers)
	ids := lo.Uniq(lo.Map(list, func(item domain.Item, _ int) int64 { return item.ID }))
	req.Len(ids, writers)
}

func TestItemServer_StatusCodes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockService := mocks.NewMockIItemService(ctrl)
	rpc := startServer(t, mockService)
	ctx := context.Background()

	t.Run("should map validation errors to INVALID_ARGUMENT", func(t *testing.T) {
		req := require.New(t)
		mockService.EXPECT().AddItem(gomock.Any(), "").
			Return(&errors.ValidationError{Field: "text", Reason: services.ReasonEmptyText}).Times(1)

		_, err := rpc.AddItem(ctx, &pb.AddItemRequest{Text: ""})

		st, ok := status.FromError(err)
		req.True(ok)
		req.Equal(codes.InvalidArgument, st.Code())
		req.Equal(services.ReasonEmptyText, st.Message())
	})

	t.Run("should map not found to NOT_FOUND", func(t *testing.T) {
		req := require.New(t)
		mockService.EXPECT().DeleteItem(gomock.Any(), int64(12)).
			Return(&errors.NotFoundError{ID: 12}).Times(1)

		_, err := rpc.DeleteItem(ctx, &pb.DeleteItemRequest{Id: 12})

		req.Equal(codes.NotFound, status.Code(err))
	})

	t.Run("should map query errors to INTERNAL with the cause", func(t *testing.T) {
		req := require.New(t)
		mockService.EXPECT().GetItems(gomock.Any()).
			Return(nil, &errors.QueryError{Op: "fetch items", Err: goerrors.New("database is locked")}).Times(1)

		_, err := rpc.GetItems(ctx, &pb.GetItemsRequest{})

		st, _ := status.FromError(err)
		req.Equal(codes.Internal, st.Code())
		req.Contains(st.Message(), "database is locked")
	})

	t.Run("should map missing configuration to UNAVAILABLE", func(t *testing.T) {
		req := require.New(t)
		mockService.EXPECT().GetItems(gomock.Any()).
			Return(nil, &errors.ConfigurationError{Variable: "DATABASE_URL", Reason: "is not set"}).Times(1)

		_, err := rpc.GetItems(ctx, &pb.GetItemsRequest{})

		req.Equal(codes.Unavailable, status.Code(err))
	})

	t.Run("should format created_at on the wire", func(t *testing.T) {
		req := require.New(t)
		at := time.Date(2024, 2, 29, 23, 59, 59, 0, time.UTC)
		mockService.EXPECT().GetItems(gomock.Any()).
			Return([]domain.Item{{ID: 1, Text: "leap", CreatedAt: at}}, nil).Times(1)

		resp, err := rpc.GetItems(ctx, &pb.GetItemsRequest{})

		req.NoError(err)
		req.Len(resp.GetItems(), 1)
		req.Equal("2024-02-29 23:59:59", resp.GetItems()[0].GetCreatedAt())
	})

	t.Run("should return an empty list, not an error", func(t *testing.T) {
		req := require.New(t)
		mockService.EXPECT().GetItems(gomock.Any()).Return([]domain.Item{}, nil).Times(1)

		resp, err := rpc.GetItems(ctx, &pb.GetItemsRequest{})

		req.NoError(err)
		req.Empty(resp.GetItems())
	})
}

func TestItemServer_Logging(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockService := mocks.NewMockIItemService(ctrl)
	var buf bytes.Buffer
	rpc := startServerWithLogger(t, mockService, logs.GetLoggerFromBufferWithLogger(&buf, slog.LevelDebug))

	t.Run("should log the incoming request and how the call ended", func(t *testing.T) {
		req := require.New(t)
		mockService.EXPECT().AddItem(gomock.Any(), "Buy milk").Return(nil).Times(1)

		_, err := rpc.AddItem(context.Background(), &pb.AddItemRequest{Text: "Buy milk"})

		req.NoError(err)
		out := buf.String()
		req.Contains(out, "[gRPC] incoming request")
		req.Contains(out, pb.ItemService_AddItem_FullMethodName)
		req.Contains(out, `"code":"OK"`)
	})
}
