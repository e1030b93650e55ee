package e2e

import (
	"context"
	"item-lab/domain"
	"item-lab/errors"
	"item-lab/infrastructure/grpc/client"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/stretchr/testify/suite"
)

type testItemsSuite struct {
	BaseGrpcSuite
}

func TestItemsSuite(t *testing.T) {
	suite.Run(t, &testItemsSuite{})
}

func (s *testItemsSuite) TestAddListDelete() {
	marker := uuid.NewString()
	first, second := "e2e first "+marker, "e2e second "+marker

	s.WithItems("Add two items", func(ctx context.Context, items *client.ItemClient) {
		s.Require().NoError(items.Add(ctx, first))
		s.Require().NoError(items.Add(ctx, second))
	})

	var ids []int64
	s.WithItems("List shows the newest first", func(ctx context.Context, items *client.ItemClient) {
		list, err := items.List(ctx)
		s.Require().NoError(err)

		ours := lo.Filter(list, func(item domain.Item, _ int) bool { return strings.HasSuffix(item.Text, marker) })
		s.Require().Len(ours, 2)
		s.Equal(second, ours[0].Text)
		s.Equal(first, ours[1].Text)
		ids = lo.Map(ours, func(item domain.Item, _ int) int64 { return item.ID })
	})

	s.WithItems("Delete both, then again", func(ctx context.Context, items *client.ItemClient) {
		for _, id := range ids {
			s.Require().NoError(items.Delete(ctx, id))
		}
		err := items.Delete(ctx, ids[0])
		s.ErrorIs(err, errors.ErrNotFound)
	})
}

func (s *testItemsSuite) TestRejectsInvalidText() {
	s.WithItems("Blank and oversized texts", func(ctx context.Context, items *client.ItemClient) {
		err := items.Add(ctx, "   ")
		s.ErrorIs(err, errors.ErrValidation)
		s.EqualError(err, "empty text")

		err = items.Add(ctx, strings.Repeat("x", domain.MaxTextLength+1))
		s.ErrorIs(err, errors.ErrValidation)
		s.EqualError(err, "text too long")
	})
}
