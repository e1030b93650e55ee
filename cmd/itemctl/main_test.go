package main

import (
	"bytes"
	goerrors "errors"
	"item-lab/domain"
	"item-lab/errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRun_Usage(t *testing.T) {
	t.Setenv("ITEMS_SERVER_ADDR", "localhost:1")

	t.Run("should refuse a missing command", func(t *testing.T) {
		req := require.New(t)
		code, err := run(nil, &bytes.Buffer{})
		req.Equal(exitConfig, code)
		req.ErrorContains(err, "usage: itemctl")
	})

	t.Run("should refuse an unknown command", func(t *testing.T) {
		req := require.New(t)
		code, err := run([]string{"purge"}, &bytes.Buffer{})
		req.Equal(exitConfig, code)
		req.ErrorContains(err, `unknown command "purge"`)
	})

	t.Run("should refuse a non numeric id", func(t *testing.T) {
		req := require.New(t)
		code, err := run([]string{"delete", "abc"}, &bytes.Buffer{})
		req.Equal(exitConfig, code)
		req.EqualError(err, `invalid id "abc"`)
	})

	t.Run("should refuse add without text", func(t *testing.T) {
		req := require.New(t)
		code, _ := run([]string{"add"}, &bytes.Buffer{})
		req.Equal(exitConfig, code)
	})
}

func TestRenderItems(t *testing.T) {
	req := require.New(t)
	var out bytes.Buffer

	renderItems(&out, []domain.Item{
		{ID: 2, Text: "Walk dog", CreatedAt: time.Date(2024, 1, 1, 10, 0, 1, 0, time.UTC)},
		{ID: 1, Text: "Buy milk", CreatedAt: time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)},
	})

	table := out.String()
	req.Contains(table, "Walk dog")
	req.Contains(table, "2024-01-01 10:00:01")
	req.Less(bytes.Index(out.Bytes(), []byte("Walk dog")), bytes.Index(out.Bytes(), []byte("Buy milk")))
}

func TestRenderItems_Empty(t *testing.T) {
	req := require.New(t)
	var out bytes.Buffer
	renderItems(&out, nil)
	req.Equal("no items yet\n", out.String())
}

func TestExitCode(t *testing.T) {
	req := require.New(t)
	req.Equal(exitRefused, exitCode(&errors.NotFoundError{ID: 1}))
	req.Equal(exitRefused, exitCode(&errors.ValidationError{Field: "text", Reason: "empty text"}))
	req.Equal(exitRuntime, exitCode(&errors.ConnectionError{Target: "grpc", Err: goerrors.New("refused")}))
}
