package main

import (
	"context"
	goerrors "errors"
	"fmt"
	"io"
	"item-lab/domain"
	"item-lab/errors"
	"item-lab/infrastructure/grpc/client"
	pb "item-lab/proto/items"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/Netflix/go-env"
	"github.com/gookit/color"
	"github.com/mama165/sdk-go/logs"
	"github.com/olekukonko/tablewriter"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// Exit codes for the client application.
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
	exitRefused = 3
)

const usage = `usage: itemctl <command>

commands:
  list            show every item, newest first
  add <text>      store a new item
  delete <id>     remove the item with this id`

// Config defines the client-side environment variables.
type Config struct {
	ServerAddress string        `env:"ITEMS_SERVER_ADDR,default=localhost:8080"`
	LogLevel      string        `env:"LOG_LEVEL,default=WARN"`
	Timeout       time.Duration `env:"ITEMS_TIMEOUT,default=10s"`
}

func main() {
	code, err := run(os.Args[1:], os.Stdout)
	if err != nil {
		printError(err)
	}
	os.Exit(code)
}

func run(args []string, out io.Writer) (int, error) {
	if len(args) == 0 {
		return exitConfig, goerrors.New(usage)
	}

	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, config.Timeout)
	defer cancel()

	conn, err := grpc.NewClient(config.ServerAddress, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return exitRuntime, fmt.Errorf("could not connect to server at %s: %w", config.ServerAddress, err)
	}
	defer func() {
		log.Debug("Closing connection...")
		_ = conn.Close()
	}()

	items := client.NewItemClient(pb.NewItemServiceClient(conn))

	switch args[0] {
	case "list":
		list, err := items.List(ctx)
		if err != nil {
			return exitCode(err), err
		}
		renderItems(out, list)
	case "add":
		if len(args) < 2 {
			return exitConfig, goerrors.New("usage: itemctl add <text>")
		}
		if err = items.Add(ctx, strings.Join(args[1:], " ")); err != nil {
			return exitCode(err), err
		}
		_, _ = fmt.Fprintln(out, color.Green.Render("added"))
	case "delete":
		if len(args) != 2 {
			return exitConfig, goerrors.New("usage: itemctl delete <id>")
		}
		id, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			return exitConfig, fmt.Errorf("invalid id %q", args[1])
		}
		if err = items.Delete(ctx, id); err != nil {
			return exitCode(err), err
		}
		_, _ = fmt.Fprintln(out, color.Green.Render("deleted"))
	default:
		return exitConfig, fmt.Errorf("unknown command %q\n%s", args[0], usage)
	}
	return exitOK, nil
}

func renderItems(out io.Writer, items []domain.Item) {
	if len(items) == 0 {
		_, _ = fmt.Fprintln(out, "no items yet")
		return
	}
	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"ID", "Text", "Created At"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)
	for _, item := range items {
		table.Append([]string{
			strconv.FormatInt(item.ID, 10),
			item.Text,
			domain.FormatTimestamp(item.CreatedAt),
		})
	}
	table.Render()
}

// exitCode separates requests the server refused from failures on its side or on the way.
func exitCode(err error) int {
	if errors.IsClientError(err) {
		return exitRefused
	}
	return exitRuntime
}

func printError(err error) {
	switch {
	case goerrors.Is(err, errors.ErrNotFound):
		color.Yellow.Printf("item already gone: %v\n", err)
	case goerrors.Is(err, errors.ErrValidation):
		color.Yellow.Printf("rejected: %v\n", err)
	case goerrors.Is(err, errors.ErrServerFault), goerrors.Is(err, errors.ErrConnection):
		color.Red.Printf("something broke: %v\n", err)
	default:
		_, _ = fmt.Fprintln(os.Stderr, err)
	}
}
