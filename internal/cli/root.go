package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-RentalService/pkg/rentalclient"
)

const (
	envAPIURL     = "RENTAL_API_URL"
	defaultAPIURL = "http://localhost:8080"
)

// options общие флаги всех команд
type options struct {
	apiURL  string
	timeout time.Duration
	retries int
	asJSON  bool
}

// RootCmd собирает дерево команд rentalctl
func RootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "rentalctl",
		Short:         "Quản lý phòng trọ: phòng, đặt cọc, hợp đồng, nhắc hạn",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	apiURL := os.Getenv(envAPIURL)
	if apiURL == "" {
		apiURL = defaultAPIURL
	}

	root.PersistentFlags().StringVar(&opts.apiURL, "api", apiURL, "base URL of the rental API (env "+envAPIURL+")")
	root.PersistentFlags().DurationVar(&opts.timeout, "timeout", 10*time.Second, "request timeout")
	root.PersistentFlags().IntVar(&opts.retries, "retries", 2, "retries for GET requests on 5xx")
	root.PersistentFlags().BoolVar(&opts.asJSON, "json", false, "print JSON instead of a table")

	root.AddCommand(
		RoomsCmd(opts),
		BookCmd(opts),
		CancelBookingCmd(opts),
		ContractCmd(opts),
		NotificationsCmd(opts),
		ExportCmd(opts),
		MigrateCmd(),
	)

	return root
}

func (o *options) client() *rentalclient.Client {
	return rentalclient.NewClient(o.apiURL, o.timeout, o.retries)
}

// store загружает коллекцию комнат. Команды работают только с загруженным состоянием
func (o *options) store(ctx context.Context) (*rentalclient.Store, error) {
	store := rentalclient.NewStore(o.client())
	if err := store.Init(ctx); err != nil {
		return nil, fmt.Errorf("load rooms: %w", err)
	}
	return store, nil
}

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
