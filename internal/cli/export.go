package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// ExportCmd export --out rooms.xlsx
func ExportCmd(opts *options) *cobra.Command {
	var (
		filter domain.RoomFilter
		out    string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Xuất danh sách phòng ra Excel",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := opts.client().ExportRooms(cmd.Context(), filter)
			if err != nil {
				return err
			}
			if out == "" {
				out = fmt.Sprintf("rooms_%s.xlsx", time.Now().Format("20060102"))
			}
			if err := os.WriteFile(out, data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", out, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "exported %d bytes to %s\n", len(data), out)
			return nil
		},
	}

	cmd.Flags().StringVar(&filter.Status, "status", "", "all | available | booked | occupied")
	cmd.Flags().StringVar(&filter.Building, "building", "", "building code")
	cmd.Flags().StringVar(&filter.Search, "search", "", "search text")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default rooms_YYYYMMDD.xlsx)")
	return cmd
}
