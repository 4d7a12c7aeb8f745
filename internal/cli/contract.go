package cli

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-RentalService/pkg/rentalclient"
)

// ContractCmd contract create|extend|end|print
func ContractCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "contract",
		Short: "Hợp đồng thuê phòng",
	}
	cmd.AddCommand(
		contractCreateCmd(opts),
		contractExtendCmd(opts),
		contractEndCmd(opts),
		contractPrintCmd(opts),
	)
	return cmd
}

func contractCreateCmd(opts *options) *cobra.Command {
	var (
		in      rentalclient.ContractInput
		deposit string
	)

	cmd := &cobra.Command{
		Use:   "create ROOM_ID",
		Short: "Lập hợp đồng (phòng trống hoặc đã đặt cọc)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseRoomID(args[0])
			if err != nil {
				return err
			}
			if in.EndDate == "" && in.DurationMonths == 0 {
				return fmt.Errorf("either --end or --months is required")
			}
			// Без --deposit сервер переносит депозит брони
			if deposit != "" {
				amount, err := decimal.NewFromString(deposit)
				if err != nil {
					return fmt.Errorf("invalid deposit %q: %w", deposit, err)
				}
				in.Deposit = &amount
			}

			store, err := opts.store(cmd.Context())
			if err != nil {
				return err
			}
			room, err := store.Dispatch(cmd.Context(), rentalclient.CreateContract{RoomID: id, Input: in})
			if err != nil {
				return err
			}
			return output(cmd, opts, room)
		},
	}

	cmd.Flags().StringVar(&in.Tenant, "tenant", "", "tenant full name")
	cmd.Flags().StringVar(&in.TenantPhone, "phone", "", "tenant phone")
	cmd.Flags().StringVar(&in.TenantEmail, "email", "", "tenant email")
	cmd.Flags().StringVar(&in.TenantIDCard, "id-card", "", "tenant CCCD number")
	cmd.Flags().StringVar(&in.TenantBirth, "birth-date", "", "tenant birth date YYYY-MM-DD")
	cmd.Flags().StringVar(&in.TenantHometown, "hometown", "", "tenant hometown")
	cmd.Flags().StringVar(&in.StartDate, "start", "", "contract start YYYY-MM-DD (default today)")
	cmd.Flags().StringVar(&in.EndDate, "end", "", "contract end YYYY-MM-DD")
	cmd.Flags().IntVar(&in.DurationMonths, "months", 0, "contract duration in months, used when --end is empty")
	cmd.Flags().StringVar(&deposit, "deposit", "", "deposit amount (default: booking deposit)")
	_ = cmd.MarkFlagRequired("tenant")
	_ = cmd.MarkFlagRequired("phone")
	return cmd
}

func contractExtendCmd(opts *options) *cobra.Command {
	var months int

	cmd := &cobra.Command{
		Use:   "extend ROOM_ID",
		Short: "Gia hạn hợp đồng",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseRoomID(args[0])
			if err != nil {
				return err
			}
			store, err := opts.store(cmd.Context())
			if err != nil {
				return err
			}
			room, err := store.Dispatch(cmd.Context(), rentalclient.ExtendContract{RoomID: id, Months: months})
			if err != nil {
				return err
			}
			return output(cmd, opts, room)
		},
	}

	cmd.Flags().IntVar(&months, "months", 12, "months to add")
	return cmd
}

func contractEndCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "end ROOM_ID",
		Short: "Kết thúc hợp đồng, trả phòng",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseRoomID(args[0])
			if err != nil {
				return err
			}
			store, err := opts.store(cmd.Context())
			if err != nil {
				return err
			}
			room, err := store.Dispatch(cmd.Context(), rentalclient.EndContract{RoomID: id})
			if err != nil {
				return err
			}
			return output(cmd, opts, room)
		},
	}
}

func contractPrintCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "print ROOM_ID",
		Short: "Dữ liệu hợp đồng để in",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseRoomID(args[0])
			if err != nil {
				return err
			}
			contract, err := opts.client().PrintContract(cmd.Context(), id)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), contract)
		},
	}
}
