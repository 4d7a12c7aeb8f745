package cli

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-RentalService/pkg/rentalclient"
)

// BookCmd book ROOM_ID: депозит за свободную комнату
func BookCmd(opts *options) *cobra.Command {
	var (
		in      rentalclient.BookingInput
		deposit string
	)

	cmd := &cobra.Command{
		Use:   "book ROOM_ID",
		Short: "Đặt cọc phòng trống",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseRoomID(args[0])
			if err != nil {
				return err
			}
			amount, err := decimal.NewFromString(deposit)
			if err != nil {
				return fmt.Errorf("invalid deposit %q: %w", deposit, err)
			}
			in.DepositAmount = amount

			store, err := opts.store(cmd.Context())
			if err != nil {
				return err
			}
			room, err := store.Dispatch(cmd.Context(), rentalclient.BookRoom{RoomID: id, Input: in})
			if err != nil {
				return err
			}
			return output(cmd, opts, room)
		},
	}

	cmd.Flags().StringVar(&in.TenantName, "tenant", "", "tenant full name")
	cmd.Flags().StringVar(&in.Phone, "phone", "", "tenant phone")
	cmd.Flags().StringVar(&deposit, "deposit", "", "deposit amount")
	cmd.Flags().StringVar(&in.DepositDate, "date", "", "deposit date YYYY-MM-DD (default today)")
	cmd.Flags().StringVar(&in.Note, "note", "", "note")
	_ = cmd.MarkFlagRequired("tenant")
	_ = cmd.MarkFlagRequired("phone")
	_ = cmd.MarkFlagRequired("deposit")
	return cmd
}

// CancelBookingCmd cancel-booking ROOM_ID
func CancelBookingCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "cancel-booking ROOM_ID",
		Short: "Hủy đặt cọc, phòng trở lại trạng thái trống",
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
			room, err := store.Dispatch(cmd.Context(), rentalclient.CancelBooking{RoomID: id})
			if err != nil {
				return err
			}
			return output(cmd, opts, room)
		},
	}
}
