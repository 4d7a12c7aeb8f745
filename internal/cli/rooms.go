package cli

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/pkg/rentalclient"
)

// RoomsCmd rooms list|create|delete
func RoomsCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rooms",
		Short: "Danh sách và quản lý phòng",
	}
	cmd.AddCommand(roomsListCmd(opts), roomsCreateCmd(opts), roomsDeleteCmd(opts))
	return cmd
}

func roomsListCmd(opts *options) *cobra.Command {
	var filter domain.RoomFilter

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Liệt kê phòng theo bộ lọc",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if filter.Status != "" && filter.Status != domain.FilterAll && !domain.RoomStatus(filter.Status).IsValid() {
				return fmt.Errorf("unknown status %q, allowed: all, available, booked, occupied", filter.Status)
			}

			store, err := opts.store(cmd.Context())
			if err != nil {
				return err
			}

			rooms := store.Visible(filter)
			if opts.asJSON {
				return printJSON(cmd.OutOrStdout(), rooms)
			}
			if err := printRooms(cmd.OutOrStdout(), rooms); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "\n%d / %d rooms\n", len(rooms), len(store.Rooms()))
			return nil
		},
	}

	cmd.Flags().StringVar(&filter.Status, "status", "", "all | available | booked | occupied")
	cmd.Flags().StringVar(&filter.Building, "building", "", "building code")
	cmd.Flags().StringVar(&filter.Search, "search", "", "search by number, code, tenant or description")
	return cmd
}

func roomsCreateCmd(opts *options) *cobra.Command {
	var (
		in    rentalclient.RoomInput
		price string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Thêm phòng trống",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := decimal.NewFromString(price)
			if err != nil {
				return fmt.Errorf("invalid price %q: %w", price, err)
			}
			in.Price = p

			store, err := opts.store(cmd.Context())
			if err != nil {
				return err
			}
			room, err := store.Dispatch(cmd.Context(), rentalclient.AddRoom{Input: in})
			if err != nil {
				return err
			}
			return output(cmd, opts, room)
		},
	}

	cmd.Flags().StringVar(&in.Number, "number", "", "room number")
	cmd.Flags().StringVar(&in.Building, "building", "", "building code")
	cmd.Flags().Float64Var(&in.Area, "area", 0, "area, m2")
	cmd.Flags().StringVar(&price, "price", "", "monthly rent")
	cmd.Flags().StringSliceVar(&in.Amenities, "amenity", nil, "amenity (repeatable)")
	cmd.Flags().StringVar(&in.Description, "description", "", "description")
	_ = cmd.MarkFlagRequired("number")
	_ = cmd.MarkFlagRequired("building")
	_ = cmd.MarkFlagRequired("price")
	return cmd
}

func roomsDeleteCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "delete ROOM_ID",
		Short: "Xóa phòng (không áp dụng cho phòng đang thuê)",
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
			if _, err := store.Dispatch(cmd.Context(), rentalclient.DeleteRoom{RoomID: id}); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "room %d deleted\n", id)
			return nil
		},
	}
}

func parseRoomID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid room id %q", arg)
	}
	return id, nil
}

func output(cmd *cobra.Command, opts *options, room *domain.Room) error {
	if opts.asJSON {
		return printJSON(cmd.OutOrStdout(), room)
	}
	return printRoom(cmd.OutOrStdout(), room)
}
