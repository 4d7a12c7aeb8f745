package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-RentalService/pkg/rentalclient"
)

// NotificationsCmd notifications list|mark-sent|remind
func NotificationsCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notifications",
		Short: "Hợp đồng sắp hết hạn và đã hết hạn",
	}
	cmd.AddCommand(notificationsListCmd(opts), notificationsMarkSentCmd(opts), notificationsRemindCmd(opts))
	return cmd
}

func notificationsListCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Danh sách thông báo",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := opts.store(cmd.Context())
			if err != nil {
				return err
			}
			notifications, err := store.Notifications(time.Now())
			if err != nil {
				return err
			}
			if opts.asJSON {
				return printJSON(cmd.OutOrStdout(), notifications)
			}
			return printNotifications(cmd.OutOrStdout(), notifications)
		},
	}
}

func notificationsMarkSentCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "mark-sent ROOM_ID",
		Short: "Đánh dấu đã nhắc người thuê",
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
			room, err := store.Dispatch(cmd.Context(), rentalclient.MarkNotificationSent{RoomID: id})
			if err != nil {
				return err
			}
			return output(cmd, opts, room)
		},
	}
}

func notificationsRemindCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "remind [ROOM_ID...]",
		Short: "Gửi tin nhắn nhắc hạn qua cổng SMS/Zalo",
		RunE: func(cmd *cobra.Command, args []string) error {
			ids := make([]int64, 0, len(args))
			for _, a := range args {
				id, err := strconv.ParseInt(a, 10, 64)
				if err != nil {
					return fmt.Errorf("invalid room id %q", a)
				}
				ids = append(ids, id)
			}

			report, err := opts.client().SendReminders(cmd.Context(), ids)
			if err != nil {
				return err
			}
			if opts.asJSON {
				return printJSON(cmd.OutOrStdout(), report)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "sent: %d [%s]\n", len(report.Sent), joinIDs(report.Sent))
			fmt.Fprintf(out, "skipped: %d [%s]\n", len(report.Skipped), joinIDs(report.Skipped))
			fmt.Fprintf(out, "failed: %d\n", len(report.Failed))
			for _, f := range report.Failed {
				fmt.Fprintf(out, "  room %d: %s\n", f.RoomID, f.Reason)
			}
			return nil
		},
	}
}
