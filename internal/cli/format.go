package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

const dateLayout = "02/01/2006"

func printRooms(w io.Writer, rooms []*domain.Room) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tCODE\tSTATUS\tPRICE\tAREA\tTENANT\tEND DATE")
	for _, r := range rooms {
		tenant, end := "-", "-"
		if r.Tenant != nil {
			tenant = r.Tenant.FullName
		}
		if r.HasContractEndDate() {
			end = r.Contract.EndDate.Format(dateLayout)
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%.1f\t%s\t%s\n",
			r.ID, r.Code(), r.Status, r.Price.StringFixed(0), r.Area, tenant, end)
	}
	return tw.Flush()
}

func printRoom(w io.Writer, r *domain.Room) error {
	return printRooms(w, []*domain.Room{r})
}

func printNotifications(w io.Writer, notifications []domain.ContractNotification) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ROOM\tCODE\tTENANT\tPHONE\tEND DATE\tSTATUS\tDAYS\tSENT")
	for _, n := range notifications {
		sent := "no"
		if n.NotificationSent {
			sent = "yes"
			if n.LastNotificationDate != nil {
				sent = n.LastNotificationDate.Format(dateLayout)
			}
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%d\t%s\n",
			n.RoomID, n.RoomCode, n.TenantName, n.TenantPhone, n.ContractEndDate.Format(dateLayout),
			n.Status, n.DaysUntilExpiry, sent)
	}
	return tw.Flush()
}

func joinIDs(ids []int64) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = fmt.Sprint(id)
	}
	return strings.Join(parts, ", ")
}
