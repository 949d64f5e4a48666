package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/dmitrijs2005/netflex/internal/client/client"
	"github.com/dmitrijs2005/netflex/internal/client/models"
)

func (a *App) renderUsers(users []models.User) {
	if len(users) == 0 {
		fmt.Fprintln(a.out, "No users available")
		return
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tUsername\tFullname")
	for _, u := range users {
		fmt.Fprintln(tw, u.String())
	}
	_ = tw.Flush()
}

func (a *App) renderDetails(u models.User) {
	fmt.Fprintln(a.out, "User Details")
	fmt.Fprintf(a.out, "  ID:       %d\n", u.ID)
	fmt.Fprintf(a.out, "  Username: %s\n", u.Username)
	fmt.Fprintf(a.out, "  Fullname: %s\n", u.Fullname)
}

func (a *App) renderStats(stats []client.RequestStat) {
	if len(stats) == 0 {
		fmt.Fprintln(a.out, "No requests made yet")
		return
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "Method\tCode\tCount")
	for _, s := range stats {
		fmt.Fprintf(tw, "%s\t%s\t%.0f\n", s.Method, s.Code, s.Count)
	}
	_ = tw.Flush()
}
