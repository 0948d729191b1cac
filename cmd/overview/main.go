package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/m04kA/SMC-BusSeating/internal/config"
	"github.com/m04kA/SMC-BusSeating/internal/domain"
	"github.com/m04kA/SMC-BusSeating/internal/integrations/routesapi"
	"github.com/m04kA/SMC-BusSeating/internal/overview"
	"github.com/m04kA/SMC-BusSeating/internal/session"
	"github.com/m04kA/SMC-BusSeating/pkg/logger"
)

func main() {
	configPath := flag.String("config", "config.toml", "path to config file")
	email := flag.String("email", "", "staff email")
	dob := flag.String("dob", "", "date of birth, YYYY-MM-DD")
	route := flag.Int("route", 0, "route to follow (0 - overview only)")
	list := flag.Bool("list", false, "print routes and exit")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	client := routesapi.NewClient(cfg.Client.BaseURL, time.Duration(cfg.Client.Timeout)*time.Second, log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sess, err := session.Login(ctx, client, *email, *dob, domain.RoleStaff)
	if err != nil {
		log.Fatal("Login failed: %v", err)
	}
	defer sess.Close()
	if !sess.IsStaff() {
		log.Fatal("Overview requires a staff account, got role=%s", sess.Role)
	}
	log.Info("Logged in as %s", sess.Name)

	if *list {
		routes, err := client.ListRoutes(ctx)
		if err != nil {
			log.Fatal("List routes failed: %v", err)
		}
		renderRoutes(os.Stdout, routes)
		return
	}

	var printMu sync.Mutex
	controller := overview.NewController(client, overview.Options{
		PollInterval:     cfg.Client.PollInterval(),
		RecentAttendance: cfg.Seating.RecentAttendance,
		OnChange: func(v overview.View) {
			if !sess.Active() {
				return
			}
			printMu.Lock()
			defer printMu.Unlock()
			render(os.Stdout, v)
		},
	}, log)
	_ = sess.Attach(controller.Close)

	if err := controller.LoadOverview(ctx); err != nil {
		log.Error("Overview failed: %v", err)
	}

	if *route > 0 {
		if err := controller.Select(ctx, *route); err != nil && !errors.Is(err, overview.ErrSuperseded) {
			log.Error("Route %d failed: %v", *route, err)
		}
	}

	<-ctx.Done()
	log.Info("Console stopped")
}

func render(w io.Writer, v overview.View) {
	fmt.Fprintln(w, strings.Repeat("=", 72))

	switch v.Overview.Status {
	case overview.StatusLoading:
		fmt.Fprintln(w, "Loading overview...")
	case overview.StatusFailed:
		fmt.Fprintf(w, "Overview error: %s\n", v.Overview.Error)
	case overview.StatusReady:
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "ROUTE\tBUS\tDRIVER\tCAPACITY\tSTUDENTS\tBOYS\tGIRLS\tSTAFF\tOCC%")
		for _, row := range v.Overview.Rows {
			fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%d\t%d\t%d\t%d\t%.0f\n",
				row.Number, row.BusNumber, row.Driver, row.Capacity,
				row.StudentsTotal, row.Boys, row.Girls, row.Staff, row.OccupancyRate())
		}
		_ = tw.Flush()

		f := v.Overview.Fleet
		fmt.Fprintf(w, "Fleet: buses=%d students=%d boys=%d girls=%d staff=%d\n",
			f.Buses, f.Students, f.Boys, f.Girls, f.Staff)
	}

	switch v.Detail.Status {
	case overview.StatusLoading:
		fmt.Fprintf(w, "\nLoading route %d...\n", v.Detail.RouteNumber)
	case overview.StatusFailed:
		fmt.Fprintf(w, "\nRoute %d error: %s\n", v.Detail.RouteNumber, v.Detail.Error)
	case overview.StatusReady:
		d := v.Detail.Detail
		fmt.Fprintf(w, "\nRoute %d, bus %s, driver %s: %d staff, %d students\n",
			d.Number, d.BusNumber, d.Driver, len(d.Staff), len(d.Students))
	}

	if v.Attendance.Status == overview.StatusIdle {
		return
	}
	fmt.Fprintln(w, "Recent attendance:")
	if len(v.Attendance.Records) == 0 {
		fmt.Fprintln(w, "  No attendance submitted yet")
	}
	for _, rec := range v.Attendance.Records {
		fmt.Fprintf(w, "  %s  %d\n", rec.DateString(), rec.Count)
	}
}

func renderRoutes(w io.Writer, routes []domain.Route) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ROUTE\tBUS\tDRIVER\tCAPACITY")
	for _, r := range routes {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d\n", r.Number, r.BusNumber, r.Driver, r.Capacity)
	}
	_ = tw.Flush()
}
