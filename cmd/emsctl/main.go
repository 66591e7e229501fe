package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/httplog/v3"

	"github.com/mdarwaz0786/ems-attendance-client/internal/config"
	domainAttendance "github.com/mdarwaz0786/ems-attendance-client/internal/domain/attendance"
	domainAuth "github.com/mdarwaz0786/ems-attendance-client/internal/domain/auth"
	domainLeave "github.com/mdarwaz0786/ems-attendance-client/internal/domain/leave"
	domainOffice "github.com/mdarwaz0786/ems-attendance-client/internal/domain/office"
	domainProject "github.com/mdarwaz0786/ems-attendance-client/internal/domain/project"
	"github.com/mdarwaz0786/ems-attendance-client/internal/pkg/api"
	"github.com/mdarwaz0786/ems-attendance-client/internal/pkg/clock"
	"github.com/mdarwaz0786/ems-attendance-client/internal/pkg/location"
	"github.com/mdarwaz0786/ems-attendance-client/internal/pkg/session"
	attendanceService "github.com/mdarwaz0786/ems-attendance-client/internal/service/attendance"
	authService "github.com/mdarwaz0786/ems-attendance-client/internal/service/auth"
	"github.com/mdarwaz0786/ems-attendance-client/internal/service/geofence"
	leaveService "github.com/mdarwaz0786/ems-attendance-client/internal/service/leave"
	officeService "github.com/mdarwaz0786/ems-attendance-client/internal/service/office"
	projectService "github.com/mdarwaz0786/ems-attendance-client/internal/service/project"
	"github.com/mdarwaz0786/ems-attendance-client/internal/service/punch"
	salaryService "github.com/mdarwaz0786/ems-attendance-client/internal/service/salary"
)

const usage = `emsctl - EMS attendance client

Usage:
  emsctl login -email <email> -password <password>
  emsctl logout
  emsctl punch
  emsctl status
  emsctl offices list
  emsctl offices add -name <name> -lat <lat> -lng <lng>
  emsctl offices remove -id <id>
  emsctl leave apply -type <type> -from <date> -to <date> [-reason <text>]
  emsctl leave list
  emsctl compoff -date <date> [-reason <text>]
  emsctl salary -month <YYYY-MM>
  emsctl projects
  emsctl tickets [-set <id>=<status>]
`

// app is the wired dependency graph for one invocation.
type app struct {
	cfg    *config.Config
	logger *slog.Logger
	store  *session.Store
	sess   *session.Session
	client *api.Client
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	args := os.Args[1:]
	if len(args) == 0 {
		fmt.Fprint(os.Stderr, usage)
		return errors.New("no command given")
	}

	a := &app{
		cfg:    cfg,
		logger: logger,
		store:  session.NewStore(cfg.App.TokenPath),
	}

	switch args[0] {
	case "login":
		return a.login(ctx, args[1:])
	case "logout":
		return a.logout(ctx)
	case "punch":
		return a.punch(ctx)
	case "status":
		return a.status(ctx)
	case "offices":
		return a.offices(ctx, args[1:])
	case "leave":
		return a.leave(ctx, args[1:])
	case "compoff":
		return a.compOff(ctx, args[1:])
	case "salary":
		return a.salary(ctx, args[1:])
	case "projects":
		return a.projects(ctx)
	case "tickets":
		return a.tickets(ctx, args[1:])
	case "help", "-h", "--help":
		fmt.Print(usage)
		return nil
	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("unknown command: %s", args[0])
	}
}

func newLogger(cfg *config.Config) *slog.Logger {
	level := slog.LevelInfo
	switch cfg.App.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	logFormat := httplog.SchemaECS.Concise(cfg.App.Env != "development")
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "emsctl"),
		slog.String("env", cfg.App.Env),
	)
}

// requireSession loads the saved session and builds the API client.
func (a *app) requireSession() error {
	sess, err := a.store.Load()
	if err != nil {
		return err
	}
	a.sess = sess
	a.client = api.NewClient(a.cfg.API.BaseURL, a.cfg.API.Timeout, sess, a.logger)
	return nil
}

func (a *app) newProvider() location.Provider {
	if a.cfg.Location.Provider == "static" {
		return location.NewStatic(a.cfg.Location.Latitude, a.cfg.Location.Longitude)
	}
	return location.NewCommand(a.cfg.Location.Command)
}

func (a *app) login(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	if err := fs.Parse(args); err != nil {
		return err
	}

	client := api.NewClient(a.cfg.API.BaseURL, a.cfg.API.Timeout, nil, a.logger)
	svc := authService.NewService(client, a.store, a.logger)

	resp, err := svc.Login(ctx, domainAuth.LoginRequest{Email: *email, Password: *password})
	if err != nil {
		return err
	}
	fmt.Printf("Logged in as %s (%s)\n", resp.Employee.Name, resp.Employee.ID)
	return nil
}

func (a *app) logout(ctx context.Context) error {
	client := api.NewClient(a.cfg.API.BaseURL, a.cfg.API.Timeout, nil, a.logger)
	if err := authService.NewService(client, a.store, a.logger).Logout(ctx); err != nil {
		return err
	}
	fmt.Println("Logged out")
	return nil
}

func (a *app) punch(ctx context.Context) error {
	if err := a.requireSession(); err != nil {
		return err
	}

	attSvc := attendanceService.NewService(a.client, a.logger)
	offSvc := officeService.NewService(a.client, a.logger)
	eval := geofence.NewEvaluator(offSvc, a.cfg.Punch.RadiusMeters, a.logger)
	ist := clock.New(a.cfg.Punch.Timezone)

	coordinator := punch.NewCoordinator(attSvc, eval, a.newProvider(), ist, location.Options{
		HighAccuracy: true,
		Timeout:      a.cfg.Location.Timeout,
		MaxAge:       a.cfg.Location.MaxAge,
	}, a.logger)

	// The caller owns today's record; the coordinator only decides.
	today, err := attSvc.Today(ctx, a.sess.EmployeeID, ist.Today())
	if err != nil {
		return err
	}

	res, err := coordinator.Punch(ctx, a.sess.EmployeeID, today)
	if err != nil {
		return errors.New(punch.UserMessage(err))
	}

	if res.NeedsRefresh {
		today, err = attSvc.Today(ctx, a.sess.EmployeeID, ist.Today())
		if err != nil {
			return err
		}
	}
	fmt.Printf("%s recorded. Attendance is now %s.\n", res.Action, domainAttendance.StateOf(today))
	return nil
}

func (a *app) status(ctx context.Context) error {
	if err := a.requireSession(); err != nil {
		return err
	}

	attSvc := attendanceService.NewService(a.client, a.logger)
	ist := clock.New(a.cfg.Punch.Timezone)

	today, err := attSvc.Today(ctx, a.sess.EmployeeID, ist.Today())
	if err != nil {
		return err
	}

	fmt.Printf("Date: %s\nState: %s\n", ist.Today(), domainAttendance.StateOf(today))
	if today != nil {
		if today.PunchInTime != nil {
			fmt.Printf("Punched in:  %s\n", *today.PunchInTime)
		}
		if today.PunchOutTime != nil {
			fmt.Printf("Punched out: %s\n", *today.PunchOutTime)
		}
	}
	return nil
}

func (a *app) offices(ctx context.Context, args []string) error {
	if err := a.requireSession(); err != nil {
		return err
	}
	svc := officeService.NewService(a.client, a.logger)

	sub := "list"
	if len(args) > 0 {
		sub = args[0]
		args = args[1:]
	}

	switch sub {
	case "list":
		offices, err := svc.All(ctx)
		if err != nil {
			return err
		}
		for _, o := range offices {
			fmt.Printf("%s\t%s\t(%s, %s)\n", o.ID, o.Name, o.Latitude, o.Longitude)
		}
		return nil
	case "add":
		fs := flag.NewFlagSet("offices add", flag.ContinueOnError)
		name := fs.String("name", "", "office name")
		lat := fs.String("lat", "", "latitude")
		lng := fs.String("lng", "", "longitude")
		if err := fs.Parse(args); err != nil {
			return err
		}
		return svc.Create(ctx, domainOffice.UpsertRequest{Name: *name, Latitude: *lat, Longitude: *lng})
	case "remove":
		fs := flag.NewFlagSet("offices remove", flag.ContinueOnError)
		id := fs.String("id", "", "office id")
		if err := fs.Parse(args); err != nil {
			return err
		}
		return svc.Delete(ctx, *id)
	default:
		return fmt.Errorf("unknown offices subcommand: %s", sub)
	}
}

func (a *app) leave(ctx context.Context, args []string) error {
	if err := a.requireSession(); err != nil {
		return err
	}
	svc := leaveService.NewService(a.client, a.logger)

	sub := "list"
	if len(args) > 0 {
		sub = args[0]
		args = args[1:]
	}

	switch sub {
	case "apply":
		fs := flag.NewFlagSet("leave apply", flag.ContinueOnError)
		leaveType := fs.String("type", "", "leave type")
		from := fs.String("from", "", "start date YYYY-MM-DD")
		to := fs.String("to", "", "end date YYYY-MM-DD")
		reason := fs.String("reason", "", "reason")
		if err := fs.Parse(args); err != nil {
			return err
		}
		return svc.Apply(ctx, domainLeave.ApplyRequest{
			Employee:  a.sess.EmployeeID,
			LeaveType: *leaveType,
			StartDate: *from,
			EndDate:   *to,
			Reason:    *reason,
		})
	case "list":
		leaves, err := svc.List(ctx, a.sess.EmployeeID)
		if err != nil {
			return err
		}
		for _, l := range leaves {
			fmt.Printf("%s\t%s\t%s..%s\t%s\n", l.ID, l.LeaveType, l.StartDate, l.EndDate, l.Status)
		}
		return nil
	default:
		return fmt.Errorf("unknown leave subcommand: %s", sub)
	}
}

func (a *app) compOff(ctx context.Context, args []string) error {
	if err := a.requireSession(); err != nil {
		return err
	}
	fs := flag.NewFlagSet("compoff", flag.ContinueOnError)
	date := fs.String("date", "", "worked date YYYY-MM-DD")
	reason := fs.String("reason", "", "reason")
	if err := fs.Parse(args); err != nil {
		return err
	}

	svc := leaveService.NewService(a.client, a.logger)
	return svc.RequestCompOff(ctx, domainLeave.CompOffRequest{
		Employee:   a.sess.EmployeeID,
		WorkedDate: *date,
		Reason:     *reason,
	})
}

func (a *app) salary(ctx context.Context, args []string) error {
	if err := a.requireSession(); err != nil {
		return err
	}
	fs := flag.NewFlagSet("salary", flag.ContinueOnError)
	month := fs.String("month", "", "month YYYY-MM")
	if err := fs.Parse(args); err != nil {
		return err
	}

	svc := salaryService.NewService(a.client, a.logger)
	slip, err := svc.Slip(ctx, a.sess.EmployeeID, *month)
	if err != nil {
		return err
	}
	if slip == nil {
		fmt.Println("No salary slip generated for", *month)
		return nil
	}
	fmt.Printf("Month: %s\nGross: %.2f\nDeductions: %.2f\nNet: %.2f\nPresent days: %d\n",
		slip.Month, slip.GrossSalary, slip.Deductions, slip.NetSalary, slip.PresentDays)
	if slip.SlipURL != "" {
		fmt.Println("Slip:", slip.SlipURL)
	}
	return nil
}

func (a *app) projects(ctx context.Context) error {
	if err := a.requireSession(); err != nil {
		return err
	}
	svc := projectService.NewService(a.client, a.logger)

	projects, err := svc.Projects(ctx, a.sess.EmployeeID)
	if err != nil {
		return err
	}
	for _, p := range projects {
		fmt.Printf("%s\t%s\t%s\n", p.ID, p.Name, p.Status)
	}
	return nil
}

func (a *app) tickets(ctx context.Context, args []string) error {
	if err := a.requireSession(); err != nil {
		return err
	}
	fs := flag.NewFlagSet("tickets", flag.ContinueOnError)
	set := fs.String("set", "", "update a ticket, formatted <id>=<status>")
	if err := fs.Parse(args); err != nil {
		return err
	}

	svc := projectService.NewService(a.client, a.logger)

	if *set != "" {
		id, status, ok := splitPair(*set)
		if !ok {
			return errors.New("-set expects <id>=<status>")
		}
		return svc.UpdateTicketStatus(ctx, id, domainProject.TicketStatusUpdate{Status: status})
	}

	tickets, err := svc.Tickets(ctx, a.sess.EmployeeID)
	if err != nil {
		return err
	}
	for _, tk := range tickets {
		fmt.Printf("%s\t%s\t%s\n", tk.ID, tk.Title, tk.Status)
	}
	return nil
}

func splitPair(s string) (string, string, bool) {
	for i := 0; i < len(s); i++ {
		if s[i] == '=' {
			return s[:i], s[i+1:], s[:i] != "" && s[i+1:] != ""
		}
	}
	return "", "", false
}
