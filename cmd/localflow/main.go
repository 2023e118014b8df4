// Command localflow is the terminal dashboard for the LocalFlow expense
// tracker. It talks to the REST API when one is reachable and degrades to a
// built-in demo dataset when it is not, so every view keeps working offline.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/localflow/localflow-backend/internal/amount"
	"github.com/localflow/localflow-backend/internal/analytics"
	"github.com/localflow/localflow-backend/internal/client"
	"github.com/localflow/localflow-backend/internal/config"
	"github.com/localflow/localflow-backend/internal/daterange"
	"github.com/localflow/localflow-backend/internal/domain"
	"github.com/localflow/localflow-backend/internal/export"
	"github.com/localflow/localflow-backend/internal/prefs"
	"github.com/localflow/localflow-backend/internal/store"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const usage = `Usage: localflow <command> [flags]

Commands:
  dashboard   summary stats, category breakdown and daily trend
  list        print all transactions
  add         record a transaction
  delete      remove a transaction by id
  export      write the transaction list as CSV
  year        yearly highlights
  register    create an account
  login       sign in and remember the username
  logout      forget the remembered username
  prefs       show or change theme and language
`

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	cfg, err := config.LoadClient()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	prefsStore := prefs.NewFileStore(cfg.PrefsPath)
	preferences, err := prefsStore.Load()
	if err != nil {
		log.Warn().Err(err).Msg("Could not read preferences, using defaults")
		preferences = prefs.Defaults()
	}

	username := cfg.Username
	if username == "" {
		username = preferences.Username
	}

	app := &app{
		client:     client.New(cfg.APIBaseURL, username),
		prefsStore: prefsStore,
		prefs:      preferences,
		username:   username,
	}
	app.store = store.New(app.client)

	ctx := context.Background()

	var cmdErr error
	switch os.Args[1] {
	case "dashboard":
		cmdErr = app.dashboard(ctx, os.Args[2:])
	case "list":
		cmdErr = app.list(ctx)
	case "add":
		cmdErr = app.add(ctx, os.Args[2:])
	case "delete":
		cmdErr = app.delete(ctx, os.Args[2:])
	case "export":
		cmdErr = app.export(ctx, os.Args[2:])
	case "year":
		cmdErr = app.year(ctx, os.Args[2:])
	case "register":
		cmdErr = app.register(ctx, os.Args[2:])
	case "login":
		cmdErr = app.login(ctx, os.Args[2:])
	case "logout":
		cmdErr = app.logout()
	case "prefs":
		cmdErr = app.showOrSetPrefs(os.Args[2:])
	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	if cmdErr != nil {
		log.Fatal().Err(cmdErr).Msg("Command failed")
	}
}

type app struct {
	client     *client.Client
	store      *store.Store
	prefsStore prefs.Store
	prefs      prefs.Preferences
	username   string
}

func (a *app) dashboard(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("dashboard", flag.ExitOnError)
	startFlag := fs.String("start", "", "range start (YYYY-MM-DD)")
	endFlag := fs.String("end", "", "range end (YYYY-MM-DD)")
	presetFlag := fs.String("preset", "", "named range preset (e.g. last-week, previous-month, all-time)")
	trendCategory := fs.String("trend-category", analytics.CategoryAll, "category filter for the daily trend")
	if err := fs.Parse(args); err != nil {
		return err
	}

	now := time.Now()
	selection := daterange.DefaultSelection(now)
	if *presetFlag != "" {
		if err := selection.ApplyPreset(domain.Preset(*presetFlag), now); err != nil {
			return fmt.Errorf("unknown preset %q", *presetFlag)
		}
	}
	// Manual bounds override and clear any preset.
	if *startFlag != "" {
		if err := selection.SetStart(*startFlag); err != nil {
			return err
		}
	}
	if *endFlag != "" {
		if err := selection.SetEnd(*endFlag); err != nil {
			return err
		}
	}

	if err := a.store.Load(ctx); err != nil {
		return err
	}
	if a.store.Offline() {
		fmt.Println("(offline: showing demo data)")
	}

	filtered := daterange.FilterByRange(a.store.Transactions(), selection.Range)
	today := now.Format(domain.DateLayout)
	stats := analytics.ComputeStats(filtered, today)

	fmt.Printf("Range %s .. %s", selection.Range.Start, selection.Range.End)
	if selection.Preset != "" {
		fmt.Printf(" (%s)", selection.Preset)
	}
	fmt.Println()
	fmt.Printf("Income   %12s\n", stats.TotalIncome.StringFixed(2))
	fmt.Printf("Expense  %12s\n", stats.TotalExpense.StringFixed(2))
	fmt.Printf("Balance  %12s\n", stats.Balance.StringFixed(2))
	fmt.Printf("Today    %12s\n", stats.TodayExpense.StringFixed(2))

	totals := analytics.ComputeCategoryTotals(filtered)
	if len(totals) > 0 {
		fmt.Println("\nExpenses by category:")
		for _, ct := range totals {
			fmt.Printf("  %-20s %12s\n", ct.Category, ct.Amount.StringFixed(2))
		}
	}

	trend, err := analytics.ComputeDailyTrend(filtered, selection.Range, *trendCategory)
	if err != nil {
		return err
	}
	fmt.Printf("\nDaily trend (%s):\n", *trendCategory)
	for _, point := range trend {
		fmt.Printf("  %s %12s\n", point.Date, point.Amount.StringFixed(2))
	}
	return nil
}

func (a *app) list(ctx context.Context) error {
	if err := a.store.Load(ctx); err != nil {
		return err
	}
	if a.store.Offline() {
		fmt.Println("(offline: showing demo data)")
	}
	fmt.Printf("%-6s %-12s %-8s %-20s %12s  %s\n", "ID", "Date", "Type", "Category", "Amount", "Note")
	for _, t := range a.store.Transactions() {
		fmt.Printf("%-6d %-12s %-8s %-20s %12s  %s\n", t.ID, t.Date, t.Type, t.Category, t.Amount.StringFixed(2), t.Note)
	}
	return nil
}

func (a *app) add(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("add", flag.ExitOnError)
	dateFlag := fs.String("date", time.Now().Format(domain.DateLayout), "transaction date (YYYY-MM-DD)")
	amountFlag := fs.String("amount", "", "amount, plain or arithmetic (e.g. 50+20)")
	typeFlag := fs.String("type", string(domain.TransactionTypeExpense), "income or expense")
	categoryFlag := fs.String("category", "", "category name")
	noteFlag := fs.String("note", "", "optional note")
	if err := fs.Parse(args); err != nil {
		return err
	}

	value, err := amount.Parse(*amountFlag)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", *amountFlag, err)
	}
	if !domain.ValidDate(*dateFlag) {
		return fmt.Errorf("invalid -date %q: %w", *dateFlag, domain.ErrInvalidDate)
	}
	txType := domain.TransactionType(*typeFlag)
	if txType != domain.TransactionTypeIncome && txType != domain.TransactionTypeExpense {
		return fmt.Errorf("invalid -type %q: %w", *typeFlag, domain.ErrInvalidType)
	}
	category := strings.TrimSpace(*categoryFlag)
	if category == "" {
		return domain.ErrCategoryRequired
	}

	if err := a.store.Load(ctx); err != nil {
		return err
	}

	created, err := a.store.Add(ctx, &domain.TransactionCreate{
		Date:     *dateFlag,
		Amount:   value,
		Type:     txType,
		Category: category,
		Note:     *noteFlag,
	})
	if err != nil {
		return err
	}
	a.store.AddCategory(category)

	fmt.Printf("Recorded #%d: %s %s on %s (%s)\n", created.ID, created.Type, created.Amount.StringFixed(2), created.Date, created.Category)
	return nil
}

func (a *app) delete(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("delete", flag.ExitOnError)
	idFlag := fs.Int64("id", 0, "transaction id")
	yesFlag := fs.Bool("yes", false, "skip the confirmation prompt")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *idFlag <= 0 {
		return fmt.Errorf("a positive -id is required")
	}

	if !*yesFlag {
		fmt.Printf("Delete transaction #%d? [y/N] ", *idFlag)
		var answer string
		fmt.Scanln(&answer)
		if answer != "y" && answer != "Y" {
			fmt.Println("Aborted")
			return nil
		}
	}

	if err := a.store.Load(ctx); err != nil {
		return err
	}
	if err := a.store.Remove(ctx, *idFlag); err != nil {
		return err
	}
	fmt.Printf("Deleted #%d\n", *idFlag)
	return nil
}

func (a *app) export(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	outFlag := fs.String("o", "localflow_export.csv", "output file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := a.store.Load(ctx); err != nil {
		return err
	}

	f, err := os.Create(*outFlag)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := export.WriteCSV(f, a.store.Transactions()); err != nil {
		return err
	}
	fmt.Printf("Wrote %d transactions to %s\n", len(a.store.Transactions()), *outFlag)
	return nil
}

func (a *app) year(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("year", flag.ExitOnError)
	yearFlag := fs.Int("year", time.Now().Year(), "calendar year")
	if err := fs.Parse(args); err != nil {
		return err
	}

	// Prefer server-computed highlights; fall back to computing locally over
	// whatever the store holds.
	highlights, err := a.client.YearlyStats(ctx, *yearFlag)
	if err != nil {
		log.Warn().Err(err).Msg("Yearly stats not reachable, computing locally")
		if err := a.store.Load(ctx); err != nil {
			return err
		}
		local := analytics.ComputeYearlyHighlights(a.store.Transactions(), *yearFlag)
		highlights = &local
	}

	fmt.Printf("Highlights for %d\n", *yearFlag)
	if highlights.HighestSpendingDay != nil {
		fmt.Printf("  Highest daily spend: %s (%s)\n", highlights.HighestSpendingDay.Amount.StringFixed(2), highlights.HighestSpendingDay.Date)
	} else {
		fmt.Println("  Highest daily spend: no data")
	}
	if highlights.MostFrequentDay != nil {
		fmt.Printf("  Most transactions:   %d items (%s)\n", highlights.MostFrequentDay.Count, highlights.MostFrequentDay.Date)
	} else {
		fmt.Println("  Most transactions:   no data")
	}
	if highlights.HighestCategory != nil {
		fmt.Printf("  Top category:        %s (%s)\n", highlights.HighestCategory.Category, highlights.HighestCategory.Amount.StringFixed(2))
	} else {
		fmt.Println("  Top category:        no data")
	}
	return nil
}

func (a *app) register(ctx context.Context, args []string) error {
	username, password, err := credentials(args, "register")
	if err != nil {
		return err
	}
	if err := a.client.Register(ctx, username, password); err != nil {
		return err
	}
	fmt.Printf("Registered %s\n", username)
	return nil
}

func (a *app) login(ctx context.Context, args []string) error {
	username, password, err := credentials(args, "login")
	if err != nil {
		return err
	}
	confirmed, err := a.client.Login(ctx, username, password)
	if err != nil {
		return err
	}

	a.prefs.Username = confirmed
	if err := a.prefsStore.Save(a.prefs); err != nil {
		return err
	}
	fmt.Printf("Signed in as %s\n", confirmed)
	return nil
}

func (a *app) logout() error {
	a.prefs.Username = ""
	if err := a.prefsStore.Save(a.prefs); err != nil {
		return err
	}
	fmt.Println("Signed out")
	return nil
}

func (a *app) showOrSetPrefs(args []string) error {
	fs := flag.NewFlagSet("prefs", flag.ExitOnError)
	themeFlag := fs.String("theme", "", "set theme: light or dark")
	langFlag := fs.String("lang", "", "set language tag, e.g. en or zh")
	if err := fs.Parse(args); err != nil {
		return err
	}

	changed := false
	if *themeFlag != "" {
		if *themeFlag != "light" && *themeFlag != "dark" {
			return fmt.Errorf("theme must be light or dark")
		}
		a.prefs.Theme = *themeFlag
		changed = true
	}
	if *langFlag != "" {
		a.prefs.Language = *langFlag
		changed = true
	}
	if changed {
		if err := a.prefsStore.Save(a.prefs); err != nil {
			return err
		}
	}

	fmt.Printf("theme=%s language=%s username=%s\n", a.prefs.Theme, a.prefs.Language, a.prefs.Username)
	return nil
}

func credentials(args []string, name string) (string, string, error) {
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	userFlag := fs.String("username", "", "username")
	passFlag := fs.String("password", "", "password")
	if err := fs.Parse(args); err != nil {
		return "", "", err
	}
	if *userFlag == "" || *passFlag == "" {
		return "", "", fmt.Errorf("-username and -password are required")
	}
	return *userFlag, *passFlag, nil
}
