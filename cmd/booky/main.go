package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/zdzakic/booky/internal/cli"
	"github.com/zdzakic/booky/internal/constants"
	"github.com/zdzakic/booky/internal/errors"
	"github.com/zdzakic/booky/internal/logger"
	"github.com/zdzakic/booky/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Settings database path." type:"path" default:"~/.config/booky/booky.db"`
	APIURL  string `name:"api-url" help:"Backend base URL." env:"BOOKY_API_URL"`
	Debug   bool   `help:"Verbose logging to stderr and the log file."`

	Book      cli.BookCmd      `cmd:"" help:"Book an appointment." default:"1"`
	Dashboard cli.DashboardCmd `cmd:"" help:"Open the admin reservations dashboard."`
	Login     cli.LoginCmd     `cmd:"" help:"Log in as admin."`
	Logout    cli.LogoutCmd    `cmd:"" help:"Drop the stored session."`
	Services  cli.ServicesCmd  `cmd:"" help:"List bookable services."`
	Lang      cli.LangCmd      `cmd:"" help:"Show or set the display language."`
}

func main() {
	kctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Booking form and reservations dashboard for the tire shop backend"),
		kong.UsageOnError(),
		kong.Vars{"version": constants.Version},
	)

	store := storage.NewStore(CLI.Config)
	if err := store.Open(); err != nil {
		errors.Fatalf("failed to open settings store: %v", err)
	}
	defer store.Close()

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: store.Dir(),
	}); err != nil {
		errors.Fatalf("failed to initialize logging: %v", err)
	}

	settings, err := store.GetSettings()
	if err != nil {
		errors.Fatalf("failed to read settings: %v", err)
	}

	appCtx := &cli.Context{
		Store:    store,
		Settings: settings,
		BaseURL:  CLI.APIURL,
	}

	if err := kctx.Run(appCtx); err != nil {
		logger.Error("Command failed", "error", err)
		fmt.Fprintf(os.Stderr, "%s\n", errors.Format(err))
		os.Exit(1)
	}
}
