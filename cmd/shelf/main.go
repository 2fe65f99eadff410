package main

import (
	"context"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v3"

	"github.com/nikbrunner/shelf/internal/browser"
)

// app carries the side-effecting collaborators of the command tree.
type app struct {
	stdout io.Writer
	stderr io.Writer

	openURL func(url string) error
	runTUI  func(m tea.Model, opts ...tea.ProgramOption) (tea.Model, error)
}

func newApp() *app {
	return &app{
		stdout:  os.Stdout,
		stderr:  os.Stderr,
		openURL: browser.Open,
		runTUI: func(m tea.Model, opts ...tea.ProgramOption) (tea.Model, error) {
			return tea.NewProgram(m, opts...).Run()
		},
	}
}

func (a *app) rootCommand() *cli.Command {
	return &cli.Command{
		Name:   "shelf",
		Usage:  "Browse a static bookmark collection by search, category and tags",
		Action: a.runBrowse,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "dataset",
				Aliases: []string{"d"},
				Usage:   "Path to the bookmark dataset (.json, .yaml, .db or Netscape .html)",
				Sources: cli.EnvVars("SHELF_DATASET"),
			},
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "Path to config file",
				DefaultText: "~/.config/shelf/config.json",
				Sources:     cli.EnvVars("SHELF_CONFIG"),
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "Log level: debug, info, warn or error",
				Sources: cli.EnvVars("SHELF_LOG_LEVEL"),
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "list",
				Usage:     "Print the bookmarks matching a query and filters",
				ArgsUsage: "[query]",
				Action:    a.runList,
				Flags: append(predicateFlags(),
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Print JSON instead of text",
					},
				),
			},
			{
				Name:   "facets",
				Usage:  "Print the distinct categories and tags",
				Action: a.runFacets,
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Print JSON instead of text",
					},
				},
			},
			{
				Name:      "open",
				Usage:     "Open the bookmark whose title matches; pick when several do",
				ArgsUsage: "<query...>",
				Action:    a.runOpen,
				Flags:     predicateFlags(),
			},
			{
				Name:      "render",
				Usage:     "Write the matching bookmarks as a static HTML page",
				ArgsUsage: "[query]",
				Action:    a.runRender,
				Flags: append(predicateFlags(),
					&cli.StringFlag{
						Name:        "output",
						Aliases:     []string{"o"},
						Usage:       "Output file",
						DefaultText: "~/Downloads/bookmarks-YYYY-MM-DD.html",
					},
					&cli.StringFlag{
						Name:  "view",
						Usage: "Page layout: grid or list (default from config)",
					},
					&cli.StringFlag{
						Name:  "title",
						Usage: "Page title",
						Value: "Bookmarks",
					},
					&cli.StringFlag{
						Name:  "format",
						Usage: "page (styled cards or list) or netscape (browser-importable)",
						Value: "page",
					},
				),
			},
		},
	}
}

// predicateFlags are shared by every command that filters the dataset.
func predicateFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "category",
			Usage: "Only bookmarks in this category (exact match)",
		},
		&cli.StringSliceFlag{
			Name:  "tag",
			Usage: "Only bookmarks carrying any of these tags (repeatable)",
		},
		&cli.StringFlag{
			Name:  "sort",
			Usage: "Title order: asc or desc (default from config)",
		},
	}
}

func main() {
	cmd := newApp().rootCommand()

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("application error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
