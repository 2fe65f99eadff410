package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/urfave/cli/v3"

	"github.com/nikbrunner/shelf/internal/exporter"
	"github.com/nikbrunner/shelf/internal/filter"
	"github.com/nikbrunner/shelf/internal/model"
	"github.com/nikbrunner/shelf/internal/picker"
	"github.com/nikbrunner/shelf/internal/storage"
	"github.com/nikbrunner/shelf/internal/tui"
)

// ErrNoMatch is returned by open when nothing matches the query.
var ErrNoMatch = errors.New("no bookmarks match")

// session is what every command needs after flags and config are resolved.
type session struct {
	config  *storage.Config
	dataset *model.Dataset
	engine  *filter.Engine
	logger  *slog.Logger
}

// loadSession resolves settings (flag/env > config file > defaults), sets up
// logging to logOut and loads the dataset.
func (a *app) loadSession(cmd *cli.Command, logOut io.Writer) (*session, error) {
	configPath := cmd.String("config")
	if configPath == "" {
		p, err := storage.DefaultConfigFilePath()
		if err != nil {
			return nil, fmt.Errorf("config path: %w", err)
		}
		configPath = p
	}

	cfg, err := storage.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if level := cmd.String("log-level"); level != "" {
		cfg.LogLevel = level
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("invalid --log-level: %w", err)
		}
	}

	logger := slog.New(slog.NewTextHandler(logOut, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(logger)

	datasetPath := cmd.String("dataset")
	if datasetPath == "" {
		datasetPath = cfg.Dataset
	}
	if datasetPath == "" {
		datasetPath, err = storage.DefaultDatasetPath()
		if err != nil {
			return nil, fmt.Errorf("dataset path: %w", err)
		}
	}

	engine, err := filter.NewEngine(filter.EngineParams{Locale: cfg.Locale})
	if err != nil {
		return nil, fmt.Errorf("invalid locale %q: %w", cfg.Locale, err)
	}

	ds, err := storage.LoadDataset(datasetPath)
	if err != nil {
		return nil, err
	}
	for _, r := range ds.Rejected {
		logger.Warn("skipped dataset record",
			slog.Int("index", r.Index),
			slog.String("id", r.ID),
			slog.String("title", r.Title),
			slog.String("error", r.Err.Error()),
		)
	}
	logger.Debug("dataset loaded", slog.String("path", datasetPath), slog.Int("bookmarks", ds.Len()))

	return &session{config: cfg, dataset: ds, engine: engine, logger: logger}, nil
}

// predicates builds the filter from the command's arguments and flags.
func (s *session) predicates(cmd *cli.Command) (filter.Predicates, error) {
	sort := cmd.String("sort")
	if sort == "" {
		sort = s.config.DefaultSort
	}
	return filter.NewPredicates(filter.PredicatesParams{
		SearchText: strings.Join(cmd.Args().Slice(), " "),
		Category:   cmd.String("category"),
		Tags:       cmd.StringSlice("tag"),
		Sort:       sort,
	})
}

// visible computes the bookmarks selected by the command line.
func (s *session) visible(cmd *cli.Command) ([]model.Bookmark, error) {
	p, err := s.predicates(cmd)
	if err != nil {
		return nil, err
	}
	return s.engine.Compute(s.dataset.Bookmarks, p)
}

// runBrowse starts the TUI. Logs go to a file while it owns the terminal.
func (a *app) runBrowse(ctx context.Context, cmd *cli.Command) error {
	logPath, err := storage.DefaultLogFilePath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		return err
	}
	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer logFile.Close()

	s, err := a.loadSession(cmd, logFile)
	if err != nil {
		return err
	}

	view, err := model.ParseViewMode(s.config.DefaultView)
	if err != nil {
		return err
	}
	sort, err := filter.ParseSortOrder(s.config.DefaultSort)
	if err != nil {
		return err
	}
	p := filter.Predicates{Tags: []string{}, Sort: sort}

	m := tui.NewApp(tui.AppParams{
		Dataset:    s.dataset,
		Engine:     s.engine,
		Predicates: &p,
		View:       view,
		Logger:     s.logger,
		OpenURL:    a.openURL,
	})

	if _, err := a.runTUI(m, tea.WithAltScreen(), tea.WithContext(ctx)); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}

func (a *app) runList(_ context.Context, cmd *cli.Command) error {
	s, err := a.loadSession(cmd, a.stderr)
	if err != nil {
		return err
	}

	bookmarks, err := s.visible(cmd)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		enc := json.NewEncoder(a.stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(bookmarks)
	}

	if len(bookmarks) == 0 {
		fmt.Fprintln(a.stdout, exporter.EmptyStateText)
		return nil
	}

	w := tabwriter.NewWriter(a.stdout, 0, 4, 2, ' ', 0)
	for _, b := range bookmarks {
		tags := ""
		if len(b.Tags) > 0 {
			tags = "#" + strings.Join(b.Tags, " #")
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", b.Title, b.Category, b.URL, tags)
	}
	return w.Flush()
}

// facetsOutput is the JSON shape of the facets command.
type facetsOutput struct {
	Categories []string `json:"categories"`
	Tags       []string `json:"tags"`
}

func (a *app) runFacets(_ context.Context, cmd *cli.Command) error {
	s, err := a.loadSession(cmd, a.stderr)
	if err != nil {
		return err
	}

	out := facetsOutput{
		Categories: filter.DistinctCategories(s.dataset.Bookmarks),
		Tags:       filter.DistinctTags(s.dataset.Bookmarks),
	}

	if cmd.Bool("json") {
		enc := json.NewEncoder(a.stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	counts := filter.CategoryCounts(s.dataset.Bookmarks, filter.Predicates{})
	fmt.Fprintln(a.stdout, "Categories:")
	for _, c := range out.Categories {
		fmt.Fprintf(a.stdout, "  %s (%d)\n", c, counts[c])
	}
	fmt.Fprintln(a.stdout, "Tags:")
	for _, t := range s.engine.SortLabels(out.Tags) {
		fmt.Fprintf(a.stdout, "  %s\n", t)
	}
	return nil
}

func (a *app) runOpen(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() == 0 {
		return errors.New("open: missing query")
	}

	s, err := a.loadSession(cmd, a.stderr)
	if err != nil {
		return err
	}

	bookmarks, err := s.visible(cmd)
	if err != nil {
		return err
	}

	query := strings.Join(cmd.Args().Slice(), " ")
	var selected model.Bookmark

	switch len(bookmarks) {
	case 0:
		return fmt.Errorf("%w %q", ErrNoMatch, query)
	case 1:
		selected = bookmarks[0]
	default:
		result, err := a.runTUI(picker.New(bookmarks, query), tea.WithContext(ctx))
		if err != nil {
			return fmt.Errorf("picker: %w", err)
		}
		b, ok := result.(picker.Picker).SelectedBookmark()
		if !ok {
			return nil
		}
		selected = b
	}

	s.logger.Info("opening bookmark", slog.String("id", selected.ID), slog.String("url", selected.URL))
	if err := a.openURL(selected.URL); err != nil {
		return err
	}
	fmt.Fprintf(a.stdout, "Opened %s (%s)\n", selected.Title, selected.URL)
	return nil
}

func (a *app) runRender(_ context.Context, cmd *cli.Command) error {
	s, err := a.loadSession(cmd, a.stderr)
	if err != nil {
		return err
	}

	bookmarks, err := s.visible(cmd)
	if err != nil {
		return err
	}

	viewText := cmd.String("view")
	if viewText == "" {
		viewText = s.config.DefaultView
	}
	view, err := model.ParseViewMode(viewText)
	if err != nil {
		return err
	}

	var page string
	switch cmd.String("format") {
	case "", "page":
		page = exporter.RenderHTML(bookmarks, exporter.RenderParams{
			Title: cmd.String("title"),
			View:  view,
		})
	case "netscape":
		page = exporter.ExportNetscape(bookmarks)
	default:
		return fmt.Errorf("unknown format %q: want page or netscape", cmd.String("format"))
	}

	output := cmd.String("output")
	if output == "" {
		output, err = exporter.DefaultRenderPath()
		if err != nil {
			return err
		}
	}
	if err := os.MkdirAll(filepath.Dir(output), 0755); err != nil {
		return err
	}
	if err := os.WriteFile(output, []byte(page), 0644); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}

	s.logger.Info("rendered bookmarks", slog.String("path", output), slog.Int("bookmarks", len(bookmarks)))
	fmt.Fprintf(a.stdout, "Wrote %d bookmarks to %s\n", len(bookmarks), output)
	return nil
}
