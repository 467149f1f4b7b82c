// newsctl is an operational CLI for the news store: inspect items, force
// body fetches and translations, invalidate cached state, and import
// glossary entries.
package main

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"dqx_news/internal/config"
	"dqx_news/internal/domain"
	"dqx_news/internal/service"
	"dqx_news/internal/source/hiroba"
	"dqx_news/internal/storage/postgres"
	"dqx_news/internal/translator"
)

const usage = `usage: newsctl [-config path] <command> [args]

commands:
  list [category]              list stored items
  body <id>                    fetch (or serve cached) article body
  translate <id> <lang>        fetch (or produce) a translation
  invalidate <id>              drop the cached body, forcing a re-fetch
  delete-translation <id> <lang>
  recheck-queue [limit]        show items overdue for re-verification
  scan <category> <incremental|full>
  glossary-import <lang> <csv> replace a language's glossary from CSV
`

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	cfg, err := config.Load(*configPath)
	if err != nil {
		fatal("load config: %v", err)
	}

	db, err := sqlx.Connect("postgres", cfg.Database.DSN())
	if err != nil {
		fatal("connect to database: %v", err)
	}
	defer db.Close()

	itemStore := postgres.NewItemStore(db)
	translationStore := postgres.NewTranslationStore(db)
	glossaryStore := postgres.NewGlossaryStore(db)

	source := hiroba.New(hiroba.Config{
		BaseURL:        cfg.Source.BaseURL,
		Timeout:        cfg.Source.Timeout,
		MaxAttempts:    cfg.Source.Retry.MaxAttempts,
		InitialBackoff: cfg.Source.Retry.InitialBackoff,
		MaxBackoff:     cfg.Source.Retry.MaxBackoff,
	}, logger)

	contentService := service.NewContentService(itemStore, source, cfg.BodyLock, logger)
	translationService := service.NewTranslationService(
		translationStore,
		glossaryStore,
		translator.New(cfg.Translator, logger),
		contentService,
		cfg.TranslationLock,
		logger,
	)
	scanService := service.NewScanService(source, itemStore, nil, logger, cfg.Scan)
	recheckService := service.NewRecheckService(itemStore, logger)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	args := flag.Args()
	switch args[0] {
	case "list":
		var category *domain.Category
		if len(args) > 1 {
			c, err := domain.ParseCategory(args[1])
			if err != nil {
				fatal("%v", err)
			}
			category = &c
		}
		items, err := contentService.ListItems(ctx, category, 0, 50)
		if err != nil {
			fatal("list items: %v", err)
		}
		for _, item := range items {
			fetched := " "
			if item.HasBody() {
				fetched = "*"
			}
			fmt.Printf("%s %-12s %s  %s  %s\n",
				fetched, item.Category, item.ID, item.PublishedAt.Format("2006-01-02 15:04"), item.Title)
		}

	case "body":
		requireArgs(args, 2)
		item, err := contentService.GetBody(ctx, args[1])
		if err != nil {
			fatal("get body: %v", err)
		}
		fmt.Println(item.Title)
		fmt.Println()
		fmt.Println(*item.Content)

	case "translate":
		requireArgs(args, 3)
		tr, err := translationService.GetTranslation(ctx, args[1], args[2])
		if err != nil {
			fatal("get translation: %v", err)
		}
		fmt.Println(tr.Title)
		fmt.Println()
		fmt.Println(tr.Content)

	case "invalidate":
		requireArgs(args, 2)
		if err := contentService.InvalidateBody(ctx, args[1]); err != nil {
			fatal("invalidate body: %v", err)
		}

	case "delete-translation":
		requireArgs(args, 3)
		if err := translationService.DeleteTranslation(ctx, args[1], args[2]); err != nil {
			fatal("delete translation: %v", err)
		}

	case "recheck-queue":
		limit := cfg.Scan.RecheckLimit
		if len(args) > 1 {
			if _, err := fmt.Sscanf(args[1], "%d", &limit); err != nil {
				fatal("bad limit %q", args[1])
			}
		}
		queue, err := recheckService.RecheckQueue(ctx, limit)
		if err != nil {
			fatal("build recheck queue: %v", err)
		}
		for _, entry := range queue {
			fmt.Printf("%-12s %s  due %s  %s\n",
				entry.Category, entry.ItemID, entry.NextCheckAt.Format(time.RFC3339), entry.Title)
		}

	case "scan":
		requireArgs(args, 3)
		category, err := domain.ParseCategory(args[1])
		if err != nil {
			fatal("%v", err)
		}
		mode := domain.ScanMode(args[2])
		if mode != domain.ScanIncremental && mode != domain.ScanFull {
			fatal("mode must be incremental or full")
		}
		stats, err := scanService.ScanCategory(ctx, category, mode)
		if err != nil {
			fatal("scan: %v", err)
		}
		fmt.Printf("pages=%d fetched=%d new=%d seen=%d errors=%d duration=%s\n",
			stats.Pages, stats.Fetched, stats.New, stats.Seen, stats.Errors, stats.Duration)

	case "glossary-import":
		requireArgs(args, 3)
		entries, err := readGlossaryCSV(args[2])
		if err != nil {
			fatal("read glossary csv: %v", err)
		}
		if err := translationService.ReplaceGlossary(ctx, args[1], entries); err != nil {
			fatal("replace glossary: %v", err)
		}
		fmt.Printf("imported %d entries\n", len(entries))

	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
}

// readGlossaryCSV reads rows of "source_text,translated_text".
func readGlossaryCSV(path string) ([]domain.GlossaryEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, err
	}

	entries := make([]domain.GlossaryEntry, 0, len(records))
	for i, rec := range records {
		if len(rec) < 2 {
			return nil, fmt.Errorf("row %d: expected 2 columns, got %d", i+1, len(rec))
		}
		entries = append(entries, domain.GlossaryEntry{
			SourceText:     rec[0],
			TranslatedText: rec[1],
		})
	}
	return entries, nil
}

func requireArgs(args []string, n int) {
	if len(args) < n {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
