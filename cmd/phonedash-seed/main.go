// Command phonedash-seed loads the catalog documents from a JSON file:
//
//	{"accesorio": {...}, "iphone": {...}}
//
// Either key may be left out. Each document present replaces the stored one and
// bumps its version.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"sort"

	"phonedash/internal/config"
	"phonedash/internal/domain"
	applog "phonedash/internal/log"
	"phonedash/internal/repos"
	"phonedash/internal/services"
	"phonedash/internal/validate"
)

func main() {
	cfg := config.Load()
	file := flag.String("file", "catalog.json", "catalog JSON file")
	dsn := flag.String("dsn", cfg.DBDSN, "SQLite DSN")
	flag.Parse()

	if err := seed(context.Background(), *dsn, *file); err != nil {
		log.Fatal(err)
	}
}

func seed(ctx context.Context, dsn, file string) error {
	raw, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("read catalog: %w", err)
	}
	var docs map[string]json.RawMessage
	if err := json.Unmarshal(raw, &docs); err != nil {
		return fmt.Errorf("parse catalog: %w", err)
	}
	if len(docs) == 0 {
		return fmt.Errorf("catalog %s has no documents", file)
	}

	ids := make([]string, 0, len(docs))
	for id := range docs {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		clean, ok := validate.ID(id)
		if !ok || (clean != domain.ConfigAccessory && clean != domain.ConfigIPhone) {
			return fmt.Errorf("%w: %q", services.ErrUnknownConfig, id)
		}
	}

	db, err := repos.OpenDB(dsn)
	if err != nil {
		return err
	}
	defer db.Close()
	svc := services.NewConfigService(repos.NewConfigRepo(db), nil)
	for _, id := range ids {
		v, err := svc.Put(ctx, id, docs[id])
		if err != nil {
			return err
		}
		applog.Audit(nil, "config.seed", map[string]any{"document": id, "version": v})
	}
	return nil
}
