package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dreamtides/dreamtides-server-go/internal/cards"
)

// Seeds the card_definitions table from YAML card files, or from the
// built-in core set when no directory is given. Deck builders and
// analytics read this table; the battle engine itself loads definitions
// from the registry and never touches it.

const cardDefinitionsSchema = `
CREATE TABLE IF NOT EXISTS card_definitions (
    name        TEXT PRIMARY KEY,
    card_type   TEXT NOT NULL,
    cost        INT NOT NULL,
    spark       INT NOT NULL,
    fast        BOOLEAN NOT NULL,
    rules_text  TEXT NOT NULL,
    updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
)`

var (
	dir   = flag.String("dir", "", "directory of card YAML files; empty seeds the core set")
	dbURL = flag.String("db", "", "postgres URL; defaults to $DATABASE_URL")
)

func main() {
	flag.Parse()
	ctx := context.Background()

	defs, err := loadDefinitions(*dir)
	if err != nil {
		log.Fatalf("load definitions: %v", err)
	}
	fmt.Printf("loaded %d card definitions\n", len(defs))

	url := *dbURL
	if url == "" {
		url = os.Getenv("DATABASE_URL")
	}
	if url == "" {
		log.Fatal("no database URL: set -db or DATABASE_URL")
	}

	pool, err := pgxpool.New(ctx, url)
	if err != nil {
		log.Fatalf("connect: %v", err)
	}
	defer pool.Close()
	if _, err := pool.Exec(ctx, cardDefinitionsSchema); err != nil {
		log.Fatalf("ensure schema: %v", err)
	}

	start := time.Now()
	for _, def := range defs {
		_, err := pool.Exec(ctx, `
			INSERT INTO card_definitions (name, card_type, cost, spark, fast, rules_text, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, now())
			ON CONFLICT (name) DO UPDATE
			SET card_type = $2, cost = $3, spark = $4, fast = $5, rules_text = $6, updated_at = now()`,
			def.Name, string(def.Type), def.Cost, def.Spark, def.Fast, def.RulesText)
		if err != nil {
			log.Fatalf("upsert %q: %v", def.Name, err)
		}
	}
	fmt.Printf("seeded %d definitions in %s\n", len(defs), time.Since(start).Round(time.Millisecond))
}

// loadDefinitions parses every .yaml file in dir, validating the combined
// set through a registry so duplicates across files are rejected.
func loadDefinitions(dir string) ([]cards.Definition, error) {
	if dir == "" {
		return cards.CoreSet(), nil
	}
	paths, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no .yaml files in %s", dir)
	}

	var defs []cards.Definition
	for _, path := range paths {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		parsed, err := cards.ParseDefinitions(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		defs = append(defs, parsed...)
	}
	if _, err := cards.NewRegistry(defs); err != nil {
		return nil, err
	}
	return defs, nil
}
