package cmd

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizbot/internal/catalog"
	"github.com/abhisek/quizbot/internal/chat"
	"github.com/abhisek/quizbot/internal/config"
	"github.com/abhisek/quizbot/internal/store"
)

// deps holds everything a command needs to run the quiz.
type deps struct {
	cfg        config.Config
	catalog    *catalog.Catalog
	dispatcher *chat.Dispatcher
	results    store.ResultRepo
	logger     *log.Logger
	closers    []func() error
}

// Close releases the stores.
func (d *deps) Close() error {
	var errs []error
	for i := len(d.closers) - 1; i >= 0; i-- {
		errs = append(errs, d.closers[i]())
	}
	return errors.Join(errs...)
}

func newLogger() *log.Logger {
	return log.New(os.Stderr, "quizbot: ", log.LstdFlags)
}

// loadConfig reads .env, the environment and then the persistent flags,
// in increasing priority.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	if err := config.LoadDotEnv(); err != nil {
		return config.Config{}, err
	}
	cfg, err := config.ConfigFromEnv()
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if p, _ := flags.GetString("db"); p != "" {
		cfg.DBPath = p
	}
	if s, _ := flags.GetString("store"); s != "" {
		cfg.Store = s
	}
	if p, _ := flags.GetString("catalog"); p != "" {
		cfg.CatalogPath = p
	}
	if p, _ := flags.GetString("on-finish"); p != "" {
		cfg.OnFinish = p
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// loadCatalog returns the configured catalog or the built-in one.
func loadCatalog(cfg config.Config) (*catalog.Catalog, error) {
	if cfg.CatalogPath == "" {
		return catalog.Default(), nil
	}
	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	return cat, nil
}

// resolveDBPath returns the configured database path (--db, then
// QUIZBOT_DB), or the default XDG path.
func resolveDBPath(cfg config.Config) (string, error) {
	if cfg.DBPath != "" {
		return cfg.DBPath, store.EnsureDir(cfg.DBPath)
	}
	return store.DefaultDBPath()
}

// buildDeps opens the configured store and wires the dispatcher.
func buildDeps(cmd *cobra.Command) (*deps, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	cat, err := loadCatalog(cfg)
	if err != nil {
		return nil, err
	}
	policy, err := cfg.Policy()
	if err != nil {
		return nil, err
	}

	d := &deps{cfg: cfg, catalog: cat, logger: newLogger()}

	var sessions store.SessionRepo
	switch cfg.Store {
	case config.StoreMemory:
		mem := store.NewMemory()
		sessions, d.results = mem, mem

	case config.StoreRedis:
		r, err := store.NewRedis(store.RedisOptions{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			TTL:      cfg.Redis.TTL,
		})
		if err != nil {
			return nil, err
		}
		sessions, d.results = r, r
		d.closers = append(d.closers, r.Close)

	default:
		dbPath, err := resolveDBPath(cfg)
		if err != nil {
			return nil, fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return nil, fmt.Errorf("open store: %w", err)
		}
		sessions, d.results = st.SessionRepo(), st.ResultRepo()
		d.closers = append(d.closers, st.Close)
	}

	d.dispatcher = chat.New(chat.Options{
		Catalog:  cat,
		Sessions: sessions,
		Results:  d.results,
		Policy:   policy,
		Logger:   d.logger,
	})
	return d, nil
}
