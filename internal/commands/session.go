package commands

import (
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/aoiro-dev/aoiro/internal/books"
	"github.com/aoiro-dev/aoiro/internal/config"
	"github.com/aoiro-dev/aoiro/internal/model"
	"github.com/aoiro-dev/aoiro/internal/report"
	"github.com/aoiro-dev/aoiro/internal/store"
)

// options holds the global flags.
type options struct {
	dir        string
	configPath string
}

// session is an opened book.
type session struct {
	dir   string
	cfg   *config.Config
	db    *store.DB
	books *books.Service
}

func (o *options) bookDir() (string, error) {
	dir, err := filepath.Abs(o.dir)
	if err != nil {
		return "", fmt.Errorf("resolving path: %w", err)
	}
	return dir, nil
}

// open loads the config, applies environment overrides and opens the
// database.
func (o *options) open(cmd *cobra.Command) (*session, error) {
	dir, err := o.bookDir()
	if err != nil {
		return nil, err
	}
	path := o.configPath
	if path == "" {
		path = filepath.Join(dir, config.FileName)
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("%w (run `aoiro init` first)", err)
	}
	if err := config.ApplyEnv(cfg, filepath.Join(dir, config.EnvFile)); err != nil {
		return nil, err
	}
	return openSession(cmd, dir, cfg)
}

func openSession(cmd *cobra.Command, dir string, cfg *config.Config) (*session, error) {
	db, err := store.Open(cfg.DatabasePath(dir))
	if err != nil {
		return nil, err
	}
	codes := report.Codes{Sales: cfg.Statement.SalesCode, Purchases: cfg.Statement.PurchasesCode}
	return &session{
		dir:   dir,
		cfg:   cfg,
		db:    db,
		books: books.NewService(db, newLogger(cmd.ErrOrStderr(), cfg.Log.Level), codes),
	}, nil
}

func (s *session) Close() error {
	return s.db.Close()
}

func newLogger(w io.Writer, level string) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	logLevel, err := logrus.ParseLevel(level)
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)
	return logger
}

// withBooks opens the book for the duration of fn.
func withBooks(opts *options, fn func(cmd *cobra.Command, s *session, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		s, err := opts.open(cmd)
		if err != nil {
			return err
		}
		defer s.Close()
		return fn(cmd, s, args)
	}
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", arg)
	}
	return id, nil
}

func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	d, err := time.Parse(model.DateFormat, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q, want YYYY-MM-DD", model.ErrInvalidDate, s)
	}
	return d, nil
}

func yearFlag(cmd *cobra.Command, year *int) {
	cmd.Flags().IntVar(year, "year", time.Now().Year(), "fiscal year")
}
