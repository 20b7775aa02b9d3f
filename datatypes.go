package alphabeta

import (
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/alphabeta/search"
)

// Config for an Agent.
// It holds the search configuration, the range the per-turn depth is drawn
// from, and where opening replies come from.
type Config struct {
	Name     string        `json:"name"`
	Search   search.Config `json:"search"`
	MinDepth int           `json:"min_depth"`
	MaxDepth int           `json:"max_depth"`
	Seed     int64         `json:"seed"`      // 0 seeds from the clock
	BookPath string        `json:"book_path"` // empty uses the built-in book
	NoBook   bool          `json:"no_book"`
	LogLevel string        `json:"log_level"`

	// Logger overrides the logger built from LogLevel.
	Logger *zerolog.Logger `json:"-"`
}

func DefaultConfig() Config {
	return Config{
		Name:     "alphabeta",
		Search:   search.DefaultConfig(),
		MinDepth: 3,
		MaxDepth: 4,
		LogLevel: "info",
	}
}

// Validate reports every invalid field at once.
func (c Config) Validate() error {
	var errs *multierror.Error
	if !c.Search.IsValid() {
		errs = multierror.Append(errs, errors.Errorf("invalid search config %+v", c.Search))
	}
	if c.MinDepth < 1 {
		errs = multierror.Append(errs, errors.Errorf("min_depth must be at least 1, got %d", c.MinDepth))
	}
	if c.MaxDepth < c.MinDepth {
		errs = multierror.Append(errs, errors.Errorf("max_depth %d is below min_depth %d", c.MaxDepth, c.MinDepth))
	}
	if c.Logger == nil {
		if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
			errs = multierror.Append(errs, errors.Wrap(err, "log_level"))
		}
	}
	return errs.ErrorOrNil()
}
