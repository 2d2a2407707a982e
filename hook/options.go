package hook

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Options is declarative Engine configuration, loadable from a YAML
// file the way this codebase's profile loaders work: read, unmarshal,
// sentinel-error on the common failure modes. LoadOptions does not check
// field values; AsOption ignores an unrecognized log level.
type Options struct {
	LogLevel string `yaml:"log_level"`
}

// LoadOptions reads and parses a YAML options file.
func LoadOptions(path string) (*Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrOptionsNotFound
		}
		return nil, fmt.Errorf("hook: failed to read options: %w", err)
	}

	var opts Options
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidOptions, err)
	}

	return &opts, nil
}

// AsOption turns loaded Options into a constructor Option, applying the
// configured log level to the Engine's logger.
func (o *Options) AsOption() Option {
	return func(e *Engine) {
		if o.LogLevel == "" {
			return
		}
		lvl, err := logrus.ParseLevel(o.LogLevel)
		if err != nil {
			e.log.WithField("log_level", o.LogLevel).Warn("ignoring unrecognized log level")
			return
		}
		e.log.Logger.SetLevel(lvl)
	}
}
