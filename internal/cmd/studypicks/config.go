package studypicks

import (
	"fmt"
	"strings"

	"github.com/louisbranch/studypicks/internal/content"
	platformcmd "github.com/louisbranch/studypicks/internal/platform/cmd"
	webi18n "github.com/louisbranch/studypicks/internal/services/web/platform/i18n"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
)

const defaultHTTPAddr = "localhost:8080"

// Config holds the studypicks command configuration.
type Config struct {
	HTTPAddr    string `env:"STUDYPICKS_HTTP_ADDR" envDefault:"localhost:8080"`
	ContentFile string `env:"STUDYPICKS_CONTENT_FILE"`
	Strict      bool   `env:"STUDYPICKS_STRICT"`
	Lang        string `env:"STUDYPICKS_LANG" envDefault:"en-GB"`
	Watch       bool   `env:"STUDYPICKS_WATCH"`
}

// ParseConfig loads STUDYPICKS_* environment variables into a Config.
func ParseConfig() (Config, error) {
	cfg := Config{}
	if err := platformcmd.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// bindFlags registers flags that override the environment on cmd.
func bindFlags(cmd *cobra.Command, cfg *Config) {
	flags := cmd.PersistentFlags()
	flags.StringVar(&cfg.ContentFile, "content", cfg.ContentFile, "YAML content feed (defaults to the built-in feed)")
	flags.BoolVar(&cfg.Strict, "strict", cfg.Strict, "Reject feeds with missing subject entries or malformed fields")
	flags.StringVar(&cfg.Lang, "lang", cfg.Lang, "Default page language")
}

// LoadFeed returns the configured content feed. Strict mode validates it.
func LoadFeed(cfg Config) (content.Feed, error) {
	feed := content.Default()
	if path := strings.TrimSpace(cfg.ContentFile); path != "" {
		loaded, err := content.LoadFile(path)
		if err != nil {
			return content.Feed{}, err
		}
		feed = loaded
	}
	if cfg.Strict {
		if err := content.Validate(feed); err != nil {
			return content.Feed{}, fmt.Errorf("validate content feed: %w", err)
		}
	}
	return feed, nil
}

// Language returns the supported language tag closest to cfg.Lang.
func Language(cfg Config) (language.Tag, error) {
	if strings.TrimSpace(cfg.Lang) == "" {
		return webi18n.Default(), nil
	}
	return webi18n.ParseTag(cfg.Lang)
}
