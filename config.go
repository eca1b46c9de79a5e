package formguard

import (
	"errors"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the markup conventions and failure behavior the validator
// reads on every call. Fields are plain values with no hidden state, so a
// caller may change any of them between IsValid calls and the change takes
// effect immediately.
type Config struct {
	// Prefix marks class tokens that encode validation rules, e.g. "v-"
	// turns "v-len-2-8" into the len rule with arguments 2 and 8.
	Prefix string `env:"FORMGUARD_PREFIX" envDefault:"v-"`

	// Suffix is stripped from an error element's id to recover the field
	// name, e.g. "email-err" -> "email".
	Suffix string `env:"FORMGUARD_SUFFIX" envDefault:"-err"`

	// MultiClass marks error elements that belong to a field with several
	// independent messages, disambiguated by a numeric id segment.
	MultiClass string `env:"FORMGUARD_MULTI_CLASS" envDefault:"multi"`

	// ErrorClass is the bare class marking an element as an error message.
	// Used as a rule token it acts as a presence check.
	ErrorClass string `env:"FORMGUARD_ERROR_CLASS" envDefault:"error"`

	// ErrorTag restricts the error-element scan to one tag name, e.g.
	// "div". Empty means any tag.
	ErrorTag string `env:"FORMGUARD_ERROR_TAG" envDefault:""`

	// DisplayMode is the display value applied to failing error elements,
	// typically "block" or "inline".
	DisplayMode string `env:"FORMGUARD_DISPLAY_MODE" envDefault:"block"`

	// Anchor is the URL fragment navigated to on failure when Jump is set,
	// e.g. "#errors". Empty disables navigation.
	Anchor string `env:"FORMGUARD_ANCHOR" envDefault:""`

	// Jump enables moving the page and keyboard focus to the first failing
	// field after a failed validation run.
	Jump bool `env:"FORMGUARD_JUMP" envDefault:"true"`
}

// DefaultConfig returns the conventions used when no configuration is
// supplied: "v-" rule prefix, "-err" id suffix, "multi" marker, "error"
// class, any tag, "block" display, focus jump enabled with no anchor.
func DefaultConfig() Config {
	return Config{
		Prefix:      "v-",
		Suffix:      "-err",
		MultiClass:  "multi",
		ErrorClass:  "error",
		DisplayMode: "block",
		Jump:        true,
	}
}

// ErrParsingConfig is returned when environment variables cannot be parsed
// into the Config struct.
var ErrParsingConfig = errors.New("failed to parse formguard config")

var defaultEnvLoaded sync.Once

// LoadConfig builds a Config from FORMGUARD_* environment variables,
// loading a .env file first if one exists. Unset variables fall back to
// the DefaultConfig values.
func LoadConfig() (Config, error) {
	defaultEnvLoaded.Do(func() {
		// The .env file might not exist and that's ok.
		_ = godotenv.Load()
	})

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Join(ErrParsingConfig, err)
	}
	return cfg, nil
}
