package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"pkt.systems/gohan"
)

const envPrefix = "GOHAN"

type options struct {
	output      string
	tokens      bool
	ast         bool
	width       int
	wrapper     string
	frontMatter bool
	nfc         bool
	validate    bool
	timeout     time.Duration
	verbose     bool
}

// loadConfig layers flags over environment variables over the config file.
// An explicit path must exist; the default location is optional.
func loadConfig(flags *pflag.FlagSet, path string) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(flags); err != nil {
		return nil, fmt.Errorf("config: bind flags: %w", err)
	}
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("gohan")
		v.SetConfigType("yaml")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "gohan"))
		}
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: %w", err)
		}
	}
	return v, nil
}

func optionsFrom(v *viper.Viper) options {
	return options{
		output:      v.GetString("output"),
		tokens:      v.GetBool("tokens"),
		ast:         v.GetBool("ast"),
		width:       v.GetInt("width"),
		wrapper:     strings.TrimSpace(v.GetString("wrap")),
		frontMatter: v.GetBool("strip-front-matter"),
		nfc:         v.GetBool("nfc"),
		validate:    v.GetBool("validate"),
		timeout:     v.GetDuration("timeout"),
		verbose:     v.GetBool("verbose"),
	}
}

func (o options) renderOptions() []gohan.RenderOption {
	return []gohan.RenderOption{
		gohan.WithFrontMatter(o.frontMatter),
		gohan.WithNFC(o.nfc),
		gohan.WithValidation(o.validate),
		gohan.WithWrapper(o.wrapper),
	}
}

func newLogger(w io.Writer, verbose bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}).
		Level(level).
		With().
		Timestamp().
		Logger()
}
