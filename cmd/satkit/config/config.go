// Package config resolves cmd/satkit's runtime configuration from
// flags, SATKIT_* environment variables, and an optional .satkit.yaml,
// the same cobra+viper pairing operator-framework's cmd/ tree uses.
package config

import (
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Config is the resolved set of knobs cmd/satkit runs with.
type Config struct {
	// Engine is "dpll" or "linear".
	Engine string
	// VerdictWords is "default" (SATISFACIBLE/NO-SATISFACIBLE) or "alt"
	// (SAT/UNSAT).
	VerdictWords string
	// Timeout bounds how long solving (with either engine) may run
	// before the CLI gives up and reports NO-SOLUTION; zero means no
	// bound.
	Timeout time.Duration
}

// Load binds cmd's engine, verdict-words and timeout flags into a viper instance that also
// reads SATKIT_* environment variables and an optional .satkit.yaml in
// the working directory or the user's home, and returns the resolved
// Config.
func Load(cmd *cobra.Command) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("SATKIT")
	v.AutomaticEnv()

	v.SetConfigName(".satkit")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME")
	if err := v.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			return nil, err
		}
	}

	for _, name := range []string{"engine", "verdict-words", "timeout"} {
		if err := v.BindPFlag(name, cmd.Flags().Lookup(name)); err != nil {
			return nil, err
		}
	}

	return &Config{
		Engine:       v.GetString("engine"),
		VerdictWords: v.GetString("verdict-words"),
		Timeout:      v.GetDuration("timeout"),
	}, nil
}
