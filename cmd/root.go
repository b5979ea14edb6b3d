package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/lleo/go-hamt-bits/logger"
)

const envPrefix = "HAMTBITS"

func NewRootCommand(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	rc := &cobra.Command{
		Use:   "hamtbits",
		Short: "Inspect HAMT hash paths and table bitmaps.",
		Long: `hamtbits shows how keys are routed through a 32-way Hash Array Mapped Trie.

It prints the per-level slot indexes of key hashes, builds table bitmaps from
slot numbers, and places keys into a single compressed table to show where
each lands in the dense node slice.

Every flag may also be set with an environment variable (HAMTBITS_ plus the
flag name in upper case, dashes as underscores) or in a TOML file given with
--config.
`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			v := viper.New()
			return setAllConfig(v, cmd.Flags())
		},
	}
	rc.PersistentFlags().StringP("config", "c", "", "Configuration file to read from.")
	rc.PersistentFlags().BoolP("verbose", "v", false, "Log debug output to stderr.")

	rc.AddCommand(newHashCommand(stdout, stderr))
	rc.AddCommand(newBitmapCommand(stdout, stderr))
	rc.AddCommand(newPlaceCommand(stdout, stderr))

	rc.SetOut(stdout)
	rc.SetErr(stderr)
	return rc
}

// setAllConfig takes a FlagSet to be the definition of all configuration
// options, as well as their defaults. It then reads from the command line, the
// environment, and a config file (if specified), and applies the configuration
// in that priority order. Since each flag in the set contains a pointer to
// where its value should be stored, setAllConfig can directly modify the value
// of each config variable.
func setAllConfig(v *viper.Viper, flags *pflag.FlagSet) error {
	if err := v.BindPFlags(flags); err != nil {
		return errors.Wrap(err, "binding flags")
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	validTags := make(map[string]bool)
	flags.VisitAll(func(f *pflag.Flag) {
		validTags[f.Name] = true
	})

	if c := v.GetString("config"); c != "" {
		v.SetConfigFile(c)
		v.SetConfigType("toml")
		if err := v.ReadInConfig(); err != nil {
			return errors.Wrapf(err, "reading configuration file '%s'", c)
		}

		for _, key := range v.AllKeys() {
			if _, ok := validTags[key]; !ok {
				return fmt.Errorf("invalid option in configuration file: %v", key)
			}
		}
	}

	var flagErr error
	flags.VisitAll(func(f *pflag.Flag) {
		if flagErr != nil || f.Changed {
			// a flag given on the command line wins
			return
		}
		var value string
		if f.Value.Type() == "stringSlice" {
			// GetString returns "" for a real list read from a config file.
			value = strings.Join(v.GetStringSlice(f.Name), ",")
		} else {
			value = v.GetString(f.Name)
		}
		if value == "" && f.Value.Type() == "stringSlice" {
			return
		}
		if err := f.Value.Set(value); err != nil {
			flagErr = errors.Wrapf(err, "setting %s", f.Name)
		}
	})
	return flagErr
}

// commandLogger returns a debug logger when --verbose is set.
func commandLogger(cmd *cobra.Command, stderr io.Writer) logger.Logger {
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		return logger.NewVerboseLogger(stderr).WithPrefix(cmd.Name() + ": ")
	}
	return logger.NewStandardLogger(stderr)
}
