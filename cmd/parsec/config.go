package main

import (
	"fmt"
	"strings"

	"github.com/npillmayer/parsec"
	"github.com/npillmayer/parsec/internal/tracing"
	"github.com/npillmayer/parsec/terms"
	"github.com/npillmayer/schuko/gtrace"
	schuko "github.com/npillmayer/schuko/tracing"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "parsec"

// globalOptions are the flags and configuration shared by all commands.
type globalOptions struct {
	configFile string
	trace      bool
	module     string
	v          *viper.Viper
}

// load maps environment variables to unset flags and reads the config file.
func (opts *globalOptions) load(cmd *cobra.Command) error {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	v.SetDefault("case-sensitive", true)
	v.SetDefault("keywords", []string{})
	v.SetDefault("operators", []string{})
	if opts.configFile != "" {
		v.SetConfigFile(opts.configFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config: %w", err)
		}
	}
	var errs []string
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if !f.Changed && v.IsSet(f.Name) {
			if err := cmd.Flags().Set(f.Name, fmt.Sprintf("%v", v.Get(f.Name))); err != nil {
				errs = append(errs, err.Error())
			}
		}
	})
	if len(errs) > 0 {
		return fmt.Errorf("error mapping environment variables to flags: %s", strings.Join(errs, "; "))
	}
	opts.v = v
	if opts.trace {
		tracing.Syntax()
		gtrace.SyntaxTracer.SetTraceLevel(schuko.LevelDebug)
	}
	return nil
}

// parseOptions returns the options for parses of input named module.
func (opts *globalOptions) parseOptions(module string) []parsec.Option {
	if opts.module != "" {
		module = opts.module
	}
	return []parsec.Option{parsec.Module(module), parsec.TraceFaults(opts.trace)}
}

// terms creates the keyword and operator table from the configuration.
func (opts *globalOptions) terms() *terms.Terms {
	return terms.New(opts.v.GetBool("case-sensitive"),
		splitList(opts.v.GetStringSlice("operators")),
		splitList(opts.v.GetStringSlice("keywords")))
}

// splitList splits entries of space-separated lists, as they come from
// environment variables.
func splitList(entries []string) []string {
	var list []string
	for _, e := range entries {
		list = append(list, strings.Fields(e)...)
	}
	return list
}
