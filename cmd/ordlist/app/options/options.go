package options

import (
	"fmt"

	"github.com/spf13/pflag"
)

type Options struct {
	keys    []int
	probes  []int
	reverse bool
}

func New() *Options {
	return &Options{
		// default key set mirrors the insertion demo
		keys: []int{342, 413, 4552, 65, 512, 1, 31435},
	}
}

func (o *Options) AddFlags(fs *pflag.FlagSet) {
	fs.IntSliceVar(&o.keys, "keys", o.keys,
		"Keys to insert, in insertion order")
	fs.IntSliceVar(&o.probes, "probe", o.probes,
		"Keys to probe for membership after the build")
	fs.BoolVar(&o.reverse, "reverse", o.reverse,
		"Also walk the list back to front")
}

// Validate will check the requirements of options
func (o *Options) Validate() []error {
	var errs []error
	if len(o.keys) == 0 {
		errs = append(errs, fmt.Errorf("at least one key is required"))
	}
	return errs
}

// Config mirrors the flag surface for configuration files and
// environment binding.
type Config struct {
	Keys    []int `mapstructure:"keys"`
	Probes  []int `mapstructure:"probe"`
	Reverse bool  `mapstructure:"reverse"`
}

// ApplyTo overrides flag values with the ones set in the configuration
// file.
func (c *Config) ApplyTo(o *Options) {
	if len(c.Keys) > 0 {
		o.keys = c.Keys
	}
	if len(c.Probes) > 0 {
		o.probes = c.Probes
	}
	if c.Reverse {
		o.reverse = true
	}
}

func (o *Options) Keys() []int {
	return o.keys
}

func (o *Options) Probes() []int {
	return o.probes
}

func (o *Options) Reverse() bool {
	return o.reverse
}
