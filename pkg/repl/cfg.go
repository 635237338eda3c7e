package repl

import (
	"flag"
	"fmt"
)

// Config carries the settings shared by the cuppa3 CLI and the repl.
type Config struct {
	CpuProfile    string
	MemProfile    string
	Expr          string
	Trace         bool
	MaxCallDepth  int
	ExitOnFailure bool
	Flags         *flag.FlagSet
}

func NewConfig(cmdname string) *Config {
	return &Config{
		Flags: flag.NewFlagSet(cmdname, flag.ExitOnError),
	}
}

// call DefineFlags before Flags.Parse()
func (c *Config) DefineFlags() {
	c.Flags.StringVar(&c.CpuProfile, "cpuprofile", "", "write cpu profile to file")
	c.Flags.StringVar(&c.MemProfile, "memprofile", "", "write mem profile to file")
	c.Flags.StringVar(&c.Expr, "e", "", "run this source text instead of reading a file")
	c.Flags.BoolVar(&c.Trace, "trace", false, "print the evaluator trace to stderr while running")
	c.Flags.IntVar(&c.MaxCallDepth, "maxdepth", 0, "override the call depth limit (0 keeps the default)")
	c.Flags.BoolVar(&c.ExitOnFailure, "exitonfail", false, "exit on script failure instead of starting the repl")
}

// call c.ValidateConfig() after Flags.Parse()
func (c *Config) ValidateConfig() error {
	if c.MaxCallDepth < 0 {
		return fmt.Errorf("maxdepth must not be negative")
	}
	return nil
}
