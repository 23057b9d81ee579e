// Package touchcli provides the command-line interface for touch.
package touchcli

import (
	"errors"
	"fmt"
	"os"

	"github.com/dansimau/coreutils/pkg/log"
	"github.com/dansimau/coreutils/pkg/touch"
	"github.com/davecgh/go-spew/spew"
	"github.com/jessevdk/go-flags"
)

// Cmd holds the options of a touch invocation. -h is no-dereference, so help
// is only available as --help.
type Cmd struct {
	AccessOnly       bool    `short:"a" description:"Change only the access time"`
	ModificationOnly bool    `short:"m" description:"Change only the modification time"`
	Time             string  `long:"time" choice:"access" choice:"atime" choice:"use" choice:"modify" choice:"mtime" value-name:"WORD" description:"Change the specified time: access, atime or use is -a; modify or mtime is -m"`
	NoCreate         bool    `short:"c" long:"no-create" description:"Do not create any files"`
	NoDereference    bool    `short:"h" long:"no-dereference" description:"Affect each symbolic link instead of any referenced file"`
	Date             *string `short:"d" long:"date" value-name:"STRING" description:"Parse STRING and use it instead of current time"`
	Timestamp        *string `short:"t" value-name:"STAMP" description:"Use [[CC]YY]MMDDhhmm[.ss] instead of current time"`
	Reference        *string `short:"r" long:"reference" value-name:"FILE" description:"Use this file's times instead of current time"`
	Jobs             int     `short:"j" long:"jobs" value-name:"N" description:"Number of files to process in parallel"`
	Verbose          bool    `short:"v" long:"verbose" description:"Verbose output"`
	Summary          bool    `long:"summary" description:"Print a table of what happened to each file"`
	Config           string  `long:"config" value-name:"FILE" description:"Read defaults from this YAML file (default: $TOUCH_CONFIG)"`
	ShowConfig       bool    `long:"show-config" hidden:"true" description:"Print the effective configuration and exit"`
	Help             bool    `long:"help" description:"Show this help message"`
}

func (c *Cmd) options() touch.Options {
	opts := touch.Options{
		AccessOnly:       c.AccessOnly,
		ModificationOnly: c.ModificationOnly,
		NoCreate:         c.NoCreate,
		NoDereference:    c.NoDereference,
		Date:             c.Date,
		Timestamp:        c.Timestamp,
		Reference:        c.Reference,
	}

	switch c.Time {
	case "access", "atime", "use":
		opts.AccessOnly = true
	case "modify", "mtime":
		opts.ModificationOnly = true
	}

	return opts
}

// Run executes the program with the specified arguments and returns the code
// the process should exit with.
func Run(args ...string) (exitCode int) {
	cmd := &Cmd{}

	parser := flags.NewParser(cmd, flags.PassDoubleDash)
	parser.Name = "touch"
	parser.Usage = "[OPTIONS] FILE..."

	files, err := parser.ParseArgs(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "touch: %s\n", err)
		fmt.Fprintln(os.Stderr, "Try 'touch --help' for more information.")

		return ExitFatal
	}

	if cmd.Help {
		parser.WriteHelp(os.Stdout)
		return 0
	}

	if err := cmd.Execute(files); err != nil {
		cliErr := &Error{}
		if !errors.As(err, &cliErr) {
			cliErr = NewError(err.Error())
		}

		if cliErr.msg != "" {
			fmt.Fprintf(os.Stderr, "touch: %s\n", cliErr.msg)
		}

		return cliErr.code
	}

	return 0
}

// Execute touches files according to the parsed options.
func (c *Cmd) Execute(files []string) error {
	if c.Verbose {
		if err := log.SetVerbose(true); err != nil {
			return NewError("failed to enable verbose output")
		}
	}

	settings, err := touch.ReadSettings(c.Config)
	if err != nil {
		return NewError(fmt.Sprintf("cannot read config: %v", err))
	}

	cfg, err := touch.NewConfig(c.options())
	if err != nil {
		return NewError(err.Error())
	}

	if c.ShowConfig {
		spew.Fdump(os.Stdout, settings, cfg)
		return nil
	}

	if len(files) == 0 {
		return NewError("missing file operand\nTry 'touch --help' for more information.")
	}

	times, err := settings.Resolver().Resolve(cfg)
	if err != nil {
		return NewError(err.Error())
	}

	jobs := settings.Jobs
	if c.Jobs > 0 {
		jobs = c.Jobs
	}

	applier := &touch.Applier{
		Jobs: jobs,
		Report: func(o touch.Outcome) {
			if o.Kind == touch.Failed {
				fmt.Fprintf(os.Stderr, "touch: cannot touch '%s': %v\n", o.Path, reason(o.Err))
			}
		},
	}

	outcomes := applier.Apply(files, times, cfg)

	if c.Summary {
		printSummary(os.Stdout, outcomes)
	}

	if outcomes.Failed() {
		return errFilesFailed
	}

	return nil
}
