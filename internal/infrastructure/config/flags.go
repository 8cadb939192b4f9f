package config

import (
	"strings"

	"github.com/spf13/pflag"
)

// FileNameFlag names the card database file
const FileNameFlag = "fileName"

// DefaultFileName is used when no file name is given on the command line
const DefaultFileName = "default.db"

// NormalizeArgs rewrites the single-dash long form "-fileName" into "--fileName"
// so that pflag does not read it as a cluster of shorthand flags
func NormalizeArgs(args []string) []string {
	normalized := make([]string, 0, len(args))
	for _, arg := range args {
		if arg == "-"+FileNameFlag || strings.HasPrefix(arg, "-"+FileNameFlag+"=") {
			arg = "-" + arg
		}
		normalized = append(normalized, arg)
	}
	return normalized
}

// ParseFlags parses the command line into a flag set.
// A single positional argument is accepted as the file name when the flag is absent.
func ParseFlags(name string, args []string) (*pflag.FlagSet, error) {
	flags := pflag.NewFlagSet(name, pflag.ContinueOnError)
	flags.StringP(FileNameFlag, "f", DefaultFileName, "path of the SQLite card database")

	if err := flags.Parse(NormalizeArgs(args)); err != nil {
		return nil, err
	}

	if !flags.Changed(FileNameFlag) && flags.NArg() == 1 {
		if err := flags.Set(FileNameFlag, flags.Arg(0)); err != nil {
			return nil, err
		}
	}

	return flags, nil
}
