package config

// This file implements CLI flag parsing and help text. The tool is
// subcommand-based (parse, collect, policy, sort); each subcommand shares
// one flag surface, so a single ParseFlags covers all of them. Negated
// flags (e.g. --no-recursive) are applied after Parse so Config defaults
// hold unless set.

import (
	"flag"
	"fmt"
	"io"
	"strings"
)

// ParseFlags parses args (the arguments after the subcommand) into cfg.
// usageOut receives help text; pass os.Stderr. The caller handles --help
// and --version via the returned sentinel errors.
func ParseFlags(cfg *Config, name string, args []string, usageOut io.Writer) error {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(usageOut)
	fs.Usage = func() { PrintUsage(usageOut) }

	var negated negatedFlags
	var extList string

	defineCollectionFlags(fs, cfg, &negated, &extList)
	defineParsingFlags(fs, cfg)
	defineDisplayFlags(fs, cfg, &negated)

	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := applyNegatedFlags(cfg, &negated); err != nil {
		return err
	}
	if extList != "" {
		exts, err := ParseExtensionList(extList)
		if err != nil {
			return err
		}
		cfg.Extensions = exts
	}

	cfg.Inputs = fs.Args()
	return nil
}

// negatedFlags holds boolean flags that are applied after Parse. These
// invert a default (e.g. noRecursive -> Recursive=false).
type negatedFlags struct {
	noRecursive bool
	forceColor  bool
	noColor     bool
}

// defineCollectionFlags registers -r/--recursive, --no-recursive, --ext.
func defineCollectionFlags(fs *flag.FlagSet, cfg *Config, n *negatedFlags, extList *string) {
	fs.BoolVar(&cfg.Recursive, "recursive", cfg.Recursive, "Recurse into directories (default: on)")
	fs.BoolVar(&cfg.Recursive, "r", cfg.Recursive, "Same as --recursive")
	fs.BoolVar(&n.noRecursive, "no-recursive", false, "Do not recurse into directories")
	fs.StringVar(extList, "ext", "", "Comma-separated extension list (default: ttf,otf,woff,woff2,ttx)")
}

// defineParsingFlags registers --keep-ext, --synonyms, --dry-run.
func defineParsingFlags(fs *flag.FlagSet, cfg *Config) {
	fs.BoolVar(&cfg.KeepExtension, "keep-ext", false, "Keep the file extension when parsing names")
	fs.Var(&synonymModeValue{&cfg.Synonyms}, "synonyms", "Regular-equivalent handling: regular_only | all | off")
	fs.BoolVar(&cfg.DryRun, "dry-run", false, "Preview only; do not write name tables")
	fs.BoolVar(&cfg.DryRun, "d", false, "Same as --dry-run")
}

// defineDisplayFlags registers --color, --no-color, verbose, --log.
func defineDisplayFlags(fs *flag.FlagSet, cfg *Config, n *negatedFlags) {
	fs.BoolVar(&n.forceColor, "color", false, "Force colored logs")
	fs.BoolVar(&n.noColor, "no-color", false, "Disable colored logs")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "Verbose output")
	fs.BoolVar(&cfg.Verbose, "v", false, "Same as --verbose")
	fs.StringVar(&cfg.LogFile, "log", "", "Append logs to file")
	fs.StringVar(&cfg.LogFile, "l", "", "Same as --log")
}

// applyNegatedFlags copies negated flag values into cfg.
func applyNegatedFlags(cfg *Config, n *negatedFlags) error {
	if n.noRecursive {
		cfg.Recursive = false
	}
	if n.noColor {
		cfg.ColorMode = ColorNever
	} else if n.forceColor {
		cfg.ColorMode = ColorAlways
	}
	return nil
}

// PrintUsage writes the help text to w. Column-aligned for readability.
func PrintUsage(w io.Writer) {
	const col1 = 28 // width of "  -x, --long-name <arg>  "
	lines := []struct {
		flags string
		desc  string
	}{
		{"", "fontnamer — font filename parsing and name-policy toolkit"},
		{"", ""},
		{"  fontnamer <command> [OPTIONS] [inputs...]", ""},
		{"", ""},
		{"Commands", ""},
		{"  parse", "Format name strings or parse font file paths"},
		{"  collect", "List collected font files"},
		{"  policy", "Show name-ID policy outputs for parsed names"},
		{"  sort", "Group collected font files by family"},
		{"", ""},
		{"Collection", ""},
		{"  -r, --recursive", "Recurse into directories (default: on)"},
		{"  --no-recursive", "Do not recurse"},
		{"  --ext <list>", "Extensions, comma-separated (default: ttf,otf,woff,woff2,ttx)"},
		{"", ""},
		{"Parsing", ""},
		{"  --keep-ext", "Keep the file extension when parsing names"},
		{"  --synonyms <mode>", "regular_only | all | off (default: regular_only)"},
		{"  -d, --dry-run", "Preview only; do not write name tables"},
		{"", ""},
		{"Display", ""},
		{"  --color", "Force colored logs"},
		{"  --no-color", "Disable colored logs"},
		{"  -v, --verbose", "Verbose output"},
		{"  -l, --log <path>", "Append logs to file"},
		{"", ""},
		{"Utility", ""},
		{"  -V, --version", "Print version and exit"},
		{"  -h, --help", "Show this help and exit"},
	}

	for _, l := range lines {
		if l.flags == "" && l.desc == "" {
			fmt.Fprintln(w)
			continue
		}
		if l.desc == "" {
			fmt.Fprintln(w, l.flags)
			continue
		}
		if l.flags == "" {
			fmt.Fprintln(w, l.desc)
			continue
		}
		padding := col1 - len(l.flags)
		if padding < 1 {
			padding = 1
		}
		fmt.Fprintf(w, "%s%*s%s\n", l.flags, padding, "", l.desc)
	}
}

// flag.Value adapter so the SynonymMode enum works with flag.Var.

type synonymModeValue struct{ p *SynonymMode }

func (s *synonymModeValue) String() string {
	if s.p == nil {
		return ""
	}
	return string(*s.p)
}

func (s *synonymModeValue) Set(v string) error {
	switch strings.ToLower(v) {
	case "regular_only":
		*s.p = SynonymRegularOnly
	case "all":
		*s.p = SynonymAll
	case "off":
		*s.p = SynonymOff
	default:
		return fmt.Errorf("invalid synonym mode %q (use 'regular_only', 'all' or 'off')", v)
	}
	return nil
}
