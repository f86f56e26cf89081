// Command fontnamer is the entrypoint for the font naming toolkit. It
// parses flags for one of the subcommands (parse, collect, policy, sort)
// and runs it: filename parsing, font file collection, name-ID policy
// previews, and family grouping.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/backmassage/fontnamer/internal/collect"
	"github.com/backmassage/fontnamer/internal/config"
	"github.com/backmassage/fontnamer/internal/display"
	"github.com/backmassage/fontnamer/internal/errinfo"
	"github.com/backmassage/fontnamer/internal/font"
	"github.com/backmassage/fontnamer/internal/logging"
	"github.com/backmassage/fontnamer/internal/names"
	"github.com/backmassage/fontnamer/internal/policy"
	"github.com/backmassage/fontnamer/internal/sorter"
	"github.com/backmassage/fontnamer/internal/strutil"
)

// version and commit are set at build time via -ldflags (e.g. Makefile).
var (
	version = "1.0.0-dev"
	commit  = "unknown"
)

func main() {
	args := os.Args[1:]
	if len(args) == 0 {
		config.PrintUsage(os.Stderr)
		os.Exit(2)
	}

	switch args[0] {
	case "-h", "--help", "help":
		config.PrintUsage(os.Stdout)
		os.Exit(0)
	case "-V", "--version", "version":
		fmt.Printf("fontnamer %s (%s)\n", version, commit)
		os.Exit(0)
	}

	command := args[0]
	cfg := config.DefaultConfig()
	if err := config.ParseFlags(&cfg, command, args[1:], os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "fontnamer: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "fontnamer: %v\n", err)
		os.Exit(1)
	}

	log, err := logging.NewLogger(&cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "fontnamer: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	display.PrintBanner()
	log.Debug("fontnamer v%s (%s)", version, commit)

	switch command {
	case "parse":
		err = runParse(&cfg, log)
	case "collect":
		err = runCollect(&cfg, log)
	case "policy":
		err = runPolicy(&cfg, log)
	case "sort":
		err = runSort(&cfg, log)
	default:
		fmt.Fprintf(os.Stderr, "fontnamer: unknown command %q\n\n", command)
		config.PrintUsage(os.Stderr)
		os.Exit(2)
	}
	if err != nil {
		log.Error("%v", err)
		os.Exit(1)
	}
}

// expandInputs resolves the positional arguments: directories are
// collected per the config, existing files pass through, and anything
// else is treated as a literal name string (useful for the parse and
// policy subcommands).
func expandInputs(cfg *config.Config, log *logging.Logger) ([]string, error) {
	var targets []string
	for _, input := range cfg.Inputs {
		info, err := os.Stat(input)
		if err != nil {
			targets = append(targets, input)
			continue
		}
		if !info.IsDir() {
			targets = append(targets, input)
			continue
		}
		files, err := collect.Collect([]string{input}, collectOptions(cfg, log))
		if err != nil {
			return nil, err
		}
		targets = append(targets, files...)
	}
	return targets, nil
}

func collectOptions(cfg *config.Config, log *logging.Logger) collect.Options {
	opts := collect.Options{
		Recursive:  cfg.Recursive,
		Extensions: cfg.Extensions,
	}
	if cfg.Verbose {
		opts.OnProgress = func(p collect.Progress) {
			if p.Done {
				log.Debug("scan complete: %d dirs, %d files, %d matches",
					p.DirsScanned, p.FilesScanned, p.MatchesFound)
				return
			}
			log.Debug("scanning %s (%d files, %d matches)",
				p.CurrentDir, p.FilesScanned, p.MatchesFound)
		}
	}
	return opts
}

func runParse(cfg *config.Config, log *logging.Logger) error {
	targets, err := expandInputs(cfg, log)
	if err != nil {
		return err
	}
	if len(targets) == 0 {
		return errors.New("parse needs at least one name or path")
	}

	for _, target := range targets {
		parsed := names.ParseFilename(target, !cfg.KeepExtension)
		fmt.Print(display.FormatParsedName(parsed))
		fmt.Println()
	}
	log.Success("Parsed %s", display.FormatCount(len(targets), "name"))
	return nil
}

func runCollect(cfg *config.Config, log *logging.Logger) error {
	inputs := cfg.Inputs
	if len(inputs) == 0 {
		inputs = []string{"."}
	}
	files, err := collect.Collect(inputs, collectOptions(cfg, log))
	if err != nil {
		return err
	}
	for _, file := range files {
		fmt.Println(file)
	}
	log.Success("Collected %s", display.FormatCount(len(files), "font file"))
	return nil
}

func runPolicy(cfg *config.Config, log *logging.Logger) error {
	targets, err := expandInputs(cfg, log)
	if err != nil {
		return err
	}
	if len(targets) == 0 {
		return errors.New("policy needs at least one name or path")
	}

	tracker := errinfo.NewTracker()
	for _, target := range targets {
		parsed := names.ParseFilename(target, !cfg.KeepExtension)
		table := buildNameTable(cfg, parsed)
		printNameTable(parsed, table)

		for _, found := range policy.DetectCompoundModifiers(parsed.Family, parsed.Subfamily, "") {
			tracker.Add(errinfo.FromError(errinfo.ContextPolicy, nil, target,
				fmt.Sprintf("possible split compound in %s: %q", found.Source, found.ParsedAs)))
		}
	}

	for _, info := range tracker.Errors() {
		log.Warn("%s", info.UserMessage())
	}
	log.Success("Applied name policy to %s", display.FormatCount(len(targets), "name"))
	return nil
}

// buildNameTable composes the policy outputs for one parsed filename
// into an in-memory name table.
func buildNameTable(cfg *config.Config, parsed names.ParsedName) font.NameTable {
	styleOpts := policy.StyleOptions{Synonyms: cfg.Synonyms}
	buildOpts := policy.BuildOptions{Style: styleOpts}

	family := strutil.EnsureValue(parsed.Family, "Unknown")
	subfamily := parsed.Subfamily
	lower := strings.ToLower(subfamily)
	isBold := strings.Contains(lower, "bold")
	isItalic := strings.Contains(lower, "italic")

	id2 := policy.MapID2Subfamily(isBold, isItalic)
	id17 := policy.EnsureRegularPrefixForPureSlope(policy.BuildID17("", subfamily, ""))
	psName := policy.SanitizePostScript(family + "-" + strutil.EnsureValue(subfamily, "Regular"))

	table := font.NewMemoryTable()
	font.SetWindowsEnglish(table, font.NameIDFamily, policy.BuildID1(family, "", subfamily, "", buildOpts))
	font.SetWindowsEnglish(table, font.NameIDSubfamily, id2)
	font.SetWindowsEnglish(table, font.NameIDFullName, policy.BuildID4(family, "", subfamily, "", buildOpts))
	font.SetWindowsEnglish(table, font.NameIDPostScript, psName)
	font.SetWindowsEnglish(table, font.NameIDTypoFamily, policy.BuildID16(family, buildOpts))
	font.SetWindowsEnglish(table, font.NameIDTypoSubfamily, id17)
	return table
}

func printNameTable(parsed names.ParsedName, table font.NameTable) {
	id2, _ := font.GetWindowsEnglish(table, font.NameIDSubfamily)
	fsSelection, macStyle := policy.ComputeRIBBIFlags(id2)

	rows := [][2]string{{"Input", parsed.Original}}
	for _, key := range table.Keys() {
		value, _ := table.Get(key)
		rows = append(rows, [2]string{fmt.Sprintf("ID %d", key.NameID), value})
	}
	rows = append(rows,
		[2]string{"fsSelection", fmt.Sprintf("0x%04X", fsSelection)},
		[2]string{"macStyle", fmt.Sprintf("0x%04X", macStyle)},
	)
	fmt.Print(display.KeyValueTable(rows))
	fmt.Println()
}

func runSort(cfg *config.Config, log *logging.Logger) error {
	inputs := cfg.Inputs
	if len(inputs) == 0 {
		inputs = []string{"."}
	}
	files, err := collect.Collect(inputs, collectOptions(cfg, log))
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return errors.New("sort found no font files")
	}

	fonts := sorter.FromPaths(files)
	groups := sorter.New(fonts).GroupByFamily(nil)

	for _, family := range sortedKeys(groups) {
		fmt.Printf("%s (%s)\n", family, display.FormatCount(len(groups[family]), "font"))
		for _, info := range groups[family] {
			fmt.Printf("  %s\n", info.Path)
		}
	}

	summary := sorter.Summarize(groups)
	log.Success("Grouped %s into %s",
		display.FormatCount(summary.TotalFonts, "font"),
		display.FormatCount(summary.NumGroups, "family"))
	return nil
}

func sortedKeys(groups map[string][]sorter.FontInfo) []string {
	keys := make([]string, 0, len(groups))
	for key := range groups {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
