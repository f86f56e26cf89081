// Package collect gathers font files from a mix of file and directory
// arguments: case-insensitive extension matching, optional recursion,
// deduplication, and a sorted absolute-path result for deterministic
// processing order.
package collect

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// Progress is reported to the optional callback while scanning. Updates
// are throttled; a final report with Done set always arrives last.
type Progress struct {
	DirsScanned  int
	FilesScanned int
	MatchesFound int
	CurrentDir   string
	Done         bool
}

// Options control a collection run. Zero value: non-recursive, default
// extensions, no progress reporting.
type Options struct {
	// Recursive descends into subdirectories of directory arguments.
	Recursive bool
	// Extensions overrides the allowed set (lowercase, leading dot).
	Extensions []string
	// OnProgress, when set, receives throttled scan updates.
	OnProgress func(Progress)
}

// DefaultExtensions are the font file extensions collected when Options
// does not override them.
var DefaultExtensions = []string{".ttf", ".otf", ".woff", ".woff2", ".ttx"}

const progressInterval = 100 * time.Millisecond

// Collect walks the given files and directories and returns the matching
// font files as a sorted, deduplicated list of absolute paths. Unreadable
// entries are skipped rather than failing the run.
func Collect(paths []string, opts Options) ([]string, error) {
	allowed := extensionSet(opts.Extensions)
	seen := make(map[string]bool)

	scan := scanner{allowed: allowed, onProgress: opts.OnProgress}
	for _, arg := range paths {
		info, err := os.Stat(arg)
		if err != nil {
			continue
		}
		if info.IsDir() {
			scan.directory(arg, opts.Recursive, seen)
			continue
		}
		scan.file(arg, seen)
	}

	if opts.OnProgress != nil {
		scan.progress.Done = true
		scan.progress.CurrentDir = ""
		opts.OnProgress(scan.progress)
	}

	result := make([]string, 0, len(seen))
	for path := range seen {
		result = append(result, path)
	}
	sort.Strings(result)
	return result, nil
}

type scanner struct {
	allowed    map[string]bool
	onProgress func(Progress)
	progress   Progress
	lastReport time.Time
}

func (s *scanner) file(path string, seen map[string]bool) {
	s.progress.FilesScanned++
	if s.matches(path) {
		if abs, err := filepath.Abs(path); err == nil {
			s.progress.MatchesFound++
			seen[abs] = true
		}
	}
	s.report()
}

func (s *scanner) directory(dir string, recursive bool, seen map[string]bool) {
	if !recursive {
		entries, err := os.ReadDir(dir)
		if err != nil {
			return
		}
		s.progress.DirsScanned++
		s.progress.CurrentDir = dir
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			s.file(filepath.Join(dir, entry.Name()), seen)
		}
		return
	}

	// Walk errors on individual entries are skipped so one unreadable
	// subtree does not abort the scan.
	filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			s.progress.DirsScanned++
			s.progress.CurrentDir = path
			return nil
		}
		s.file(path, seen)
		return nil
	})
}

func (s *scanner) matches(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext != "" && s.allowed[ext]
}

// report throttles progress callbacks to every 200 files or 100ms.
func (s *scanner) report() {
	if s.onProgress == nil {
		return
	}
	now := time.Now()
	if s.progress.FilesScanned%200 == 0 || now.Sub(s.lastReport) > progressInterval {
		s.lastReport = now
		s.onProgress(s.progress)
	}
}

func extensionSet(override []string) map[string]bool {
	exts := override
	if len(exts) == 0 {
		exts = DefaultExtensions
	}
	set := make(map[string]bool, len(exts))
	for _, ext := range exts {
		set[strings.ToLower(ext)] = true
	}
	return set
}
