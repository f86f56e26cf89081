package errinfo

import "sync"

// Tracker collects errors during batch processing and answers summary
// queries. Safe for concurrent use.
type Tracker struct {
	mu        sync.Mutex
	errors    []Info
	byContext map[Context][]Info
	byFile    map[string][]Info
}

// NewTracker returns an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{
		byContext: make(map[Context][]Info),
		byFile:    make(map[string][]Info),
	}
}

// Add records an error.
func (t *Tracker) Add(info Info) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.errors = append(t.errors, info)
	t.byContext[info.Context] = append(t.byContext[info.Context], info)
	if info.Path != "" {
		t.byFile[info.Path] = append(t.byFile[info.Path], info)
	}
}

// AddError builds an Info from err and records it.
func (t *Tracker) AddError(ctx Context, err error, path, message string) Info {
	info := FromError(ctx, err, path, message)
	t.Add(info)
	return info
}

// Errors returns a copy of every recorded error in order.
func (t *Tracker) Errors() []Info {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]Info(nil), t.errors...)
}

// ForFile returns the errors recorded against path.
func (t *Tracker) ForFile(path string) []Info {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]Info(nil), t.byFile[path]...)
}

// ByContext returns the errors recorded in the given phase.
func (t *Tracker) ByContext(ctx Context) []Info {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]Info(nil), t.byContext[ctx]...)
}

// HasCritical reports whether any critical error was recorded.
func (t *Tracker) HasCritical() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, info := range t.errors {
		if info.Severity == SeverityCritical {
			return true
		}
	}
	return false
}

// HasNonRecoverable reports whether any recorded error blocks further
// processing.
func (t *Tracker) HasNonRecoverable() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, info := range t.errors {
		if !info.Recoverable {
			return true
		}
	}
	return false
}

// Clear drops every recorded error.
func (t *Tracker) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.errors = nil
	t.byContext = make(map[Context][]Info)
	t.byFile = make(map[string][]Info)
}

// Summary aggregates the recorded errors.
type Summary struct {
	Total           int
	Recoverable     int
	NonRecoverable  int
	ByContext       map[Context]int
	BySeverity      map[Severity]int
	FilesWithErrors int
}

// Summary computes counts across all recorded errors.
func (t *Tracker) Summary() Summary {
	t.mu.Lock()
	defer t.mu.Unlock()

	s := Summary{
		Total:           len(t.errors),
		ByContext:       make(map[Context]int),
		BySeverity:      make(map[Severity]int),
		FilesWithErrors: len(t.byFile),
	}
	for _, info := range t.errors {
		if info.Recoverable {
			s.Recoverable++
		} else {
			s.NonRecoverable++
		}
		s.ByContext[info.Context]++
		s.BySeverity[info.Severity]++
	}
	return s
}
