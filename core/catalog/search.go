package catalog

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/hcmut-hub/tkb/core"
)

type (
	// SearchIndex resolves a free-text query into a ranked candidate course
	// set. Two tiers: a prefix fast path for queries that look like course
	// codes, then a weighted fuzzy match over code, name and lecturers.
	// Read-only after construction.
	SearchIndex struct {
		conf core.SearchConfig
		docs []searchDoc
	}

	searchDoc struct {
		course   *Course
		codeNorm string
		nameNorm string
		// flattened lecturer names, lead and practical alike
		lecturers string
	}
)

func NewSearchIndex(conf core.SearchConfig, cat Catalog) *SearchIndex {
	idx := &SearchIndex{
		conf: conf,
		docs: make([]searchDoc, 0, len(cat)),
	}
	for ci := range cat {
		c := &cat[ci]
		idx.docs = append(idx.docs, searchDoc{
			course:    c,
			codeNorm:  core.NormalizeSearchText(c.CourseCode),
			nameNorm:  core.NormalizeSearchText(c.CourseName),
			lecturers: core.NormalizeSearchText(strings.Join(c.Lecturers(), " ")),
		})
	}
	return idx
}

// Search returns the ranked matching courses for a free-text query, bounded
// by the configured result limit. An empty query matches nothing.
func (idx *SearchIndex) Search(q string) []*Course {
	q = core.CleanString(q)
	if q == "" {
		return nil
	}
	qNorm := core.NormalizeSearchText(q)

	// FAST PATH: a digit in the query heuristically means a course-code
	// search; a prefix scan often returns exact matches without paying the
	// fuzzy match cost. Fall through only when it finds nothing.
	if strings.ContainsAny(q, "0123456789") {
		if matches := idx.prefixMatches(qNorm); len(matches) > 0 {
			return matches
		}
	}

	return idx.fuzzyMatches(qNorm)
}

func (idx *SearchIndex) prefixMatches(qNorm string) []*Course {
	var matches []*Course
	for i := range idx.docs {
		if strings.HasPrefix(idx.docs[i].codeNorm, qNorm) {
			matches = append(matches, idx.docs[i].course)
			if len(matches) == idx.conf.Limit {
				break
			}
		}
	}
	return matches
}

type scoredCourse struct {
	course *Course
	score  float64
}

func (idx *SearchIndex) fuzzyMatches(qNorm string) []*Course {
	weightSum := idx.conf.CodeWeight + idx.conf.NameWeight + idx.conf.LecturerWeight
	if weightSum == 0 {
		return nil
	}

	var scored []scoredCourse
	for i := range idx.docs {
		doc := &idx.docs[i]
		simCode := similarity(qNorm, doc.codeNorm)
		simName := similarity(qNorm, doc.nameNorm)
		simLect := similarity(qNorm, doc.lecturers)
		if simCode < idx.conf.Threshold && simName < idx.conf.Threshold && simLect < idx.conf.Threshold {
			continue
		}
		score := (simCode*idx.conf.CodeWeight + simName*idx.conf.NameWeight + simLect*idx.conf.LecturerWeight) / weightSum
		scored = append(scored, scoredCourse{course: doc.course, score: score})
	}

	// rank by score; catalog order breaks ties
	sort.SliceStable(scored, func(i, j int) bool { return scored[i].score > scored[j].score })

	n := len(scored)
	if idx.conf.Limit > 0 && n > idx.conf.Limit {
		n = idx.conf.Limit
	}
	matches := make([]*Course, 0, n)
	for _, sc := range scored[:n] {
		matches = append(matches, sc.course)
	}
	return matches
}

// similarity scores how well the query matches one normalized field, in
// [0, 1]. Containment counts as a full match; otherwise character-bigram
// Jaccard similarity, which tolerates the typos and partial words a fuzzy
// search is there for.
func similarity(qNorm, field string) float64 {
	if qNorm == "" || field == "" {
		return 0
	}
	if strings.Contains(field, qNorm) {
		return 1
	}
	qGrams := bigrams(qNorm)
	fGrams := bigrams(field)
	if len(qGrams) == 0 || len(fGrams) == 0 {
		return 0
	}
	var common int
	for g := range qGrams {
		if _, ok := fGrams[g]; ok {
			common++
		}
	}
	union := len(qGrams) + len(fGrams) - common
	return float64(common) / float64(union)
}

func bigrams(s string) map[string]struct{} {
	runes := []rune(s)
	grams := make(map[string]struct{}, len(runes))
	if len(runes) < 2 {
		grams[s] = struct{}{}
		return grams
	}
	for i := 0; i+1 < len(runes); i++ {
		grams[string(runes[i:i+2])] = struct{}{}
	}
	return grams
}

// Debouncer coalesces bursts of interactive search input: the callback runs
// only once the input has been stable for the configured delay, and a
// superseded call is simply never acted upon. Last write wins; there is no
// concurrent in-flight work to cancel.
type Debouncer struct {
	delay time.Duration

	mu    sync.Mutex
	timer *time.Timer
}

func NewDebouncer(delay time.Duration) *Debouncer {
	return &Debouncer{delay: delay}
}

// Call schedules fn after the delay, dropping any previously scheduled call.
func (d *Debouncer) Call(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, fn)
}

// Stop drops the pending call, if any.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
