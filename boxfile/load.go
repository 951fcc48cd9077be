package boxfile

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/guiguan/caster"
	"github.com/npillmayer/boxtree"
	"github.com/npillmayer/boxtree/geom"
)

// Entry is a labeled box record read from a box file. Entries are inserted
// by pointer, making every loaded record a distinct index item even when
// label and box coincide.
type Entry struct {
	Label string
	Box   geom.Box
}

// Bounds returns the box of the record, making *Entry an index item.
func (e *Entry) Bounds() geom.Box {
	return e.Box
}

// Progress is the event type published to Watch subscribers during a load.
type Progress struct {
	Records int  // records inserted so far
	Line    int  // input lines consumed so far
	Done    bool // set on the final event of a load
}

// progressEvery is the record granularity of intermediate Progress events.
const progressEvery = 64

// Loader reads box records from an OS file into an index.
//
// A Loader is good for a single call to Load, which closes the underlying
// file and the progress broadcaster when it returns.
type Loader struct {
	path string
	info os.FileInfo
	file *os.File
	cast *caster.Caster // broadcaster for load progress
}

// Open stats and opens a box file, returning a loader for it.
// name must denote a regular file.
func Open(name string) (*Loader, error) {
	fi, err := os.Stat(name)
	if err != nil {
		tracer().Errorf("cannot stat box file: %v", err)
		return nil, err
	}
	if !fi.Mode().IsRegular() {
		tracer().Errorf("box file is not a regular file: %s", name)
		return nil, fmt.Errorf("box file is not a regular file: %s", name)
	}
	file, err := os.Open(name)
	if err != nil {
		tracer().Errorf("cannot open box file: %v", err)
		return nil, err
	}
	return &Loader{
		path: name,
		info: fi,
		file: file,
		cast: caster.New(nil),
	}, nil
}

// Watch subscribes to Progress events for the load. The returned channel is
// closed when the load ends. Subscribe before calling Load; events are
// dropped for receivers that do not keep up, the last one published carries
// Done.
func (ld *Loader) Watch() <-chan interface{} {
	ch, _ := ld.cast.Sub(nil, 1)
	return ch
}

type record struct {
	entry *Entry
	line  int
	err   error
}

// Load reads all records of the box file and inserts them into idx.
// Parsing runs on a pipeline goroutine; insertion happens on the caller's
// goroutine, so idx needs no synchronization beyond the caller's own.
//
// Load stops at the first malformed record and returns the count of records
// inserted up to that point, together with a positional parse error.
func (ld *Loader) Load(idx *boxtree.Index) (int, error) {
	defer ld.cast.Close()
	defer ld.file.Close()
	records := make(chan record, 16)
	go parseRecords(ld.file, records)
	count, lastLine := 0, 0
	for rec := range records {
		if rec.err != nil {
			tracer().Errorf("box file %s, line %d: %v", ld.path, rec.line, rec.err)
			return count, fmt.Errorf("line %d: %w", rec.line, rec.err)
		}
		idx.Insert(rec.entry)
		count++
		lastLine = rec.line
		if count%progressEvery == 0 {
			ld.cast.TryPub(Progress{Records: count, Line: rec.line})
		}
	}
	ld.cast.TryPub(Progress{Records: count, Line: lastLine, Done: true})
	tracer().Infof("loaded %d box records from %s", count, ld.path)
	return count, nil
}

// parseRecords scans input line by line and sends parsed records downstream.
// Blank lines and lines starting with '#' are skipped. The channel is closed
// when input is exhausted or a record failed to parse.
func parseRecords(input *os.File, records chan<- record) {
	defer close(records)
	scanner := bufio.NewScanner(input)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		entry, err := ParseRecord(text)
		records <- record{entry: entry, line: line, err: err}
		if err != nil {
			return
		}
	}
	if err := scanner.Err(); err != nil {
		records <- record{line: line, err: err}
	}
}

// ParseRecord parses a single box record: an optional label followed by six
// coordinates, min corner before max corner, separated by whitespace.
// Records denoting an empty box are rejected, as an index cannot hold them.
func ParseRecord(text string) (*Entry, error) {
	fields := strings.Fields(text)
	label := ""
	switch len(fields) {
	case 6:
	case 7:
		label = fields[0]
		fields = fields[1:]
	default:
		return nil, fmt.Errorf("%w: expected 6 coordinates, got %d fields",
			ErrBadRecord, len(fields))
	}
	var coords [6]float64
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: coordinate %q", ErrBadRecord, f)
		}
		coords[i] = v
	}
	box, err := geom.New(geom.V(coords[0], coords[1], coords[2]),
		geom.V(coords[3], coords[4], coords[5]))
	if err != nil {
		return nil, err
	}
	if box.IsEmpty() {
		return nil, ErrEmptyBox
	}
	return &Entry{Label: label, Box: box}, nil
}
