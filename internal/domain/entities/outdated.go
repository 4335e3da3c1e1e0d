package entities

import (
	"bufio"
	"bytes"
	"encoding/json"
	"sort"

	"github.com/Masterminds/semver/v3"
)

// OutdatedFormat identifies the shape of a manager's "outdated --json" output.
type OutdatedFormat int

const (
	// OutdatedFormatMapping is a JSON object keyed by package name (npm, pnpm).
	OutdatedFormatMapping OutdatedFormat = iota
	// OutdatedFormatTableEvents is newline-delimited JSON with "table" events (yarn).
	OutdatedFormatTableEvents
)

// UpdateType classifies the distance between the current and latest versions.
type UpdateType string

const (
	UpdateMajor   UpdateType = "major"
	UpdateMinor   UpdateType = "minor"
	UpdatePatch   UpdateType = "patch"
	UpdateNone    UpdateType = "none"
	UpdateUnknown UpdateType = "unknown"
)

// OutdatedRecord is a package whose installed version differs from the
// version satisfying the manifest range.
type OutdatedRecord struct {
	Name       string
	Current    string
	Wanted     string
	Latest     string
	Kind       DependencyKind
	UpdateType UpdateType
}

// ClassifyOutdated normalizes raw outdated output into records. Entries where
// current equals wanted are not outdated and are left out; malformed entries are
// dropped and counted in the returned stats.
func ClassifyOutdated(format OutdatedFormat, raw []byte) ([]OutdatedRecord, ParseStats) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return []OutdatedRecord{}, ParseStats{}
	}
	switch format {
	case OutdatedFormatTableEvents:
		return classifyOutdatedTable(raw)
	default:
		return classifyOutdatedMapping(raw)
	}
}

type outdatedEntry struct {
	Current        string `json:"current"`
	Wanted         string `json:"wanted"`
	Latest         string `json:"latest"`
	DependencyType string `json:"dependencyType"`
	Type           string `json:"type"`
}

func classifyOutdatedMapping(raw []byte) ([]OutdatedRecord, ParseStats) {
	stats := ParseStats{}
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(raw, &doc); err != nil {
		stats.drop()
		return []OutdatedRecord{}, stats
	}

	names := make([]string, 0, len(doc))
	for name := range doc {
		names = append(names, name)
	}
	sort.Strings(names)

	records := make([]OutdatedRecord, 0, len(names))
	for _, name := range names {
		entries, ok := decodeOutdatedEntries(doc[name])
		if !ok {
			stats.drop()
			continue
		}
		for _, entry := range entries {
			stats.keep()
			kind := entry.DependencyType
			if kind == "" {
				kind = entry.Type
			}
			if record, include := newOutdatedRecord(name, entry.Current, entry.Wanted, entry.Latest, kind); include {
				records = append(records, record)
			}
		}
	}
	return records, stats
}

// decodeOutdatedEntries accepts a single object or, as npm prints for
// packages installed at several locations, an array of objects.
func decodeOutdatedEntries(raw json.RawMessage) ([]outdatedEntry, bool) {
	var single outdatedEntry
	if err := json.Unmarshal(raw, &single); err == nil {
		return []outdatedEntry{single}, single.Wanted != ""
	}
	var many []outdatedEntry
	if err := json.Unmarshal(raw, &many); err != nil || len(many) == 0 {
		return nil, false
	}
	valid := many[:0]
	for _, entry := range many {
		if entry.Wanted != "" {
			valid = append(valid, entry)
		}
	}
	return valid, len(valid) > 0
}

// streamEvent is one line of yarn's NDJSON output. Data is only decoded once
// the type is known, since info and warning events carry a plain string.
type streamEvent struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

type tableData struct {
	Body [][]any `json:"body"`
}

const tableRowColumns = 5

func classifyOutdatedTable(raw []byte) ([]OutdatedRecord, ParseStats) {
	stats := ParseStats{}
	records := []OutdatedRecord{}

	scanner := bufio.NewScanner(bytes.NewReader(raw))
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxEventLineSize)
	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		var event streamEvent
		if err := json.Unmarshal(line, &event); err != nil {
			stats.drop()
			continue
		}
		if event.Type != "table" {
			continue
		}
		var table tableData
		if err := json.Unmarshal(event.Data, &table); err != nil {
			stats.drop()
			continue
		}
		for _, row := range table.Body {
			cells, ok := stringCells(row, tableRowColumns)
			if !ok {
				stats.drop()
				continue
			}
			stats.keep()
			if record, include := newOutdatedRecord(cells[0], cells[1], cells[2], cells[3], cells[4]); include {
				records = append(records, record)
			}
		}
	}
	return records, stats
}

// stringCells returns the first n cells of a row when all of them are strings.
func stringCells(row []any, n int) ([]string, bool) {
	if len(row) < n {
		return nil, false
	}
	cells := make([]string, n)
	for i := range n {
		value, ok := row[i].(string)
		if !ok {
			return nil, false
		}
		cells[i] = value
	}
	return cells, cells[0] != ""
}

func newOutdatedRecord(name, current, wanted, latest, kind string) (OutdatedRecord, bool) {
	if current == wanted {
		return OutdatedRecord{}, false
	}
	return OutdatedRecord{
		Name:       name,
		Current:    current,
		Wanted:     wanted,
		Latest:     latest,
		Kind:       ParseDependencyKind(kind),
		UpdateType: ClassifyUpdate(current, latest),
	}, true
}

// ClassifyUpdate reports whether moving from current to target is a major,
// minor or patch bump. Non-semver inputs yield UpdateUnknown.
func ClassifyUpdate(current, target string) UpdateType {
	from, err := semver.NewVersion(current)
	if err != nil {
		return UpdateUnknown
	}
	to, err := semver.NewVersion(target)
	if err != nil {
		return UpdateUnknown
	}
	switch {
	case !to.GreaterThan(from):
		return UpdateNone
	case to.Major() > from.Major():
		return UpdateMajor
	case to.Minor() > from.Minor():
		return UpdateMinor
	default:
		return UpdatePatch
	}
}
