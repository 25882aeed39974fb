package git

import (
	"bufio"
	"io"
	"slices"
	"strconv"
	"strings"
	"time"
)

// ParseReflog reads a reflog file in git's on-disk format and returns its
// entries newest first. Each line has the form
//
//	<old-sha> <new-sha> <name> <<email>> <unix-seconds> <tz-offset>\t<message>
//
// Malformed lines are skipped.
func ParseReflog(ref string, r io.Reader) ([]ReflogEntry, error) {
	var entries []ReflogEntry

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		entry, ok := parseReflogLine(scanner.Text())
		if !ok {
			continue
		}
		entry.Ref = ref
		entries = append(entries, entry)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	// The file is appended to, so the last line is the most recent.
	slices.Reverse(entries)
	return entries, nil
}

func parseReflogLine(line string) (ReflogEntry, bool) {
	header, message, _ := strings.Cut(line, "\t")

	oldSha, rest, ok := strings.Cut(header, " ")
	if !ok || len(oldSha) != 40 {
		return ReflogEntry{}, false
	}
	newSha, ident, ok := strings.Cut(rest, " ")
	if !ok || len(newSha) != 40 {
		return ReflogEntry{}, false
	}

	end := strings.LastIndex(ident, ">")
	if end < 0 {
		return ReflogEntry{}, false
	}
	stamp := strings.Fields(ident[end+1:])
	if len(stamp) != 2 {
		return ReflogEntry{}, false
	}

	secs, err := strconv.ParseInt(stamp[0], 10, 64)
	if err != nil {
		return ReflogEntry{}, false
	}

	return ReflogEntry{
		OldSha:    oldSha,
		NewSha:    newSha,
		Committer: strings.TrimSpace(ident[:end+1]),
		When:      time.Unix(secs, 0).In(parseTimezone(stamp[1])),
		Message:   strings.TrimSpace(message),
	}, true
}

// parseTimezone converts a "+hhmm" / "-hhmm" offset to a fixed zone.
func parseTimezone(tz string) *time.Location {
	if len(tz) != 5 || (tz[0] != '+' && tz[0] != '-') {
		return time.UTC
	}
	hours, err1 := strconv.Atoi(tz[1:3])
	mins, err2 := strconv.Atoi(tz[3:5])
	if err1 != nil || err2 != nil {
		return time.UTC
	}
	offset := hours*3600 + mins*60
	if tz[0] == '-' {
		offset = -offset
	}
	return time.FixedZone(tz, offset)
}
