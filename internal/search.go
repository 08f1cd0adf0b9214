package internal

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

const (
	DefaultLimit   = 10
	DefaultBackend = "youtube-dl"

	searchPrefix = "ytsearch"
	searchLabel  = "Searching YouTube, please wait.."
)

// SearchToken builds the backend query asking for limit results for query.
func SearchToken(limit int, query string) string {
	return fmt.Sprintf("%s%d:%s", searchPrefix, limit, query)
}

// Searcher runs searches through an external extraction backend such as
// youtube-dl or yt-dlp.
type Searcher struct {
	backend  string
	runner   Runner
	reporter Reporter
	log      *logrus.Logger
}

// NewSearcher returns a Searcher for the backend command line. Nil runner,
// reporter, or logger fall back to ExecRunner, NopReporter, and a discarding
// logger.
func NewSearcher(backend string, runner Runner, reporter Reporter, log *logrus.Logger) *Searcher {
	if log == nil {
		log = discardLogger()
	}
	if runner == nil {
		runner = ExecRunner{Log: log}
	}
	if reporter == nil {
		reporter = NopReporter{}
	}
	return &Searcher{backend: backend, runner: runner, reporter: reporter, log: log}
}

// Search asks the backend for up to limit results matching query and returns
// them in backend order. The call blocks until the backend exits.
func (s *Searcher) Search(ctx context.Context, query string, limit int) ([]SearchResult, error) {
	parts, err := splitCommand(s.backend)
	if err != nil {
		return nil, &ProcessError{Command: s.backend, Err: err}
	}

	args := make([]string, 0, len(parts)+2)
	args = append(args, parts[1:]...)
	args = append(args, SearchToken(limit, query), "--skip-download", "-J")

	s.reporter.Start(searchLabel)
	out, err := s.runner.Run(ctx, parts[0], args...)
	s.reporter.Stop()

	if err != nil {
		if len(bytes.TrimSpace(out)) == 0 {
			var procErr *ProcessError
			if errors.As(err, &procErr) {
				return nil, err
			}
			return nil, &ProcessError{Command: strings.Join(parts, " "), Err: err}
		}
		s.log.WithError(err).Warn("backend exited with an error, parsing its output anyway")
	}

	results, err := ParseResults(out)
	if err != nil {
		return nil, err
	}
	s.log.WithFields(logrus.Fields{"query": query, "limit": limit, "results": len(results)}).Debug("search finished")
	return results, nil
}

// SearchID looks up a single upload by its id.
func (s *Searcher) SearchID(ctx context.Context, id string) (SearchResult, error) {
	results, err := s.Search(ctx, id, 1)
	if err != nil {
		return SearchResult{}, err
	}
	if len(results) == 0 {
		return SearchResult{}, &EmptyResultError{Query: id}
	}
	return results[0], nil
}

// ────────────────────────────────
// BACKEND OUTPUT
// ────────────────────────────────

// ParseResults decodes the JSON document printed by the backend's -J mode.
func ParseResults(data []byte) ([]SearchResult, error) {
	if !json.Valid(data) {
		var decoded any
		err := json.Unmarshal(data, &decoded)
		if err == nil {
			err = errors.New("invalid JSON")
		}
		return nil, &ParseError{Err: err}
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil || doc == nil {
		return nil, &ShapeError{Field: "(root)", Message: "is not an object"}
	}

	rawEntries, ok := doc["entries"]
	if !ok {
		return nil, &ShapeError{Field: "entries", Message: "is missing"}
	}
	var entries []json.RawMessage
	if err := json.Unmarshal(rawEntries, &entries); err != nil || isNull(rawEntries) {
		return nil, &ShapeError{Field: "entries", Message: "is not an array"}
	}

	results := make([]SearchResult, 0, len(entries))
	for i, raw := range entries {
		res, err := parseEntry(i, raw)
		if err != nil {
			return nil, err
		}
		results = append(results, res)
	}
	return results, nil
}

func parseEntry(index int, raw json.RawMessage) (SearchResult, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return SearchResult{}, &FieldError{Index: index, Field: "(entry)", Err: errors.New("not an object")}
	}

	required := func(name string) (string, error) {
		v, err := scalar(fields[name])
		if err != nil {
			return "", &FieldError{Index: index, Field: name, Err: err}
		}
		return v, nil
	}
	optional := func(name, fallback string) (string, error) {
		v, err := scalar(fields[name])
		if errors.Is(err, errMissing) {
			return fallback, nil
		}
		if err != nil {
			return "", &FieldError{Index: index, Field: name, Err: err}
		}
		return v, nil
	}
	count := func(name string) (int, error) {
		v, err := required(name)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return 0, &FieldError{Index: index, Field: name, Err: fmt.Errorf("not an integer: %q", v)}
		}
		return n, nil
	}

	var (
		res SearchResult
		err error
	)
	if res.ID, err = required("id"); err != nil {
		return SearchResult{}, err
	}
	if res.Title, err = required("title"); err != nil {
		return SearchResult{}, err
	}
	if res.Uploader, err = optional("uploader", ""); err != nil {
		return SearchResult{}, err
	}
	if res.Description, err = optional("description", NoDescription); err != nil {
		return SearchResult{}, err
	}
	if res.Likes, err = count("like_count"); err != nil {
		return SearchResult{}, err
	}
	if res.Dislikes, err = count("dislike_count"); err != nil {
		return SearchResult{}, err
	}
	return res, nil
}

// scalar renders a JSON scalar as text with quotes stripped. Strings are
// decoded first; numbers and booleans keep their literal form. Absent and
// null values report errMissing.
func scalar(raw json.RawMessage) (string, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || isNull(raw) {
		return "", errMissing
	}
	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", err
		}
		return stripQuotes(s), nil
	case '{', '[':
		return "", errors.New("not a scalar")
	default:
		return stripQuotes(string(raw)), nil
	}
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
