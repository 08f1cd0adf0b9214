package internal

import (
	"errors"
	"fmt"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{&ProcessError{Command: "youtube-dl -J", Err: exec.ErrNotFound}, `run youtube-dl -J: executable file not found in $PATH`},
		{&ProcessError{Command: "yt-dlp", Stderr: "ERROR: offline\n", Err: errors.New("exit status 1")}, `run yt-dlp: exit status 1, stderr: ERROR: offline`},
		{&ParseError{Err: errors.New("unexpected end of JSON input")}, `parse backend output: unexpected end of JSON input`},
		{&ShapeError{Field: "entries", Message: "is missing"}, `unexpected backend output: field 'entries' is missing`},
		{&FieldError{Index: 2, Field: "like_count", Err: errMissing}, `entry 2: field 'like_count': missing`},
		{&EmptyResultError{Query: "abc"}, `no results for "abc"`},
		{&InputError{Input: "9", Count: 3, Err: errOutOfRange}, `invalid selection "9" (expected 0-2): out of range`},
		{&InputError{Input: "0", Count: 0, Err: errOutOfRange}, `invalid selection "0": out of range`},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.err.Error())
	}
}

func TestErrorKinds(t *testing.T) {
	kinds := []struct {
		name  string
		err   error
		check func(error) bool
	}{
		{"process", &ProcessError{Err: errors.New("x")}, IsProcess},
		{"parse", &ParseError{Err: errors.New("x")}, IsParse},
		{"shape", &ShapeError{}, IsShape},
		{"field", &FieldError{Err: errors.New("x")}, IsField},
		{"empty", &EmptyResultError{}, IsEmptyResult},
		{"input", &InputError{Err: errors.New("x")}, IsInput},
	}

	for i, k := range kinds {
		t.Run(k.name, func(t *testing.T) {
			wrapped := fmt.Errorf("search %q: %w", "q", k.err)
			assert.True(t, k.check(wrapped))

			for j, other := range kinds {
				if i != j {
					assert.False(t, other.check(wrapped), "%s matched as %s", k.name, other.name)
				}
			}
		})
	}

	assert.False(t, IsProcess(nil))
	assert.False(t, IsInput(errors.New("plain")))
}

func TestErrorUnwrap(t *testing.T) {
	err := fmt.Errorf("watch: %w", &ProcessError{Command: "mpv", Err: exec.ErrNotFound})
	assert.ErrorIs(t, err, exec.ErrNotFound)

	err = &FieldError{Field: "id", Err: errMissing}
	assert.ErrorIs(t, err, errMissing)
}
