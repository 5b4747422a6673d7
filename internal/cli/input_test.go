package cli

import (
	"bufio"
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rdr(s string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(s))
}

func TestGetSimpleText(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("hello world\n"), "Name?", &out)
	require.NoError(t, err)
	assert.Equal(t, "hello world", got)
	assert.Contains(t, out.String(), "Name?")
}

func TestGetSimpleText_EOFReturnsPartialLine(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("lastline"), "Name?", &out)
	require.NoError(t, err)
	assert.Equal(t, "lastline", got)
}

func TestGetMultiline_EndsOnEmptyLine(t *testing.T) {
	var out bytes.Buffer
	got, err := GetMultiline(rdr("a\nb\n\nignored\n"), "Enter text", &out)
	require.NoError(t, err)
	assert.Equal(t, "a\nb", got)
}

func TestGetLines(t *testing.T) {
	var out bytes.Buffer
	got, err := GetLines(rdr(" one \ntwo\n\n"), "Items", &out)
	require.NoError(t, err)
	assert.Equal(t, []string{"one", "two"}, got)
}

func TestGetIndex_OneBasedToZeroBased(t *testing.T) {
	var out bytes.Buffer
	got, err := GetIndex(rdr("3\n"), "Which?", &out)
	require.NoError(t, err)
	assert.Equal(t, 2, got)
}

func TestGetIndex_RejectsJunk(t *testing.T) {
	var out bytes.Buffer
	for _, input := range []string{"0\n", "-1\n", "abc\n"} {
		_, err := GetIndex(rdr(input), "Which?", &out)
		require.Error(t, err, "input %q", input)
	}
}

func TestGetOptionalFloat(t *testing.T) {
	var out bytes.Buffer

	got, err := GetOptionalFloat(rdr("\n"), "GPA", &out)
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = GetOptionalFloat(rdr("3.7\n"), "GPA", &out)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 3.7, *got)

	_, err = GetOptionalFloat(rdr("high\n"), "GPA", &out)
	require.Error(t, err)
}

func TestGetYesNo(t *testing.T) {
	var out bytes.Buffer

	for _, input := range []string{"y\n", "Y\n", "yes\n"} {
		got, err := GetYesNo(rdr(input), "Sure?", &out)
		require.NoError(t, err)
		assert.True(t, got, "input %q", input)
	}
	for _, input := range []string{"n\n", "no\n", "\n", "whatever\n"} {
		got, err := GetYesNo(rdr(input), "Sure?", &out)
		require.NoError(t, err)
		assert.False(t, got, "input %q", input)
	}
}

func TestGetPassword_Error(t *testing.T) {
	old := readPassword
	defer func() { readPassword = old }()
	readPassword = func(int) ([]byte, error) {
		return nil, errors.New("boom")
	}

	var out bytes.Buffer
	_, err := GetPassword(&out)
	require.Error(t, err)
}
