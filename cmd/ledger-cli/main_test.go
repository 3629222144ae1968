package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadQuestion_FromArgs(t *testing.T) {
	var out bytes.Buffer

	question, err := readQuestion([]string{"how", "much", "did", "I", "spend?"}, strings.NewReader("ignored\n"), &out)

	require.NoError(t, err)
	assert.Equal(t, "how much did I spend?", question)
	assert.Empty(t, out.String())
}

func TestReadQuestion_Prompts(t *testing.T) {
	var out bytes.Buffer

	question, err := readQuestion(nil, strings.NewReader("  上个月支出多少？  \nsecond line\n"), &out)

	require.NoError(t, err)
	assert.Equal(t, "上个月支出多少？", question)
	assert.Equal(t, prompt, out.String())
}

func TestReadQuestion_EOFWithoutNewline(t *testing.T) {
	question, err := readQuestion(nil, strings.NewReader("last 7 days"), &bytes.Buffer{})

	require.NoError(t, err)
	assert.Equal(t, "last 7 days", question)
}

func TestReadQuestion_ReadError(t *testing.T) {
	_, err := readQuestion(nil, iotest.ErrReader(errors.New("closed")), &bytes.Buffer{})

	assert.Error(t, err)
}
