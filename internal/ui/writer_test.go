package ui

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriterPrintf(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriterTo(&buf)

	_, err := w.Printf("hello %s", "world")
	require.NoError(t, err)
	require.Equal(t, "hello world", buf.String())
}

func TestWriterPrintln(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriterTo(&buf)

	_, err := w.Println("line")
	require.NoError(t, err)
	require.Equal(t, "line\n", buf.String())
}

func TestPagerDisabledWritesDirectly(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriterTo(&buf, WithPagerDisabled())

	w.Pager("content")
	require.Equal(t, "content", buf.String())
}

func TestPagerNonFileOutputWritesDirectly(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriterTo(&buf, WithPagerOverride("definitely-not-a-pager"))

	w.Pager("content")
	require.Equal(t, "content", buf.String())
}
