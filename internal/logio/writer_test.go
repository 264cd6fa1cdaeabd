package logio

import (
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Writer(t *testing.T) {
	var lines []string
	lw := &Writer{Logf: func(mess string, args ...interface{}) {
		lines = append(lines, fmt.Sprintf(mess, args...))
	}}

	_, err := io.WriteString(lw, "hello\nwor")
	require.NoError(t, err)
	assert.Equal(t, []string{"hello"}, lines)

	_, err = io.WriteString(lw, "ld\r\n\nbye")
	require.NoError(t, err)
	assert.Equal(t, []string{"hello", "world", ""}, lines)

	require.NoError(t, lw.Close())
	assert.Equal(t, []string{"hello", "world", "", "bye"}, lines)

	require.NoError(t, lw.Flush())
	assert.Len(t, lines, 4, "expected nothing left to flush")
}

func Test_Writer_noLogf(t *testing.T) {
	var lw Writer
	n, err := lw.Write([]byte("dropped\n"))
	require.NoError(t, err)
	assert.Equal(t, 8, n)
}
