// internal/app/app_test.go
package app

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFasta(t *testing.T, data string) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), "in.fa")
	require.NoError(t, os.WriteFile(fn, []byte(data), 0o644))
	return fn
}

func run(t *testing.T, argv ...string) (int, string, string) {
	t.Helper()
	var out, errBuf bytes.Buffer
	code := Run(argv, &out, &errBuf)
	return code, out.String(), errBuf.String()
}

func TestExactDedupeDefault(t *testing.T) {
	fn := writeFasta(t, ">a\nACGT\n>b\nACGT\n>c\nTTTT\n")
	code, out, errOut := run(t, fn)
	assert.Equal(t, 0, code)
	assert.Equal(t, ">a\nACGT\n>c\nTTTT\n", out)
	assert.Contains(t, errOut, "removing exact duplicates")
	assert.Contains(t, errOut, "final unique sequences")
}

func TestDNAFlagDropsReverseComplement(t *testing.T) {
	fn := writeFasta(t, ">a\nATG\n>b\nCAT\n")
	code, out, _ := run(t, "-d", fn)
	assert.Equal(t, 0, code)
	assert.Equal(t, ">a\nATG\n", out)

	// Without -d both strands are distinct.
	code, out, _ = run(t, fn)
	assert.Equal(t, 0, code)
	assert.Equal(t, ">a\nATG\n>b\nCAT\n", out)
}

func TestSubstringFlag(t *testing.T) {
	// Contained record listed first: output follows length-descending
	// order, not input order.
	fn := writeFasta(t, ">short\nACGT\n>long\nTTACGTTT\n")
	code, out, errOut := run(t, "-s", fn)
	assert.Equal(t, 0, code)
	assert.Equal(t, ">long\nTTACGTTT\n", out)
	assert.Contains(t, errOut, "removing substring sequences")
}

func TestSubstringOffByDefault(t *testing.T) {
	fn := writeFasta(t, ">short\nACGT\n>long\nTTACGTTT\n")
	code, out, _ := run(t, fn)
	assert.Equal(t, 0, code)
	assert.Equal(t, ">short\nACGT\n>long\nTTACGTTT\n", out)
}

func TestOutputFile(t *testing.T) {
	fn := writeFasta(t, ">a\nACGT\n>b\nACGT\n")
	outFn := filepath.Join(t.TempDir(), "out.fa")
	code, out, _ := run(t, "-o", outFn, fn)
	assert.Equal(t, 0, code)
	assert.Empty(t, out)
	data, err := os.ReadFile(outFn)
	require.NoError(t, err)
	assert.Equal(t, ">a\nACGT\n", string(data))
}

func TestQuietSuppressesProgress(t *testing.T) {
	fn := writeFasta(t, ">a\nACGT\n")
	code, _, errOut := run(t, "-q", fn)
	assert.Equal(t, 0, code)
	assert.Empty(t, errOut)
}

func TestInvalidCharacterFails(t *testing.T) {
	fn := writeFasta(t, ">a\nACGTX\n")
	code, out, errOut := run(t, "-d", fn)
	assert.Equal(t, 1, code)
	assert.Empty(t, out)
	assert.Contains(t, errOut, "invalid sequence character")
	assert.Contains(t, errOut, "position 4")
}

func TestMissingInputFile(t *testing.T) {
	code, _, errOut := run(t, filepath.Join(t.TempDir(), "nope.fa"))
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "nope.fa")
}

func TestUsageErrorExit2(t *testing.T) {
	code, _, errOut := run(t)
	assert.Equal(t, 2, code)
	assert.Contains(t, errOut, "--help")

	code, _, _ = run(t, "--bogus", "in.fa")
	assert.Equal(t, 2, code)
}

func TestInvalidLogLevelExit2(t *testing.T) {
	fn := writeFasta(t, ">a\nACGT\n")
	code, _, errOut := run(t, "--log-level", "loud", fn)
	assert.Equal(t, 2, code)
	assert.Contains(t, errOut, "log-level")
}

func TestVersionFlag(t *testing.T) {
	code, out, _ := run(t, "--version")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "seqdedupe")
}

func TestCancelledContextExit130(t *testing.T) {
	fn := writeFasta(t, ">a\nACGT\n")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var out, errBuf bytes.Buffer
	code := RunContext(ctx, []string{fn}, &out, &errBuf)
	assert.Equal(t, 130, code)
}

func TestWrappedOutput(t *testing.T) {
	long := strings.Repeat("A", 70)
	fn := writeFasta(t, ">a\n"+long+"\n")
	code, out, _ := run(t, fn)
	assert.Equal(t, 0, code)
	assert.Equal(t, ">a\n"+strings.Repeat("A", 60)+"\n"+strings.Repeat("A", 10)+"\n", out)
}
