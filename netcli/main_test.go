package netcli

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"oss.terrastruct.com/cmdlog"
	"oss.terrastruct.com/xos"

	"oss.ontoplane.com/netgraph/lib/log"
	"oss.ontoplane.com/netgraph/lib/xmain"
)

func testState(t *testing.T) *xmain.State {
	t.Helper()
	env := xos.NewEnv(nil)
	return &xmain.State{
		Name:   "netgraph",
		Stdin:  strings.NewReader(""),
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Log:    cmdlog.NewTB(env, t),
		Env:    env,
	}
}

func TestRenameExt(t *testing.T) {
	assert.Equal(t, "network.svg", renameExt("network.json", ".svg"))
	assert.Equal(t, "network.svg", renameExt("network", ".svg"))
	assert.Equal(t, "a/b.layout.json", renameExt("a/b.json", ".layout.json"))
}

func TestCompile(t *testing.T) {
	ctx := log.WithTB(context.Background(), t)
	ms := testState(t)

	inputPath := filepath.Join(t.TempDir(), "network.json")
	err := os.WriteFile(inputPath, []byte(`{
  "things": [
    {"id": "a", "name": "A"},
    {"id": "b", "name": "B"}
  ],
  "connections": [
    {"source": "a", "target": "b"}
  ]
}`), 0644)
	assert.Nil(t, err)

	lo := layoutOpts{steps: 50, width: 800, height: 600, seed: 7, scale: 1}
	svg, err := compile(ctx, ms, lo, inputPath)
	assert.Nil(t, err)
	assert.Contains(t, string(svg), "<svg")

	lo.snapshot = true
	snap, err := compile(ctx, ms, lo, inputPath)
	assert.Nil(t, err)
	assert.Contains(t, string(snap), `"positions"`)
}

func TestCompileBadDocument(t *testing.T) {
	ctx := log.WithTB(context.Background(), t)
	ms := testState(t)

	inputPath := filepath.Join(t.TempDir(), "bad.json")
	err := os.WriteFile(inputPath, []byte("{"), 0644)
	assert.Nil(t, err)

	_, err = compile(ctx, ms, layoutOpts{steps: 1, width: 800, height: 600}, inputPath)
	assert.NotNil(t, err)
}
