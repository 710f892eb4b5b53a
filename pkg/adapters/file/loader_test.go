package file_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/sluice/pkg/adapters/file"
	"github.com/aretw0/sluice/pkg/domain"
	contract "github.com/aretw0/sluice/pkg/ports/tests"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const textNetwork = `# two valves
Valve AA has flow rate=0; tunnels lead to valves BB
Valve BB has flow rate=13; tunnel leads to valve AA
`

const yamlNetwork = `start: AA
horizon: 30
agents: 2
beam_width: 50
scorer: projected
nodes:
  - id: AA
    yield: 0
    neighbors: [BB, CC]
  - id: BB
    flow_rate: "13"
    tunnels: [AA]
  - id: CC
    yield: 2
    neighbors: [AA]
`

const jsonNetwork = `{
  "start": "AA",
  "nodes": [
    {"id": "AA", "yield": 0, "neighbors": ["BB"]},
    {"id": "BB", "yield": 13, "neighbors": ["AA"]}
  ]
}`

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

func TestFileLoader_Contract(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "net.yaml", yamlNetwork)

	contract.NetworkLoaderContractTest(t, file.NewLoader(dir), "net.yaml", []string{"AA", "BB", "CC"})
}

func TestFileLoader_Text(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "net.txt", textNetwork)

	problem, err := file.NewLoader(dir).Load("net.txt")
	require.NoError(t, err)

	assert.Equal(t, []string{"AA", "BB"}, problem.Network.IDs())
	assert.Equal(t, 13, problem.Network.TotalYield())
	assert.Equal(t, domain.Request{}, problem.Defaults)
}

func TestFileLoader_YAMLDefaultsAndAliases(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "net.yml", yamlNetwork)

	problem, err := file.NewLoader(dir).Load("net.yml")
	require.NoError(t, err)

	assert.Equal(t, domain.Request{Start: "AA", Horizon: 30, Agents: 2, BeamWidth: 50, Scorer: "projected"}, problem.Defaults)
	assert.Equal(t, 15, problem.Network.TotalYield())

	bb, ok := problem.Network.Index("BB")
	require.True(t, ok)
	assert.Equal(t, 13, problem.Network.YieldAt(bb))
	assert.Equal(t, []string{"AA"}, problem.Network.Neighbors("BB"))
}

func TestFileLoader_JSON(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "net.json", jsonNetwork)

	problem, err := file.NewLoader(dir).Load("net.json")
	require.NoError(t, err)
	assert.Equal(t, "AA", problem.Defaults.Start)
	assert.Equal(t, 2, problem.Network.Len())
}

func TestFileLoader_AbsolutePath(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "net.txt", textNetwork)

	problem, err := file.NewLoader("/does/not/matter").Load(filepath.Join(dir, "net.txt"))
	require.NoError(t, err)
	assert.Equal(t, 2, problem.Network.Len())
}

func TestFileLoader_Errors(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "bad.txt", "Valve AA has flow rate=x; tunnels lead to valves BB\n")
	writeFile(t, dir, "dangling.yaml", "nodes:\n  - id: AA\n    neighbors: [ZZ]\n")
	writeFile(t, dir, "broken.yaml", "nodes: [\n")
	writeFile(t, dir, "net.toml", "")

	loader := file.NewLoader(dir)

	tests := []struct {
		name      string
		malformed bool
	}{
		{name: "bad.txt", malformed: true},
		{name: "dangling.yaml", malformed: true},
		{name: "broken.yaml", malformed: true},
		{name: "net.toml", malformed: false},
		{name: "missing.txt", malformed: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loader.Load(tt.name)
			require.Error(t, err)
			assert.Equal(t, tt.malformed, errors.Is(err, domain.ErrMalformedInput))
		})
	}
}

func TestFileLoader_EmptyDocument(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "empty.yaml", "")

	_, err := file.NewLoader(dir).Load("empty.yaml")
	assert.ErrorIs(t, err, domain.ErrEmptyNetwork)
}
