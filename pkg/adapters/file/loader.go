package file

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aretw0/sluice/internal/compiler"
	"github.com/aretw0/sluice/pkg/domain"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// document is the YAML/JSON network file layout.
type document struct {
	Start     string       `mapstructure:"start"`
	Horizon   int          `mapstructure:"horizon"`
	Agents    int          `mapstructure:"agents"`
	BeamWidth int          `mapstructure:"beam_width"`
	Scorer    string       `mapstructure:"scorer"`
	Nodes     []nodeRecord `mapstructure:"nodes"`
}

// nodeRecord accepts both the native field names and the ones of the text format.
type nodeRecord struct {
	ID        string   `mapstructure:"id"`
	Yield     *int     `mapstructure:"yield"`
	FlowRate  *int     `mapstructure:"flow_rate"`
	Neighbors []string `mapstructure:"neighbors"`
	Tunnels   []string `mapstructure:"tunnels"`
}

func (r nodeRecord) spec() domain.NodeSpec {
	s := domain.NodeSpec{ID: r.ID, Neighbors: r.Neighbors}
	switch {
	case r.Yield != nil:
		s.Yield = *r.Yield
	case r.FlowRate != nil:
		s.Yield = *r.FlowRate
	}
	if len(s.Neighbors) == 0 {
		s.Neighbors = r.Tunnels
	}
	return s
}

// Loader implements ports.NetworkLoader over files in a directory.
// The format is chosen by extension: .txt uses the line format, .yaml, .yml
// and .json are decoded as documents.
type Loader struct {
	BasePath string
	parser   *compiler.Parser
}

// NewLoader creates a loader rooted at basePath. An empty basePath resolves
// names against the working directory.
func NewLoader(basePath string) *Loader {
	return &Loader{BasePath: basePath, parser: compiler.NewParser()}
}

// Load reads and compiles the named network file.
func (l *Loader) Load(name string) (*domain.Problem, error) {
	path := name
	if l.BasePath != "" && !filepath.IsAbs(name) {
		path = filepath.Join(l.BasePath, name)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read network file: %w", err)
	}

	problem, err := l.Decode(filepath.Ext(path), data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return problem, nil
}

// Decode compiles raw network data given its file extension.
func (l *Loader) Decode(ext string, data []byte) (*domain.Problem, error) {
	switch strings.ToLower(ext) {
	case ".txt", "":
		network, err := l.parser.Compile(data)
		if err != nil {
			return nil, err
		}
		return &domain.Problem{Network: network}, nil
	case ".yaml", ".yml", ".json":
		return decodeDocument(data)
	default:
		return nil, fmt.Errorf("unsupported network format %q", ext)
	}
}

func decodeDocument(data []byte) (*domain.Problem, error) {
	// JSON is a subset of YAML, one decoder serves both.
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedInput, err)
	}
	if raw == nil {
		return nil, domain.ErrEmptyNetwork
	}

	var doc document
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &doc,
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedInput, err)
	}

	specs := make([]domain.NodeSpec, 0, len(doc.Nodes))
	for _, r := range doc.Nodes {
		specs = append(specs, r.spec())
	}

	network, err := domain.Build(specs)
	if err != nil {
		return nil, err
	}

	return &domain.Problem{
		Network: network,
		Defaults: domain.Request{
			Start:     doc.Start,
			Horizon:   doc.Horizon,
			Agents:    doc.Agents,
			BeamWidth: doc.BeamWidth,
			Scorer:    doc.Scorer,
		},
	}, nil
}
