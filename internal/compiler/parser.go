package compiler

import (
	"bufio"
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/aretw0/sluice/pkg/domain"
)

// lineRE matches the puzzle line format, singular or plural:
//
//	Valve AA has flow rate=0; tunnels lead to valves DD, II, BB
//	Valve HH has flow rate=22; tunnel leads to valve GG
var lineRE = regexp.MustCompile(`^Valve\s+(\S+)\s+has flow rate=([^;]*);\s*tunnels?\s+leads?\s+to\s+valves?\s*(.*)$`)

// Parser is responsible for converting the line-oriented text description into node specs.
type Parser struct{}

// NewParser creates a new parser instance.
func NewParser() *Parser {
	return &Parser{}
}

// Parse decodes every non-blank line of data. Lines starting with '#' are comments.
// Errors wrap domain.ErrMalformedInput and carry the 1-based line number.
func (p *Parser) Parse(data []byte) ([]domain.NodeSpec, error) {
	var specs []domain.NodeSpec

	scanner := bufio.NewScanner(bytes.NewReader(data))
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		spec, err := p.ParseLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		specs = append(specs, spec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read network: %w", err)
	}

	return specs, nil
}

// ParseLine decodes a single node line.
func (p *Parser) ParseLine(line string) (domain.NodeSpec, error) {
	m := lineRE.FindStringSubmatch(strings.TrimSpace(line))
	if m == nil {
		return domain.NodeSpec{}, &domain.InputError{Reason: fmt.Sprintf("unrecognized line %q", line)}
	}

	yield, err := domain.ParseYield(m[2])
	if err != nil {
		return domain.NodeSpec{}, &domain.InputError{Node: m[1], Reason: fmt.Sprintf("flow rate %q is not a non-negative integer", m[2])}
	}

	spec := domain.NodeSpec{ID: m[1], Yield: yield}
	for _, to := range strings.Split(m[3], ",") {
		if to = strings.TrimSpace(to); to != "" {
			spec.Neighbors = append(spec.Neighbors, to)
		}
	}
	return spec, nil
}

// Compile parses data and builds the network in one go.
func (p *Parser) Compile(data []byte) (*domain.Network, error) {
	specs, err := p.Parse(data)
	if err != nil {
		return nil, err
	}
	return domain.Build(specs)
}
