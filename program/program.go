// Package program loads statement dumps written in YAML and exposes their
// functions to the clone analysis.
package program

import (
	"fmt"
	"os"
	"strings"

	"github.com/sarchlab/mvprune/api"
	"github.com/sarchlab/mvprune/instr"
	"gopkg.in/yaml.v3"
)

// Unit is one compilation unit of a dump.
type Unit struct {
	Name  string      `yaml:"unit"`
	Funcs []*Function `yaml:"functions"`
}

// Function is one function of a dump.
type Function struct {
	FuncName  string     `yaml:"name"`
	Clones    bool       `yaml:"clones"`
	Extern    bool       `yaml:"external"`
	RawBlocks []rawBlock `yaml:"blocks"`

	blocks []instr.Block
}

// rawBlock holds statements one per line. A literal block scalar keeps "#"
// constants from being read as YAML comments.
type rawBlock struct {
	Label string `yaml:"label"`
	Stmts string `yaml:"stmts"`
}

func (rb rawBlock) lines() []string {
	var lines []string
	for _, line := range strings.Split(rb.Stmts, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

func (f *Function) Name() string {
	return f.FuncName
}

func (f *Function) External() bool {
	return f.Extern
}

func (f *Function) HasCloneMarker() bool {
	return f.Clones
}

func (f *Function) Blocks() []instr.Block {
	return f.blocks
}

// Functions returns the functions of the unit in dump order.
func (u *Unit) Functions() []api.Function {
	fns := make([]api.Function, len(u.Funcs))
	for i, f := range u.Funcs {
		fns[i] = f
	}
	return fns
}

// Function returns the function called name, or nil.
func (u *Unit) Function(name string) *Function {
	for _, f := range u.Funcs {
		if f.FuncName == name {
			return f
		}
	}
	return nil
}

// Parse decodes a YAML dump and parses every statement in it.
func Parse(data []byte) (*Unit, error) {
	u := &Unit{}
	if err := yaml.Unmarshal(data, u); err != nil {
		return nil, fmt.Errorf("failed to decode program: %w", err)
	}

	for _, f := range u.Funcs {
		if f.FuncName == "" {
			return nil, fmt.Errorf("function without a name in unit %q", u.Name)
		}

		if err := f.parseBlocks(); err != nil {
			return nil, fmt.Errorf("function %s: %w", f.FuncName, err)
		}
	}

	return u, nil
}

func (f *Function) parseBlocks() error {
	f.blocks = make([]instr.Block, 0, len(f.RawBlocks))

	for i, rb := range f.RawBlocks {
		lines := rb.lines()
		b := instr.Block{
			Label: rb.Label,
			Insts: make([]*instr.Inst, 0, len(lines)),
		}
		if b.Label == "" {
			b.Label = fmt.Sprintf("bb%d", i)
		}

		for j, line := range lines {
			inst, err := ParseInst(line)
			if err != nil {
				return fmt.Errorf("block %s: statement %d: %w", b.Label, j, err)
			}
			b.Insts = append(b.Insts, inst)
		}

		f.blocks = append(f.blocks, b)
	}

	return nil
}

// LoadFile reads and parses a YAML dump from path.
func LoadFile(path string) (*Unit, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read program file: %w", err)
	}

	u, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	if u.Name == "" {
		u.Name = path
	}

	return u, nil
}
