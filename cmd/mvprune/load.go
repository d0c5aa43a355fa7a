package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sarchlab/mvprune/api"
	"github.com/sarchlab/mvprune/config"
	"github.com/sarchlab/mvprune/gossa"
	"github.com/sarchlab/mvprune/program"
)

// loadUnits loads statement dumps and Go files one by one. Everything else
// is taken as Go package patterns and loaded together.
func loadUnits(cfg *config.Config, args []string) ([]api.Unit, error) {
	loader := gossa.NewLoader().WithSeparator(cfg.Separator)

	var (
		units    []api.Unit
		patterns []string
	)

	for _, arg := range args {
		switch filepath.Ext(arg) {
		case ".yaml", ".yml":
			u, err := program.LoadFile(arg)
			if err != nil {
				return nil, err
			}
			units = append(units, u)
		case ".go":
			src, err := os.ReadFile(arg)
			if err != nil {
				return nil, fmt.Errorf("failed to read Go file: %w", err)
			}

			u, err := loader.LoadSource(arg, src)
			if err != nil {
				return nil, err
			}
			units = append(units, u)
		default:
			patterns = append(patterns, arg)
		}
	}

	if len(patterns) > 0 {
		u, err := loader.Load(".", patterns...)
		if err != nil {
			return nil, err
		}
		units = append(units, u)
	}

	return units, nil
}
