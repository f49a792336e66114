package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/scott-cotton/cli"

	"github.com/signadot/paradoxfmt/internal/config"
	"github.com/signadot/paradoxfmt/internal/engine"
)

func main() {
	cli.MainContext(context.Background(), RootCommand())
}

// envelope is the JSON object spec §6 names: {"content": <string>,
// "changed": <boolean>}.
type envelope struct {
	Content string `json:"content"`
	Changed bool   `json:"changed"`
}

func run(cfg *Config, cc *cli.Context) error {
	src, err := io.ReadAll(cc.In)
	if err != nil {
		return fmt.Errorf("%w: reading standard input: %w", cli.ErrUsage, err)
	}
	opts := &config.Options{
		NoCompact:        cfg.NoCompact,
		UseCountTriggers: cfg.UseCountTriggers,
		UseAnyTriggers:   cfg.UseAnyTriggers,
	}
	content, changed := engine.Process(string(src), opts)
	enc := json.NewEncoder(cc.Out)
	return enc.Encode(envelope{Content: content, Changed: changed})
}
