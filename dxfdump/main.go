package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/synadia-labs/dxf.go/dxfdump/core"
	"github.com/synadia-labs/dxf.go/hatch"
	dxf "github.com/synadia-labs/dxf.go/runtime"
)

// CLI defines the dxfdump command-line interface.
//
// Every flag can also be set from a TOML file, either one named with
// --config or ~/.config/dxfdump.toml / ./.dxfdump.toml, using the long
// flag name as key.
type CLI struct {
	Input              string          `arg:"" help:"DXF file to read" type:"existingfile"`
	Output             string          `short:"o" help:"Output file (defaults to stdout)"`
	Format             string          `short:"f" help:"Output format (${enum})" enum:"json,yaml,cbor,msgpack,pairs" default:"json"`
	StrictPatternLines bool            `help:"Require pattern line fields in the documented order"`
	SkipMalformed      bool            `help:"Skip hatches that fail to decode instead of stopping"`
	Verbose            bool            `short:"v" help:"Enable verbose diagnostics"`
	Config             kong.ConfigFlag `help:"TOML configuration file"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("dxfdump"),
		kong.Description("Decode the HATCH entities of a DXF file and print their boundaries and pattern lines."),
		kong.Configuration(core.TOMLLoader, "~/.config/dxfdump.toml", ".dxfdump.toml"),
	)

	if err := run(&cli); err != nil {
		ctx.FatalIfErrorf(err)
	}
}

func run(cli *CLI) error {
	if cli.Verbose {
		dxf.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	var w io.Writer = os.Stdout
	if out := strings.TrimSpace(cli.Output); out != "" {
		f, err := os.Create(out)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer f.Close()
		w = f
	}

	opts := core.Options{
		Format: cli.Format,
		Decode: hatch.Options{
			StrictPatternLines: cli.StrictPatternLines,
			SkipMalformed:      cli.SkipMalformed,
		},
	}
	return core.Run(cli.Input, w, opts)
}
