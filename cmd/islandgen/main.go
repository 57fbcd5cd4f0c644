package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/gogpu/gg"

	"islandgen/internal/app"
	"islandgen/internal/render"
	"islandgen/internal/server"
	"islandgen/pkg/worldgen"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	out := flag.String("out", "island.png", "PNG output path (empty to skip)")
	jsonOut := flag.String("json", "", "JSON summary output path (- for stdout)")
	fields := flag.Bool("fields", false, "include height and moisture fields in the JSON output")
	flag.Parse()

	logger := app.NewLogger(os.Stderr, cfg.Verbose)
	worldgen.SetLogger(logger)
	gg.SetLogger(logger)

	world, err := cfg.Resolve(flag.CommandLine)
	if err != nil {
		logger.Error("invalid configuration", "err", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	res, err := worldgen.Generate(ctx, world)
	if err != nil {
		logger.Error("generation failed", "err", err)
		os.Exit(1)
	}

	if *out != "" {
		style := render.DefaultStyle()
		style.Scale = cfg.Scale
		if err := writeFile(*out, func(w io.Writer) error { return render.ExportPNG(w, res, style) }); err != nil {
			logger.Error("export failed", "path", *out, "err", err)
			os.Exit(1)
		}
		logger.Info("wrote map", "path", *out)
	}

	if *jsonOut != "" {
		msg := server.EncodeWorld("", res, *fields)
		write := func(w io.Writer) error {
			enc := json.NewEncoder(w)
			enc.SetIndent("", "  ")
			return enc.Encode(msg)
		}
		if *jsonOut == "-" {
			err = write(os.Stdout)
		} else {
			err = writeFile(*jsonOut, write)
		}
		if err != nil {
			logger.Error("json export failed", "path", *jsonOut, "err", err)
			os.Exit(1)
		}
	}
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}
