// Command lz4f compresses and decompresses files in the LZ4 frame format.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/go-faster/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/andybalholm/lz4f"
	"github.com/andybalholm/lz4f/internal/app"
)

type config struct {
	Decompress bool
	Prefs      lz4f.Preferences
	StoreSize  bool
	Jobs       int
	Force      bool
	Explain    bool
}

func run(ctx context.Context, lg *zap.Logger, out io.Writer, cfg config, files []string) error {
	if len(files) == 0 {
		return errors.New("no input files")
	}
	if cfg.Explain {
		for _, name := range files {
			if err := explainFile(out, cfg.Prefs, name); err != nil {
				return errors.Wrap(err, name)
			}
		}
		return nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Jobs)
	for _, name := range files {
		name := name
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			process := compressFile
			if cfg.Decompress {
				process = decompressFile
			}
			if err := process(lg, cfg, name); err != nil {
				return errors.Wrap(err, name)
			}
			return nil
		})
	}
	return g.Wait()
}

func main() {
	var (
		cfg     config
		blockID int
		linked  bool
		verbose bool
	)
	flag.BoolVar(&cfg.Decompress, "d", false, "decompress .lz4 files")
	flag.IntVar(&cfg.Prefs.CompressionLevel, "l", 0, "compression level; 3 to 16 select high compression")
	flag.IntVar(&blockID, "B", 4, "block size: 4=64KB, 5=256KB, 6=1MB, 7=4MB")
	flag.BoolVar(&linked, "linked", true, "let blocks refer to the data of previous blocks")
	flag.BoolVar(&cfg.Prefs.ContentChecksum, "checksum", true, "append a content checksum")
	flag.BoolVar(&cfg.StoreSize, "size", false, "store the content size in the frame header")
	flag.IntVar(&cfg.Jobs, "j", runtime.GOMAXPROCS(0), "number of files processed in parallel")
	flag.BoolVar(&cfg.Force, "f", false, "overwrite existing output files")
	flag.BoolVar(&cfg.Explain, "explain", false, "print the matches found in the first block of each file")
	flag.BoolVar(&verbose, "v", false, "log frame details")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] files...\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg.Prefs.BlockSize = lz4f.BlockSizeID(blockID)
	if !linked {
		cfg.Prefs.BlockMode = lz4f.BlockIndependent
	}
	if cfg.Jobs < 1 {
		cfg.Jobs = 1
	}

	app.Run(verbose, func(ctx context.Context, lg *zap.Logger) error {
		return run(ctx, lg, os.Stdout, cfg, flag.Args())
	})
}
