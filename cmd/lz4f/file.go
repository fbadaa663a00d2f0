package main

import (
	"io"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/go-faster/errors"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/andybalholm/lz4f"
	"github.com/andybalholm/lz4f/block"
)

const ext = ".lz4"

func create(name string, force bool) (*os.File, error) {
	flags := os.O_WRONLY | os.O_CREATE | os.O_EXCL
	if force {
		flags = os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	}
	f, err := os.OpenFile(name, flags, 0o644)
	if err != nil {
		return nil, errors.Wrap(err, "create")
	}
	return f, nil
}

// removeOnError deletes the partial output file name if *rerr is set.
// It must be deferred before the file is closed.
func removeOnError(rerr *error, name string) {
	if *rerr == nil {
		return
	}
	if err := os.Remove(name); err != nil {
		*rerr = multierr.Append(*rerr, errors.Wrap(err, "remove"))
	}
}

// countWriter counts the bytes written through it.
type countWriter struct {
	w io.Writer
	n int64
}

func (c *countWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}

func ratio(in, out int64) float64 {
	if out == 0 {
		return 0
	}
	return float64(in) / float64(out)
}

func compressFile(lg *zap.Logger, cfg config, name string) (rerr error) {
	in, err := os.Open(name)
	if err != nil {
		return errors.Wrap(err, "open")
	}
	defer multierr.AppendInvoke(&rerr, multierr.Close(in))

	prefs := cfg.Prefs
	if cfg.StoreSize {
		st, err := in.Stat()
		if err != nil {
			return errors.Wrap(err, "stat")
		}
		prefs.ContentSize = uint64(st.Size())
	}

	f, err := create(name+ext, cfg.Force)
	if err != nil {
		return err
	}
	defer removeOnError(&rerr, f.Name())
	defer multierr.AppendInvoke(&rerr, multierr.Close(f))

	out := &countWriter{w: f}
	w := lz4f.NewWriter(out, lz4f.WriterOptions{
		Preferences: prefs,
		Logger:      lg.Named("writer").With(zap.String("file", name)),
	})
	n, err := io.Copy(w, in)
	if err != nil {
		return errors.Wrap(err, "compress")
	}
	if err := w.Close(); err != nil {
		return errors.Wrap(err, "finish frame")
	}

	lg.Info("Compressed",
		zap.String("file", name),
		zap.String("in", humanize.Bytes(uint64(n))),
		zap.String("out", humanize.Bytes(uint64(out.n))),
		zap.Float64("ratio", ratio(n, out.n)),
	)
	return nil
}

func decompressFile(lg *zap.Logger, cfg config, name string) (rerr error) {
	if !strings.HasSuffix(name, ext) {
		return errors.Errorf("no %s suffix", ext)
	}
	in, err := os.Open(name)
	if err != nil {
		return errors.Wrap(err, "open")
	}
	defer multierr.AppendInvoke(&rerr, multierr.Close(in))

	f, err := create(strings.TrimSuffix(name, ext), cfg.Force)
	if err != nil {
		return err
	}
	defer removeOnError(&rerr, f.Name())
	defer multierr.AppendInvoke(&rerr, multierr.Close(f))

	src := &countReader{r: in}
	r := lz4f.NewReader(src, lz4f.ReaderOptions{
		Logger: lg.Named("reader").With(zap.String("file", name)),
	})
	n, err := io.Copy(f, r)
	if err != nil {
		return errors.Wrap(err, "decompress")
	}

	lg.Info("Decompressed",
		zap.String("file", name),
		zap.String("in", humanize.Bytes(uint64(src.n))),
		zap.String("out", humanize.Bytes(uint64(n))),
	)
	return nil
}

type countReader struct {
	r io.Reader
	n int64
}

func (c *countReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)
	return n, err
}

// explainFile prints the parse of the first block of a file.
func explainFile(out io.Writer, prefs lz4f.Preferences, name string) (rerr error) {
	f, err := os.Open(name)
	if err != nil {
		return errors.Wrap(err, "open")
	}
	defer multierr.AppendInvoke(&rerr, multierr.Close(f))

	size := prefs.BlockSize.Size()
	if size == 0 {
		return errors.Wrap(lz4f.ErrMaxBlockSizeInvalid, "explain")
	}
	buf := make([]byte, size)
	n, err := io.ReadFull(f, buf)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return errors.Wrap(err, "read")
	}
	src := buf[:n]

	mf := block.FinderForLevel(prefs.CompressionLevel)
	matches := mf.FindMatches(nil, nil, src)
	text := block.TextEncoder{}.Encode(nil, src, matches)
	text = append(text, '\n')
	if _, err := out.Write(text); err != nil {
		return errors.Wrap(err, "write")
	}
	return nil
}
