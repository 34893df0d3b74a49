// Package main is the entry point for subcat, which copies byte windows of a
// file to stdout or, driven by a YAML manifest, into separate files.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	subcursor "github.com/luhtfiimanal/go-subcursor"
	"golang.org/x/sync/errgroup"
)

type options struct {
	start    int64
	end      int64
	useMmap  bool
	manifest string
	outDir   string
	jobs     int
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

func run(args []string, stdout io.Writer) int {
	opts, file, err := parseFlags(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}

	streamOpts := subcursor.DefaultOptions()
	streamOpts.UseMmap = opts.useMmap
	streamOpts.ReadOnly = true
	fs, err := subcursor.OpenFileStream(file, streamOpts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer fs.Close()

	h := subcursor.NewHandleWithOptions(fs, streamOpts)

	if opts.manifest != "" {
		m, err := LoadManifest(opts.manifest)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		if err := extract(h, m, opts.outDir, opts.jobs); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		return 0
	}

	b := subcursor.From(h).Start(opts.start)
	if opts.end >= 0 {
		b = b.End(opts.end)
	}
	c, err := b.Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if _, err := io.Copy(stdout, c); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func parseFlags(args []string) (options, string, error) {
	var opts options
	fl := flag.NewFlagSet("subcat", flag.ContinueOnError)
	fl.Int64Var(&opts.start, "start", 0, "Absolute offset where the window begins")
	fl.Int64Var(&opts.end, "end", -1, "Absolute offset where the window ends (-1 = end of file)")
	fl.BoolVar(&opts.useMmap, "mmap", false, "Map the file with mmap")
	fl.StringVar(&opts.manifest, "manifest", "", "YAML manifest of named windows to extract")
	fl.StringVar(&opts.outDir, "out", ".", "Output directory for manifest extraction")
	fl.IntVar(&opts.jobs, "j", 4, "Parallel extractions")
	fl.Usage = func() {
		fmt.Fprintf(fl.Output(), "Usage: subcat [flags] FILE\n\n")
		fl.PrintDefaults()
	}

	if err := fl.Parse(args); err != nil {
		return opts, "", err
	}
	if fl.NArg() != 1 {
		fl.Usage()
		return opts, "", fmt.Errorf("expected exactly one FILE argument")
	}
	return opts, fl.Arg(0), nil
}

// extract copies every manifest entry into outDir/name. All windows share h,
// so concurrent copies are serialised chunk by chunk on the handle's guard.
func extract(h *subcursor.Handle, m *Manifest, outDir string, jobs int) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	var g errgroup.Group
	if jobs > 0 {
		g.SetLimit(jobs)
	}
	for _, e := range m.Entries {
		e := e // per-iteration copy (pre-Go 1.22 loop semantics)
		b := subcursor.From(h).Start(e.Start)
		if e.End != nil {
			b = b.End(*e.End)
		}
		g.Go(func() error {
			c, err := b.Build()
			if err != nil {
				return fmt.Errorf("entry %s: %w", e.Name, err)
			}
			return writeWindow(c, filepath.Join(outDir, e.Name))
		})
	}
	return g.Wait()
}

func writeWindow(c *subcursor.Cursor, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := io.Copy(f, c); err != nil {
		f.Close()
		return fmt.Errorf("copy %s: %w", path, err)
	}
	return f.Close()
}
