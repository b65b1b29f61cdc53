// Command legisconv converts a legislation PDF, or an already-extracted
// pdf2txt.py layout XML file, into plain text with margin short titles
// spliced onto their numbered sections.
package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/barathkumarikanoon/Legislature-Structured-Converter/internal/assemble"
	"github.com/barathkumarikanoon/Legislature-Structured-Converter/internal/config"
	"github.com/barathkumarikanoon/Legislature-Structured-Converter/internal/convert"
	"github.com/barathkumarikanoon/Legislature-Structured-Converter/internal/layout"
	"github.com/barathkumarikanoon/Legislature-Structured-Converter/internal/parser"
	"github.com/barathkumarikanoon/Legislature-Structured-Converter/internal/render"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

type options struct {
	in          string
	out         string
	format      string
	profile     string
	profileFile string
	keepXML     bool
	verbose     bool
}

func run(args []string) int {
	fs := flag.NewFlagSet("legisconv", flag.ContinueOnError)
	var opts options
	fs.StringVar(&opts.in, "in", "", "input PDF or pdf2txt.py XML file (or first positional argument)")
	fs.StringVar(&opts.out, "out", "", "output path; defaults to <basename>.<ext> in the working directory")
	fs.StringVar(&opts.format, "format", "text", "output format: text, markdown, html, docx, json")
	fs.StringVar(&opts.profile, "profile", "", "geometry profile: "+strings.Join(config.ProfileNames(), ", "))
	fs.StringVar(&opts.profileFile, "profile-file", "", "YAML geometry profile layered over -profile")
	fs.BoolVar(&opts.keepXML, "keep-xml", false, "keep the intermediate layout XML next to the output")
	fs.BoolVar(&opts.verbose, "v", false, "debug logging")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if opts.in == "" && fs.NArg() > 0 {
		opts.in = fs.Arg(0)
	}

	level := slog.LevelInfo
	if opts.verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if opts.in == "" {
		log.Error("no input file given")
		fs.Usage()
		return 2
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := convertFile(ctx, opts, log); err != nil {
		log.Error("conversion failed", "input", opts.in, "error", err)
		return 1
	}
	return 0
}

func convertFile(ctx context.Context, opts options, log *slog.Logger) error {
	cfg := config.Load()
	if opts.profile != "" {
		cfg.ProfileName = opts.profile
	}
	if opts.profileFile != "" {
		cfg.ProfileFile = opts.profileFile
	}
	profile, err := cfg.Profile()
	if err != nil {
		return err
	}
	format, err := render.ParseFormat(opts.format)
	if err != nil {
		return err
	}

	out := opts.out
	if out == "" {
		out = parser.TitleFromFilename(opts.in) + format.Ext()
	}

	conv := &convert.Converter{
		Pdf2txtPath:    cfg.Pdf2txtPath,
		Timeout:        cfg.ConversionTimeout,
		NativeFallback: cfg.NativeFallback,
		Log:            log,
	}

	doc, err := readLayout(ctx, opts, conv, filepath.Dir(out))
	if err != nil {
		return err
	}

	asm, err := assemble.New(profile.AssembleOptions(), log)
	if err != nil {
		return err
	}
	tree := asm.Document(doc, parser.TitleFromFilename(opts.in))

	var buf bytes.Buffer
	if err := render.Write(&buf, tree, format); err != nil {
		return err
	}
	if err := os.WriteFile(out, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	log.Info("converted",
		"input", opts.in,
		"output", out,
		"profile", profile.Name,
		"pages", tree.Stats.Pages,
		"blocks", tree.Stats.Blocks,
		"titles_spliced", tree.Stats.TitlesSpliced,
		"titles_dropped", tree.Stats.TitlesDropped,
	)
	return nil
}

// readLayout produces the layout document for the input. With -keep-xml a
// PDF's interchange XML is written into xmlDir and left there.
func readLayout(ctx context.Context, opts options, conv *convert.Converter, xmlDir string) (*layout.Document, error) {
	if opts.keepXML && strings.EqualFold(filepath.Ext(opts.in), ".pdf") {
		res, err := conv.Convert(ctx, opts.in, xmlDir)
		if err != nil {
			return nil, err
		}
		conv.Log.Debug("kept layout xml", "path", res.XMLPath, "native", res.Native)
		return res.Doc, nil
	}

	p, err := parser.ForFile(opts.in, conv)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(opts.in)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return p.Parse(ctx, f, opts.in)
}
