package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/barathkumarikanoon/Legislature-Structured-Converter/internal/assemble"
	"github.com/barathkumarikanoon/Legislature-Structured-Converter/internal/config"
	"github.com/barathkumarikanoon/Legislature-Structured-Converter/internal/convert"
	"github.com/barathkumarikanoon/Legislature-Structured-Converter/internal/parser"
)

// Worker converts one document at a time. Pages of a document are
// processed strictly in order; a worker never shares state between jobs.
type Worker struct {
	converter *convert.Converter
	profile   config.Profile
	stats     *ConversionStats
	log       *slog.Logger
}

func NewWorker(conv *convert.Converter, profile config.Profile, stats *ConversionStats, log *slog.Logger) *Worker {
	return &Worker{
		converter: conv,
		profile:   profile,
		stats:     stats,
		log:       log,
	}
}

// Process runs the full conversion for a job.
func (w *Worker) Process(ctx context.Context, job *Job) {
	log := w.log.With("job_id", job.ID, "doc_id", job.DocID, "filename", job.Filename)
	start := time.Now()

	profile, err := w.resolveProfile(job.Profile)
	if err != nil {
		w.fail(log, job, "resolving profile", err)
		return
	}
	asm, err := assemble.New(profile.AssembleOptions(), log)
	if err != nil {
		w.fail(log, job, "resolving profile", err)
		return
	}

	// Phase 1: layout extraction
	job.SetStatus(StatusConverting, "converting")
	p, err := parser.ForFile(job.Filename, w.converter)
	if err != nil {
		w.fail(log, job, "converting", err)
		return
	}
	doc, err := p.Parse(ctx, bytes.NewReader(job.FileData()), job.Filename)
	if err != nil {
		w.fail(log, job, "converting", err)
		return
	}
	log.Info("layout parsed", "pages", len(doc.Pages))

	// Phase 2: order, classify, splice
	job.SetStatus(StatusAssembling, "assembling")
	title := job.Title
	if title == "" {
		title = parser.TitleFromFilename(job.Filename)
	}
	tree := asm.Document(doc, title)
	job.SetResult(tree)

	if w.stats != nil {
		w.stats.Record(time.Since(start), tree.Stats.Pages)
	}
	log.Info("conversion complete",
		"profile", profile.Name,
		"blocks", tree.Stats.Blocks,
		"titles_spliced", tree.Stats.TitlesSpliced,
		"titles_dropped", tree.Stats.TitlesDropped,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	job.SetStatus(StatusCompleted, "done")
}

func (w *Worker) resolveProfile(name string) (config.Profile, error) {
	return ResolveProfile(w.profile, name)
}

// ResolveProfile maps a requested profile name to a profile. The configured
// default, which may have been loaded from a file, takes precedence over a
// built-in of the same name.
func ResolveProfile(def config.Profile, name string) (config.Profile, error) {
	if name == "" || name == def.Name {
		return def, nil
	}
	return config.BuiltinProfile(name)
}

func (w *Worker) fail(log *slog.Logger, job *Job, phase string, err error) {
	log.Error("conversion failed", "phase", phase, "error", err)
	job.AddError(fmt.Sprintf("%s: %s", phase, err))
	job.SetStatus(StatusFailed, phase)
}
