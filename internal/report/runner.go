package report

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"megone/internal/contacts"
	"megone/internal/tabular"
)

// TableReader loads a spreadsheet-like source as a positional table.
type TableReader interface {
	ReadTable(path string) (*tabular.Table, error)
}

// TableWriter persists an assembled report table. The run is considered
// written once the writer returns without error.
type TableWriter interface {
	WriteTable(path string, table *tabular.Table) error
}

// DocumentReader produces raw document input: the full extracted text of
// one document, or the filenames of a folder of documents.
type DocumentReader interface {
	DocumentText(path string) (string, error)
	ListFilenames(dir string) ([]string, error)
}

// Request names the inputs of one reconciliation run. Input is the PDF
// folder, PDF file, or base/origin spreadsheet depending on the kind;
// Contacts is the contacts spreadsheet (unused for KindTasks); Period is
// the optional MM/YYYY accounting period for KindTasks.
type Request struct {
	Kind     Kind
	Input    string
	Contacts string
	Output   string
	Period   string
}

// Options configures a Runner. Zero-value sinks discard; zero thresholds
// and templates fall back to the standing defaults.
type Options struct {
	Tables   TableReader
	Writer   TableWriter
	Docs     DocumentReader
	Log      LogSink
	Progress ProgressSink
	Logger   *slog.Logger

	FuzzyThreshold float64
	TasksDir       string
	TasksExt       string
	Now            func() time.Time
}

const (
	defaultFuzzyThreshold = 0.8
	defaultTasksDir       = `Z:\Pessoal\2025\GMS`
	defaultTasksExt       = ".pdf"
)

// Runner drives one reconciliation run end to end: extract, look up,
// classify, assemble, write. A Runner is stateless between runs; each run
// builds and discards its own contact directory.
type Runner struct {
	tables    TableReader
	writer    TableWriter
	docs      DocumentReader
	log       LogSink
	progress  ProgressSink
	logger    *slog.Logger
	threshold float64
	tasksDir  string
	tasksExt  string
	now       func() time.Time
}

// NewRunner builds a Runner, filling unset options with defaults.
func NewRunner(opts Options) *Runner {
	r := &Runner{
		tables:    opts.Tables,
		writer:    opts.Writer,
		docs:      opts.Docs,
		log:       opts.Log,
		progress:  opts.Progress,
		logger:    opts.Logger,
		threshold: opts.FuzzyThreshold,
		tasksDir:  opts.TasksDir,
		tasksExt:  opts.TasksExt,
		now:       opts.Now,
	}
	if r.log == nil {
		r.log = LogFunc(nil)
	}
	if r.progress == nil {
		r.progress = ProgressFunc(nil)
	}
	if r.logger == nil {
		r.logger = slog.Default()
	}
	if r.threshold <= 0 {
		r.threshold = defaultFuzzyThreshold
	}
	if r.tasksDir == "" {
		r.tasksDir = defaultTasksDir
	}
	if r.tasksExt == "" {
		r.tasksExt = defaultTasksExt
	}
	if r.now == nil {
		r.now = time.Now
	}
	return r
}

// Run executes the pipeline for req.Kind and returns the number of rows
// written. Fatal errors abort before anything is written; pattern misses
// and directory misses never abort.
func (r *Runner) Run(ctx context.Context, req Request) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	runID := uuid.NewString()
	logger := r.logger.With("run_id", runID, "kind", req.Kind.String())
	logger.Info("run starting", "input", req.Input, "output", req.Output)
	r.progress.Progress(0.1)

	var (
		dir    *contacts.Directory
		header []string
	)
	if req.Kind.NeedsContacts() {
		var err error
		dir, header, err = r.loadDirectory(req)
		if err != nil {
			return 0, err
		}
	}
	r.progress.Progress(0.3)

	table, err := r.assemble(req, dir, header)
	if err != nil {
		logger.Error("run failed", "error", err)
		return 0, err
	}
	r.progress.Progress(0.8)

	r.log.Log("Saving output spreadsheet...")
	if err := r.writer.WriteTable(req.Output, table); err != nil {
		logger.Error("write output", "error", err)
		return 0, fmt.Errorf("write output %s: %w", req.Output, err)
	}

	r.progress.Progress(1.0)
	r.log.Log(fmt.Sprintf("Report written to %s (%d rows)", req.Output, len(table.Rows)))
	logger.Info("run finished", "rows", len(table.Rows))
	return len(table.Rows), nil
}

func (r *Runner) assemble(req Request, dir *contacts.Directory, header []string) (*tabular.Table, error) {
	switch req.Kind {
	case KindOne:
		return r.assembleOne(req, dir)
	case KindBilling:
		return r.assembleBilling(req, dir)
	case KindRenewal:
		return r.assembleRenewals(req, dir)
	case KindCertificate:
		return r.assembleCertificates(req, dir)
	case KindTasks:
		return r.assembleTasks(req)
	case KindAll:
		return r.assembleAll(req, dir, header)
	default:
		return nil, fmt.Errorf("unknown report kind %v", req.Kind)
	}
}

// loadDirectory reads the contacts table and indexes it, returning the
// table's own header alongside for reports that echo it. The contacts
// export must carry at least the four columns (code, name, individual
// contact, group contact).
func (r *Runner) loadDirectory(req Request) (*contacts.Directory, []string, error) {
	r.log.Log("Reading contacts spreadsheet...")
	table, err := r.tables.ReadTable(req.Contacts)
	if err != nil {
		return nil, nil, fmt.Errorf("read contacts %s: %w", req.Contacts, err)
	}
	if table.Width() < 4 {
		return nil, nil, wrapFatal(ErrInputShape, req.Kind,
			fmt.Sprintf("contacts table must have at least 4 columns, found %d", table.Width()))
	}
	dir := contacts.NewDirectory(table)
	r.log.Log(fmt.Sprintf("Indexed %d contacts", dir.Len()))
	return dir, table.Header, nil
}

// requireWidth validates the base table against the minimum column count
// its pipeline addresses positionally.
func requireWidth(table *tabular.Table, kind Kind, min int) error {
	if table.Width() < min {
		return wrapFatal(ErrInputShape, kind,
			fmt.Sprintf("base table must have at least %d columns, found %d", min, table.Width()))
	}
	return nil
}
