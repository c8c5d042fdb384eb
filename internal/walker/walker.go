package walker

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gobwas/glob"

	"github.com/codemill/javacorpus/internal/extract"
	"github.com/codemill/javacorpus/internal/parser"
)

// compiledPattern holds both the pattern string and compiled glob.
type compiledPattern struct {
	pattern string
	glob    glob.Glob
}

// Progress receives walk notifications so the CLI can render progress bars.
type Progress interface {
	OnDiscoveryComplete(totalFiles int)
	OnFileProcessed(path string)
}

type noProgress struct{}

func (noProgress) OnDiscoveryComplete(int) {}
func (noProgress) OnFileProcessed(string)  {}

// Options configures a corpus walk.
type Options struct {
	Root           string
	Extension      string   // source file extension, e.g. ".java"
	ExcludeDirs    []string // directory names pruned before descending
	ExcludeFiles   []string // file names skipped
	IgnorePatterns []string // optional glob patterns matched against relative paths
}

// Result is the accumulated outcome of one walk.
type Result struct {
	Records      []extract.MethodRecord
	Blocks       []string
	Diagnostics  []extract.Diagnostic
	FilesVisited int
	FilesFailed  int
}

// Walker traverses a directory tree, parses each matching source file and
// accumulates one text block per extracted method. A file that fails to
// parse contributes nothing and does not stop the walk.
type Walker struct {
	opts         Options
	excludeDirs  map[string]struct{}
	excludeFiles map[string]struct{}
	ignore       []compiledPattern
	progress     Progress
	log          *slog.Logger
}

// New creates a Walker. Ignore patterns are compiled eagerly so an invalid
// pattern fails the run before any file is touched.
func New(opts Options) (*Walker, error) {
	w := &Walker{
		opts:         opts,
		excludeDirs:  map[string]struct{}{},
		excludeFiles: map[string]struct{}{},
		progress:     noProgress{},
		log:          slog.Default(),
	}
	if w.opts.Extension == "" {
		w.opts.Extension = ".java"
	}
	for _, d := range opts.ExcludeDirs {
		w.excludeDirs[d] = struct{}{}
	}
	for _, f := range opts.ExcludeFiles {
		w.excludeFiles[f] = struct{}{}
	}
	for _, pattern := range opts.IgnorePatterns {
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, err
		}
		w.ignore = append(w.ignore, compiledPattern{pattern: pattern, glob: g})
	}
	return w, nil
}

// SetProgress attaches a progress receiver.
func (w *Walker) SetProgress(p Progress) {
	if p != nil {
		w.progress = p
	}
}

// SetLogger overrides the diagnostic logger.
func (w *Walker) SetLogger(l *slog.Logger) {
	if l != nil {
		w.log = l
	}
}

// Run walks the tree and returns the accumulated result. Only a traversal
// error or context cancellation fails the run; per-file problems are
// recorded as diagnostics.
func (w *Walker) Run(ctx context.Context) (*Result, error) {
	files, err := w.discover()
	if err != nil {
		return nil, err
	}
	w.progress.OnDiscoveryComplete(len(files))

	res := &Result{}
	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		w.processFile(path, res)
		w.progress.OnFileProcessed(path)
	}
	return res, nil
}

// discover collects matching files in traversal order, pruning excluded
// directories before descending into them.
func (w *Walker) discover() ([]string, error) {
	var files []string
	err := filepath.WalkDir(w.opts.Root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != w.opts.Root {
				if _, excluded := w.excludeDirs[d.Name()]; excluded {
					return filepath.SkipDir
				}
			}
			return nil
		}
		if filepath.Ext(d.Name()) != w.opts.Extension {
			return nil
		}
		if _, excluded := w.excludeFiles[d.Name()]; excluded {
			return nil
		}
		if w.ignored(path) {
			return nil
		}
		files = append(files, path)
		return nil
	})
	return files, err
}

func (w *Walker) ignored(path string) bool {
	rel, err := filepath.Rel(w.opts.Root, path)
	if err != nil {
		return false
	}
	rel = filepath.ToSlash(rel)
	for _, p := range w.ignore {
		if p.glob.Match(rel) {
			return true
		}
	}
	return false
}

func (w *Walker) processFile(path string, res *Result) {
	res.FilesVisited++

	source, err := os.ReadFile(path)
	if err != nil {
		res.FilesFailed++
		res.Diagnostics = append(res.Diagnostics, extract.Diagnostic{FilePath: path, Message: err.Error()})
		w.log.Warn("skipping unreadable file", "path", path, "error", err)
		return
	}

	f, err := parser.Parse(source)
	if err != nil {
		res.FilesFailed++
		res.Diagnostics = append(res.Diagnostics, extract.Diagnostic{FilePath: path, Message: err.Error()})
		w.log.Warn("skipping unparseable file", "path", path, "error", err)
		return
	}
	defer f.Close()

	records, diags := extract.ExtractFile(f, path)
	for _, d := range diags {
		w.log.Warn("skipping method", "path", d.FilePath, "line", d.Line, "reason", d.Message)
	}
	res.Diagnostics = append(res.Diagnostics, diags...)
	res.Records = append(res.Records, records...)
	for _, r := range records {
		res.Blocks = append(res.Blocks, extract.FormatBlock(r))
	}
}
