package gen

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"text/template"

	"golang.org/x/sync/errgroup"
)

// FragmentWriter renders the code buckets of an augmented graph into the
// fixed template slots of three files per entity and writes them in
// parallel:
//
//	{entityPath}/generated/{entity}-type.ts  // beforeType, afterType
//	{entityPath}/generated/{entity}-base.ts  // beforeBase, insideBase
//	{entityPath}/{entity}.ts                 // beforeEntity, insideEntity
//
// Generated files are overwritten unless their content is unchanged since
// the last run. The hand-editable entity file is only written if missing.
type FragmentWriter struct {
	graph   *Graph
	outDir  string
	workers int
	logger  *slog.Logger

	// Metrics for performance monitoring
	mu       sync.Mutex
	metrics  *WriterMetrics
	snapshot *Snapshot
}

// WriterMetrics tracks emission results.
type WriterMetrics struct {
	FilesWritten int
	FilesSkipped int
	TotalBytes   int64
}

// NewFragmentWriter creates a writer for an augmented graph. The paths of
// the config are resolved against outDir.
func NewFragmentWriter(g *Graph, outDir string) *FragmentWriter {
	return &FragmentWriter{
		graph:   g,
		outDir:  outDir,
		workers: runtime.GOMAXPROCS(0),
		logger:  slog.Default(),
		metrics: &WriterMetrics{},
	}
}

// WithWorkers sets the number of parallel workers.
func (w *FragmentWriter) WithWorkers(n int) *FragmentWriter {
	if n > 0 {
		w.workers = n
	}
	return w
}

// WithLogger sets the logger used for per-file notices.
func (w *FragmentWriter) WithLogger(l *slog.Logger) *FragmentWriter {
	if l != nil {
		w.logger = l
	}
	return w
}

// Metrics returns the emission metrics.
func (w *FragmentWriter) Metrics() *WriterMetrics {
	return w.metrics
}

// fileTask represents a single file to render.
type fileTask struct {
	entity   *Entity
	name     string // output file path (slash-separated, relative to outDir)
	template string // template name to execute
	once     bool   // hand-editable, written only if missing
}

// WriteAll writes the files of all entities.
func (w *FragmentWriter) WriteAll(ctx context.Context) error {
	if w.graph == nil || w.graph.Config == nil {
		return NewConfigError("graph", nil, "missing graph config")
	}
	snapshot, err := ReadSnapshot(w.snapshotPath())
	if err != nil {
		return NewGenerationError("", SnapshotFile, "read snapshot", err)
	}
	w.snapshot = snapshot

	var (
		cfg   = w.graph.Config
		files []fileTask
	)
	for _, e := range w.graph.SortedEntities() {
		name := kebab(e.Name)
		files = append(files,
			fileTask{entity: e, name: path.Join(cfg.GeneratedPath(), name+"-type.ts"), template: "type"},
			fileTask{entity: e, name: path.Join(cfg.GeneratedPath(), name+"-base.ts"), template: "base"},
			fileTask{entity: e, name: path.Join(toSlash(cfg.EntityPath), name+".ts"), template: "entity", once: true},
		)
	}

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(w.workers)
	for _, f := range files {
		eg.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
				return w.writeFile(f)
			}
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}
	if err := w.snapshot.Write(w.snapshotPath()); err != nil {
		return NewGenerationError("", SnapshotFile, "write snapshot", err)
	}
	return nil
}

// writeFile renders and writes a single file.
func (w *FragmentWriter) writeFile(f fileTask) error {
	fullPath := filepath.Join(w.outDir, filepath.FromSlash(f.name))
	if f.once {
		switch _, err := os.Stat(fullPath); {
		case err == nil:
			w.skipped(f.name, "hand-editable file exists")
			return nil
		case !errors.Is(err, fs.ErrNotExist):
			return NewGenerationError(f.entity.Name, f.name, "stat file", err)
		}
	}

	var buf bytes.Buffer
	data := fileData{Entity: f.entity, Suffix: w.graph.Config.ModuleSuffix()}
	if err := templates.ExecuteTemplate(&buf, f.template, data); err != nil {
		return NewGenerationError(f.entity.Name, f.name, fmt.Sprintf("execute template %q", f.template), err)
	}
	if !f.once && w.snapshot.Unchanged(f.name, buf.Bytes()) {
		if _, err := os.Stat(fullPath); err == nil {
			w.skipped(f.name, "unchanged")
			return nil
		}
	}
	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return NewGenerationError(f.entity.Name, f.name, "create directory", err)
	}
	if err := os.WriteFile(fullPath, buf.Bytes(), 0o644); err != nil {
		return NewGenerationError(f.entity.Name, f.name, "write file", err)
	}
	w.snapshot.Record(f.name, buf.Bytes())

	w.mu.Lock()
	w.metrics.FilesWritten++
	w.metrics.TotalBytes += int64(buf.Len())
	w.mu.Unlock()
	w.logger.Debug("wrote file", "entity", f.entity.Name, "file", f.name)
	return nil
}

func (w *FragmentWriter) skipped(name, reason string) {
	w.mu.Lock()
	w.metrics.FilesSkipped++
	w.mu.Unlock()
	w.logger.Debug("skipped file", "file", name, "reason", reason)
}

func (w *FragmentWriter) snapshotPath() string {
	return filepath.Join(w.outDir, SnapshotFile)
}

// WriteGraph is the convenience function to write all fragments of an
// augmented graph under outDir.
func WriteGraph(ctx context.Context, g *Graph, outDir string) error {
	return NewFragmentWriter(g, outDir).WriteAll(ctx)
}

// fileData is the data of the file templates.
type fileData struct {
	*Entity
	// Suffix is the module suffix of relative imports.
	Suffix string
}

var templates = template.Must(template.New("fragments").
	Funcs(template.FuncMap{
		"lines":  lines,
		"indent": indent,
		"kebab":  kebab,
	}).
	Parse(`
{{- define "type" -}}
/** generated */
{{ lines .Code.BeforeType }}{{ lines .Code.AfterType }}
{{- end }}

{{- define "base" -}}
/** generated */
{{ lines .Code.BeforeBase }}
{{ if .Deprecated }}/** @deprecated */
{{ end -}}
export class {{ .Name }}EntityBase {
{{ indent .Code.InsideBase }}}
{{ end }}

{{- define "entity" -}}
{{ lines .Code.BeforeEntity -}}
import { {{ .Name }}EntityBase } from './generated/{{ kebab .Name }}-base{{ .Suffix }}';

{{ if .Deprecated }}/** @deprecated */
{{ end -}}
export class {{ .Name }}Entity extends {{ .Name }}EntityBase {
{{ indent .Code.InsideEntity }}}
{{ end }}
`))

// lines joins the given lines, each terminated by a newline.
func lines(ls []string) string {
	var b strings.Builder
	for _, l := range ls {
		b.WriteString(l)
		b.WriteByte('\n')
	}
	return b.String()
}

// indent is like lines, but indents every non-empty line by two spaces.
func indent(ls []string) string {
	var b strings.Builder
	for _, l := range ls {
		if l != "" {
			b.WriteString("  ")
			b.WriteString(l)
		}
		b.WriteByte('\n')
	}
	return b.String()
}
