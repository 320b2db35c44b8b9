// Package export renders record sequences into paginated PDF reports.
package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
)

// Feature names one exportable record list.
type Feature struct {
	Title      string
	FilePrefix string
	Layout     Layout
}

// FileName is "<prefix>-YYYY-MM-DD.pdf", dated by the UTC calendar day.
func (f Feature) FileName(day time.Time) string {
	return fmt.Sprintf("%s-%s.pdf", f.FilePrefix, day.UTC().Format("2006-01-02"))
}

type Result struct {
	Path    string
	Pages   int
	Records int
}

type Exporter struct {
	Dir       string
	Now       func() time.Time
	NewCanvas func() Canvas
	Log       *zap.Logger
}

func (e *Exporter) now() time.Time {
	if e.Now == nil {
		return time.Now()
	}
	return e.Now()
}

func (e *Exporter) logger() *zap.Logger {
	if e.Log == nil {
		return zap.NewNop()
	}
	return e.Log
}

// Export formats each record into one or two lines and writes the report.
func Export[T any](ctx context.Context, e *Exporter, f Feature, records []T, format func(T) []string) (Result, error) {
	blocks := make([][]string, 0, len(records))
	for _, r := range records {
		blocks = append(blocks, format(r))
	}
	return e.Write(ctx, f, blocks)
}

// Write renders pre-formatted record blocks and saves the document into Dir.
func (e *Exporter) Write(ctx context.Context, f Feature, blocks [][]string) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	now := e.now()
	newCanvas := e.NewCanvas
	if newCanvas == nil {
		newCanvas = NewPDFCanvas
	}

	l := f.Layout
	c := newCanvas()
	c.SetFontSize(l.TitleSize)
	c.Text(l.Left, l.TitleY, f.Title)
	c.SetFontSize(l.BodySize)
	c.Text(l.Left, l.DateY, "Export Date: "+now.Format("1/2/2006"))

	for i, p := range Paginate(l, blocks) {
		if i > 0 {
			c.AddPage()
		}
		for _, line := range p.Lines {
			c.Text(line.X, line.Y, line.Text)
		}
	}

	dir := e.Dir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return Result{}, fmt.Errorf("create export dir: %w", err)
	}
	path := filepath.Join(dir, f.FileName(now))
	tmp := path + ".part"
	if err := c.Save(tmp); err != nil {
		_ = os.Remove(tmp)
		return Result{}, fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return Result{}, fmt.Errorf("finalize %s: %w", filepath.Base(path), err)
	}

	res := Result{Path: path, Pages: c.PageCount(), Records: len(blocks)}
	e.logger().Info("report exported", zap.String("path", path), zap.Int("pages", res.Pages), zap.Int("records", res.Records))
	return res, nil
}
