package xlsxgen

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/objects2xlsx/go-xlsxgen/internal/names"
	"github.com/objects2xlsx/go-xlsxgen/internal/ooxml"
	"github.com/objects2xlsx/go-xlsxgen/internal/sharedstrings"
	"github.com/objects2xlsx/go-xlsxgen/internal/style"
	"github.com/objects2xlsx/go-xlsxgen/internal/zipw"
)

// Book is the workbook orchestrator spec.md §3/§4.6 describes, generalizing
// adnsv-go-xl's Workbook+Writer split (xl/workbook.go, xl/writer.go) into a
// single entry point that holds a sheet list and the optional logger/
// progress hooks, and creates fresh style/shared-string registries for
// every write.
type Book struct {
	Style    BookStyle
	Logger   Logger
	Progress chan ProgressEvent

	sheets []sheetNode
}

// NewBook returns an empty Book with default BookStyle.
func NewBook() *Book {
	return &Book{Style: NewBookStyle()}
}

// AddSheet appends a Sheet to b, assigning it a 1-based sheet id. A
// package-level generic function rather than a method, since Go forbids
// introducing new type parameters on methods (spec.md §9's "two-overload"
// note applies here one level up, at Book rather than Column).
func AddSheet[R any](b *Book, s *Sheet[R]) {
	s.setSheetID(len(b.sheets) + 1)
	b.sheets = append(b.sheets, s)
}

func (b *Book) emitProgress(e ProgressEvent) {
	if b.Progress == nil {
		return
	}
	b.Progress <- e
}

// Write generates the workbook and atomically writes it to path, using a
// background context.
func (b *Book) Write(path string) error {
	return b.WriteContext(context.Background(), path)
}

// WriteContext implements spec.md §4.6's orchestrator algorithm: per-sheet
// cancellation checks at sheet boundaries, progress events around load/
// generate, global-parts assembly via internal/ooxml, zip packaging via
// internal/zipw, and an atomic write to path. Grounded on adnsv-go-xl's
// Writer.Write (xl/writer.go) for part ordering, generalized to a
// cancellable, progress-reporting loop spec.md §5 requires.
func (b *Book) WriteContext(ctx context.Context, path string) error {
	reg := style.NewRegistry()
	ss := sharedstrings.NewRegistry()

	sheetXML := map[int][]byte{}
	var sheetMeta []ooxml.SheetMeta
	used := map[string]bool{}

	total := len(b.sheets)
	for i, sh := range b.sheets {
		if err := ctx.Err(); err != nil {
			e := newError(ErrorKindCancelled, "cancelled before sheet "+sh.sheetName(), err)
			b.logErrorf("xlsxgen: %v", e)
			b.emitProgress(ProgressEvent{Kind: ProgressFailed, SheetIndex: i, SheetName: sh.sheetName(), FailedKind: ErrorKindCancelled, Description: e.Error()})
			return e
		}

		b.emitProgress(ProgressEvent{Kind: ProgressSheetStart, SheetIndex: i, SheetName: sh.sheetName()})
		b.logInfof("xlsxgen: loading sheet %q", sh.sheetName())

		if err := sh.load(); err != nil {
			b.logErrorf("xlsxgen: %v", err)
			b.emitProgress(ProgressEvent{Kind: ProgressFailed, SheetIndex: i, SheetName: sh.sheetName(), FailedKind: ErrorKindDataProvider, Description: err.Error()})
			return err
		}

		data, rows, err := sh.generate(b.Style, reg, ss)
		if err != nil {
			b.logErrorf("xlsxgen: %v", err)
			b.emitProgress(ProgressEvent{Kind: ProgressFailed, SheetIndex: i, SheetName: sh.sheetName(), FailedKind: ErrorKindXmlGeneration, Description: err.Error()})
			return err
		}

		id := sh.getSheetID()
		sheetXML[id] = data
		sanitized := names.Dedup(SanitizeSheetName(sh.sheetName()), used)
		sheetMeta = append(sheetMeta, ooxml.SheetMeta{SheetID: id, Name: sanitized})

		pct := float64(i+1) / float64(total)
		b.emitProgress(ProgressEvent{Kind: ProgressSheetDone, SheetIndex: i, SheetName: sh.sheetName(), RowsWritten: rows, ProgressPercentage: pct})
	}

	b.emitProgress(ProgressEvent{Kind: ProgressGlobalPartsStart, ProgressPercentage: 1})
	b.logInfof("xlsxgen: assembling package parts")

	meta := ooxml.BookMeta{
		Title:   b.Style.Title,
		Creator: b.Style.Creator,
		AppName: b.Style.AppName,
		Created: time.Now().UTC().Format(time.RFC3339),
		Sheets:  sheetMeta,
	}

	parts := ooxml.Assemble(meta, sheetXML, reg.WriteStylesXML(), ss.WriteSharedStringsXML())

	zw := zipw.NewWriter()
	for _, p := range parts {
		zw.Add(zipw.Entry{Path: p.Path, Data: p.Data})
	}

	if err := b.atomicWrite(path, zw.Bytes()); err != nil {
		b.emitProgress(ProgressEvent{Kind: ProgressFailed, FailedKind: ErrorKindFileWrite, Description: err.Error()})
		return err
	}

	b.emitProgress(ProgressEvent{Kind: ProgressFinished, ProgressPercentage: 1})
	b.logInfof("xlsxgen: wrote %s", path)
	return nil
}

// atomicWrite writes data to a temp file in path's directory, syncs it,
// then renames it onto path — spec.md §4.6's "never leaves a
// partially-written file at the destination path" guarantee. The temp
// name uses google/uuid to avoid collisions between concurrent writers
// targeting the same directory.
func (b *Book) atomicWrite(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp := filepath.Join(dir, fmt.Sprintf(".%s.tmp", uuid.NewString()))

	f, err := os.OpenFile(tmp, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return newError(ErrorKindFileWrite, "creating temp file", err)
	}

	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(tmp)
		return newError(ErrorKindFileWrite, "writing temp file", err)
	}
	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(tmp)
		return newError(ErrorKindFileWrite, "syncing temp file", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return newError(ErrorKindFileWrite, "closing temp file", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return newError(ErrorKindFileWrite, "renaming temp file to destination", err)
	}
	return nil
}
