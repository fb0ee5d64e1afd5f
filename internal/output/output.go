package output

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"
)

// Writer saves a code batch under a target directory. All inputs are
// validated by NewWriter before any generation work happens, so a bad
// encoding name or maxlines value never produces a partial run.
type Writer struct {
	dir      string
	base     string
	ext      string
	maxLines int
	enc      encoding.Encoding
}

// NewWriter validates the destination settings and returns a Writer.
// A filename without extension gets .csv; maxLines 0 means no split.
func NewWriter(dir, filename, encodingName string, maxLines int) (*Writer, error) {
	if maxLines < 0 {
		return nil, errors.Wrapf(ErrInvalidMaxLines, "%d", maxLines)
	}

	enc, err := htmlindex.Get(encodingName)
	if err != nil {
		return nil, errors.Wrapf(ErrUnknownEncoding, "%q", encodingName)
	}

	ext := filepath.Ext(filename)
	if ext == "" {
		ext = ".csv"
	}

	return &Writer{
		dir:      dir,
		base:     strings.TrimSuffix(filename, ext),
		ext:      ext,
		maxLines: maxLines,
		enc:      enc,
	}, nil
}

// Save writes the codes, one per CSV row, creating the target directory if
// needed. A failure while writing a later file leaves earlier files in
// place.
func (w *Writer) Save(codes []string) error {
	if err := os.MkdirAll(w.dir, 0o750); err != nil {
		return errors.Wrapf(err, "could not create directory %s", w.dir)
	}

	maxLines := w.maxLines
	if maxLines == 0 {
		maxLines = len(codes)
	}

	for _, batch := range Plan(w.base, w.ext, len(codes), maxLines) {
		if err := w.saveBatch(batch, codes); err != nil {
			return err
		}
	}

	return nil
}

// Files returns the file names Save will produce for a batch of total codes.
func (w *Writer) Files(total int) []string {
	maxLines := w.maxLines
	if maxLines == 0 {
		maxLines = total
	}

	batches := Plan(w.base, w.ext, total, maxLines)

	names := make([]string, 0, len(batches))
	for _, batch := range batches {
		names = append(names, filepath.Join(w.dir, batch.Name))
	}

	return names
}

func (w *Writer) saveBatch(batch Batch, codes []string) error {
	path := filepath.Join(w.dir, batch.Name)

	f, err := os.Create(path) //nolint:gosec // path is operator-chosen output
	if err != nil {
		return errors.Wrapf(err, "could not write into file %s", path)
	}

	tw := transform.NewWriter(f, w.enc.NewEncoder())
	cw := csv.NewWriter(tw)

	for _, code := range codes[batch.Start:batch.End] {
		if err = cw.Write([]string{code}); err != nil {
			break
		}
	}

	if err == nil {
		cw.Flush()
		err = cw.Error()
	}

	if cerr := tw.Close(); cerr != nil && err == nil {
		err = cerr
	}

	if cerr := f.Close(); cerr != nil && err == nil {
		err = cerr
	}

	if err != nil {
		return errors.Wrapf(err, "could not write into file %s", path)
	}

	return nil
}
