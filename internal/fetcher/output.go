package fetcher

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"golang.org/x/net/html/charset"

	"github.com/raysh454/fetchurl/internal/interfaces"
	"github.com/raysh454/fetchurl/internal/model"
	"github.com/raysh454/fetchurl/internal/tracker"
)

// emit prints textual responses and explains why anything else was held back.
// A failed print is logged and reported as suppressed.
func (f *Fetcher) emit(resp *model.Response) model.Outcome {
	contentType := resp.ContentType()
	printed := false

	if model.IsTextContentType(contentType) {
		if err := f.printText(resp.Body, contentType); err != nil {
			f.logger.Error(fmt.Sprintf("Failed to print to stdout (%v)", err))
		} else {
			printed = true
		}
	} else {
		f.logger.Info(fmt.Sprintf("Seems not text (Content-Type: %s)", displayContentType(contentType)))
	}

	if !printed {
		f.logger.Info("Output suppressed. Consider using --out-file (-o) instead")
		return model.OutcomeSuppressed
	}
	return model.OutcomePrinted
}

func displayContentType(contentType string) string {
	if contentType == "" {
		return "none"
	}
	return contentType
}

// printText decodes body using the charset named by contentType (or sniffed
// from the body) and writes it to stdout with a trailing newline.
func (f *Fetcher) printText(body []byte, contentType string) error {
	text, err := DecodeText(body, contentType)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintln(f.stdout, text); err != nil {
		return errors.Wrap(err, "write stdout")
	}
	return nil
}

// DecodeText converts body to a UTF-8 string. Without a usable charset
// parameter the encoding is sniffed, falling back to windows-1252 for bytes
// that are not valid UTF-8.
func DecodeText(body []byte, contentType string) (string, error) {
	r, err := charset.NewReader(bytes.NewReader(body), contentType)
	if err != nil {
		return "", errors.Wrap(err, "select charset")
	}
	text, err := io.ReadAll(r)
	if err != nil {
		return "", errors.Wrap(err, "decode body")
	}
	return string(text), nil
}

// writeFile replaces path with body. The file is closed on every path and a
// close error is reported when the write itself succeeded.
func (f *Fetcher) writeFile(path string, body []byte) (err error) {
	if f.diagnostics {
		f.reportOverwrite(path, body)
	}
	f.logger.Debug(fmt.Sprintf("Writing content to %q", path))

	file, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create output file")
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = errors.Wrap(cerr, "close output file")
		}
	}()

	if _, err := file.Write(body); err != nil {
		return errors.Wrap(err, "write output file")
	}
	return nil
}

// reportOverwrite debug-logs how an existing text file is about to change.
// Only regular files small enough to diff are read; opening a FIFO or a
// device for reading could block.
func (f *Fetcher) reportOverwrite(path string, body []byte) {
	fi, err := os.Stat(path)
	if err != nil || !fi.Mode().IsRegular() {
		return
	}
	if fi.Size() > tracker.MaxDiffBytes {
		f.logger.Debug("overwriting existing file", interfaces.Field{Key: "previous_size", Value: fi.Size()})
		return
	}
	old, err := os.ReadFile(path)
	if err != nil {
		return
	}
	summary, ok := tracker.SummarizeChange(old, body)
	if !ok {
		f.logger.Debug("overwriting existing file", interfaces.Field{Key: "previous_size", Value: len(old)})
		return
	}
	if !summary.Changed() {
		f.logger.Debug("existing file already has this content")
		return
	}
	f.logger.Debug("existing file will change",
		interfaces.Field{Key: "inserted", Value: summary.Inserted},
		interfaces.Field{Key: "deleted", Value: summary.Deleted},
		interfaces.Field{Key: "hunks", Value: summary.Hunks})
}
