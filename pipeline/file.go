package pipeline

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// ErrInputNotFound is returned when the input file does not exist.
var ErrInputNotFound = errors.New("input file not found")

// CleanFile validates cfg, reads inputPath, runs the pipeline and writes the
// result to outputPath. Nothing is read when cfg is invalid, and nothing is
// written unless every pass succeeds (or when cfg.DryRun is set).
//
// Line endings are converted to LF for the passes. The output uses CRLF
// when most input lines did, LF otherwise; mixed files come out uniform. The byte counts in the result refer to the files on disk.
func CleanFile(inputPath, outputPath string, cfg Config) (*Result, error) {
	p, err := New(cfg)
	if err != nil {
		return nil, err
	}

	doc, err := ReadDocument(inputPath)
	if err != nil {
		return nil, err
	}

	res, err := p.Run(doc.Text)
	if err != nil {
		return nil, fmt.Errorf("cleaning %s: %w", inputPath, err)
	}

	output := res.Output
	if doc.CRLF {
		output = strings.ReplaceAll(output, "\n", "\r\n")
	}
	res.InputBytes = doc.Size
	res.OutputBytes = len(output)

	if cfg.DryRun {
		slog.Debug("dry run, output not written", "output", outputPath)
		return res, nil
	}
	if err := WriteDocument(outputPath, output); err != nil {
		return nil, err
	}
	return res, nil
}

// Document is a BibTeX file as read from disk.
type Document struct {
	Text string // Content with LF line endings.
	CRLF bool   // Most lines ended in CRLF.
	Size int    // Size on disk in bytes.
}

// ReadDocument reads a BibTeX file.
func ReadDocument(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrInputNotFound, path)
		}
		return nil, fmt.Errorf("reading input file: %w", err)
	}

	text := string(data)
	crlf := strings.Count(text, "\r\n")
	lf := strings.Count(text, "\n") - crlf
	cr := strings.Count(text, "\r") - crlf

	doc := &Document{Size: len(data), CRLF: crlf > lf+cr}
	if crlf+cr > 0 {
		text = strings.ReplaceAll(text, "\r\n", "\n")
		text = strings.ReplaceAll(text, "\r", "\n")
	}
	doc.Text = text
	return doc, nil
}

// WriteDocument writes text to path through a temporary file in the same
// directory, so readers never observe a partially written file.
func WriteDocument(path, text string) (err error) {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.WriteString(text); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("writing output file: %w", err)
	}
	if err = tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("syncing output file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("closing output file: %w", err)
	}

	mode := os.FileMode(0o644)
	if info, statErr := os.Stat(path); statErr == nil {
		mode = info.Mode().Perm()
	}
	if err = os.Chmod(tmp.Name(), mode); err != nil {
		return fmt.Errorf("setting output permissions: %w", err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replacing output file: %w", err)
	}
	return nil
}
