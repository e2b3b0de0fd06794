// Package report prints cleaning progress and writes machine-readable run
// summaries.
package report

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"

	"github.com/lehigh-university-libraries/bibtidy/pipeline"
)

const (
	ruleWidth    = 70
	previewCount = 5
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	subtleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// ColorEnabled reports whether f is a terminal that should get colored
// output. NO_COLOR and TERM=dumb disable color.
func ColorEnabled(f *os.File) bool {
	if os.Getenv("NO_COLOR") != "" || strings.EqualFold(os.Getenv("TERM"), "dumb") {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Printer writes human-readable progress lines.
type Printer struct {
	w     io.Writer
	color bool
	quiet bool
}

// NewPrinter returns a Printer writing to w.
func NewPrinter(w io.Writer, color bool) *Printer {
	return &Printer{w: w, color: color}
}

// SetQuiet suppresses everything except errors.
func (p *Printer) SetQuiet(quiet bool) {
	p.quiet = quiet
}

func (p *Printer) paint(style lipgloss.Style, s string) string {
	if !p.color {
		return s
	}
	return style.Render(s)
}

func (p *Printer) printf(format string, args ...any) {
	if p.quiet {
		return
	}
	fmt.Fprintf(p.w, format, args...)
}

func (p *Printer) ok(format string, args ...any) {
	p.printf("%s %s\n", p.paint(okStyle, "✓"), fmt.Sprintf(format, args...))
}

// Header prints the banner with input and output paths.
func (p *Printer) Header(input, output string) {
	p.printf("%s\n", strings.Repeat("=", ruleWidth))
	p.printf("%s\n", p.paint(titleStyle, "BibTeX Bibliography Cleaner"))
	p.printf("%s\n", strings.Repeat("=", ruleWidth))
	p.printf("Input:  %s\n", input)
	p.printf("Output: %s\n", output)
	p.printf("%s\n", strings.Repeat("-", ruleWidth))
}

// Fields announces the removal list. Default lists are shortened.
func (p *Printer) Fields(fields []string, custom bool) {
	if custom {
		p.ok("Removing custom fields: %s", strings.Join(fields, ", "))
		return
	}
	shown := fields
	suffix := ""
	if len(shown) > previewCount {
		shown = shown[:previewCount]
		suffix = "..."
	}
	p.ok("Removing default fields: %s%s", strings.Join(shown, ", "), suffix)
}

// Passes prints one line per pass that ran.
func (p *Printer) Passes(res *pipeline.Result) {
	for _, pr := range res.Passes {
		if line := passLine(pr); line != "" {
			p.ok("%s", line)
		}
	}
}

func passLine(pr pipeline.PassResult) string {
	switch pr.Name {
	case pipeline.PassNormalizeUnicode:
		return fmt.Sprintf("Normalized Unicode on %d line(s)", pr.Count)
	case pipeline.PassJournalTitles:
		return fmt.Sprintf("Fixed %d journal title(s)", pr.Count)
	case pipeline.PassEntryTitles:
		return fmt.Sprintf("Fixed %d entry title(s)", pr.Count)
	case pipeline.PassSurnames:
		return fmt.Sprintf("Uppercased surnames in %d author/editor field(s)", pr.Count)
	case pipeline.PassRemoveFields:
		return fmt.Sprintf("Removed %d unwanted field entries", pr.Count)
	case pipeline.PassStripBlankLines:
		return fmt.Sprintf("Removed %d blank line(s)", pr.Count)
	default:
		return ""
	}
}

// Summary prints the size reduction and where the output went.
func (p *Printer) Summary(res *pipeline.Result, output string, dryRun bool) {
	p.printf("%s\n", strings.Repeat("-", ruleWidth))
	p.ok("Successfully cleaned bibliography!")
	p.ok("File size reduced by %s bytes (%.1f%%)", humanize.Comma(int64(res.Reduction())), res.ReductionPercent())
	if dryRun {
		p.printf("%s\n", p.paint(subtleStyle, "Dry run: output not written"))
	} else {
		p.ok("Output written to: %s", output)
	}
	p.printf("%s\n", strings.Repeat("=", ruleWidth))
}

// Caution reminds the user to review the output.
func (p *Printer) Caution() {
	p.printf("\n%s\n", p.paint(warnStyle, "⚠️  Please review the output file before using it!"))
}

// Error prints an error line. It is shown even in quiet mode.
func (p *Printer) Error(msg string) {
	fmt.Fprintf(p.w, "%s %s\n", p.paint(errorStyle, "Error:"), msg)
}

// BatchLine prints a one-line summary for a file cleaned in a batch.
func (p *Printer) BatchLine(path string, res *pipeline.Result) {
	parts := make([]string, 0, len(res.Passes))
	for _, pr := range res.Passes {
		parts = append(parts, fmt.Sprintf("%s=%d", pr.Name, pr.Count))
	}
	p.ok("%s %s %s", path, p.paint(subtleStyle, strings.Join(parts, " ")),
		p.paint(subtleStyle, fmt.Sprintf("(-%s)", humanize.Bytes(uint64(max(res.Reduction(), 0))))))
}
