package presentation

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"
)

// Formatter handles output formatting
type Formatter struct {
	writer io.Writer
}

// NewFormatter creates a new formatter
func NewFormatter(writer io.Writer) *Formatter {
	return &Formatter{
		writer: writer,
	}
}

// JSON writes v as indented JSON.
func (f *Formatter) JSON(v any) error {
	encoder := json.NewEncoder(f.writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// Operations writes an aligned ID / category / description table.
func (f *Formatter) Operations(ops []OperationDTO) error {
	w := tabwriter.NewWriter(f.writer, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "OPERATION\tCATEGORY\tDESCRIPTION")
	for _, op := range ops {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\n", op.ID, op.Label, op.Description)
	}
	return w.Flush()
}

// Executions writes recent history entries, newest first.
func (f *Formatter) Executions(entries []ExecutionDTO) error {
	if len(entries) == 0 {
		_, err := fmt.Fprintln(f.writer, "No executions recorded.")
		return err
	}
	w := tabwriter.NewWriter(f.writer, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "TIME\tOPERATION\tRESULT\tIN\tOUT\tMS")
	for _, e := range entries {
		result := "ok"
		if !e.Success {
			result = e.ErrorKind
		}
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%d\n",
			e.CreatedAt.Local().Format(time.DateTime), e.Operation, result,
			e.InputBytes, e.OutputBytes, e.DurationMs)
	}
	return w.Flush()
}

// Stats writes per-operation aggregates.
func (f *Formatter) Stats(stats []StatsDTO) error {
	if len(stats) == 0 {
		_, err := fmt.Fprintln(f.writer, "No executions recorded.")
		return err
	}
	w := tabwriter.NewWriter(f.writer, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "OPERATION\tRUNS\tFAILED\tAVG MS\tLAST RUN")
	for _, s := range stats {
		_, _ = fmt.Fprintf(w, "%s\t%d\t%d\t%.1f\t%s\n",
			s.Operation, s.Total, s.Failures, s.AvgMs, s.LastRunAt.Local().Format(time.DateTime))
	}
	return w.Flush()
}

// Markdown writes the operation reference document.
func (f *Formatter) Markdown(ops []OperationDTO) error {
	_, err := io.WriteString(f.writer, ReferenceMarkdown(ops))
	return err
}

// ReferenceMarkdown builds the operation reference: one section per
// category in first-seen order, each a table of operations.
func ReferenceMarkdown(ops []OperationDTO) string {
	var b strings.Builder
	b.WriteString("# Operations\n\n")
	if len(ops) == 0 {
		b.WriteString("_No operations match._\n")
		return b.String()
	}

	var order []string
	groups := make(map[string][]OperationDTO)
	for _, op := range ops {
		if _, seen := groups[op.Label]; !seen {
			order = append(order, op.Label)
		}
		groups[op.Label] = append(groups[op.Label], op)
	}

	for _, label := range order {
		fmt.Fprintf(&b, "## %s\n\n", label)
		b.WriteString("| Operation | Description |\n|---|---|\n")
		for _, op := range groups[label] {
			fmt.Fprintf(&b, "| `%s` | %s |\n", op.ID, escapeCell(op.Description))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
