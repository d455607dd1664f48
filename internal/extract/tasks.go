package extract

import (
	"strings"

	"megone/internal/normalize"
	"megone/internal/tabular"
)

// Task is one download/save job for the task-aggregation report. All
// fields are derived; the directory is never consulted.
type Task struct {
	Code       string
	Company    string
	Period     string
	Competence string
	SaveAs     string
	Path       string
}

// Tasks keeps the first two columns of the base table as (code, company),
// de-duplicates on that pair keeping the first occurrence, and derives the
// save-as name and target path from the accounting period. Period is
// "MM/YYYY" and competence the same with the separator removed; both are
// validated by the caller. The target path template is dir + saveAs + ext.
func Tasks(table *tabular.Table, period, competence, dir, ext string) []Task {
	type pair struct{ code, company string }
	seen := make(map[pair]struct{}, len(table.Rows))

	out := make([]Task, 0, len(table.Rows))
	for _, row := range table.Rows {
		code := normalize.Identifier(row.At(0))
		company := row.At(1).String()
		key := pair{code, company}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		saveAs := code + "-" + company + "-" + competence
		out = append(out, Task{
			Code:       code,
			Company:    company,
			Period:     period,
			Competence: competence,
			SaveAs:     saveAs,
			Path:       joinTemplate(dir, saveAs+ext),
		})
	}
	return out
}

// joinTemplate appends name to dir honoring the directory's own separator
// style; the default target is a Windows share, configured with
// backslashes, while tests and local setups use forward slashes.
func joinTemplate(dir, name string) string {
	sep := "/"
	if strings.Contains(dir, `\`) {
		sep = `\`
	}
	return strings.TrimRight(dir, `/\`) + sep + name
}
