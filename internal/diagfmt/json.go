package diagfmt

import (
	"encoding/json"
	"io"

	"cmakecheck/internal/diag"
	"cmakecheck/internal/source"
)

type jsonRemedy struct {
	ReplaceWith string   `json:"replace_with,omitempty"`
	Example     string   `json:"example,omitempty"`
	MoreInfo    []string `json:"more_info,omitempty"`
}

type jsonNote struct {
	File    string `json:"file"`
	Line    uint32 `json:"line"`
	Col     uint32 `json:"col"`
	Message string `json:"message"`
}

type jsonDiagnostic struct {
	File     string      `json:"file"`
	Line     uint32      `json:"line"`
	Col      uint32      `json:"col"`
	EndLine  uint32      `json:"end_line"`
	EndCol   uint32      `json:"end_col"`
	Severity string      `json:"severity"`
	Code     string      `json:"code"`
	Rule     string      `json:"rule,omitempty"`
	Message  string      `json:"message"`
	Notes    []jsonNote  `json:"notes,omitempty"`
	Remedy   *jsonRemedy `json:"remedy,omitempty"`
}

type jsonReport struct {
	Diagnostics []jsonDiagnostic `json:"diagnostics"`
	Total       int              `json:"total"`
	Truncated   bool             `json:"truncated"`
	Files       int              `json:"files"`
}

// WriteJSON emits the machine-readable report. The bag is expected to be
// sorted already; files is the number of files checked.
func WriteJSON(w io.Writer, bag *diag.Bag, fs *source.FileSet, files int, opts JSONOpts) error {
	report := jsonReport{
		Diagnostics: make([]jsonDiagnostic, 0, bag.Len()),
		Total:       bag.Total(),
		Truncated:   bag.Truncated(),
		Files:       files,
	}
	for _, d := range bag.Items() {
		start, end := fs.Resolve(d.Primary)
		f := fs.Get(d.Primary.File)
		jd := jsonDiagnostic{
			File:     f.FormatPath(opts.PathMode.key(), opts.BaseDir),
			Line:     start.Line,
			Col:      start.Col,
			EndLine:  end.Line,
			EndCol:   end.Col,
			Severity: d.Severity.Label(),
			Code:     d.Code.ID(),
			Rule:     d.Rule,
			Message:  d.Message,
		}
		for _, n := range d.Notes {
			ns, _ := fs.Resolve(n.Span)
			nf := fs.Get(n.Span.File)
			jd.Notes = append(jd.Notes, jsonNote{
				File:    nf.FormatPath(opts.PathMode.key(), opts.BaseDir),
				Line:    ns.Line,
				Col:     ns.Col,
				Message: n.Msg,
			})
		}
		if d.Remedy != nil {
			jr := &jsonRemedy{Example: d.Remedy.Example}
			if d.Remedy.ReplaceWith != nil {
				jr.ReplaceWith = d.Remedy.ReplaceWith.String()
			}
			for _, l := range d.Remedy.MoreInfo {
				jr.MoreInfo = append(jr.MoreInfo, l.String())
			}
			jd.Remedy = jr
		}
		report.Diagnostics = append(report.Diagnostics, jd)
	}

	enc := json.NewEncoder(w)
	if opts.Indent {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(report)
}
