package diagfmt

import (
	"encoding/json"
	"io"
	"strings"

	"cmakecheck/internal/diag"
	"cmakecheck/internal/source"
)

// SARIF v2.1.0, minimal subset understood by code-scanning consumers.

type sarifLog struct {
	Schema  string     `json:"$schema"`
	Version string     `json:"version"`
	Runs    []sarifRun `json:"runs"`
}

type sarifRun struct {
	Tool        sarifTool         `json:"tool"`
	Invocations []sarifInvocation `json:"invocations,omitempty"`
	Results     []sarifResult     `json:"results"`
}

type sarifInvocation struct {
	CommandLine         string `json:"commandLine,omitempty"`
	ExecutionSuccessful bool   `json:"executionSuccessful"`
}

type sarifTool struct {
	Driver sarifDriver `json:"driver"`
}

type sarifDriver struct {
	Name    string      `json:"name"`
	Version string      `json:"version,omitempty"`
	Rules   []sarifRule `json:"rules,omitempty"`
}

type sarifRule struct {
	ID               string        `json:"id"`
	Name             string        `json:"name,omitempty"`
	ShortDescription *sarifMessage `json:"shortDescription,omitempty"`
}

type sarifResult struct {
	RuleID    string          `json:"ruleId"`
	Level     string          `json:"level"`
	Message   sarifMessage    `json:"message"`
	Locations []sarifLocation `json:"locations"`
}

type sarifMessage struct {
	Text string `json:"text"`
}

type sarifLocation struct {
	PhysicalLocation sarifPhysicalLocation `json:"physicalLocation"`
}

type sarifPhysicalLocation struct {
	ArtifactLocation sarifArtifactLocation `json:"artifactLocation"`
	Region           sarifRegion           `json:"region"`
}

type sarifArtifactLocation struct {
	URI string `json:"uri"`
}

type sarifRegion struct {
	StartLine   uint32 `json:"startLine"`
	StartColumn uint32 `json:"startColumn"`
	EndLine     uint32 `json:"endLine"`
	EndColumn   uint32 `json:"endColumn"`
}

func sarifLevel(s diag.Severity) string {
	switch s {
	case diag.SevError:
		return "error"
	case diag.SevWarning:
		return "warning"
	default:
		return "note"
	}
}

// Sarif writes the diagnostics as a SARIF v2.1.0 log.
func Sarif(w io.Writer, bag *diag.Bag, fs *source.FileSet, meta SarifRunMeta) error {
	seenRules := make(map[string]bool)
	var rules []sarifRule
	results := make([]sarifResult, 0, bag.Len())

	for _, d := range bag.Items() {
		start, end := fs.Resolve(d.Primary)
		f := fs.Get(d.Primary.File)

		id := d.Code.ID()
		if !seenRules[id] {
			seenRules[id] = true
			rules = append(rules, sarifRule{
				ID:               id,
				Name:             d.Rule,
				ShortDescription: &sarifMessage{Text: d.Code.Title()},
			})
		}
		results = append(results, sarifResult{
			RuleID:  id,
			Level:   sarifLevel(d.Severity),
			Message: sarifMessage{Text: d.Message},
			Locations: []sarifLocation{{
				PhysicalLocation: sarifPhysicalLocation{
					ArtifactLocation: sarifArtifactLocation{URI: f.Path},
					Region: sarifRegion{
						StartLine:   start.Line,
						StartColumn: start.Col,
						EndLine:     end.Line,
						EndColumn:   end.Col,
					},
				},
			}},
		})
	}

	var invocations []sarifInvocation
	if len(meta.InvocationArgs) > 0 {
		invocations = []sarifInvocation{{
			CommandLine:         strings.Join(meta.InvocationArgs, " "),
			ExecutionSuccessful: true,
		}}
	}

	log := sarifLog{
		Schema:  "https://raw.githubusercontent.com/oasis-tcs/sarif-spec/master/Schemata/sarif-schema-2.1.0.json",
		Version: "2.1.0",
		Runs: []sarifRun{{
			Tool: sarifTool{Driver: sarifDriver{
				Name:    meta.ToolName,
				Version: meta.ToolVersion,
				Rules:   rules,
			}},
			Invocations: invocations,
			Results:     results,
		}},
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(log)
}
