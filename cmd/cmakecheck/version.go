package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"cmakecheck/internal/version"
)

type versionInfo struct {
	Version   string
	GitCommit string
	BuildDate string
}

type versionOptions struct {
	format   string
	showHash bool
	showDate bool
}

type versionPayload struct {
	Tool      string `json:"tool"`
	Version   string `json:"version"`
	GitCommit string `json:"git_commit,omitempty"`
	BuildDate string `json:"build_date,omitempty"`
}

var (
	versionFormat   string
	versionShowHash bool
	versionShowDate bool
	versionShowFull bool
)

func init() {
	versionCmd.Flags().BoolVar(&versionShowHash, "hash", false, "include git commit hash")
	versionCmd.Flags().BoolVar(&versionShowDate, "date", false, "include build timestamp")
	versionCmd.Flags().BoolVar(&versionShowFull, "full", false, "show every recorded bit of build metadata")
	versionCmd.Flags().StringVar(&versionFormat, "format", "pretty", "output format (pretty|json)")
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show cmakecheck build fingerprints",
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := versionOptions{
			format:   strings.ToLower(versionFormat),
			showHash: versionShowHash || versionShowFull,
			showDate: versionShowDate || versionShowFull,
		}

		switch opts.format {
		case "pretty", "json":
			// supported
		default:
			return fmt.Errorf("unsupported format %q (must be pretty or json)", versionFormat)
		}

		info := collectVersionInfo()
		if opts.format == "json" {
			return renderVersionJSON(cmd.OutOrStdout(), info, opts)
		}

		renderVersionPretty(cmd.OutOrStdout(), info, opts)
		return nil
	},
}

func collectVersionInfo() versionInfo {
	v := strings.TrimSpace(version.Version)
	if v == "" {
		v = "dev"
	}
	return versionInfo{
		Version:   v,
		GitCommit: strings.TrimSpace(version.GitCommit),
		BuildDate: strings.TrimSpace(version.BuildDate),
	}
}

func renderVersionPretty(out io.Writer, info versionInfo, opts versionOptions) {
	fmt.Fprintf(out, "cmakecheck %s\n", info.Version)
	if opts.showHash {
		fmt.Fprintf(out, "commit: %s\n", valueOrUnknown(info.GitCommit))
	}
	if opts.showDate {
		fmt.Fprintf(out, "built:  %s\n", valueOrUnknown(info.BuildDate))
	}
}

func renderVersionJSON(out io.Writer, info versionInfo, opts versionOptions) error {
	payload := versionPayload{
		Tool:    "cmakecheck",
		Version: info.Version,
	}
	if opts.showHash {
		payload.GitCommit = valueOrUnknown(info.GitCommit)
	}
	if opts.showDate {
		payload.BuildDate = valueOrUnknown(info.BuildDate)
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(payload)
}

func valueOrUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}
