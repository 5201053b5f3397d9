package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"tinyjava/internal/version"
)

func (a *app) versionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show tjc build information",
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("format")
			full, _ := cmd.Flags().GetBool("full")
			switch lower(format) {
			case "pretty":
				renderVersionPretty(cmd.OutOrStdout(), a.useColor(os.Stdout), full)
				return nil
			case "json":
				return renderVersionJSON(cmd.OutOrStdout(), full)
			default:
				return fmt.Errorf("unsupported format %q (must be pretty or json)", format)
			}
		},
	}
	cmd.Flags().String("format", "pretty", "output format (pretty|json)")
	cmd.Flags().Bool("full", false, "include commit, message and build date")
	return cmd
}

func renderVersionPretty(out io.Writer, colored, full bool) {
	fmt.Fprintf(out, "tjc %s\n", version.Pretty(colored))
	if !full {
		return
	}
	info := version.Current()
	fmt.Fprintf(out, "commit:  %s\n", valueOrUnknown(version.ShortCommit()))
	fmt.Fprintf(out, "message: %s\n", valueOrUnknown(info.GitMessage))
	fmt.Fprintf(out, "built:   %s\n", valueOrUnknown(info.BuildDate))
}

func renderVersionJSON(out io.Writer, full bool) error {
	info := version.Current()
	if !full {
		info = version.Info{Version: info.Version}
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(info)
}

func valueOrUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}
