package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tinyjava/internal/driver"
	"tinyjava/internal/format"
)

func (a *app) fmtCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fmt [flags] file.tj|dir...",
		Short: "Rewrite tinyjava sources in canonical layout",
		Long: `Parse each file and print it back in canonical layout. Directories are
searched for *.tj files. Without --write or --check the result goes to stdout.`,
		Args: cobra.MinimumNArgs(1),
		RunE: a.runFmt,
	}
	cmd.Flags().BoolP("write", "w", false, "write the result back to the source file")
	cmd.Flags().Bool("check", false, "list files whose layout differs and fail if any do")
	return cmd
}

func (a *app) runFmt(cmd *cobra.Command, args []string) error {
	write, _ := cmd.Flags().GetBool("write")
	check, _ := cmd.Flags().GetBool("check")
	if write && check {
		return fmt.Errorf("--write and --check are mutually exclusive")
	}
	opts := format.Options{
		IndentWidth: a.cfg.Format.IndentWidth,
		UseTabs:     a.cfg.Format.UseTabs,
	}

	paths, err := expandSources(args)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	failed, unformatted := 0, 0
	for _, path := range paths {
		res, err := driver.Compile(cmd.Context(), path, a.options(driver.StageParse))
		if res == nil {
			return err
		}
		if rerr := a.report(cmd.ErrOrStderr(), res); rerr != nil {
			return rerr
		}
		if err != nil {
			failed++
			continue
		}
		formatted := format.Program(res.Program, opts)
		same := bytes.Equal(formatted, res.File.Content)
		switch {
		case check:
			if !same {
				fmt.Fprintln(out, path)
				unformatted++
			}
		case write:
			if same {
				continue
			}
			info, err := os.Stat(path)
			if err != nil {
				return err
			}
			if err := os.WriteFile(path, formatted, info.Mode().Perm()); err != nil {
				return err
			}
		default:
			if _, err := out.Write(formatted); err != nil {
				return err
			}
		}
	}
	if failed > 0 || unformatted > 0 {
		return errReported
	}
	return nil
}

// expandSources replaces each directory argument with the tinyjava files
// below it.
func expandSources(args []string) ([]string, error) {
	var paths []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			paths = append(paths, arg)
			continue
		}
		files, err := driver.ListSources(arg)
		if err != nil {
			return nil, err
		}
		paths = append(paths, files...)
	}
	return paths, nil
}
