package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"tinyjava/internal/diagfmt"
	"tinyjava/internal/driver"
)

func (a *app) tokenizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokenize [flags] file.tj",
		Short: "Tokenize a tinyjava source file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("format")
			res, err := driver.Compile(cmd.Context(), args[0], a.options(driver.StageTokenize))
			if res == nil {
				return err
			}
			if rerr := a.report(cmd.ErrOrStderr(), res); rerr != nil {
				return rerr
			}
			out := cmd.OutOrStdout()
			switch lower(format) {
			case "pretty":
				if ferr := diagfmt.FormatTokensPretty(out, res.Tokens, res.FileSet); ferr != nil {
					return ferr
				}
			case "json":
				if ferr := diagfmt.FormatTokensJSON(out, res.Tokens); ferr != nil {
					return ferr
				}
			default:
				return fmt.Errorf("unknown format: %s", format)
			}
			return finish(res, err)
		},
	}
	cmd.Flags().String("format", "pretty", "output format (pretty|json)")
	return cmd
}

func (a *app) parseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse [flags] file.tj",
		Short: "Scan and parse a file, stopping before type checking",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("format")
			format = lower(format)
			if format != "tree" && format != "none" {
				return fmt.Errorf("unknown format: %s", format)
			}
			res, err := driver.Compile(cmd.Context(), args[0], a.options(driver.StageParse))
			if res == nil {
				return err
			}
			if rerr := a.report(cmd.ErrOrStderr(), res); rerr != nil {
				return rerr
			}
			if err != nil {
				return finish(res, err)
			}
			if format == "tree" {
				return diagfmt.FormatASTTree(cmd.OutOrStdout(), res.Program)
			}
			if !a.quiet {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: parsed %d statements\n", args[0], len(res.Program.Body.Stmts))
			}
			return nil
		},
	}
	cmd.Flags().String("format", "tree", "output format (tree|none)")
	return cmd
}

func (a *app) checkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [flags] file.tj",
		Short: "Scan, parse and type check a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			showSymbols, _ := cmd.Flags().GetBool("symbols")
			res, err := driver.Compile(cmd.Context(), args[0], a.options(driver.StageCheck))
			if res == nil {
				return err
			}
			if rerr := a.report(cmd.ErrOrStderr(), res); rerr != nil {
				return rerr
			}
			if err != nil {
				return finish(res, err)
			}
			if showSymbols {
				return diagfmt.FormatSymbols(cmd.OutOrStdout(), res.Sema.Table)
			}
			if !a.quiet {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", args[0])
			}
			return nil
		},
	}
	cmd.Flags().Bool("symbols", false, "print the global scope and method table")
	return cmd
}
