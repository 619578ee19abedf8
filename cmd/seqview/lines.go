package main

import (
	"fmt"
	"regexp"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"seqview/sources"
	"seqview/views"
)

func newHeadCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "head [file]",
		Short: "Print the first lines of a file or stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			in, err := openInput(cmd, args)
			if err != nil {
				return err
			}
			defer func() { err = errors.CombineErrors(err, in.Close()) }()

			flags := a.viewFlags()
			v, err := views.Take[string](sources.Lines(in), a.v.GetInt("count"), flags)
			if err != nil {
				return err
			}
			a.logger.Debug("head", zap.Stringer("kind", v.Kind()), zap.Stringer("flags", flags))
			return printView(cmd.OutOrStdout(), v, line)
		},
	}
	cmd.Flags().IntP("count", "n", 10, "number of lines")
	cmd.Flags().Bool("exact", false, "report the count as the length")
	cmd.Flags().Bool("strict", false, "fail when the input has fewer lines")
	return cmd
}

func newUntilCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "until [file]",
		Short: "Print lines up to the first one matching --match",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			re, err := regexp.Compile(a.v.GetString("match"))
			if err != nil {
				return errors.Wrap(err, "compile --match")
			}
			in, err := openInput(cmd, args)
			if err != nil {
				return err
			}
			defer func() { err = errors.CombineErrors(err, in.Close()) }()

			src := sources.Lines(in)
			flags := a.viewFlags() | views.Repeatable
			v, err := views.TakeUntil[string](src, re.MatchString, flags)
			if err != nil {
				return err
			}
			a.logger.Debug("until", zap.Stringer("kind", v.Kind()), zap.Stringer("flags", flags))

			out := cmd.OutOrStdout()
			if err := printView(out, v, line); err != nil {
				return err
			}
			if sep := a.v.GetString("rest"); sep != "" {
				fmt.Fprintln(out, sep)
				return printView[string](out, src, line)
			}
			return nil
		},
	}
	cmd.Flags().String("match", "^$", "regular expression ending the view")
	cmd.Flags().Bool("strict", false, "fail when no line matches")
	cmd.Flags().Bool("consume", false, "drop the matching line from the rest")
	cmd.Flags().String("rest", "", "print this separator and then the remaining lines")
	return cmd
}

func newDropCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "drop [file]",
		Short: "Print all but the first lines of a file or stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			in, err := openInput(cmd, args)
			if err != nil {
				return err
			}
			defer func() { err = errors.CombineErrors(err, in.Close()) }()

			v := views.Drop[string](sources.Lines(in), a.v.GetInt("count"))
			a.logger.Debug("drop", zap.Stringer("kind", v.Kind()))
			return printView(cmd.OutOrStdout(), v, line)
		},
	}
	cmd.Flags().IntP("count", "n", 10, "number of lines to skip")
	return cmd
}
