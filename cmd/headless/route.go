package main

import (
	"fmt"

	"github.com/spf13/cobra"

	herrors "github.com/vango-dev/headless/internal/errors"
	"github.com/vango-dev/headless/pkg/routepath"
)

func parseTemplate(pattern string) (routepath.Template, error) {
	t, err := routepath.Parse(pattern)
	if err != nil {
		return routepath.Template{}, herrors.New("H020").
			WithDetail(fmt.Sprintf("%q: %v", pattern, err)).
			Wrap(err)
	}
	return t, nil
}

func matchCmd() *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "match <template> <path>",
		Short: "Extract route params from a path",
		Long: `Match a concrete path against a route template and print the
extracted parameters as name=value lines.

Matching is positional: literal segments are not compared, and
parameters beyond the end of the path are left out. With --strict
the path must have the template's shape.

Examples:
  headless match /layout1/:tag/dog /layout1/T/dog
  headless match --strict /items/:id/edit /items/7/edit`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := parseTemplate(args[0])
			if err != nil {
				return err
			}
			if strict && !t.Matches(args[1]) {
				return herrors.New("H080").
					WithDetail(fmt.Sprintf("%q does not have the shape of %s", args[1], t))
			}
			fmt.Fprint(cmd.OutOrStdout(), formatParams(routepath.Match(t, args[1])))
			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "Require the path to have the template's shape")
	return cmd
}

func synthCmd() *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "synth <template> [name=value...]",
		Short: "Build a path from a route template",
		Long: `Substitute parameters into a route template and print the path.

Parameters without a value keep their :name placeholder unless
--strict is set, in which case they are an error.

Examples:
  headless synth /layout1/:tag/cat/:number tag=T number=100`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := parseTemplate(args[0])
			if err != nil {
				return err
			}
			params, err := parseAssignments(args[1:])
			if err != nil {
				return err
			}

			path := routepath.Synthesize(t, params)
			if strict {
				path, err = routepath.SynthesizeStrict(t, params)
				if err != nil {
					return herrors.New("H002").WithDetail(err.Error()).Wrap(err)
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "Fail on parameters without a value")
	return cmd
}
