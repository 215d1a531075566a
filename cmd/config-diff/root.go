package main

import (
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/repr"
	"github.com/google/renameio"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/confdiff/confdiff/dialect"
	"github.com/confdiff/confdiff/diff"
	"github.com/confdiff/confdiff/ir"
	"github.com/confdiff/confdiff/normalize"
	"github.com/confdiff/confdiff/plan"
	"github.com/confdiff/confdiff/report"
)

var (
	flagDialect             string
	flagOrderPolicy         string
	flagIgnoreComments      bool
	flagIgnoreBlankLines    bool
	flagNormalizeWhitespace bool
	flagJSON                bool
	flagPlanJSON            bool
	flagStat                bool
	flagConfig              string
	flagOutput              string
	flagDebugTree           bool
)

var rootCmd = &cobra.Command{
	Use:          "config-diff [OPTIONS] <FILE_A> <FILE_B>",
	Short:        "Structurally diff two configuration files",
	Long:         "config-diff parses two configuration files into a lossless indentation tree, diffs them under a configurable sibling-order policy, and reports the result as Markdown or JSON.",
	Args:         cobra.ExactArgs(2),
	SilenceUsage: true,
	RunE:         runDiff,
}

func init() {
	registerFlags(rootCmd.Flags())
}

// registerFlags binds every CLI flag to its package-level variable. Takes
// the concrete *pflag.FlagSet (rather than going only through
// *cobra.Command) so flag registration stays testable independent of the
// cobra command tree, the way MacroPower-x's Config.RegisterFlags does.
func registerFlags(flags *pflag.FlagSet) {
	flags.StringVar(&flagDialect, "dialect", "generic", fmt.Sprintf("parser profile (%v)", dialect.Names()))
	flags.StringVar(&flagOrderPolicy, "order-policy", "ordered", "sibling ordering policy (ordered|unordered|keyed-stable)")
	flags.BoolVar(&flagIgnoreComments, "ignore-comments", false, "ignore comment lines when comparing")
	flags.BoolVar(&flagIgnoreBlankLines, "ignore-blank-lines", false, "ignore blank lines when comparing")
	flags.BoolVar(&flagNormalizeWhitespace, "normalize-whitespace", false, "enable the whitespace normalization steps")
	flags.BoolVar(&flagJSON, "json", false, "emit Diff JSON instead of Markdown")
	flags.BoolVar(&flagPlanJSON, "plan-json", false, "emit Plan JSON instead of Markdown")
	flags.BoolVar(&flagStat, "stat", false, "print only the stats footer")
	flags.StringVar(&flagConfig, "config", "", "YAML file supplying default comparison options")
	flags.StringVar(&flagOutput, "output", "", "write the report to FILE instead of stdout")
	flags.BoolVar(&flagDebugTree, "debug-tree", false, "dump parsed document trees for troubleshooting")
	_ = flags.MarkHidden("debug-tree")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func runDiff(cmd *cobra.Command, args []string) error {
	start := time.Now()
	leftFile, rightFile := args[0], args[1]

	dialectName, orderPolicyName, normOpts, err := resolveOptions(cmd)
	if err != nil {
		return err
	}

	profile, err := dialect.Lookup(dialectName)
	if err != nil {
		return err
	}

	policy, err := parseOrderPolicy(orderPolicyName)
	if err != nil {
		return err
	}

	leftText, err := os.ReadFile(leftFile)
	if err != nil {
		return err
	}
	rightText, err := os.ReadFile(rightFile)
	if err != nil {
		return err
	}

	leftDoc := ir.Parse(leftText, profile)
	rightDoc := ir.Parse(rightText, profile)

	if flagDebugTree {
		repr.Println(leftDoc)
		repr.Println(rightDoc)
	}

	d := diff.Documents(leftDoc, rightDoc, normOpts, diff.OrderPolicyConfig{Policy: policy})
	p := plan.Build(d)

	logrus.WithFields(logrus.Fields{
		"dialect":              dialectName,
		"order_policy":         string(policy),
		"normalization_steps":  len(d.NormalizationSteps),
		"edits":                len(d.Edits),
		"findings":             len(d.Findings),
		"elapsed":              time.Since(start).String(),
		"left_file":            leftFile,
		"right_file":           rightFile,
	}).Info("compared configuration files")

	out, err := render(d, p, report.Options{
		LeftFile:           leftFile,
		RightFile:          rightFile,
		Dialect:            dialectName,
		OrderPolicy:        policy,
		NormalizationSteps: d.NormalizationSteps,
	})
	if err != nil {
		return err
	}

	return writeOutput(out)
}

func render(d *diff.Diff, p *plan.Plan, opts report.Options) ([]byte, error) {
	switch {
	case flagPlanJSON:
		return report.RenderPlanJSON(p)
	case flagJSON:
		return report.RenderDiffJSON(d)
	case flagStat:
		return []byte(fmt.Sprintf("inserts=%d deletes=%d replaces=%d total=%d\n",
			d.Stats.Inserts, d.Stats.Deletes, d.Stats.Replaces, d.Stats.Any())), nil
	default:
		return []byte(report.RenderMarkdown(d, p, opts)), nil
	}
}

func writeOutput(out []byte) error {
	if flagOutput == "" {
		_, err := os.Stdout.Write(out)
		return err
	}

	pf, err := renameio.TempFile("", flagOutput)
	if err != nil {
		return err
	}
	defer pf.Cleanup()

	if _, err := pf.Write(out); err != nil {
		return err
	}
	return pf.CloseAtomicallyReplace()
}

func resolveOptions(cmd *cobra.Command) (dialectName, orderPolicyName string, opts normalize.Options, err error) {
	dialectName, orderPolicyName = flagDialect, flagOrderPolicy
	ignoreComments, ignoreBlankLines, normalizeWhitespace := flagIgnoreComments, flagIgnoreBlankLines, flagNormalizeWhitespace

	if flagConfig != "" {
		cfg, cerr := loadFileConfig(flagConfig)
		if cerr != nil {
			return "", "", opts, cerr
		}
		if !cmd.Flags().Changed("dialect") && cfg.Dialect != "" {
			dialectName = cfg.Dialect
		}
		if !cmd.Flags().Changed("order-policy") && cfg.OrderPolicy != "" {
			orderPolicyName = cfg.OrderPolicy
		}
		if !cmd.Flags().Changed("ignore-comments") {
			ignoreComments = cfg.IgnoreComments
		}
		if !cmd.Flags().Changed("ignore-blank-lines") {
			ignoreBlankLines = cfg.IgnoreBlankLines
		}
		if !cmd.Flags().Changed("normalize-whitespace") {
			normalizeWhitespace = cfg.NormalizeWhitespace
		}
	}

	var steps []normalize.Step
	if ignoreComments {
		steps = append(steps, normalize.IgnoreComments)
	}
	if ignoreBlankLines {
		steps = append(steps, normalize.IgnoreBlankLines)
	}
	if normalizeWhitespace {
		steps = append(steps,
			normalize.TrimTrailingWhitespace,
			normalize.NormalizeLeadingWhitespace,
			normalize.CollapseInternalWhitespace,
		)
	}

	return dialectName, orderPolicyName, normalize.NewOptions(steps...), nil
}

func parseOrderPolicy(name string) (diff.OrderPolicy, error) {
	switch diff.OrderPolicy(name) {
	case diff.Ordered, diff.Unordered, diff.KeyedStable:
		return diff.OrderPolicy(name), nil
	default:
		return "", fmt.Errorf("config-diff: unknown order policy %q", name)
	}
}
