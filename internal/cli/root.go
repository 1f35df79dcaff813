package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/zlobste/icmp6match/icmp6"
	"github.com/zlobste/icmp6match/internal/rules"
)

type outputFormat string

const (
	outHuman outputFormat = "human"
	outJSON  outputFormat = "json"
	outYAML  outputFormat = "yaml"
)

var rootCmd = &cobra.Command{
	Use:   "icmp6match",
	Short: "ICMPv6 match selector resolver and formatter",
	Long: "icmp6match resolves ICMPv6 selectors (symbolic names, numeric type or type/code,\n" +
		"numeric type ranges) into match criteria and renders them for display or for\n" +
		"persisted-rule text.",
}

var format outputFormat

// Execute runs the root command tree.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP((*string)(&format), "output", "o", string(outHuman), "output format: human|json|yaml")
	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(rangeCmd)
	rootCmd.AddCommand(typesCmd)
	rootCmd.AddCommand(rulesCmd)
}

func render(v any) error {
	w := rootCmd.OutOrStdout()
	switch format {
	case outHuman:
		fmt.Fprintln(w, v)
	case outJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case outYAML:
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(v)
	default:
		return errors.New("unknown output format")
	}
	return nil
}

// ---- Commands ----

var resolveCmd = &cobra.Command{
	Use:   "resolve <selector>",
	Short: "Resolve a single-type selector (name, type, or type/code)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		invert, _ := cmd.Flags().GetBool("invert")
		numeric, _ := cmd.Flags().GetBool("numeric")
		save, _ := cmd.Flags().GetBool("save")
		spec, err := icmp6.ParseTypeSelector(args[0], invert)
		if err != nil {
			return err
		}
		if save {
			return render(spec.Save())
		}
		return render(spec.Render(numeric))
	},
}

var rangeCmd = &cobra.Command{
	Use:   "range <min:max>",
	Short: "Resolve a type-range selector",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		save, _ := cmd.Flags().GetBool("save")
		spec, err := icmp6.ParseTypeRangeSelector(args[0])
		if err != nil {
			return err
		}
		if save {
			return render(spec.Save())
		}
		return render(spec.Render(false))
	},
}

var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "List valid ICMPv6 type names grouped by type",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		lines := icmp6.HelpListing()
		if format != outHuman {
			return render(lines)
		}
		w := rootCmd.OutOrStdout()
		fmt.Fprintln(w, "Valid ICMPv6 Types:")
		for _, l := range lines {
			fmt.Fprintln(w, l)
		}
		return nil
	},
}

var rulesCmd = &cobra.Command{
	Use:   "rules <file>",
	Short: "Validate a YAML rule file and print canonical save forms",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rewrite, _ := cmd.Flags().GetBool("rewrite")
		f, err := rules.Load(args[0])
		if err != nil {
			return err
		}
		if rewrite {
			if err := f.Save(args[0]); err != nil {
				return err
			}
		}
		list := make([]string, len(f.Rules))
		for i, r := range f.Rules {
			list[i] = r.Spec.Save()
		}
		return render(list)
	},
}

func init() {
	resolveCmd.Flags().Bool("invert", false, "invert the match sense")
	resolveCmd.Flags().Bool("numeric", false, "render numerically even when a symbolic name exists")
	resolveCmd.Flags().Bool("save", false, "render persisted-rule save form")
	rangeCmd.Flags().Bool("save", false, "render persisted-rule save form")
	rulesCmd.Flags().Bool("rewrite", false, "rewrite the file in canonical save form")
}
