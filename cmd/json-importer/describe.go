package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"json-importer/internal/descriptor"
)

var describeFlags struct {
	descriptor string
}

var describeCmd = &cobra.Command{
	Use:   "describe",
	Short: "Show diagnostics and rules for a descriptor file",
	Long: `Load a descriptor file, report its diagnostics and list the validation
rules each structure applies, in the order they run.`,
	Args: cobra.NoArgs,
	RunE: runDescribe,
}

func init() {
	rootCmd.AddCommand(describeCmd)

	describeCmd.Flags().StringVarP(&describeFlags.descriptor, "descriptor", "d", "", "descriptor file (YAML)")

	_ = describeCmd.MarkFlagRequired("descriptor")
}

func runDescribe(cmd *cobra.Command, _ []string) error {
	f, err := descriptor.LoadFile(describeFlags.descriptor)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()

	diags := descriptor.Validate(f)
	for _, d := range diags.All() {
		fmt.Fprintf(w, "%s: %s\n", d.Severity, d)
	}

	if diags.HasErrors() {
		return fmt.Errorf("invalid descriptor %s: %d error(s)", describeFlags.descriptor, len(diags.Errors))
	}

	for i := range f.Structures {
		s := &f.Structures[i]

		header := s.Name
		if s.Exact {
			header += " (exact)"
		}

		fmt.Fprintln(w, header)

		for _, r := range s.Importer().Rules() {
			fmt.Fprintf(w, "  - %v\n", r)
		}
	}

	return nil
}
