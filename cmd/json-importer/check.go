package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"json-importer/internal/jsonvalue"
	"json-importer/internal/match"
)

var checkFlags struct {
	descriptor string
	structure  string
	exact      bool
}

var checkCmd = &cobra.Command{
	Use:   "check [INPUT|-]",
	Short: "Validate a JSON object and import it",
	Long: `Validate a JSON object against a structure from a descriptor file.

On success the imported object is printed, holding only the declared fields in
declaration order. Otherwise the list of validation errors is printed as JSON
and the command exits with status 1.

Examples:
  # Check a file
  json-importer check --descriptor structures.yaml --structure User user.json

  # Check stdin, rejecting fields the structure does not declare
  json-importer check -d structures.yaml -s User --exact < user.json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringVarP(&checkFlags.descriptor, "descriptor", "d", "", "descriptor file (YAML)")
	checkCmd.Flags().StringVarP(&checkFlags.structure, "structure", "s", "", "structure to check against")
	checkCmd.Flags().BoolVar(&checkFlags.exact, "exact", false, "reject fields the structure does not declare")

	_ = checkCmd.MarkFlagRequired("descriptor")
	_ = checkCmd.MarkFlagRequired("structure")
}

func runCheck(cmd *cobra.Command, args []string) error {
	f, err := loadDescriptor(checkFlags.descriptor)
	if err != nil {
		return err
	}

	s, ok := f.Lookup(checkFlags.structure)
	if !ok {
		msg := fmt.Sprintf("structure %q not found in %s", checkFlags.structure, checkFlags.descriptor)
		if sugg := match.Suggest(checkFlags.structure, f.Names()); len(sugg) > 0 {
			msg += fmt.Sprintf(" (did you mean '%s'?)", strings.Join(sugg, "', '"))
		}

		return errors.New(msg)
	}

	imp := s.Importer()
	if checkFlags.exact && !s.Exact {
		imp.OnlyAllowExactFields()
	}

	log.Debug().
		Str("structure", s.Name).
		Int("fields", len(s.Fields)).
		Int("rules", len(imp.Rules())).
		Msg("importer built")

	obj, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	out, errs := imp.ValidateAndImport(obj)

	log.Debug().
		Str("structure", s.Name).
		Int("errors", errs.Len()).
		Msg("input validated")

	if errs.HasErrors() {
		if err := writeJSON(cmd.OutOrStdout(), errs); err != nil {
			return err
		}

		return errInvalidInput
	}

	return writeJSON(cmd.OutOrStdout(), out)
}

func readInput(cmd *cobra.Command, args []string) (*jsonvalue.Object, error) {
	var (
		r    io.Reader = cmd.InOrStdin()
		name           = "stdin"
	)

	if len(args) == 1 && args[0] != "-" {
		fh, err := os.Open(args[0])
		if err != nil {
			return nil, fmt.Errorf("failed to open input: %w", err)
		}
		defer fh.Close()

		r, name = fh, args[0]
	}

	obj, err := jsonvalue.DecodeReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", name, err)
	}

	return obj, nil
}

func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}

	_, err = fmt.Fprintln(w, string(data))

	return err
}
