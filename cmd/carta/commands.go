package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"github.com/portaldocs/carta/pkg/carta"
)

var extractCmd = &cobra.Command{
	Use:   "extract <template.docx>",
	Short: "List the variables and conditionals a template references",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := carta.NewService(args[0])
		variables, conditionals, err := svc.ExtractVariables()
		if err != nil {
			return err
		}

		fmt.Println("Variables:")
		for _, name := range variables {
			fmt.Printf("  %s\n", name)
		}
		fmt.Println("Conditionals:")
		for _, name := range conditionals {
			fmt.Printf("  %s\n", name)
		}
		return nil
	},
}

var (
	generateVars     []string
	generateConds    []string
	generateVarsFile string
	generateOffice   string
	generateDate     string
	generateOutput   string
)

// bindingsFile is the TOML shape accepted by --vars-file.
type bindingsFile struct {
	Variables    map[string]string `toml:"variables"`
	Conditionals map[string]string `toml:"conditionales"`
}

var generateCmd = &cobra.Command{
	Use:   "generate <template.docx>",
	Short: "Generate a letter from a template",
	Long: `Generate fills a template with the given bindings and writes the
resulting DOCX artifact. Bindings come from --vars-file, repeated --var
and --cond flags, and --office, later sources overriding earlier ones.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		variables := carta.Variables{}
		conditionals := carta.Conditionals{}

		if generateVarsFile != "" {
			content, err := os.ReadFile(generateVarsFile)
			if err != nil {
				return fmt.Errorf("failed to read bindings file: %w", err)
			}
			var file bindingsFile
			if err := toml.Unmarshal(content, &file); err != nil {
				return fmt.Errorf("failed to parse bindings file: %w", err)
			}
			for name, value := range file.Variables {
				variables[carta.NormalizeName(name)] = value
			}
			for name, value := range file.Conditionals {
				conditionals[carta.NormalizeName(name)] = carta.NormalizeAnswer(value)
			}
		}

		if generateOffice != "" {
			office, err := carta.OfficeData(generateOffice)
			if err != nil {
				return err
			}
			for name, value := range office.Bindings() {
				variables[name] = value
			}
		}

		// The letter date accepts the numeric forms and the Spanish long
		// form; it always renders in the long form. Defaults to today.
		variables["fecha"] = carta.FormatDateSpanish(carta.ParseDate(generateDate))

		for _, pair := range generateVars {
			name, value, err := splitBinding(pair)
			if err != nil {
				return err
			}
			variables[carta.NormalizeName(name)] = value
		}
		for _, pair := range generateConds {
			name, value, err := splitBinding(pair)
			if err != nil {
				return err
			}
			conditionals[carta.NormalizeName(name)] = carta.NormalizeAnswer(value)
		}

		svc := carta.NewService(args[0])
		allVariables, _, err := svc.ExtractVariables()
		if err != nil {
			return err
		}

		out, filename, err := svc.GenerateLetter(variables, conditionals, allVariables)
		if err != nil {
			return err
		}

		target := generateOutput
		if target == "" {
			target = filename
		}
		if err := os.WriteFile(target, out, 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", target, err)
		}

		fmt.Printf("Wrote %s (%d bytes)\n", target, len(out))
		return nil
	},
}

var officesCmd = &cobra.Command{
	Use:   "offices",
	Short: "List the registered offices",
	RunE: func(cmd *cobra.Command, args []string) error {
		names, err := carta.OfficeNames()
		if err != nil {
			return err
		}

		for _, name := range names {
			office, err := carta.OfficeData(name)
			if err != nil {
				return err
			}
			if name == carta.CustomOffice {
				fmt.Println(name)
				continue
			}
			fmt.Printf("%s: %s, %s %s\n", name, office.Address, office.PostalCode, office.City)
		}
		return nil
	},
}

func init() {
	generateCmd.Flags().StringArrayVar(&generateVars, "var", nil,
		"Variable binding as name=value (repeatable)")
	generateCmd.Flags().StringArrayVar(&generateConds, "cond", nil,
		"Conditional binding as name=sí|no (repeatable)")
	generateCmd.Flags().StringVar(&generateVarsFile, "vars-file", "",
		"TOML file with [variables] and [conditionales] tables")
	generateCmd.Flags().StringVar(&generateOffice, "office", "",
		"Office name from the registry (see 'carta offices')")
	generateCmd.Flags().StringVar(&generateDate, "date", "",
		"Letter date, e.g. 15/03/2025 or '3 de febrero de 2025' (default: today)")
	generateCmd.Flags().StringVarP(&generateOutput, "output", "o", "",
		"Output path (default: generated letter filename)")
}

func splitBinding(pair string) (name, value string, err error) {
	name, value, ok := strings.Cut(pair, "=")
	if !ok || name == "" {
		return "", "", fmt.Errorf("invalid binding %q, expected name=value", pair)
	}
	return name, value, nil
}
