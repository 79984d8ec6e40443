package main

import (
	"fmt"
	"io"
	"slices"

	"github.com/spf13/cobra"

	"github.com/syssam/sqlcrud/compiler/load"
	"github.com/syssam/sqlcrud/dialect"
	"github.com/syssam/sqlcrud/schema"
	"github.com/syssam/sqlcrud/statement"
)

var (
	printTable   string
	printPrefix  string
	printDialect string
	printYAML    string
	printTypes   []string
)

var printCmd = &cobra.Command{
	Use:   "print [path]",
	Short: "Print the statements of the annotated types of a package",
	Long: `Print renders the statements of every //sqlcrud:derive type of the package
at path, or of every type of a descriptor file given with --yaml.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPrint,
}

func runPrint(cmd *cobra.Command, args []string) error {
	prefix := printPrefix
	if printDialect != "" {
		p, err := dialect.Prefix(printDialect)
		if err != nil {
			return err
		}
		prefix = p
	}
	schemas, err := printSchemas(args)
	if err != nil {
		return err
	}
	for i, s := range schemas {
		if i > 0 {
			fmt.Fprintln(cmd.OutOrStdout())
		}
		table := printTable
		if table == "" {
			table = s.DefaultTable()
		}
		if err := printSchema(cmd.OutOrStdout(), s, table, prefix); err != nil {
			return err
		}
	}
	return nil
}

func printSchemas(args []string) ([]*schema.Schema, error) {
	if printYAML != "" {
		if len(args) > 0 {
			return nil, fmt.Errorf("--yaml and a package path are mutually exclusive")
		}
		schemas, err := schema.ReadFile(printYAML)
		if err != nil {
			return nil, err
		}
		if len(printTypes) == 0 {
			return schemas, nil
		}
		for _, name := range printTypes {
			if !slices.ContainsFunc(schemas, func(s *schema.Schema) bool { return s.Name == name }) {
				return nil, fmt.Errorf("type %q not found in %s", name, printYAML)
			}
		}
		return slices.DeleteFunc(schemas, func(s *schema.Schema) bool {
			return !slices.Contains(printTypes, s.Name)
		}), nil
	}
	path := "."
	if len(args) > 0 {
		path = args[0]
	}
	spec, err := (&load.Config{Path: path, Names: printTypes}).Load()
	if err != nil {
		return nil, err
	}
	return spec.Schemas, nil
}

// printSchema writes the statements of s, one per line, after a comment
// naming the type.
func printSchema(w io.Writer, s *schema.Schema, table, prefix string) error {
	fmt.Fprintf(w, "-- %s\n", s.Name)
	for _, op := range statement.OpsFor(s) {
		tmpl, err := op.Template(s)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, tmpl.Render(table, prefix))
	}
	return nil
}
