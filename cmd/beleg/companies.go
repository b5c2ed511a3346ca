package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/werneraleeb-pixel/Beleg-Renamer/internal/catalog"
	"github.com/werneraleeb-pixel/Beleg-Renamer/internal/cli"
	"github.com/werneraleeb-pixel/Beleg-Renamer/internal/model"
)

func companiesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "companies",
		Short: "Manage the company knowledge base",
		Long: `View and manage the companies used for classification.

The built-in catalog is fixed; learned companies are stored in the local
database, take priority over the catalog and can be exported and imported
as JSON.`,
	}

	// Subcommands
	cmd.AddCommand(companiesListCmd())
	cmd.AddCommand(companiesLearnCmd())
	cmd.AddCommand(companiesRemoveCmd())
	cmd.AddCommand(companiesExportCmd())
	cmd.AddCommand(companiesImportCmd())

	return cmd
}

func companiesListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List known companies",
		Long:  `List learned companies and, with --all, the built-in catalog as well.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return fmt.Errorf("failed to initialize storage: %w", err)
			}
			defer func() {
				if closeErr := store.Close(); closeErr != nil {
					slog.Warn("Failed to close storage", "error", closeErr)
				}
			}()

			learned, err := store.ListLearnedCompanies(ctx)
			if err != nil {
				return fmt.Errorf("failed to list learned companies: %w", err)
			}

			fmt.Println(cli.FormatTitle(fmt.Sprintf("Gelernte Firmen (%d)", len(learned))))
			if len(learned) == 0 {
				fmt.Println(cli.SubtleStyle.Render("  (keine — mit 'beleg companies learn' anlegen)"))
			}
			for _, c := range learned {
				printCompany(c)
			}

			if all, _ := cmd.Flags().GetBool("all"); all {
				builtIn := catalog.Companies()
				fmt.Println()
				fmt.Println(cli.FormatTitle(fmt.Sprintf("Eingebauter Katalog (%d)", len(builtIn))))
				for _, c := range builtIn {
					printCompany(c)
				}
			}

			return nil
		},
	}
	cmd.Flags().Bool("all", false, "include the built-in catalog")
	return cmd
}

func printCompany(c model.Company) {
	typeLabel := ""
	if c.DefaultType != nil {
		typeLabel = cli.InfoStyle.Render(" [" + string(*c.DefaultType) + "]")
	}
	fmt.Printf("  %s%s %s\n",
		cli.BoldStyle.Render(c.Name),
		typeLabel,
		cli.SubtleStyle.Render(strings.Join(c.Keywords, ", ")))
}

func companiesLearnCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "learn <name> <keyword>...",
		Short: "Add or update a learned company",
		Long: `Add a learned company with one or more match keywords. Keywords are
lowercased and matched as substrings of the receipt text. Learning an
existing name replaces its keywords and moves it to the end of the
overlay, so the newest correction wins.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			var defaultType *model.ReceiptType
			if tag, _ := cmd.Flags().GetString("type"); tag != "" {
				t, ok := model.ParseReceiptType(tag)
				if !ok {
					return fmt.Errorf("unknown receipt type %q", tag)
				}
				defaultType = &t
			}

			store, err := initStorage(ctx)
			if err != nil {
				return fmt.Errorf("failed to initialize storage: %w", err)
			}
			defer func() {
				if closeErr := store.Close(); closeErr != nil {
					slog.Warn("Failed to close storage", "error", closeErr)
				}
			}()

			company := model.NewCompany(args[0], args[1:], defaultType, true)
			if err := store.SaveLearnedCompany(ctx, company); err != nil {
				return fmt.Errorf("failed to save company: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Gelernt: %s (%s)", company.Name, strings.Join(company.Keywords, ", "))))
			return nil
		},
	}
	cmd.Flags().String("type", "", "default receipt type, e.g. tankbeleg or abo")
	return cmd
}

func companiesRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <name>",
		Short: "Remove a learned company",
		Long:  `Remove a learned company from the overlay. Built-in catalog entries cannot be removed.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return fmt.Errorf("failed to initialize storage: %w", err)
			}
			defer func() {
				if closeErr := store.Close(); closeErr != nil {
					slog.Warn("Failed to close storage", "error", closeErr)
				}
			}()

			if err := store.DeleteLearnedCompany(ctx, args[0]); err != nil {
				return fmt.Errorf("failed to remove %s: %w", args[0], err)
			}

			fmt.Println(cli.FormatSuccess("Entfernt: " + args[0]))
			return nil
		},
	}
}

func companiesExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export learned companies as JSON",
		Long:  `Write all learned companies as a JSON array, to stdout or to --output.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return fmt.Errorf("failed to initialize storage: %w", err)
			}
			defer func() {
				if closeErr := store.Close(); closeErr != nil {
					slog.Warn("Failed to close storage", "error", closeErr)
				}
			}()

			data, err := store.ExportLearnedCompanies(ctx)
			if err != nil {
				return fmt.Errorf("failed to export companies: %w", err)
			}

			output, _ := cmd.Flags().GetString("output")
			if output == "" {
				fmt.Println(string(data))
				return nil
			}

			if err := os.WriteFile(output, data, 0600); err != nil {
				return fmt.Errorf("failed to write %s: %w", output, err)
			}
			fmt.Println(cli.FormatSuccess("Exportiert nach " + output))
			return nil
		},
	}
	cmd.Flags().StringP("output", "o", "", "write to file instead of stdout")
	return cmd
}

func companiesImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Import learned companies from JSON",
		Long: `Import learned companies from a JSON export. Entries are upserted by
name; an imported entry replaces an existing one with the same name.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", args[0], err)
			}

			store, err := initStorage(ctx)
			if err != nil {
				return fmt.Errorf("failed to initialize storage: %w", err)
			}
			defer func() {
				if closeErr := store.Close(); closeErr != nil {
					slog.Warn("Failed to close storage", "error", closeErr)
				}
			}()

			count, err := store.ImportLearnedCompanies(ctx, data)
			if err != nil {
				return fmt.Errorf("failed to import companies: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("%d Firmen importiert", count)))
			return nil
		},
	}
}
