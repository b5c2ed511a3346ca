package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/werneraleeb-pixel/Beleg-Renamer/internal/cli"
)

func classifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "classify <file>",
		Short: "Classify a receipt without renaming it",
		Long: `Run the full extraction pipeline on a single receipt and print what was
detected: date, company, receipt type, product and the name the rename
command would apply. The file is not touched.`,
		Args: cobra.ExactArgs(1),
		RunE: runClassify,
	}
}

func runClassify(cmd *cobra.Command, args []string) error {
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

	receipt, err := initEngine(store, 1).Classify(ctx, args[0])
	if err != nil {
		return fmt.Errorf("failed to classify %s: %w", args[0], err)
	}

	fmt.Println(cli.FormatTitle(cli.ReceiptIcon + " " + receipt.OriginalFileName()))

	date := "nicht erkannt"
	if receipt.Date != nil {
		date = receipt.Date.Format("02.01.2006")
	}
	company := receipt.Company
	if company == "" {
		company = "nicht erkannt"
	}
	receiptType := "nicht erkannt"
	if receipt.Type != nil {
		receiptType = receipt.Type.DisplayName()
	}

	printField("Datum", date, receipt.Date != nil)
	printField("Firma", company, receipt.Company != "")
	printField("Typ", receiptType, receipt.Type != nil)
	if receipt.Product != "" {
		printField("Produkt", receipt.Product, true)
	}

	newName := receipt.SuggestedName
	if ext := receipt.FileExtension(); ext != "" {
		newName += "." + ext
	}
	fmt.Println()
	fmt.Printf("  %s %s\n", cli.BoldStyle.Render("Neuer Name:"), cli.SuccessStyle.Render(newName))
	return nil
}

func printField(label, value string, detected bool) {
	style := cli.SubtleStyle
	if detected {
		style = cli.InfoStyle
	}
	fmt.Printf("  %-10s %s\n", label+":", style.Render(value))
}
