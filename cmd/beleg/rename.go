package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/werneraleeb-pixel/Beleg-Renamer/internal/cli"
	"github.com/werneraleeb-pixel/Beleg-Renamer/internal/engine"
)

func renameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rename <file|directory>...",
		Short: "Classify receipts and rename them in place",
		Long: `Classify every given receipt and rename it to its canonical name.

Each original is first moved into an "Originalbelege" directory next to the
file, so nothing is ever lost. Directories are scanned one level deep for
PDF and text files.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runRename,
	}
	cmd.Flags().Int("workers", 0, "concurrent workers (default: rename.workers from config)")
	return cmd
}

func runRename(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	paths, err := collectReceiptFiles(args)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		fmt.Println(cli.FormatWarning("No PDF or text receipts found."))
		return nil
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

	workers, _ := cmd.Flags().GetInt("workers")
	eng := initEngine(store, workers)

	handler := cli.NewInterruptHandler(os.Stdout)
	ctx = handler.HandleInterrupts(ctx)

	fmt.Println(cli.FormatTitle(fmt.Sprintf("%s Renaming %d receipts", cli.ReceiptIcon, len(paths))))

	bar := progressbar.NewOptions(len(paths),
		progressbar.OptionSetWriter(os.Stdout),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("[cyan][bold]Processing receipts...[reset]"),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionOnCompletion(func() {
			fmt.Println()
		}),
	)

	results, runErr := eng.RenameFiles(ctx, paths, func(engine.Result) {
		if barErr := bar.Add(1); barErr != nil {
			slog.Debug("Failed to update progress bar", "error", barErr)
		}
	})

	renamed := 0
	failed := 0
	for _, res := range results {
		switch {
		case res.Err != nil:
			failed++
			fmt.Println(cli.FormatError(fmt.Sprintf("%s: %v", res.Receipt.OriginalFileName(), res.Err)))
		default:
			renamed++
			fmt.Printf("  %s %s %s\n",
				cli.SubtleStyle.Render(res.Receipt.OriginalFileName()),
				cli.SubtleStyle.Render("→"),
				cli.BoldStyle.Render(filepath.Base(res.NewPath)))
		}
	}

	fmt.Println()
	fmt.Println(cli.FormatSuccess(fmt.Sprintf("%d renamed, %d failed", renamed, failed)))
	if handler.WasInterrupted() {
		return nil
	}
	return runErr
}
