package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pluqqy/showcase/cmd/commands"
	"github.com/pluqqy/showcase/internal/cli"
	"github.com/pluqqy/showcase/internal/logging"
	"github.com/pluqqy/showcase/pkg/files"
	"github.com/pluqqy/showcase/pkg/models"
	"github.com/pluqqy/showcase/pkg/session"
	"github.com/pluqqy/showcase/pkg/tui"
)

// Version is set during build with -ldflags
var version = "dev"

var (
	logFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "showcase [document.json]",
	Short: "Terminal editor for JSON card showcases",
	Long: `Showcase edits a profile card and a list of typed JSON cards, previewing how
they pack onto a fixed-width grid. The document is saved when the editor exits.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runEditor,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of Showcase",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "Showcase version %s\n", version)
	},
}

func runEditor(cmd *cobra.Command, args []string) error {
	ctx, err := cli.NewCommandContext(cmd)
	if err != nil {
		return err
	}
	settings := ctx.Settings
	if cmd.Flags().Changed("log-file") {
		settings.Log.File = logFile
	}
	if verbose {
		settings.Log.Verbose = true
	}

	catalog, err := ctx.Catalog()
	if err != nil {
		return fmt.Errorf("failed to load card catalog: %w", err)
	}

	path := ctx.DocumentPath(args)
	doc, err := openDocument(path, catalog)
	if err != nil {
		return err
	}

	logger, err := logging.New(settings.Log.File, settings.Log.Verbose)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	editor := tui.NewEditorBuffer(settings.UI.ShowLineNumbers)
	sess, err := session.New(doc, catalog, editor,
		session.WithLogger(logger),
		session.WithClipboard(clipboard.WriteAll))
	if err != nil {
		return err
	}

	// The document is saved once, whatever way the program ends.
	defer func() {
		if err := files.SaveDocument(path, sess.Document(), catalog); err != nil {
			logger.Error("save failed", zap.String("path", path), zap.Error(err))
			cli.PrintError("Failed to save %s: %v", path, err)
			return
		}
		logger.Info("document saved", zap.String("path", path), zap.Int("cards", sess.Document().Len()))
	}()

	app := tui.NewApp(sess, editor,
		tui.WithGrid(ctx.Grid()),
		tui.WithPreview(settings.UI.ShowPreview),
		tui.WithLogger(logger))
	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		cli.PrintError("Failed to start the terminal user interface: %v", err)
		cli.PrintInfo("This could be due to terminal compatibility issues. Try running in a different terminal.")
	}
	return nil
}

// openDocument loads path. A file that does not exist yet starts from a
// placeholder profile and is created on save.
func openDocument(path string, catalog *models.Catalog) (*models.Document, error) {
	doc, err := files.LoadDocument(path, catalog)
	if errors.Is(err, os.ErrNotExist) {
		return files.NewDocument(catalog), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load document: %w", err)
	}
	return doc, nil
}

func init() {
	commands.AddGlobalFlags(rootCmd)
	rootCmd.Flags().StringVar(&logFile, "log-file", "", "Write a debug log to this file")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log every state transition")

	rootCmd.AddCommand(commands.NewInitCommand())
	rootCmd.AddCommand(commands.NewValidateCommand())
	rootCmd.AddCommand(commands.NewLayoutCommand())
	rootCmd.AddCommand(commands.NewListCommand())
	rootCmd.AddCommand(commands.NewAddCommand())
	rootCmd.AddCommand(commands.NewExamplesCommand())
	rootCmd.AddCommand(commands.NewShowCommand())
	rootCmd.AddCommand(commands.NewClipboardCommand())
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		cli.PrintError("%v", err)
		os.Exit(1)
	}
}
