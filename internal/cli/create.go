package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cartesi/cli/internal/config"
	"github.com/cartesi/cli/internal/templates"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	createTemplate string
	createBranch   string
)

// selectTemplate asks for a template when --template is omitted. Replaced in tests.
var selectTemplate = defaultSelectTemplate

func defaultSelectTemplate(in io.Reader, out io.Writer) (string, error) {
	f, ok := in.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return "", errors.New("--template is required when not running in a terminal")
	}

	options := make([]huh.Option[string], 0, len(templates.Names))
	for _, name := range templates.Names {
		options = append(options, huh.NewOption(name, name))
	}

	var choice string
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Template").
				Description("Language template for the application").
				Options(options...).
				Value(&choice),
		),
	).WithInput(in).WithOutput(out).Run()
	if err != nil {
		return "", fmt.Errorf("selecting template: %w", err)
	}
	return choice, nil
}

func init() {
	createCmd.Flags().StringVar(&createTemplate, "template", "", "Template name to use")
	createCmd.Flags().StringVar(&createBranch, "branch", "", "Application templates repository branch to use (default from config, "+config.DefaultTemplatesBranch+")")
	rootCmd.AddCommand(createCmd)
}

var createCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create application",
	Long: `Create a new application in directory <name> from one of the published templates:
  ` + strings.Join(templates.Names, ", "),
	Example: "  cartesi create my-dapp --template python",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := config.Current()
		if err != nil {
			return err
		}

		template := createTemplate
		if template == "" {
			template, err = selectTemplate(cmd.InOrStdin(), cmd.OutOrStdout())
			if err != nil {
				return err
			}
		}
		branch := createBranch
		if branch == "" {
			branch = settings.Templates.Branch
		}

		d := templates.NewDownloader(
			templates.WithRepository(settings.Templates.Repository),
			templates.WithBaseURL(settings.Templates.BaseURL),
			templates.WithLogger(logger),
		)
		result, err := d.Download(cmd.Context(), templates.Request{
			Template: template,
			Branch:   branch,
			Dir:      args[0],
		})
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error creating application: %s\n", err)
			return &reportedError{err: err}
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Application created at %s\n", result.Dir)
		return nil
	},
}
