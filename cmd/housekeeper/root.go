package housekeeper

import (
	"fmt"
	"path/filepath"

	"github.com/arthur-debert/housekeeper/internal/version"
	"github.com/arthur-debert/housekeeper/pkg/config"
	"github.com/arthur-debert/housekeeper/pkg/dotfiles"
	"github.com/arthur-debert/housekeeper/pkg/errors"
	"github.com/arthur-debert/housekeeper/pkg/logging"
	"github.com/arthur-debert/housekeeper/pkg/output"
	"github.com/arthur-debert/housekeeper/pkg/paths"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	// Initialize custom template formatting functions
	initTemplateFormatting()

	var (
		cfgFile string
		cfg     *config.Config
	)

	rootCmd := &cobra.Command{
		Use:     MsgRootUse,
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Example: MsgExample,
		Version: version.String(),
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.Newf(errors.ErrInvalidInput, MsgErrArgs, len(args))
			}
			return nil
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.Load(cfgFile, cmd.Flags())
			if err != nil {
				return err
			}
			cfg = loaded

			// A log file that cannot be opened is reported by the logger itself.
			logger, _ := logging.SetupLogger(logging.Options{
				Verbosity: cfg.Verbosity,
				LogFile:   cfg.LogFile,
				Console:   cmd.ErrOrStderr(),
			})
			logger.Debug().
				Str("command", cmd.Name()).
				Str("home", cfg.Home).
				Str("configFile", cfg.File).
				Bool("force", cfg.Force).
				Bool("dryRun", cfg.DryRun).
				Str("output", cfg.Output.String()).
				Msg(MsgDebugConfig)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			defer func() {
				if closeErr := logging.Close(); err == nil {
					err = closeErr
				}
			}()
			return runInstall(cmd, cfg, logging.GetLogger("dotfiles"), args[0])
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	flags := rootCmd.Flags()
	flags.String("home", "", MsgFlagHome)
	flags.BoolP("force", "f", false, MsgFlagForce)
	flags.Bool("dry-run", false, MsgFlagDryRun)
	flags.CountP("verbose", "v", MsgFlagVerbose)
	flags.StringP("output", "o", output.FormatText.String(), MsgFlagOutput)
	flags.Bool("no-color", false, MsgFlagNoColor)
	flags.String("log-file", "", MsgFlagLogFile)
	flags.StringVar(&cfgFile, config.ConfigFlag, "", MsgFlagConfig)

	_ = rootCmd.RegisterFlagCompletionFunc("output", outputCompletion)
	_ = rootCmd.MarkFlagFilename(config.ConfigFlag, "toml")
	_ = rootCmd.MarkFlagDirname("home")

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	return rootCmd
}

// runInstall links the dotfiles in dir and prints the report. On a fatal
// error the outcomes gathered so far are still printed.
func runInstall(cmd *cobra.Command, cfg *config.Config, logger zerolog.Logger, dir string) error {
	source, err := paths.ExpandHome(dir)
	if err != nil {
		return err
	}
	if source, err = filepath.Abs(source); err != nil {
		return errors.Wrapf(err, errors.ErrInvalidInput, "cannot resolve dotfiles directory %s", dir).WithPath(dir)
	}

	report, runErr := dotfiles.Run(source, dotfiles.Options{
		HomeDirectory: cfg.Home,
		Force:         cfg.Force,
		DryRun:        cfg.DryRun,
		Logger:        logger,
	})

	if report != nil && (runErr == nil || len(report.Outcomes) > 0) {
		renderer := output.NewRenderer(cmd.OutOrStdout(), cfg.Output, cfg.NoColor)
		if err := renderer.Render(report); err != nil {
			return fmt.Errorf(MsgErrRender, err)
		}
	}

	if runErr != nil {
		return fmt.Errorf(MsgErrInstall, runErr)
	}
	return nil
}

// outputCompletion completes the --output flag.
func outputCompletion(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	formats := make([]string, 0, len(output.Formats))
	for _, f := range output.Formats {
		formats = append(formats, f.String())
	}
	return formats, cobra.ShellCompDirectiveNoFileComp
}
