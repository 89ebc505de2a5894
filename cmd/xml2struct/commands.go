package xml2struct

import (
	"fmt"
	"io"
	"os"

	"github.com/arthur-debert/xml2struct/internal/version"
	"github.com/arthur-debert/xml2struct/pkg/config"
	"github.com/arthur-debert/xml2struct/pkg/convert"
	"github.com/arthur-debert/xml2struct/pkg/errors"
	"github.com/arthur-debert/xml2struct/pkg/logging"
	"github.com/arthur-debert/xml2struct/pkg/render"
	"github.com/arthur-debert/xml2struct/pkg/ui/styles"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	// Initialize custom template formatting functions
	initTemplateFormatting()

	var (
		verbosity  int
		configFile string
	)

	rootCmd := &cobra.Command{
		Use:     "xml2struct",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Setup logging based on verbosity
			logging.SetupLogger(verbosity)
			if !styles.ColorEnabled(os.Stdout) {
				pterm.DisableStyling()
			}
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// If we get here, no subcommand was provided
			_ = cmd.Help()
			return fmt.Errorf(MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", MsgFlagConfig)

	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})
	rootCmd.SetHelpCommandGroupID("misc")
	rootCmd.SetCompletionCommandGroupID("misc")

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newConvertCmd(&configFile))
	rootCmd.AddCommand(newConfigCmd(&configFile))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newManCmd())

	return rootCmd
}

func newConvertCmd(configFile *string) *cobra.Command {
	var (
		format     string
		defaultExt string
		keyStyle   string
	)

	cmd := &cobra.Command{
		Use:     "convert [files...]",
		Short:   MsgConvertShort,
		Long:    MsgConvertLong,
		Example: MsgConvertExample,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			overrides := map[string]interface{}{}
			if format != "" {
				overrides["output.format"] = format
			}
			if defaultExt != "" {
				overrides["input.default_extension"] = defaultExt
			}
			if keyStyle != "" {
				keyOverrides, ok := config.KeyOverrides(config.KeyStyle(keyStyle))
				if !ok {
					return errors.Newf(errors.ErrInvalidInput, MsgErrUnknownKeys, keyStyle).
						WithDetail("keys", keyStyle)
				}
				for k, v := range keyOverrides {
					overrides[k] = v
				}
			}

			cfg, err := config.Load(config.LoadOptions{
				ConfigFile: *configFile,
				Overrides:  overrides,
			})
			if err != nil {
				return err
			}

			return runConvert(cmd.InOrStdin(), cmd.OutOrStdout(), cfg, args)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", MsgFlagFormat)
	cmd.Flags().StringVar(&defaultExt, "default-ext", "", MsgFlagDefaultExt)
	cmd.Flags().StringVar(&keyStyle, "keys", "", MsgFlagKeys)

	_ = cmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		names := make([]string, len(render.Formats))
		for i, f := range render.Formats {
			names[i] = string(f)
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	})
	_ = cmd.RegisterFlagCompletionFunc("keys", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{string(config.KeyStyleSymbolic), string(config.KeyStyleClassic)}, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

// runConvert converts every file in paths, or stdin when paths is empty,
// and renders each document to out in order
func runConvert(in io.Reader, out io.Writer, cfg *config.Config, paths []string) error {
	format, err := render.ParseFormat(cfg.Output.Format)
	if err != nil {
		return err
	}

	renderer, err := render.New(format, out, cfg.Keys)
	if err != nil {
		return err
	}

	conv := convert.New(convert.Options{
		DefaultExtension: cfg.Input.DefaultExtension,
		Extensions:       cfg.Input.Extensions,
	})

	logging.LogCommand("convert", paths)

	if len(paths) == 0 {
		parsed, err := conv.ConvertReader(in)
		if err != nil {
			return err
		}
		if err := renderer.Render(parsed); err != nil {
			return err
		}
	}

	for _, path := range paths {
		parsed, err := conv.ConvertFile(path)
		if err != nil {
			return err
		}
		if err := renderer.Render(parsed); err != nil {
			return err
		}
	}

	if closer, ok := renderer.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

func newConfigCmd(configFile *string) *cobra.Command {
	var defaults bool

	cmd := &cobra.Command{
		Use:     "config",
		Short:   MsgConfigShort,
		Long:    MsgConfigLong,
		Args:    cobra.NoArgs,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			if defaults {
				_, err := fmt.Fprint(cmd.OutOrStdout(), config.GetDefaultConfigContent())
				return err
			}

			dump, err := config.Dump(config.LoadOptions{ConfigFile: *configFile})
			if err != nil {
				return fmt.Errorf(MsgErrLoadConfig, err)
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), dump)
			return err
		},
	}

	cmd.Flags().BoolVar(&defaults, "defaults", false, MsgFlagDefaults)

	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		Args:    cobra.NoArgs,
		GroupID: "misc",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.Version, version.Commit, version.Date)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		GroupID:               "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}

func newManCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "man [dir]",
		Short:   MsgManShort,
		Long:    MsgManLong,
		Args:    cobra.MaximumNArgs(1),
		GroupID: "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			header := &doc.GenManHeader{
				Title:   "XML2STRUCT",
				Section: "1",
				Source:  "xml2struct " + version.Version,
				Manual:  "xml2struct manual",
			}

			if len(args) == 0 {
				if err := doc.GenMan(cmd.Root(), header, cmd.OutOrStdout()); err != nil {
					return fmt.Errorf(MsgErrGenerateMan, err)
				}
				return nil
			}

			dir := args[0]
			if err := os.MkdirAll(dir, 0755); err != nil {
				return fmt.Errorf(MsgErrCreateManDir, err)
			}
			if err := doc.GenManTree(cmd.Root(), header, dir); err != nil {
				return fmt.Errorf(MsgErrGenerateMan, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), MsgManWritten, dir)
			return nil
		},
	}
}
