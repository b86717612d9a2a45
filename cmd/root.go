package cmd

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"mshell.dev/msh/core"
	"mshell.dev/msh/core/config"
)

var (
	cfgPath string
	debug   bool
)

// rootCmd represents the shell itself: no argument starts an interactive
// session, one argument names a batch script to run.
var rootCmd = &cobra.Command{
	Use:   "msh [script]",
	Short: "A minimal command interpreter.",
	Long: `msh reads commands interactively or from a batch script, resolves them
against a fixed list of executable directories and runs them one at a time,
with optional "> file" output redirection.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		configuration, err := loadConfig()
		if err != nil {
			return err
		}

		logger := log.NewWithOptions(cmd.ErrOrStderr(), log.Options{
			Level: log.WarnLevel,
		})
		if debug {
			logger.SetLevel(log.DebugLevel)
		}

		fsys := afero.NewOsFs()

		var src core.LineSource
		if len(args) == 1 {
			src, err = core.NewScriptSource(fsys, args[0])
		} else {
			src, err = core.NewPromptSource(configuration.Prompt, os.Stdin, cmd.OutOrStdout(), cmd.ErrOrStderr())
		}
		if err != nil {
			return err
		}
		defer src.Close()

		shell, err := core.NewShell(core.Options{
			Config:   configuration,
			Source:   src,
			Fs:       fsys,
			Sys:      core.NewOSSystem(),
			Launcher: core.OSLauncher{},
			Logger:   logger,
			Stdin:    os.Stdin,
			Stdout:   cmd.OutOrStdout(),
			Stderr:   cmd.ErrOrStderr(),
		})
		if err != nil {
			return err
		}

		return shell.Run()
	},
}

func loadConfig() (*config.Configuration, error) {
	if cfgPath == "" {
		return config.Default(), nil
	}
	return config.Load(cfgPath)
}

// Execute runs the root command. It only needs to be called once, by
// main.main().
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to a configuration file")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "log internal diagnostics")
}
