package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/grindlemire/go-gui/internal/config"
	"github.com/grindlemire/go-gui/internal/debug"
)

// flagKeys maps command flags onto configuration keys, so that a flag given
// on the command line wins over the config file and the environment.
var flagKeys = map[string]string{
	"width":      "window.width",
	"height":     "window.height",
	"hidpi":      "window.hidpi_factor",
	"font-dir":   "text.font_dirs",
	"font-size":  "text.default_font_size",
	"log-level":  "log.level",
	"log-format": "log.format",
	"log-file":   "log.file",
}

// app carries the state shared by the commands of one invocation.
type app struct {
	cfgFile string
	cfg     *config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "gui",
		Short:         "Layout and display list tooling for go-gui documents",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			v := config.NewViper(a.cfgFile)
			if err := bindFlags(v, cmd.Flags()); err != nil {
				return err
			}
			cfg, err := config.Load(v)
			if err != nil {
				return err
			}
			a.cfg = cfg
			debug.Init(cfg.Log, zapcore.AddSync(cmd.ErrOrStderr()))
			debug.L().Debug("configuration loaded",
				zap.String("command", cmd.Name()),
				zap.String("config_file", v.ConfigFileUsed()))
			return nil
		},
	}
	root.SetVersionTemplate("gui version {{.Version}}\n")

	pf := root.PersistentFlags()
	pf.StringVarP(&a.cfgFile, "config", "c", "", "config file (default is ./gui.yaml or $HOME/.config/gui/gui.yaml)")
	pf.String("log-level", "", "log level (debug, info, warn, error)")
	pf.String("log-format", "", "log format (console or json)")
	pf.String("log-file", "", "also write logs to this file")

	root.AddCommand(
		newRenderCmd(a),
		newFontCmd(),
		newShapeCmd(),
		newVersionCmd(),
	)
	return root
}

// bindFlags binds every flag of fs named in flagKeys. Only flags the user
// set take precedence; unset flags fall through to the file and defaults.
func bindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	var err error
	fs.VisitAll(func(f *pflag.Flag) {
		key, ok := flagKeys[f.Name]
		if !ok || err != nil {
			return
		}
		if bindErr := v.BindPFlag(key, f); bindErr != nil {
			err = fmt.Errorf("bind flag %q: %w", f.Name, bindErr)
		}
	})
	return err
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "gui version %s\n", version)
			return err
		},
	}
}
