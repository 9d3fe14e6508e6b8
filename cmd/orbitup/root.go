package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/orbit-tools/orbitup/internal/config"
	"github.com/orbit-tools/orbitup/internal/deps"
	"github.com/orbit-tools/orbitup/internal/execx"
	"github.com/orbit-tools/orbitup/internal/fetch"
	"github.com/orbit-tools/orbitup/internal/lifecycle"
	"github.com/orbit-tools/orbitup/internal/messages"
	"github.com/orbit-tools/orbitup/internal/privops"
	"github.com/orbit-tools/orbitup/internal/prompt"
	"github.com/orbit-tools/orbitup/internal/shortcut"
)

var getwd = os.Getwd
var newManagerFunc = newManager

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           messages.RootUse,
		Short:         messages.RootShort,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		newInstallCmd(),
		newUpgradeCmd(),
		newUninstallCmd(),
		newRegisterCmd(),
	)
	return root
}

// newManager wires the lifecycle manager to the real collaborators. The
// invocation working directory is the install root.
func newManager(cmd *cobra.Command) (*lifecycle.Manager, error) {
	cwd, err := getwd()
	if err != nil {
		return nil, err
	}
	cfg := config.New(cwd)
	out := cmd.OutOrStdout()
	runner := execx.RealRunner{
		Stdin:  cmd.InOrStdin(),
		Stdout: out,
		Stderr: cmd.ErrOrStderr(),
	}
	priv := privops.Ops{Runner: runner}
	confirm := prompt.Default(cmd.InOrStdin(), out)
	return &lifecycle.Manager{
		Config: cfg,
		Deps: deps.Resolver{
			Runner:  runner,
			Priv:    priv,
			Confirm: confirm,
			Out:     out,
		},
		Fetcher: fetch.Fetcher{Runner: runner, Out: out},
		Shortcuts: shortcut.Registrar{
			EntryPath: cfg.DesktopEntryPath,
			Runner:    runner,
			Sys:       shortcut.RealSystem{},
			Out:       out,
		},
		Priv:    priv,
		Confirm: confirm,
		Sys:     lifecycle.RealSystem{},
		Runner:  runner,
		Out:     out,
		Errw:    cmd.ErrOrStderr(),
	}, nil
}

func newInstallCmd() *cobra.Command {
	return &cobra.Command{
		Use:   messages.InstallUse,
		Short: messages.InstallShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := newManagerFunc(cmd)
			if err != nil {
				return err
			}
			if err := m.Install(); err != nil {
				if errors.Is(err, lifecycle.ErrDeclined) {
					return &SilentExitError{Code: 0}
				}
				return err
			}
			return nil
		},
	}
}

func newUpgradeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   messages.UpgradeUse,
		Short: messages.UpgradeShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := newManagerFunc(cmd)
			if err != nil {
				return err
			}
			return m.Upgrade()
		},
	}
}

func newUninstallCmd() *cobra.Command {
	return &cobra.Command{
		Use:   messages.UninstallUse,
		Short: messages.UninstallShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := newManagerFunc(cmd)
			if err != nil {
				return err
			}
			return m.Uninstall()
		},
	}
}

func newRegisterCmd() *cobra.Command {
	return &cobra.Command{
		Use:   messages.RegisterUse,
		Short: messages.RegisterShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := newManagerFunc(cmd)
			if err != nil {
				return err
			}
			return m.Register()
		},
	}
}
