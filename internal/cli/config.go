package cli

import (
	"github.com/arthur-debert/mcpack/pkg/config"
	"github.com/spf13/cobra"
)

func newConfigCmd(current func() *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: MsgConfigShort,
		Long:  MsgConfigLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := current().TOML()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}
