package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/apimgr/employee-tracker/src/common/version"
)

func newVersionCmd() *cobra.Command {
	var (
		short  bool
		asYAML bool
	)

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := version.Get()
			switch {
			case short:
				fmt.Fprintln(cmd.OutOrStdout(), info.Version)
			case asYAML:
				out, err := yaml.Marshal(info)
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), string(out))
			default:
				fmt.Fprintln(cmd.OutOrStdout(), info.Full())
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&short, "short", false, "print only the version number")
	cmd.Flags().BoolVar(&asYAML, "yaml", false, "print version info as YAML")
	return cmd
}
