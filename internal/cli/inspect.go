package cli

import (
	"encoding/json"
	"fmt"

	"github.com/arthur-debert/mcpack/pkg/compiler"
	"github.com/arthur-debert/mcpack/pkg/config"
	"github.com/arthur-debert/mcpack/pkg/errors"
	"github.com/arthur-debert/mcpack/pkg/filesystem"
	"github.com/arthur-debert/mcpack/pkg/report"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newInspectCmd(current func() *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <artifact>",
		Short: MsgInspectShort,
		Long:  MsgInspectLong,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := report.ParseFormat(current().Report.Format)
			if err != nil {
				return err
			}

			fs := filesystem.NewOS()
			f, err := fs.Open(args[0])
			if err != nil {
				return errors.Wrap(err, errors.ErrFileAccess, "cannot open artifact").
					WithDetail("path", args[0])
			}
			defer func() { _ = f.Close() }()

			info, err := f.Stat()
			if err != nil {
				return errors.Wrap(err, errors.ErrFileAccess, "cannot stat artifact").
					WithDetail("path", args[0])
			}

			listing, err := compiler.ReadListing(f, info.Size())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch format {
			case report.FormatJSON:
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(listing)
			case report.FormatYAML:
				return yaml.NewEncoder(out).Encode(listing.Paths())
			default:
				for _, p := range listing.Paths() {
					if _, err := fmt.Fprintln(out, p); err != nil {
						return err
					}
				}
				return nil
			}
		},
	}
}
