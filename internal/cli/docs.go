package cli

import (
	"io"

	"github.com/arthur-debert/mcpack/internal/version"
	"github.com/arthur-debert/mcpack/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

// Shells lists the shells GenCompletion supports
var Shells = []string{"bash", "zsh", "fish", "powershell"}

// GenCompletion writes the completion script for shell
func GenCompletion(rootCmd *cobra.Command, shell string, w io.Writer) error {
	switch shell {
	case "bash":
		return rootCmd.GenBashCompletionV2(w, true)
	case "zsh":
		return rootCmd.GenZshCompletion(w)
	case "fish":
		return rootCmd.GenFishCompletion(w, true)
	case "powershell":
		return rootCmd.GenPowerShellCompletionWithDesc(w)
	default:
		return errors.Newf(errors.ErrInvalidInput, "unknown shell %q, supported shells: %v", shell, Shells)
	}
}

// GenManPage writes the man page of rootCmd and its subcommands
func GenManPage(rootCmd *cobra.Command, w io.Writer) error {
	header := &doc.GenManHeader{
		Title:   "MCPACK",
		Section: "1",
		Source:  "mcpack " + version.Version,
		Manual:  "mcpack manual",
	}
	return doc.GenMan(rootCmd, header, w)
}
