package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/openuo-online/openuo-launcher/internal/launch"
	"github.com/openuo-online/openuo-launcher/internal/profile"
)

func newLaunchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "launch [profile]",
		Short: "Start the game client with a profile",
		Long: `Launch starts the installed OpenUO client with the named profile, or the
first profile when none is given. The profile is saved before launch so the
client sees current settings.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store := profile.NewStore(cfg.BaseDir())
			profiles, err := store.LoadAll()
			if err != nil {
				return err
			}

			p := &profiles[0]
			if len(args) == 1 {
				p = nil
				for i := range profiles {
					if profiles[i].Index.Name == args[0] {
						p = &profiles[i]
						break
					}
				}
				if p == nil {
					return fmt.Errorf("no profile named %q", args[0])
				}
			}
			return launch.Client(cfg.BaseDir(), store, p)
		},
	}
}
