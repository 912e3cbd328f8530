package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/openuo-online/openuo-launcher/internal/profile"
)

func newProfileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Manage launch profiles",
	}
	cmd.AddCommand(newProfileListCmd())
	cmd.AddCommand(newProfileAddCmd())
	cmd.AddCommand(newProfileDeleteCmd())
	cmd.AddCommand(newProfileDuplicateCmd())
	return cmd
}

func newProfileListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List launch profiles",
		RunE: func(cmd *cobra.Command, args []string) error {
			store := profile.NewStore(cfg.BaseDir())
			profiles, err := store.LoadAll()
			if err != nil {
				return err
			}
			for _, p := range profiles {
				line := p.Index.Name
				if p.Settings.Username != "" {
					line = fmt.Sprintf("%s (%s@%s:%d)", line, p.Settings.Username, p.Settings.IP, p.Settings.Port)
				} else {
					line = fmt.Sprintf("%s (%s:%d)", line, p.Settings.IP, p.Settings.Port)
				}
				fmt.Println(line)
			}
			return nil
		},
	}
}

func newProfileAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <name>",
		Short: "Create a launch profile with default settings",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store := profile.NewStore(cfg.BaseDir())
			p := profile.New(args[0])
			if err := store.Save(&p); err != nil {
				return err
			}
			fmt.Printf("created profile %s\n", p.Index.Name)
			return nil
		},
	}
}

func newProfileDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a launch profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store := profile.NewStore(cfg.BaseDir())
			p, err := findProfile(store, args[0])
			if err != nil {
				return err
			}
			if err := store.Delete(p); err != nil {
				return err
			}
			fmt.Printf("deleted profile %s\n", p.Index.Name)
			return nil
		},
	}
}

func newProfileDuplicateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "duplicate <name>",
		Short: "Copy a launch profile under a new name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store := profile.NewStore(cfg.BaseDir())
			p, err := findProfile(store, args[0])
			if err != nil {
				return err
			}
			d := profile.Duplicate(*p)
			if err := store.Save(&d); err != nil {
				return err
			}
			fmt.Printf("created profile %s\n", d.Index.Name)
			return nil
		},
	}
}

func findProfile(store *profile.Store, name string) (*profile.Profile, error) {
	profiles, err := store.LoadAll()
	if err != nil {
		return nil, err
	}
	for i := range profiles {
		if profiles[i].Index.Name == name {
			return &profiles[i], nil
		}
	}
	return nil, fmt.Errorf("no profile named %q", name)
}
