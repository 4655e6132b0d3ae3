package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"aidquiz/internal/progress"
)

var settingsCmd = &cobra.Command{
	Use:   "settings [toggle]",
	Short: "Show gameplay toggles, or flip one by name",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		store := progress.NewStore(nil)
		rec := store.Load(cfg.ProgressPath())

		if len(args) == 1 {
			name := args[0]
			if _, ok := rec.Settings[name]; !ok {
				if _, known := progress.DefaultSettings()[name]; !known {
					return fmt.Errorf("unknown toggle %q", name)
				}
			}
			rec.Settings[name] = !rec.Setting(name)
			if err := store.Save(rec, cfg.ProgressPath()); err != nil {
				return err
			}
		}

		names := make([]string, 0, len(rec.Settings))
		for name := range rec.Settings {
			names = append(names, name)
		}
		sort.Strings(names)

		fmt.Println(styleTitle.Render("Settings"))
		for _, name := range names {
			state := styleWrong.Render("off")
			if rec.Settings[name] {
				state = styleCorrect.Render("on")
			}
			fmt.Printf("  %-20s %s\n", name, state)
		}
		return nil
	},
}
