package main

import (
	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset the resume to the starter document",
	RunE:  runReset,
}

func init() {
	rootCmd.AddCommand(resetCmd)
}

func runReset(cmd *cobra.Command, _ []string) error {
	cfg, err := loadAppConfig()
	if err != nil {
		return err
	}

	log := newLogger()
	st, closeStore, err := newStore(cmd.Context(), cfg, log)
	if err != nil {
		return err
	}
	defer closeStore()

	st.ResetResume(cmd.Context())
	log.Info("resume reset to defaults")
	return nil
}
