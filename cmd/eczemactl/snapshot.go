package main

import (
	"github.com/spf13/cobra"
)

// snapshotCmd represents the snapshot command
var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Work with store snapshots",
}

func init() {
	rootCmd.AddCommand(snapshotCmd)
}
