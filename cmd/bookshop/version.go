// Version command for the bookshop CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/bookshop/pkg/bookshop"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the bookshop version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("bookshop", bookshop.Version)
	},
}
