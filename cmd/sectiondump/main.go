package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	opts := &dumpOptions{}

	cmd := &cobra.Command{
		Use:   "sectiondump <locator>...",
		Short: "Download documents and print their sections",
		Long: `sectiondump downloads one or more documents, splits them into sections
according to their markup dialect and prints the result.

Locators are resolved against DOCSECTION_BASE_URL (raw GitHub by default).
The dialect is inferred from the file extension unless --dialect is given.

Example:
  sectiondump BenGale93/cli-diary/refs/heads/master/README.md --title cli-diary
  sectiondump owner/repo/main/docs/index.rst --list`,
		Version:       version,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.titleSet = cmd.Flags().Changed("title")
			return runDump(cmd.Context(), cmd.OutOrStdout(), args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.dialect, "dialect", "d", "", "markup dialect (markdown, latex, rst); inferred from the locator when empty")
	cmd.Flags().StringVarP(&opts.title, "title", "t", "", "print only the section with this exact title")
	cmd.Flags().BoolVar(&opts.untitled, "untitled", false, "print only the untitled leading section")
	cmd.Flags().BoolVarP(&opts.list, "list", "l", false, "print a table of section titles instead of contents")
	cmd.Flags().BoolVar(&opts.json, "json", false, "print sections as JSON")

	return cmd
}
