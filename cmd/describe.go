package cmd

import (
	"fmt"

	"github.com/KaramelBytes/mortgage-econ/internal/dataset"
	"github.com/spf13/cobra"
)

var (
	descSampleRows int
	descDelimiter  string
	descRaw        bool
)

var describeCmd = &cobra.Command{
	Use:   "describe [file]",
	Short: "Summarize the dataset the model is fitted on",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireConfig(); err != nil {
			return err
		}
		path := cfg.InputPath
		if len(args) == 1 {
			path = args[0]
		}
		opt := dataset.DefaultOptions()
		if descSampleRows > 0 {
			opt.SampleRows = descSampleRows
		}
		switch descDelimiter {
		case "":
		case ",":
			opt.Delimiter = ','
		case "\t", "tab":
			opt.Delimiter = '\t'
		case ";":
			opt.Delimiter = ';'
		default:
			return fmt.Errorf("unsupported --delimiter: %s", descDelimiter)
		}
		tbl, err := dataset.Load(path, opt)
		if err != nil {
			return err
		}
		dropped := 0
		if !descRaw {
			tbl, dropped = tbl.DropNA()
		}
		fmt.Fprint(cmd.OutOrStdout(), dataset.Describe(tbl, dropped).Markdown())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(describeCmd)
	describeCmd.Flags().IntVar(&descSampleRows, "sample-rows", 5, "number of sample rows to include")
	describeCmd.Flags().StringVar(&descDelimiter, "delimiter", "", "CSV delimiter: ',' | ';' | 'tab'")
	describeCmd.Flags().BoolVar(&descRaw, "raw", false, "describe the file before dropping rows with missing values")
}
