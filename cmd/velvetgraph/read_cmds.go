package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/velvet/parser"
	"github.com/katalvlaran/velvet/sequences"
)

func (a *app) sequencesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sequences Sequences",
		Short: "Print reads of a velvet Sequences file as FASTA",
		Long: `Print the reads named by --reads, or every read, as FASTA headed by read id.
With --prefilter the file is first narrowed to the interesting headers and
the given number of lines after each.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			p := a.cfg.Parse
			opts := []sequences.Option{sequences.WithLogger(a.log)}
			if len(p.InterestingReadIDs) > 0 {
				opts = append(opts, sequences.WithInterestingReadIDs(p.InterestingReadIDs...))
			}
			if p.PrefilterContext > 0 {
				opts = append(opts, sequences.WithPrefilter(parser.TrailingContextFilter{Context: p.PrefilterContext}))
			}
			seqs, err := sequences.ParseFile(args[0], opts...)
			if err != nil {
				return err
			}
			for _, id := range seqs.ReadIDs() {
				fmt.Fprintf(a.out, ">%d\n%s\n", id, seqs[id])
			}
			return nil
		},
	}
}

func (a *app) namesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "names CnyUnifiedSeq.names NAME...",
		Short: "Look up read ids and categories by read name",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			found, err := sequences.ExtractNamesFile(args[0], args[1:]...)
			if err != nil {
				return err
			}
			for _, name := range args[1:] {
				entries := found[name]
				if len(entries) == 0 {
					a.log.Warn("read name not found", "name", name)
				}
				for _, e := range entries {
					fmt.Fprintf(a.out, "%s\t%d\t%d\n", e.Name, e.ReadID, e.Category)
				}
			}
			return nil
		},
	}
}
