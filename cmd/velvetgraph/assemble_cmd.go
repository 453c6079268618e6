package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *app) assembleCmd() *cobra.Command {
	var (
		kmer        int
		velvethArgs string
		velvetgArgs string
		outDir      string
	)
	cmd := &cobra.Command{
		Use:   "assemble",
		Short: "Run velveth and velvetg, then summarise the LastGraph",
		Example: `  velvetgraph assemble --kmer 29 --velveth-args "-short reads.fa" \
      --velvetg-args "-read_trkg yes" --out assembly`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("kmer") {
				kmer = a.cfg.Runner.Kmer
			}
			res, err := a.runner().Velvet(cmd.Context(), kmer, velvethArgs, velvetgArgs, outDir)
			if err != nil {
				return err
			}
			g, err := res.LastGraph(a.parseOptions()...)
			if err != nil {
				return err
			}
			st := g.Stats()
			fmt.Fprintf(a.out, "run\t%s\n", res.RunID)
			fmt.Fprintf(a.out, "dir\t%s\n", res.Dir)
			fmt.Fprintf(a.out, "nodes\t%d\n", st.Nodes)
			fmt.Fprintf(a.out, "arcs\t%d\n", st.Arcs)
			fmt.Fprintf(a.out, "contigs\t%s\n", res.ContigsPath())
			return nil
		},
	}
	f := cmd.Flags()
	f.IntVarP(&kmer, "kmer", "k", 0, "hash length, odd (default from config)")
	f.StringVar(&velvethArgs, "velveth-args", "", "arguments passed to velveth after the hash length")
	f.StringVar(&velvetgArgs, "velvetg-args", "", "arguments passed to velvetg after the directory")
	f.StringVarP(&outDir, "out", "o", "", "result directory, a temporary one when empty")
	return cmd
}
