// Command velvetgraph inspects velvet assembly graphs and drives velvet.
//
//	velvetgraph stats LastGraph
//	velvetgraph neighbours LastGraph --node 12
//	velvetgraph walk LastGraph --from 12+ --to 40-
//	velvetgraph cycles LastGraph --order
//	velvetgraph sequences Sequences --reads 7,9 --prefilter 20
//	velvetgraph names CnyUnifiedSeq.names read1 read2
//	velvetgraph assemble --kmer 31 --velveth-args "-short reads.fa"
package main

import "os"

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}
