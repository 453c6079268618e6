package main

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/velvet/bfs"
	"github.com/katalvlaran/velvet/core"
	"github.com/katalvlaran/velvet/dfs"
	"github.com/katalvlaran/velvet/dijkstra"
	"github.com/katalvlaran/velvet/parser"
)

func (a *app) statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats LastGraph...",
		Short: "Summarise one or more graph files",
		Long: `Parse every file concurrently and print one tab separated row per file:
file, nodes, arcs, hash length, short nodes, self loops, total length, tracked reads.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			graphs, err := parser.ParseFiles(cmd.Context(), args, a.parseOptions()...)
			if err != nil {
				return err
			}
			fmt.Fprintln(a.out, "file\tnodes\tarcs\tk\tshort_nodes\tself_loops\tlength\treads")
			for i, g := range graphs {
				st := g.Stats()
				fmt.Fprintf(a.out, "%s\t%d\t%d\t%d\t%d\t%d\t%d\t%d\n", args[i],
					st.Nodes, st.Arcs, st.HashLength, st.ShortNodes, st.SelfLoops, st.TotalLengthAlone, st.TrackedReads)
			}
			return nil
		},
	}
}

func (a *app) neighboursCmd() *cobra.Command {
	var node int
	cmd := &cobra.Command{
		Use:     "neighbours LastGraph",
		Aliases: []string{"neighbors"},
		Short:   "List the oriented neighbours of a node on both strands",
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			g, err := parser.ParseFile(args[0], append(a.parseOptions(), parser.WithSkipReadTracking())...)
			if err != nil {
				return err
			}
			n := g.Node(node)
			if n == nil {
				return fmt.Errorf("%w: %d", core.ErrNodeNotFound, node)
			}
			for _, side := range []core.Side{core.StartIsFirst, core.EndIsFirst} {
				from := core.OrientedNode{Node: n, FirstSide: side}
				var keys []string
				for _, nb := range g.OrientedNeighbours(from) {
					keys = append(keys, bfs.KeyOf(nb).String())
				}
				fmt.Fprintf(a.out, "%s\t%s\n", bfs.KeyOf(from), strings.Join(keys, " "))
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&node, "node", "n", 0, "node id")
	_ = cmd.MarkFlagRequired("node")
	return cmd
}

func (a *app) walkCmd() *cobra.Command {
	var from, to string
	var maxDepth int
	var shortest bool
	cmd := &cobra.Command{
		Use:   "walk LastGraph",
		Short: "Spell the shortest oriented walk between two node strands",
		Long: `Search breadth-first from --from to --to and print the walk and its sequence.
With --bases the walk appending the fewest bases wins instead of the one with
the fewest arcs. Strands are written as node id plus orientation, e.g. 12+ or 40-.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := parseKey(from)
			if err != nil {
				return err
			}
			dst, err := parseKey(to)
			if err != nil {
				return err
			}
			g, err := parser.ParseFile(args[0], append(a.parseOptions(), parser.WithSkipReadTracking())...)
			if err != nil {
				return err
			}
			var path []core.Strand
			if shortest {
				path, err = cheapestPath(g, src, dst, maxDepth)
			} else {
				path, err = breadthFirstPath(cmd.Context(), g, src, dst, maxDepth)
			}
			if err != nil {
				return err
			}
			trail, err := dijkstra.Trail(g, path)
			if err != nil {
				return err
			}
			seq, err := trail.Sequence()
			if err != nil {
				return err
			}
			fmt.Fprintln(a.out, strandList(path))
			fmt.Fprintln(a.out, seq)
			return nil
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "start strand, e.g. 12+")
	cmd.Flags().StringVar(&to, "to", "", "target strand, e.g. 40-")
	cmd.Flags().IntVar(&maxDepth, "max-depth", 0, "maximum number of arcs, 0 for no limit")
	cmd.Flags().BoolVar(&shortest, "bases", false, "minimise appended bases instead of arcs")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}

func breadthFirstPath(ctx context.Context, g *core.Graph, src, dst core.Strand, maxDepth int) ([]core.Strand, error) {
	res, err := bfs.BFS(g, src.ID, src.Side, bfs.WithContext(ctx), bfs.WithMaxDepth(maxDepth))
	if err != nil {
		return nil, err
	}
	return res.PathTo(dst)
}

// cheapestPath runs Dijkstra over node lengths. A positive maxDepth
// rejects a cheapest walk with more arcs than that.
func cheapestPath(g *core.Graph, src, dst core.Strand, maxDepth int) ([]core.Strand, error) {
	_, prev, err := dijkstra.Dijkstra(g, dijkstra.Source(src), dijkstra.WithReturnPath())
	if err != nil {
		return nil, err
	}
	path, err := dijkstra.PathTo(prev, src, dst)
	if err != nil {
		return nil, err
	}
	if maxDepth > 0 && len(path)-1 > maxDepth {
		return nil, fmt.Errorf("%w: %s is %d arcs away", dijkstra.ErrNoPath, dst, len(path)-1)
	}
	return path, nil
}

func (a *app) cyclesCmd() *cobra.Command {
	var order bool
	cmd := &cobra.Command{
		Use:   "cycles LastGraph",
		Short: "Report strand cycles, or a left-to-right strand order when there are none",
		Long: `List every elementary strand cycle once, a cycle and its twin walk counting
as one, shortest first. Each line repeats the first strand at the end.
Without cycles print "acyclic", and with --order a topological strand order.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := parser.ParseFile(args[0], append(a.parseOptions(), parser.WithSkipReadTracking())...)
			if err != nil {
				return err
			}
			if has, cycles := dfs.DetectCycles(g); has {
				for _, c := range cycles {
					fmt.Fprintln(a.out, strandList(c))
				}
				return nil
			}
			fmt.Fprintln(a.out, "acyclic")
			if order {
				strands, err := dfs.TopologicalSort(g, dfs.WithCancelContext(cmd.Context()))
				if err != nil {
					return err
				}
				fmt.Fprintln(a.out, strandList(strands))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&order, "order", false, "print a topological strand order of an acyclic graph")
	return cmd
}

func strandList(ss []core.Strand) string {
	parts := make([]string, len(ss))
	for i, s := range ss {
		parts[i] = s.String()
	}
	return strings.Join(parts, " ")
}

var errBadKey = errors.New("strand must look like 12+ or 12-")

// parseKey reads "12+" or "12-".
func parseKey(s string) (bfs.Key, error) {
	if len(s) < 2 {
		return bfs.Key{}, fmt.Errorf("%w: %q", errBadKey, s)
	}
	side := core.StartIsFirst
	switch s[len(s)-1] {
	case '+':
	case '-':
		side = core.EndIsFirst
	default:
		return bfs.Key{}, fmt.Errorf("%w: %q", errBadKey, s)
	}
	id, err := strconv.Atoi(s[:len(s)-1])
	if err != nil || id <= 0 {
		return bfs.Key{}, fmt.Errorf("%w: %q", errBadKey, s)
	}
	return bfs.Key{ID: id, Side: side}, nil
}
