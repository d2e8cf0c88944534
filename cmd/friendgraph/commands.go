// SPDX-License-Identifier: MIT

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/friendgraph/social"
)

// newRootCmd wires every subcommand to a.
func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "friendgraph",
		Short: "Query friend lists and connections in a social network graph",
		Long: `friendgraph loads an undirected friendship graph from a text file
("<accounts> <friendships>" followed by one "<a> <b>" pair per friendship)
and answers friend-list, connection and reachability queries.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.configure()
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&a.flags.configPath, "config", "c", "", "path to a YAML config file")
	pf.StringVarP(&a.flags.file, "file", "f", "", "graph file to load")
	pf.StringVar(&a.flags.logLevel, "log-level", "", "log level: debug, info, warn, error")
	pf.StringVar(&a.flags.logFormat, "log-format", "", "log format: text or json")
	pf.BoolVar(&a.flags.strict, "strict", false, "reject self-loops, edge count mismatches and trailing data")

	root.AddCommand(
		newFriendsCmd(a),
		newConnectCmd(a),
		newReachCmd(a),
		newComponentsCmd(a),
		newStatsCmd(a),
		newBatchCmd(a),
		newMenuCmd(a),
	)
	return root
}

func newFriendsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "friends <id>",
		Short:   "Print the friend list of an account",
		Aliases: []string{"f"},
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			net, err := a.network()
			if err != nil {
				return err
			}
			friends, err := net.Friends(id)
			if err != nil {
				return err
			}
			a.out.friends(id, friends)
			return nil
		},
	}
}

func newConnectCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "connect <from> <to>",
		Short:   "Find the shortest chain of friendships between two accounts",
		Aliases: []string{"path"},
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := parseID(args[0])
			if err != nil {
				return err
			}
			to, err := parseID(args[1])
			if err != nil {
				return err
			}
			net, err := a.network()
			if err != nil {
				return err
			}
			conn, err := net.ShortestPath(from, to)
			if err != nil {
				return err
			}
			a.out.connection(conn)
			return nil
		},
	}
}

func newReachCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "reach <id>",
		Short: "List every account reachable from an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			net, err := a.network()
			if err != nil {
				return err
			}
			ids, err := net.ReachableFrom(id)
			if err != nil {
				return err
			}
			a.out.reachable(id, ids)
			return nil
		},
	}
}

func newComponentsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "components",
		Short:   "Partition all accounts into friend circles",
		Aliases: []string{"circles"},
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			net, err := a.network()
			if err != nil {
				return err
			}
			a.out.components(net.Components())
			return nil
		},
	}
}

func newStatsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print summary counts of the network",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			net, err := a.network()
			if err != nil {
				return err
			}
			a.out.stats(net.Stats())
			return nil
		},
	}
}

func newBatchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "batch [pairs-file]",
		Short: "Answer many connection queries; pairs are read from a file or stdin",
		Long: `batch reads whitespace-separated "<from> <to>" pairs from the given file,
or from stdin when no file is given, and prints one connection per pair.
Queries run concurrently (query.concurrency); output keeps input order.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src := a.stdin
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				src = f
			}
			pairs, err := readPairs(src)
			if err != nil {
				return err
			}
			net, err := a.network()
			if err != nil {
				return err
			}
			conns, err := net.Connections(cmd.Context(), pairs)
			if err != nil {
				return err
			}
			for _, c := range conns {
				a.out.connection(c)
			}
			return nil
		},
	}
}

// readPairs scans whitespace-separated integer pairs.
func readPairs(r io.Reader) ([]social.Pair, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	var ids []int
	for sc.Scan() {
		id, err := parseID(sc.Text())
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(ids)%2 != 0 {
		return nil, fmt.Errorf("pairs input has an odd number of ids (%d)", len(ids))
	}

	pairs := make([]social.Pair, 0, len(ids)/2)
	for i := 0; i < len(ids); i += 2 {
		pairs = append(pairs, social.Pair{From: ids[i], To: ids[i+1]})
	}
	return pairs, nil
}
