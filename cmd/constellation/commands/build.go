package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/pterm/pterm"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/constellation/cluster"
	"github.com/katalvlaran/constellation/constellation"
	"github.com/katalvlaran/constellation/snapshot"
)

// BuildCmd builds a graph and reports on it.
var BuildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the similarity graph for an artist list",
	Long: `Build the degree-bounded similarity graph for an artist list and print
its statistics and genre clusters, or the whole graph as JSON.

The artist file is YAML (or JSON) with an "artists" list and an optional
"similarity" list of provider scores.

With --positions, the JSON output also carries label placements: each
cluster's laid-out members grouped into square cells of side --cell. The
positions file maps artist ids to coordinates:

  positions:
    radiohead: {x: 120, y: -40}`,
	RunE: runBuild,
}

var (
	buildArtists   string
	buildJSON      bool
	buildPositions string
	buildCell      float64
)

const defaultLabelCell = 150.0

func init() {
	BuildCmd.Flags().StringVarP(&buildArtists, "artists", "a", "", "Artist file (YAML or JSON)")
	BuildCmd.Flags().BoolVar(&buildJSON, "json", false, "Print the graph as JSON")
	BuildCmd.Flags().StringVar(&buildPositions, "positions", "", "Layout positions file (YAML or JSON) for label placement")
	BuildCmd.Flags().Float64Var(&buildCell, "cell", defaultLabelCell, "Label placement cell size, in layout units")
}

func runBuild(cmd *cobra.Command, args []string) error {
	set, err := loadArtists(buildArtists)
	if err != nil {
		return err
	}
	snap, err := buildSnapshot(cmd.Context(), set, !buildJSON)
	if err != nil {
		return err
	}
	if buildJSON {
		var labels []cluster.Placement
		if buildPositions != "" {
			if buildCell <= 0 {
				return errors.Newf("--cell must be positive, got %g", buildCell)
			}
			pos, err := loadPositions(buildPositions)
			if err != nil {
				return err
			}
			labels = cluster.Placements(snap.Graph.Clusters, pos, buildCell)
		}
		return writeGraphJSON(cmd.OutOrStdout(), snap, labels)
	}
	return writeGraphSummary(cmd.OutOrStdout(), snap)
}

type graphReport struct {
	Fingerprint string               `json:"fingerprint"`
	Stats       constellation.Stats  `json:"stats"`
	Graph       *constellation.Graph `json:"graph"`
	Labels      []cluster.Placement  `json:"labels,omitempty"`
}

type positionsFile struct {
	Positions map[string]cluster.Point `yaml:"positions"`
}

func loadPositions(path string) (map[string]cluster.Point, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open positions file %s", path)
	}
	defer f.Close()

	var doc positionsFile
	if err := yaml.NewDecoder(f).Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Wrapf(err, "decode positions file %s", path)
	}
	return doc.Positions, nil
}

func writeGraphJSON(w io.Writer, snap *snapshot.Snapshot, labels []cluster.Placement) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	err := enc.Encode(graphReport{
		Fingerprint: snap.Key(),
		Stats:       snap.Graph.Stats(),
		Graph:       snap.Graph,
		Labels:      labels,
	})
	return errors.Wrap(err, "encode graph")
}

func writeGraphSummary(w io.Writer, snap *snapshot.Snapshot) error {
	g := snap.Graph
	st := g.Stats()

	fmt.Fprintln(w, pterm.DefaultSection.Sprint("Graph"))
	table, err := pterm.DefaultTable.WithHasHeader().WithData(pterm.TableData{
		{"Artists", "Connections", "Components", "Dropped", "Max degree", "Mean degree"},
		{
			strconv.Itoa(st.Nodes),
			strconv.Itoa(st.Edges),
			strconv.Itoa(st.Components),
			strconv.Itoa(st.Dropped),
			fmt.Sprintf("%d / %d", st.MaxDegree, g.MaxDegree),
			strconv.FormatFloat(st.MeanDegree, 'f', 2, 64),
		},
	}).Srender()
	if err != nil {
		return err
	}
	fmt.Fprintln(w, table)

	if len(g.Clusters) > 0 {
		fmt.Fprintln(w, pterm.DefaultSection.Sprint("Genre clusters"))
		rows := append(pterm.TableData{{"#", "Genre", "Artists", "Color"}},
			lo.Map(g.Clusters, func(c cluster.Cluster, _ int) []string {
				return []string{strconv.Itoa(c.ColorIndex + 1), c.Name, strconv.Itoa(len(c.MemberIDs)), c.Color}
			})...)
		table, err = pterm.DefaultTable.WithHasHeader().WithData(rows).Srender()
		if err != nil {
			return err
		}
		fmt.Fprintln(w, table)
	}

	if len(g.Dropped) > 0 {
		fmt.Fprintf(w, "Dropped (no similar artist): %s\n", strings.Join(g.Dropped, ", "))
	}
	return nil
}
