package cluster

import "fmt"

// Default knobs.
const (
	DefaultMaxClusters = 24
	DefaultMinMembers  = 3
	DefaultColor       = "#8a8f98"
)

// DefaultPalette is a fixed 24-colour palette, most distinct hues first.
var DefaultPalette = []string{
	"#e6194b", "#3cb44b", "#ffe119", "#4363d8", "#f58231", "#911eb4",
	"#46f0f0", "#f032e6", "#bcf60c", "#fabebe", "#008080", "#e6beff",
	"#9a6324", "#fffac8", "#800000", "#aaffc3", "#808000", "#ffd8b1",
	"#000075", "#a9a9a9", "#ff6f91", "#2ec4b6", "#c0ca33", "#5c6bc0",
}

// Member is the view of a graph node the labeler needs.
type Member struct {
	ID     string
	Genres []string
}

// Cluster is one named grouping.
type Cluster struct {
	// ID is the defining attribute in folded form (e.g. "indie rock").
	ID string `json:"id"`
	// Name is the display-formatted attribute (e.g. "Indie Rock").
	Name string `json:"name"`
	// MemberIDs lists every node carrying the attribute, in node order.
	MemberIDs []string `json:"memberIds"`
	// ColorIndex is the cluster's rank, i.e. its palette slot.
	ColorIndex int `json:"colorIndex"`
	// Color is the resolved palette colour.
	Color string `json:"color"`
}

// Assignment is the colour decision for one node.
type Assignment struct {
	Color        string
	PrimaryGenre string
}

// Option configures Label and Assign.
type Option func(*options)

type options struct {
	maxClusters  int
	minMembers   int
	palette      []string
	defaultColor string
}

func defaultOptions() options {
	return options{
		maxClusters:  DefaultMaxClusters,
		minMembers:   DefaultMinMembers,
		palette:      DefaultPalette,
		defaultColor: DefaultColor,
	}
}

// WithMaxClusters caps the number of clusters (K). Panics if k < 1.
func WithMaxClusters(k int) Option {
	if k < 1 {
		panic(fmt.Sprintf("cluster: WithMaxClusters(%d)", k))
	}
	return func(o *options) { o.maxClusters = k }
}

// WithMinMembers sets the minimum number of nodes a tag needs. Panics if n < 1.
func WithMinMembers(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("cluster: WithMinMembers(%d)", n))
	}
	return func(o *options) { o.minMembers = n }
}

// WithPalette replaces the palette. Panics on an empty palette.
func WithPalette(p []string) Option {
	if len(p) == 0 {
		panic("cluster: WithPalette(empty)")
	}
	cp := append([]string(nil), p...)
	return func(o *options) { o.palette = cp }
}

// WithDefaultColor sets the colour for nodes outside every cluster.
func WithDefaultColor(c string) Option {
	return func(o *options) { o.defaultColor = c }
}

func resolve(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
