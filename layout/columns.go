package layout

import (
	"sort"

	"github.com/tsawler/strata/model"
)

// ColumnLayout represents the detected column structure of a page
type ColumnLayout struct {
	// Columns are the detected bands, sorted left to right
	Columns []model.Column

	// PageWidth of the analyzed page
	PageWidth float64

	// Config is the configuration used for detection
	Config ColumnConfig
}

// ColumnConfig holds configuration for column detection
type ColumnConfig struct {
	// MinTokenLength is the minimum trimmed text length for a token to count
	// as substantial evidence of a column edge.
	// Default: 3
	MinTokenLength int `yaml:"min_token_length"`

	// MinTokenWidth is the minimum token width for substantial evidence.
	// Default: 10 points
	MinTokenWidth float64 `yaml:"min_token_width"`

	// ClusterThreshold is the maximum distance between a left-edge X value
	// and a cluster center for the value to merge into that cluster.
	// Default: 40 points
	ClusterThreshold float64 `yaml:"cluster_threshold"`

	// MinClusterSize is the minimum member count for a cluster to survive
	// as a column; smaller clusters are discarded as noise.
	// Default: 3
	MinClusterSize int `yaml:"min_cluster_size"`

	// LeftMargin is how far a column band extends left of its cluster center.
	// Default: 20 points
	LeftMargin float64 `yaml:"left_margin"`
}

// DefaultColumnConfig returns sensible default configuration
func DefaultColumnConfig() ColumnConfig {
	return ColumnConfig{
		MinTokenLength:   3,
		MinTokenWidth:    10.0,
		ClusterThreshold: 40.0,
		MinClusterSize:   3,
		LeftMargin:       20.0,
	}
}

// ColumnDetector detects multi-column layouts by clustering token left edges
type ColumnDetector struct {
	config ColumnConfig
}

// NewColumnDetector creates a new column detector with default configuration
func NewColumnDetector() *ColumnDetector {
	return &ColumnDetector{config: DefaultColumnConfig()}
}

// NewColumnDetectorWithConfig creates a column detector with custom configuration
func NewColumnDetectorWithConfig(config ColumnConfig) *ColumnDetector {
	return &ColumnDetector{config: config}
}

// xCluster accumulates left-edge X values during the single-pass scan
type xCluster struct {
	center float64
	sum    float64
	count  int
}

// Detect clusters token left edges into column bands. A page with zero or one
// surviving cluster is single-column and yields an empty column list.
func (d *ColumnDetector) Detect(tokens []model.Token, pageWidth float64) *ColumnLayout {
	layout := &ColumnLayout{
		PageWidth: pageWidth,
		Config:    d.config,
	}

	// Unique left edges of substantial tokens, in encounter order
	seen := make(map[float64]bool)
	var edges []float64
	for _, tok := range tokens {
		if tok.TrimmedLen() <= d.config.MinTokenLength {
			continue
		}
		if tok.Width <= d.config.MinTokenWidth {
			continue
		}
		if !seen[tok.X] {
			seen[tok.X] = true
			edges = append(edges, tok.X)
		}
	}

	clusters := d.clusterEdges(edges)
	if len(clusters) <= 1 {
		return layout
	}

	sort.Slice(clusters, func(i, j int) bool {
		return clusters[i].center < clusters[j].center
	})

	// Each band runs from center-LeftMargin to the midpoint with the next
	// cluster; the last band extends to the page edge.
	for i, c := range clusters {
		end := pageWidth
		if i < len(clusters)-1 {
			end = (c.center + clusters[i+1].center) / 2
		}
		layout.Columns = append(layout.Columns, model.Column{
			StartX:  c.center - d.config.LeftMargin,
			EndX:    end,
			CenterX: c.center,
		})
	}

	return layout
}

// clusterEdges runs a single-pass agglomerative scan: each X value merges
// into the nearest cluster within ClusterThreshold, recomputing that
// cluster's running mean, or starts a new cluster. Clusters smaller than
// MinClusterSize are discarded.
func (d *ColumnDetector) clusterEdges(edges []float64) []xCluster {
	var clusters []xCluster

	for _, x := range edges {
		best := -1
		bestDist := d.config.ClusterThreshold
		for i, c := range clusters {
			dist := absFloat(x - c.center)
			if dist <= bestDist {
				best = i
				bestDist = dist
			}
		}
		if best >= 0 {
			clusters[best].sum += x
			clusters[best].count++
			clusters[best].center = clusters[best].sum / float64(clusters[best].count)
		} else {
			clusters = append(clusters, xCluster{center: x, sum: x, count: 1})
		}
	}

	var surviving []xCluster
	for _, c := range clusters {
		if c.count >= d.config.MinClusterSize {
			surviving = append(surviving, c)
		}
	}
	return surviving
}

// ColumnCount returns the number of detected column bands. Single-column
// pages report 1.
func (l *ColumnLayout) ColumnCount() int {
	if l == nil || len(l.Columns) == 0 {
		return 1
	}
	return len(l.Columns)
}

// IsMultiColumn returns true if more than one column band was detected
func (l *ColumnLayout) IsMultiColumn() bool {
	return l.ColumnCount() > 1
}

// ColumnFor returns the index of the band containing the given X coordinate,
// or the nearest band by center distance if none contains it. Returns 0 when
// the page is single-column.
func (l *ColumnLayout) ColumnFor(x float64) int {
	if l == nil || len(l.Columns) == 0 {
		return 0
	}
	for i, col := range l.Columns {
		if col.Contains(x) {
			return i
		}
	}
	best := 0
	bestDist := absFloat(x - l.Columns[0].CenterX)
	for i := 1; i < len(l.Columns); i++ {
		dist := absFloat(x - l.Columns[i].CenterX)
		if dist < bestDist {
			best = i
			bestDist = dist
		}
	}
	return best
}

// absFloat returns the absolute value of a float64
func absFloat(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
