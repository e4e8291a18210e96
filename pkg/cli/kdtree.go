package cli

import (
	"fmt"
	"iter"
	"strconv"

	"github.com/khalid-nowaf/treeindex/pkg/kdtree"
)

// KDTreeCmd builds a KD-tree from point files and runs queries against it.
type KDTreeCmd struct {
	Files    []string `arg:"" type:"existingfile" help:"Input files with one point per record (CSV, TSV, JSON or YAML)"`
	Columns  []string `help:"CSV columns holding the coordinates, in order (default: all columns)"`
	Contains []string `help:"Check if a point is stored, e.g. 7,2" placeholder:"X,Y,..." sep:"none"`
	Nearest  []string `help:"Find the stored point nearest to a point, e.g. 6,3" placeholder:"X,Y,..." sep:"none"`
	Within   []string `help:"List stored points inside a box, e.g. 0,0:5,5" placeholder:"MIN:MAX" sep:"none"`
	Output   string   `help:"Write the traversal to a file (csv, tsv, json, none)" enum:"csv,tsv,json,none" default:"none"`
	OutDir   string   `help:"Directory for the output file" type:"existingdir" default:"."`
	Splits   bool     `help:"Write split planes (depth, axis, region) instead of plain points"`
	Margin   float64  `help:"Margin added around the points to frame the split regions" default:"1"`
}

// Run executes the kdtree command.
func (cmd *KDTreeCmd) Run(ctx *Context) error {
	stats := &Stats{}
	var points []Point
	for _, file := range cmd.Files {
		err := parsePointsFile(file, cmd.Columns, func(p Point) error {
			points = append(points, p)
			stats.Input++
			return nil
		})
		if err != nil {
			return err
		}
		ctx.Logger.Debug("points loaded", "file", file, "total", stats.Input)
	}

	tree, err := kdtree.Build(points)
	if err != nil {
		return err
	}
	ctx.Logger.Info("kdtree ready", "points", tree.Len(), "k", tree.K(), "height", tree.Height())
	section(ctx.Out, "kdtree: %d points, k=%d, height=%d", tree.Len(), tree.K(), tree.Height())

	if err := cmd.query(ctx, tree); err != nil {
		return err
	}
	return cmd.write(ctx, tree, stats)
}

func (cmd *KDTreeCmd) query(ctx *Context, tree *kdtree.Tree[float64]) error {
	for _, s := range cmd.Contains {
		p, err := parsePoint(s)
		if err != nil {
			return err
		}
		report(ctx.Out, "contains", p.String(), tree.Contains(p), "")
	}
	for _, s := range cmd.Nearest {
		q, err := parsePoint(s)
		if err != nil {
			return err
		}
		best, dist, ok := tree.Nearest(q)
		detail := ""
		if ok {
			detail = fmt.Sprintf("%s (squared distance %g)", best, dist)
		}
		report(ctx.Out, "nearest", q.String(), ok, detail)
	}
	for _, s := range cmd.Within {
		box, err := parseBox(s)
		if err != nil {
			return err
		}
		var inside []Point
		for p := range tree.InRange(box) {
			inside = append(inside, p)
		}
		report(ctx.Out, "within", box.String(), len(inside) > 0, fmt.Sprint(inside))
	}
	return nil
}

func (cmd *KDTreeCmd) write(ctx *Context, tree *kdtree.Tree[float64], stats *Stats) error {
	writer, err := newWriter(cmd.Output, stats)
	if err != nil || writer == nil {
		return err
	}

	headers, records := pointRecords(tree, cmd.Columns)
	name := "kdtree"
	if cmd.Splits {
		headers, records = splitRecords(tree, cmd.Margin)
		name = "kdtree_splits"
	}
	filePath, err := writeFile(writer, cmd.OutDir, name, headers, records)
	if err != nil {
		return err
	}
	ctx.Logger.Info("traversal written", "file", filePath, "input", stats.Input, "output", stats.Output)
	fmt.Fprintf(ctx.Out, "written %d records to %s\n", stats.Output, filePath)
	return nil
}

// axisNames names the coordinates after the input columns, or x0, x1, ...
func axisNames(k int, columns []string) []string {
	if len(columns) == k {
		return append([]string(nil), columns...)
	}
	names := make([]string, k)
	for i := range names {
		names[i] = "x" + strconv.Itoa(i)
	}
	return names
}

func formatPoint(p Point) []string {
	out := make([]string, len(p))
	for i, c := range p {
		out[i] = strconv.FormatFloat(c, 'g', -1, 64)
	}
	return out
}

// pointRecords lists the points in traversal order.
func pointRecords(tree *kdtree.Tree[float64], columns []string) ([]string, iter.Seq[[]string]) {
	headers := axisNames(tree.K(), columns)
	return headers, func(yield func([]string) bool) {
		for p := range tree.All() {
			if !yield(formatPoint(p)) {
				return
			}
		}
	}
}

// splitRecords lists every node as a split plane together with the region it
// partitions, framed by the points' bounds grown by margin.
func splitRecords(tree *kdtree.Tree[float64], margin float64) ([]string, iter.Seq[[]string]) {
	names := axisNames(tree.K(), nil)
	headers := []string{"depth", "axis"}
	headers = append(headers, names...)
	for _, n := range names {
		headers = append(headers, "min_"+n)
	}
	for _, n := range names {
		headers = append(headers, "max_"+n)
	}

	return headers, func(yield func([]string) bool) {
		frame, ok := tree.Bounds()
		if !ok {
			return
		}
		for split := range tree.Splits(frame.Pad(margin)) {
			record := []string{strconv.Itoa(split.Depth), strconv.Itoa(split.Axis)}
			record = append(record, formatPoint(split.Location)...)
			record = append(record, formatPoint(split.Region.Min)...)
			record = append(record, formatPoint(split.Region.Max)...)
			if !yield(record) {
				return
			}
		}
	}
}
