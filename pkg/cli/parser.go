package cli

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/khalid-nowaf/treeindex/pkg/kdtree"
	"gopkg.in/yaml.v3"
)

// Point is the point type read from input files.
type Point = kdtree.Point[float64]

// parsePointsFile reads points from a CSV, TSV, JSON or YAML file, picked by
// extension, and hands each of them to onEachPoint.
func parsePointsFile(filePath string, columns []string, onEachPoint func(p Point) error) error {
	file, err := os.Open(filePath)
	if err != nil {
		return err
	}
	defer file.Close()

	switch ext := strings.ToLower(filepath.Ext(filePath)); ext {
	case ".json":
		err = parseJsonPoints(file, onEachPoint)
	case ".yaml", ".yml":
		err = parseYamlPoints(file, onEachPoint)
	case ".tsv":
		err = parseCsvPoints(file, '\t', columns, onEachPoint)
	case ".csv", "":
		err = parseCsvPoints(file, ',', columns, onEachPoint)
	default:
		return fmt.Errorf("%s: unsupported file type %q", filePath, ext)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", filePath, err)
	}
	return nil
}

// parseJsonPoints reads a JSON array of coordinate arrays, e.g. [[2,3],[5,4]].
func parseJsonPoints(r io.Reader, onEachPoint func(p Point) error) error {
	decoder := json.NewDecoder(r)

	// Read opening bracket of the array
	if _, err := decoder.Token(); err != nil {
		return err
	}

	// Decode each element of the array
	for i := 0; decoder.More(); i++ {
		var p Point
		if err := decoder.Decode(&p); err != nil {
			return fmt.Errorf("point %d: %w", i, err)
		}
		if err := onEachPoint(p); err != nil {
			return err
		}
	}

	// Read closing bracket of the array
	_, err := decoder.Token()
	return err
}

// parseYamlPoints reads a YAML sequence of coordinate sequences.
func parseYamlPoints(r io.Reader, onEachPoint func(p Point) error) error {
	var points []Point
	if err := yaml.NewDecoder(r).Decode(&points); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}
	for _, p := range points {
		if err := onEachPoint(p); err != nil {
			return err
		}
	}
	return nil
}

// parseCsvPoints reads delimited records with a header line. If columns is
// empty every column is a coordinate, otherwise only the named ones, in the
// given order.
func parseCsvPoints(r io.Reader, comma rune, columns []string, onEachPoint func(p Point) error) error {
	reader := csv.NewReader(r)
	reader.Comma = comma
	reader.Comment = '#'
	reader.TrimLeadingSpace = true

	// Read the header to build the key mapping (first line is the header)
	headers, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}
	indices, err := columnIndices(headers, columns)
	if err != nil {
		return err
	}

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		line, _ := reader.FieldPos(0)

		p := make(Point, 0, len(indices))
		for _, i := range indices {
			if i >= len(record) {
				return fmt.Errorf("line %d: missing column %q", line, headers[i])
			}
			c, err := strconv.ParseFloat(strings.TrimSpace(record[i]), 64)
			if err != nil {
				return fmt.Errorf("line %d: column %q: %w", line, headers[i], err)
			}
			p = append(p, c)
		}
		if err := onEachPoint(p); err != nil {
			return err
		}
	}
}

func columnIndices(headers, columns []string) ([]int, error) {
	if len(columns) == 0 {
		indices := make([]int, len(headers))
		for i := range headers {
			indices[i] = i
		}
		return indices, nil
	}
	indices := make([]int, 0, len(columns))
	for _, column := range columns {
		found := -1
		for i, header := range headers {
			if strings.TrimSpace(header) == column {
				found = i
				break
			}
		}
		if found < 0 {
			return nil, fmt.Errorf("column %q not found in header %v", column, headers)
		}
		indices = append(indices, found)
	}
	return indices, nil
}

// parseWordsFile reads one word per line, skipping blank lines and lines
// starting with '#'.
func parseWordsFile(filePath string, onEachWord func(word string) error) error {
	file, err := os.Open(filePath)
	if err != nil {
		return err
	}
	defer file.Close()

	if err := parseWords(file, onEachWord); err != nil {
		return fmt.Errorf("%s: %w", filePath, err)
	}
	return nil
}

func parseWords(r io.Reader, onEachWord func(word string) error) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word == "" || strings.HasPrefix(word, "#") {
			continue
		}
		if err := onEachWord(word); err != nil {
			return err
		}
	}
	return scanner.Err()
}

// parsePoint reads a point written as comma separated coordinates, e.g. "7,2".
func parsePoint(s string) (Point, error) {
	parts := strings.Split(s, ",")
	p := make(Point, 0, len(parts))
	for _, part := range parts {
		c, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid point %q: %w", s, err)
		}
		p = append(p, c)
	}
	return p, nil
}

// parseBox reads a box written as two points separated by a colon, e.g. "0,0:5,5".
func parseBox(s string) (kdtree.Bounds[float64], error) {
	lo, hi, ok := strings.Cut(s, ":")
	if !ok {
		return kdtree.Bounds[float64]{}, fmt.Errorf("invalid box %q: want MIN:MAX", s)
	}
	minPoint, err := parsePoint(lo)
	if err != nil {
		return kdtree.Bounds[float64]{}, err
	}
	maxPoint, err := parsePoint(hi)
	if err != nil {
		return kdtree.Bounds[float64]{}, err
	}
	if len(minPoint) != len(maxPoint) {
		return kdtree.Bounds[float64]{}, fmt.Errorf("invalid box %q: corners differ in dimension", s)
	}
	return kdtree.Bounds[float64]{Min: minPoint, Max: maxPoint}, nil
}
