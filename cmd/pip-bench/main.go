// Package main provides the pip-bench benchmark driver.
//
// It loads GeoJSON polygon collections and a CSV of coordinates, classifies
// every coordinate against the collections, and reports timing plus
// per-collection hit counts.
package main

import (
	"compress/gzip"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/beetlebugorg/pip/pkg/pip"
)

var (
	polygonPaths []string
	pointsPath   string
	latColumn    string
	lonColumn    string
	workers      int
	repeat       int
	inflate      int
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pip-bench",
	Short: "Benchmark point-in-polygon batch classification",
	Long: `pip-bench classifies a CSV of coordinates against GeoJSON polygon
collections and reports throughput and per-collection hit counts.

Polygon files are supplied in result-index order: the first --polygons file
becomes collection 0, the second collection 1, and so on. Points outside
every collection count as -1.`,
	RunE: runBench,
}

func init() {
	rootCmd.Flags().StringArrayVarP(&polygonPaths, "polygons", "p", nil,
		"GeoJSON polygon file, repeatable; order defines the result index")
	rootCmd.Flags().StringVar(&pointsPath, "points", "",
		"CSV file of coordinates (.gz accepted)")
	rootCmd.Flags().StringVar(&latColumn, "lat-column", "lat", "latitude column name")
	rootCmd.Flags().StringVar(&lonColumn, "lon-column", "lon", "longitude column name")
	rootCmd.Flags().IntVar(&workers, "workers", 0, "batch worker count (0 = NumCPU)")
	rootCmd.Flags().IntVar(&repeat, "repeat", 1, "number of timed classification runs")
	rootCmd.Flags().IntVar(&inflate, "inflate", 0, "double the point set this many times")

	_ = rootCmd.MarkFlagRequired("polygons")
	_ = rootCmd.MarkFlagRequired("points")
}

func runBench(_ *cobra.Command, _ []string) error {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	documents := make([]string, 0, len(polygonPaths))
	for _, path := range polygonPaths {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read polygons: %w", err)
		}
		documents = append(documents, string(data))
	}

	buildStart := time.Now()
	engine, err := pip.NewFromGeoJSON(documents, pip.Options{Workers: workers})
	if err != nil {
		return fmt.Errorf("build engine: %w", err)
	}
	logger.Info("engine built",
		"collections", engine.Collections(),
		"workers", engine.Workers(),
		"elapsed", time.Since(buildStart))

	lat, lon, err := readPoints(pointsPath, latColumn, lonColumn)
	if err != nil {
		return fmt.Errorf("read points: %w", err)
	}
	for i := 0; i < inflate; i++ {
		lat = append(lat, lat...)
		lon = append(lon, lon...)
	}
	logger.Info("points loaded", "count", len(lat))

	var results []int32
	for run := 0; run < repeat; run++ {
		start := time.Now()
		results, err = engine.ClassifyBatch(lat, lon)
		if err != nil {
			return fmt.Errorf("classify: %w", err)
		}
		elapsed := time.Since(start)

		rate := float64(len(lat)) / elapsed.Seconds()
		logger.Info("batch classified",
			"run", run+1,
			"elapsed", elapsed,
			"points_per_second", fmt.Sprintf("%.0f", rate))
	}

	printCounts(results)
	return nil
}

// readPoints loads the latitude and longitude columns from a CSV file,
// transparently decompressing gzip input.
func readPoints(path, latName, lonName string) (lat, lon []float64, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, nil, err
		}
		defer gz.Close()
		r = gz
	}

	reader := csv.NewReader(r)
	header, err := reader.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("read header: %w", err)
	}

	latIdx, lonIdx := -1, -1
	for i, name := range header {
		switch strings.TrimSpace(name) {
		case latName:
			latIdx = i
		case lonName:
			lonIdx = i
		}
	}
	if latIdx < 0 || lonIdx < 0 {
		return nil, nil, fmt.Errorf("columns %q and %q not found in header %v",
			latName, lonName, header)
	}

	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, err
		}

		la, err := strconv.ParseFloat(record[latIdx], 64)
		if err != nil {
			return nil, nil, fmt.Errorf("line %d: %w", line, err)
		}
		lo, err := strconv.ParseFloat(record[lonIdx], 64)
		if err != nil {
			return nil, nil, fmt.Errorf("line %d: %w", line, err)
		}

		lat = append(lat, la)
		lon = append(lon, lo)
	}

	return lat, lon, nil
}

// printCounts reports hits per collection index, most frequent first.
func printCounts(results []int32) {
	counts := make(map[int32]int)
	for _, r := range results {
		counts[r]++
	}

	indexes := make([]int32, 0, len(counts))
	for idx := range counts {
		indexes = append(indexes, idx)
	}
	sort.Slice(indexes, func(i, j int) bool {
		return counts[indexes[i]] > counts[indexes[j]]
	})

	fmt.Println("polygon")
	for _, idx := range indexes {
		fmt.Printf("%d\t%d\n", idx, counts[idx])
	}
}
