package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
)

// axisNames labels the first three coordinates; further axes are x3, x4, ….
var axisNames = [...]string{"x", "y", "z"}

func axisName(i int) string {
	if i < len(axisNames) {
		return axisNames[i]
	}
	return "x" + strconv.Itoa(i)
}

// writeCSV writes one row per point: run, coordinates, and density when the
// runs carry one.
func writeCSV(w io.Writer, runs []result) error {
	dim, withDensity := 0, false
	for _, r := range runs {
		if len(r.points) > 0 {
			dim = len(r.points[0])
		}
		withDensity = withDensity || r.densities != nil
	}

	cw := csv.NewWriter(w)
	header := []string{"run"}
	for i := 0; i < dim; i++ {
		header = append(header, axisName(i))
	}
	if withDensity {
		header = append(header, "density")
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("pdsample: write csv: %w", err)
	}

	row := make([]string, 0, len(header))
	for ri, r := range runs {
		for pi, p := range r.points {
			row = append(row[:0], strconv.Itoa(ri))
			for _, v := range p {
				row = append(row, strconv.FormatFloat(v, 'g', -1, 64))
			}
			if withDensity && r.densities != nil {
				row = append(row, strconv.FormatFloat(r.densities[pi], 'g', -1, 64))
			}
			if err := cw.Write(row); err != nil {
				return fmt.Errorf("pdsample: write csv: %w", err)
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

type jsonRun struct {
	Run       int         `json:"run"`
	Points    [][]float64 `json:"points"`
	Densities []float64   `json:"densities,omitempty"`
}

// writeJSON writes every run as an indented JSON array.
func writeJSON(w io.Writer, runs []result) error {
	out := make([]jsonRun, len(runs))
	for i, r := range runs {
		pts := make([][]float64, len(r.points))
		for j, p := range r.points {
			pts[j] = p
		}
		out[i] = jsonRun{Run: i, Points: pts, Densities: r.densities}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("pdsample: write json: %w", err)
	}
	return nil
}
