package eval

import (
	"fmt"
	"strconv"
	"strings"

	"ctrlplay/internal/engine"
)

// parseCSV parses a headerless CSV blob into a matrix, transposing rows
// into columns: the first row's width becomes the matrix height, and
// the number of rows becomes the matrix width. This is a deliberately
// preserved, slightly surprising convention.
func parseCSV(text string) (*engine.Matrix, error) {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, "\r")
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("empty CSV")
	}

	first, err := parseCSVRow(lines[0])
	if err != nil {
		return nil, err
	}
	height := len(first)
	width := len(lines)
	data := make([]float64, height*width)
	for i, v := range first {
		data[i*width] = v
	}

	for j := 1; j < len(lines); j++ {
		row, err := parseCSVRow(lines[j])
		if err != nil {
			return nil, err
		}
		if len(row) != height {
			return nil, fmt.Errorf("row %d has width %d, expected %d", j, len(row), height)
		}
		for i, v := range row {
			data[i*width+j] = v
		}
	}

	return engine.NewMatrix(height, width, data), nil
}

func parseCSVRow(line string) ([]float64, error) {
	fields := strings.Split(line, ",")
	row := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid CSV value %q", f)
		}
		row[i] = v
	}
	return row, nil
}
