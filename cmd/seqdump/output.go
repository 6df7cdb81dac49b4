package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fxamacker/cbor/v2"
	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvseq/points"
	"github.com/katalvlaran/lvseq/seq"
)

type valueRecord struct {
	Index int     `json:"index" yaml:"index"`
	Value float64 `json:"value" yaml:"value"`
}

func writeValues(w io.Writer, format string, vals []seq.Indexed[float64]) error {
	records := make([]valueRecord, len(vals))
	rows := make([][]string, len(vals))
	for i, v := range vals {
		records[i] = valueRecord{Index: v.Index, Value: v.Value}
		rows[i] = []string{strconv.Itoa(v.Index), formatFloat(v.Value)}
	}

	switch format {
	case "table":
		return writeTable(w, []string{"index", "value"}, rows)
	case "plain":
		for _, r := range records {
			if _, err := fmt.Fprintln(w, formatFloat(r.Value)); err != nil {
				return err
			}
		}
		return nil
	default:
		return encode(w, format, records)
	}
}

func writeSegments(w io.Writer, format string, segs []points.Segment2[float64]) error {
	if segs == nil {
		segs = []points.Segment2[float64]{}
	}
	rows := make([][]string, len(segs))
	for i, s := range segs {
		rows[i] = make([]string, 0, len(s))
		for _, c := range s.Args() {
			rows[i] = append(rows[i], formatFloat(c))
		}
	}

	switch format {
	case "table":
		return writeTable(w, []string{"x1", "y1", "x2", "y2"}, rows)
	case "plain":
		for _, r := range rows {
			if _, err := fmt.Fprintln(w, strings.Join(r, " ")); err != nil {
				return err
			}
		}
		return nil
	default:
		return encode(w, format, segs)
	}
}

func writeTable(w io.Writer, header []string, rows [][]string) error {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.AppendBulk(rows)
	table.Render()

	return nil
}

// encode writes v as json, yaml or cbor.
func encode(w io.Writer, format string, v any) error {
	switch format {
	case "json":
		return json.NewEncoder(w).Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	case "cbor":
		b, err := cbor.Marshal(v)
		if err != nil {
			return err
		}
		_, err = w.Write(b)
		return err
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
