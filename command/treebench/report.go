// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"gopkg.in/yaml.v3"

	"github.com/bitmark-inc/bstrees/fault"
)

// report output formats
const (
	formatTable = "table"
	formatJSON  = "json"
	formatYAML  = "yaml"
)

// check a format name
func parseFormat(name string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", formatTable, "text":
		return formatTable, nil
	case formatJSON:
		return formatJSON, nil
	case formatYAML, "yml":
		return formatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", fault.ErrInvalidFormat, name)
	}
}

// write the results in the selected format
func report(w io.Writer, format string, results []*Result) error {
	switch format {
	case formatTable:
		return reportTable(w, results)
	case formatJSON:
		return printJSON(w, "", results)
	case formatYAML:
		return printYAML(w, results)
	default:
		return fmt.Errorf("%w: %q", fault.ErrInvalidFormat, format)
	}
}

func reportTable(w io.Writer, results []*Result) error {
	tbl := table.NewWriter()
	tbl.SetOutputMirror(w)
	tbl.SetStyle(table.StyleLight)

	tbl.AppendHeader(table.Row{"strategy", "inserted", "removed", "count", "height", "nodes", "pooled", "checks", "insert", "remove"})
	total := 0
	for _, r := range results {
		tbl.AppendRow(table.Row{
			r.Strategy,
			humanize.Comma(int64(r.Inserted)),
			humanize.Comma(int64(r.Removed)),
			humanize.Comma(int64(r.Count)),
			r.Height,
			humanize.Comma(int64(r.Allocated)),
			humanize.Comma(int64(r.Free)),
			humanize.Comma(int64(r.Checks)),
			perOperation(r.InsertTime, r.Inserted),
			perOperation(r.RemoveTime, r.Removed),
		})
		total += r.Inserted + r.Removed
	}
	tbl.AppendFooter(table.Row{fmt.Sprintf("%d strategies", len(results)), "", "", "", "", "", "", "", "operations", humanize.Comma(int64(total))})
	tbl.Render()
	return nil
}

// duration per operation rounded for display
func perOperation(d time.Duration, n int) string {
	if 0 == n {
		return "-"
	}
	return (d / time.Duration(n)).Round(time.Nanosecond).String() + "/op"
}

// output a JSON block with optional title
func printJSON(w io.Writer, title string, message interface{}) error {
	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		return err
	}

	if "" == title {
		_, err = fmt.Fprintf(w, "%s\n", b)
	} else {
		_, err = fmt.Fprintf(w, "%s:\n%s\n", title, b)
	}
	return err
}

// output a YAML document
func printYAML(w io.Writer, message interface{}) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(message); nil != err {
		return err
	}
	return encoder.Close()
}
