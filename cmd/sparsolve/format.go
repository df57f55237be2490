// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/pflag"
)

// Output formats understood by --format.
const (
	formatTable = "table"
	formatCSV   = "csv"
)

// formatValue is a pflag.Value restricting --format to the supported
// renderers at parse time, so commands never see an unknown format.
type formatValue struct {
	value string
}

var _ pflag.Value = (*formatValue)(nil)

func newFormatValue(def string) *formatValue {
	return &formatValue{value: def}
}

func (f *formatValue) String() string { return f.value }

func (f *formatValue) Type() string { return "format" }

func (f *formatValue) Set(s string) error {
	switch s {
	case formatTable, formatCSV:
		f.value = s

		return nil
	default:
		return fmt.Errorf("unknown format %q (want %s or %s)", s, formatTable, formatCSV)
	}
}
