package main

import (
	"io"
	"strconv"

	"github.com/NethermindEth/bitvec/core/bitvec"
	"github.com/olekukonko/tablewriter"
)

type namedValue struct {
	name  string
	value *bitvec.Binary
}

// renderValues prints one row per value in binary, hexadecimal and decimal.
func renderValues(w io.Writer, values ...namedValue) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Value", "Bin", "Hex", "Int"})
	for _, nv := range values {
		table.Append([]string{nv.name, nv.value.Bin(true), nv.value.Hex(true), nv.value.BigInt().String()})
	}
	table.Render()
}

func renderFlags(w io.Writer, f bitvec.Flags) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Overflow", "Zero", "Sign"})
	table.Append([]string{strconv.FormatBool(f.Overflow), strconv.FormatBool(f.Zero), strconv.FormatBool(f.Sign)})
	table.Render()
}

func renderProperties(w io.Writer, rows [][]string) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Property", "Value"})
	table.AppendBulk(rows)
	table.Render()
}
