package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/NethermindEth/bitvec/core/bitvec"
	"github.com/NethermindEth/bitvec/utils"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const (
	mintermsF = "minterms"
	tableF    = "table"
	allF      = "all"
	extendF   = "extend"
)

func MapCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "map <operands...>",
		Short: "Evaluate a truth table over the operands bit by bit",
		Long: `This subcommand applies a boolean function of up to 31 operands to every bit position.
Bit i of a minterm index selects operand i when set and its complement when clear.`,
		Args: cobra.MinimumNArgs(1),
		RunE: a.bitwiseMap,
	}
	cmd.Flags().IntSlice(mintermsF, nil, "Indices of the minterms for which the function is true")
	cmd.Flags().String(tableF, "", "Truth table as a value whose bit m is the output for minterm m")
	cmd.MarkFlagsMutuallyExclusive(mintermsF, tableF)
	cmd.MarkFlagsOneRequired(mintermsF, tableF)
	return cmd
}

func (a *app) bitwiseMap(cmd *cobra.Command, args []string) error {
	values, err := a.operands(args)
	if err != nil {
		return err
	}

	var table bitvec.Table
	if cmd.Flags().Changed(mintermsF) {
		indices, err := cmd.Flags().GetIntSlice(mintermsF)
		if err != nil {
			return err
		}
		minterms := make(bitvec.Minterms, len(indices))
		for _, m := range indices {
			minterms[m] = true
		}
		table = minterms
	} else {
		text, err := cmd.Flags().GetString(tableF)
		if err != nil {
			return err
		}
		// The table is read as written, whatever the operand length.
		b, err := bitvec.FromAny(text)
		if err != nil {
			return errors.Wrapf(err, "truth table %q", text)
		}
		table = bitvec.TableBits{B: b}
	}

	res, err := bitvec.BitwiseMap(values, table)
	if err != nil {
		return errors.Wrap(err, "map")
	}
	a.log.Debugw("Mapped truth table", "operands", len(values))
	renderValues(cmd.OutOrStdout(), namedValue{"result", res})
	return nil
}

func InspectCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <value>",
		Short: "Display the properties of a value",
		Args:  cobra.ExactArgs(1),
		RunE:  a.inspect,
	}
}

func (a *app) inspect(cmd *cobra.Command, args []string) error {
	v, err := a.operand(args[0])
	if err != nil {
		return err
	}

	itoa := strconv.Itoa
	renderProperties(cmd.OutOrStdout(), [][]string{
		{"length", itoa(v.Len())},
		{"sign", v.Sign().String()},
		{"int", v.BigInt().String()},
		{"hex", v.Hex(true)},
		{"bin", v.Bin(true)},
		{"ones", itoa(v.CountOnes())},
		{"zeros", itoa(v.CountZeros())},
		{"leading zeros", itoa(v.LeadingZeros())},
		{"leading ones", itoa(v.LeadingOnes())},
		{"trailing zeros", itoa(v.TrailingZeros())},
		{"trailing ones", itoa(v.TrailingOnes())},
		{"min", v.MinValue().String()},
		{"max", v.MaxValue().String()},
	})
	return nil
}

func SliceCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "slice <value> <start> <stop> [step]",
		Short: "Extract the bits selected by Python-style slice bounds",
		Long: `This subcommand extracts the bits in [start, stop) every step positions.
Use '_' for an omitted bound and '--' before negative bounds.
With a negative step the bounds are given from the top, as in "slice v _ _ -1".`,
		Args: cobra.RangeArgs(3, 4),
		RunE: a.slice,
	}
}

func (a *app) slice(cmd *cobra.Command, args []string) error {
	v, err := a.operand(args[0])
	if err != nil {
		return err
	}

	step := 1
	if len(args) == 4 {
		if step, err = strconv.Atoi(args[3]); err != nil {
			return errors.Wrapf(err, "slice step %q", args[3])
		}
	}

	omittedStart, omittedStop := bitvec.IndexBegin, bitvec.IndexEnd
	if step < 0 {
		omittedStart, omittedStop = omittedStop, omittedStart
	}
	start, err := bound(args[1], omittedStart)
	if err != nil {
		return err
	}
	stop, err := bound(args[2], omittedStop)
	if err != nil {
		return err
	}

	res, err := v.Slice(start, stop, step)
	if err != nil {
		return errors.Wrapf(err, "slice %s[%s:%s:%d]", v, args[1], args[2], step)
	}
	renderValues(cmd.OutOrStdout(), namedValue{"slice", res})
	return nil
}

func FindCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "find <value> <pattern>",
		Short: "Find the positions at which a pattern occurs",
		Long:  `This subcommand prints the lowest position of the pattern, or -1 when it does not occur.`,
		Args:  cobra.ExactArgs(2),
		RunE:  a.find,
	}
	cmd.Flags().Bool(allF, false, "Print every position, overlapping matches included")
	return cmd
}

func (a *app) find(cmd *cobra.Command, args []string) error {
	values, err := a.operands(args)
	if err != nil {
		return err
	}
	v, pattern := values[0], values[1]

	all, err := cmd.Flags().GetBool(allF)
	if err != nil {
		return err
	}

	var positions []int
	if all {
		positions, err = v.FindAll(pattern)
	} else {
		var pos int
		pos, err = v.FindFirst(pattern)
		positions = []int{pos}
	}
	if err != nil {
		return errors.Wrapf(err, "find %s", pattern)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), strings.Join(utils.Map(positions, strconv.Itoa), " "))
	return err
}

func HammingCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "hamming <a> <b>",
		Short: "Count the positions at which two values differ",
		Args:  cobra.ExactArgs(2),
		RunE:  a.hamming,
	}
}

func (a *app) hamming(cmd *cobra.Command, args []string) error {
	values, err := a.operands(args)
	if err != nil {
		return err
	}
	d, err := bitvec.HammingDistance(values[0], values[1])
	if err != nil {
		return errors.Wrap(err, "hamming distance")
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), d)
	return err
}

func ChunksCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chunks <value> <size>",
		Short: "Split a value into chunks, least significant first",
		Args:  cobra.ExactArgs(2),
		RunE:  a.chunks,
	}
	cmd.Flags().Bool(extendF, false, "Pad the last chunk to the full size with the sign-extension bit")
	return cmd
}

func (a *app) chunks(cmd *cobra.Command, args []string) error {
	v, err := a.operand(args[0])
	if err != nil {
		return err
	}
	size, err := strconv.Atoi(args[1])
	if err != nil {
		return errors.Wrapf(err, "chunk size %q", args[1])
	}
	extend, err := cmd.Flags().GetBool(extendF)
	if err != nil {
		return err
	}

	chunks, err := v.Chunks(size, extend)
	if err != nil {
		return errors.Wrapf(err, "chunks of %s", v)
	}

	var rows []namedValue
	for c := range chunks {
		rows = append(rows, namedValue{strconv.Itoa(len(rows)), c})
	}
	renderValues(cmd.OutOrStdout(), rows...)
	return nil
}

func ConfigCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as yaml",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := yaml.Marshal(a.cfg)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
}
