package main

import (
	"math/big"
	"strconv"
	"strings"

	"github.com/NethermindEth/bitvec/core/bitvec"
	"github.com/pkg/errors"
)

const (
	decimalPrefix = "#"
	omittedBound  = "_"
)

// operand parses a command line value. A leading '#' marks a decimal integer, anything
// else is text in binary or hexadecimal.
func (a *app) operand(s string) (*bitvec.Binary, error) {
	var opts []bitvec.Option
	if a.cfg.Length > 0 {
		opts = append(opts, bitvec.WithLength(a.cfg.Length))
	}

	var src any = s
	if dec, ok := strings.CutPrefix(s, decimalPrefix); ok {
		x, ok := new(big.Int).SetString(dec, 10)
		if !ok {
			return nil, errors.Wrapf(bitvec.ErrUnsupportedInput, "operand %q is not a decimal integer", s)
		}
		src = x
		if a.cfg.Sign == bitvec.Signed {
			opts = append(opts, bitvec.WithSign(bitvec.Signed))
		}
	} else {
		opts = append(opts, bitvec.WithSign(a.cfg.Sign))
	}

	v, err := bitvec.FromAny(src, opts...)
	if err != nil {
		return nil, errors.Wrapf(err, "operand %q", s)
	}
	return v, nil
}

func (a *app) operands(args []string) ([]*bitvec.Binary, error) {
	values := make([]*bitvec.Binary, len(args))
	for i, arg := range args {
		v, err := a.operand(arg)
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	return values, nil
}

// bound parses a slice bound, where '_' stands for the omitted one.
func bound(s string, omitted int) (int, error) {
	if s == omittedBound {
		return omitted, nil
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.Wrapf(err, "slice bound %q", s)
	}
	return i, nil
}
