package main

import (
	"fmt"
	"strings"

	"github.com/NethermindEth/bitvec/core/bitvec"
	"github.com/NethermindEth/bitvec/utils"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var ErrUnknownOp = errors.New("unknown operation")

var (
	unaryOps  = []string{"neg", "not"}
	binaryOps = []string{"add", "sub", "mul", "and", "or", "xor", "nand", "nor", "xnor", "lsh", "rsh", "ash"}
)

var bitwiseOps = map[string]func(a, b *bitvec.Binary) *bitvec.Binary{
	"and":  bitvec.And,
	"or":   bitvec.Or,
	"xor":  bitvec.Xor,
	"nand": bitvec.Nand,
	"nor":  bitvec.Nor,
	"xnor": bitvec.Xnor,
}

var shiftOps = map[string]func(a *bitvec.Binary, n int) (res, carry *bitvec.Binary, err error){
	"lsh": bitvec.OverflowingLsh,
	"rsh": bitvec.UnderflowingLogicalRsh,
	"ash": bitvec.UnderflowingArithmeticRsh,
}

func EvalCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "eval <op> <a> [b]",
		Short: "Evaluate an arithmetic, bitwise or shift operation",
		Long: fmt.Sprintf(`This subcommand evaluates one operation and prints the result with its flags.
Unary operations: %s.
Binary operations: %s.
The shift amount of lsh, rsh and ash is the second operand read as an integer.`,
			strings.Join(unaryOps, ", "), strings.Join(binaryOps, ", ")),
		Args: cobra.RangeArgs(2, 3),
		RunE: a.eval,
	}
}

func (a *app) eval(cmd *cobra.Command, args []string) error {
	op := args[0]
	switch {
	case utils.AnyOf(op, unaryOps...):
		if len(args) != 2 {
			return errors.Errorf("%s takes one operand, got %d", op, len(args)-1)
		}
	case utils.AnyOf(op, binaryOps...):
		if len(args) != 3 {
			return errors.Errorf("%s takes two operands, got %d", op, len(args)-1)
		}
	default:
		return errors.Wrapf(ErrUnknownOp, "%q", op)
	}

	values, err := a.operands(args[1:])
	if err != nil {
		return err
	}
	a.log.Debugw("Evaluating", "op", op, "operands", args[1:])

	out := cmd.OutOrStdout()
	x := values[0]
	switch op {
	case "neg":
		renderValues(out, namedValue{"result", bitvec.Negate(x)})
	case "not":
		renderValues(out, namedValue{"result", bitvec.Not(x)})
	case "add", "sub":
		flagged := bitvec.FlaggedAdd
		if op == "sub" {
			flagged = bitvec.FlaggedSub
		}
		res, flags, err := flagged(x, values[1])
		if err != nil {
			return errors.Wrapf(err, "%s %s %s", op, x, values[1])
		}
		renderValues(out, namedValue{"result", res})
		renderFlags(out, flags)
	case "mul":
		low, high := bitvec.OverflowingMul(x, values[1])
		renderValues(out,
			namedValue{"product", bitvec.Multiply(x, values[1])},
			namedValue{"low", low},
			namedValue{"high", high},
		)
	case "lsh", "rsh", "ash":
		n, err := bitvec.ShiftAmount(values[1])
		if err != nil {
			return errors.Wrapf(err, "shift amount %s", values[1])
		}
		res, carry, err := shiftOps[op](x, n)
		if err != nil {
			return errors.Wrapf(err, "%s %s by %d", op, x, n)
		}
		renderValues(out, namedValue{"result", res}, namedValue{"carry", carry})
	default:
		renderValues(out, namedValue{"result", bitwiseOps[op](x, values[1])})
	}

	a.log.Infow("Evaluated", "op", op)
	return nil
}
