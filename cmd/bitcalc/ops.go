package main

import (
	"fmt"
	"math/big"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	bitint "github.com/shabbyrobe/go-bitint"
)

var addCmd = &cobra.Command{
	Use:   "add <x> <y>",
	Short: "Print x + y",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		x, y, err := operands(args)
		if err != nil {
			return err
		}
		fmt.Println(render(x.Add(y)))
		return nil
	},
}

var subCmd = &cobra.Command{
	Use:   "sub <x> <y>",
	Short: "Print x - y (requires y <= x)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		x, y, err := operands(args)
		if err != nil {
			return err
		}
		if y.GreaterThan(x) {
			return fmt.Errorf("%w: %s is smaller than %s", bitint.ErrNegative, render(x), render(y))
		}
		fmt.Println(render(x.Sub(y)))
		return nil
	},
}

var mulCmd = &cobra.Command{
	Use:   "mul <x> <y>",
	Short: "Print x * y",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		x, y, err := operands(args)
		if err != nil {
			return err
		}
		fmt.Println(render(x.Mul(y)))
		return nil
	},
}

var divCmd = &cobra.Command{
	Use:   "div <x> <y>",
	Short: "Print the quotient and remainder of x / y",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		x, y, err := operands(args)
		if err != nil {
			return err
		}
		if y.IsZero() {
			return bitint.ErrDivZero
		}
		q, r := x.QuoRem(y)
		fmt.Println(render(q), render(r))
		return nil
	},
}

var cmpCmd = &cobra.Command{
	Use:   "cmp <x> <y>",
	Short: "Print -1, 0 or 1 as x is less than, equal to or greater than y",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		x, y, err := operands(args)
		if err != nil {
			return err
		}
		fmt.Println(x.Cmp(y))
		return nil
	},
}

func operands(args []string) (x, y bitint.Int, err error) {
	if x, err = operand(args[0]); err != nil {
		return x, y, err
	}
	if y, err = operand(args[1]); err != nil {
		return x, y, err
	}
	log.Debug("parsed operands", "x", x, "y", y)
	return x, y, nil
}

func operand(s string) (bitint.Int, error) {
	switch base {
	case 2:
		return bitint.FromString(s)
	case 10:
		b, ok := new(big.Int).SetString(s, 10)
		if !ok || b.Sign() < 0 {
			return bitint.Int{}, fmt.Errorf("bitcalc: operand %q is not an unsigned decimal integer", s)
		}
		v, _ := bitint.FromBigInt(b)
		return v, nil
	default:
		return bitint.Int{}, fmt.Errorf("bitcalc: unsupported base %d", base)
	}
}

func render(v bitint.Int) string {
	if base == 10 {
		return v.AsBigInt().String()
	}
	return v.String()
}
