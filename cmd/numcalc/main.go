// Command numcalc evaluates fixed-width unsigned integer expressions.
//
//	numcalc [--width W] [--policy P] [--order O] <command> <a> [<b>]
//
// Operands are decimal, or hex with a 0x prefix. Results are printed in
// decimal and as fixed-width hex.
package main

import (
	"fmt"
	"io"
	"log"
	"math/big"
	"os"
	"sort"
	"strings"

	num "github.com/shabbyrobe/go-fixnum"
	"gopkg.in/urfave/cli.v1"
)

var (
	WidthFlag = cli.UintFlag{
		Name:  "width",
		Usage: "bit width: " + joinWidths(),
		Value: num.U256Bits,
	}

	PolicyFlag = cli.StringFlag{
		Name:  "policy",
		Usage: "overflow policy: checked, wrapping or saturating",
		Value: num.Checked.String(),
	}

	OrderFlag = cli.StringFlag{
		Name:  "order",
		Usage: "byte order for the bytes command: big or little",
		Value: num.BigEndian.String(),
	}
)

func joinWidths() string {
	var ws []string
	for _, w := range num.Widths() {
		ws = append(ws, fmt.Sprint(w))
	}
	return strings.Join(ws, ", ")
}

func newApp(out io.Writer) *cli.App {
	app := cli.NewApp()
	app.Name = "numcalc"
	app.Usage = "fixed-width unsigned integer calculator"
	app.Writer = out
	app.Flags = []cli.Flag{WidthFlag, PolicyFlag, OrderFlag}
	app.Commands = []cli.Command{
		binaryCommand("add", "a + b", num.Add),
		binaryCommand("sub", "a - b", num.Sub),
		binaryCommand("mul", "a * b", num.Mul),
		{
			Name:      "quo",
			Usage:     "a / b",
			ArgsUsage: "<a> <b>",
			Action:    quoRem(false),
		},
		{
			Name:      "rem",
			Usage:     "a % b",
			ArgsUsage: "<a> <b>",
			Action:    quoRem(true),
		},
		{
			Name:      "cmp",
			Usage:     "print -1, 0 or +1 if a is less than, equal to or greater than b",
			ArgsUsage: "<a> <b>",
			Action:    compare,
		},
		{
			Name:      "hex",
			Usage:     "print a as fixed-width hex",
			ArgsUsage: "<a>",
			Action:    hexCommand,
		},
		{
			Name:      "bytes",
			Usage:     "print the bytes of a in --order",
			ArgsUsage: "<a>",
			Action:    bytesCommand,
		},
		{
			Name:      "decode",
			Usage:     "strictly decode fixed-width hex digits",
			ArgsUsage: "<hex>",
			Action:    decodeCommand,
		},
		{
			Name:   "max",
			Usage:  "print the largest value of --width",
			Action: maxCommand,
		},
	}
	sort.Sort(cli.CommandsByName(app.Commands))
	return app
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("numcalc: ")

	if err := newApp(os.Stdout).Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

type binaryOp func(x, y num.Uint, p num.Policy) (num.Uint, error)

func binaryCommand(name, usage string, op binaryOp) cli.Command {
	return cli.Command{
		Name:      name,
		Usage:     usage,
		ArgsUsage: "<a> <b>",
		Action: func(ctx *cli.Context) error {
			p, err := num.ParsePolicy(ctx.GlobalString(PolicyFlag.Name))
			if err != nil {
				return err
			}
			a, b, err := operands2(ctx)
			if err != nil {
				return err
			}
			v, err := op(a, b, p)
			if err != nil {
				return err
			}
			return printValue(ctx, v)
		},
	}
}

func quoRem(rem bool) func(ctx *cli.Context) error {
	return func(ctx *cli.Context) error {
		a, b, err := operands2(ctx)
		if err != nil {
			return err
		}
		q, r, err := num.QuoRem(a, b)
		if err != nil {
			return err
		}
		if rem {
			return printValue(ctx, r)
		}
		return printValue(ctx, q)
	}
}

func compare(ctx *cli.Context) error {
	a, b, err := operands2(ctx)
	if err != nil {
		return err
	}
	c, err := num.Compare(a, b)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(ctx.App.Writer, c)
	return err
}

func hexCommand(ctx *cli.Context) error {
	a, err := operand1(ctx)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(ctx.App.Writer, a.Hex())
	return err
}

func bytesCommand(ctx *cli.Context) error {
	order, err := num.ParseByteOrder(ctx.GlobalString(OrderFlag.Name))
	if err != nil {
		return err
	}
	a, err := operand1(ctx)
	if err != nil {
		return err
	}
	bts := a.Bytes(order)
	parts := make([]string, len(bts))
	for i, b := range bts {
		parts[i] = fmt.Sprintf("%02x", b)
	}
	_, err = fmt.Fprintln(ctx.App.Writer, strings.Join(parts, " "))
	return err
}

func decodeCommand(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return fmt.Errorf("%s: expected 1 argument, found %d", ctx.Command.Name, ctx.NArg())
	}
	v, err := num.FromHex(ctx.GlobalUint(WidthFlag.Name), ctx.Args().Get(0))
	if err != nil {
		return err
	}
	return printValue(ctx, v)
}

func maxCommand(ctx *cli.Context) error {
	v, err := num.Max(ctx.GlobalUint(WidthFlag.Name))
	if err != nil {
		return err
	}
	return printValue(ctx, v)
}

func operand1(ctx *cli.Context) (num.Uint, error) {
	if ctx.NArg() != 1 {
		return nil, fmt.Errorf("%s: expected 1 argument, found %d", ctx.Command.Name, ctx.NArg())
	}
	return parseOperand(ctx.GlobalUint(WidthFlag.Name), ctx.Args().Get(0))
}

func operands2(ctx *cli.Context) (a, b num.Uint, err error) {
	if ctx.NArg() != 2 {
		return nil, nil, fmt.Errorf("%s: expected 2 arguments, found %d", ctx.Command.Name, ctx.NArg())
	}
	width := ctx.GlobalUint(WidthFlag.Name)
	if a, err = parseOperand(width, ctx.Args().Get(0)); err != nil {
		return nil, nil, err
	}
	if b, err = parseOperand(width, ctx.Args().Get(1)); err != nil {
		return nil, nil, err
	}
	return a, b, nil
}

// parseOperand accepts any length of hex, unlike num.FromHex, so "0x1f" works
// at every width.
func parseOperand(width uint, s string) (num.Uint, error) {
	b, ok := new(big.Int).SetString(s, 0)
	if !ok {
		return nil, fmt.Errorf("invalid operand %q", s)
	}
	return num.FromBigInt(width, b)
}

func printValue(ctx *cli.Context, v num.Uint) error {
	_, err := fmt.Fprintf(ctx.App.Writer, "%s 0x%s\n", v, v.Hex())
	return err
}
