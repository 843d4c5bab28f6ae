// Command taylor expands symbolic expressions into truncated power
// series from the command line.
//
// Expressions are given as JSON trees (the format of taylor.ToJSON),
// either as the first argument or on stdin:
//
//	echo '{"type":"func","name":"sin","arg":{"type":"sym","name":"x"}}' |
//	    taylor expand --spec x,0,5
//
// Expansion stages are var,point,order triples; points accept integer,
// fraction and decimal literals plus "inf" and "-inf".
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/shopspring/decimal"
	"github.com/urfave/cli/v3"

	"github.com/symkit/taylor"
)

func main() {
	root := &cli.Command{
		Name:     "taylor",
		Usage:    "truncated power-series expansion of symbolic expressions",
		Commands: []*cli.Command{expandCommand(), limitCommand(), evalCommand()},
	}
	if err := root.Run(context.Background(), os.Args); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func expandCommand() *cli.Command {
	return &cli.Command{
		Name:      "expand",
		Usage:     "expand an expression into a truncated series",
		ArgsUsage: "[expr-json]",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:     "spec",
				Aliases:  []string{"s"},
				Usage:    "expansion stage as var,point,order (repeatable; outer variable first)",
				Required: true,
			},
			&cli.BoolFlag{
				Name:  "remainder",
				Usage: "append a big-O remainder term (single stage only)",
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "print the result as a JSON tree",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			e, err := readExpr(cmd)
			if err != nil {
				return err
			}
			specs, err := parseSpecs(cmd.StringSlice("spec"))
			if err != nil {
				return err
			}
			var result taylor.Expr
			if cmd.Bool("remainder") {
				if len(specs) != 1 {
					return fmt.Errorf("--remainder needs exactly one --spec")
				}
				result, err = taylor.TaylorWithRemainder(e, specs[0].Var, specs[0].Point, specs[0].Order)
			} else {
				result, err = taylor.TaylorExpand(e, specs...)
			}
			if err != nil {
				return err
			}
			return printExpr(cmd, result)
		},
	}
}

func limitCommand() *cli.Command {
	return &cli.Command{
		Name:      "limit",
		Usage:     "compute the limit of an expression at a point",
		ArgsUsage: "[expr-json]",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "var", Aliases: []string{"v"}, Usage: "limit variable", Required: true},
			&cli.StringFlag{Name: "at", Aliases: []string{"a"}, Usage: "limit point", Value: "0"},
			&cli.BoolFlag{Name: "json", Usage: "print the result as a JSON tree"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			e, err := readExpr(cmd)
			if err != nil {
				return err
			}
			point, err := parsePoint(cmd.String("at"))
			if err != nil {
				return err
			}
			res := taylor.Limit(e, cmd.String("var"), point)
			if !res.Success {
				return fmt.Errorf("%s", res.Error)
			}
			return printExpr(cmd, res.Value)
		},
	}
}

func evalCommand() *cli.Command {
	return &cli.Command{
		Name:      "eval",
		Usage:     "evaluate an expression numerically, optionally expanding it first",
		ArgsUsage: "[expr-json]",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:    "bind",
				Aliases: []string{"b"},
				Usage:   "variable binding as name=value (repeatable)",
			},
			&cli.StringSliceFlag{
				Name:    "spec",
				Aliases: []string{"s"},
				Usage:   "expand through var,point,order stages before evaluating",
			},
			&cli.IntFlag{
				Name:  "prec",
				Usage: "decimal digits of working precision",
				Value: 28,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			e, err := readExpr(cmd)
			if err != nil {
				return err
			}
			if raw := cmd.StringSlice("spec"); len(raw) > 0 {
				specs, err := parseSpecs(raw)
				if err != nil {
					return err
				}
				e, err = taylor.TaylorExpand(e, specs...)
				if err != nil {
					return err
				}
			}
			bindings := map[string]decimal.Decimal{}
			for _, b := range cmd.StringSlice("bind") {
				name, val, ok := strings.Cut(b, "=")
				if !ok {
					return fmt.Errorf("invalid binding %q, want name=value", b)
				}
				d, err := decimal.NewFromString(val)
				if err != nil {
					return fmt.Errorf("invalid binding %q: %w", b, err)
				}
				bindings[name] = d
			}
			v, err := taylor.EvalDecimal(e, bindings, int32(int(cmd.Int("prec"))))
			if err != nil {
				return err
			}
			fmt.Println(v.String())
			return nil
		},
	}
}

// readExpr reads the JSON expression from the first argument, or from
// stdin when no argument (or "-") is given.
func readExpr(cmd *cli.Command) (taylor.Expr, error) {
	src := cmd.Args().First()
	var data []byte
	if src == "" || src == "-" {
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		data = b
	} else {
		data = []byte(src)
	}
	var m map[string]interface{}
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing expression JSON: %w", err)
	}
	return taylor.FromJSON(m)
}

func parseSpecs(raw []string) ([]taylor.ExpansionSpec, error) {
	specs := make([]taylor.ExpansionSpec, 0, len(raw))
	for _, s := range raw {
		parts := strings.Split(s, ",")
		if len(parts) != 3 {
			return nil, fmt.Errorf("invalid spec %q, want var,point,order", s)
		}
		point, err := parsePoint(strings.TrimSpace(parts[1]))
		if err != nil {
			return nil, fmt.Errorf("invalid spec %q: %w", s, err)
		}
		order, err := strconv.Atoi(strings.TrimSpace(parts[2]))
		if err != nil {
			return nil, fmt.Errorf("invalid spec %q: order must be an integer", s)
		}
		specs = append(specs, taylor.ExpansionSpec{
			Var:   strings.TrimSpace(parts[0]),
			Point: point,
			Order: order,
		})
	}
	return specs, nil
}

func parsePoint(s string) (taylor.Expr, error) {
	switch s {
	case "inf", "+inf":
		return taylor.PosInf(), nil
	case "-inf":
		return taylor.NegInf(), nil
	}
	n, err := taylor.ParseNum(s)
	if err != nil {
		return nil, err
	}
	return n, nil
}

func printExpr(cmd *cli.Command, e taylor.Expr) error {
	if cmd.Bool("json") {
		out, err := taylor.ToJSON(e)
		if err != nil {
			return err
		}
		fmt.Println(out)
		return nil
	}
	color.New(color.FgCyan).Println(e.String())
	return nil
}
