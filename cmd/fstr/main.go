// fstr CLI - renders a placeholder template with typed positional arguments.
package main

import (
	"fmt"
	"math/big"
	"os"
	"strconv"
	"strings"

	"github.com/fstr-go/fstr"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	argsFile  string
	noNewline bool
)

var rootCmd = &cobra.Command{
	Use:   "fstr TEMPLATE [ARG...]",
	Short: "Render a placeholder template with typed arguments",
	Long: `Render TEMPLATE with typed positional arguments.

Each ARG is kind:value, where kind is one of int, uint, int64, uint64,
float, bigfloat, char, or str. A bare ARG without a kind prefix is a
string. Placeholder {n} refers to the n-th argument, counting arguments
loaded from --args-file first.

Examples:
  fstr '{0}: {1:+05}' str:offset int:-3
  fstr '{0:x} = {1:.3}' uint:255 float:3.14159
  fstr --args-file args.yaml '{0} {1}'`,
	Args:          cobra.MinimumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		session := fstr.Fprint(cmd.OutOrStdout(), args[0])
		if argsFile != "" {
			specs, err := loadArgsFile(argsFile)
			if err != nil {
				return err
			}
			for _, sp := range specs {
				a, err := parseArg(sp.Kind, sp.Value)
				if err != nil {
					return fmt.Errorf("%s: %w", argsFile, err)
				}
				session.Insert(a)
			}
		}
		for _, raw := range args[1:] {
			kind, value, ok := strings.Cut(raw, ":")
			if !ok {
				kind, value = "str", raw
			}
			a, err := parseArg(kind, value)
			if err != nil {
				return err
			}
			session.Insert(a)
		}
		if err := session.Flush(); err != nil {
			return err
		}
		if !noNewline {
			fmt.Fprintln(cmd.OutOrStdout())
		}
		return nil
	},
}

// argSpec is one typed argument in an --args-file document.
type argSpec struct {
	Kind  string `yaml:"kind"`
	Value string `yaml:"value"`
}

func loadArgsFile(path string) ([]argSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var specs []argSpec
	if err := yaml.Unmarshal(data, &specs); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return specs, nil
}

func parseArg(kind, value string) (fstr.Arg, error) {
	switch kind {
	case "int":
		v, err := strconv.Atoi(value)
		if err != nil {
			return fstr.Arg{}, fmt.Errorf("bad int %q", value)
		}
		return fstr.Int(v), nil
	case "uint":
		v, err := strconv.ParseUint(value, 10, 64)
		if err != nil {
			return fstr.Arg{}, fmt.Errorf("bad uint %q", value)
		}
		return fstr.Uint(uint(v)), nil
	case "int64":
		v, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fstr.Arg{}, fmt.Errorf("bad int64 %q", value)
		}
		return fstr.Int64(v), nil
	case "uint64":
		v, err := strconv.ParseUint(value, 10, 64)
		if err != nil {
			return fstr.Arg{}, fmt.Errorf("bad uint64 %q", value)
		}
		return fstr.Uint64(v), nil
	case "float":
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fstr.Arg{}, fmt.Errorf("bad float %q", value)
		}
		return fstr.Float(v), nil
	case "bigfloat":
		v, _, err := big.ParseFloat(value, 10, 113, big.ToNearestEven)
		if err != nil {
			return fstr.Arg{}, fmt.Errorf("bad bigfloat %q", value)
		}
		return fstr.BigFloat(v), nil
	case "char":
		if len(value) != 1 {
			return fstr.Arg{}, fmt.Errorf("char takes exactly one byte, got %q", value)
		}
		return fstr.Char(value[0]), nil
	case "str":
		return fstr.Str(value), nil
	}
	return fstr.Arg{}, fmt.Errorf("unknown argument kind %q", kind)
}

func init() {
	rootCmd.Flags().StringVar(&argsFile, "args-file", "", "YAML file with [{kind, value}] arguments, inserted before positional ones")
	rootCmd.Flags().BoolVarP(&noNewline, "no-newline", "n", false, "do not append a trailing newline")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "fstr:", err)
		os.Exit(1)
	}
}
