package calc

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"gopkg.in/yaml.v3"
)

// FormatValue prints integral values without a fractional part and
// everything else in the shortest form that round-trips.
func FormatValue(v Value) string {
	if v == math.Trunc(v) && math.Abs(v) < 1e15 {
		return strconv.FormatFloat(v, 'f', 0, 64)
	}

	return strconv.FormatFloat(v, 'g', -1, 64)
}

type report struct {
	Statements []string         `yaml:"statements,omitempty"`
	Result     *Value           `yaml:"result,omitempty"`
	Table      map[string]Value `yaml:"table,omitempty"`
}

// WriteResult renders res in the view selected by cfg. EmitIR is not a
// view of a Result, use Compile for it.
func WriteResult(w io.Writer, res *Result, cfg *Config) error {
	if cfg.Emit == EmitIR {
		return fmt.Errorf("emit mode %q cannot render an evaluated result", cfg.Emit)
	}

	if cfg.Format == FormatYAML {
		return writeYAML(w, res, cfg.Emit)
	}

	return writeText(w, res, cfg.Emit)
}

func writeText(w io.Writer, res *Result, mode EmitMode) error {
	var err error
	switch mode {
	case EmitAST:
		for _, stmt := range res.Program.Statements {
			if _, err = fmt.Fprintln(w, stmt); err != nil {
				return err
			}
		}
	case EmitTable:
		for _, name := range res.Table.Names() {
			v, _ := res.Table.Get(name)
			if _, err = fmt.Fprintf(w, "%s = %s\n", name, FormatValue(v)); err != nil {
				return err
			}
		}
	default:
		result := "none"
		if res.HasValue {
			result = FormatValue(res.Value)
		}

		_, err = fmt.Fprintf(w, "AST: %s\nResult: %s\nSymbol Table: %s\n", res.Program, result, res.Table)
	}

	return err
}

func writeYAML(w io.Writer, res *Result, mode EmitMode) error {
	var out report

	if mode == EmitAST || mode == EmitResult {
		for _, stmt := range res.Program.Statements {
			out.Statements = append(out.Statements, stmt.String())
		}
	}

	if mode == EmitResult && res.HasValue {
		v := res.Value
		out.Result = &v
	}

	if mode == EmitTable || mode == EmitResult {
		out.Table = res.Table.Copy().Entries
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(out); err != nil {
		return err
	}

	return enc.Close()
}
