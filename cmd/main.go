package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"go.calc.dev/pkg"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	logger := log.New(stderr, "calc: ", 0)

	flags := flag.NewFlagSet("calc", flag.ContinueOnError)
	flags.SetOutput(stderr)
	configPath := flags.String("config", "", "path to a YAML config file")
	emit := flags.String("emit", "", "what to print: result, ast, table or ir")
	format := flags.String("format", "", "output format: text or yaml")
	verbose := flags.Bool("v", false, "log the value of every statement")
	expr := flags.String("e", "", "program text to run instead of a file")
	flags.Usage = func() {
		fmt.Fprintln(stderr, "Usage:")
		fmt.Fprintln(stderr, "  calc [flags] [file]")
		fmt.Fprintln(stderr, "  calc [flags] -e 'x=1 x+2'")
		flags.PrintDefaults()
	}

	if err := flags.Parse(args); err != nil {
		return 2
	}

	cfg := calc.DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = calc.LoadConfig(*configPath); err != nil {
			logger.Println(err)
			return 2
		}
	}

	if *emit != "" {
		cfg.Emit = calc.EmitMode(*emit)
	}
	if *format != "" {
		cfg.Format = calc.OutputFormat(*format)
	}
	if *verbose {
		cfg.Verbose = true
	}

	if err := cfg.Validate(); err != nil {
		logger.Println(err)
		return 2
	}

	input, err := readInput(flags.Args(), *expr, stdin)
	if err != nil {
		logger.Println(err)
		return 1
	}

	if cfg.Emit == calc.EmitIR {
		out, err := calc.Compile(input)
		if err != nil {
			printError(logger, err)
			return 1
		}

		fmt.Fprint(stdout, out)
		return 0
	}

	res, err := calc.Run(input)
	if err != nil {
		printError(logger, err)
		return 1
	}

	if cfg.Verbose {
		for i, stmt := range res.Program.Statements {
			logger.Printf("%s => %s", stmt, calc.FormatValue(res.Values[i]))
		}
	}

	if err := calc.WriteResult(stdout, res, cfg); err != nil {
		logger.Println(err)
		return 1
	}

	return 0
}

func readInput(args []string, expr string, stdin io.Reader) (string, error) {
	switch {
	case expr != "" && len(args) != 0:
		return "", errors.New("-e and a file argument are mutually exclusive")
	case expr != "":
		return expr, nil
	case len(args) > 1:
		return "", errors.New("only one input file is accepted")
	case len(args) == 1:
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", err
		}

		return string(data), nil
	default:
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", err
		}

		return string(data), nil
	}
}

func printError(logger *log.Logger, err error) {
	var (
		lexErr    *calc.LexError
		syntaxErr *calc.SyntaxError
		nameErr   *calc.NameError
		arithErr  *calc.ArithmeticError
	)

	switch {
	case errors.As(err, &lexErr):
		logger.Println("Lexical error:", lexErr)
	case errors.As(err, &syntaxErr):
		logger.Println("Syntax error:", syntaxErr)
	case errors.As(err, &nameErr):
		logger.Println("Name error:", nameErr)
	case errors.As(err, &arithErr):
		logger.Println("Arithmetic error:", arithErr)
	default:
		logger.Println(err)
	}
}
