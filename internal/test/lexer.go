package test

import (
	"math/rand"
	"strings"
)

const validTokens = "x;y;total;snake_case_name;_;0;7;42;1234567890;+;-;*;/;(;);="

func GetRandomTokens(size int) string {
	return GetRandomTokensWithSep(size, " ")
}

func GetRandomTokensWithSep(size int, sep string) string {
	valid := strings.Split(validTokens, ";")

	var toks []string
	for len(toks) < size {
		toks = append(toks, valid[rand.Intn(len(valid))])
	}

	return strings.Join(toks, sep)
}

// GetRandomProgram returns size statements that assign and read back
// variables, separated by newlines. Every variable is assigned before it
// is read and no statement divides by zero.
func GetRandomProgram(size int) string {
	names := []string{"a", "b", "c", "total", "snake_case"}
	ops := []string{"+", "-", "*", "/"}

	stmts := []string{names[0] + " = 1"}
	for len(stmts) < size {
		name := names[rand.Intn(len(names))]
		stmts = append(stmts, name+" = ("+names[0]+" "+ops[rand.Intn(len(ops))]+" 3) + 1")
	}

	return strings.Join(stmts, "\n")
}
