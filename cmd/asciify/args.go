package main

import (
	"strconv"
	"strings"

	"github.com/codegangsta/cli"
)

// normalizeArgs lets flags follow the positional arguments and lets --save
// be given without a value. Flags are moved ahead of the positionals, which
// are placed after "--" so a negative width still reaches the width check.
func normalizeArgs(args []string, flags []cli.Flag) []string {
	if len(args) == 0 {
		return args
	}
	valued := valueFlags(flags)

	out := []string{args[0]}
	var positional []string
	rest := args[1:]
	for i := 0; i < len(rest); i++ {
		arg := rest[i]
		switch {
		case arg == "--":
			positional = append(positional, rest[i+1:]...)
			i = len(rest)
			continue
		case arg == "-" || !strings.HasPrefix(arg, "-") || isNumber(arg):
			positional = append(positional, arg)
			continue
		}

		name := strings.TrimLeft(arg, "-")
		if strings.Contains(name, "=") {
			out = append(out, arg)
			continue
		}
		if name == "save" || name == "s" {
			if i+1 == len(rest) || strings.HasPrefix(rest[i+1], "-") {
				out = append(out, "--save=")
				continue
			}
		}
		out = append(out, arg)
		if valued[name] && i+1 < len(rest) {
			out = append(out, rest[i+1])
			i++
		}
	}
	out = append(out, "--")
	return append(out, positional...)
}

// valueFlags returns every name, short or long, of the flags that take a
// value.
func valueFlags(flags []cli.Flag) map[string]bool {
	names := make(map[string]bool)
	for _, f := range flags {
		var name string
		switch f := f.(type) {
		case cli.StringFlag:
			name = f.Name
		case cli.Float64Flag:
			name = f.Name
		case cli.IntFlag:
			name = f.Name
		default:
			continue
		}
		for _, n := range strings.Split(name, ",") {
			names[strings.TrimSpace(n)] = true
		}
	}
	return names
}

func isNumber(s string) bool {
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}
