// Command argdump parses its arguments and prints what every argument
// received. It doubles as a usage example for the argparse package.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/isobit/argparse"
	argslog "github.com/isobit/argparse/slog"
)

func main() {
	if err := run(os.Stdout, argparse.OSArgs()); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("error: %s", err))
		os.Exit(1)
	}
}

func run(w io.Writer, args []string) error {
	l := argparse.NewList()

	verbose, err := argparse.NewBuilder(argparse.Flag).
		SetShortName('v').
		SetLongName("verbose").
		Build()
	if err != nil {
		return err
	}
	output, err := argparse.NewArgument('o', "output", argparse.Value)
	if err != nil {
		return err
	}
	include, err := argparse.NewArgument('I', "include", argparse.ValueList)
	if err != nil {
		return err
	}
	l.Append(verbose).Append(output).Append(include)

	count, err := argparse.NewValueArgument(argparse.Both('n', "count"), argparse.Once(argparse.Integer()))
	if err != nil {
		return err
	}
	isEmail, err := argparse.Validated(nil, "email")
	if err != nil {
		return err
	}
	email, err := argparse.NewValueArgument(argparse.Long("email"), isEmail)
	if err != nil {
		return err
	}
	if err := l.Register(count); err != nil {
		return err
	}
	if err := l.Register(email); err != nil {
		return err
	}
	logOpts := &argslog.Options{}
	if err := logOpts.Register(l); err != nil {
		return err
	}

	parseErr := l.Parse(args)
	l.Release()
	if parseErr != nil {
		return parseErr
	}

	logOpts.Configure()
	slog.Debug("parsed arguments", "tokens", len(args))

	on, _ := verbose.GetFlag()
	fmt.Fprintf(w, "verbose:  %t\n", on)
	if v, err := output.GetValue(); err == nil {
		fmt.Fprintf(w, "output:   %s\n", v)
	}
	if vs, err := include.GetValues(); err == nil {
		fmt.Fprintf(w, "include:  %s\n", strings.Join(vs, ", "))
	}
	if n, err := count.FirstValue(); err == nil {
		fmt.Fprintf(w, "count:    %d\n", n)
	}
	if vs, err := email.Values(); err == nil && len(vs) > 0 {
		fmt.Fprintf(w, "email:    %s\n", strings.Join(vs, ", "))
	}
	if d := l.DanglingValues(); len(d) > 0 {
		fmt.Fprintf(w, "dangling: %s\n", strings.Join(d, " "))
	}
	return nil
}
