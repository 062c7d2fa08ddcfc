/*
Package argparse parses command-line tokens into flag, value and value list
arguments identified by a short name, a long name, or both.

# Example

	package main

	import (
		"fmt"

		"github.com/isobit/argparse"
	)

	func main() {
		debug, _ := argparse.NewArgument('d', "", argparse.Flag)
		path, _ := argparse.NewArgument('p', "path", argparse.Value)
		port, _ := argparse.NewInteger(argparse.Both('P', "port"))

		l := argparse.NewList().Append(debug).Append(path)
		if err := l.Register(port); err != nil {
			panic(err)
		}
		err := l.ParseOS()
		l.Release()
		if err != nil {
			fmt.Println(err)
			return
		}

		on, _ := debug.GetFlag()
		p, _ := path.GetValue()
		n, _ := port.FirstValue()
		fmt.Println(on, p, n, l.DanglingValues())
	}

# Token Grammar

A token of exactly two characters, a dash and a letter, is a short option
("-d"). A token of more than two characters starting with two dashes and a
letter is a long option ("--path"). Every other token, including "--", "-1"
and "-", is a dangling value and is collected in order. Option tokens that
match no argument are an error. There is no "--name=value" syntax and short
options cannot be combined.

# Arguments

Argument has a fixed Kind: a Flag takes no value, a Value takes the next
token and a ValueList takes the next token every time it occurs. Setting a
Flag or a Value twice is an error. Argument values belong to the List they
are appended to and are read with GetFlag, GetValue and GetValues.

ValueArgument produces typed values through a Handler, which may read any
number of tokens from the Cursor. Integer, SignedInteger, String and
Validated are ready-made handlers, and Once makes a handler reject repeated
occurrences. A ValueArgument stays owned by the caller: Register leases it
to a List and its values are unreadable (ErrLeased) until the List is
released.

Appended arguments are looked up before registered ones, so a registered
argument with the same name as an appended one is never used.

# Struct Binding

RegisterStruct registers an argument per exported field of a struct
pointer, named after the kebab-cased field name:

	type Config struct {
		Verbose bool     `args:"short=v"`
		Output  string   `args:"name=out,short=o"`
		Tags    []string `args:"append"`
		Secret  string   `args:"-"`
	}
*/
package argparse
