// Package slic is a declarative command-line argument parser.
//
// A program describes its interface once, as an ordered list of specs bound
// to fields of a result struct:
//
//	type options struct {
//		Verbose bool
//		Count   int
//		Name    string
//		Rest    slic.ArgSpan
//	}
//
//	var decls = slic.Declare[options](
//		slic.Option("-v", func(o *options) *bool { return &o.Verbose }).Alt("--verbose"),
//		slic.Option("-c", func(o *options) *int { return &o.Count }).Alt("--count"),
//		slic.Arg("name", func(o *options) *string { return &o.Name }),
//		slic.VarArgs(func(o *options) *slic.ArgSpan { return &o.Rest }),
//	)
//
// A Parser then scans os.Args in a single pass, coerces each value into the
// bound field's type and reports the first failure as a *ParseError:
//
//	p := slic.NewParser(decls, os.Args)
//	if err := p.Parse(); err != nil {
//		p.PrintError(err)
//		os.Exit(2)
//	}
//
// Options accept "-x value", "-x=value", "--long value" and "--long=value".
// Only options bound to a bool may appear bare. The token "--" hands every
// following token to the VarArgs field untouched.
//
// The package never exits the process; the exit status is the caller's choice.
package slic
