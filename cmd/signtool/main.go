// Command signtool canonicalizes and signs a flat JSON request the way the
// server does, for debugging client integrations.
//
// Usage:
//
//	echo '{"username":"admin","password":"secret"}' | signtool
//	signtool -f request.json -verify
//	signtool -stamp -token eyJ... -json < request.json
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"game-admin/internal/signature"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "signtool: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	fs := flag.NewFlagSet("signtool", flag.ContinueOnError)
	file := fs.String("f", "", "read the request from this file instead of stdin")
	verify := fs.Bool("verify", false, "check the request's existing sign and validate it")
	login := fs.Bool("login", false, "validate as a login request (no token required)")
	stamp := fs.Bool("stamp", false, "set timestamp to the current time in milliseconds")
	token := fs.String("token", "", "set the token field")
	asJSON := fs.Bool("json", false, "print the signed request as JSON")
	if err := fs.Parse(args); err != nil {
		return err
	}

	in := stdin
	if *file != "" {
		f, err := os.Open(*file)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	body, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("read request: %w", err)
	}
	req, err := signature.ParseRequest(body)
	if err != nil {
		return err
	}
	if *verify {
		verdict := signature.ValidateRequest(req, *login)
		fmt.Fprintf(stdout, "canonical: %s\n", signature.Canonicalize(req))
		fmt.Fprintf(stdout, "expected:  %s\n", signature.Sign(req))
		fmt.Fprintf(stdout, "verdict:   %s (%d)\n", verdict, verdict.Code())
		if !verdict.OK() {
			return fmt.Errorf("request rejected: %s", verdict.Reason())
		}
		return nil
	}

	if req == nil {
		req = signature.Request{}
	}
	if *stamp {
		req[signature.FieldTimestamp] = json.Number(strconv.FormatInt(time.Now().UnixMilli(), 10))
	}
	if *token != "" {
		req[signature.FieldToken] = *token
	}
	delete(req, signature.FieldSign)

	signed := signature.SignRequest(req)
	if *asJSON {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(signed)
	}

	fmt.Fprintf(stdout, "canonical: %s\n", signature.Canonicalize(req))
	fmt.Fprintf(stdout, "sign:      %s\n", signed[signature.FieldSign])
	return nil
}
