package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"gdgoc.backend/pkg/crypto"
)

var (
	generateHashFn = crypto.HashPassword
	stdin          io.Reader = os.Stdin
	stdout         io.Writer = os.Stdout
)

// resolvePassword takes the first argument, or the first line of in
func resolvePassword(args []string, in io.Reader) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	password := strings.TrimRight(line, "\r\n")
	if password == "" {
		return "", fmt.Errorf("usage: genhash <password> (or pipe it on stdin)")
	}
	return password, nil
}

func run(args []string) error {
	password, err := resolvePassword(args, stdin)
	if err != nil {
		return err
	}
	hash, err := generateHashFn(password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	_, _ = fmt.Fprintln(stdout, hash)
	return nil
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		log.Fatal(err)
	}
}
