// Package main provides the entry point of passgen, a command line tool that
// generates random passwords from a configurable set of character classes
// using crypto/rand, and estimates how long a brute force attack against the
// generated password would take.
package main
