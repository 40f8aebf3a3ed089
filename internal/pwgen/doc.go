// Package pwgen generates cryptographically secure random passwords.
// Characters are drawn independently and uniformly from a character set using
// rejection sampling over bytes read from crypto/rand, so no character is
// favoured by modulo bias.
package pwgen
