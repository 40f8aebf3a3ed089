// Package charset assembles the set of characters a password is drawn from.
// It knows four fixed character classes: upper case letters, lower case letters,
// digits and symbols. A Selection picks any combination of them.
package charset
