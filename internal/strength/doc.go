// Package strength estimates how hard it is to brute force a generated password.
//
// The size of the password space is possible_chars^length and is computed with
// math/big, so it never overflows. Dividing it by an assumed attack rate gives
// a lower bound of the seconds needed to try every password, which is rendered
// as a natural language duration. Values beyond what a time.Duration can hold
// are expressed in years, or in multiples of the age of the universe.
package strength
