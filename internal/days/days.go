// Package days wires every day's parser and core algorithm into the
// puzzle registry. Each part function takes the raw input text and
// returns the single answer line for that part.
package days

import "strconv"

func itoa(n int) string { return strconv.Itoa(n) }
