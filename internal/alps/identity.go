package alps

import (
	"os"
	"strconv"
	"strings"
)

// DefaultApidVar is the variable aprun sets in every launched process
const DefaultApidVar = "ALPS_APP_ID"

// LookupFunc reads an environment variable. os.LookupEnv satisfies it.
type LookupFunc func(key string) (string, bool)

// ResolveIdentity reads the ALPS application id from the variable name.
// Leading decimal digits are used and anything after them is ignored.
// Returns 0 if the variable is unset, empty, not numeric, or overflows uint64.
func ResolveIdentity(lookup LookupFunc, name string) Apid {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	if name == "" {
		name = DefaultApidVar
	}
	val, ok := lookup(name)
	if !ok {
		return 0
	}
	digits := leadingDigits(strings.TrimLeft(val, " \t"))
	if digits == "" {
		return 0
	}
	n, err := strconv.ParseUint(digits, 10, 64)
	if err != nil {
		// Only range errors are possible here
		return 0
	}
	return Apid(n)
}

func leadingDigits(s string) string {
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	return s[:end]
}
