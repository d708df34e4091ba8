package catalog

import (
	"strconv"
	"strings"
)

// Format fills in the count and positional arguments of a translated string,
// e.g. Format("%n boxes on %1", 3, "cloud") == "3 boxes on cloud"
func Format(s string, n int, args ...string) string {
	return Args(Count(s, n), args...)
}

// Count replaces %n and %Ln with n
func Count(s string, n int) string {
	count := strconv.Itoa(n)
	return strings.NewReplacer("%Ln", count, "%n", count).Replace(s)
}

type placeholder struct {
	start  int
	end    int
	number int
}

// placeholders finds %1 to %99, optionally written as %L1
func placeholders(s string) []placeholder {
	var result []placeholder
	for i := 0; i < len(s); i++ {
		if s[i] != '%' {
			continue
		}
		j := i + 1
		if j < len(s) && s[j] == 'L' {
			j++
		}
		digits := j
		for j < len(s) && j-digits < 2 && s[j] >= '0' && s[j] <= '9' {
			j++
		}
		if j == digits {
			continue
		}
		number, _ := strconv.Atoi(s[digits:j])
		if number == 0 {
			continue
		}
		result = append(result, placeholder{start: i, end: j, number: number})
		i = j - 1
	}
	return result
}

// Arg replaces every occurrence of the lowest numbered placeholder in s with
// value. Strings without placeholders are returned unchanged.
func Arg(s string, value string) string {
	found := placeholders(s)
	if len(found) == 0 {
		return s
	}

	lowest := found[0].number
	for _, p := range found {
		if p.number < lowest {
			lowest = p.number
		}
	}

	var sb strings.Builder
	last := 0
	for _, p := range found {
		if p.number != lowest {
			continue
		}
		sb.WriteString(s[last:p.start])
		sb.WriteString(value)
		last = p.end
	}
	sb.WriteString(s[last:])
	return sb.String()
}

// Args applies Arg once per value, so the values fill the placeholders in
// ascending order of their numbers
func Args(s string, values ...string) string {
	for _, value := range values {
		s = Arg(s, value)
	}
	return s
}
