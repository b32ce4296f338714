package cli

import (
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// collectParticipants merges --participant values with the environment.
// Flags win; otherwise PARTICIPANTS (comma separated) is used, then numbered
// PARTICIPANT1..N / participant1..N variables in numeric order.
func collectParticipants(flags []string, environ []string) []string {
	split := func(values []string) []string {
		return lo.FlatMap(values, func(v string, _ int) []string {
			return lo.Filter(lo.Map(strings.Split(v, ","), func(p string, _ int) string {
				return strings.TrimSpace(p)
			}), func(p string, _ int) bool { return p != "" })
		})
	}

	if len(flags) > 0 {
		return split(flags)
	}

	env := lo.Associate(environ, func(kv string) (string, string) {
		k, v, _ := strings.Cut(kv, "=")
		return k, v
	})
	if list, ok := env["PARTICIPANTS"]; ok && strings.TrimSpace(list) != "" {
		return split([]string{list})
	}

	// PARTICIPANT3 wins over participant3
	byNumber := make(map[int]string)
	for key, value := range env {
		upper := strings.ToUpper(key)
		if !strings.HasPrefix(upper, "PARTICIPANT") || (key != upper && key != strings.ToLower(key)) {
			continue
		}
		n, err := strconv.Atoi(strings.TrimPrefix(upper, "PARTICIPANT"))
		if err != nil || n < 1 || strings.TrimSpace(value) == "" {
			continue
		}
		if _, taken := byNumber[n]; taken && key != upper {
			continue
		}
		byNumber[n] = strings.TrimSpace(value)
	}

	numbers := lo.Keys(byNumber)
	sort.Ints(numbers)
	return lo.Map(numbers, func(n int, _ int) string { return byNumber[n] })
}

func participantsFromEnv(flags []string) []string {
	return collectParticipants(flags, os.Environ())
}
