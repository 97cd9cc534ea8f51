package menu

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Match resolves query to an option index. The query may be the 1-based
// position shown in the menu, a label compared case-insensitively, or a fuzzy
// fragment of exactly one best-ranked label.
func Match(cfg Config, query string) (int, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return -1, fmt.Errorf("empty entry")
	}
	if n, err := strconv.Atoi(query); err == nil {
		if n < 1 || n > len(cfg.Options) {
			return -1, fmt.Errorf("entry %d out of range 1-%d", n, len(cfg.Options))
		}
		return n - 1, nil
	}
	labels := cfg.Labels()
	for i, label := range labels {
		if strings.EqualFold(label, query) {
			return i, nil
		}
	}
	ranks := fuzzy.RankFindNormalizedFold(query, labels)
	if len(ranks) == 0 {
		return -1, fmt.Errorf("no entry matches %q", query)
	}
	sort.Sort(ranks)
	if len(ranks) > 1 && ranks[0].Distance == ranks[1].Distance {
		return -1, fmt.Errorf("%q is ambiguous: %q, %q", query, ranks[0].Target, ranks[1].Target)
	}
	return ranks[0].OriginalIndex, nil
}
