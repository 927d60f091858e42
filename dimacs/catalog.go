package dimacs

import (
	"path/filepath"
	"sort"
	"strings"
)

// Instance is a classic benchmark graph and its known clique number.
// For a few open instances Omega is the best known lower bound.
type Instance struct {
	Name  string
	Order int
	Omega int
}

var catalog = []Instance{
	{"brock200_1", 200, 21}, {"brock200_2", 200, 12}, {"brock200_3", 200, 15}, {"brock200_4", 200, 17},
	{"brock400_1", 400, 27}, {"brock400_2", 400, 29}, {"brock400_3", 400, 31}, {"brock400_4", 400, 33},
	{"C125.9", 125, 34}, {"C250.9", 250, 44}, {"C500.9", 500, 57},
	{"gen200_p0.9_44", 200, 44}, {"gen200_p0.9_55", 200, 55},
	{"gen400_p0.9_55", 400, 55}, {"gen400_p0.9_65", 400, 65}, {"gen400_p0.9_75", 400, 75},
	{"hamming8-4", 256, 16}, {"hamming10-4", 1024, 40},
	{"johnson16-2-4", 120, 8}, {"johnson32-2-4", 496, 16},
	{"keller4", 171, 11}, {"keller5", 776, 27},
	{"MANN_a27", 378, 126}, {"MANN_a45", 1035, 345},
	{"p_hat300-1", 300, 8}, {"p_hat300-2", 300, 25}, {"p_hat300-3", 300, 36},
	{"san200_0.7_1", 200, 30}, {"san200_0.7_2", 200, 18},
	{"san200_0.9_1", 200, 70}, {"san200_0.9_2", 200, 60}, {"san200_0.9_3", 200, 44},
	{"san400_0.5_1", 400, 13}, {"san400_0.7_1", 400, 40}, {"san400_0.7_2", 400, 30},
	{"san400_0.7_3", 400, 22}, {"san400_0.9_1", 400, 100},
}

// Lookup finds a catalog entry by instance name or file path
// ("dir/keller4.clq.gz" resolves to "keller4").
func Lookup(nameOrPath string) (Instance, bool) {
	name := filepath.Base(nameOrPath)
	name = strings.TrimSuffix(name, ".gz")
	name = strings.TrimSuffix(name, ".clq")
	name = strings.TrimSuffix(name, ".col")
	for _, in := range catalog {
		if in.Name == name {
			return in, true
		}
	}

	return Instance{}, false
}

// Suite returns the catalog instances with at most maxOrder vertices,
// ordered by size then name. maxOrder <= 0 returns all of them.
func Suite(maxOrder int) []Instance {
	out := make([]Instance, 0, len(catalog))
	for _, in := range catalog {
		if maxOrder <= 0 || in.Order <= maxOrder {
			out = append(out, in)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Order != out[j].Order {
			return out[i].Order < out[j].Order
		}
		return out[i].Name < out[j].Name
	})

	return out
}
