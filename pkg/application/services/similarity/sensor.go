package similarity

import (
	"slices"
	"strings"

	"github.com/vsinha/mpn/pkg/domain/entities"
)

type sensorCalculator struct{}

func (sensorCalculator) Category() entities.Category { return entities.CategorySensor }
func (sensorCalculator) Symmetric() bool             { return true }

func (sensorCalculator) Compare(required, candidate entities.ComponentRecord) entities.CompatibilityVerdict {
	var c checkList

	ma, okA := required.Attr(entities.AttrMeasures)
	mb, okB := candidate.Attr(entities.AttrMeasures)
	switch {
	case !okA || !okB:
		c.missing("measures", ma, okA, mb, okB)
	case sameSet(splitList(ma), splitList(mb)):
		c.pass("measures", "%s", ma)
	default:
		c.fail("measures", "%s vs %s", ma, mb)
	}

	c.footprint(required, candidate)

	ia, okA := required.Attr(entities.AttrInterface)
	ib, okB := candidate.Attr(entities.AttrInterface)
	switch {
	case !okA || !okB:
		c.missing("interface", ia, okA, ib, okB)
	default:
		if shared := intersect(splitList(ia), splitList(ib)); len(shared) > 0 {
			c.pass("interface", "shared %s", strings.Join(shared, ","))
		} else {
			c.fail("interface", "%s vs %s", ia, ib)
		}
	}
	return c.verdict()
}

func sameSet(a, b []string) bool {
	a, b = slices.Clone(a), slices.Clone(b)
	slices.Sort(a)
	slices.Sort(b)
	return slices.Equal(slices.Compact(a), slices.Compact(b))
}

// intersect returns the sorted values present in both lists
func intersect(a, b []string) []string {
	var out []string
	for _, v := range a {
		if slices.Contains(b, v) && !slices.Contains(out, v) {
			out = append(out, v)
		}
	}
	slices.Sort(out)
	return out
}
