package entities

import (
	"fmt"
	"math/big"
	"slices"
	"strings"
)

// qualifiers in ascending order; the empty qualifier is a release.
var qualifiers = []string{"alpha", "beta", "milestone", "rc", "snapshot", "", "sp"} //nolint:gochecknoglobals // fixed ordering

var qualifierAliases = map[string]string{ //nolint:gochecknoglobals // fixed aliases
	"ga":      "",
	"final":   "",
	"release": "",
	"cr":      "rc",
}

var releaseVersionIndex = fmt.Sprint(slices.Index(qualifiers, "")) //nolint:gochecknoglobals // derived constant

type itemKind int

const (
	intKind itemKind = iota
	stringKind
	listKind
)

// versionItem is one parsed segment. compareTo accepts a nil item, which
// stands for a missing segment on the other side.
type versionItem interface {
	kind() itemKind
	isNull() bool
	compareTo(other versionItem) int
}

type intItem struct {
	value *big.Int
}

func (it intItem) kind() itemKind { return intKind }

func (it intItem) isNull() bool { return it.value.Sign() == 0 }

func (it intItem) compareTo(other versionItem) int {
	if other == nil {
		if it.value.Sign() == 0 {
			return 0
		}
		return 1
	}
	switch other.kind() {
	case intKind:
		return it.value.Cmp(other.(intItem).value)
	default:
		// 1.1 > 1-sp and 1.1 > 1.sp
		return 1
	}
}

type stringItem struct {
	value string
}

func newStringItem(value string, followedByDigit bool) stringItem {
	if followedByDigit && len(value) == 1 {
		switch value[0] {
		case 'a':
			value = "alpha"
		case 'b':
			value = "beta"
		case 'm':
			value = "milestone"
		}
	}
	if alias, ok := qualifierAliases[value]; ok {
		value = alias
	}
	return stringItem{value: value}
}

func (it stringItem) kind() itemKind { return stringKind }

func (it stringItem) isNull() bool { return it.value == "" }

func (it stringItem) compareTo(other versionItem) int {
	if other == nil {
		// 1-rc < 1, 1-ga == 1, 1-sp > 1
		return strings.Compare(comparableQualifier(it.value), releaseVersionIndex)
	}
	switch other.kind() {
	case stringKind:
		return strings.Compare(comparableQualifier(it.value), comparableQualifier(other.(stringItem).value))
	default:
		return -1
	}
}

// comparableQualifier maps known qualifiers to their index and sorts unknown
// ones after all known ones, lexically among themselves.
func comparableQualifier(qualifier string) string {
	if i := slices.Index(qualifiers, qualifier); i >= 0 {
		return fmt.Sprint(i)
	}
	return fmt.Sprintf("%d-%s", len(qualifiers), qualifier)
}

type listItem struct {
	items []versionItem
}

func (it *listItem) kind() itemKind { return listKind }

func (it *listItem) isNull() bool { return len(it.items) == 0 }

func (it *listItem) add(item versionItem) {
	it.items = append(it.items, item)
}

// normalize drops trailing null items, stopping at the first non-null
// item that is not a sub-list.
func (it *listItem) normalize() {
	for i := len(it.items) - 1; i >= 0; i-- {
		last := it.items[i]
		if last.isNull() {
			it.items = append(it.items[:i], it.items[i+1:]...)
		} else if last.kind() != listKind {
			break
		}
	}
}

func (it *listItem) compareTo(other versionItem) int {
	if other == nil {
		if len(it.items) == 0 {
			return 0
		}
		return it.items[0].compareTo(nil)
	}
	switch other.kind() {
	case intKind:
		return -1
	case stringKind:
		return 1
	}

	right := other.(*listItem)
	for i := range max(len(it.items), len(right.items)) {
		var l, r versionItem
		if i < len(it.items) {
			l = it.items[i]
		}
		if i < len(right.items) {
			r = right.items[i]
		}

		var result int
		switch {
		case l == nil && r == nil:
			result = 0
		case l == nil:
			result = -r.compareTo(nil)
		default:
			result = l.compareTo(r)
		}
		if result != 0 {
			return result
		}
	}
	return 0
}

// ComparableVersion orders Maven version strings the way Maven itself does:
// segment-aware, with numeric segments compared as numbers and qualifiers
// following alpha < beta < milestone < rc < snapshot < release < sp.
type ComparableVersion struct {
	raw   string
	items *listItem
}

// NewComparableVersion parses a version string.
func NewComparableVersion(version string) ComparableVersion {
	return ComparableVersion{raw: version, items: parseVersion(version)}
}

// String returns the version as given.
func (v ComparableVersion) String() string {
	return v.raw
}

// Compare returns -1, 0 or +1.
func (v ComparableVersion) Compare(other ComparableVersion) int {
	return sign(v.items.compareTo(other.items))
}

// CompareVersions compares two version strings with ComparableVersion rules.
func CompareVersions(a, b string) int {
	return NewComparableVersion(a).Compare(NewComparableVersion(b))
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}

func parseVersion(version string) *listItem {
	version = strings.ToLower(version)

	root := &listItem{}
	list := root
	stack := []*listItem{root}
	openSubList := func() {
		sub := &listItem{}
		list.add(sub)
		list = sub
		stack = append(stack, sub)
	}

	isDigit := false
	start := 0
	for i := 0; i < len(version); i++ {
		c := version[i]
		switch {
		case c == '.':
			if i == start {
				list.add(intItem{value: big.NewInt(0)})
			} else {
				list.add(parseItem(isDigit, version[start:i]))
			}
			start = i + 1
		case c == '-':
			if i == start {
				list.add(intItem{value: big.NewInt(0)})
			} else {
				list.add(parseItem(isDigit, version[start:i]))
			}
			start = i + 1
			openSubList()
		case c >= '0' && c <= '9':
			if !isDigit && i > start {
				// 1.0.0.X1 == 1.0.0-X1
				if !list.isNull() {
					openSubList()
				}
				list.add(newStringItem(version[start:i], true))
				start = i
				openSubList()
			}
			isDigit = true
		default:
			if isDigit && i > start {
				list.add(parseItem(true, version[start:i]))
				start = i
				openSubList()
			}
			isDigit = false
		}
	}
	if len(version) > start {
		if !isDigit && !list.isNull() {
			openSubList()
		}
		list.add(parseItem(isDigit, version[start:]))
	}

	for i := len(stack) - 1; i >= 0; i-- {
		stack[i].normalize()
	}
	return root
}

func parseItem(isDigit bool, buf string) versionItem {
	if isDigit {
		value, ok := new(big.Int).SetString(buf, 10)
		if ok {
			return intItem{value: value}
		}
	}
	return newStringItem(buf, false)
}
