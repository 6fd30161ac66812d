package valueobject

import (
	"strings"
)

// TagSet - упорядоченное множество нормализованных тегов.
// Порядок - порядок первого появления, дубли отбрасываются.
type TagSet struct {
	items []string
	index map[string]struct{}
}

// NormalizeTag приводит тег к виду, в котором он хранится и сравнивается.
func NormalizeTag(raw string) string {
	return strings.ToLower(strings.Join(strings.Fields(raw), " "))
}

func NewTagSet(raw []string) TagSet {
	set := TagSet{
		items: make([]string, 0, len(raw)),
		index: make(map[string]struct{}, len(raw)),
	}
	for _, r := range raw {
		tag := NormalizeTag(r)
		if tag == "" {
			continue
		}
		if _, ok := set.index[tag]; ok {
			continue
		}
		set.index[tag] = struct{}{}
		set.items = append(set.items, tag)
	}
	return set
}

func (s TagSet) Len() int {
	return len(s.items)
}

func (s TagSet) IsEmpty() bool {
	return len(s.items) == 0
}

func (s TagSet) Contains(tag string) bool {
	_, ok := s.index[NormalizeTag(tag)]
	return ok
}

// Intersects сообщает, есть ли у множеств хотя бы один общий тег.
func (s TagSet) Intersects(other TagSet) bool {
	small, large := s, other
	if small.Len() > large.Len() {
		small, large = large, small
	}
	for _, tag := range small.items {
		if _, ok := large.index[tag]; ok {
			return true
		}
	}
	return false
}

// Values возвращает копию тегов в порядке вставки.
func (s TagSet) Values() []string {
	out := make([]string, len(s.items))
	copy(out, s.items)
	return out
}

// DistinctTrimmed обрезает пробелы по краям, убирает пустые значения и точные дубли.
// Регистр сохраняется: так хранятся ключевые слова, которые не участвуют в сопоставлении.
func DistinctTrimmed(raw []string) []string {
	out := make([]string, 0, len(raw))
	seen := make(map[string]struct{}, len(raw))
	for _, r := range raw {
		v := strings.TrimSpace(r)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
