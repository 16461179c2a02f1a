package matcher

import (
	"sort"
	"strings"

	"github.com/antzucaro/matchr"
)

// 검색 필드 가중치. 가장 큰 값이 1.0 배율
const (
	weightDisplayName = 3.0
	weightSynonyms    = 3.0
	weightDecomposed  = 2.0
	weightAliases     = 2.0
	weightLead        = 1.0
	maxFieldWeight    = 3.0

	defaultThreshold   = 0.4
	defaultMinMatchLen = 2
)

type indexField struct {
	weight float64
	values [][]rune
}

type indexEntry struct {
	lowerName string
	fields    []indexField
}

// Hit 인덱스 검색 결과 한 건
type Hit struct {
	Position   int
	Similarity float64
	tieBreak   float64
}

// Index 가중치 필드 기반 근사 문자열 검색.
// 필드 값 v와 패턴 p의 거리는 v 안의 임의 부분 문자열과 p 사이의 최소 편집 거리이고,
// 거리/|p| 가 threshold 이하이며 일치 글자가 minMatchLen 이상이면 매치로 본다.
type Index struct {
	entries     []indexEntry
	threshold   float64
	minMatchLen int
}

func newIndex(entries []indexEntry) *Index {
	return &Index{
		entries:     entries,
		threshold:   defaultThreshold,
		minMatchLen: defaultMinMatchLen,
	}
}

func runeValues(values ...string) [][]rune {
	out := make([][]rune, 0, len(values))
	for _, v := range values {
		if v == "" {
			continue
		}
		out = append(out, []rune(strings.ToLower(v)))
	}
	return out
}

// Search 유사도 내림차순, 동점이면 Jaro-Winkler, 그다음 카탈로그 순서
func (ix *Index) Search(pattern string) []Hit {
	p := []rune(strings.ToLower(pattern))
	if len(p) == 0 {
		return nil
	}
	lowered := string(p)

	var hits []Hit
	for pos, e := range ix.entries {
		best := 0.0
		for _, f := range e.fields {
			for _, v := range f.values {
				sim, ok := ix.valueSimilarity(p, v)
				if !ok {
					continue
				}
				if s := sim * f.weight / maxFieldWeight; s > best {
					best = s
				}
			}
		}
		if best > 0 {
			hits = append(hits, Hit{
				Position:   pos,
				Similarity: best,
				tieBreak:   matchr.JaroWinkler(lowered, e.lowerName, false),
			})
		}
	}

	sort.SliceStable(hits, func(i, j int) bool {
		if hits[i].Similarity != hits[j].Similarity {
			return hits[i].Similarity > hits[j].Similarity
		}
		if hits[i].tieBreak != hits[j].tieBreak {
			return hits[i].tieBreak > hits[j].tieBreak
		}
		return hits[i].Position < hits[j].Position
	})
	return hits
}

func (ix *Index) valueSimilarity(p, v []rune) (float64, bool) {
	if runesEqual(p, v) {
		return 1, true
	}
	d := substringDistance(p, v)
	m := len(p)
	if float64(d)/float64(m) > ix.threshold || m-d < ix.minMatchLen {
		return 0, false
	}
	return 1 - float64(d)/float64(m), true
}

func runesEqual(a, b []rune) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// substringDistance 텍스트 앞뒤는 건너뛰어도 비용이 없는 편집 거리 (Sellers)
func substringDistance(p, text []rune) int {
	m := len(p)
	col := make([]int, m+1)
	for i := range col {
		col[i] = i
	}
	best := col[m]
	for _, tc := range text {
		diag := col[0]
		for i := 1; i <= m; i++ {
			up := col[i]
			cost := 1
			if p[i-1] == tc {
				cost = 0
			}
			col[i] = min(up+1, col[i-1]+1, diag+cost)
			diag = up
		}
		if col[m] < best {
			best = col[m]
		}
	}
	return best
}
