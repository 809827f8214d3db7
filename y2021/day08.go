package y2021

import (
	"fmt"
	"math/bits"
	"slices"
	"strings"
)

// wires is the set of lit segments of a pattern, bit i for segment 'a'+i.
type wires uint8

func parseWires(s string) wires {
	var w wires
	for _, c := range s {
		w |= 1 << (c - 'a')
	}
	return w
}

func (w wires) len() int { return bits.OnesCount8(uint8(w)) }

// contains reports whether every segment of o is lit in w.
func (w wires) contains(o wires) bool { return w&o == o }

type panel struct {
	catalogue [10]wires
	display   [4]wires
}

func parsePanel(line string) panel {
	cat, disp, _ := strings.Cut(line, " | ")
	var p panel
	for i, f := range strings.Fields(cat) {
		p.catalogue[i] = parseWires(f)
	}
	for i, f := range strings.Fields(disp) {
		p.display[i] = parseWires(f)
	}
	return p
}

// deduce works out which catalogue pattern shows each digit; the result
// is indexed by digit. It panics if the catalogue is not a scrambled
// seven-segment wiring.
func deduce(catalogue [10]wires) [10]wires {
	left := catalogue[:]
	take := func(n int, cond func(wires) bool) wires {
		i := slices.IndexFunc(left, func(w wires) bool {
			return w.len() == n && (cond == nil || cond(w))
		})
		if i < 0 {
			panic(fmt.Sprintf("no pattern of length %d left in %v", n, left))
		}
		w := left[i]
		left = slices.Delete(slices.Clone(left), i, i+1)
		return w
	}

	var d [10]wires
	d[1] = take(2, nil)
	d[4] = take(4, nil)
	d[7] = take(3, nil)
	d[8] = take(7, nil)
	d[9] = take(6, func(w wires) bool { return w.contains(d[4]) })
	d[0] = take(6, func(w wires) bool { return w.contains(d[1]) })
	d[6] = take(6, nil)
	d[3] = take(5, func(w wires) bool { return w.contains(d[1]) })
	d[5] = take(5, func(w wires) bool { return d[6].contains(w) })
	d[2] = take(5, nil)
	return d
}

func (p panel) decode() int {
	digits := make(map[wires]int, 10)
	for digit, w := range deduce(p.catalogue) {
		digits[w] = digit
	}
	n := 0
	for _, w := range p.display {
		digit, ok := digits[w]
		if !ok {
			panic(fmt.Sprintf("display pattern %07b not in catalogue", w))
		}
		n = n*10 + digit
	}
	return n
}

/*
want=26,61229

be cfbegad cbdgef fgaecd cgeb fdcge agebfd fecdb fabcd edb | fdgacbe cefdb cefbgd gcbe
edbfga begcd cbg gc gcadebf fbgde acbgfd abcde gfcbed gfec | fcgedb cgb dgebacf gc
fgaebd cg bdaec gdafb agbcfd gdcbef bgcad gfac gcb cdgabef | cg cg fdcagb cbg
fbegcd cbd adcefb dageb afcb bc aefdc ecdab fgdeca fcdbega | efabcd cedba gadfec cb
aecbfdg fbg gf bafeg dbefa fcge gcbea fcaegb dgceab fcbdga | gecf egdcabf bgf bfgea
fgeab ca afcebg bdacfeg cfaedg gcfdb baec bfadeg bafgc acf | gebdcfa ecba ca fadegcb
dbcfg fgd bdegcaf fgec aegbdf ecdfab fbedc dacgb gdcebf gf | cefg dcbef fcge gbcadfe
bdfegc cbegaf gecbf dfcage bdacg ed bedf ced adcbefg gebcd | ed bcgafe cdgba cbgef
egadfb cdbfeg cegd fecab cgb gbdefca cg fgcdab egfdb bfceg | gbdfcae bgc cg cgb
gcafb gcf dcaebfg ecagb gf abcdeg gaef cafbge fdbac fegbdc | fgae cfgab fg bagce
*/
func Day08(lines []string) (int, int) {
	easy, sum := 0, 0
	for _, line := range lines {
		p := parsePanel(line)
		for _, w := range p.display {
			switch w.len() {
			case 2, 3, 4, 7:
				easy++
			}
		}
		sum += p.decode()
	}
	return easy, sum
}
