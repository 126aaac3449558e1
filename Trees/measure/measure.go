package main

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/g-m-twostay/go-pavl/Trees"
)

var (
	bAddN = 200000
	bRmvN = bAddN
	bQryN = bRmvN
)
var rg = rand.New(rand.NewSource(0))

func fill(b *testing.B, all []int) (Trees.Map[int, int], []int) {
	b.Helper()
	m := Trees.New[int, int]()
	for range bAddN {
		a := rg.Int()
		m = m.Put(a, a)
		all = append(all, a)
	}
	return m, all
}

var sink bool

// BenchmarkDelQry removes the last bAddN-bRmvN keys, then queries the
// first bRmvN keys and bQryN random ones.
func BenchmarkDelQry(b *testing.B) {
	all := make([]int, 0, bAddN)
	b.ResetTimer()
	for range b.N {
		b.StopTimer()
		var m Trees.Map[int, int]
		m, all = fill(b, all[:0])
		b.StartTimer()
		for _, v := range all[bRmvN:] {
			m, _, sink = m.Delete(v)
		}
		for _, v := range all[:bRmvN] {
			sink = m.Has(v)
		}
		for range bQryN {
			sink = m.Has(rg.Int())
		}
	}
}

const bNumSteps = 50

func main() {
	testing.Init()
	var cs []float64
	for i := 1; i < bNumSteps; i++ {
		bRmvN = bAddN / bNumSteps * i
		bQryN = bRmvN
		br := testing.Benchmark(BenchmarkDelQry)
		cs = append(cs, float64(br.T.Milliseconds())/float64(br.N))
		fmt.Println(i)
	}
	var sum float64 = 0
	for _, v := range cs {
		sum += v
	}
	avg := sum / float64(len(cs))
	fmt.Printf("average: %fms/op\n", avg)
	sum = 0
	for _, v := range cs {
		a := v - avg
		sum += a * a
	}
	fmt.Printf("stddev: %fms/op\n", math.Sqrt(sum/float64(len(cs))))
}
