package charconv

import (
	"flag"
	"fmt"
	"log"
	"math/big"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"testing"
	"time"
)

var (
	fuzzIterations  = fuzzDefaultIterations
	fuzzOpsActive   = allFuzzOps
	fuzzBasesActive []int
	fuzzSeed        int64

	globalRNG *rand.Rand
)

func TestMain(m *testing.M) {
	var ops, bases StringList

	flag.IntVar(&fuzzIterations, "charconv.fuzziter", fuzzIterations, "Number of iterations to fuzz each op")
	flag.Int64Var(&fuzzSeed, "charconv.fuzzseed", fuzzSeed, "Seed the RNG (0 == current nanotime)")
	flag.Var(&ops, "charconv.fuzzop", "Fuzz op to run (can pass multiple times, or a comma separated list)")
	flag.Var(&bases, "charconv.fuzzbase", "Restrict fuzzing to these bases (can pass multiple times, or a comma separated list)")
	flag.Parse()

	if fuzzSeed == 0 {
		fuzzSeed = time.Now().UnixNano()
	}
	globalRNG = rand.New(rand.NewSource(fuzzSeed))

	if len(ops) > 0 {
		fuzzOpsActive = nil
		for _, op := range ops {
			fuzzOpsActive = append(fuzzOpsActive, fuzzOp(op))
		}
	}

	for _, bs := range bases {
		base, err := strconv.Atoi(bs)
		if err != nil || base < 2 || base > 36 {
			panic(fmt.Errorf("charconv: bad fuzz base %q", bs))
		}
		fuzzBasesActive = append(fuzzBasesActive, base)
	}

	log.Println("rando seed:", fuzzSeed) // classic rando!
	log.Println("active ops:", fuzzOpsActive)
	log.Println("iterations:", fuzzIterations)

	code := m.Run()
	os.Exit(code)
}

var (
	big0 = new(big.Int)
	big1 = new(big.Int).SetInt64(1)

	maxBigUint64  = new(big.Int).SetUint64(maxUint64)
	maxBigU128, _ = new(big.Int).SetString("340282366920938463463374607431768211455", 10)
	wrapBigU128   = new(big.Int).Add(maxBigU128, big1) // 1 << 128

	maxBigI128, _ = new(big.Int).SetString("170141183460469231731687303715884105727", 10)
	minBigI128, _ = new(big.Int).SetString("-170141183460469231731687303715884105728", 10)

	masks [128]*big.Int
)

func init() {
	for i := 0; i < 128; i++ {
		masks[i] = new(big.Int).Sub(new(big.Int).Lsh(big1, uint(i)), big1)
	}
}

func bigs(s string) *big.Int {
	s = strings.Replace(s, " ", "", -1)
	b, ok := new(big.Int).SetString(s, 0)
	if !ok {
		panic(fmt.Errorf("charconv: big string %q invalid", s))
	}
	return b
}

func u128s(s string) U128 {
	out, acc := U128FromBigInt(bigs(s))
	if !acc {
		panic(fmt.Errorf("charconv: inaccurate u128 %s", s))
	}
	return out
}

func i128s(s string) I128 {
	out, acc := I128FromBigInt(bigs(s))
	if !acc {
		panic(fmt.Errorf("charconv: inaccurate i128 %s", s))
	}
	return out
}

func accU128FromBigInt(b *big.Int) U128 {
	u, acc := U128FromBigInt(b)
	if !acc {
		panic(fmt.Errorf("charconv: inaccurate conversion to U128 in fuzz tester for %s", b))
	}
	return u
}

func accI128FromBigInt(b *big.Int) I128 {
	i, acc := I128FromBigInt(b)
	if !acc {
		panic(fmt.Errorf("charconv: inaccurate conversion to I128 in fuzz tester for %s", b))
	}
	return i
}

type StringList []string

func (s StringList) Strings() []string { return s }

func (s *StringList) String() string {
	if s == nil {
		return ""
	}
	return strings.Join(*s, ",")
}

func (s *StringList) Set(v string) error {
	vs := strings.Split(v, ",")
	for _, vi := range vs {
		vi = strings.TrimSpace(vi)
		if vi != "" {
			*s = append(*s, vi)
		}
	}
	return nil
}

// randomBigU128 yields values with a uniformly distributed bit length, so
// the fast and chunked codec paths all see traffic.
func randomBigU128(rng *rand.Rand) *big.Int {
	if rng == nil {
		rng = globalRNG
	}

	var v = new(big.Int)
	bits := rng.Intn(129) - 1 // 128 bits, +1 for "0 bits"
	if bits < 0 {
		return v // "-1 bits" == "0"
	} else if bits <= 64 {
		v = v.Rand(rng, maxBigUint64)
	} else {
		v = v.Rand(rng, maxBigU128)
	}
	v.And(v, masks[bits])
	v.SetBit(v, bits, 1)
	return v
}

func randomBigI128(rng *rand.Rand) *big.Int {
	if rng == nil {
		rng = globalRNG
	}

	v := randomBigU128(rng)
	v.Rsh(v, 1) // clamp to 127 magnitude bits
	if rng.Intn(2) == 1 {
		v.Neg(v)
	}
	return v
}

func randomBase(rng *rand.Rand) int {
	if rng == nil {
		rng = globalRNG
	}
	if len(fuzzBasesActive) > 0 {
		return fuzzBasesActive[rng.Intn(len(fuzzBasesActive))]
	}
	return 2 + rng.Intn(35)
}
