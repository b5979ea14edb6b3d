package hashkey

import (
	"encoding/binary"
	"hash"
	"hash/fnv"
	"hash/maphash"
	"sort"

	"github.com/cespare/xxhash"
	"github.com/pkg/errors"
	"github.com/zeebo/blake3"
	"github.com/zeebo/xxh3"
	"golang.org/x/crypto/blake2s"
)

// Algorithm is a pluggable hash function. New returns a fresh hash state
// for one key; seed 0 is the primary hash and any other seed gives an
// independent secondary hash of the same key.
//
// An Algorithm must be deterministic: the same key and seed always sum to
// the same value for the lifetime of the Algorithm value. Stability across
// processes depends on the algorithm.
type Algorithm interface {
	Name() string
	New(seed uint64) hash.Hash64
}

// DefaultAlgorithm is the name of the algorithm used when none is chosen.
const DefaultAlgorithm = "xxh3"

// ErrUnknownAlgorithm is returned by ParseAlgorithm for unregistered names.
var ErrUnknownAlgorithm = errors.New("unknown hash algorithm")

var algorithms = map[string]func() Algorithm{
	"xxh3":    func() Algorithm { return XXH3() },
	"xxhash":  func() Algorithm { return XXHash() },
	"blake3":  func() Algorithm { return Blake3() },
	"blake2s": func() Algorithm { return Blake2s() },
	"fnv":     func() Algorithm { return FNV() },
	"maphash": func() Algorithm { return Maphash() },
}

// ParseAlgorithm returns a new instance of the named algorithm. An empty
// name selects DefaultAlgorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	if name == "" {
		name = DefaultAlgorithm
	}
	fn, ok := algorithms[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownAlgorithm, "%q", name)
	}
	return fn(), nil
}

// Algorithms returns the registered algorithm names in sorted order.
func Algorithms() []string {
	names := make([]string, 0, len(algorithms))
	for name := range algorithms {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Compute hashes k with the primary hash of alg.
func Compute(alg Algorithm, k Key) HashedKey {
	return ComputeSeed(alg, k, 0)
}

// ComputeSeed hashes k with the secondary hash of alg selected by seed.
// ComputeSeed(alg, k, 0) == Compute(alg, k).
func ComputeSeed(alg Algorithm, k Key, seed uint64) HashedKey {
	h := alg.New(seed)
	k.Hash(h)
	return HashedKey(h.Sum64())
}

// withSeed writes a non-zero seed ahead of the key bytes for algorithms
// that have no native seed.
func withSeed(h hash.Hash64, seed uint64) hash.Hash64 {
	if seed != 0 {
		var buf [8]byte
		binary.LittleEndian.PutUint64(buf[:], seed)
		_, _ = h.Write(buf[:])
	}
	return h
}

// sum64 folds a wide digest to 64 bits by taking its first 8 bytes.
type sum64 struct {
	hash.Hash
}

func (s sum64) Sum64() uint64 {
	var buf [32]byte
	return binary.LittleEndian.Uint64(s.Sum(buf[:0])[:8])
}

type xxh3Algorithm struct{}

// XXH3 returns the xxh3 algorithm (github.com/zeebo/xxh3), seeded natively.
func XXH3() Algorithm { return xxh3Algorithm{} }

func (xxh3Algorithm) Name() string { return "xxh3" }

func (xxh3Algorithm) New(seed uint64) hash.Hash64 {
	if seed == 0 {
		return xxh3.New()
	}
	return xxh3.NewSeed(seed)
}

type xxhashAlgorithm struct{}

// XXHash returns the 64bit xxHash algorithm (github.com/cespare/xxhash).
func XXHash() Algorithm { return xxhashAlgorithm{} }

func (xxhashAlgorithm) Name() string { return "xxhash" }

func (xxhashAlgorithm) New(seed uint64) hash.Hash64 {
	return withSeed(xxhash.New(), seed)
}

type blake3Algorithm struct{}

// Blake3 returns an algorithm over the BLAKE3 cryptographic hash
// (github.com/zeebo/blake3), folded to 64 bits.
func Blake3() Algorithm { return blake3Algorithm{} }

func (blake3Algorithm) Name() string { return "blake3" }

func (blake3Algorithm) New(seed uint64) hash.Hash64 {
	return withSeed(sum64{blake3.New()}, seed)
}

type blake2sAlgorithm struct{}

// Blake2s returns an algorithm over BLAKE2s-256 (golang.org/x/crypto/blake2s),
// folded to 64 bits.
func Blake2s() Algorithm { return blake2sAlgorithm{} }

func (blake2sAlgorithm) Name() string { return "blake2s" }

func (blake2sAlgorithm) New(seed uint64) hash.Hash64 {
	// New256 only fails for keys longer than 32 bytes.
	h, _ := blake2s.New256(nil)
	return withSeed(sum64{h}, seed)
}

type fnvAlgorithm struct{}

// FNV returns the 64bit FNV-1a algorithm.
func FNV() Algorithm { return fnvAlgorithm{} }

func (fnvAlgorithm) Name() string { return "fnv" }

func (fnvAlgorithm) New(seed uint64) hash.Hash64 {
	return withSeed(fnv.New64a(), seed)
}

type maphashAlgorithm struct {
	seed maphash.Seed
}

// Maphash returns an algorithm over hash/maphash with a random seed chosen
// now. Hashes are deterministic for the returned value but differ between
// values and between processes.
func Maphash() Algorithm { return maphashAlgorithm{seed: maphash.MakeSeed()} }

func (maphashAlgorithm) Name() string { return "maphash" }

func (a maphashAlgorithm) New(seed uint64) hash.Hash64 {
	var h = new(maphash.Hash)
	h.SetSeed(a.seed)
	return withSeed(h, seed)
}
