package hashkey

// Path is the unbounded hash path of a key. The first Levels levels come
// from the primary hash of the key; every following run of Levels levels
// comes from a rehash with the next seed. Two keys whose primary hashes are
// equal can still be told apart deeper down, unless the keys themselves are
// equal.
//
// A Path is a small value; copying it is fine.
type Path struct {
	alg  Algorithm
	key  Key
	hash HashedKey
}

// NewPath computes the primary hash of k and returns its Path.
func NewPath(alg Algorithm, k Key) Path {
	return Path{alg: alg, key: k, hash: Compute(alg, k)}
}

// Hash returns the primary hash of the key.
func (p Path) Hash() HashedKey {
	return p.hash
}

// SeedFor returns the seed whose hash supplies the given level.
func SeedFor(level uint) uint64 {
	return uint64(level / Levels)
}

// HashAt returns the HashedKey serving the given level.
func (p Path) HashAt(level uint) HashedKey {
	var gen = SeedFor(level)
	if gen == 0 {
		return p.hash
	}
	return ComputeSeed(p.alg, p.key, gen)
}

// Index returns the LevelIndex of the key at any level. For level <= MaxDepth
// it equals p.Hash().Index(level).
func (p Path) Index(level uint) LevelIndex {
	return p.HashAt(level).Index(level % Levels)
}
