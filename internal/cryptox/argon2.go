// Package cryptox implements the argon2id password-hash encoding used by the
// PicShare API: generation with fixed cost parameters, decoding of the
// self-describing "$argon2id$..." string and verification against it.
package cryptox

import (
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/picseed/internal/common"
	"golang.org/x/crypto/argon2"
)

const algorithmID = "argon2id"

// MaxMemory bounds the memory cost, in KiB, of any hash produced or verified.
// Verification allocates whatever the encoded hash asks for.
const MaxMemory = 1 << 20

var (
	versionField = regexp.MustCompile(`^v=(\d+)$`)
	paramsField  = regexp.MustCompile(`^m=(\d+),t=(\d+),p=(\d+)$`)
)

var (
	ErrInvalidHash         = errors.New("invalid encoded hash")
	ErrIncompatibleVersion = errors.New("incompatible argon2 version")
	ErrInvalidParams       = errors.New("invalid argon2 parameters")
)

// Params are the argon2id cost parameters. Memory is expressed in KiB, the
// same unit the encoded "m=" field uses.
type Params struct {
	Memory  uint32
	Time    uint32
	Threads uint8
	KeyLen  uint32
	SaltLen uint32
}

// DefaultParams returns the parameters the API hashes passwords with:
// m=19456, t=2, p=1, a 32-byte digest and a 16-byte random salt.
func DefaultParams() Params {
	return Params{
		Memory:  19456,
		Time:    2,
		Threads: 1,
		KeyLen:  32,
		SaltLen: 16,
	}
}

func (p Params) validate() error {
	switch {
	case p.Time < 1:
		return fmt.Errorf("%w: time cost must be >= 1", ErrInvalidParams)
	case p.Threads < 1:
		return fmt.Errorf("%w: parallelism must be >= 1", ErrInvalidParams)
	case p.Memory < 8*uint32(p.Threads):
		return fmt.Errorf("%w: memory must be >= 8*parallelism KiB", ErrInvalidParams)
	case p.Memory > MaxMemory:
		return fmt.Errorf("%w: memory must be <= %d KiB", ErrInvalidParams, MaxMemory)
	case p.KeyLen < 4:
		return fmt.Errorf("%w: key length must be >= 4", ErrInvalidParams)
	}
	return nil
}

// GenerateSalt returns n random bytes.
func GenerateSalt(n uint32) []byte {
	return common.GenerateRandByteArray(int(n))
}

// Hash derives an argon2id digest of password using a fresh random salt of
// p.SaltLen bytes and returns the encoded hash.
func Hash(password string, p Params) (string, error) {
	if p.SaltLen == 0 {
		return "", fmt.Errorf("%w: salt length must be > 0", ErrInvalidParams)
	}
	return HashWithSalt(password, GenerateSalt(p.SaltLen), p)
}

// HashWithSalt is like Hash but uses the given salt verbatim, so equal inputs
// always produce byte-identical output.
func HashWithSalt(password string, salt []byte, p Params) (string, error) {
	if err := p.validate(); err != nil {
		return "", err
	}
	if len(salt) == 0 {
		return "", fmt.Errorf("%w: empty salt", ErrInvalidParams)
	}

	key := argon2.IDKey([]byte(password), salt, p.Time, p.Memory, p.Threads, p.KeyLen)
	return encode(p, salt, key), nil
}

func encode(p Params, salt, key []byte) string {
	return fmt.Sprintf("$%s$v=%d$m=%d,t=%d,p=%d$%s$%s",
		algorithmID,
		argon2.Version,
		p.Memory, p.Time, p.Threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	)
}

// Decode parses an encoded hash. The returned Params carry the key length of
// the embedded digest and the length of the embedded salt.
func Decode(encoded string) (p Params, salt, key []byte, err error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[0] != "" {
		return Params{}, nil, nil, fmt.Errorf("%w: expected 6 '$'-separated fields", ErrInvalidHash)
	}
	if parts[1] != algorithmID {
		return Params{}, nil, nil, fmt.Errorf("%w: unsupported algorithm %q", ErrInvalidHash, parts[1])
	}

	vm := versionField.FindStringSubmatch(parts[2])
	if vm == nil {
		return Params{}, nil, nil, fmt.Errorf("%w: malformed version %q", ErrInvalidHash, parts[2])
	}
	version, err := strconv.Atoi(vm[1])
	if err != nil {
		return Params{}, nil, nil, fmt.Errorf("%w: version: %v", ErrInvalidHash, err)
	}
	if version != argon2.Version {
		return Params{}, nil, nil, fmt.Errorf("%w: got %d, want %d", ErrIncompatibleVersion, version, argon2.Version)
	}

	if p, err = parseParams(parts[3]); err != nil {
		return Params{}, nil, nil, err
	}

	salt, err = decodeB64(parts[4])
	if err != nil {
		return Params{}, nil, nil, fmt.Errorf("%w: salt: %v", ErrInvalidHash, err)
	}
	key, err = decodeB64(parts[5])
	if err != nil {
		return Params{}, nil, nil, fmt.Errorf("%w: digest: %v", ErrInvalidHash, err)
	}

	p.SaltLen = uint32(len(salt))
	p.KeyLen = uint32(len(key))
	if err := p.validate(); err != nil {
		return Params{}, nil, nil, err
	}
	if len(salt) == 0 {
		return Params{}, nil, nil, fmt.Errorf("%w: empty salt", ErrInvalidHash)
	}

	return p, salt, key, nil
}

// parseParams reads "m=<KiB>,t=<passes>,p=<lanes>" with nothing before or after.
func parseParams(field string) (Params, error) {
	m := paramsField.FindStringSubmatch(field)
	if m == nil {
		return Params{}, fmt.Errorf("%w: malformed parameters %q", ErrInvalidHash, field)
	}

	memory, err := strconv.ParseUint(m[1], 10, 32)
	if err != nil {
		return Params{}, fmt.Errorf("%w: memory: %v", ErrInvalidHash, err)
	}
	passes, err := strconv.ParseUint(m[2], 10, 32)
	if err != nil {
		return Params{}, fmt.Errorf("%w: time: %v", ErrInvalidHash, err)
	}
	lanes, err := strconv.ParseUint(m[3], 10, 8)
	if err != nil {
		return Params{}, fmt.Errorf("%w: parallelism: %v", ErrInvalidHash, err)
	}

	return Params{Memory: uint32(memory), Time: uint32(passes), Threads: uint8(lanes)}, nil
}

// some producers pad, the PHC format does not
func decodeB64(s string) ([]byte, error) {
	return base64.RawStdEncoding.DecodeString(strings.TrimRight(s, "="))
}

// Verify reports whether password matches the encoded hash, using only the
// parameters embedded in it. A mismatch is (false, nil); a hash that cannot be
// decoded is (false, err).
func Verify(encoded, password string) (bool, error) {
	p, salt, key, err := Decode(encoded)
	if err != nil {
		return false, err
	}

	candidate := argon2.IDKey([]byte(password), salt, p.Time, p.Memory, p.Threads, p.KeyLen)
	return subtle.ConstantTimeCompare(key, candidate) == 1, nil
}
