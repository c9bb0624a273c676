package password

import (
	"bytes"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/binary"
	"errors"
	"fmt"

	"golang.org/x/crypto/scrypt"
)

// Hashes use the scrypt file-format header (as produced by scrypt-kdf) so
// they can be verified by the storefront's emailpass provider:
//
//	"scrypt" | version(1) | logN(1) | r(4) | p(4) | salt(32) | checksum(16) | hmac(32)
const (
	DefaultLogN uint8  = 15
	DefaultR    uint32 = 8
	DefaultP    uint32 = 1

	saltLen     = 32
	derivedLen  = 64
	headerLen   = 48
	checksumLen = 16
	paramsLen   = headerLen + checksumLen
	hashLen     = paramsLen + sha256.Size
)

var magic = []byte("scrypt")

var errInvalidHash = errors.New("invalid password hash")

// Params are the scrypt cost parameters.
type Params struct {
	LogN uint8
	R    uint32
	P    uint32
}

func DefaultParams() Params {
	return Params{LogN: DefaultLogN, R: DefaultR, P: DefaultP}
}

// Hasher hashes passwords with fixed scrypt parameters.
type Hasher struct {
	params Params
}

func NewHasher(params Params) *Hasher {
	if params.LogN == 0 {
		params.LogN = DefaultLogN
	}
	if params.R == 0 {
		params.R = DefaultR
	}
	if params.P == 0 {
		params.P = DefaultP
	}
	return &Hasher{params: params}
}

// Hash returns the base64 encoded scrypt-kdf envelope for password.
func (h *Hasher) Hash(password string) (string, error) {
	raw, err := Hash(password, h.params)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(raw), nil
}

// Verify checks password against a base64 encoded envelope.
func (h *Hasher) Verify(password, encoded string) (bool, error) {
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return false, errInvalidHash
	}
	return Verify(password, raw)
}

// Hash derives a raw 96 byte scrypt-kdf envelope.
func Hash(password string, params Params) ([]byte, error) {
	if params.LogN == 0 || params.LogN > 30 {
		return nil, fmt.Errorf("invalid scrypt logN %d", params.LogN)
	}

	salt := make([]byte, saltLen)
	if _, err := rand.Read(salt); err != nil {
		return nil, fmt.Errorf("generate salt: %w", err)
	}

	header := make([]byte, 0, hashLen)
	header = append(header, magic...)
	header = append(header, 0, params.LogN)
	header = binary.BigEndian.AppendUint32(header, params.R)
	header = binary.BigEndian.AppendUint32(header, params.P)
	header = append(header, salt...)

	checksum := sha256.Sum256(header)
	header = append(header, checksum[:checksumLen]...)

	derived, err := derive(password, salt, params)
	if err != nil {
		return nil, err
	}

	return append(header, sign(header, derived)...), nil
}

// Verify checks password against a raw scrypt-kdf envelope.
func Verify(password string, raw []byte) (bool, error) {
	params, salt, err := parseHeader(raw)
	if err != nil {
		return false, err
	}

	derived, err := derive(password, salt, params)
	if err != nil {
		return false, err
	}

	expected := raw[paramsLen:]
	actual := sign(raw[:paramsLen], derived)
	return subtle.ConstantTimeCompare(actual, expected) == 1, nil
}

func parseHeader(raw []byte) (Params, []byte, error) {
	if len(raw) != hashLen || !bytes.Equal(raw[:len(magic)], magic) || raw[6] != 0 {
		return Params{}, nil, errInvalidHash
	}

	checksum := sha256.Sum256(raw[:headerLen])
	if !bytes.Equal(checksum[:checksumLen], raw[headerLen:paramsLen]) {
		return Params{}, nil, errInvalidHash
	}

	params := Params{
		LogN: raw[7],
		R:    binary.BigEndian.Uint32(raw[8:12]),
		P:    binary.BigEndian.Uint32(raw[12:16]),
	}
	return params, raw[16:headerLen], nil
}

func derive(password string, salt []byte, params Params) ([]byte, error) {
	key, err := scrypt.Key([]byte(password), salt, 1<<params.LogN, int(params.R), int(params.P), derivedLen)
	if err != nil {
		return nil, fmt.Errorf("derive scrypt key: %w", err)
	}
	return key, nil
}

func sign(params, derived []byte) []byte {
	mac := hmac.New(sha256.New, derived[32:])
	mac.Write(params)
	return mac.Sum(nil)
}
