package shared

import (
	"fmt"
	"strings"

	hedera "github.com/hashgraph/hedera-sdk-go/v2"
	"golang.org/x/crypto/sha3"
)

// compressedSecp256k1Length is the raw length of an ECDSA public key; ED25519
// raw keys are 32 bytes.
const compressedSecp256k1Length = 33

type keyParser struct {
	name  string
	parse func(string) (hedera.PrivateKey, error)
}

var keyParsers = []keyParser{
	{name: "ED25519", parse: hedera.PrivateKeyFromStringEd25519},
	{name: "ECDSA", parse: hedera.PrivateKeyFromStringECDSA},
	{name: "generic", parse: hedera.PrivateKeyFromString},
}

// ParsePrivateKey accepts a DER or raw hex deployer key. ED25519 is tried
// before ECDSA because a raw 32-byte hex string is valid for both.
func ParsePrivateKey(raw string) (hedera.PrivateKey, error) {
	candidate := strings.TrimSpace(raw)
	if candidate == "" {
		return hedera.PrivateKey{}, fmt.Errorf("private key cannot be empty")
	}

	failures := make([]string, 0, len(keyParsers))
	for _, parser := range keyParsers {
		key, err := parser.parse(candidate)
		if err == nil {
			return key, nil
		}
		failures = append(failures, fmt.Sprintf("%s (%v)", parser.name, err))
	}

	return hedera.PrivateKey{}, fmt.Errorf("failed to parse private key as %s", strings.Join(failures, ", "))
}

// VerifySignature checks a signature made by hedera.PrivateKey.Sign over
// message. ECDSA keys sign the Keccak-256 digest of the message while
// PublicKey.Verify expects that digest, so the digest is verified for them.
func VerifySignature(publicKey hedera.PublicKey, message []byte, signature []byte) bool {
	if len(publicKey.BytesRaw()) == compressedSecp256k1Length {
		return publicKey.Verify(keccak256(message), signature)
	}
	return publicKey.Verify(message, signature)
}

func keccak256(message []byte) []byte {
	hasher := sha3.NewLegacyKeccak256()
	hasher.Write(message)
	return hasher.Sum(nil)
}
