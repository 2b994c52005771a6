package shared

import (
	"testing"

	hedera "github.com/hashgraph/hedera-sdk-go/v2"
)

func TestParsePrivateKeyRejectsEmpty(t *testing.T) {
	for _, input := range []string{"", "   ", "notavalidkey", "0xinvalidhex"} {
		if _, err := ParsePrivateKey(input); err == nil {
			t.Fatalf("expected error for %q", input)
		}
	}
}

func TestParsePrivateKeyValidEd25519(t *testing.T) {
	key, err := ParsePrivateKey(testPrivateKey)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if key.String() == "" {
		t.Fatal("expected non-empty key string")
	}
}

func TestParsePrivateKeyGeneratedECDSA(t *testing.T) {
	generated, err := hedera.PrivateKeyGenerateEcdsa()
	if err != nil {
		t.Fatalf("failed to generate key: %v", err)
	}

	parsed, err := ParsePrivateKey(generated.String())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	message := []byte("avatar-registry")
	if !VerifySignature(generated.PublicKey(), message, parsed.Sign(message)) {
		t.Fatal("expected parsed key to sign for the generated public key")
	}
}

func TestVerifySignatureByKeyType(t *testing.T) {
	ecdsaKey, err := hedera.PrivateKeyGenerateEcdsa()
	if err != nil {
		t.Fatalf("failed to generate ECDSA key: %v", err)
	}
	ed25519Key, err := hedera.PrivateKeyGenerateEd25519()
	if err != nil {
		t.Fatalf("failed to generate ED25519 key: %v", err)
	}

	message := []byte(`{"p":"avatar-registry","op":"issue"}`)
	for name, key := range map[string]hedera.PrivateKey{"ecdsa": ecdsaKey, "ed25519": ed25519Key} {
		signature := key.Sign(message)
		if !VerifySignature(key.PublicKey(), message, signature) {
			t.Fatalf("expected %s signature to verify", name)
		}
		if VerifySignature(key.PublicKey(), []byte(`{"p":"avatar-registry","op":"transfer"}`), signature) {
			t.Fatalf("expected %s signature over a different message to fail", name)
		}
	}

	if VerifySignature(ecdsaKey.PublicKey(), message, ed25519Key.Sign(message)) {
		t.Fatal("expected signature from another key to fail")
	}
}
