package ledger

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"io"
	"sync/atomic"
	"time"

	"github.com/andybalholm/brotli"
	"github.com/hashgraph-online/avatar-registry-sdk-go/pkg/shared"
)

const maxDecompressedPayload = 1 << 20

var lastNonce atomic.Uint64

// DecodedEnvelope is an envelope whose payload has been decoded and parsed
// but not yet verified.
type DecodedEnvelope struct {
	Caller    string
	Message   Message
	Payload   []byte
	Signature []byte
}

// SignMessage serializes message, signs it with the account key and wraps it
// in an Envelope. A zero Nonce is replaced with a fresh one. Payloads larger
// than CompressionThreshold are brotli compressed.
func SignMessage(account Account, message Message) (Envelope, error) {
	caller, err := shared.RequireEntityID("caller", account.ID)
	if err != nil {
		return Envelope{}, err
	}
	if message.Nonce == 0 {
		message.Nonce = nextNonce()
	}

	payload, _, err := BuildMessagePayload(message)
	if err != nil {
		return Envelope{}, err
	}

	signature := account.PrivateKey.Sign(payload)

	encoded := payload
	encoding := ""
	if len(payload) > CompressionThreshold {
		encoded, err = compressPayload(payload)
		if err != nil {
			return Envelope{}, err
		}
		encoding = EncodingBrotli
	}

	return Envelope{
		Caller:    caller,
		Payload:   base64.StdEncoding.EncodeToString(encoded),
		Signature: base64.StdEncoding.EncodeToString(signature),
		Encoding:  encoding,
	}, nil
}

// DecodeEnvelope reverses SignMessage without checking the signature.
func DecodeEnvelope(envelope Envelope) (DecodedEnvelope, error) {
	caller, err := shared.RequireEntityID("caller", envelope.Caller)
	if err != nil {
		return DecodedEnvelope{}, err
	}

	encoded, err := base64.StdEncoding.DecodeString(envelope.Payload)
	if err != nil {
		return DecodedEnvelope{}, NewInvalidMessageFormatError(fmt.Sprintf("payload is not valid base64: %v", err))
	}
	signature, err := base64.StdEncoding.DecodeString(envelope.Signature)
	if err != nil || len(signature) == 0 {
		return DecodedEnvelope{}, NewInvalidSignatureError(caller, "signature is not valid base64")
	}

	var payload []byte
	switch envelope.Encoding {
	case "":
		payload = encoded
	case EncodingBrotli:
		payload, err = decompressPayload(encoded)
		if err != nil {
			return DecodedEnvelope{}, err
		}
	default:
		return DecodedEnvelope{}, NewInvalidMessageFormatError(fmt.Sprintf("unsupported encoding %q", envelope.Encoding))
	}

	message, err := ParseMessageBytes(payload)
	if err != nil {
		return DecodedEnvelope{}, err
	}
	if message.Nonce == 0 {
		return DecodedEnvelope{}, NewInvalidMessageFormatError("nonce is required for signed messages")
	}

	return DecodedEnvelope{
		Caller:    caller,
		Message:   message,
		Payload:   payload,
		Signature: signature,
	}, nil
}

// nextNonce returns a process-wide increasing value seeded from the wall
// clock, so nonces stay unique across restarts of a signer.
func nextNonce() uint64 {
	for {
		previous := lastNonce.Load()
		candidate := uint64(time.Now().UnixNano())
		if candidate <= previous {
			candidate = previous + 1
		}
		if lastNonce.CompareAndSwap(previous, candidate) {
			return candidate
		}
	}
}

func compressPayload(payload []byte) ([]byte, error) {
	var buffer bytes.Buffer
	writer := brotli.NewWriterLevel(&buffer, brotli.BestCompression)
	if _, err := writer.Write(payload); err != nil {
		return nil, fmt.Errorf("failed to compress payload: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to compress payload: %w", err)
	}
	return buffer.Bytes(), nil
}

func decompressPayload(encoded []byte) ([]byte, error) {
	reader := brotli.NewReader(bytes.NewReader(encoded))
	payload, err := io.ReadAll(io.LimitReader(reader, maxDecompressedPayload+1))
	if err != nil {
		return nil, NewInvalidMessageFormatError(fmt.Sprintf("failed to decompress payload: %v", err))
	}
	if len(payload) > maxDecompressedPayload {
		return nil, NewInvalidMessageFormatError("decompressed payload exceeds limit")
	}
	return payload, nil
}
