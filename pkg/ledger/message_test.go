package ledger

import (
	"errors"
	"testing"

	"github.com/hashgraph-online/avatar-registry-sdk-go/pkg/shared"
)

func TestValidateMessage(t *testing.T) {
	valid := []Message{
		DeployConfigMessage(),
		DeployAvatarMessage("0.0.1002"),
		ConfigSetMessage("0.0.1002", "k", "v"),
		ConfigDeleteMessage("0.0.1002", "k"),
		TransferOwnershipMessage("0.0.1002", "0.0.1001"),
		RenounceOwnershipMessage("0.0.1002"),
		IssueMessage("0.0.1003", "0.0.1001"),
		TransferMessage("0.0.1003", 1, "0.0.1001"),
	}
	for _, message := range valid {
		if err := ValidateMessage(message); err != nil {
			t.Fatalf("expected %s to validate, got %v", message.Operation, err)
		}
	}
}

func TestValidateMessageRejections(t *testing.T) {
	cases := []struct {
		name    string
		message Message
	}{
		{name: "protocol", message: Message{Protocol: "hcs-20", Operation: OperationIssue, Contract: "0.0.1003"}},
		{name: "operation", message: Message{Protocol: ProtocolID, Operation: "burn", Contract: "0.0.1003"}},
		{name: "missing contract", message: Message{Protocol: ProtocolID, Operation: OperationIssue}},
		{name: "zero contract", message: IssueMessage("0.0.0", "0.0.1001")},
		{name: "deploy with contract", message: Message{Protocol: ProtocolID, Operation: OperationDeployConfig, Contract: "0.0.1003"}},
		{name: "memo", message: Message{Protocol: ProtocolID, Operation: OperationDeployConfig, Memo: string(make([]byte, MaxMemoLength+1))}},
	}

	for _, testCase := range cases {
		t.Run(testCase.name, func(t *testing.T) {
			err := ValidateMessage(testCase.message)
			var invalid InvalidMessageFormatError
			if !errors.As(err, &invalid) {
				t.Fatalf("expected InvalidMessageFormatError, got %v", err)
			}
		})
	}
}

func TestNormalizeMessageRejectsMalformedContract(t *testing.T) {
	_, err := NormalizeMessage(IssueMessage("contract", "0.0.1001"))
	if shared.ErrorKind(err) != shared.KindInvalidEntityID {
		t.Fatalf("expected invalid entity ID, got %v", err)
	}
}

func TestNormalizeMessageLeavesArgumentsToContracts(t *testing.T) {
	normalized, err := NormalizeMessage(Message{
		Protocol:  " Avatar-Registry ",
		Operation: " ISSUE ",
		Contract:  "0.0.1003-abcde",
		To:        " 0.0.0 ",
	})
	if err != nil {
		t.Fatalf("unexpected normalize error: %v", err)
	}
	if normalized.Protocol != ProtocolID || normalized.Operation != OperationIssue {
		t.Fatalf("expected lowercase protocol and op, got %q %q", normalized.Protocol, normalized.Operation)
	}
	if normalized.Contract != "0.0.1003" {
		t.Fatalf("expected checksum to be dropped, got %s", normalized.Contract)
	}
	if normalized.To != "0.0.0" {
		t.Fatalf("expected recipient to be trimmed only, got %q", normalized.To)
	}
}

func TestBuildAndParseMessagePayload(t *testing.T) {
	payload, normalized, err := BuildMessagePayload(ConfigSetMessage("0.0.1002", " base-uri ", "ipfs://avatars/"))
	if err != nil {
		t.Fatalf("unexpected build error: %v", err)
	}
	if normalized.Key != "base-uri" {
		t.Fatalf("expected trimmed key, got %q", normalized.Key)
	}

	parsed, err := ParseMessageBytes(payload)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	if parsed != normalized {
		t.Fatalf("expected %+v, got %+v", normalized, parsed)
	}

	if _, err := ParseMessageBytes([]byte("{")); shared.ErrorKind(err) != KindInvalidMessageFormat {
		t.Fatalf("expected invalid message format for broken JSON, got %v", err)
	}
}
