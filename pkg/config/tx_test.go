package config

import "testing"

func TestBuildSetTx(t *testing.T) {
	transaction, err := BuildSetTx(SetTxParams{
		ContractID: "0.0.2001",
		Key:        "avatar:base-uri",
		Value:      "ipfs://avatars/",
	})
	if err != nil {
		t.Fatalf("unexpected build error: %v", err)
	}
	if transaction.GetContractID().Contract != 2001 {
		t.Fatalf("expected contract 2001, got %s", transaction.GetContractID().String())
	}
	if len(transaction.GetFunctionParameters()) == 0 {
		t.Fatal("expected encoded function parameters")
	}
}

func TestBuildSetTxValidation(t *testing.T) {
	if _, err := BuildSetTx(SetTxParams{ContractID: "0.0.2001"}); err == nil {
		t.Fatal("expected empty key error")
	}
	if _, err := BuildSetTx(SetTxParams{ContractID: "bad", Key: "k"}); err == nil {
		t.Fatal("expected invalid contract ID error")
	}
}

func TestBuildDeleteTx(t *testing.T) {
	transaction, err := BuildDeleteTx(DeleteTxParams{ContractID: "0.0.2001", Key: "k"})
	if err != nil {
		t.Fatalf("unexpected build error: %v", err)
	}
	if transaction == nil {
		t.Fatal("expected non-nil transaction")
	}
}

func TestBuildGetQuery(t *testing.T) {
	query, err := BuildGetQuery(GetQueryParams{ContractID: "0.0.2001", Key: "k"})
	if err != nil {
		t.Fatalf("unexpected build error: %v", err)
	}
	if query.GetGas() != DefaultQueryGas {
		t.Fatalf("expected default query gas %d, got %d", DefaultQueryGas, query.GetGas())
	}
	if query.GetContractID().Contract != 2001 {
		t.Fatalf("expected contract 2001, got %s", query.GetContractID().String())
	}
}
