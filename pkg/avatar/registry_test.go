package avatar

import (
	"errors"
	"sync"
	"testing"

	"github.com/hashgraph-online/avatar-registry-sdk-go/pkg/asset"
	"github.com/hashgraph-online/avatar-registry-sdk-go/pkg/config"
	"github.com/hashgraph-online/avatar-registry-sdk-go/pkg/ownable"
	"github.com/hashgraph-online/avatar-registry-sdk-go/pkg/shared"
)

const (
	deployer     = "0.0.1001"
	holder       = "0.0.1002"
	stranger     = "0.0.1003"
	configHandle = "0.0.2001"
	avatarHandle = "0.0.2002"
)

func newResolver(t *testing.T) (*config.Config, ConfigResolver) {
	t.Helper()

	settings, err := config.New(configHandle, deployer)
	if err != nil {
		t.Fatalf("failed to create config: %v", err)
	}
	return settings, ResolverFunc(func(handle string) (*config.Config, bool) {
		if handle == settings.Handle() {
			return settings, true
		}
		return nil, false
	})
}

func newRegistry(t *testing.T, options ...Option) (*config.Config, *Registry) {
	t.Helper()

	settings, resolver := newResolver(t)
	registry, err := New(avatarHandle, deployer, configHandle, resolver, options...)
	if err != nil {
		t.Fatalf("failed to create registry: %v", err)
	}
	return settings, registry
}

func TestNewBindsConfigAndOwner(t *testing.T) {
	_, registry := newRegistry(t)

	if registry.GetConfig() != configHandle {
		t.Fatalf("expected config %s, got %s", configHandle, registry.GetConfig())
	}
	if registry.Owner() != deployer {
		t.Fatalf("expected owner %s, got %s", deployer, registry.Owner())
	}
	if registry.Handle() != avatarHandle {
		t.Fatalf("expected handle %s, got %s", avatarHandle, registry.Handle())
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	_, resolver := newResolver(t)

	cases := []struct {
		name     string
		handle   string
		resolver ConfigResolver
	}{
		{name: "zero", handle: "0.0.0", resolver: resolver},
		{name: "malformed", handle: "not-an-id", resolver: resolver},
		{name: "unresolved", handle: "0.0.9999", resolver: resolver},
		{name: "nil resolver", handle: configHandle, resolver: nil},
	}

	for _, testCase := range cases {
		t.Run(testCase.name, func(t *testing.T) {
			_, err := New(avatarHandle, deployer, testCase.handle, testCase.resolver)
			var invalid InvalidConfigError
			if !errors.As(err, &invalid) {
				t.Fatalf("expected InvalidConfigError, got %v", err)
			}
			if shared.ErrorKind(err) != KindInvalidConfig {
				t.Fatalf("expected kind %s, got %s", KindInvalidConfig, shared.ErrorKind(err))
			}
		})
	}
}

func TestIssueByOwner(t *testing.T) {
	_, registry := newRegistry(t)

	first, err := registry.Issue(deployer, holder)
	if err != nil {
		t.Fatalf("unexpected issue error: %v", err)
	}
	second, err := registry.Issue(deployer, stranger)
	if err != nil {
		t.Fatalf("unexpected issue error: %v", err)
	}
	if first != 1 || second != 2 {
		t.Fatalf("expected asset IDs 1 and 2, got %d and %d", first, second)
	}

	owner, err := registry.HolderOf(first)
	if err != nil {
		t.Fatalf("unexpected holder error: %v", err)
	}
	if owner != holder {
		t.Fatalf("expected holder %s, got %s", holder, owner)
	}
	if registry.TotalIssued() != 2 {
		t.Fatalf("expected 2 issued, got %d", registry.TotalIssued())
	}
}

func TestIssueRejectsNonOwner(t *testing.T) {
	_, registry := newRegistry(t)

	_, err := registry.Issue(stranger, holder)
	var unauthorized ownable.UnauthorizedError
	if !errors.As(err, &unauthorized) {
		t.Fatalf("expected UnauthorizedError, got %v", err)
	}
	if registry.TotalIssued() != 0 {
		t.Fatalf("expected no assets after rejected issue, got %d", registry.TotalIssued())
	}
}

func TestTransferAlwaysRejected(t *testing.T) {
	_, registry := newRegistry(t)

	assetID, err := registry.Issue(deployer, holder)
	if err != nil {
		t.Fatalf("unexpected issue error: %v", err)
	}

	for _, caller := range []string{holder, deployer, stranger} {
		err := registry.Transfer(caller, assetID, stranger)
		var nonTransferable asset.NonTransferableError
		if !errors.As(err, &nonTransferable) {
			t.Fatalf("expected NonTransferableError for caller %s, got %v", caller, err)
		}
	}

	if err := registry.Transfer(holder, 42, stranger); shared.ErrorKind(err) != asset.KindNonTransferable {
		t.Fatalf("expected non-transferable kind for unknown asset, got %v", err)
	}

	current, err := registry.HolderOf(assetID)
	if err != nil {
		t.Fatalf("unexpected holder error: %v", err)
	}
	if current != holder {
		t.Fatalf("expected holder unchanged %s, got %s", holder, current)
	}
}

func TestHolderOfUnknownAsset(t *testing.T) {
	_, registry := newRegistry(t)

	_, err := registry.HolderOf(7)
	var unknown asset.UnknownAssetError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected UnknownAssetError, got %v", err)
	}
}

func TestConfigOwnershipIsIndependent(t *testing.T) {
	settings, registry := newRegistry(t)

	if _, err := settings.TransferOwnership(deployer, stranger); err != nil {
		t.Fatalf("unexpected config transfer error: %v", err)
	}
	if registry.Owner() != deployer {
		t.Fatalf("expected registry owner to stay %s, got %s", deployer, registry.Owner())
	}
	if _, err := registry.Issue(deployer, holder); err != nil {
		t.Fatalf("expected deployer to keep issuing, got %v", err)
	}
	if _, err := registry.Issue(stranger, holder); err == nil {
		t.Fatal("expected new config owner to be rejected by registry")
	}
}

func TestRenounceBlocksIssue(t *testing.T) {
	_, registry := newRegistry(t)

	if _, err := registry.RenounceOwnership(deployer); err != nil {
		t.Fatalf("unexpected renounce error: %v", err)
	}
	if registry.Owner() != shared.ZeroEntityID {
		t.Fatalf("expected zero owner, got %s", registry.Owner())
	}
	if _, err := registry.Issue(deployer, holder); shared.ErrorKind(err) != ownable.KindUnauthorized {
		t.Fatalf("expected unauthorized after renounce, got %v", err)
	}
}

func TestTransferOwnershipMovesIssueRight(t *testing.T) {
	_, registry := newRegistry(t)

	if _, err := registry.TransferOwnership(deployer, stranger); err != nil {
		t.Fatalf("unexpected transfer ownership error: %v", err)
	}
	if _, err := registry.Issue(deployer, holder); err == nil {
		t.Fatal("expected previous owner to be rejected")
	}
	if _, err := registry.Issue(stranger, holder); err != nil {
		t.Fatalf("expected new owner to issue, got %v", err)
	}
}

func TestSettingReadsThroughConfig(t *testing.T) {
	settings, registry := newRegistry(t)

	if _, ok, err := registry.Setting("base-uri"); err != nil || ok {
		t.Fatalf("expected missing setting, got ok=%v err=%v", ok, err)
	}
	if err := settings.Set(deployer, "base-uri", "ipfs://avatars/"); err != nil {
		t.Fatalf("unexpected config set error: %v", err)
	}

	value, ok, err := registry.Setting("base-uri")
	if err != nil || !ok {
		t.Fatalf("expected setting to resolve, got ok=%v err=%v", ok, err)
	}
	if value != "ipfs://avatars/" {
		t.Fatalf("expected ipfs://avatars/, got %s", value)
	}
	if registry.GetConfig() != configHandle {
		t.Fatalf("expected config binding unchanged, got %s", registry.GetConfig())
	}
}

func TestIssueObserver(t *testing.T) {
	var (
		mutex    sync.Mutex
		observed []asset.Issued
	)
	_, registry := newRegistry(t, WithIssueObserver(func(issued asset.Issued) {
		mutex.Lock()
		defer mutex.Unlock()
		observed = append(observed, issued)
	}))

	if _, err := registry.Issue(deployer, holder); err != nil {
		t.Fatalf("unexpected issue error: %v", err)
	}
	if _, err := registry.Issue(stranger, holder); err == nil {
		t.Fatal("expected rejected issue")
	}

	mutex.Lock()
	defer mutex.Unlock()
	if len(observed) != 1 {
		t.Fatalf("expected 1 observed issue, got %d", len(observed))
	}
	if observed[0].AssetID != 1 || observed[0].Holder != holder {
		t.Fatalf("unexpected observed issue: %+v", observed[0])
	}
}

func TestConcurrentIssueProducesUniqueIDs(t *testing.T) {
	_, registry := newRegistry(t)

	const workers = 16
	ids := make(chan int64, workers)
	var waitGroup sync.WaitGroup
	for range workers {
		waitGroup.Add(1)
		go func() {
			defer waitGroup.Done()
			assetID, err := registry.Issue(deployer, holder)
			if err != nil {
				t.Errorf("unexpected issue error: %v", err)
				return
			}
			ids <- assetID
		}()
	}
	waitGroup.Wait()
	close(ids)

	seen := make(map[int64]bool, workers)
	for assetID := range ids {
		if seen[assetID] {
			t.Fatalf("duplicate asset ID %d", assetID)
		}
		seen[assetID] = true
	}
	if len(seen) != workers {
		t.Fatalf("expected %d unique IDs, got %d", workers, len(seen))
	}
}

type registryView struct {
	config string
	owner  string
	holder string
	total  int64
}

func viewOf(t *testing.T, registry *Registry, assetID int64) registryView {
	t.Helper()

	current, err := registry.HolderOf(assetID)
	if err != nil {
		t.Fatalf("unexpected holder error: %v", err)
	}
	return registryView{
		config: registry.GetConfig(),
		owner:  registry.Owner(),
		holder: current,
		total:  registry.TotalIssued(),
	}
}

func TestRepeatedQueriesAreStable(t *testing.T) {
	_, registry := newRegistry(t)

	assetID, err := registry.Issue(deployer, holder)
	if err != nil {
		t.Fatalf("unexpected issue error: %v", err)
	}

	want := registryView{config: configHandle, owner: deployer, holder: holder, total: 1}
	for range 3 {
		if got := viewOf(t, registry, assetID); got != want {
			t.Fatalf("expected %+v, got %+v", want, got)
		}
	}

	if err := registry.Transfer(holder, assetID, stranger); err == nil {
		t.Fatal("expected transfer to fail")
	}
	if err := registry.Transfer(holder, assetID, shared.ZeroEntityID); shared.ErrorKind(err) != asset.KindNonTransferable {
		t.Fatalf("expected non-transferable kind for zero recipient, got %v", err)
	}
	if got := viewOf(t, registry, assetID); got != want {
		t.Fatalf("after failed transfer expected %+v, got %+v", want, got)
	}

	if _, err := registry.Issue(stranger, stranger); err == nil {
		t.Fatal("expected issue by non-owner to fail")
	}
	if _, err := registry.Issue(deployer, shared.ZeroEntityID); err == nil {
		t.Fatal("expected issue to zero recipient to fail")
	}
	for range 3 {
		if got := viewOf(t, registry, assetID); got != want {
			t.Fatalf("after failed issue expected %+v, got %+v", want, got)
		}
	}

	for range 2 {
		if _, err := registry.HolderOf(assetID + 1); shared.ErrorKind(err) != asset.KindUnknownAsset {
			t.Fatalf("expected unknown asset for %d, got %v", assetID+1, err)
		}
	}
}
