package importer

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/sadanand-mindteck/revenye-max/internal/model"
	"github.com/sadanand-mindteck/revenye-max/internal/store"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()

	st, err := store.New(filepath.Join(t.TempDir(), "revdash.db"))
	if err != nil {
		t.Fatalf("init store: %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })
	return st
}

func TestResolveReference_SameNameSameID(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	rr := NewResolver(st).Begin(st.DB())

	id1, err := rr.ResolveReference(model.DomainCustomer, "Acme Corp")
	if err != nil {
		t.Fatalf("first resolve: %v", err)
	}
	id2, err := rr.ResolveReference(model.DomainCustomer, " Acme Corp ")
	if err != nil {
		t.Fatalf("second resolve: %v", err)
	}
	if id1 != id2 {
		t.Fatalf("same name resolved to %d and %d", id1, id2)
	}

	count, err := st.CountReference(model.DomainCustomer)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("customer count = %d, want 1", count)
	}
}

func TestResolveReference_NewMarkerAlwaysCreates(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	rr := NewResolver(st).Begin(st.DB())

	// "new" 标记的同名出现两次：必须是两行独立记录
	id1, err := rr.ResolveReference(model.DomainCustomer, "Acme New")
	if err != nil {
		t.Fatalf("first resolve: %v", err)
	}
	id2, err := rr.ResolveReference(model.DomainCustomer, "Acme New")
	if err != nil {
		t.Fatalf("second resolve: %v", err)
	}
	if id1 == id2 {
		t.Fatalf("new-marker rows must not collapse, both got id %d", id1)
	}

	count, err := st.CountReference(model.DomainCustomer)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 2 {
		t.Fatalf("customer count = %d, want 2", count)
	}

	// 存储名带随机后缀，保留原文前缀便于人工辨认
	options, err := st.ListReferenceOptions(model.DomainCustomer)
	if err != nil {
		t.Fatalf("list options: %v", err)
	}
	for _, opt := range options {
		if !strings.HasPrefix(opt.Name, "Acme New-") {
			t.Fatalf("stored name %q lacks suffix form", opt.Name)
		}
	}
}

func TestLookupReference_NoAutoCreate(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	rr := NewResolver(st).Begin(st.DB())

	_, found, err := rr.LookupReference(model.DomainDealType, "T&M")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if found {
		t.Fatalf("lookup-only domain must not auto-create")
	}

	count, err := st.CountReference(model.DomainDealType)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 0 {
		t.Fatalf("deal type count = %d, want 0", count)
	}

	seededID, err := st.CreateReference(st.DB(), model.DomainDealType, "T&M")
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	id, found, err := rr.LookupReference(model.DomainDealType, "T&M")
	if err != nil {
		t.Fatalf("lookup after seed: %v", err)
	}
	if !found || id != seededID {
		t.Fatalf("lookup found=%v id=%d, want found id %d", found, id, seededID)
	}
}

func TestResolveEmployee_TBHIsNull(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	rr := NewResolver(st).Begin(st.DB())

	id, err := rr.ResolveEmployee("TBH - Pending")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if id != 0 {
		t.Fatalf("TBH must resolve to null, got id %d", id)
	}

	// 哨兵不落库
	count, err := st.CountEmployees()
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 0 {
		t.Fatalf("employee count = %d, want 0", count)
	}

	// 普通名字正常落库
	id, err = rr.ResolveEmployee("Alice Head")
	if err != nil {
		t.Fatalf("resolve named employee: %v", err)
	}
	if id == 0 {
		t.Fatalf("expected an employee id")
	}
	count, err = st.CountEmployees()
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("employee count = %d, want 1", count)
	}
}

func TestRowResolver_DiscardDropsPending(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	resolver := NewResolver(st)

	tx, err := st.BeginTx()
	if err != nil {
		t.Fatalf("begin tx: %v", err)
	}
	rr := resolver.Begin(tx)
	firstID, err := rr.ResolveReference(model.DomainVertical, "Healthcare")
	if err != nil {
		t.Fatalf("resolve in tx: %v", err)
	}
	if err := tx.Rollback(); err != nil {
		t.Fatalf("rollback: %v", err)
	}
	rr.Discard()

	// 回滚行创建的 id 不得留在缓存里供后续行复用
	rr2 := resolver.Begin(st.DB())
	secondID, err := rr2.ResolveReference(model.DomainVertical, "Healthcare")
	if err != nil {
		t.Fatalf("resolve after rollback: %v", err)
	}
	if secondID == 0 {
		t.Fatalf("expected a fresh vertical id")
	}
	_ = firstID

	count, err := st.CountReference(model.DomainVertical)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("vertical count = %d, want 1", count)
	}
}
